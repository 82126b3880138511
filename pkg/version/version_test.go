package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Run("Should reflect the link-time variables", func(t *testing.T) {
		prev := Version
		t.Cleanup(func() { Version = prev })
		Version = "v1.2.3"

		info := Get()

		assert.Equal(t, "v1.2.3", info.Version)
		assert.Equal(t, "v1.2.3 (commit unknown, built unknown)", info.String())
	})
}
