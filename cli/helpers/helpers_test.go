package helpers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name"  yaml:"name"`
	Kinds []string `json:"kinds" yaml:"kinds"`
}

func TestOutputWriter_WriteData(t *testing.T) {
	data := sample{Name: "demo", Kinds: []string{"pdf", "excel"}}

	t.Run("Should write indented JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewOutputWriter(&buf, OutputFormatJSON).WriteData(data))
		assert.JSONEq(t, `{"name":"demo","kinds":["pdf","excel"]}`, buf.String())
	})

	t.Run("Should write YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewOutputWriter(&buf, OutputFormatYAML).WriteData(data))
		assert.YAMLEq(t, "name: demo\nkinds: [pdf, excel]\n", buf.String())
	})

	t.Run("Should default to JSON for non-terminal writers", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Equal(t, OutputFormatJSON, DetectFormat(&buf, OutputFormatAuto))
		assert.Equal(t, OutputFormatYAML, DetectFormat(&buf, OutputFormatYAML))
	})
}

func TestParseOutputFormat(t *testing.T) {
	t.Run("Should accept known formats and reject others", func(t *testing.T) {
		f, err := ParseOutputFormat("yaml")
		require.NoError(t, err)
		assert.Equal(t, OutputFormatYAML, f)

		_, err = ParseOutputFormat("table")
		assert.Error(t, err)
	})
}
