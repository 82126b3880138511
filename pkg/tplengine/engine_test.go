package tplengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateEngine_Render(t *testing.T) {
	t.Run("Should return plain templates unchanged", func(t *testing.T) {
		e := NewEngine()
		require.NoError(t, e.AddTemplate("title", "Quarterly Summary"))

		out, err := e.Render("title", nil)

		require.NoError(t, err)
		assert.Equal(t, "Quarterly Summary", out)
	})

	t.Run("Should render values and sprig functions", func(t *testing.T) {
		e := NewEngine()
		require.NoError(t, e.AddTemplate("title", `{{ .label }} report {{ .kind | upper }}`))

		out, err := e.Render("title", map[string]any{"label": "Excel", "kind": "excel"})

		require.NoError(t, err)
		assert.Equal(t, "Excel report EXCEL", out)
	})

	t.Run("Should render stored templates with globals taking precedence", func(t *testing.T) {
		e := NewEngine()
		e.AddGlobalValue("app", "gofpatterns")
		require.NoError(t, e.AddTemplate("title", `{{ .app }}: {{ .kind }}`))

		out, err := e.Render("title", map[string]any{"kind": "pdf", "app": "ignored"})

		require.NoError(t, err)
		assert.Equal(t, "gofpatterns: pdf", out)
	})

	t.Run("Should fail on missing keys", func(t *testing.T) {
		e := NewEngine()
		require.NoError(t, e.AddTemplate("title", `{{ .missing }}`))

		_, err := e.Render("title", map[string]any{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "template execution error")
	})

	t.Run("Should fail on malformed templates", func(t *testing.T) {
		err := NewEngine().AddTemplate("title", `{{ .kind `)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse template")
	})

	t.Run("Should report unknown template names", func(t *testing.T) {
		_, err := NewEngine().Render("nope", nil)
		assert.Error(t, err)
	})
}
