package tplengine

import (
	"bytes"
	"fmt"
	"maps"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// TemplateEngine renders text templates with the sprig function set. Missing
// keys are errors rather than "<no value>".
type TemplateEngine struct {
	templates    map[string]*template.Template
	globalValues map[string]any
}

// NewEngine creates an empty template engine
func NewEngine() *TemplateEngine {
	return &TemplateEngine{
		templates:    make(map[string]*template.Template),
		globalValues: make(map[string]any),
	}
}

// AddTemplate parses and stores a named template
func (e *TemplateEngine) AddTemplate(name, templateStr string) error {
	tmpl, err := parse(name, templateStr)
	if err != nil {
		return err
	}
	e.templates[name] = tmpl
	return nil
}

// AddGlobalValue makes value available to every render under name. Globals
// win over per-call values of the same name.
func (e *TemplateEngine) AddGlobalValue(name string, value any) {
	e.globalValues[name] = value
}

// Render renders a stored template by name
func (e *TemplateEngine) Render(name string, data map[string]any) (string, error) {
	tmpl, ok := e.templates[name]
	if !ok {
		return "", fmt.Errorf("template not found: %s", name)
	}
	return e.renderTemplate(tmpl, data)
}

func parse(name, templateStr string) (*template.Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Funcs(sprig.TxtFuncMap()).Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return tmpl, nil
}

func (e *TemplateEngine) renderTemplate(tmpl *template.Template, data map[string]any) (string, error) {
	values := make(map[string]any, len(data)+len(e.globalValues))
	maps.Copy(values, data)
	maps.Copy(values, e.globalValues)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, values); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return buf.String(), nil
}
