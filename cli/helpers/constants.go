package helpers

import "fmt"

// OutputFormat represents different output formats
type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatAuto OutputFormat = ""
)

// ParseOutputFormat validates a --format flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputFormatJSON, OutputFormatYAML, OutputFormatAuto:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}
