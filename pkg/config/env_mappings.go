package config

import (
	"reflect"
	"strings"
)

// EnvMapping links an environment variable to a koanf path.
type EnvMapping struct {
	EnvVar     string
	ConfigPath string
}

// GenerateEnvMappings walks the Config struct tags and returns one mapping per
// field carrying an env tag. Environment names include EnvPrefix.
func GenerateEnvMappings() []EnvMapping {
	var mappings []EnvMapping
	collectEnvMappings(reflect.TypeOf(Config{}), "", &mappings)
	return mappings
}

func collectEnvMappings(t reflect.Type, prefix string, out *[]EnvMapping) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := field.Tag.Get("koanf")
		if key == "" {
			continue
		}
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if field.Type.Kind() == reflect.Struct {
			collectEnvMappings(field.Type, path, out)
			continue
		}
		if env := field.Tag.Get("env"); env != "" {
			*out = append(*out, EnvMapping{EnvVar: EnvPrefix + env, ConfigPath: path})
		}
	}
}

// envKeyToPath is used for prefixed variables without an explicit mapping:
// GOFPATTERNS_REPORT_OUTPUT_DIR -> report.output_dir
func envKeyToPath(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_'
	})
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + "." + strings.Join(parts[1:], "_")
	}
}
