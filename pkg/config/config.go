package config

import (
	"context"
	"strings"
	"time"

	"github.com/compozy/gofpatterns/pkg/logger"
)

// EnvPrefix is prepended to every environment variable read by the loader.
const EnvPrefix = "GOFPATTERNS_"

// Config represents the complete configuration of the gofpatterns CLI.
type Config struct {
	Report ReportConfig `koanf:"report" json:"report" yaml:"report" validate:"required"`
	Log    LogConfig    `koanf:"log"    json:"log"    yaml:"log"    validate:"required"`
}

// ReportConfig controls which reports are generated and where exports go.
type ReportConfig struct {
	Kinds     []string `koanf:"kinds"      json:"kinds"      yaml:"kinds"      env:"REPORT_KINDS"      validate:"min=1,dive,oneof=pdf excel"`
	Title     string   `koanf:"title"      json:"title"      yaml:"title"      env:"REPORT_TITLE"`
	Author    string   `koanf:"author"     json:"author"     yaml:"author"     env:"REPORT_AUTHOR"`
	OutputDir string   `koanf:"output_dir" json:"output_dir" yaml:"output_dir" env:"REPORT_OUTPUT_DIR"`
	Audit     bool     `koanf:"audit"      json:"audit"      yaml:"audit"      env:"REPORT_AUDIT"`
}

// LogConfig contains console logging and the append-only log file settings.
type LogConfig struct {
	Level    string `koanf:"level"     json:"level"     yaml:"level"     env:"LOG_LEVEL"     validate:"oneof=debug info warn error disabled"`
	JSON     bool   `koanf:"json"      json:"json"      yaml:"json"      env:"LOG_JSON"`
	Source   bool   `koanf:"source"    json:"source"    yaml:"source"    env:"LOG_SOURCE"`
	FilePath string `koanf:"file_path" json:"file_path" yaml:"file_path" env:"LOG_FILE_PATH" validate:"required"`
}

// normalize lowercases and trims report kinds so every source accepts the
// same spellings as the --kind flag.
func (c *ReportConfig) normalize() {
	for i, k := range c.Kinds {
		c.Kinds[i] = strings.ToLower(strings.TrimSpace(k))
	}
}

// Service defines the configuration loading interface.
type Service interface {
	// Load loads configuration from the specified sources with precedence order.
	Load(ctx context.Context, sources ...Source) (*Config, error)
	// Validate checks if the configuration meets all validation requirements.
	Validate(config *Config) error
	// GetSource returns the source type that provided a configuration key.
	GetSource(key string) SourceType
}

// Source defines the interface for configuration sources.
type Source interface {
	// Load reads configuration from the source.
	Load() (map[string]any, error)
	// Type returns the source type identifier.
	Type() SourceType
}

// SourceType identifies the type of configuration source.
type SourceType string

const (
	SourceCLI     SourceType = "cli"
	SourceYAML    SourceType = "yaml"
	SourceEnv     SourceType = "env"
	SourceDefault SourceType = "default"
)

// Metadata contains metadata about configuration sources.
type Metadata struct {
	Sources  map[string]SourceType `json:"sources"`
	LoadedAt time.Time             `json:"loaded_at"`
}

// Default returns the configuration used when no source overrides a value.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Kinds:     []string{"pdf", "excel"},
			OutputDir: "",
			Audit:     false,
		},
		Log: LogConfig{
			Level:    string(logger.InfoLevel),
			FilePath: logger.DefaultLogFilePath,
		},
	}
}
