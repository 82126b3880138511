package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/compozy/gofpatterns/pkg/config"
	"github.com/compozy/gofpatterns/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	defaultConfigFile = "gofpatterns.yaml"
	defaultEnvFile    = ".env"
)

// flagToPath maps command flags to the configuration keys they override.
var flagToPath = map[string]string{
	"log-level":  "log.level",
	"log-json":   "log.json",
	"log-source": "log.source",
	"kind":       "report.kinds",
	"out":        "report.output_dir",
	"title":      "report.title",
	"author":     "report.author",
	"audit":      "report.audit",
	"file":       "log.file_path",
}

// RootCmd returns the root command operating on the OS filesystem.
func RootCmd() *cobra.Command {
	return NewRootCmd(afero.NewOsFs())
}

// NewRootCmd builds the command tree on top of fsys.
func NewRootCmd(fsys afero.Fs) *cobra.Command {
	root := &cobra.Command{
		Use:           "gofpatterns",
		Short:         "Abstract factory report generation and file logging",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return SetupGlobalConfig(cmd, fsys)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", defaultConfigFile, "Path to the YAML configuration file")
	flags.String("env-file", defaultEnvFile, "Path to a .env file loaded before reading the environment")
	flags.String("log-level", "info", "Log level (debug, info, warn, error, disabled)")
	flags.Bool("log-json", false, "Output logs in JSON format")
	flags.Bool("log-source", false, "Include source code location in logs")

	root.AddCommand(
		ReportCmd(fsys),
		LogCmd(fsys),
		ConfigCmd(),
		VersionCmd(),
	)

	return root
}

// SetupGlobalConfig loads the env file and configuration, installs the logger
// and stores both in the command context.
func SetupGlobalConfig(cmd *cobra.Command, fsys afero.Fs) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if err := loadEnvFile(fsys, envFile, cmd.Flags().Changed("env-file")); err != nil {
		return err
	}

	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	var sources []config.Source
	if configFile != "" {
		if cmd.Flags().Changed("config") {
			sources = append(sources, config.NewYAMLProvider(fsys, configFile))
		} else {
			sources = append(sources, config.NewOptionalYAMLProvider(fsys, configFile))
		}
	}
	cliFlags, err := extractCLIFlags(cmd)
	if err != nil {
		return err
	}
	sources = append(sources, config.NewCLIProvider(cliFlags))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.NewService().Load(ctx, sources...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.SetupLogger(cfg.Log.Level, cfg.Log.JSON, cfg.Log.Source); err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log := logger.GetDefault()
	log.Debug("Configuration loaded", "config_file", configFile, "kinds", cfg.Report.Kinds)

	ctx = config.ContextWithConfig(ctx, cfg)
	ctx = logger.ContextWithLogger(ctx, log)
	cmd.SetContext(ctx)
	return nil
}

// loadEnvFile sets variables from path that are not already in the
// environment. A missing default file is not an error.
func loadEnvFile(fsys afero.Fs, path string, explicit bool) error {
	if path == "" {
		return nil
	}
	f, err := fsys.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open env file %s: %w", path, err)
	}
	defer f.Close()
	values, err := godotenv.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to parse env file %s: %w", path, err)
	}
	for key, value := range values {
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	return nil
}

// extractCLIFlags collects the changed flags that override configuration.
func extractCLIFlags(cmd *cobra.Command) (map[string]any, error) {
	values := make(map[string]any)
	for name, path := range flagToPath {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		switch flag.Value.Type() {
		case "bool":
			v, err := cmd.Flags().GetBool(name)
			if err != nil {
				return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
			}
			values[path] = v
		case "stringSlice":
			v, err := cmd.Flags().GetStringSlice(name)
			if err != nil {
				return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
			}
			values[path] = v
		default:
			values[path] = flag.Value.String()
		}
	}
	return values, nil
}
