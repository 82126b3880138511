package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/compozy/gofpatterns/pkg/config"
	"github.com/compozy/gofpatterns/pkg/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// LogCmd returns the log command
func LogCmd(fsys afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Append timestamped lines to the log file",
	}
	cmd.PersistentFlags().StringP("file", "f", "", "Log file path (defaults to log.file_path)")
	cmd.AddCommand(
		logWriteCmd(fsys),
		logDemoCmd(fsys),
	)
	return cmd
}

func logWriteCmd(fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "write <message...>",
		Short: "Append one message to the log file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			fl := logger.NewFileLogger(fsys, cfg.Log.FilePath, cmd.OutOrStdout())
			return fl.Log(strings.Join(args, " "))
		},
	}
}

func logDemoCmd(fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Share one file logger between two components",
		Long: `Construct a single file logger and hand it to two components. The first
points it at the configured file and records the start of the run, the second
records its end through the same instance, so both lines land in that file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			fl := logger.NewFileLogger(fsys, logger.DefaultLogFilePath, cmd.OutOrStdout())
			return runLogDemo(cmd.OutOrStdout(), fl, cfg.Log.FilePath)
		},
	}
}

type logClient struct {
	name string
	log  *logger.FileLogger
}

// runLogDemo has app change the shared logger's path; worker then writes to
// that path without being told about it.
func runLogDemo(out io.Writer, fl *logger.FileLogger, path string) error {
	app := logClient{name: "app", log: fl}
	worker := logClient{name: "worker", log: fl}

	app.log.SetFilePath(path)
	if err := app.log.Log("application started"); err != nil {
		return err
	}
	if app.log == worker.log {
		fmt.Fprintf(out, "%s and %s share the same logger instance\n", app.name, worker.name)
	} else {
		fmt.Fprintf(out, "%s and %s hold different logger instances\n", app.name, worker.name)
	}
	if err := worker.log.Log("application finished"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "logging complete: %s\n", worker.log.FilePath())
	return err
}
