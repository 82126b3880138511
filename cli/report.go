package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/compozy/gofpatterns/engine/export"
	"github.com/compozy/gofpatterns/engine/report"
	"github.com/compozy/gofpatterns/pkg/config"
	"github.com/compozy/gofpatterns/pkg/logger"
	"github.com/compozy/gofpatterns/pkg/tplengine"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// ReportCmd returns the report command
func ReportCmd(fsys afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate reports through their factories",
	}
	cmd.AddCommand(
		reportGenerateCmd(fsys),
		reportKindsCmd(),
	)
	return cmd
}

func reportGenerateCmd(fsys afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create and generate reports of the configured kinds",
		Long: `Run the factory pipeline for each kind in order: the kind's factory creates
a report and the report announces itself. Without --kind every known kind is
generated, PDF first. With --out each report is also rendered to a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			g := newGenerator(cmd.OutOrStdout(), fsys)
			if cfg.Report.Audit {
				g.audit = logger.NewFileLogger(fsys, cfg.Log.FilePath, cmd.ErrOrStderr())
			}
			return g.run(ctx, &cfg.Report)
		},
	}
	cmd.Flags().StringSliceP("kind", "k", nil, "Report kinds to generate (pdf, excel)")
	cmd.Flags().StringP("out", "o", "", "Directory to render report files into")
	cmd.Flags().String("title", "", "Title of rendered reports; may use {{ .kind }}, {{ .label }}, {{ .date }}, {{ .app }} and sprig functions")
	cmd.Flags().String("author", "", "Author recorded in rendered reports")
	cmd.Flags().Bool("audit", false, "Append a line per generated report to the log file")
	return cmd
}

func reportKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the report kinds that have a factory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, k := range report.Kinds() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, k.Label()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// generator drives report generation for the CLI.
type generator struct {
	out    io.Writer
	fs     afero.Fs
	audit  *logger.FileLogger
	titles *tplengine.TemplateEngine
	now    func() time.Time
}

const titleTemplate = "title"

func newGenerator(out io.Writer, fsys afero.Fs) *generator {
	titles := tplengine.NewEngine()
	titles.AddGlobalValue("app", "gofpatterns")
	return &generator{
		out:    out,
		fs:     fsys,
		titles: titles,
		now:    time.Now,
	}
}

// run parses the title template before any report is generated, so a broken
// title fails the whole run instead of leaving it half done.
func (g *generator) run(ctx context.Context, cfg *config.ReportConfig) error {
	if err := g.titles.AddTemplate(titleTemplate, cfg.Title); err != nil {
		return fmt.Errorf("invalid report title: %w", err)
	}
	kinds := make([]report.Kind, 0, len(cfg.Kinds))
	for _, name := range cfg.Kinds {
		k, err := report.ParseKind(name)
		if err != nil {
			return err
		}
		kinds = append(kinds, k)
	}
	for _, k := range kinds {
		if err := g.generate(ctx, k, cfg); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) generate(ctx context.Context, kind report.Kind, cfg *config.ReportConfig) error {
	log := logger.FromContext(ctx).With("kind", kind)
	factory, err := report.NewFactory(kind, g.out)
	if err != nil {
		return err
	}
	report.Generate(factory)
	log.Debug("Report generated")

	if g.audit != nil {
		// The file logger already reported the failure; generation still counts.
		if err := g.audit.Log(fmt.Sprintf("generated %s report", kind.Label())); err != nil {
			log.Warn("Failed to record report in log file", "err", err)
		}
	}
	if cfg.OutputDir == "" {
		return nil
	}
	exp, err := export.New(kind)
	if err != nil {
		return err
	}
	now := g.now()
	title, err := g.titles.Render(titleTemplate, map[string]any{
		"kind":  kind.String(),
		"label": kind.Label(),
		"date":  now,
	})
	if err != nil {
		return fmt.Errorf("failed to render report title: %w", err)
	}
	doc := export.NewDocument(kind, title, cfg.Author, now)
	path, err := export.WriteFile(ctx, g.fs, cfg.OutputDir, exp, doc)
	if err != nil {
		return err
	}
	log.Info("Report rendered", "path", path)
	_, err = fmt.Fprintf(g.out, "wrote %s\n", path)
	return err
}
