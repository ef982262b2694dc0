package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/MakeNowJust/heredoc"
	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bthstudent/javcheck/audit"
	"github.com/bthstudent/javcheck/grouping"
	"github.com/bthstudent/javcheck/report"
	"github.com/bthstudent/javcheck/source"
	"github.com/bthstudent/javcheck/version"
)

type CheckCmd struct {
	AuditFlags   `embed:""`
	MeetingFlags `embed:""`

	Format      string `enum:"text,json" default:"text" env:"JAVCHECK_FORMAT" help:"Output format (${enum})."`
	MetricsFile string `type:"path" env:"JAVCHECK_METRICS_FILE" help:"Write Prometheus metrics for the run to this file."`
	Watch       bool   `help:"Run again whenever a local source file changes."`
}

func (cmd *CheckCmd) Help() string {
	return heredoc.Doc(`
		The assembly is the latest board named --base-board, or the one
		from --voting-year. The audited boards are those of the fiscal
		year before it.

		Examples:

		  javcheck --absent "Anna Berg,Bo Ek"
		  javcheck --source page.html --priority Kårstyrelsen --format json
		  javcheck --source page.html --watch
	`)
}

func (cmd *CheckCmd) Run(ctx context.Context, kctx *kong.Context) error {
	ctx, log := setupLogger(ctx, cmd.Verbose)

	reg := prometheus.NewRegistry()
	version.RegisterMetric(Name, reg)

	c := &checker{
		cmd:     cmd,
		log:     log,
		out:     kctx.Stdout,
		fetcher: source.New(),
		auditor: audit.NewAuditor(log, grouping.NewMetrics(reg)),
		reg:     reg,
	}

	if cmd.Watch {
		return c.watch(ctx)
	}
	return c.run(ctx)
}

type checker struct {
	cmd     *CheckCmd
	log     *slog.Logger
	out     io.Writer
	fetcher audit.Fetcher
	auditor *audit.Auditor
	reg     *prometheus.Registry
}

// run performs one audit and prints it. A year without boards to audit
// is only a warning.
func (c *checker) run(ctx context.Context) error {
	boards, err := audit.LoadBoards(ctx, c.fetcher, c.cmd.Sources)
	if err != nil {
		return err
	}
	c.log.InfoContext(ctx, "boards loaded", "count", len(boards), "sources", len(c.cmd.Sources))

	rep, err := c.auditor.Run(ctx, boards, c.cmd.auditConfig(c.cmd.MeetingFlags))
	if errors.Is(err, audit.ErrNoCandidates) {
		c.log.WarnContext(ctx, "nothing to audit", "err", err)
		return nil
	}
	if err != nil {
		return err
	}

	switch c.cmd.Format {
	case "json":
		err = report.JSON(c.out, rep)
	default:
		err = report.Text(c.out, rep)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if c.cmd.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(c.cmd.MetricsFile, c.reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
