// Package cli holds the javcheck command tree.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/alecthomas/kong"
	"go.ntppool.org/common/logger"

	"github.com/bthstudent/javcheck/audit"
	"github.com/bthstudent/javcheck/version"
)

// Name is the program name used in help and metrics.
const Name = "javcheck"

var Description = heredoc.Doc(`
	Audit conflicts of interest ("jäv") when the student union assembly
	grants discharge to the boards of the previous fiscal year.

	Boards are batched into voting groups so that every board can be
	decided while the remaining present assembly members still reach
	quorum. Boards that cannot be decided are listed separately.
`)

// ConfigPaths are searched for a YAML configuration file.
var ConfigPaths = []string{"javcheck.yaml", "~/.config/javcheck/config.yaml"}

// Root is the command line.
type Root struct {
	Config kong.ConfigFlag `help:"YAML configuration file." placeholder:"FILE" env:"JAVCHECK_CONFIG"`

	Check   CheckCmd    `cmd:"" default:"withargs" help:"Audit the boards and print the voting groups."`
	Serve   ServeCmd    `cmd:"" help:"Run the HTTP API."`
	Version version.Cmd `cmd:"" help:"Print version and build information."`
}

// AuditFlags select the sources and the assembly.
type AuditFlags struct {
	Sources     []string `name:"source" short:"s" default:"https://bthstudent.se/studentkaren/fortroendevalda/" env:"JAVCHECK_SOURCE" help:"URL or file with the elected officials page. Repeat to merge several pages."`
	BaseBoard   string   `short:"b" default:"Fullmäktige" env:"JAVCHECK_BASE_BOARD" help:"Name of the deciding assembly."`
	LeThreshold int      `name:"le-threshold" default:"3" env:"JAVCHECK_LE_THRESHOLD" help:"Largest edit distance for correcting misspelled names (0 disables)."`
	Verbose     bool     `short:"v" env:"JAVCHECK_VERBOSE" help:"Enable debug logging."`
}

// MeetingFlags describe the meeting being prepared.
type MeetingFlags struct {
	VotingYear string   `short:"y" env:"JAVCHECK_VOTING_YEAR" help:"Fiscal year of the assembly, e.g. 2025/2026. Defaults to the latest."`
	Absent     []string `sep:"," env:"JAVCHECK_ABSENT" help:"Comma separated assembly members missing from the meeting."`
	Priority   []string `sep:"," env:"JAVCHECK_PRIORITY" help:"Comma separated boards to place first."`
}

func (f AuditFlags) auditConfig(m MeetingFlags) audit.Config {
	return audit.Config{
		BaseBoard:  f.BaseBoard,
		VotingYear: m.VotingYear,
		Absent:     m.Absent,
		Priority:   m.Priority,
		Threshold:  f.LeThreshold,
	}
}

// setupLogger returns the context logger, or a debug level text logger
// when verbose is set.
func setupLogger(ctx context.Context, verbose bool) (context.Context, *slog.Logger) {
	if !verbose {
		return ctx, logger.FromContext(ctx)
	}
	debugHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	log := slog.New(debugHandler)
	return logger.NewContext(ctx, log), log
}
