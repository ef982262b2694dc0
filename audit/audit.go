// Package audit runs the complete discharge audit: it picks the assembly
// and the audited year from the scraped boards, resolves absences,
// reconciles misspelled names and hands the candidates to the grouping
// engine.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.ntppool.org/common/tracing"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bthstudent/javcheck/board"
	"github.com/bthstudent/javcheck/grouping"
	"github.com/bthstudent/javcheck/htmlboards"
	"github.com/bthstudent/javcheck/namefix"
	"github.com/bthstudent/javcheck/runid"
)

// Fetcher retrieves the raw source documents.
type Fetcher interface {
	FetchAll(ctx context.Context, locations []string) ([][]byte, error)
}

// LoadBoards fetches every location and parses the boards they list.
func LoadBoards(ctx context.Context, f Fetcher, locations []string) ([]board.Board, error) {
	ctx, span := tracing.Start(ctx, "audit.LoadBoards")
	defer span.End()

	docs, err := f.FetchAll(ctx, locations)
	if err != nil {
		return nil, err
	}
	boards, err := htmlboards.ParseAll(docs)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("boards", len(boards)))
	return boards, nil
}

// Report is the outcome of one audit run.
type Report struct {
	RunID        string
	Assembly     board.ID
	AssemblyYear string
	TargetYear   string
	Absent       board.NameSet
	Corrections  []namefix.Correction
	Priority     []string
	Arena        *board.Arena
	Result       *grouping.Result
}

// AssemblyBoard returns the deciding assembly.
func (r *Report) AssemblyBoard() board.Board {
	return r.Arena.Get(r.Assembly)
}

// Auditor runs audits; it is safe for concurrent use.
type Auditor struct {
	log      *slog.Logger
	analyzer *grouping.Analyzer
}

// NewAuditor creates an auditor. metrics may be nil.
func NewAuditor(log *slog.Logger, metrics *grouping.Metrics) *Auditor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Auditor{
		log:      log,
		analyzer: grouping.NewAnalyzer(log, metrics),
	}
}

// Run audits the boards of the fiscal year before the assembly's year.
// boards is not modified.
func (a *Auditor) Run(ctx context.Context, boards []board.Board, cfg Config) (*Report, error) {
	ctx, span := tracing.Start(ctx, "audit.Run")
	defer span.End()

	rep := &Report{
		RunID:    runid.String(),
		Priority: CleanList(cfg.Priority),
	}
	log := a.log.With("runID", rep.RunID)

	baseBoard := cfg.BaseBoard
	if baseBoard == "" {
		baseBoard = DefaultBaseBoard
	}

	// Step 1: the deciding assembly and its roster
	assembly, err := FindAssembly(boards, baseBoard, cfg.VotingYear)
	if err != nil {
		return nil, err
	}
	rep.AssemblyYear = assembly.Year
	roster := assembly.MembersIn(assembly.Names())

	span.SetAttributes(
		attribute.String("assembly", assembly.Name),
		attribute.String("assembly.year", assembly.Year),
	)
	log.InfoContext(ctx, "assembly selected",
		"name", assembly.Name,
		"year", assembly.Year,
		"members", len(roster))

	// Step 2: absences
	rep.Absent, err = ResolveAbsent(roster, cfg.Absent)
	if err != nil {
		return nil, err
	}
	for name := range rep.Absent {
		log.DebugContext(ctx, "marked absent", "name", name)
	}

	// Step 3: audited year
	rep.TargetYear, err = PreviousYear(assembly.Year)
	if err != nil {
		return nil, fmt.Errorf("assembly %s: %w", assembly.Name, err)
	}

	// Step 4: align spelling of names on the audited boards with the roster
	threshold := max(cfg.Threshold, 0)
	fixed, corrections := namefix.Reconcile(boards, roster, rep.TargetYear, threshold)
	rep.Corrections = corrections
	for _, c := range corrections {
		log.InfoContext(ctx, "name corrected",
			"board", c.Board,
			"found", c.Found,
			"corrected", c.Corrected,
			"distance", c.Distance)
	}

	// Step 5: arena and candidates
	rep.Arena = board.NewArena(fixed...)
	id, ok := rep.Arena.Find(assembly.Name, assembly.Year)
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrAssemblyNotFound, assembly.Name, assembly.Year)
	}
	rep.Assembly = id

	candidates := rep.Arena.Filter(func(cid board.ID, b board.Board) bool {
		return cid != rep.Assembly && b.Year == rep.TargetYear
	})
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoCandidates, rep.TargetYear)
	}
	candidates = PrioritySort(rep.Arena, candidates, rep.Priority)

	// Step 6: partition
	start := time.Now()
	rep.Result = a.analyzer.Analyze(grouping.Input{
		Arena:      rep.Arena,
		Assembly:   rep.Assembly,
		Candidates: candidates,
		Absent:     rep.Absent,
	})

	span.SetAttributes(
		attribute.Int("candidates", len(candidates)),
		attribute.Int("groups", len(rep.Result.Groups)),
		attribute.Int("impossible", len(rep.Result.Impossible)),
	)
	log.InfoContext(ctx, "audit complete",
		"targetYear", rep.TargetYear,
		"candidates", len(candidates),
		"corrections", len(corrections),
		"groups", len(rep.Result.Groups),
		"impossible", len(rep.Result.Impossible),
		"duration", time.Since(start))

	return rep, nil
}
