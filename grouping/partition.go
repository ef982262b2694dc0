package grouping

import (
	"log/slog"
	"time"

	"github.com/bthstudent/javcheck/board"
)

// Analyzer runs the partitioning. It holds no per-analysis state, so one
// Analyzer can serve concurrent Analyze calls.
type Analyzer struct {
	log     *slog.Logger
	metrics *Metrics
}

// NewAnalyzer creates an analyzer. Both log and metrics may be nil.
func NewAnalyzer(log *slog.Logger, metrics *Metrics) *Analyzer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{log: log, metrics: metrics}
}

// Analyze partitions the candidate boards into voting groups.
//
// The caller is expected to leave the assembly board out of Candidates;
// if it is there anyway it is skipped, as are repeated IDs and IDs the
// arena did not issue. An invalid Assembly ID is an assembly without
// members. Analyze never fails.
func (an *Analyzer) Analyze(in Input) *Result {
	start := time.Now()

	// Step 1: roster, quorum and attendance
	var assembly board.Board
	if in.Arena != nil && in.Arena.Valid(in.Assembly) {
		assembly = in.Arena.Get(in.Assembly)
	}
	att := NewRoster(assembly).WithAbsent(in.Absent)
	quorum := QuorumLimit(att.Roster.TotalSeats())

	an.log.Debug("analysis starting",
		"assembly", assembly.Name,
		"year", assembly.Year,
		"totalSeats", att.Roster.TotalSeats(),
		"present", att.PresentCount,
		"quorum", quorum,
		"candidates", len(in.Candidates))

	var (
		groups     []VotingGroup
		impossible []board.ID
		skipped    []Skip
	)
	seen := make(map[board.ID]bool, len(in.Candidates))

	for _, id := range in.Candidates {
		// Step 2: only consume each valid, non-assembly board once
		switch {
		case in.Arena == nil || !in.Arena.Valid(id):
			skipped = append(skipped, Skip{ID: id, Reason: SkipUnknown})
			continue
		case id == in.Assembly:
			skipped = append(skipped, Skip{ID: id, Reason: SkipAssembly})
			continue
		case seen[id]:
			skipped = append(skipped, Skip{ID: id, Reason: SkipDuplicate})
			continue
		}
		seen[id] = true
		b := in.Arena.Get(id)

		// Step 3: feasibility gate
		conflicts, present := att.Conflicts(b)
		eligibleAlone := att.PresentCount - present.Len()
		if eligibleAlone < quorum {
			an.log.Debug("board cannot be decided",
				"board", b.Name,
				"year", b.Year,
				"conflicts", conflicts.Len(),
				"presentConflicts", present.Len(),
				"eligible", eligibleAlone,
				"quorum", quorum)
			impossible = append(impossible, id)
			continue
		}

		// Step 4: first fit over existing groups, in creation order
		placed := false
		for i := range groups {
			remaining := att.unionEligible(groups[i].Conflicted, conflicts)
			if remaining < quorum {
				continue
			}
			groups[i].Boards = append(groups[i].Boards, id)
			groups[i].Conflicted = groups[i].Conflicted.Union(conflicts)
			placed = true
			an.log.Debug("board joined group",
				"board", b.Name,
				"group", i+1,
				"eligible", remaining)
			break
		}

		// Step 5: open a new group
		if !placed {
			groups = append(groups, VotingGroup{
				Boards:     []board.ID{id},
				Conflicted: conflicts,
			})
			an.log.Debug("board opened group",
				"board", b.Name,
				"group", len(groups),
				"eligible", eligibleAlone)
		}
	}

	res := newResult(att, groups, impossible, skipped)

	if an.metrics != nil {
		an.metrics.RecordAnalysis(res, time.Since(start).Seconds())
	}

	an.log.Info("analysis complete",
		"assembly", assembly.Name,
		"groups", len(res.Groups),
		"placed", res.Placed(),
		"impossible", len(res.Impossible),
		"skipped", len(res.Skipped),
		"present", res.PresentCount,
		"quorum", res.QuorumLimit)

	return res
}
