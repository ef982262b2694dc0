package grouping

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bthstudent/javcheck/board"
	"github.com/bthstudent/javcheck/testutil"
)

// randomInput builds a reproducible assembly, candidate list and absence
// set. Board members are drawn from the roster plus a few outsiders.
func randomInput(r *rand.Rand) Input {
	roster := testutil.Names(r.IntN(13))
	pool := append(append([]string{}, roster...), "X1", "X2", "X3")

	var absent []string
	for _, n := range roster {
		if r.IntN(4) == 0 {
			absent = append(absent, n)
		}
	}
	if r.IntN(3) == 0 {
		absent = append(absent, "NotOnRoster")
	}

	var boards []board.Board
	for i := range r.IntN(16) {
		var members []string
		for range r.IntN(6) {
			members = append(members, pool[r.IntN(len(pool))])
		}
		boards = append(boards, testutil.MakeBoard(fmt.Sprintf("Board%d", i), auditYear, members...))
	}

	return scenario(roster, absent, boards...)
}

func impossibleSet(res *Result) map[board.ID]bool {
	s := map[board.ID]bool{}
	for _, id := range res.Impossible {
		s[id] = true
	}
	return s
}

func TestAnalyzeRandomized(t *testing.T) {
	r := rand.New(rand.NewPCG(2024, 2025))
	an := NewAnalyzer(nil, nil)

	for i := range 500 {
		in := randomInput(r)
		t.Run(fmt.Sprintf("case_%03d", i), func(t *testing.T) {
			res := an.Analyze(in)
			checkResult(t, in, res)
		})
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	an := NewAnalyzer(nil, nil)

	for range 100 {
		in := randomInput(r)
		first := an.Analyze(in)
		second := an.Analyze(in)

		require.Equal(t, len(first.Groups), len(second.Groups))
		for i := range first.Groups {
			assert.Equal(t, first.Groups[i].Boards, second.Groups[i].Boards)
			assert.Equal(t, first.Groups[i].Conflicted.Sorted(), second.Groups[i].Conflicted.Sorted())
		}
		assert.Equal(t, first.Impossible, second.Impossible)
		assert.Equal(t, first.PresentCount, second.PresentCount)
		assert.Equal(t, first.QuorumLimit, second.QuorumLimit)
	}
}

func TestAbsenceMonotonicity(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	an := NewAnalyzer(nil, nil)

	for range 200 {
		in := randomInput(r)
		if len(in.Candidates) == 0 {
			continue
		}
		before := an.Analyze(in)
		beforeImpossible := impossibleSet(before)
		att := NewRoster(in.Arena.Get(in.Assembly)).WithAbsent(in.Absent)

		id := in.Candidates[r.IntN(len(in.Candidates))]
		_, present := att.Conflicts(in.Arena.Get(id))

		// a conflicted member of the board leaves: the board never becomes impossible
		for name := range present {
			moved := in
			moved.Absent = in.Absent.Union(board.NewNameSet(name))
			after := an.Analyze(moved)
			if !beforeImpossible[id] {
				assert.NotContains(t, after.Impossible, id,
					"absence of conflicted %q made board impossible", name)
			}
			break
		}

		// a non-conflicted member leaves: impossible boards stay impossible
		for name := range att.Present {
			if present.Has(name) {
				continue
			}
			moved := in
			moved.Absent = in.Absent.Union(board.NewNameSet(name))
			after := an.Analyze(moved)
			afterImpossible := impossibleSet(after)

			assert.Equal(t, before.PresentCount-1, after.PresentCount)
			for bid := range beforeImpossible {
				assert.True(t, afterImpossible[bid],
					"absence of %q made board %d decidable", name, bid)
			}
			break
		}
	}
}
