// Package namefix reconciles member names found on board pages with the
// spelling used on the assembly roster.
//
// Board pages are edited by hand and the same person is often written
// slightly differently on two tabs. Conflict detection compares names
// exactly, so near-misses are rewritten to the roster spelling before the
// analysis runs.
package namefix

import (
	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/bthstudent/javcheck/board"
)

// DefaultThreshold is the largest edit distance accepted as a typo.
const DefaultThreshold = 3

// Correction records one rewritten member name.
type Correction struct {
	Board     string `json:"board"`
	Year      string `json:"year"`
	Position  string `json:"position"`
	Found     string `json:"found"`
	Corrected string `json:"corrected"`
	Distance  int    `json:"distance"`
}

// Reconcile returns copies of boards where the members of every board
// from year have been matched against roster. A name that differs from a
// roster name only in case is rewritten with distance 0. Otherwise the
// closest roster name by case-folded edit distance is used when the
// distance is at most threshold; ties go to the earlier roster name.
//
// Boards from other years are copied unchanged. The input is never
// modified.
func Reconcile(boards []board.Board, roster []string, year string, threshold int) ([]board.Board, []Correction) {
	m := newMatcher(roster, threshold)

	out := make([]board.Board, len(boards))
	var corrections []Correction

	for i, b := range boards {
		out[i] = b.Clone()
		if b.Year != year {
			continue
		}
		for j, mem := range out[i].Members {
			name, dist, ok := m.match(mem.Name)
			if !ok {
				continue
			}
			out[i].Members[j].Name = name
			corrections = append(corrections, Correction{
				Board:     b.Name,
				Year:      b.Year,
				Position:  mem.Position,
				Found:     mem.Name,
				Corrected: name,
				Distance:  dist,
			})
		}
	}

	return out, corrections
}

type matcher struct {
	roster    []string
	folded    []string
	exact     board.NameSet
	threshold int
	caser     cases.Caser
}

func newMatcher(roster []string, threshold int) *matcher {
	m := &matcher{
		exact:     board.NameSet{},
		threshold: threshold,
		caser:     cases.Fold(),
	}
	for _, name := range roster {
		if name == "" || m.exact.Has(name) {
			continue
		}
		m.exact.Add(name)
		m.roster = append(m.roster, name)
		m.folded = append(m.folded, m.caser.String(name))
	}
	return m
}

// match returns the roster spelling for name and its distance, or false
// when name is already canonical or too far from every roster name.
func (m *matcher) match(name string) (string, int, bool) {
	if name == "" || m.exact.Has(name) || len(m.roster) == 0 {
		return "", 0, false
	}

	folded := m.caser.String(name)
	for i, r := range m.folded {
		if r == folded {
			return m.roster[i], 0, true
		}
	}

	best, bestDist := -1, 0
	for i, r := range m.folded {
		d := levenshtein.ComputeDistance(folded, r)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if bestDist == 0 || bestDist > m.threshold {
		return "", 0, false
	}
	return m.roster[best], bestDist, true
}
