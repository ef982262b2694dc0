package audit

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/bthstudent/javcheck/board"
)

// DefaultBaseBoard is the name of the deciding assembly on the site.
const DefaultBaseBoard = "Fullmäktige"

// Config selects what to audit.
type Config struct {
	BaseBoard  string   // name of the deciding assembly
	VotingYear string   // assembly year; empty picks the latest
	Absent     []string // assembly members missing from the meeting
	Priority   []string // board names to place first
	Threshold  int      // largest edit distance for name corrections
}

// FindAssembly returns the board named name for year. An empty year
// selects the board with the greatest year string.
func FindAssembly(boards []board.Board, name, year string) (board.Board, error) {
	var found *board.Board
	for i, b := range boards {
		if b.Name != name {
			continue
		}
		if year != "" {
			if b.Year == year {
				return b, nil
			}
			continue
		}
		if found == nil || b.Year > found.Year {
			found = &boards[i]
		}
	}
	if found == nil {
		if year != "" {
			return board.Board{}, fmt.Errorf("%w: %s (%s)", ErrAssemblyNotFound, name, year)
		}
		return board.Board{}, fmt.Errorf("%w: %s", ErrAssemblyNotFound, name)
	}
	return *found, nil
}

// PreviousYear returns the fiscal year before year, "2025/2026" giving
// "2024/2025".
func PreviousYear(year string) (string, error) {
	start, end, ok := strings.Cut(year, "/")
	if !ok || strings.Contains(end, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidYear, year)
	}
	s, err := strconv.Atoi(start)
	if err != nil {
		return "", fmt.Errorf("%w: start year %q", ErrInvalidYear, start)
	}
	e, err := strconv.Atoi(end)
	if err != nil {
		return "", fmt.Errorf("%w: end year %q", ErrInvalidYear, end)
	}
	return fmt.Sprintf("%d/%d", s-1, e-1), nil
}

// ResolveAbsent maps requested names to roster spelling, ignoring case
// and surrounding space. Every name not on the roster is reported in one
// *UnknownAbsenteeError.
func ResolveAbsent(roster []string, requested []string) (board.NameSet, error) {
	fold := cases.Fold()
	byFolded := make(map[string]string, len(roster))
	for _, name := range roster {
		key := fold.String(name)
		if _, ok := byFolded[key]; !ok {
			byFolded[key] = name
		}
	}

	absent := board.NameSet{}
	var unknown []string
	for _, r := range requested {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		name, ok := byFolded[fold.String(r)]
		if !ok {
			unknown = append(unknown, r)
			continue
		}
		absent.Add(name)
	}

	if len(unknown) > 0 {
		return nil, &UnknownAbsenteeError{Names: unknown}
	}
	return absent, nil
}

// CleanList trims entries and drops empty ones.
func CleanList(list []string) []string {
	var out []string
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// PrioritySort returns ids with the boards named in priority first. The
// comparison ignores case; relative order is kept within both parts.
func PrioritySort(arena *board.Arena, ids []board.ID, priority []string) []board.ID {
	out := slices.Clone(ids)

	want := board.NameSet{}
	for _, p := range CleanList(priority) {
		want.Add(strings.ToLower(p))
	}
	if want.Len() == 0 {
		return out
	}

	rank := func(id board.ID) int {
		if want.Has(strings.ToLower(arena.Get(id).Name)) {
			return 0
		}
		return 1
	}
	slices.SortStableFunc(out, func(a, b board.ID) int {
		return rank(a) - rank(b)
	})
	return out
}
