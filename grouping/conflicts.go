package grouping

import "github.com/bthstudent/javcheck/board"

// Conflicts returns the board members that also sit in the assembly, and
// the subset of those that are present at the meeting.
func (a Attendance) Conflicts(b board.Board) (all, present board.NameSet) {
	all = board.NameSet{}
	present = board.NameSet{}
	for _, m := range b.Members {
		if !a.Roster.names.Has(m.Name) {
			continue
		}
		all.Add(m.Name)
		if a.Present.Has(m.Name) {
			present.Add(m.Name)
		}
	}
	return all, present
}

// unionEligible is Eligible(g ∪ extra) without building the union.
func (a Attendance) unionEligible(g, extra board.NameSet) int {
	recused := g.IntersectLen(a.Present)
	for n := range extra {
		if !g.Has(n) && a.Present.Has(n) {
			recused++
		}
	}
	return a.PresentCount - recused
}
