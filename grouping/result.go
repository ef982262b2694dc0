package grouping

import "github.com/bthstudent/javcheck/board"

// Result is the outcome of one analysis. It is not modified after
// Analyze returns; the sets it exposes must be treated as read-only.
type Result struct {
	Groups     []VotingGroup
	Impossible []board.ID
	Skipped    []Skip

	TotalSeats   int
	PresentCount int
	QuorumLimit  int

	attendance Attendance
}

func newResult(att Attendance, groups []VotingGroup, impossible []board.ID, skipped []Skip) *Result {
	return &Result{
		Groups:       groups,
		Impossible:   impossible,
		Skipped:      skipped,
		TotalSeats:   att.Roster.TotalSeats(),
		PresentCount: att.PresentCount,
		QuorumLimit:  QuorumLimit(att.Roster.TotalSeats()),
		attendance:   att,
	}
}

// MeetingHasQuorum reports whether enough members are present for the
// assembly to decide anything at all.
func (r *Result) MeetingHasQuorum() bool {
	return r.PresentCount >= r.QuorumLimit
}

// EligibleVoters is the number of present members allowed to vote on g.
func (r *Result) EligibleVoters(g VotingGroup) int {
	return r.attendance.Eligible(g.Conflicted)
}

// PresentConflicts returns the sorted conflicted members of g who attend
// the meeting and therefore must abstain.
func (r *Result) PresentConflicts(g VotingGroup) []string {
	return g.Conflicted.Intersect(r.attendance.Present).Sorted()
}

// AbsentConflicts returns the sorted conflicted members of g who are absent.
func (r *Result) AbsentConflicts(g VotingGroup) []string {
	return g.Conflicted.Difference(r.attendance.Present).Sorted()
}

// Roster returns the sorted assembly member names.
func (r *Result) Roster() []string {
	return r.attendance.Roster.Names().Sorted()
}

// IsAbsent reports whether name is an absent assembly member.
func (r *Result) IsAbsent(name string) bool {
	return r.attendance.Absent.Has(name)
}

// Placed is the number of boards assigned to a group.
func (r *Result) Placed() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Boards)
	}
	return n
}
