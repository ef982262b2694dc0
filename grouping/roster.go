package grouping

import "github.com/bthstudent/javcheck/board"

// Roster is the set of distinct assembly member names.
type Roster struct {
	names board.NameSet
}

// NewRoster builds the roster from the assembly board.
func NewRoster(assembly board.Board) Roster {
	return Roster{names: assembly.Names()}
}

// TotalSeats is the number of distinct assembly members.
func (r Roster) TotalSeats() int {
	return r.names.Len()
}

// Names returns the roster as a set. The set is shared; callers must not
// modify it.
func (r Roster) Names() board.NameSet {
	return r.names
}

// Attendance is the roster split by presence at the meeting.
type Attendance struct {
	Roster       Roster
	Present      board.NameSet
	Absent       board.NameSet // absent roster members only
	PresentCount int
}

// WithAbsent resolves the present members given the absent names. Names
// that are not on the roster are ignored.
func (r Roster) WithAbsent(absent board.NameSet) Attendance {
	present := r.names.Difference(absent)
	return Attendance{
		Roster:       r,
		Present:      present,
		Absent:       r.names.Intersect(absent),
		PresentCount: present.Len(),
	}
}

// Eligible returns how many present members may vote when the members in
// conflicted recuse.
func (a Attendance) Eligible(conflicted board.NameSet) int {
	return a.PresentCount - conflicted.IntersectLen(a.Present)
}
