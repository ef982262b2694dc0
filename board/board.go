// Package board holds the records the audit works on: boards, their
// members, an arena addressing boards by stable identifiers, and the name
// sets used for conflict arithmetic.
package board

// Member is one seat on a board. Name is the identity used for all set
// operations; Position is descriptive only.
type Member struct {
	Position string `json:"position"`
	Name     string `json:"name"`
}

// Board is one governing body's roster for one fiscal year.
type Board struct {
	Name    string   `json:"name"`
	Year    string   `json:"year"`
	Members []Member `json:"members"`
}

// Names returns the distinct member names of the board.
func (b Board) Names() NameSet {
	s := make(NameSet, len(b.Members))
	for _, m := range b.Members {
		s.Add(m.Name)
	}
	return s
}

// MembersIn returns the names of the board's members that are in set, in
// member order and without duplicates.
func (b Board) MembersIn(set NameSet) []string {
	var names []string
	seen := NameSet{}
	for _, m := range b.Members {
		if !set.Has(m.Name) || seen.Has(m.Name) {
			continue
		}
		seen.Add(m.Name)
		names = append(names, m.Name)
	}
	return names
}

// Clone returns a deep copy so callers can rewrite member names without
// touching the original.
func (b Board) Clone() Board {
	c := b
	c.Members = append([]Member(nil), b.Members...)
	return c
}
