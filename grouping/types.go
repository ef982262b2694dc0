package grouping

import "github.com/bthstudent/javcheck/board"

// Input is everything one analysis needs. Candidates are consumed in
// order; the engine never reorders them.
type Input struct {
	Arena      *board.Arena
	Assembly   board.ID
	Candidates []board.ID
	Absent     board.NameSet
}

// VotingGroup is a batch of boards decided in one agenda item.
type VotingGroup struct {
	Boards     []board.ID
	Conflicted board.NameSet // union of the boards' conflicts; only grows
}

// SkipReason identifies why a candidate was not considered
type SkipReason string

const (
	SkipAssembly  SkipReason = "assembly"  // the assembly board itself
	SkipDuplicate SkipReason = "duplicate" // ID already consumed
	SkipUnknown   SkipReason = "unknown"   // ID not issued by the arena
)

// Skip records a candidate ID the engine did not consume.
type Skip struct {
	ID     board.ID   `json:"id"`
	Reason SkipReason `json:"reason"`
}
