// Package grouping implements the conflict-of-interest partitioning used
// when an assembly grants discharge to the boards of a fiscal year.
//
// Assembly members who also sat on a board are conflicted ("jäv") and must
// recuse when that board is decided. The assembly can only decide if the
// present, non-conflicted members still reach quorum, so boards are batched
// into voting groups whose combined conflicts leave enough voters.
//
// # Algorithm
//
// Boards are consumed in the order given by the caller:
//   - Feasibility: a board whose own present conflicts already drop the
//     eligible voters below quorum is impossible and never grouped.
//   - First fit: the board joins the first existing group (in creation
//     order) whose union of conflicts still leaves quorum.
//   - Otherwise the board starts a new group.
//
// First fit is a heuristic; it does not search for the minimum number of
// groups and its output depends on the input order.
//
// # Quorum
//
// The quorum limit is half the assembly seats rounded up. Absent members
// reduce the present count but do not count as conflicted voters.
//
// # Usage
//
//	an := grouping.NewAnalyzer(log, nil)
//	res := an.Analyze(grouping.Input{
//	    Arena:      arena,
//	    Assembly:   fumID,
//	    Candidates: candidateIDs,
//	    Absent:     absent,
//	})
package grouping
