package report

import (
	"encoding/json"
	"io"

	"github.com/bthstudent/javcheck/audit"
	"github.com/bthstudent/javcheck/board"
	"github.com/bthstudent/javcheck/grouping"
	"github.com/bthstudent/javcheck/namefix"
)

// Document is the machine-readable form of an analysis.
type Document struct {
	RunID      string `json:"runId,omitempty"`
	Assembly   Ref    `json:"assembly"`
	TargetYear string `json:"targetYear,omitempty"`

	TotalSeats       int  `json:"totalSeats"`
	PresentCount     int  `json:"presentCount"`
	QuorumLimit      int  `json:"quorumLimit"`
	MeetingHasQuorum bool `json:"meetingHasQuorum"`

	Members     []MemberStatus       `json:"members"`
	Corrections []namefix.Correction `json:"corrections,omitempty"`
	Priority    []string             `json:"priority,omitempty"`

	Groups     []Group         `json:"groups"`
	Impossible []BoardConflict `json:"impossible"`
	Skipped    []grouping.Skip `json:"skipped,omitempty"`
}

// Ref names a board.
type Ref struct {
	Name string `json:"name"`
	Year string `json:"year"`
}

type MemberStatus struct {
	Name   string `json:"name"`
	Absent bool   `json:"absent"`
}

// BoardConflict is a board with the assembly members sitting on it.
type BoardConflict struct {
	Ref
	Conflicted []string `json:"conflicted"`
}

type Group struct {
	Number          int             `json:"number"`
	EligibleVoters  int             `json:"eligibleVoters"`
	PresentConflict []string        `json:"presentConflicted"`
	AbsentConflict  []string        `json:"absentConflicted"`
	Boards          []BoardConflict `json:"boards"`
}

// NewResultDocument describes an engine result. Boards are listed in the
// order the engine placed them.
func NewResultDocument(arena *board.Arena, assembly board.ID, res *grouping.Result) Document {
	doc := Document{
		TotalSeats:       res.TotalSeats,
		PresentCount:     res.PresentCount,
		QuorumLimit:      res.QuorumLimit,
		MeetingHasQuorum: res.MeetingHasQuorum(),
		Members:          []MemberStatus{},
		Groups:           []Group{},
		Impossible:       []BoardConflict{},
		Skipped:          res.Skipped,
	}
	if arena.Valid(assembly) {
		a := arena.Get(assembly)
		doc.Assembly = Ref{Name: a.Name, Year: a.Year}
	}

	for _, name := range res.Roster() {
		doc.Members = append(doc.Members, MemberStatus{Name: name, Absent: res.IsAbsent(name)})
	}

	roster := board.NewNameSet(res.Roster()...)
	for _, id := range res.Impossible {
		b := arena.Get(id)
		doc.Impossible = append(doc.Impossible, boardConflict(b, roster))
	}

	for i, g := range res.Groups {
		group := Group{
			Number:          i + 1,
			EligibleVoters:  res.EligibleVoters(g),
			PresentConflict: nonNil(res.PresentConflicts(g)),
			AbsentConflict:  nonNil(res.AbsentConflicts(g)),
		}
		for _, id := range g.Boards {
			group.Boards = append(group.Boards, boardConflict(arena.Get(id), g.Conflicted))
		}
		doc.Groups = append(doc.Groups, group)
	}

	return doc
}

// NewDocument describes a complete audit run.
func NewDocument(rep *audit.Report) Document {
	doc := NewResultDocument(rep.Arena, rep.Assembly, rep.Result)
	doc.RunID = rep.RunID
	doc.TargetYear = rep.TargetYear
	doc.Corrections = rep.Corrections
	doc.Priority = rep.Priority
	return doc
}

// JSON writes the audit as an indented JSON document.
func JSON(w io.Writer, rep *audit.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(rep))
}

func boardConflict(b board.Board, conflicted board.NameSet) BoardConflict {
	return BoardConflict{
		Ref:        Ref{Name: b.Name, Year: b.Year},
		Conflicted: nonNil(b.MembersIn(conflicted)),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
