package grouping

import (
	"testing"

	"github.com/bthstudent/javcheck/board"
	"github.com/bthstudent/javcheck/testutil"
)

func TestQuorumLimit(t *testing.T) {
	tests := []struct {
		seats    int
		expected int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{10, 5},
		{31, 16},
		{101, 51},
	}

	for _, tt := range tests {
		if got := QuorumLimit(tt.seats); got != tt.expected {
			t.Errorf("QuorumLimit(%d) = %d, expected %d", tt.seats, got, tt.expected)
		}
	}
}

func TestRosterWithAbsent(t *testing.T) {
	fum := testutil.MakeBoard("Fullmäktige", "2025/2026", "A", "B", "C", "D", "E", "A")
	roster := NewRoster(fum)

	if roster.TotalSeats() != 5 {
		t.Fatalf("Expected 5 distinct seats, got %d", roster.TotalSeats())
	}

	tests := []struct {
		name            string
		absent          board.NameSet
		expectedPresent int
	}{
		{"nobody_absent", nil, 5},
		{"one_absent", board.NewNameSet("C"), 4},
		{"unknown_names_ignored", board.NewNameSet("Z", "Y"), 5},
		{"mixed_known_and_unknown", board.NewNameSet("A", "Z"), 4},
		{"everyone_absent", board.NewNameSet("A", "B", "C", "D", "E"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			att := roster.WithAbsent(tt.absent)
			if att.PresentCount != tt.expectedPresent {
				t.Errorf("PresentCount = %d, expected %d", att.PresentCount, tt.expectedPresent)
			}
			if att.PresentCount < 0 || att.PresentCount > roster.TotalSeats() {
				t.Errorf("PresentCount %d outside [0, %d]", att.PresentCount, roster.TotalSeats())
			}
			if att.Absent.Len()+att.PresentCount != roster.TotalSeats() {
				t.Errorf("absent (%d) + present (%d) != seats (%d)",
					att.Absent.Len(), att.PresentCount, roster.TotalSeats())
			}
		})
	}
}

func TestAttendanceConflicts(t *testing.T) {
	fum := testutil.MakeBoard("Fullmäktige", "2025/2026", "A", "B", "C", "D", "E")
	att := NewRoster(fum).WithAbsent(board.NewNameSet("B"))

	kids := testutil.MakeBoard("KIDS", "2024/2025", "A", "B", "Outsider", "A")
	all, present := att.Conflicts(kids)

	if all.Len() != 2 || !all.Has("A") || !all.Has("B") {
		t.Errorf("Expected conflicts {A, B}, got %v", all.Sorted())
	}
	if present.Len() != 1 || !present.Has("A") {
		t.Errorf("Expected present conflicts {A}, got %v", present.Sorted())
	}
	if att.Eligible(all) != 3 {
		t.Errorf("Expected 3 eligible voters, got %d", att.Eligible(all))
	}

	none, nonePresent := att.Conflicts(testutil.MakeBoard("SIT", "2024/2025", "X", "Y"))
	if none.Len() != 0 || nonePresent.Len() != 0 {
		t.Errorf("Expected no conflicts, got %v / %v", none.Sorted(), nonePresent.Sorted())
	}
}
