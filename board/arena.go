package board

// ID addresses a board stored in an Arena. IDs are dense and stable for
// the lifetime of the arena.
type ID int

// Arena is an append-only store of boards. Analysis results refer to
// boards by ID so they never hold on to caller-owned slices.
type Arena struct {
	boards []Board
}

// NewArena returns an arena pre-filled with boards, in order; the first
// board gets ID 0.
func NewArena(boards ...Board) *Arena {
	a := &Arena{boards: make([]Board, 0, len(boards))}
	for _, b := range boards {
		a.Add(b)
	}
	return a
}

// Add stores a copy of b and returns its ID.
func (a *Arena) Add(b Board) ID {
	a.boards = append(a.boards, b.Clone())
	return ID(len(a.boards) - 1)
}

// Get returns the board for id. It panics on an ID the arena never issued.
func (a *Arena) Get(id ID) Board {
	return a.boards[id]
}

// Valid reports whether id was issued by this arena.
func (a *Arena) Valid(id ID) bool {
	return id >= 0 && int(id) < len(a.boards)
}

func (a *Arena) Len() int {
	return len(a.boards)
}

// IDs returns every ID in insertion order.
func (a *Arena) IDs() []ID {
	ids := make([]ID, len(a.boards))
	for i := range a.boards {
		ids[i] = ID(i)
	}
	return ids
}

// Find returns the first board with the given name and year.
func (a *Arena) Find(name, year string) (ID, bool) {
	for i, b := range a.boards {
		if b.Name == name && b.Year == year {
			return ID(i), true
		}
	}
	return -1, false
}

// Filter returns the IDs of boards for which keep returns true, in
// insertion order.
func (a *Arena) Filter(keep func(ID, Board) bool) []ID {
	var ids []ID
	for i, b := range a.boards {
		if keep(ID(i), b) {
			ids = append(ids, ID(i))
		}
	}
	return ids
}
