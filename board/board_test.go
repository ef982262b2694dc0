package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardNames(t *testing.T) {
	b := Board{Name: "SIT", Year: "2024/2025", Members: []Member{
		{"Ordförande", "Anna"},
		{"Kassör", "Bo"},
		{"Ledamot", "Anna"},
	}}

	assert.Equal(t, []string{"Anna", "Bo"}, b.Names().Sorted())
	assert.Equal(t, []string{"Anna"}, b.MembersIn(NewNameSet("Anna", "Cecilia")))
	assert.Empty(t, b.MembersIn(NameSet{}))
}

func TestBoardClone(t *testing.T) {
	b := Board{Name: "SIT", Members: []Member{{"Ledamot", "Anna"}}}
	c := b.Clone()
	c.Members[0].Name = "Bo"
	assert.Equal(t, "Anna", b.Members[0].Name)
}

func TestNameSetOperations(t *testing.T) {
	a := NewNameSet("Anna", "Bo", "Cecilia")
	b := NewNameSet("Bo", "Cecilia", "Doris")

	tests := []struct {
		name     string
		got      NameSet
		expected []string
	}{
		{"union", a.Union(b), []string{"Anna", "Bo", "Cecilia", "Doris"}},
		{"intersect", a.Intersect(b), []string{"Bo", "Cecilia"}},
		{"difference", a.Difference(b), []string{"Anna"}},
		{"intersect_empty", a.Intersect(NameSet{}), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got.Sorted())
		})
	}

	assert.Equal(t, 2, a.IntersectLen(b))
	assert.Equal(t, 2, b.IntersectLen(a))
	assert.Equal(t, 3, a.Len(), "operations must not modify the receiver")
}

func TestArena(t *testing.T) {
	src := Board{Name: "KIDS", Year: "2024/2025", Members: []Member{{"Ledamot", "Anna"}}}
	a := NewArena(src, Board{Name: "SIT", Year: "2024/2025"})

	src.Members[0].Name = "changed"
	assert.Equal(t, "Anna", a.Get(0).Members[0].Name, "arena keeps its own copy")

	id := a.Add(Board{Name: "KIDS", Year: "2023/2024"})
	assert.Equal(t, ID(2), id)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []ID{0, 1, 2}, a.IDs())

	found, ok := a.Find("KIDS", "2023/2024")
	require.True(t, ok)
	assert.Equal(t, ID(2), found)

	_, ok = a.Find("KIDS", "2020/2021")
	assert.False(t, ok)

	assert.True(t, a.Valid(1))
	assert.False(t, a.Valid(3))
	assert.False(t, a.Valid(-1))

	kids := a.Filter(func(_ ID, b Board) bool { return b.Name == "KIDS" })
	assert.Equal(t, []ID{0, 2}, kids)
}
