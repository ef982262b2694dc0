package htmlboards

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bthstudent/javcheck/board"
	"github.com/bthstudent/javcheck/testutil"
)

func TestParsePlainSection(t *testing.T) {
	page := `
    <section>
        <h2>Förtroendevalda 2025/2026</h2>
        <div class="elementor-tabs-wrapper">
            <div class="elementor-tab-desktop-title">TestStyrelse</div>
        </div>
        <div class="elementor-tabs-content-wrapper">
            <div class="elementor-tab-content">
                <p>Ordförande: Cindy Nilsson<br />Ledamot: Winnow Master</p>
            </div>
        </div>
    </section>
    `

	boards, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, boards, 1)

	assert.Equal(t, "TestStyrelse", boards[0].Name)
	assert.Equal(t, "2025/2026", boards[0].Year)
	assert.Equal(t, []board.Member{
		{Position: "Ordförande", Name: "Cindy Nilsson"},
		{Position: "Ledamot", Name: "Winnow Master"},
	}, boards[0].Members)
}

func TestParseFactoryPage(t *testing.T) {
	fum := testutil.MakeBoard("Fullmäktige", "2025/2026", "Anna Berg", "Bo Ek")
	kids := testutil.MakeBoard("KIDS", "2024/2025", "Anna Berg", "Cecilia Dahl")
	sit := testutil.MakeBoard("SIT", "2024/2025", "Bo Ek")
	oldFum := testutil.MakeBoard("Fullmäktige", "2024/2025", "Bo Ek", "Doris Fors")

	page := testutil.NewPageFactory().
		Section("2025/2026", fum).
		Section("2024/2025", kids, sit, oldFum).
		HTML()

	boards, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, []board.Board{fum, kids, sit, oldFum}, boards)
}

func TestParseFirstOccurrenceWins(t *testing.T) {
	first := testutil.MakeBoard("KIDS", "2024/2025", "Anna")
	second := testutil.MakeBoard("KIDS", "2024/2025", "Someone Else")
	otherYear := testutil.MakeBoard("KIDS", "2023/2024", "Old")

	page := testutil.NewPageFactory().
		Section("2024/2025", first).
		Section("2024/2025", second).
		Section("2023/2024", otherYear).
		HTML()

	boards, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, []board.Board{first, otherYear}, boards)
}

func TestParseSkipsEmptyBoards(t *testing.T) {
	page := `
	<section>
	  <h3>Verksamhetsår 2024/2025</h3>
	  <div class="elementor-widget-tabs">
	    <div class="elementor-tabs-wrapper">
	      <div class="elementor-tab-desktop-title">Vakant</div>
	      <div class="elementor-tab-desktop-title">  </div>
	      <div class="elementor-tab-desktop-title">SIT</div>
	      <div class="elementor-tab-desktop-title">No pane</div>
	    </div>
	    <div class="elementor-tabs-content-wrapper">
	      <div class="elementor-tab-content"><p>Ingen information</p></div>
	      <div class="elementor-tab-content"><p>Ordförande: Ghost</p></div>
	      <div class="elementor-tab-content"><ul><li>Ordförande: Bo Ek</li><li>Kassör: Eva</li></ul></div>
	    </div>
	  </div>
	</section>`

	boards, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "SIT", boards[0].Name)
	assert.Equal(t, "2024/2025", boards[0].Year)
	assert.Equal(t, []board.Member{
		{Position: "Ordförande", Name: "Bo Ek"},
		{Position: "Kassör", Name: "Eva"},
	}, boards[0].Members)
}

func TestParseYearHeading(t *testing.T) {
	tests := []struct {
		name     string
		headings string
		expected string
	}{
		{"no_heading", "", UnknownYear},
		{"heading_without_year", "<h2>Styrelser</h2>", UnknownYear},
		{"last_matching_heading_wins", "<h1>Arkiv 2022/2023</h1><h3>Aktuellt 2023/2024</h3><h2>Ingen</h2>", "2023/2024"},
		{"h4_is_ignored", "<h2>2021/2022</h2><h4>2030/2031</h4>", "2021/2022"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := `<section>` + tt.headings + `
			<div class="elementor-tabs-wrapper"><div class="elementor-tab-desktop-title">KIDS</div></div>
			<div class="elementor-tabs-content-wrapper"><div class="elementor-tab-content">Ledamot: Anna</div></div>
			</section>`

			boards, err := Parse(strings.NewReader(page))
			require.NoError(t, err)
			require.Len(t, boards, 1)
			assert.Equal(t, tt.expected, boards[0].Year)
		})
	}
}

func TestParseAll(t *testing.T) {
	a := testutil.NewPageFactory().Section("2024/2025",
		testutil.MakeBoard("KIDS", "2024/2025", "Anna"),
	).HTML()
	b := testutil.NewPageFactory().Section("2024/2025",
		testutil.MakeBoard("KIDS", "2024/2025", "Duplicate"),
		testutil.MakeBoard("SIT", "2024/2025", "Bo"),
	).HTML()

	boards, err := ParseAll([][]byte{[]byte(a), []byte(b)})
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, "Anna", boards[0].Members[0].Name)
	assert.Equal(t, "SIT", boards[1].Name)
}

func TestParseMembers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []board.Member
	}{
		{
			name:     "simple_lines",
			input:    "Ordförande: Anna Berg\nKassör: Bo Ek",
			expected: []board.Member{{"Ordförande", "Anna Berg"}, {"Kassör", "Bo Ek"}},
		},
		{
			name:     "name_continues_on_next_line",
			input:    "Ordförande: Anna\nBerg Lindqvist\nKassör:\nBo Ek",
			expected: []board.Member{{"Ordförande", "Anna Berg Lindqvist"}, {"Kassör", "Bo Ek"}},
		},
		{
			name:     "blank_lines_and_whitespace",
			input:    "\n\n   Ordförande :   Anna\u00a0\u00a0Berg  \n\t\n",
			expected: []board.Member{{"Ordförande", "Anna Berg"}},
		},
		{
			name:     "text_before_first_member_is_ignored",
			input:    "Styrelsen består av\nLedamot: Anna",
			expected: []board.Member{{"Ledamot", "Anna"}},
		},
		{
			name:     "empty_position_drops_line_and_continuation",
			input:    "Ledamot: Anna\n: Nobody\nstill nobody\nLedamot: Bo",
			expected: []board.Member{{"Ledamot", "Anna"}, {"Ledamot", "Bo"}},
		},
		{
			name:     "only_first_colon_splits",
			input:    "Ledamot: Anna: the second",
			expected: []board.Member{{"Ledamot", "Anna: the second"}},
		},
		{
			name:     "member_without_name_is_dropped",
			input:    "Ledamot:\nKassör: Bo",
			expected: []board.Member{{"Kassör", "Bo"}},
		},
		{
			name:     "no_members",
			input:    "Vakant",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMembers(tt.input))
		})
	}
}

func TestExtractTextDeeplyNested(t *testing.T) {
	const depth = 200
	page := "<div>" + strings.Repeat("<span>", depth) + "Ledamot: Anna" +
		strings.Repeat("</span>", depth) + "<br>Kassör: Bo</div>"

	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)

	div := findFirst(doc, isAtom(atom.Div))
	require.NotNil(t, div)

	members := ParseMembers(ExtractText(div))
	assert.Equal(t, []board.Member{{"Ledamot", "Anna"}, {"Kassör", "Bo"}}, members)
}
