// Package htmlboards extracts board rosters from the elected officials
// page of the student union web site.
//
// The page has one section per fiscal year. A heading in the section
// names the year (e.g. "Förtroendevalda 2025/2026") and a tab widget holds
// one tab per board; each tab lists members as "Position: Name" lines.
package htmlboards

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bthstudent/javcheck/board"
)

// UnknownYear is used for boards in sections without a year heading.
const UnknownYear = "Okänt år"

const (
	classWidget         = "elementor-widget-tabs"
	classTabsWrapper    = "elementor-tabs-wrapper"
	classContentWrapper = "elementor-tabs-content-wrapper"
	classTitle          = "elementor-tab-desktop-title"
	classContent        = "elementor-tab-content"
)

var yearPattern = regexp.MustCompile(`20\d{2}/20\d{2}`)

// Parse reads one HTML document and returns its boards in document order.
func Parse(r io.Reader) ([]board.Board, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	c := newCollector()
	c.document(doc)
	return c.boards, nil
}

// ParseAll parses several documents. A board (name and year) found in more
// than one place is taken from the first occurrence that has members.
func ParseAll(docs [][]byte) ([]board.Board, error) {
	c := newCollector()
	for i, d := range docs {
		doc, err := html.Parse(bytes.NewReader(d))
		if err != nil {
			return nil, fmt.Errorf("parse html document %d: %w", i, err)
		}
		c.document(doc)
	}
	return c.boards, nil
}

type boardKey struct {
	name string
	year string
}

type collector struct {
	boards []board.Board
	seen   map[boardKey]bool
}

func newCollector() *collector {
	return &collector{seen: map[boardKey]bool{}}
}

func (c *collector) document(doc *html.Node) {
	for _, section := range findAll(doc, isAtom(atom.Section)) {
		year := UnknownYear
		for _, h := range findAll(section, isAtom(atom.H1, atom.H2, atom.H3)) {
			if m := yearPattern.FindString(textContent(h)); m != "" {
				year = m
			}
		}

		widgets := findAll(section, hasClass(classWidget))
		if len(widgets) == 0 {
			widgets = []*html.Node{section}
		}
		for _, w := range widgets {
			c.widget(w, year)
		}
	}
}

func (c *collector) widget(w *html.Node, year string) {
	tabs := findFirst(w, hasClass(classTabsWrapper))
	contents := findFirst(w, hasClass(classContentWrapper))
	if tabs == nil || contents == nil {
		return
	}

	titles := findAll(tabs, hasClass(classTitle))
	panes := findAll(contents, hasClass(classContent))

	for i, t := range titles {
		name := normalizeSpace(textContent(t))
		if name == "" || i >= len(panes) {
			continue
		}
		key := boardKey{name: name, year: year}
		if c.seen[key] {
			continue
		}
		members := ParseMembers(ExtractText(panes[i]))
		if len(members) == 0 {
			continue
		}
		c.seen[key] = true
		c.boards = append(c.boards, board.Board{
			Name:    name,
			Year:    year,
			Members: members,
		})
	}
}

// ParseMembers reads "Position: Name" lines. A line without a colon
// continues the name of the member before it; a colon line with an empty
// position is dropped together with its continuation lines.
func ParseMembers(text string) []board.Member {
	var members []board.Member
	var current *board.Member

	flush := func() {
		if current != nil && current.Name != "" {
			members = append(members, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = normalizeSpace(line)
		if line == "" {
			continue
		}

		if pos, name, ok := strings.Cut(line, ":"); ok {
			flush()
			pos = strings.TrimSpace(pos)
			if pos != "" {
				current = &board.Member{Position: pos, Name: strings.TrimSpace(name)}
			}
			continue
		}

		if current == nil {
			continue
		}
		if current.Name != "" {
			current.Name += " "
		}
		current.Name += line
	}
	flush()

	return members
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
