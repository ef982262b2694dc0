// Package testutil has fixtures shared by the package tests: board
// builders, an HTML page factory producing the tab-widget markup the
// scraper understands, and a test logger.
package testutil

import (
	"fmt"
	"html"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/bthstudent/javcheck/board"
)

// DefaultPosition is used for members created by MakeBoard.
const DefaultPosition = "Ledamot"

// MakeBoard creates a board where every member holds DefaultPosition.
func MakeBoard(name, year string, memberNames ...string) board.Board {
	b := board.Board{Name: name, Year: year}
	for _, n := range memberNames {
		b.Members = append(b.Members, board.Member{Position: DefaultPosition, Name: n})
	}
	return b
}

// Names returns n generated member names "P1".."Pn".
func Names(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("P%d", i+1)
	}
	return names
}

// PageFactory builds HTML documents in the layout published by the
// student union site: one section per fiscal year, one tab widget per
// section, one tab per board.
type PageFactory struct {
	sections []pageSection
}

type pageSection struct {
	heading string
	boards  []board.Board
	plain   bool
}

// NewPageFactory returns an empty page.
func NewPageFactory() *PageFactory {
	return &PageFactory{}
}

// Section adds a section whose heading is "Förtroendevalda <year>" and
// whose tab widget lists boards.
func (pf *PageFactory) Section(year string, boards ...board.Board) *PageFactory {
	pf.sections = append(pf.sections, pageSection{
		heading: "Förtroendevalda " + year,
		boards:  boards,
	})
	return pf
}

// PlainSection adds a section without the widget wrapper element, as
// seen on older versions of the page.
func (pf *PageFactory) PlainSection(year string, boards ...board.Board) *PageFactory {
	pf.sections = append(pf.sections, pageSection{
		heading: "Förtroendevalda " + year,
		boards:  boards,
		plain:   true,
	})
	return pf
}

// HTML renders the page.
func (pf *PageFactory) HTML() string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html><body>\n")
	for _, s := range pf.sections {
		sb.WriteString("<section>\n")
		fmt.Fprintf(&sb, "<h2>%s</h2>\n", html.EscapeString(s.heading))
		if !s.plain {
			sb.WriteString(`<div class="elementor-element elementor-widget-tabs">` + "\n")
		}
		sb.WriteString(`<div class="elementor-tabs-wrapper">` + "\n")
		for _, b := range s.boards {
			fmt.Fprintf(&sb, `<div class="elementor-tab-title elementor-tab-desktop-title">%s</div>`+"\n", html.EscapeString(b.Name))
		}
		sb.WriteString("</div>\n")
		sb.WriteString(`<div class="elementor-tabs-content-wrapper">` + "\n")
		for _, b := range s.boards {
			lines := make([]string, 0, len(b.Members))
			for _, m := range b.Members {
				lines = append(lines, html.EscapeString(m.Position+": "+m.Name))
			}
			fmt.Fprintf(&sb, `<div class="elementor-tab-content"><p>%s</p></div>`+"\n", strings.Join(lines, "<br />"))
		}
		sb.WriteString("</div>\n")
		if !s.plain {
			sb.WriteString("</div>\n")
		}
		sb.WriteString("</section>\n")
	}
	sb.WriteString("</body></html>\n")
	return sb.String()
}

// WriteFile renders the page into a file under t.TempDir and returns its path.
func (pf *PageFactory) WriteFile(t *testing.T) string {
	t.Helper()
	path := t.TempDir() + "/boards.html"
	if err := os.WriteFile(path, []byte(pf.HTML()), 0o600); err != nil {
		t.Fatalf("Failed to write test page: %v", err)
	}
	return path
}

// NewTestLogger creates a debug level logger writing to stderr, useful
// when running tests with -v.
func NewTestLogger(t *testing.T) *slog.Logger {
	t.Helper()
	if !testing.Verbose() {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
