// Package report renders audit results for people (Swedish text, the
// language of the assembly) and for machines (JSON).
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bthstudent/javcheck/audit"
	"github.com/bthstudent/javcheck/board"
)

const separator = "------------------------------------------------"

type styles struct {
	heading lipgloss.Style
	title   lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	danger  lipgloss.Style
	alarm   lipgloss.Style
	board   lipgloss.Style
	dim     lipgloss.Style
	italic  lipgloss.Style
	strong  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		title:   r.NewStyle().Bold(true).Underline(true),
		ok:      r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		danger:  r.NewStyle().Foreground(lipgloss.Color("1")),
		alarm:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Blink(true),
		board:   r.NewStyle().Foreground(lipgloss.Color("6")),
		dim:     r.NewStyle().Faint(true),
		italic:  r.NewStyle().Italic(true),
		strong:  r.NewStyle().Bold(true),
	}
}

// printer collects the first write error so the rendering code can stay
// linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// Text writes the audit report. Colours are only used when w is a
// terminal.
func Text(w io.Writer, rep *audit.Report) error {
	p := &printer{w: w}
	st := newStyles(lipgloss.NewRenderer(w))
	res := rep.Result
	assembly := rep.AssemblyBoard()

	if rep.Absent.Len() > 0 {
		p.line("%s", st.heading.Render("FRÅNVAROHANTERING"))
		for _, name := range rep.Absent.Sorted() {
			p.line("  [INFO] %s markeras som frånvarande.", st.warn.Render(name))
		}
		p.line("")
	}

	p.line(separator)
	p.line("RÖSTANDE ORGAN: %s (%s)", st.ok.Bold(true).Render(assembly.Name), st.ok.Render(assembly.Year))
	roster := res.Roster()
	p.line("Ledamöter (Totalt %d):", len(roster))
	for _, name := range roster {
		if res.IsAbsent(name) {
			p.line("  - %s %s", st.dim.Render(name), st.danger.Render("(FRÅNVARANDE)"))
		} else {
			p.line("  * %s", name)
		}
	}

	p.line("")
	p.line("%s", st.title.Render("GRANSKAR VERKSAMHETSÅRET: "+rep.TargetYear))
	p.line(separator)

	p.line("%s", st.heading.Render("ANALYS OCH KORRIGERING AV NAMN (Fuzzy Match)"))
	p.line("Jämför styrelsemedlemmar mot FUM-listan för att hitta stavfel...")
	p.line(separator)
	for _, c := range rep.Corrections {
		p.line("%s", st.warn.Bold(true).Render("[KORRIGERING]"))
		p.line("  Plats:    %s (%s)", st.board.Render(c.Board), st.board.Render(c.Year))
		p.line("  Hittade:  '%s'", st.danger.Render(c.Found))
		p.line("  Ändrar till: '%s' (FUM-ledamot)", st.ok.Render(c.Corrected))
		p.line("  Avstånd:  %d tecken", c.Distance)
		p.line("")
	}
	if len(rep.Corrections) == 0 {
		p.line("%s", st.ok.Render("[OK] Inga namn behövde korrigeras."))
	}
	p.line(separator)
	p.line("")

	if len(rep.Priority) > 0 {
		p.line("%s", st.heading.Render("PRIORITERING AKTIVERAD"))
		p.line("Följande styrelser behandlas först:")
		for _, name := range rep.Priority {
			p.line("  -> %s", st.warn.Render(name))
		}
		p.line(separator)
		p.line("")
	}

	p.line("%s", st.heading.Render("ANALYSRESULTAT"))
	p.line("Mandat i FUM: %d", res.TotalSeats)
	p.line("Närvarande på mötet: %s", st.strong.Render(fmt.Sprint(res.PresentCount)))
	p.line("Kvorumgräns (krävs för beslut): %s", st.strong.Render(fmt.Sprint(res.QuorumLimit)))
	p.line("")

	if !res.MeetingHasQuorum() {
		p.line("%s", st.alarm.Render("!!! MÖTET EJ BESLUTSMÄSSIGT !!!"))
		p.line("För få närvarande ledamöter (%d) för att nå kvorum (%d).", res.PresentCount, res.QuorumLimit)
		return p.err
	}

	if len(res.Impossible) > 0 {
		p.line("%s", st.danger.Bold(true).Render("!!! VARNING: Följande kan INTE tas upp (för få röstberättigade kvar) !!!"))
		for _, b := range sortedBoards(rep.Arena, res.Impossible) {
			p.line("  - %s (%s)", st.danger.Render(b.Name), st.danger.Render(b.Year))
		}
		p.line("")
	}

	for i, g := range res.Groups {
		header := fmt.Sprintf("GRUPP %d: (%d röstberättigade)", i+1, res.EligibleVoters(g))
		p.line("%s", st.ok.Bold(true).Render(header))
		p.line("  (Krav för beslut: %d st)", res.QuorumLimit)

		p.line("  Jäviga ledamöter i denna grupp:")
		conflicted := g.Conflicted.Sorted()
		if len(conflicted) == 0 {
			p.line("    (Inga)")
		}
		for _, name := range conflicted {
			if res.IsAbsent(name) {
				p.line("    - %s %s", st.dim.Render(name), st.italic.Render("(Frånvarande)"))
			} else {
				p.line("    - %s (Närvarande, får ej rösta)", st.danger.Render(name))
			}
		}
		p.line("")

		p.line("  Styrelser:")
		for _, b := range sortedBoards(rep.Arena, g.Boards) {
			p.line("    * %s (%s)", st.board.Render(b.Name), st.dim.Render(b.Year))
			if own := b.MembersIn(g.Conflicted); len(own) > 0 {
				p.line("      -> Jäv: %s", st.danger.Render(strings.Join(own, ", ")))
			}
		}
		p.line(separator)
	}

	return p.err
}

func sortedBoards(arena *board.Arena, ids []board.ID) []board.Board {
	boards := make([]board.Board, 0, len(ids))
	for _, id := range ids {
		boards = append(boards, arena.Get(id))
	}
	slices.SortStableFunc(boards, func(a, b board.Board) int {
		return strings.Compare(a.Name, b.Name)
	})
	return boards
}
