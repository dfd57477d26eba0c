package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderPoints lists a person's points with decoded positions; the row at
// cursor is highlighted.
func renderPoints(t Theme, points []domain.LabeledPoint, cursor int) string {
	if len(points) == 0 {
		return t.Help.Render("(no points yet)")
	}

	var b strings.Builder
	for i, p := range points {
		line := fmt.Sprintf("%2d. %-14s %s", i+1, clampString(p.Label, 14), p.Coordinate.Position())
		if i == cursor {
			b.WriteString(t.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderResultsTable(results []domain.SynastryResult) string {
	if len(results) == 0 {
		return "(no aspects found)"
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.LabelA, r.LabelB, r.Aspect, r.OrbString()})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("63"))).
		Headers("A", "B", "Aspect", "Orb").
		Rows(rows...).
		Render()
}
