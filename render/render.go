// Package render draws percolation snapshots as terminal text.
//
// It only reads percolation.Snapshot values; the model itself never renders.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/percolate/lattice"
	"github.com/katalvlaran/percolate/percolation"
)

// Glyphs used for each site state.
const (
	GlyphBlocked = "■"
	GlyphOpen    = "□"
	GlyphFull    = "●"
)

// Styles controls how each site state is drawn.
type Styles struct {
	Blocked lipgloss.Style
	Open    lipgloss.Style
	Full    lipgloss.Style
	Cursor  lipgloss.Style // applied on top of the state style
	Status  lipgloss.Style
}

// DefaultStyles returns the coloured palette: grey blocked, white open,
// blue full, reversed cursor.
func DefaultStyles() Styles {
	return Styles{
		Blocked: lipgloss.NewStyle().Foreground(lipgloss.Color("#4a4f5a")),
		Open:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f2f2f2")),
		Full:    lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6")),
		Cursor:  lipgloss.NewStyle().Reverse(true),
		Status:  lipgloss.NewStyle().Bold(true),
	}
}

// PlainStyles returns styles that emit glyphs without any escape codes.
func PlainStyles() Styles {
	return Styles{
		Blocked: lipgloss.NewStyle(),
		Open:    lipgloss.NewStyle(),
		Full:    lipgloss.NewStyle(),
		Cursor:  lipgloss.NewStyle(),
		Status:  lipgloss.NewStyle(),
	}
}

// cell renders one site.
func (st Styles) cell(s percolation.State) string {
	switch s {
	case percolation.Full:
		return st.Full.Render(GlyphFull)
	case percolation.Open:
		return st.Open.Render(GlyphOpen)
	default:
		return st.Blocked.Render(GlyphBlocked)
	}
}

// Grid draws s one row per line, sites separated by a space.
// If cursor is non-nil that site is additionally drawn with st.Cursor.
func Grid(s percolation.Snapshot, st Styles, cursor *lattice.Site) string {
	var sb strings.Builder
	for row := 0; row < s.Side; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < s.Side; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			c := st.cell(s.At(row, col))
			if cursor != nil && cursor.Row == row && cursor.Col == col {
				c = st.Cursor.Render(c)
			}
			sb.WriteString(c)
		}
	}

	return sb.String()
}

// Status summarises s in one line, e.g. "12 open sites, does not percolate".
func Status(s percolation.Snapshot) string {
	noun := "sites"
	if s.OpenSites == 1 {
		noun = "site"
	}
	verdict := "does not percolate"
	if s.Percolates {
		verdict = "percolates"
	}

	return fmt.Sprintf("%d open %s, %s", s.OpenSites, noun, verdict)
}

// Frame stacks the grid above its styled status line.
func Frame(s percolation.Snapshot, st Styles, cursor *lattice.Site) string {
	return Grid(s, st, cursor) + "\n\n" + st.Status.Render(Status(s))
}
