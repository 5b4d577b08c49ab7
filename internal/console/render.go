package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

// BoardRenderer draws a board as one character per tile with column labels
// above and below and a row label after each row.
type BoardRenderer struct {
	covered  lipgloss.Style
	flagged  lipgloss.Style
	exploded lipgloss.Style
	labels   lipgloss.Style
	numbers  [9]lipgloss.Style
}

var numberColors = [9]lipgloss.Color{
	"8", "12", "10", "9", "13", "1", "6", "7", "15",
}

// NewBoardRenderer styles output for w. Without color, or when w is not a
// terminal, tiles are drawn as plain text.
func NewBoardRenderer(w io.Writer, color bool) *BoardRenderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	br := &BoardRenderer{
		covered:  r.NewStyle().Faint(true),
		flagged:  r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		exploded: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		labels:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
	for i, c := range numberColors {
		br.numbers[i] = r.NewStyle().Foreground(c)
	}
	return br
}

func (br *BoardRenderer) style(s mines.CellState) lipgloss.Style {
	switch {
	case s == mines.Unknown:
		return br.covered
	case s == mines.Flagged:
		return br.flagged
	case s == mines.Exploded:
		return br.exploded
	case 0 <= s && s <= 8:
		return br.numbers[s]
	default:
		return br.exploded
	}
}

func (br *BoardRenderer) header(b *mines.Board, cellWidth int) string {
	var h strings.Builder
	for y := range b.Height {
		fmt.Fprintf(&h, "%-*s", cellWidth, strconv.Itoa(y)+"|")
	}
	return br.labels.Render(h.String())
}

func (br *BoardRenderer) Render(b *mines.Board) string {
	cellWidth := len(strconv.Itoa(b.Height-1)) + 1
	pad := strings.Repeat(" ", cellWidth-1)

	var sb strings.Builder
	sb.WriteString(br.header(b, cellWidth))
	sb.WriteString("\n")
	for x := range b.Width {
		for y := range b.Height {
			s := b.Cell(mines.Position{X: x, Y: y})
			sb.WriteString(br.style(s).Render(s.String()))
			sb.WriteString(pad)
		}
		sb.WriteString(br.labels.Render(fmt.Sprintf("[%d]", x)))
		sb.WriteString("\n")
	}
	sb.WriteString(br.header(b, cellWidth))
	sb.WriteString("\n")

	c := b.Counts()
	fmt.Fprintf(&sb, "bombs: %d, flags: %d", c.Bombs, c.Flagged)
	return sb.String()
}
