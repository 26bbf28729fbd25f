// Package terminal draws card trees for the command line with lipgloss.
package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mamadbah2/shoecard/internal/render/card"
	"github.com/mamadbah2/shoecard/internal/render/theme"
)

const cardWidth = 40

var frame = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(theme.Gray300.Hex)).
	Padding(0, 1).
	Width(cardWidth)

// Render draws the card rooted at root. Layout declarations are ignored;
// colours, weights and strikethrough carry over.
func Render(root *card.Node) string {
	if root == nil {
		return ""
	}

	var lines []string
	if b := root.Find(card.KindBadge); b != nil {
		lines = append(lines, styleFor(b.Style).Padding(0, 1).Render(b.Text))
	}
	if img := root.Find(card.KindImage); img != nil {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render("[image] "+img.Attr("src")))
	}

	rows := root.FindAll(card.KindRow)
	for _, row := range rows {
		lines = append(lines, renderRow(row))
	}
	lines = append(lines, lipgloss.NewStyle().Faint(true).Render(root.Attr("href")))

	return frame.Render(strings.Join(lines, "\n"))
}

func renderRow(row *card.Node) string {
	if len(row.Children) == 0 {
		return ""
	}
	left := styleFor(row.Children[0].Style).Render(row.Children[0].Text)
	if len(row.Children) == 1 {
		return left
	}
	right := styleFor(row.Children[1].Style).Render(row.Children[1].Text)

	gap := cardWidth - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func styleFor(s card.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Color.Hex != "" {
		st = st.Foreground(lipgloss.Color(s.Color.Hex))
	}
	if s.Background.Hex != "" {
		st = st.Background(lipgloss.Color(s.Background.Hex))
	}
	if s.FontWeight >= theme.WeightMedium {
		st = st.Bold(true)
	}
	if s.Strikethrough {
		st = st.Strikethrough(true)
	}
	return st
}
