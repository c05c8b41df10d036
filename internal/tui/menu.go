package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/micasa/internal/catalog"
)

const defaultCardWidth = 60

func (a *App) handleMenuKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isBackKey(m) {
		a.goHome()
		return a, nil
	}
	switch m.String() {
	case "q":
		return a, tea.Quit
	case "up", "k":
		if a.menuScroll > 0 {
			a.menuScroll--
		}
	case "down", "j":
		if a.menuScroll < a.maxMenuScroll() {
			a.menuScroll++
		}
	}
	return a, nil
}

func (a *App) cardWidth() int {
	if a.width > 4 {
		return min(a.width-2, 72)
	}
	return defaultCardWidth
}

func (a *App) menuLines() []string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Our Menu"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(catalog.MenuIntro))
	b.WriteString("\n")

	width := a.cardWidth()
	inner := width - 4 // border + padding
	for _, item := range catalog.Menu() {
		b.WriteString("\n")
		b.WriteString(cardStyle.Width(width - 2).Render(renderDish(item, inner)))
	}
	b.WriteString("\n")
	return strings.Split(b.String(), "\n")
}

func renderDish(item catalog.MenuItem, inner int) string {
	name := titleStyle.Render(item.Name)
	price := priceStyle.Render(item.Price)
	gap := inner - lipgloss.Width(name) - lipgloss.Width(price)
	if gap < 1 {
		gap = 1
	}
	header := name + strings.Repeat(" ", gap) + price
	desc := textStyle.Width(inner).Render(item.Description)
	return header + "\n" + desc
}

// maxMenuScroll keeps the footer on screen when the window is short.
func (a *App) maxMenuScroll() int {
	if a.height <= 0 {
		return 0
	}
	extra := len(a.menuLines()) - (a.height - 1)
	if extra < 0 {
		return 0
	}
	return extra
}

func (a *App) renderMenu() string {
	lines := a.menuLines()
	if a.height > 0 {
		visible := a.height - 1
		start := min(a.menuScroll, len(lines))
		end := min(start+visible, len(lines))
		lines = lines[start:end]
	}
	return strings.Join(lines, "\n") + "\n" + hintStyle.Render("[↑/↓] Scroll  [esc] Back  [q] Quit")
}
