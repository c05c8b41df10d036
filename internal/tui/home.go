package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/micasa/internal/catalog"
)

type homeEntry struct {
	label    string
	shortcut string
	target   screen
}

var homeEntries = []homeEntry{
	{label: "Make a Reservation", shortcut: "r", target: screenReservation},
	{label: "Menu", shortcut: "m", target: screenMenu},
	{label: "Locations", shortcut: "l", target: screenLocations},
}

const crownArt = `  .   *   .
 /\ /^\ /\
 \ V   V /
  |=====|`

func (a *App) handleHomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q":
		return a, tea.Quit
	case "up", "k", "shift+tab":
		if a.homeCursor > 0 {
			a.homeCursor--
		}
	case "down", "j", "tab":
		if a.homeCursor < len(homeEntries)-1 {
			a.homeCursor++
		}
	case "enter":
		a.navigate(homeEntries[a.homeCursor].target)
	default:
		for _, e := range homeEntries {
			if m.String() == e.shortcut {
				a.navigate(e.target)
				break
			}
		}
	}
	return a, nil
}

func (a *App) navigate(target screen) {
	switch target {
	case screenReservation:
		a.openReservation()
	default:
		a.screen = target
		a.status = ""
	}
}

func (a *App) renderHome() string {
	var b strings.Builder
	b.WriteString(crownStyle.Render(crownArt))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Welcome to " + catalog.RestaurantName))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", 24)))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(catalog.Tagline))
	b.WriteString("\n\n")

	for i, e := range homeEntries {
		style := buttonStyle
		if i == a.homeCursor {
			style = focusButtonStyle
		}
		b.WriteString(cursorMarker(i == a.homeCursor))
		b.WriteString(style.Render(e.label))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("[↑/↓] Move  [enter] Open  [r] Reserve  [m] Menu  [l] Locations  [q] Quit"))

	out := b.String()
	if a.width > 0 {
		out = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, out)
	}
	return out
}
