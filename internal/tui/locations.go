package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/micasa/internal/catalog"
)

const (
	mapHeight    = 12
	mapMinWidth  = 20
	mapMaxWidth  = 60
	mapEmptyCell = '·'
)

// MapRenderer draws labelled pins inside a region. The locations screen only
// hands it coordinates; how they are drawn is up to the implementation.
type MapRenderer interface {
	Render(region catalog.Region, pins []catalog.Location, width, height int) string
}

// GridMap plots numbered pins on a character grid by linear projection.
// Pins outside the region are left off the grid.
type GridMap struct{}

func (GridMap) Render(region catalog.Region, pins []catalog.Location, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(mapEmptyCell), width))
	}
	for i, p := range pins {
		row, col, ok := project(region, p, width, height)
		if !ok {
			continue
		}
		grid[row][col] = pinGlyph(i)
	}
	lines := make([]string, height)
	for r := range grid {
		lines[r] = string(grid[r])
	}
	return strings.Join(lines, "\n")
}

// project maps a pin onto grid cells: north is row 0, west is column 0.
func project(region catalog.Region, p catalog.Location, width, height int) (row, col int, ok bool) {
	if !region.Contains(p.Latitude, p.Longitude) || region.LatitudeDelta <= 0 || region.LongitudeDelta <= 0 {
		return 0, 0, false
	}
	sw, ne := region.Bounds()
	x := (p.Longitude - sw.Longitude) / region.LongitudeDelta
	y := (ne.Latitude - p.Latitude) / region.LatitudeDelta
	col = int(x*float64(width-1) + 0.5)
	row = int(y*float64(height-1) + 0.5)
	return row, col, true
}

func pinGlyph(i int) rune {
	if i < 9 {
		return rune('1' + i)
	}
	return '*'
}

func (a *App) handleLocationsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isBackKey(m) {
		a.goHome()
		return a, nil
	}
	if m.String() == "q" {
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) renderLocations() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Our Locations"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(catalog.LocationsIntro))
	b.WriteString("\n\n")

	width := a.cardWidth() - 4
	width = max(mapMinWidth, min(width, mapMaxWidth))
	pins := catalog.Locations()
	drawn := a.services.Map.Render(catalog.MapRegion(), pins, width, mapHeight)
	drawn = colorPins(drawn)
	b.WriteString(cardStyle.Render(drawn))
	b.WriteString("\n")

	for i, p := range pins {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			pinStyle.Render(string(pinGlyph(i))),
			textStyle.Render(p.Label),
			mutedStyle.Render(fmt.Sprintf("%.3f°N %.3f°E", p.Latitude, p.Longitude))))
	}
	b.WriteString(hintStyle.Render("[esc] Back  [q] Quit"))
	return b.String()
}

func colorPins(drawn string) string {
	var b strings.Builder
	for _, r := range drawn {
		switch {
		case r == mapEmptyCell:
			b.WriteString(mutedStyle.Render(string(r)))
		case r == '\n':
			b.WriteRune(r)
		default:
			b.WriteString(pinStyle.Render(string(r)))
		}
	}
	return b.String()
}
