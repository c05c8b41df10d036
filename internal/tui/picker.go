package tui

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/micasa/internal/countries"
)

const pickerVisibleRows = 8

type countryPicker struct {
	items    []countries.Country
	filtered []countries.Country
	query    string
	cursor   int
}

type pickerAction int

const (
	pickerActionNone pickerAction = iota
	pickerActionMoved
	pickerActionSelected
	pickerActionCancelled
)

type pickerResult struct {
	Action  pickerAction
	Country countries.Country
}

type scoredCountry struct {
	country countries.Country
	score   int
}

// newCountryPicker lists the directory alphabetically with the cursor on
// the current selection.
func newCountryPicker(selectedISO2 string) *countryPicker {
	p := &countryPicker{items: countries.SortedByName()}
	p.rebuildFiltered()
	for i, c := range p.filtered {
		if c.ISO2 == selectedISO2 {
			p.cursor = i
			break
		}
	}
	return p
}

// SetQuery refilters and moves the cursor to the best match.
func (p *countryPicker) SetQuery(q string) {
	p.query = q
	p.cursor = 0
	p.rebuildFiltered()
}

// HandleKey applies one key press to the picker. Printable runes extend the
// query; everything else is navigation.
func (p *countryPicker) HandleKey(m tea.KeyMsg) pickerResult {
	switch m.Type {
	case tea.KeyUp, tea.KeyCtrlP:
		if p.cursor == 0 {
			return pickerResult{}
		}
		p.cursor--
		return pickerResult{Action: pickerActionMoved}
	case tea.KeyDown, tea.KeyCtrlN:
		if p.cursor >= len(p.filtered)-1 {
			return pickerResult{}
		}
		p.cursor++
		return pickerResult{Action: pickerActionMoved}
	case tea.KeyEnter:
		if len(p.filtered) == 0 {
			return pickerResult{}
		}
		return pickerResult{Action: pickerActionSelected, Country: p.filtered[p.cursor]}
	case tea.KeyEsc:
		return pickerResult{Action: pickerActionCancelled}
	case tea.KeyBackspace, tea.KeyCtrlH:
		if r := []rune(p.query); len(r) > 0 {
			p.SetQuery(string(r[:len(r)-1]))
		}
	case tea.KeySpace:
		p.SetQuery(p.query + " ")
	case tea.KeyRunes:
		var typed []rune
		for _, r := range m.Runes {
			if unicode.IsPrint(r) {
				typed = append(typed, r)
			}
		}
		if len(typed) > 0 {
			p.SetQuery(p.query + string(typed))
		}
	}
	return pickerResult{}
}

func (a *App) handlePickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := a.form
	res := f.picker.HandleKey(m)
	switch res.Action {
	case pickerActionSelected:
		f.draft.SetCountry(res.Country)
		f.picker = nil
	case pickerActionCancelled:
		f.picker = nil
	}
	return a, nil
}

func (a *App) renderPicker(p *countryPicker) string {
	var lines []string
	query := strings.TrimSpace(p.query)
	filter := mutedStyle.Render("(type to filter)")
	if query != "" {
		filter = textStyle.Render(p.query) + "█"
	}
	lines = append(lines, fieldLabelStyle.Render("Filter: ")+filter)

	if len(p.filtered) == 0 {
		lines = append(lines, mutedStyle.Render("  no matching country"))
	}
	start, end := visibleWindow(p.cursor, len(p.filtered), pickerVisibleRows)
	for i := start; i < end; i++ {
		c := p.filtered[i]
		row := cursorMarker(i == p.cursor) + c.Label()
		if i == p.cursor {
			row = focusLabelStyle.Render(row)
		} else {
			row = textStyle.Render(row)
		}
		lines = append(lines, row)
	}
	if end < len(p.filtered) {
		lines = append(lines, mutedStyle.Render("  …"))
	}
	lines = append(lines, hintStyle.Render("[↑/↓] Navigate  [enter] Select  [esc] Cancel"))

	return focusCardStyle.Render(titleStyle.Render("Country code") + "\n" + strings.Join(lines, "\n"))
}

func (p *countryPicker) rebuildFiltered() {
	q := strings.TrimSpace(p.query)
	scored := make([]scoredCountry, 0, len(p.items))
	for _, c := range p.items {
		matched, score := countryMatchScore(c, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredCountry{country: c, score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].country.Name < scored[j].country.Name
	})

	p.filtered = p.filtered[:0]
	for _, s := range scored {
		p.filtered = append(p.filtered, s.country)
	}
	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

const (
	scoreISO       = 100
	scoreDial      = 80
	wordStartBonus = 8
	runBonus       = 3
	exactNameBonus = 20
)

// countryMatchScore ranks a country against the filter. An exact ISO code or
// a dial-code prefix wins, then in-order letter matches on the name, then
// names within a small edit distance of the query.
func countryMatchScore(c countries.Country, query string) (bool, int) {
	q := strings.ToLower(query)
	if q == "" {
		return true, 0
	}
	if strings.EqualFold(c.ISO2, q) {
		return true, scoreISO
	}
	if digits, ok := dialDigits(q); ok {
		if !strings.HasPrefix(c.DialCode, "+"+digits) {
			return false, 0
		}
		// shorter codes first: "+4" ranks +43 ahead of +420
		return true, scoreDial - (len(c.DialCode) - 1 - len(digits))
	}
	if score, ok := nameScore(c.Name, q); ok {
		return true, score
	}
	return typoMatch(c.Name, q)
}

// nameScore matches the lowercase query runes against the name in order,
// taking the earliest occurrence of each. Hits on the first letter of a word
// and hits that continue a run score extra.
func nameScore(name, q string) (int, bool) {
	n := []rune(strings.ToLower(name))
	want := []rune(q)
	score, next, prev := 0, 0, -2
	for i := 0; i < len(n) && next < len(want); i++ {
		if n[i] != want[next] {
			continue
		}
		score++
		if i == 0 || n[i-1] == ' ' {
			score += wordStartBonus
		}
		if i == prev+1 {
			score += runBonus
		}
		prev = i
		next++
	}
	if next < len(want) {
		return 0, false
	}
	if len(n) == len(want) {
		score += exactNameBonus
	}
	return score, true
}

// dialDigits reports whether q is a dial code, with or without its plus.
func dialDigits(q string) (string, bool) {
	digits := strings.TrimPrefix(q, "+")
	if digits == "" {
		return "", false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return digits, true
}

// typoMatch compares the query with the same-length prefix of the name.
// Queries shorter than three letters never match this way.
func typoMatch(name, query string) (bool, int) {
	q := []rune(strings.ToLower(query))
	if len(q) < 3 {
		return false, 0
	}
	n := []rune(strings.ToLower(name))
	if len(n) > len(q) {
		n = n[:len(q)]
	}
	dist := levenshtein.ComputeDistance(string(n), string(q))
	if dist > 1+len(q)/4 {
		return false, 0
	}
	return true, -dist
}

func visibleWindow(cursor, total, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > total {
		start = total - size
	}
	return start, start + size
}
