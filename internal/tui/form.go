package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/micasa/internal/reservation"
)

type formField int

const (
	fieldGuests formField = iota
	fieldKidChair
	fieldDate
	fieldTime
	fieldCountry
	fieldPhone
	fieldEmail
	fieldComment
	fieldSend
	fieldCount
)

const timeStepMinutes = 15

// formState is the reservation screen. It is created when the screen opens
// and dropped when the guest leaves or the draft is confirmed.
type formState struct {
	draft      reservation.Draft
	focus      formField
	submitting bool
	picker     *countryPicker
}

func newFormState(d reservation.Draft) *formState {
	return &formState{draft: d, focus: fieldGuests}
}

func (f *formState) focusNext() { f.focus = (f.focus + 1) % fieldCount }

func (f *formState) focusPrev() { f.focus = (f.focus + fieldCount - 1) % fieldCount }

func (f *formState) isTextField() bool {
	return f.focus == fieldPhone || f.focus == fieldEmail || f.focus == fieldComment
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := a.form
	if f == nil {
		a.goHome()
		return a, nil
	}
	if f.picker != nil {
		return a.handlePickerKey(m)
	}
	if f.submitting {
		// esc abandons the pending submit; its result is dropped on arrival
		if m.Type == tea.KeyEsc {
			a.goHome()
		}
		return a, nil
	}

	switch m.Type {
	case tea.KeyEsc:
		a.goHome()
		return a, nil
	case tea.KeyTab, tea.KeyDown:
		f.focusNext()
		return a, nil
	case tea.KeyShiftTab, tea.KeyUp:
		f.focusPrev()
		return a, nil
	case tea.KeyCtrlS:
		return a, a.submitCmd()
	}

	if f.isTextField() {
		a.editText(m)
		return a, nil
	}

	d := &f.draft
	key := m.String()
	switch f.focus {
	case fieldGuests:
		switch key {
		case "+", "=", "right", "l":
			d.IncrementGuests()
		case "-", "left", "h":
			d.DecrementGuests()
		case "enter":
			f.focusNext()
		}
	case fieldKidChair:
		switch key {
		case " ", "space", "left", "right", "h", "l":
			d.ToggleKidChair()
		case "y":
			if !d.KidChair {
				d.ToggleKidChair()
			}
		case "n":
			if d.KidChair {
				d.ToggleKidChair()
			}
		case "enter":
			f.focusNext()
		}
	case fieldDate:
		switch key {
		case "+", "=", "right", "l":
			d.ShiftDays(1)
		case "-", "left", "h":
			d.ShiftDays(-1)
		case "enter":
			f.focusNext()
		}
	case fieldTime:
		switch key {
		case "+", "=", "right", "l":
			d.ShiftMinutes(timeStepMinutes)
		case "-", "left", "h":
			d.ShiftMinutes(-timeStepMinutes)
		case "enter":
			f.focusNext()
		}
	case fieldCountry:
		switch key {
		case "enter", " ", "space":
			f.picker = newCountryPicker(d.Country.ISO2)
		}
	case fieldSend:
		if key == "enter" || key == " " {
			return a, a.submitCmd()
		}
	}
	return a, nil
}

func (a *App) editText(m tea.KeyMsg) {
	f := a.form
	d := &f.draft
	current := map[formField]string{
		fieldPhone:   d.Phone,
		fieldEmail:   d.Email,
		fieldComment: d.Comment,
	}[f.focus]

	next := current
	switch m.Type {
	case tea.KeyEnter:
		f.focusNext()
		return
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if r := []rune(current); len(r) > 0 {
			next = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		next += " "
	case tea.KeyRunes:
		next += string(m.Runes)
	default:
		return
	}

	switch f.focus {
	case fieldPhone:
		d.SetPhone(next)
	case fieldEmail:
		d.SetEmail(next)
	case fieldComment:
		d.SetComment(next)
	}
}

func (a *App) renderForm() string {
	f := a.form
	if f == nil {
		return ""
	}
	d := f.draft
	var b strings.Builder
	b.WriteString(titleStyle.Render("New Reservation"))
	b.WriteString("\n\n")

	guests := fmt.Sprintf("[-] %d [+]", d.Guests)
	if !d.CanDecrementGuests() {
		guests = fmt.Sprintf("    %d [+]", d.Guests)
	}
	kid := "[ ] no"
	if d.KidChair {
		kid = "[x] yes"
	}
	party := strings.Join([]string{
		a.formRow(fieldGuests, "Number of guests", guests),
		a.formRow(fieldKidChair, "Kids chair needed", kid),
	}, "\n")
	b.WriteString(a.card(party, f.focus == fieldGuests || f.focus == fieldKidChair))
	b.WriteString("\n")

	when := d.When.In(a.tz)
	booking := a.formRow(fieldDate, "Booking date", a.chip(fieldDate, when.Format(a.dateFormat))) + "\n" +
		a.formRow(fieldTime, "Time", a.chip(fieldTime, when.Format(a.timeFormat)))
	b.WriteString(a.card(booking, f.focus == fieldDate || f.focus == fieldTime))
	b.WriteString("\n")

	code := a.chip(fieldCountry, d.Country.Flag+" "+d.Country.DialCode+" ▾")
	contact := strings.Join([]string{
		a.formRow(fieldCountry, "Country code", code),
		a.formRow(fieldPhone, "Phone number", a.textValue(fieldPhone, d.Phone, "digits only")),
		a.formRow(fieldEmail, "E-mail", a.textValue(fieldEmail, d.Email, "you@example.com")),
	}, "\n")
	b.WriteString(a.card(contact, f.focus >= fieldCountry && f.focus <= fieldEmail))
	b.WriteString("\n")

	comment := a.formRow(fieldComment, "Comment (optional)", a.textValue(fieldComment, d.Comment, ""))
	b.WriteString(a.card(comment, f.focus == fieldComment))
	b.WriteString("\n")

	b.WriteString(a.renderSend())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("[tab/↑↓] Field  [←/→ +/-] Adjust  [enter] Select/Send  [ctrl+s] Send  [esc] Back"))

	out := b.String()
	if f.picker != nil {
		out += "\n\n" + a.renderPicker(f.picker)
	}
	return out
}

func (a *App) renderSend() string {
	f := a.form
	label := "➤ Send reservation"
	style := disabledButtonStyle
	if reservation.IsValid(f.draft) {
		style = buttonStyle
		if f.focus == fieldSend {
			style = focusButtonStyle
		}
	}
	line := cursorMarker(f.focus == fieldSend) + style.Render(label)
	if err := reservation.Validate(f.draft); err != nil {
		var verr *reservation.ValidationError
		if errors.As(err, &verr) {
			line += "  " + hintStyle.Render("needs "+strings.Join(verr.Fields, ", "))
		}
	}
	return line
}

func (a *App) formRow(field formField, label, value string) string {
	focused := a.form.focus == field
	ls := fieldLabelStyle
	if focused {
		ls = focusLabelStyle
	}
	return cursorMarker(focused) + ls.Render(label) + "  " + value
}

func (a *App) chip(field formField, value string) string {
	if a.form.focus == field {
		return focusChipStyle.Render(value)
	}
	return chipStyle.Render(value)
}

func (a *App) textValue(field formField, value, placeholder string) string {
	if value == "" && a.form.focus != field {
		return mutedStyle.Render(placeholder)
	}
	out := textStyle.Render(value)
	if a.form.focus == field {
		out += "█"
	}
	return out
}

func (a *App) card(content string, focused bool) string {
	style := cardStyle
	if focused {
		style = focusCardStyle
	}
	return style.Width(a.cardWidth() - 2).Render(content)
}

func (a *App) renderConfirmation() string {
	c := a.confirmation
	var b strings.Builder
	b.WriteString(successStyle.Render("✓"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Success!"))
	if c != nil {
		guests := "guests"
		if c.Draft.Guests == 1 {
			guests = "guest"
		}
		when := c.Draft.When.In(a.tz)
		b.WriteString("\n\n")
		b.WriteString(textStyle.Render(fmt.Sprintf("Reference %s", c.Reference)))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d %s · %s %s", c.Draft.Guests, guests, when.Format(a.dateFormat), when.Format(a.timeFormat))))
	}
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("press any key to return home"))

	out := b.String()
	if a.width > 0 && a.height > 0 {
		out = lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}
