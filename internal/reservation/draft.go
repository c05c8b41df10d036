// Package reservation holds the reservation form state and its validity rules.
//
// A Draft is owned by exactly one form screen. Every edit goes through one of
// the update methods below so the phone field stays digits-only and the guest
// stepper never drops below one.
package reservation

import (
	"strings"
	"time"

	"github.com/jask/micasa/internal/countries"
)

// MinGuests is the stepper floor.
const MinGuests = 1

// Draft is the in-progress, unsaved reservation.
type Draft struct {
	Guests   int
	KidChair bool
	When     time.Time
	Country  countries.Country
	Phone    string
	Email    string
	Comment  string
}

// NewDraft starts a draft for one guest at now.
func NewDraft(now time.Time, c countries.Country) Draft {
	return Draft{
		Guests:  MinGuests,
		When:    now.Truncate(time.Minute),
		Country: c,
	}
}

func (d *Draft) IncrementGuests() { d.Guests++ }

func (d *Draft) DecrementGuests() {
	if d.Guests > MinGuests {
		d.Guests--
	}
}

// CanDecrementGuests reports whether the minus control is enabled.
func (d Draft) CanDecrementGuests() bool { return d.Guests > MinGuests }

func (d *Draft) ToggleKidChair() { d.KidChair = !d.KidChair }

// SetPhone stores input with every non-digit removed.
func (d *Draft) SetPhone(input string) { d.Phone = ScrubDigits(input) }

func (d *Draft) SetEmail(v string) { d.Email = v }

func (d *Draft) SetComment(v string) { d.Comment = v }

func (d *Draft) SetCountry(c countries.Country) { d.Country = c }

// SetDate replaces the calendar day and keeps the clock.
func (d *Draft) SetDate(year int, month time.Month, day int) {
	w := d.When
	d.When = time.Date(year, month, day, w.Hour(), w.Minute(), 0, 0, w.Location())
}

// SetClock replaces hour and minute and keeps the calendar day.
func (d *Draft) SetClock(hour, minute int) {
	w := d.When
	d.When = time.Date(w.Year(), w.Month(), w.Day(), hour, minute, 0, 0, w.Location())
}

func (d *Draft) ShiftDays(n int) { d.When = d.When.AddDate(0, 0, n) }

// ShiftMinutes moves the clock and wraps within the same day.
func (d *Draft) ShiftMinutes(n int) {
	w := d.When
	total := (w.Hour()*60 + w.Minute() + n) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	d.SetClock(total/60, total%60)
}

// InternationalPhone prefixes the phone digits with the dial code.
func (d Draft) InternationalPhone() string {
	if d.Phone == "" {
		return ""
	}
	return d.Country.DialCode + d.Phone
}

// ScrubDigits keeps only ASCII digits.
func ScrubDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
