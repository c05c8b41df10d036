package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/micasa/internal/config"
	"github.com/jask/micasa/internal/reservation"
)

type countingSubmitter struct {
	mu    sync.Mutex
	calls int
	last  reservation.Draft
	err   error
}

func (s *countingSubmitter) Submit(_ context.Context, d reservation.Draft) (reservation.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.last = d
	if s.err != nil {
		return reservation.Confirmation{}, s.err
	}
	return reservation.NewConfirmation(d, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)), nil
}

func newTestApp(t *testing.T, sub reservation.Submitter) *App {
	t.Helper()
	a := New(context.Background(), config.Config{}, Services{Submitter: sub}, time.UTC)
	a.now = func() time.Time { return time.Date(2026, 3, 14, 19, 30, 42, 0, time.UTC) }
	return a
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, a *App, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = a.Update(msg)
	}
	return cmd
}

func typeText(t *testing.T, a *App, s string) {
	t.Helper()
	for _, r := range s {
		press(t, a, runes(string(r)))
	}
}

func focusField(t *testing.T, a *App, field formField) {
	t.Helper()
	for a.form.focus != field {
		press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	}
}

func fillContact(t *testing.T, a *App) {
	t.Helper()
	focusField(t, a, fieldPhone)
	typeText(t, a, "600123456")
	focusField(t, a, fieldEmail)
	typeText(t, a, "ana@example.com")
}

func TestHomeShortcutsOpenScreens(t *testing.T) {
	a := newTestApp(t, &countingSubmitter{})
	require.Equal(t, screenHome, a.screen)

	press(t, a, runes("m"))
	require.Equal(t, screenMenu, a.screen)
	press(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, screenHome, a.screen)

	press(t, a, runes("l"))
	require.Equal(t, screenLocations, a.screen)
	press(t, a, tea.KeyMsg{Type: tea.KeyEsc})

	press(t, a, runes("r"))
	require.Equal(t, screenReservation, a.screen)
	require.NotNil(t, a.form)
}

func TestHomeCursorEnterOpensHighlightedEntry(t *testing.T) {
	a := newTestApp(t, &countingSubmitter{})
	press(t, a, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, len(homeEntries)-1, a.homeCursor)

	press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenLocations, a.screen)
}

func TestHomeQuit(t *testing.T) {
	a := newTestApp(t, &countingSubmitter{})
	cmd := press(t, a, runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestOpenReservationStartsFreshDraft(t *testing.T) {
	a := newTestApp(t, &countingSubmitter{})
	press(t, a, runes("r"))

	d := a.form.draft
	require.Equal(t, 1, d.Guests)
	require.False(t, d.KidChair)
	require.Equal(t, "DE", d.Country.ISO2)
	require.Equal(t, time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC), d.When)
	require.Empty(t, d.Phone)
	require.Empty(t, d.Email)

	typeText(t, a, "+++")
	press(t, a, tea.KeyMsg{Type: tea.KeyEsc}, runes("r"))
	require.Equal(t, 1, a.form.draft.Guests, "leaving the screen discards the draft")
}

func TestGuestStepperNeverDropsBelowOne(t *testing.T) {
	a := newTestApp(t, &countingSubmitter{})
	press(t, a, runes("r"))

	press(t, a, runes("-"), tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 1, a.form.draft.Guests)

	press(t, a, runes("+"), tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 3, a.form.draft.Guests)
	press(t, a, runes("-"))
	require.Equal(t, 2, a.form.draft.Guests)
}

func TestKidChairToggle(t *testing.T) {
	a := newTestApp(t, &countingSubmitter{})
	press(t, a, runes("r"))
	focusField(t, a, fieldKidChair)

	press(t, a, tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, a.form.draft.KidChair)
	press(t, a, runes("n"))
	require.False(t, a.form.draft.KidChair)
	press(t, a, runes("y"), runes("y"))
	require.True(t, a.form.draft.KidChair)
}

func TestDateAndTimeSteppers(t *testing.T) {
	a := newTestApp(t, &countingSubmitter{})
	press(t, a, runes("r"))

	focusField(t, a, fieldDate)
	press(t, a, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 15, a.form.draft.When.Day())

	focusField(t, a, fieldTime)
	press(t, a, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 20, a.form.draft.When.Hour())
	require.Equal(t, 0, a.form.draft.When.Minute())
	require.Equal(t, 15, a.form.draft.When.Day(), "time changes keep the date")
}

func TestPhoneFieldKeepsDigitsOnly(t *testing.T) {
	a := newTestApp(t, &countingSubmitter{})
	press(t, a, runes("r"))
	focusField(t, a, fieldPhone)

	typeText(t, a, "12a3b")
	require.Equal(t, "123", a.form.draft.Phone)

	press(t, a, runes("٣"))
	require.Equal(t, "123", a.form.draft.Phone)

	press(t, a, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "12", a.form.draft.Phone)
}

func TestTextFieldsTakeShortcutLetters(t *testing.T) {
	a := newTestApp(t, &countingSubmitter{})
	press(t, a, runes("r"))
	focusField(t, a, fieldComment)

	typeText(t, a, "quiet")
	press(t, a, tea.KeyMsg{Type: tea.KeySpace})
	typeText(t, a, "table")
	require.Equal(t, "quiet table", a.form.draft.Comment)
	require.Equal(t, screenReservation, a.screen)
}

func TestSendIsInertWhileDraftIncomplete(t *testing.T) {
	sub := &countingSubmitter{}
	a := newTestApp(t, sub)
	press(t, a, runes("r"))

	require.Nil(t, press(t, a, tea.KeyMsg{Type: tea.KeyCtrlS}))

	focusField(t, a, fieldPhone)
	typeText(t, a, "600")
	focusField(t, a, fieldSend)
	require.Nil(t, press(t, a, tea.KeyMsg{Type: tea.KeyEnter}))
	require.Equal(t, 0, sub.calls)
	require.Equal(t, screenReservation, a.screen)
	require.Contains(t, a.View(), "needs email")
}

func TestSendSubmitsOnceAndShowsConfirmation(t *testing.T) {
	sub := &countingSubmitter{}
	a := newTestApp(t, sub)
	press(t, a, runes("r"))
	fillContact(t, a)
	focusField(t, a, fieldSend)

	cmd := press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Nil(t, press(t, a, tea.KeyMsg{Type: tea.KeyEnter}), "second press while sending")
	require.Nil(t, press(t, a, tea.KeyMsg{Type: tea.KeyCtrlS}))

	msg := cmd()
	require.Equal(t, 1, sub.calls)
	require.Equal(t, "600123456", sub.last.Phone)
	require.Equal(t, "ana@example.com", sub.last.Email)

	press(t, a, msg)
	require.Equal(t, screenConfirmation, a.screen)
	require.Nil(t, a.form)
	require.NotNil(t, a.confirmation)
	require.Contains(t, a.View(), "Success!")
	require.Contains(t, a.View(), a.confirmation.Reference)

	press(t, a, runes("x"))
	require.Equal(t, screenHome, a.screen)
	require.Nil(t, a.confirmation)
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	sub := &countingSubmitter{err: errors.New("ledger offline")}
	a := newTestApp(t, sub)
	press(t, a, runes("r"))
	fillContact(t, a)

	cmd := press(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	press(t, a, cmd())

	require.Equal(t, screenReservation, a.screen)
	require.False(t, a.form.submitting)
	require.Equal(t, "600123456", a.form.draft.Phone)
	require.True(t, strings.HasPrefix(a.status, "error:"))

	sub.err = nil
	cmd = press(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd, "retry is allowed after a failure")
}

func TestEscAbandonsPendingSubmit(t *testing.T) {
	a := newTestApp(t, &countingSubmitter{})
	press(t, a, runes("r"))
	fillContact(t, a)
	cmd := press(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	require.True(t, a.form.submitting)

	require.Nil(t, press(t, a, tea.KeyMsg{Type: tea.KeyEsc}))
	require.Equal(t, screenHome, a.screen)
	require.Nil(t, a.form)

	press(t, a, cmd())
	require.Equal(t, screenHome, a.screen)
	require.Nil(t, a.confirmation)
}

func TestLateResultDoesNotConfirmNewDraft(t *testing.T) {
	sub := &countingSubmitter{}
	a := newTestApp(t, sub)
	press(t, a, runes("r"))
	fillContact(t, a)
	cmd := press(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	press(t, a, tea.KeyMsg{Type: tea.KeyEsc}, runes("r"))
	fresh := a.form

	press(t, a, cmd())
	require.Equal(t, screenReservation, a.screen)
	require.Same(t, fresh, a.form)
	require.Nil(t, a.confirmation)

	sub.err = errors.New("ledger offline")
	fillContact(t, a)
	failed := press(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, failed)
	msg := failed()
	press(t, a, tea.KeyMsg{Type: tea.KeyEsc}, runes("r"))
	press(t, a, msg)
	require.Empty(t, a.status, "a stale failure leaves the new form alone")
}

func TestCountryPickerSelectsByTypoTolerantQuery(t *testing.T) {
	a := newTestApp(t, &countingSubmitter{})
	press(t, a, runes("r"))
	focusField(t, a, fieldCountry)

	press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, a.form.picker)
	require.Contains(t, a.View(), "Filter:")

	typeText(t, a, "spian")
	press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, a.form.picker)
	require.Equal(t, "ES", a.form.draft.Country.ISO2)

	focusField(t, a, fieldPhone)
	typeText(t, a, "600")
	require.Equal(t, "+34600", a.form.draft.InternationalPhone())
}

func TestCountryPickerEscapeKeepsSelection(t *testing.T) {
	a := newTestApp(t, &countingSubmitter{})
	press(t, a, runes("r"))
	focusField(t, a, fieldCountry)
	press(t, a, tea.KeyMsg{Type: tea.KeySpace})
	typeText(t, a, "nor")

	press(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, a.form.picker)
	require.Equal(t, screenReservation, a.screen, "esc closes only the picker")
	require.Equal(t, "DE", a.form.draft.Country.ISO2)
}

func TestCtrlCQuitsFromAnyScreen(t *testing.T) {
	a := newTestApp(t, &countingSubmitter{})
	press(t, a, runes("r"))
	focusField(t, a, fieldPhone)
	cmd := press(t, a, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
