package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/micasa/internal/config"
	"github.com/jask/micasa/internal/countries"
	"github.com/jask/micasa/internal/reservation"
)

// App ties together the screens. Each screen's state lives on App only while
// that screen is shown.
type App struct {
	ctx      context.Context
	services Services
	tz       *time.Location
	now      func() time.Time

	dateFormat     string
	timeFormat     string
	defaultCountry countries.Country

	screen screen
	width  int
	height int
	status string

	homeCursor   int
	form         *formState
	confirmation *reservation.Confirmation
	menuScroll   int
}

// Services are the collaborators the screens call into.
type Services struct {
	Submitter reservation.Submitter
	Map       MapRenderer
}

type screen string

const (
	screenHome         screen = "home"
	screenReservation  screen = "reservation"
	screenConfirmation screen = "confirmation"
	screenMenu         screen = "menu"
	screenLocations    screen = "locations"
)

func New(ctx context.Context, cfg config.Config, services Services, tz *time.Location) *App {
	if tz == nil {
		tz = time.Local
	}
	if services.Submitter == nil {
		services.Submitter = reservation.Simulated{}
	}
	if services.Map == nil {
		services.Map = GridMap{}
	}
	def, ok := countries.ByISO2(cfg.UI.DefaultCountry)
	if !ok {
		def = countries.Default()
	}
	dateFormat := cfg.UI.DateFormat
	if dateFormat == "" {
		dateFormat = "Mon 02 Jan 2006"
	}
	timeFormat := cfg.UI.TimeFormat
	if timeFormat == "" {
		timeFormat = "15:04"
	}
	return &App{
		ctx:            ctx,
		services:       services,
		tz:             tz,
		now:            time.Now,
		dateFormat:     dateFormat,
		timeFormat:     timeFormat,
		defaultCountry: def,
		screen:         screenHome,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("MiCasa")
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		if m.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		switch a.screen {
		case screenReservation:
			return a.handleFormKey(m)
		case screenConfirmation:
			a.confirmation = nil
			a.goHome()
		case screenMenu:
			return a.handleMenuKey(m)
		case screenLocations:
			return a.handleLocationsKey(m)
		default:
			return a.handleHomeKey(m)
		}
	case submittedMsg:
		if a.screen != screenReservation || a.form == nil || a.form != m.form {
			return a, nil
		}
		conf := m.Confirmation
		a.form = nil
		a.confirmation = &conf
		a.screen = screenConfirmation
		a.status = ""
	case submitFailedMsg:
		if a.form == nil || a.form != m.form {
			return a, nil
		}
		a.form.submitting = false
		a.status = "error: " + m.err.Error()
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	switch a.screen {
	case screenReservation:
		body = a.renderForm()
	case screenConfirmation:
		body = a.renderConfirmation()
	case screenMenu:
		body = a.renderMenu()
	case screenLocations:
		body = a.renderLocations()
	default:
		body = a.renderHome()
	}
	if a.status != "" {
		body += "\n" + statusStyle.Render(a.status)
	}
	return body
}

func (a *App) openReservation() {
	draft := reservation.NewDraft(a.now().In(a.tz), a.defaultCountry)
	a.form = newFormState(draft)
	a.screen = screenReservation
	a.status = ""
}

func (a *App) goHome() {
	a.form = nil
	a.menuScroll = 0
	a.screen = screenHome
	a.status = ""
}

func (a *App) submitCmd() tea.Cmd {
	f := a.form
	if f == nil || f.submitting || !reservation.IsValid(f.draft) {
		return nil
	}
	f.submitting = true
	a.status = "sending..."
	draft := f.draft
	submitter := a.services.Submitter
	ctx := a.ctx
	return func() tea.Msg {
		conf, err := submitter.Submit(ctx, draft)
		if err != nil {
			return submitFailedMsg{form: f, err: err}
		}
		return submittedMsg{form: f, Confirmation: conf}
	}
}

// messages; form identifies the form that sent the draft, so a result that
// arrives after the guest has moved on is dropped.
type submittedMsg struct {
	form         *formState
	Confirmation reservation.Confirmation
}

type submitFailedMsg struct {
	form *formState
	err  error
}

func isBackKey(m tea.KeyMsg) bool {
	return m.Type == tea.KeyEsc || m.Type == tea.KeyBackspace
}
