package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/seedwalk/internal/i18n"
	"github.com/jask/seedwalk/internal/logging"
	"github.com/jask/seedwalk/internal/recovery"
)

// App is the Bubble Tea model driving one recovery session.
type App struct {
	session      *recovery.Session
	bundle       *i18n.Bundle
	tr           i18n.Translator
	keys         *KeyRegistry
	help         help.Model
	input        textinput.Model
	log          *logging.SessionLog
	saveLanguage func(code string) error

	screen   screen
	cursor   int
	modal    *modal
	mask     bool
	revealed bool
	width    int
	status   string
}

// Options configures New. Bundle and Keys are required.
type Options struct {
	Bundle        *i18n.Bundle
	Keys          *KeyRegistry
	Log           *logging.SessionLog
	Language      string
	DefaultLength int
	MaskWords     bool
	// SaveLanguage persists the language after the user switches it.
	SaveLanguage func(code string) error
}

type screen string

const (
	screenWelcome  screen = "welcome"
	screenRecovery screen = "recovery"
	screenResult   screen = "result"
)

type modalLevel string

const (
	modalWarning modalLevel = "warning"
	modalError   modalLevel = "error"
)

type modal struct {
	level modalLevel
	title string
	body  string
}

type languageSavedMsg struct{ err error }

// New builds the app over session. A valid DefaultLength skips length selection.
func New(session *recovery.Session, opts Options) *App {
	in := textinput.New()
	in.CharLimit = 12
	in.Width = 12
	in.Prompt = "> "

	log := opts.Log
	if log == nil {
		log = logging.NewSessionLog(zerolog.Nop())
	}

	a := &App{
		session:      session,
		bundle:       opts.Bundle,
		tr:           opts.Bundle.Translator(opts.Language),
		keys:         opts.Keys,
		help:         help.New(),
		input:        in,
		log:          log,
		saveLanguage: opts.SaveLanguage,
		screen:       screenWelcome,
		mask:         opts.MaskWords,
	}
	if recovery.IsValidLength(opts.DefaultLength) {
		a.startSession(opts.DefaultLength)
	}
	return a
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(a.tr.T("window_title"))}
	if a.screen == screenRecovery {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
		return a, nil
	case languageSavedMsg:
		if m.err != nil {
			a.status = m.err.Error()
		} else {
			a.status = ""
		}
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	if a.screen == screenRecovery && a.modal == nil {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) scope() string {
	if a.modal != nil {
		return scopeModal
	}
	switch a.screen {
	case screenRecovery:
		return scopeRecovery
	case screenResult:
		return scopeResult
	default:
		return scopeWelcome
	}
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := a.keys.Lookup(m.String(), a.scope())
	if b == nil {
		if a.screen == screenRecovery && a.modal == nil {
			var cmd tea.Cmd
			a.input, cmd = a.input.Update(m)
			return a, cmd
		}
		return a, nil
	}

	switch b.Action {
	case actionQuit:
		a.quit()
		return a, tea.Quit
	case actionLanguage:
		return a, a.cycleLanguage()
	case actionDismiss:
		a.modal = nil
	case actionLength12:
		a.startSession(12)
	case actionLength18:
		a.startSession(18)
	case actionLength24:
		a.startSession(24)
	case actionUp:
		if a.cursor > 0 {
			a.cursor--
		}
	case actionDown:
		if a.cursor < len(recovery.ValidLengths)-1 {
			a.cursor++
		}
	case actionSelect:
		a.startSession(recovery.ValidLengths[a.cursor])
	case actionAdd:
		a.addInput()
	case actionConfirm:
		a.confirmWord()
	case actionReveal:
		a.revealed = !a.revealed
	case actionRestart:
		a.restart()
	}
	if a.screen == screenRecovery {
		return a, a.input.Focus()
	}
	return a, nil
}

func (a *App) startSession(length int) {
	if err := a.session.Start(length); err != nil {
		a.status = err.Error()
		return
	}
	a.log.Started(length)
	a.status = ""
	a.screen = screenRecovery
	a.revealed = false
	a.input.Reset()
	a.input.Focus()
}

func (a *App) addInput() {
	raw := strings.TrimSpace(a.input.Value())
	a.input.Reset()
	if raw == "" {
		return
	}
	pos, target := a.session.Position(), a.session.Target()
	if err := a.session.AddInput(raw); err != nil {
		kind := recovery.Kind(err)
		a.log.Step(logging.EventInputRejected, pos, target, kind)
		a.showError(err, raw)
		return
	}
	a.log.Step(logging.EventInputAccepted, pos, target, "")
}

func (a *App) confirmWord() {
	pos, target := a.session.Position(), a.session.Target()
	if _, err := a.session.ConfirmWord(); err != nil {
		a.log.Step(logging.EventConfirmFailed, pos, target, recovery.Kind(err))
		a.showError(err, "")
		return
	}
	a.log.Step(logging.EventWordConfirmed, pos, target, "")
	a.input.Reset()
	if a.session.State() == recovery.StateComplete {
		a.log.Completed(target)
		a.screen = screenResult
		a.input.Blur()
	}
}

func (a *App) restart() {
	a.session.Reset()
	a.log.Restarted()
	a.input.Reset()
	a.input.Blur()
	a.revealed = false
	a.screen = screenWelcome
}

func (a *App) quit() {
	a.session.Reset()
	a.input.Reset()
}

// showError maps a session error to a dialog in the current language.
func (a *App) showError(err error, raw string) {
	md := &modal{level: modalWarning, title: a.tr.T("invalid_input_title")}
	switch recovery.Kind(err) {
	case "not_an_integer":
		md.body = a.tr.T("invalid_input_int_warning")
	case "not_a_power_of_two":
		md.body = a.tr.T("invalid_input_power_of_2_warning")
	case "duplicate_input":
		num := raw
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			num = strconv.Itoa(n)
		}
		md.body = a.tr.F("duplicate_input_warning", "num", num)
	case "no_input_yet":
		md.title = a.tr.T("no_input_title")
		md.body = a.tr.T("no_input_warning")
	case "sum_does_not_resolve":
		md.level = modalError
		md.title = a.tr.T("sum_error_title")
		md.body = a.tr.T("sum_error_message")
	default:
		md.level = modalError
		md.title = a.tr.T("sum_error_title")
		md.body = err.Error()
	}
	a.modal = md
}

func (a *App) cycleLanguage() tea.Cmd {
	langs := a.bundle.Languages()
	next := langs[0]
	for i, code := range langs {
		if code == a.tr.Language() {
			next = langs[(i+1)%len(langs)]
			break
		}
	}
	a.tr = a.bundle.Translator(next)
	a.log.Language(next)
	cmds := []tea.Cmd{tea.SetWindowTitle(a.tr.T("window_title"))}
	if a.saveLanguage != nil {
		save := a.saveLanguage
		cmds = append(cmds, func() tea.Msg {
			return languageSavedMsg{err: save(next)}
		})
	}
	return tea.Batch(cmds...)
}
