package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/seedwalk/internal/recovery"
)

const maskedWord = "••••"

func (a *App) View() string {
	var body string
	switch a.screen {
	case screenRecovery:
		body = a.renderRecovery()
	case screenResult:
		body = a.renderResult()
	default:
		body = a.renderWelcome()
	}

	sections := []string{a.renderLanguageSwitcher(), cardStyle.Render(body)}
	if a.modal != nil {
		sections = append(sections, a.renderModal())
	}
	sections = append(sections, a.help.ShortHelpView(a.keys.HelpBindings(a.scope(), a.tr.T)))
	if a.status != "" {
		sections = append(sections, a.truncate(errorStyle.Render(a.status)))
	}
	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if a.width > 0 {
		out = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, out)
	}
	return out
}

func (a *App) renderLanguageSwitcher() string {
	langs := a.bundle.Languages()
	parts := make([]string, 0, len(langs))
	for _, code := range langs {
		name := a.bundle.Message(code, "language_name")
		if code == a.tr.Language() {
			parts = append(parts, langActiveStyle.Render(name))
		} else {
			parts = append(parts, langInactiveStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) renderWelcome() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(a.tr.T("welcome_header")))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(a.tr.T("select_length_prompt")))
	b.WriteString("\n\n")
	lengthActions := [...]Action{actionLength12, actionLength18, actionLength24}
	for i, n := range recovery.ValidLengths {
		label := a.keyHint(scopeWelcome, lengthActions[i]) + a.tr.T(strconv.Itoa(n)+"_words")
		if i == a.cursor {
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString(choiceStyle.Render(label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(promptStyle.Render(a.tr.T("offline_warning")))
	return b.String()
}

func (a *App) renderRecovery() string {
	snap := a.session.Snapshot()

	var b strings.Builder
	b.WriteString(headerStyle.Render(a.tr.F("recovering_word_title", "current", snap.Position, "total", snap.Target)))
	b.WriteString("\n\n")
	b.WriteString(a.tr.T("enter_number_label"))
	b.WriteString(" ")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")

	nums := make([]string, len(snap.Inputs))
	for i, n := range snap.Inputs {
		nums[i] = strconv.Itoa(n)
	}
	b.WriteString(a.truncate(a.tr.F("entered_numbers_label", "numbers", strings.Join(nums, ", "))))
	b.WriteString("\n")
	b.WriteString(a.truncate(resultStyle.Render(a.tr.F("current_word_label", "status", a.previewText(snap)))))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(a.tr.T("recovered_words_header")))
	b.WriteString("\n")
	b.WriteString(wordsBoxStyle.Render(a.recoveredWordsText(snap.Words)))
	return b.String()
}

func (a *App) previewText(snap recovery.Snapshot) string {
	switch snap.Preview {
	case recovery.PreviewResolved:
		return a.tr.F("status_valid_word", "sum", snap.Sum, "index", snap.Index, "word", a.maskWord(snap.Word))
	case recovery.PreviewInvalid:
		return a.tr.F("status_invalid_index", "sum", snap.Sum)
	default:
		return a.tr.T("status_waiting")
	}
}

func (a *App) recoveredWordsText(words []string) string {
	shown := make([]string, len(words))
	for i, w := range words {
		shown[i] = a.maskWord(w)
	}
	return strings.Join(shown, " ")
}

// maskWord hides w unless masking is off or the user revealed the words.
func (a *App) maskWord(w string) string {
	if !a.mask || a.revealed {
		return w
	}
	return maskedWord
}

func (a *App) renderResult() string {
	var phrase string
	if _, ok := a.session.Phrase(); ok {
		phrase = a.recoveredWordsText(a.session.Words())
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(a.tr.T("recovery_complete_header")))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(a.tr.T("your_seed_phrase_is")))
	b.WriteString("\n")
	b.WriteString(wordsBoxStyle.Render(resultStyle.Render(phrase)))
	b.WriteString("\n\n")
	b.WriteString(errorStyle.Render(a.tr.T("security_note")))
	b.WriteString("\n\n")
	b.WriteString(choiceStyle.Render(a.keyHint(scopeResult, actionRestart) + a.tr.T("restart_button")))
	b.WriteString(choiceStyle.Render(a.keyHint(scopeResult, actionQuit) + a.tr.T("quit_button")))
	if a.mask {
		b.WriteString(choiceStyle.Render(a.keyHint(scopeResult, actionReveal) + a.tr.T("help_reveal")))
	}
	return b.String()
}

func (a *App) renderModal() string {
	titleStyle := warnStyle
	border := colorWarning
	if a.modal.level == modalError {
		titleStyle = errorStyle
		border = colorError
	}
	content := titleStyle.Render(a.modal.title) + "\n\n" + a.modal.body + "\n\n" + promptStyle.Render(a.tr.T("dismiss_hint"))
	return modalStyle.BorderForeground(border).Render(content)
}

// keyHint renders the first key bound to action as a "[k] " prefix.
func (a *App) keyHint(scope string, action Action) string {
	for _, b := range a.keys.BindingsForScope(scope) {
		if b.Action == action && len(b.Keys) > 0 {
			return "[" + b.Keys[0] + "] "
		}
	}
	return ""
}

func (a *App) truncate(s string) string {
	if a.width <= 0 {
		return s
	}
	return ansi.Truncate(s, a.width, "…")
}
