package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/seedwalk/internal/config"
	"github.com/jask/seedwalk/internal/i18n"
	"github.com/jask/seedwalk/internal/logging"
	"github.com/jask/seedwalk/internal/recovery"
	"github.com/jask/seedwalk/internal/tui"
	"github.com/jask/seedwalk/internal/wordtable"
)

func main() {
	os.Exit(run(os.Stderr))
}

func run(stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	logger, closer, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(stderr, "log: %v\n", err)
		return 1
	}
	defer closer.Close()

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		fmt.Fprintf(stderr, "catalogs: %v\n", err)
		return 1
	}

	table, err := loadTable(cfg.Wordlist.Path)
	if err != nil {
		fmt.Fprintln(stderr, wordlistErrorText(bundle.Translator(i18n.BaseLanguage), cfg.Wordlist.Path, err))
		logger.Error().Err(err).Msg("wordlist")
		return 1
	}

	keys := tui.NewKeyRegistry()
	if err := keys.LoadKeybindings(keybindingsPath(cfg)); err != nil {
		fmt.Fprintf(stderr, "keybindings: %v\n", err)
		return 1
	}

	lang := cfg.UI.Language
	if lang == "" || lang == "auto" || !bundle.Has(lang) {
		lang = bundle.Match(localeFromEnv())
	}

	session := recovery.New(table)
	app := tui.New(session, tui.Options{
		Bundle:        bundle,
		Keys:          keys,
		Log:           logging.NewSessionLog(logger),
		Language:      lang,
		DefaultLength: cfg.UI.DefaultLength,
		MaskWords:     cfg.UI.MaskWords,
		SaveLanguage: func(code string) error {
			cfg.UI.Language = code
			return config.Save(cfg)
		},
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, runErr := p.Run()
	session.Reset()
	if runErr != nil {
		fmt.Fprintf(stderr, "error: %v\n", runErr)
		return 1
	}
	return 0
}

func loadTable(name string) (*wordtable.Table, error) {
	return wordtable.Load(wordtable.ResolvePath(name))
}

// wordlistErrorText renders a load failure the way the app reports it before
// any screen exists.
func wordlistErrorText(tr i18n.Translator, name string, err error) string {
	filename := filepath.Base(name)
	var lerr *wordtable.LengthError
	var body, title string
	switch {
	case errors.Is(err, os.ErrNotExist):
		title = tr.T("wordlist_file_error_title")
		body = tr.F("wordlist_not_found", "filename", filename)
	case errors.As(err, &lerr):
		title = tr.T("wordlist_file_error_title")
		body = tr.F("wordlist_invalid_length", "filename", filename, "count", lerr.Count)
	case errors.Is(err, wordtable.ErrDuplicateWord), errors.Is(err, wordtable.ErrEmptyWord):
		title = tr.T("wordlist_file_error_title")
		body = tr.F("wordlist_invalid", "filename", filename, "error", err)
	default:
		title = tr.T("file_read_error_title")
		body = tr.F("file_read_error_message", "error", err)
	}
	return title + "\n\n" + body
}

func keybindingsPath(cfg config.Config) string {
	if cfg.Keys.File != "" {
		return cfg.Keys.File
	}
	dir, err := config.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keybindings.toml")
}

func localeFromEnv() string {
	for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
