package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestKeyRegistryLookupByScope(t *testing.T) {
	r := NewKeyRegistry()

	add := r.Lookup("enter", scopeRecovery)
	if add == nil || add.Action != actionAdd {
		t.Fatalf("enter in recovery = %+v, want add", add)
	}
	sel := r.Lookup("enter", scopeWelcome)
	if sel == nil || sel.Action != actionSelect {
		t.Fatalf("enter in welcome = %+v, want select", sel)
	}
	if got := r.Lookup("1", scopeRecovery); got != nil {
		t.Fatalf("digits must reach the input field in recovery, got %q", got.Action)
	}
	if got := r.Lookup("q", scopeRecovery); got != nil {
		t.Fatalf("q must not quit while typing, got %q", got.Action)
	}

	quit := r.Lookup("ctrl+c", scopeRecovery)
	if quit == nil || quit.Action != actionQuit {
		t.Fatalf("ctrl+c should fall back to global quit, got %+v", quit)
	}
	if dismiss := r.Lookup(" ", scopeModal); dismiss == nil || dismiss.Action != actionDismiss {
		t.Fatalf("space should dismiss dialogs, got %+v", dismiss)
	}
}

func TestKeyRegistryNoDuplicateInSameScope(t *testing.T) {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	r.Register(Binding{Action: actionAdd, Keys: []string{"x"}, Help: "first", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionConfirm, Keys: []string{"x"}, Help: "duplicate", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionConfirm, Keys: []string{"x"}, Help: "different scope", Scopes: []string{"scope_b"}})

	a := r.BindingsForScope("scope_a")
	if len(a) != 1 || a[0].Action != actionAdd {
		t.Fatalf("scope_a bindings = %+v", a)
	}
	b := r.BindingsForScope("scope_b")
	if len(b) != 1 || b[0].Action != actionConfirm {
		t.Fatalf("scope_b bindings = %+v", b)
	}
}

func TestHelpBindingsTranslated(t *testing.T) {
	r := NewKeyRegistry()
	tr := func(k string) string { return "T:" + k }
	items := r.HelpBindings(scopeRecovery, tr)
	var confirm, quit bool
	for _, b := range items {
		h := b.Help()
		if h.Key == "ctrl+n" && h.Desc == "T:help_confirm" {
			confirm = true
		}
		if h.Key == "ctrl+c" && h.Desc == "T:help_quit" {
			quit = true
		}
	}
	if !confirm || !quit {
		t.Fatalf("help bindings missing confirm=%v quit=%v: %+v", confirm, quit, items)
	}
	for _, b := range r.HelpBindings(scopeWelcome, tr) {
		if b.Help().Desc == "T:" {
			t.Fatalf("binding without help text leaked into help: %+v", b.Help())
		}
	}
}

func TestNormalizeKeyName(t *testing.T) {
	cases := map[string]string{
		" ":         "space",
		"Control+N": "ctrl+n",
		"ctl+r":     "ctrl+r",
		"Return":    "enter",
		"Q":         "Q",
		"  ":        "",
	}
	for in, want := range cases {
		if got := normalizeKeyName(in); got != want {
			t.Fatalf("normalizeKeyName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadKeybindingsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.toml")
	body := `[[binding]]
scope = "recovery"
action = "confirm"
keys = ["ctrl+s", "f2"]
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := NewKeyRegistry()
	if err := r.LoadKeybindings(path); err != nil {
		t.Fatalf("LoadKeybindings: %v", err)
	}
	if b := r.Lookup("ctrl+s", scopeRecovery); b == nil || b.Action != actionConfirm {
		t.Fatalf("ctrl+s = %+v, want confirm", b)
	}
	if b := r.Lookup("ctrl+n", scopeRecovery); b != nil {
		t.Fatalf("old key still bound to %q", b.Action)
	}
}

func TestLoadKeybindingsMissingFile(t *testing.T) {
	r := NewKeyRegistry()
	if err := r.LoadKeybindings(filepath.Join(t.TempDir(), "absent.toml")); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}
	if err := r.LoadKeybindings(""); err != nil {
		t.Fatalf("empty path should be ignored: %v", err)
	}
}

func TestLoadKeybindingsRejectsBadConfig(t *testing.T) {
	cases := map[string]string{
		"unknown scope":  "[[binding]]\nscope = \"nope\"\naction = \"confirm\"\nkeys = [\"x\"]\n",
		"unknown action": "[[binding]]\nscope = \"recovery\"\naction = \"fly\"\nkeys = [\"x\"]\n",
		"no keys":        "[[binding]]\nscope = \"recovery\"\naction = \"confirm\"\nkeys = []\n",
		"conflict":       "[[binding]]\nscope = \"recovery\"\naction = \"confirm\"\nkeys = [\"enter\"]\n",
		"bad toml":       "[[binding]\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "keybindings.toml")
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		err := NewKeyRegistry().LoadKeybindings(path)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if name == "conflict" && !strings.Contains(err.Error(), "conflict") {
			t.Fatalf("conflict error = %v", err)
		}
	}
}
