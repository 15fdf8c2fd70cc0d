// Package recovery holds the word-recovery state machine. A word is entered
// as a set of distinct powers of two whose sum is its 1-based wordlist index;
// the session resolves the sum against the table and commits words one at a
// time until the phrase reaches its target length.
package recovery

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jask/seedwalk/internal/wordtable"
)

// WordTable is the read-only lookup the session resolves sums against.
// Get is only called with 0 <= index < wordtable.Size.
type WordTable interface {
	Get(index int) string
}

// State tags where a session is in its lifecycle.
type State string

const (
	StateSelectingLength State = "selecting_length"
	StateRecovering      State = "recovering"
	StateComplete        State = "complete"
)

// ValidLengths are the phrase lengths a session accepts.
var ValidLengths = [...]int{12, 18, 24}

// validInputs is the closed set of accepted inputs, 2^0 through 2^10.
var validInputs = map[int]struct{}{
	1: {}, 2: {}, 4: {}, 8: {}, 16: {}, 32: {}, 64: {}, 128: {}, 256: {}, 512: {}, 1024: {},
}

// IsValidLength reports whether n is one of ValidLengths.
func IsValidLength(n int) bool {
	for _, l := range ValidLengths {
		if n == l {
			return true
		}
	}
	return false
}

// IsValidInput reports whether n belongs to {1, 2, 4, ..., 1024}.
func IsValidInput(n int) bool {
	_, ok := validInputs[n]
	return ok
}

// Session owns the mutable state of one recovery run. It is not safe for
// concurrent use; a single caller drives it.
type Session struct {
	table  WordTable
	state  State
	target int
	words  []string
	inputs []int
	sum    int
}

// New returns a session waiting for a phrase length.
func New(table WordTable) *Session {
	return &Session{table: table, state: StateSelectingLength}
}

// Start begins recovering a phrase of length words, discarding anything
// recovered so far. An invalid length leaves the session unchanged.
func (s *Session) Start(length int) error {
	if !IsValidLength(length) {
		return fmt.Errorf("start %d: %w", length, ErrInvalidLength)
	}
	s.wipe()
	s.target = length
	s.state = StateRecovering
	return nil
}

// Restart abandons the current run from any state and starts a new one.
func (s *Session) Restart(length int) error {
	return s.Start(length)
}

// Reset drops all phrase material and returns to length selection.
func (s *Session) Reset() {
	s.wipe()
	s.target = 0
	s.state = StateSelectingLength
}

// AddInput parses raw as a whole number and adds it to the current word.
// Full-width and other Unicode decimal digits are accepted, as are single
// underscores between digits.
func (s *Session) AddInput(raw string) error {
	if s.state != StateRecovering {
		return ErrNotRecovering
	}
	n, err := parseWhole(raw)
	if err != nil {
		return err
	}
	return s.AddInputValue(n)
}

// AddInputValue adds n to the current word.
func (s *Session) AddInputValue(n int) error {
	if s.state != StateRecovering {
		return ErrNotRecovering
	}
	if !IsValidInput(n) {
		return ErrNotAPowerOfTwoInRange
	}
	for _, v := range s.inputs {
		if v == n {
			return ErrDuplicateInput
		}
	}
	s.inputs = append(s.inputs, n)
	s.sum += n
	return nil
}

// ConfirmWord commits the word the current sum resolves to and advances to
// the next word, or to StateComplete after the last one. There is no undo.
func (s *Session) ConfirmWord() (string, error) {
	if s.state != StateRecovering {
		return "", ErrNotRecovering
	}
	if len(s.inputs) == 0 {
		return "", ErrNoInputYet
	}
	word, ok := s.resolve()
	if !ok {
		return "", ErrSumDoesNotResolve
	}
	s.words = append(s.words, word)
	s.clearInputs()
	if len(s.words) == s.target {
		s.state = StateComplete
	}
	return word, nil
}

// resolve applies index = sum - 1 against the table.
func (s *Session) resolve() (string, bool) {
	idx := s.sum - 1
	if idx < 0 || idx >= wordtable.Size {
		return "", false
	}
	return s.table.Get(idx), true
}

func (s *Session) clearInputs() {
	s.inputs = nil
	s.sum = 0
}

func (s *Session) wipe() {
	for i := range s.words {
		s.words[i] = ""
	}
	s.words = nil
	s.clearInputs()
}

// State returns the lifecycle tag.
func (s *Session) State() State { return s.state }

// Target returns the phrase length, 0 while selecting.
func (s *Session) Target() int { return s.target }

// Position is the 1-based index of the word being recovered. Once complete
// it equals Target.
func (s *Session) Position() int {
	switch s.state {
	case StateRecovering:
		return len(s.words) + 1
	case StateComplete:
		return s.target
	default:
		return 0
	}
}

// Sum is the running total of the current word's inputs.
func (s *Session) Sum() int { return s.sum }

// Inputs returns the current word's inputs in ascending order.
func (s *Session) Inputs() []int {
	out := append([]int(nil), s.inputs...)
	sort.Ints(out)
	return out
}

// Preview resolves the current sum without committing. ok is false while
// no input was added or the sum falls outside the table.
func (s *Session) Preview() (word string, index int, ok bool) {
	if len(s.inputs) == 0 {
		return "", 0, false
	}
	word, ok = s.resolve()
	if !ok {
		return "", 0, false
	}
	return word, s.sum, true
}

// Words returns a copy of the words committed so far.
func (s *Session) Words() []string {
	return append([]string(nil), s.words...)
}

// Phrase joins the recovered words with spaces. It is only available once
// the session is complete.
func (s *Session) Phrase() (string, bool) {
	if s.state != StateComplete {
		return "", false
	}
	return strings.Join(s.words, " "), true
}
