// Package logging configures zerolog for seedwalk. Logs describe what the
// user did, never what they entered: no numbers, sums, indices or words.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New returns a logger writing to path, or a disabled logger when path is
// empty. The returned closer releases the file.
func New(level, path string) (zerolog.Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWriter(f, lvl), f, nil
}

// NewWriter builds a logger on w tagged with a fresh run id.
func NewWriter(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()
}

// Event names a session step.
type Event string

const (
	EventSessionStarted Event = "session_started"
	EventInputAccepted  Event = "input_accepted"
	EventInputRejected  Event = "input_rejected"
	EventWordConfirmed  Event = "word_confirmed"
	EventConfirmFailed  Event = "confirm_failed"
	EventComplete       Event = "recovery_complete"
	EventRestart        Event = "session_restart"
	EventLanguage       Event = "language_changed"
)

// SessionLog records session events. Its methods only accept counters and
// error kinds so phrase material cannot reach the log.
type SessionLog struct {
	log     zerolog.Logger
	started time.Time
}

// NewSessionLog wraps l.
func NewSessionLog(l zerolog.Logger) *SessionLog {
	return &SessionLog{log: l}
}

// Started records a new session of length words.
func (s *SessionLog) Started(length int) {
	s.started = time.Now()
	s.log.Info().Str("event", string(EventSessionStarted)).Int("length", length).Msg("session")
}

// Step records an event at a word position. kind is an error code or "".
func (s *SessionLog) Step(ev Event, position, target int, kind string) {
	e := s.log.Debug()
	if kind != "" {
		e = s.log.Warn().Str("kind", kind)
	}
	e.Str("event", string(ev)).Int("position", position).Int("target", target).Msg("session")
}

// Completed records that every word was recovered.
func (s *SessionLog) Completed(target int) {
	e := s.log.Info().Str("event", string(EventComplete)).Int("target", target)
	if !s.started.IsZero() {
		e = e.Dur("elapsed", time.Since(s.started))
	}
	e.Msg("session")
}

// Restarted records an abandoned or finished session being reset.
func (s *SessionLog) Restarted() {
	s.log.Info().Str("event", string(EventRestart)).Msg("session")
}

// Language records a display language switch.
func (s *SessionLog) Language(code string) {
	s.log.Debug().Str("event", string(EventLanguage)).Str("language", code).Msg("ui")
}
