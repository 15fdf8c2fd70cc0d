package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestSessionLogFields(t *testing.T) {
	var buf bytes.Buffer
	sl := NewSessionLog(NewWriter(&buf, zerolog.DebugLevel))

	sl.Started(12)
	sl.Step(EventInputAccepted, 1, 12, "")
	sl.Step(EventInputRejected, 1, 12, "duplicate_input")
	sl.Completed(12)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)
	require.Equal(t, "session_started", lines[0]["event"])
	require.EqualValues(t, 12, lines[0]["length"])
	require.NotEmpty(t, lines[0]["run"])
	require.Equal(t, "debug", lines[1]["level"])
	require.Equal(t, "warn", lines[2]["level"])
	require.Equal(t, "duplicate_input", lines[2]["kind"])
	require.Equal(t, "recovery_complete", lines[3]["event"])
	require.Contains(t, lines[3], "elapsed")
	require.Equal(t, lines[0]["run"], lines[3]["run"])
}

func TestNewWithoutPathIsDisabled(t *testing.T) {
	l, c, err := New("debug", "")
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "seedwalk.log")
	l, c, err := New("not-a-level", path)
	require.NoError(t, err)
	NewSessionLog(l).Restarted()
	require.NoError(t, c.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"event":"session_restart"`)
}
