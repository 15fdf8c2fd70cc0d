// Package wordtable provides the fixed, ordered 2048-entry word table that
// recovery resolves indices against.
package wordtable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Size is the number of entries every table holds.
const Size = 2048

var (
	ErrWrongLength   = errors.New("wordlist must contain exactly 2048 words")
	ErrDuplicateWord = errors.New("wordlist contains a duplicate word")
	ErrEmptyWord     = errors.New("wordlist contains an empty word")
)

// LengthError reports a wordlist with the wrong number of words. It matches
// ErrWrongLength under errors.Is.
type LengthError struct {
	Count int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: got %d", ErrWrongLength, e.Count)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrWrongLength
}

// Table is an immutable ordered list of exactly Size distinct words.
// The zero value is not usable; build one with New, Parse or Load.
type Table struct {
	words []string
}

// New validates words and returns a table holding its own copy of them.
func New(words []string) (*Table, error) {
	if len(words) != Size {
		return nil, &LengthError{Count: len(words)}
	}
	seen := make(map[string]int, Size)
	out := make([]string, Size)
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w at line %d", ErrEmptyWord, i+1)
		}
		if prev, ok := seen[w]; ok {
			return nil, fmt.Errorf("%w: %q at lines %d and %d", ErrDuplicateWord, w, prev+1, i+1)
		}
		seen[w] = i
		out[i] = w
	}
	return &Table{words: out}, nil
}

// Parse reads one word per line, trimming whitespace and skipping blank lines.
func Parse(r io.Reader) (*Table, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan wordlist: %w", err)
	}
	return New(words)
}

// Load opens path and parses it as a wordlist.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist %s: %w", path, err)
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("wordlist %s: %w", path, err)
	}
	return t, nil
}

// Get returns the word at the 0-based index. Callers must stay within 0..Size-1.
func (t *Table) Get(index int) string {
	return t.words[index]
}

// Len always reports Size for a constructed table.
func (t *Table) Len() int {
	return len(t.words)
}

// ResolvePath locates a relative wordlist name next to the running executable,
// falling back to the working directory. Absolute paths are returned as is.
func ResolvePath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, name)
	}
	return name
}
