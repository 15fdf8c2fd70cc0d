// Package testdata builds deterministic word tables for tests. None of the
// generated words are real BIP39 words.
package testdata

import (
	"fmt"
	"strings"

	"github.com/jask/seedwalk/internal/wordtable"
)

// Words returns wordtable.Size distinct synthetic words, "w0001" for index 0
// through "w2048" for index 2047, so a word's text carries its 1-based index.
func Words() []string {
	out := make([]string, wordtable.Size)
	for i := range out {
		out[i] = fmt.Sprintf("w%04d", i+1)
	}
	return out
}

// Table returns a validated table over Words. It panics on construction
// failure since the generated input is fixed.
func Table() *wordtable.Table {
	t, err := wordtable.New(Words())
	if err != nil {
		panic(err)
	}
	return t
}

// File renders Words as a newline separated wordlist file body.
func File() string {
	return strings.Join(Words(), "\n") + "\n"
}
