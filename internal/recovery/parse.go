package recovery

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// parseWhole reads raw as a base-10 whole number. Full-width forms are
// narrowed first, any Unicode decimal digit counts as its value, and single
// underscores may separate digits.
func parseWhole(raw string) (int, error) {
	s := strings.TrimSpace(width.Narrow.String(raw))

	var b strings.Builder
	prevDigit := false
	for i, r := range s {
		if i == 0 && (r == '+' || r == '-') {
			b.WriteRune(r)
			continue
		}
		if r == '_' {
			if !prevDigit {
				return 0, ErrNotAnInteger
			}
			prevDigit = false
			continue
		}
		d, ok := digitValue(r)
		if !ok {
			return 0, ErrNotAnInteger
		}
		b.WriteByte(byte('0' + d))
		prevDigit = true
	}
	// Catches empty input, a bare sign and a trailing underscore.
	if !prevDigit {
		return 0, ErrNotAnInteger
	}

	n, err := strconv.Atoi(b.String())
	if err != nil {
		// A whole number too large for int is still not in the allowed set.
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrNotAPowerOfTwoInRange
		}
		return 0, ErrNotAnInteger
	}
	return n, nil
}

// digitValue returns the value of a Unicode decimal digit. Every Nd run is a
// sequence of complete 0-9 blocks, so the value is the offset modulo ten.
func digitValue(r rune) (int, bool) {
	if !unicode.IsDigit(r) {
		return 0, false
	}
	for _, rg := range unicode.Nd.R16 {
		lo, hi, stride := rune(rg.Lo), rune(rg.Hi), rune(rg.Stride)
		if r >= lo && r <= hi && (r-lo)%stride == 0 {
			return int((r-lo)/stride) % 10, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		lo, hi, stride := rune(rg.Lo), rune(rg.Hi), rune(rg.Stride)
		if r >= lo && r <= hi && (r-lo)%stride == 0 {
			return int((r-lo)/stride) % 10, true
		}
	}
	return 0, false
}
