package problem

import (
	"strings"
	"unicode"
)

// Normalize canonicizes a free-text answer for comparison. It drops every
// whitespace rune, lowercases ASCII letters, and maps the typographic minus,
// multiplication and division signs to their ASCII operators. Nothing else
// is rewritten: "y=2/4x" and "y=0.5x" stay different.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == '−':
			return '-'
		case r == '×':
			return '*'
		case r == '÷':
			return '/'
		}
		return r
	}, s)
}

// IsCorrect reports whether raw matches the canonical answer or one of the
// accepted variants after normalization. Matching is literal: only forms
// the author enumerated are accepted.
func IsCorrect(p Problem, raw string) bool {
	got := Normalize(raw)
	if got == Normalize(p.Answer) {
		return true
	}
	for _, v := range p.Variants {
		if got == Normalize(v) {
			return true
		}
	}
	return false
}

// NextHint returns the hint index after cur, clamped to the last hint.
// Callers start at -1 (no hint revealed). Returns -1 for a problem
// without hints.
func NextHint(p Problem, cur int) int {
	last := len(p.Hints) - 1
	if last < 0 {
		return -1
	}
	next := cur + 1
	if next < 0 {
		next = 0
	}
	if next > last {
		return last
	}
	return next
}

// Hint returns the hint at index i, or "" when i is out of range.
func Hint(p Problem, i int) string {
	if i < 0 || i >= len(p.Hints) {
		return ""
	}
	return p.Hints[i]
}
