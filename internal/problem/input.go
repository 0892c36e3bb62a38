package problem

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is matched by every *InputError.
var ErrInvalidInput = errors.New("invalid input")

// MinChallengeCount and MaxChallengeCount bound a challenge set.
const (
	MinChallengeCount = 1
	MaxChallengeCount = 50
)

// InputError reports a caller-supplied value outside its enumeration.
type InputError struct {
	Field string
	Value string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

var tierAliases = map[string]Tier{
	"easy":         TierEasy,
	"introductory": TierEasy,
	"normal":       TierNormal,
	"standard":     TierNormal,
	"hard":         TierHard,
	"advanced":     TierHard,
	"expert":       TierExpert,
}

// ParseTier converts a tier identifier (case-insensitive) to a Tier.
func ParseTier(s string) (Tier, error) {
	t, ok := tierAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, &InputError{Field: "tier", Value: s}
	}
	return t, nil
}

// ParseGenre converts a wire identifier to a Genre.
func ParseGenre(s string) (Genre, error) {
	g := Genre(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", &InputError{Field: "genre", Value: s}
	}
	return g, nil
}

// CheckTier returns an *InputError if t is outside the enumeration.
func CheckTier(t Tier) error {
	if !t.Valid() {
		return &InputError{Field: "tier", Value: fmt.Sprint(int(t))}
	}
	return nil
}

// CheckGenre returns an *InputError if g is not a known genre.
func CheckGenre(g Genre) error {
	if !g.Valid() {
		return &InputError{Field: "genre", Value: string(g)}
	}
	return nil
}

// CheckCount returns an *InputError if n is outside [1, 50].
func CheckCount(n int) error {
	if n < MinChallengeCount || n > MaxChallengeCount {
		return &InputError{Field: "count", Value: fmt.Sprint(n)}
	}
	return nil
}
