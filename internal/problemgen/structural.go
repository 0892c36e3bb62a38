package problemgen

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/mathstudio/internal/problem"
)

const (
	maxTextRunes = 500
	maxHintRunes = 300
	maxHints     = 6
)

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *problem.Problem) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}

	if !p.Genre.Valid() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown genre %q", p.Genre),
		}
	}
	if !p.Tier.Valid() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("invalid tier %d", int(p.Tier)),
		}
	}
	if strings.TrimSpace(p.Text) == "" {
		return fail("problem text is empty")
	}
	if utf8.RuneCountInString(p.Text) > maxTextRunes {
		return fail(fmt.Sprintf("problem text exceeds %d characters", maxTextRunes))
	}
	if problem.Normalize(p.Answer) == "" {
		return fail("answer is empty")
	}
	if len(p.Hints) == 0 {
		return fail("hints are empty")
	}
	if len(p.Hints) > maxHints {
		return fail(fmt.Sprintf("more than %d hints", maxHints))
	}
	for i, h := range p.Hints {
		if strings.TrimSpace(h) == "" {
			return fail(fmt.Sprintf("hint %d is empty", i+1))
		}
		if utf8.RuneCountInString(h) > maxHintRunes {
			return fail(fmt.Sprintf("hint %d exceeds %d characters", i+1, maxHintRunes))
		}
	}
	for i, vr := range p.Variants {
		if problem.Normalize(vr) == "" {
			return fail(fmt.Sprintf("variant %d is empty", i+1))
		}
	}
	return nil
}
