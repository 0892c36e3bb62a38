package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathstudio/internal/problem"
)

// answerRunes are the runes a normalized canonical answer may contain.
// Unit suffixes and Japanese punctuation belong in variants only.
const answerRunes = "0123456789abcdefghijklmnopqrstuvwxyz+-*/=.,()≦<π"

// AnswerFormValidator checks that the canonical answer is written in the
// keypad alphabet and holds a single equation or value. Variants are free
// form: they exist to accept what learners actually type.
type AnswerFormValidator struct{}

func (v *AnswerFormValidator) Name() string { return "answer-form" }

func (v *AnswerFormValidator) Validate(p *problem.Problem) *ValidationError {
	canonical := problem.Normalize(p.Answer)
	for _, r := range canonical {
		if !strings.ContainsRune(answerRunes, r) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("answer %q contains %q outside the keypad alphabet", p.Answer, r),
				Retryable: true,
			}
		}
	}

	if strings.Count(canonical, "=") > 1 && !strings.Contains(canonical, ",") {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %q has more than one '='", p.Answer),
			Retryable: true,
		}
	}
	return nil
}
