package problemgen

import (
	"fmt"

	"github.com/abhisek/mathstudio/internal/problem"
)

// Validator checks a problem for correctness before it is served or saved.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "math-check", "answer-form".
	Name() string

	// Validate checks the problem and returns nil if it passes.
	Validate(p *problem.Problem) *ValidationError
}

// ValidationError describes why a problem failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether drafting again is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the standard chain, in execution order.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&AnswerFormValidator{},
		&MathCheckValidator{},
	}
}

// RunValidators runs vs in order and returns the first failure.
func RunValidators(p *problem.Problem, vs []Validator) *ValidationError {
	for _, v := range vs {
		if verr := v.Validate(p); verr != nil {
			return verr
		}
	}
	return nil
}
