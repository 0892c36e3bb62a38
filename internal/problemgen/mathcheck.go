package problemgen

import (
	"fmt"

	"github.com/Knetic/govaluate"

	"github.com/abhisek/mathstudio/internal/problem"
)

// MathCheckValidator evaluates a problem's Relation over its Params and
// fails when the identity does not hold. Problems without a relation
// (authored or drafted ones) pass through silently.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(p *problem.Problem) *ValidationError {
	if p.Relation == "" {
		return nil
	}
	ok, err := EvalRelation(p.Relation, p.Params)
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("relation %q: %s", p.Relation, err),
		}
	}
	if !ok {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("relation %q does not hold for %v", p.Relation, p.Params),
			Retryable: true,
		}
	}
	return nil
}

// EvalRelation evaluates a boolean arithmetic expression over integer
// parameters. Parameters are small integers, so float64 evaluation is exact.
func EvalRelation(relation string, params map[string]int) (bool, error) {
	expr, err := govaluate.NewEvaluableExpression(relation)
	if err != nil {
		return false, fmt.Errorf("parse: %w", err)
	}

	vars := make(map[string]interface{}, len(params))
	for k, n := range params {
		vars[k] = float64(n)
	}
	for _, name := range expr.Vars() {
		if _, ok := vars[name]; !ok {
			return false, fmt.Errorf("unbound parameter %q", name)
		}
	}

	out, err := expr.Evaluate(vars)
	if err != nil {
		return false, fmt.Errorf("evaluate: %w", err)
	}
	result, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("relation yields %T, not bool", out)
	}
	return result, nil
}
