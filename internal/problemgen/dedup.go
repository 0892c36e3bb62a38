package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathstudio/internal/problem"
)

// buildDedup lists the newest max prior texts for the prompt, one per
// numbered line, or "None".
func buildDedup(priorTexts []string, max int) string {
	if max > 0 && len(priorTexts) > max {
		priorTexts = priorTexts[len(priorTexts)-max:]
	}
	if len(priorTexts) == 0 {
		return "None"
	}

	lines := make([]string, len(priorTexts))
	for i, text := range priorTexts {
		lines[i] = fmt.Sprintf("%d. %s", i+1, strings.Join(strings.Fields(text), " "))
	}
	return strings.Join(lines, "\n")
}

// DuplicateValidator rejects a problem whose text matches one already in
// the pool. Texts are compared after answer normalization, so spacing and
// ASCII case do not count as differences.
type DuplicateValidator struct {
	seen map[string]struct{}
}

func NewDuplicateValidator(texts []string) *DuplicateValidator {
	seen := make(map[string]struct{}, len(texts))
	for _, t := range texts {
		seen[problem.Normalize(t)] = struct{}{}
	}
	return &DuplicateValidator{seen: seen}
}

func (v *DuplicateValidator) Name() string { return "duplicate" }

func (v *DuplicateValidator) Validate(p *problem.Problem) *ValidationError {
	if _, ok := v.seen[problem.Normalize(p.Text)]; ok {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "text repeats a problem already in the pool",
			Retryable: true,
		}
	}
	return nil
}
