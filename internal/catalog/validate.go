package catalog

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathstudio/internal/problem"
)

// validateCatalog performs all structural checks on the given problem set.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(problems []problem.Problem) error {
	var errs []string

	idSet := make(map[string]bool, len(problems))
	genreSet := make(map[problem.Genre]bool)

	for _, p := range problems {
		if p.ID == "" {
			errs = append(errs, fmt.Sprintf("problem with empty ID: %q", p.Text))
		}
		if idSet[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate problem ID: %q", p.ID))
		}
		idSet[p.ID] = true
		genreSet[p.Genre] = true

		if err := p.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
		if p.Unit == "" {
			errs = append(errs, fmt.Sprintf("problem %q has no unit", p.ID))
		}
		if !problem.IsCorrect(p, p.Answer) {
			errs = append(errs, fmt.Sprintf("problem %q rejects its own answer", p.ID))
		}
	}

	// Every bank must cover the easiest tier; fallback handles the rest.
	for g := range genreSet {
		found := false
		for _, p := range problems {
			if p.Genre == g && p.Tier == problem.TierEasy {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Sprintf("genre %q has no easy problems", g))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Validate re-runs the load-time checks over the banks.
func Validate() error {
	return validateCatalog(c.problems)
}
