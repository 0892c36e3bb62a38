package problemgen

import "github.com/abhisek/mathstudio/internal/problem"

// DraftInput holds the context needed to draft one extension problem.
type DraftInput struct {
	// Genre and Tier of the problem to draft.
	Genre problem.Genre
	Tier  problem.Tier

	// Unit is an optional curricular unit label. Defaults to the genre's
	// display name.
	Unit string

	// PriorTexts contains the text of problems already in the pool for this
	// genre and tier. Used for deduplication in the prompt.
	PriorTexts []string

	// Examples are existing problems shown to the model as style references.
	Examples []problem.Problem
}

func (in DraftInput) unit() string {
	if in.Unit != "" {
		return in.Unit
	}
	return in.Genre.DisplayName()
}
