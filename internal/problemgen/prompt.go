package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathstudio/internal/problem"
)

const systemPrompt = `You are a math teacher writing practice problems for Japanese middle-school students, some of whom have difficulty writing.

Rules:
- Write a single problem for the given unit and difficulty tier, in Japanese.
- Keep numbers small and answers exact: integers, simple fractions, or multiples of π. No rounding.
- The correct answer must be short and typeable with a keypad: digits, x, y, a, π, ≦ and + - * / = . , ( ) only. No units, no spaces.
- List other ways a student may write the same answer in answer_variants (with spaces, with units, y = 5x versus y=5*x). Matching is literal, so include every form you want to accept.
- Give 2 to 4 hints that narrate the solution one step at a time. The first hint should not give away the answer.
- Do not repeat any problem from the "already in the pool" list.`

var tierGuidance = map[string]string{
	"easy":   "one step, direct substitution",
	"normal": "two steps, or a short word problem",
	"hard":   "several steps, negative numbers allowed",
	"expert": "applied word problem combining ideas",
}

// buildUserMessage constructs the user message from DraftInput and Config limits.
func buildUserMessage(input DraftInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Genre: %s\n", input.Genre)
	fmt.Fprintf(&b, "Unit: %s\n", input.unit())
	fmt.Fprintf(&b, "Tier: %s (%s)\n", input.Tier, tierGuidance[input.Tier.String()])
	fmt.Fprintf(&b, "Points: %d\n", input.Tier.Points())

	b.WriteString("\nAlready in the pool:\n")
	b.WriteString(buildDedup(input.PriorTexts, cfg.MaxPriorTexts))

	if len(input.Examples) > 0 {
		b.WriteString("\n\nStyle examples:\n")
		b.WriteString(buildExamples(input.Examples, cfg.MaxExamples))
	}

	return b.String()
}

// buildExamples formats example problems for the prompt, respecting the max limit.
func buildExamples(examples []problem.Problem, max int) string {
	if max > 0 && len(examples) > max {
		examples = examples[:max]
	}

	var b strings.Builder
	for i, ex := range examples {
		fmt.Fprintf(&b, "%d. %s\n   answer: %s\n   hints: %s\n",
			i+1,
			strings.ReplaceAll(ex.Text, "\n", " "),
			ex.Answer,
			strings.Join(ex.Hints, " / "),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}
