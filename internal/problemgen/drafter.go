package problemgen

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/abhisek/mathstudio/internal/llm"
	"github.com/abhisek/mathstudio/internal/problem"
)

// Drafter writes candidate extension problems with an LLM provider. Drafts
// are unapproved: a human reviews them before they join the pool.
type Drafter struct {
	provider llm.Provider
	config   Config
}

func NewDrafter(provider llm.Provider, cfg Config) *Drafter {
	return &Drafter{provider: provider, config: cfg}
}

// draftOutput mirrors DraftSchema.
type draftOutput struct {
	ProblemText    string   `json:"problem_text"`
	CorrectAnswer  string   `json:"correct_answer"`
	AnswerVariants []string `json:"answer_variants"`
	Hints          []string `json:"hints"`
	Chips          []string `json:"chips"`
}

// Draft produces one validated problem for the given genre and tier. A
// draft that fails a retryable check is requested again, quoting the
// failure, until Config.Attempts is used up; the last failure is returned
// as a *ValidationError.
func (d *Drafter) Draft(ctx context.Context, input DraftInput) (*problem.Problem, error) {
	if err := problem.CheckGenre(input.Genre); err != nil {
		return nil, err
	}
	if err := problem.CheckTier(input.Tier); err != nil {
		return nil, err
	}

	ctx = llm.WithTag(ctx, llm.Tag{
		Purpose: llm.PurposeDraft,
		Genre:   string(input.Genre),
		Tier:    input.Tier.String(),
	})

	validators := d.config.Validators
	if d.config.RejectDuplicates {
		validators = append(slices.Clip(validators), NewDuplicateValidator(input.PriorTexts))
	}

	var rejected *ValidationError
	for range max(d.config.Attempts, 1) {
		p, err := d.request(ctx, input, rejected)
		if err != nil {
			return nil, err
		}
		rejected = RunValidators(p, validators)
		if rejected == nil {
			return p, nil
		}
		if !rejected.Retryable {
			break
		}
	}
	return nil, rejected
}

// request asks for one draft. rejected, when set, is the previous draft's
// failure and is quoted back to the model.
func (d *Drafter) request(ctx context.Context, input DraftInput, rejected *ValidationError) (*problem.Problem, error) {
	msg := buildUserMessage(input, d.config)
	if rejected != nil {
		msg += fmt.Sprintf("\n\nYour previous draft was rejected (%s): %s\nWrite a new problem that avoids this.",
			rejected.Validator, rejected.Message)
	}

	resp, err := d.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: msg}},
		Schema:      DraftSchema,
		MaxTokens:   d.config.MaxTokens,
		Temperature: d.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("draft %s/%s: %w", input.Genre, input.Tier, err)
	}

	var out draftOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &problem.Problem{
		Genre:    input.Genre,
		Tier:     input.Tier,
		Unit:     input.unit(),
		Text:     out.ProblemText,
		Answer:   out.CorrectAnswer,
		Variants: out.AnswerVariants,
		Hints:    out.Hints,
		Chips:    out.Chips,
		Source:   problem.SourceExtension,
	}, nil
}
