package problemgen

// Config tunes a Drafter.
type Config struct {
	// Validators run in order on every draft; the first failure wins.
	Validators []Validator

	// Attempts bounds how many drafts are requested when a draft fails a
	// retryable check. Each new request quotes the failure.
	Attempts int

	// RejectDuplicates fails drafts whose text repeats a prior text.
	RejectDuplicates bool

	MaxTokens   int
	Temperature float64

	// MaxPriorTexts caps the "already in the pool" list in the prompt.
	// Duplicate rejection always sees every prior text.
	MaxPriorTexts int

	MaxExamples int
}

func DefaultConfig() Config {
	return Config{
		Validators:       DefaultValidators(),
		Attempts:         2,
		RejectDuplicates: true,
		MaxTokens:        1024,
		Temperature:      0.7,
		MaxPriorTexts:    8,
		MaxExamples:      2,
	}
}
