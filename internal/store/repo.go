package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/abhisek/mathstudio/internal/problem"
)

// QueryOpts configures list queries with pagination.
type QueryOpts struct {
	Limit  int // max results (0 = unlimited)
	Offset int
}

// SnapshotData captures the learner's practice state at a point in time.
// Session is the session package's own JSON encoding; the store treats it
// as opaque.
type SnapshotData struct {
	Version int             `json:"version"`
	Session json.RawMessage `json:"session,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. A zero Sequence is filled with the current
	// global sequence; a zero Timestamp with the current time.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Clear deletes every snapshot.
	Clear(ctx context.Context) error
}

// AttemptData captures one answer check.
type AttemptData struct {
	SessionID  string
	ProblemID  string
	Genre      problem.Genre
	Tier       problem.Tier
	Source     problem.Source
	Answer     string
	Correct    bool
	HintsUsed  int
	DurationMs int64
}

// ResultData captures the points awarded for a correct answer.
type ResultData struct {
	SessionID string
	ProblemID string
	Genre     problem.Genre
	Tier      problem.Tier
	Points    int
}

// WrongAnswerData captures an incorrect answer for later review.
type WrongAnswerData struct {
	SessionID string
	ProblemID string
	Genre     problem.Genre
	Tier      problem.Tier
	Text      string
	Given     string
	Expected  string
}

// WrongAnswerRecord is a stored wrong answer.
type WrongAnswerRecord struct {
	ID        string
	Sequence  int64
	Timestamp time.Time
	WrongAnswerData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM requests by purpose.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// EventRepo provides append access to practice and LLM records.
type EventRepo interface {
	// AppendAttempt records an answer check.
	AppendAttempt(ctx context.Context, data AttemptData) error

	// AppendResult records points awarded for a correct answer.
	AppendResult(ctx context.Context, data ResultData) error

	// AppendWrongAnswer records an incorrect answer.
	AppendWrongAnswer(ctx context.Context, data WrongAnswerData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentWrongAnswers returns the most recent wrong answers, newest first.
	RecentWrongAnswers(ctx context.Context, limit int) ([]WrongAnswerRecord, error)

	// QueryLLMEvents returns LLM requests, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM request by id, or ErrNotFound.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates LLM requests per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// Stats summarizes attempts and results.
	Stats(ctx context.Context) (*Stats, error)
}

// NewProblemInput is an authored extension problem awaiting approval.
type NewProblemInput struct {
	Genre     string   `json:"genre" validate:"required,genre"`
	Tier      string   `json:"tier" validate:"required,tier"`
	Unit      string   `json:"unit" validate:"max=64"`
	Text      string   `json:"text" validate:"required,max=500"`
	Answer    string   `json:"answer" validate:"required,max=200"`
	Variants  []string `json:"variants" validate:"dive,required,max=200"`
	Hints     []string `json:"hints" validate:"required,min=1,max=6,dive,required,max=300"`
	Chips     []string `json:"chips" validate:"dive,required,max=32"`
	CreatedBy string   `json:"created_by" validate:"required,max=64"`
}

// ProblemRecord is a stored extension problem.
type ProblemRecord struct {
	ID         string          `json:"id"`
	Problem    problem.Problem `json:"problem"`
	CreatedBy  string          `json:"created_by"`
	Approved   bool            `json:"approved"`
	CreatedAt  time.Time       `json:"created_at"`
	ApprovedAt *time.Time      `json:"approved_at,omitempty"`
}

// ProblemFilter narrows ListProblems. Zero fields match everything.
type ProblemFilter struct {
	CreatedBy string
	Approved  *bool
	Genre     problem.Genre
	Tier      *problem.Tier
	QueryOpts
}

// ProblemRepo manages authored extension problems.
type ProblemRepo interface {
	// AddProblem validates in and stores it unapproved.
	AddProblem(ctx context.Context, in NewProblemInput) (*ProblemRecord, error)

	// GetProblem returns the problem with id, or ErrNotFound.
	GetProblem(ctx context.Context, id string) (*ProblemRecord, error)

	// ApproveProblem marks id approved, or returns ErrNotFound.
	ApproveProblem(ctx context.Context, id string) error

	// DeleteProblem removes id, or returns ErrNotFound.
	DeleteProblem(ctx context.Context, id string) error

	// ListProblems returns stored problems matching f, newest first.
	ListProblems(ctx context.Context, f ProblemFilter) ([]ProblemRecord, error)

	// ApprovedProblems returns approved problems as extension Problems,
	// optionally narrowed by genre and tier.
	ApprovedProblems(ctx context.Context, g problem.Genre, t *problem.Tier) ([]problem.Problem, error)
}
