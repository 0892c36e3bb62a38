// Package session holds one learner's practice state: the current problem,
// score, streak, history, the wrong-answer review list and challenge
// progress. It is the caller side of the engine.
package session

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/mathstudio/internal/engine"
	"github.com/abhisek/mathstudio/internal/problem"
	"github.com/abhisek/mathstudio/internal/problemgen"
	"github.com/abhisek/mathstudio/internal/store"
)

var (
	ErrNoProblem           = errors.New("no current problem")
	ErrAlreadySolved       = errors.New("current problem already solved")
	ErrChallengeActive     = errors.New("not allowed during a challenge")
	ErrNotInChallenge      = errors.New("no challenge in progress")
	ErrWrongAnswerNotFound = errors.New("wrong answer not found")
)

// Recorder persists check outcomes. store.EventRepo satisfies it.
type Recorder interface {
	AppendAttempt(ctx context.Context, data store.AttemptData) error
	AppendResult(ctx context.Context, data store.ResultData) error
	AppendWrongAnswer(ctx context.Context, data store.WrongAnswerData) error
}

// Observer is notified of served problems, checks and hints.
// *metrics.Metrics satisfies it.
type Observer interface {
	ProblemServed(p problem.Problem)
	AnswerChecked(p problem.Problem, correct bool)
	HintRevealed(p problem.Problem)
}

// Option configures a Session.
type Option func(*Session)

// WithExtension enables extension problem injection.
func WithExtension(ext *engine.Extension) Option {
	return func(s *Session) { s.ext = ext }
}

// WithRecorder reports every check to r.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithObserver reports served problems, checks and hints to o.
func WithObserver(o Observer) Option {
	return func(s *Session) { s.observer = o }
}

// WithLogger sets the logger used for recorder failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Session is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id       string
	engine   *engine.Engine
	rand     problemgen.Rand
	ext      *engine.Extension
	recorder Recorder
	observer Observer
	logger   *zap.Logger
	now      func() time.Time

	state     State
	startedAt time.Time
}

// New creates a session drawing problems from eng. r picks encouragements.
func New(eng *engine.Engine, r problemgen.Rand, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		engine: eng,
		rand:   r,
		logger: zap.NewNop(),
		now:    time.Now,
		state:  newState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID identifies the session in recorded events.
func (s *Session) ID() string {
	return s.id
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	if st.Current != nil {
		p := st.Current.Clone()
		st.Current = &p
	}
	st.History = slices.Clone(st.History)
	st.WrongAnswers = slices.Clone(st.WrongAnswers)
	if st.Challenge != nil {
		c := *st.Challenge
		c.Problems = slices.Clone(c.Problems)
		st.Challenge = &c
	}
	return st
}

// Current returns the problem being worked on.
func (s *Session) Current() (problem.Problem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Current == nil {
		return problem.Problem{}, false
	}
	return s.state.Current.Clone(), true
}

// Next serves a fresh problem for genre g and tier t and makes them the
// selected genre and tier.
func (s *Session) Next(g problem.Genre, t problem.Tier) (problem.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Challenge != nil {
		return problem.Problem{}, ErrChallengeActive
	}
	return s.nextLocked(g, t)
}

func (s *Session) nextLocked(g problem.Genre, t problem.Tier) (problem.Problem, error) {
	p, err := s.engine.GetProblem(g, t, s.ext)
	if err != nil {
		return problem.Problem{}, err
	}
	s.state.Genre = g
	s.state.Tier = t
	s.present(p)
	return p.Clone(), nil
}

// present makes p current and resets the per-problem state.
func (s *Session) present(p problem.Problem) {
	s.state.Current = &p
	s.state.HintIndex = -1
	s.state.Status = StatusIdle
	s.state.Encouragement = ""
	s.startedAt = s.now()
	if s.observer != nil {
		s.observer.ProblemServed(p)
	}
}

// StartChallenge builds a challenge set of count problems of genre g and
// serves its first problem. A running challenge is replaced.
func (s *Session) StartChallenge(count int, g problem.Genre) ([]problem.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.engine.BuildChallengeSet(count, g, s.ext)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, errors.New("empty challenge set")
	}

	s.state.Genre = g
	s.state.Challenge = &Challenge{Problems: set}
	s.present(set[0])

	out := make([]problem.Problem, len(set))
	for i, p := range set {
		out[i] = p.Clone()
	}
	return out, nil
}

// CheckResult is the outcome of one answer check.
type CheckResult struct {
	Correct       bool   `json:"correct"`
	Points        int    `json:"points"`
	Score         int    `json:"score"`
	Streak        int    `json:"streak"`
	Encouragement string `json:"encouragement,omitempty"`
	// Label is the history label of an awarded answer.
	Label string `json:"label,omitempty"`
}

// Check grades answer against the current problem. A correct answer
// awards max(points, MinPoints) and extends the streak; a wrong one resets
// the streak and adds the problem to the review list once. Hints cost
// nothing. Recording failures are logged, never returned.
func (s *Session) Check(ctx context.Context, answer string) (CheckResult, error) {
	s.mu.Lock()
	if s.state.Current == nil {
		s.mu.Unlock()
		return CheckResult{}, ErrNoProblem
	}
	if s.state.Status == StatusCorrect {
		s.mu.Unlock()
		return CheckResult{}, ErrAlreadySolved
	}

	p := *s.state.Current
	correct := problem.IsCorrect(p, answer)
	st := &s.state
	st.Attempts++

	var res CheckResult
	if correct {
		pts := max(p.Points(), MinPoints)
		label := QuestComplete
		if st.Challenge != nil {
			label = st.Challenge.Label()
		}
		st.Status = StatusCorrect
		st.Correct++
		st.Score += pts
		st.Streak++
		st.Encouragement = ""
		st.History = append([]HistoryItem{{ID: uuid.NewString(), Points: pts, Label: label}}, st.History...)
		res = CheckResult{Correct: true, Points: pts, Label: label}
	} else {
		st.Status = StatusIncorrect
		st.Streak = 0
		st.Encouragement = Encouragements[s.rand.IntN(len(Encouragements))]
		if !st.hasWrong(p.ID) {
			st.WrongAnswers = append(st.WrongAnswers, WrongAnswer{
				ID:        uuid.NewString(),
				Problem:   p.Clone(),
				Given:     answer,
				Timestamp: s.now(),
			})
		}
		res = CheckResult{Encouragement: st.Encouragement}
	}
	res.Score = st.Score
	res.Streak = st.Streak
	hintsUsed := st.HintIndex + 1
	duration := s.now().Sub(s.startedAt)
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.AnswerChecked(p, correct)
	}
	s.record(ctx, p, answer, res, hintsUsed, duration)
	return res, nil
}

func (s *Session) record(ctx context.Context, p problem.Problem, answer string, res CheckResult, hintsUsed int, d time.Duration) {
	if s.recorder == nil {
		return
	}
	fail := func(what string, err error) {
		s.logger.Warn("failed to record "+what,
			zap.String("session_id", s.id),
			zap.String("problem_id", p.ID),
			zap.Error(err))
	}

	err := s.recorder.AppendAttempt(ctx, store.AttemptData{
		SessionID:  s.id,
		ProblemID:  p.ID,
		Genre:      p.Genre,
		Tier:       p.Tier,
		Source:     p.Source,
		Answer:     answer,
		Correct:    res.Correct,
		HintsUsed:  hintsUsed,
		DurationMs: d.Milliseconds(),
	})
	if err != nil {
		fail("attempt", err)
	}

	if res.Correct {
		err = s.recorder.AppendResult(ctx, store.ResultData{
			SessionID: s.id,
			ProblemID: p.ID,
			Genre:     p.Genre,
			Tier:      p.Tier,
			Points:    res.Points,
		})
		if err != nil {
			fail("result", err)
		}
		return
	}

	err = s.recorder.AppendWrongAnswer(ctx, store.WrongAnswerData{
		SessionID: s.id,
		ProblemID: p.ID,
		Genre:     p.Genre,
		Tier:      p.Tier,
		Text:      p.Text,
		Given:     answer,
		Expected:  p.Answer,
	})
	if err != nil {
		fail("wrong answer", err)
	}
}

// RequestHint reveals the next hint of the current problem and returns its
// index and text. At the last hint it keeps returning the last hint.
func (s *Session) RequestHint() (int, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current == nil {
		return -1, "", ErrNoProblem
	}
	p := *s.state.Current
	next := problem.NextHint(p, s.state.HintIndex)
	if next != s.state.HintIndex && s.observer != nil {
		s.observer.HintRevealed(p)
	}
	s.state.HintIndex = next
	return next, problem.Hint(p, next), nil
}

// Advance moves to the next challenge problem. It reports true once the
// challenge is complete; the last problem stays current.
func (s *Session) Advance() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.state.Challenge
	if c == nil {
		return false, ErrNotInChallenge
	}
	if c.Index < len(c.Problems)-1 {
		c.Index++
		s.present(c.Problems[c.Index])
		return false, nil
	}
	c.Complete = true
	return true, nil
}

// Retry removes the wrong answer with the given id from the review list and
// makes its problem current. Not available during a challenge.
func (s *Session) Retry(wrongID string) (problem.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Challenge != nil {
		return problem.Problem{}, ErrChallengeActive
	}
	i := slices.IndexFunc(s.state.WrongAnswers, func(w WrongAnswer) bool { return w.ID == wrongID })
	if i < 0 {
		return problem.Problem{}, ErrWrongAnswerNotFound
	}
	p := s.state.WrongAnswers[i].Problem
	s.state.WrongAnswers = slices.Delete(s.state.WrongAnswers, i, i+1)
	s.present(p)
	return p.Clone(), nil
}

// ExitChallenge leaves challenge mode, clears the challenge score and
// history, and serves a fresh problem for the selected genre and tier.
func (s *Session) ExitChallenge() (problem.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Challenge == nil {
		return problem.Problem{}, ErrNotInChallenge
	}
	s.state.Challenge = nil
	s.state.Score = 0
	s.state.History = nil
	return s.nextLocked(s.state.Genre, s.state.Tier)
}
