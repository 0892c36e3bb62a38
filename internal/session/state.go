package session

import (
	"fmt"
	"time"

	"github.com/abhisek/mathstudio/internal/problem"
)

// Status is the outcome of the latest check on the current problem.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusCorrect   Status = "correct"
	StatusIncorrect Status = "incorrect"
)

// QuestComplete labels history items earned outside challenge mode.
const QuestComplete = "QUEST COMPLETE!"

// MinPoints is the floor applied to every award.
const MinPoints = 10

// HistoryItem is one awarded score entry, newest first in State.History.
type HistoryItem struct {
	ID     string `json:"id"`
	Points int    `json:"points"`
	Label  string `json:"label"`
}

// WrongAnswer is one entry of the review list.
type WrongAnswer struct {
	ID        string          `json:"id"`
	Problem   problem.Problem `json:"problem"`
	Given     string          `json:"given"`
	Timestamp time.Time       `json:"timestamp"`
}

// Challenge is a fixed, tier-ramped run of problems.
type Challenge struct {
	Problems []problem.Problem `json:"problems"`
	Index    int               `json:"index"`
	Complete bool              `json:"complete"`
}

// Label returns the 1-based position, e.g. "3/10".
func (c *Challenge) Label() string {
	return fmt.Sprintf("%d/%d", c.Index+1, len(c.Problems))
}

func (c *Challenge) current() *problem.Problem {
	if c.Index < 0 || c.Index >= len(c.Problems) {
		return nil
	}
	p := c.Problems[c.Index]
	return &p
}

// State is the learner-visible practice state.
type State struct {
	Genre problem.Genre `json:"genre"`
	Tier  problem.Tier  `json:"tier"`

	Current   *problem.Problem `json:"-"`
	HintIndex int              `json:"-"`
	Status    Status           `json:"-"`

	// Encouragement is set after a wrong answer and cleared on a correct one.
	Encouragement string `json:"-"`

	Score        int           `json:"score"`
	Streak       int           `json:"-"`
	Attempts     int           `json:"attempts"`
	Correct      int           `json:"correct"`
	History      []HistoryItem `json:"history"`
	WrongAnswers []WrongAnswer `json:"wrong_answers"`

	// Challenge is nil outside challenge mode.
	Challenge *Challenge `json:"challenge,omitempty"`
}

func newState() State {
	return State{
		Genre:     problem.GenreDirectProportion,
		Tier:      problem.TierNormal,
		HintIndex: -1,
		Status:    StatusIdle,
	}
}

func (st *State) hasWrong(problemID string) bool {
	for _, w := range st.WrongAnswers {
		if w.Problem.ID == problemID {
			return true
		}
	}
	return false
}
