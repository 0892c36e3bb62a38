package session

import "github.com/abhisek/mathstudio/internal/problem"

// Progress summarizes the session for display.
type Progress struct {
	Genre    problem.Genre `json:"genre"`
	Tier     problem.Tier  `json:"tier"`
	Score    int           `json:"score"`
	Streak   int           `json:"streak"`
	Attempts int           `json:"attempts"`
	Correct  int           `json:"correct"`
	Accuracy float64       `json:"accuracy"` // Correct / Attempts (computed)

	History      []HistoryItem `json:"history"`
	WrongAnswers []WrongAnswer `json:"wrong_answers"`

	InChallenge       bool `json:"in_challenge"`
	ChallengePosition int  `json:"challenge_position,omitempty"` // 1-based
	ChallengeTotal    int  `json:"challenge_total,omitempty"`
	ChallengeComplete bool `json:"challenge_complete,omitempty"`
}

// Progress returns a summary of the current state.
func (s *Session) Progress() Progress {
	st := s.State()

	p := Progress{
		Genre:        st.Genre,
		Tier:         st.Tier,
		Score:        st.Score,
		Streak:       st.Streak,
		Attempts:     st.Attempts,
		Correct:      st.Correct,
		History:      st.History,
		WrongAnswers: st.WrongAnswers,
	}
	if st.Attempts > 0 {
		p.Accuracy = float64(st.Correct) / float64(st.Attempts)
	}
	if c := st.Challenge; c != nil {
		p.InChallenge = true
		p.ChallengePosition = c.Index + 1
		p.ChallengeTotal = len(c.Problems)
		p.ChallengeComplete = c.Complete
	}
	return p
}
