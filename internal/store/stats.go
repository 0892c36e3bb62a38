package store

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathstudio/internal/problem"
)

// recentWrongLimit bounds the wrong answers included in Stats.
const recentWrongLimit = 10

// GenreTierStats summarizes attempts for one genre and tier.
type GenreTierStats struct {
	Genre    problem.Genre `json:"genre"`
	Tier     problem.Tier  `json:"tier"`
	Attempts int           `json:"attempts"`
	Correct  int           `json:"correct"`
}

// Accuracy is Correct / Attempts, or 0 without attempts.
func (g GenreTierStats) Accuracy() float64 {
	if g.Attempts == 0 {
		return 0
	}
	return float64(g.Correct) / float64(g.Attempts)
}

// Stats summarizes the learner's history.
type Stats struct {
	ByGenreTier     []GenreTierStats    `json:"by_genre_tier"`
	Attempts        int                 `json:"attempts"`
	Correct         int                 `json:"correct"`
	TotalScore      int                 `json:"total_score"`
	RecentWrong     []WrongAnswerRecord `json:"recent_wrong"`
	PendingProblems int                 `json:"pending_problems"`
}

// Accuracy is the overall fraction of correct attempts.
func (s *Stats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

func (r *eventRepo) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{}

	q := builder().Select("genre", "tier", entsql.Count("*"), entsql.Sum("correct")).
		From(entsql.Table(tableAttempts)).
		GroupBy("genre", "tier").
		OrderBy("genre", "tier")
	rows, err := r.s.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query attempt stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			gt    GenreTierStats
			genre string
			tier  int
		)
		if err := rows.Scan(&genre, &tier, &gt.Attempts, &gt.Correct); err != nil {
			return nil, fmt.Errorf("scan attempt stats: %w", err)
		}
		gt.Genre = problem.Genre(genre)
		gt.Tier = problem.Tier(tier)
		st.Attempts += gt.Attempts
		st.Correct += gt.Correct
		st.ByGenreTier = append(st.ByGenreTier, gt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var score sql.NullInt64
	err = r.s.queryRow(ctx, builder().Select(entsql.Sum("points")).From(entsql.Table(tableResults))).Scan(&score)
	if err != nil {
		return nil, fmt.Errorf("query total score: %w", err)
	}
	st.TotalScore = int(score.Int64)

	err = r.s.queryRow(ctx, builder().Select(entsql.Count("*")).
		From(entsql.Table(tableProblems)).
		Where(entsql.EQ("approved", 0))).Scan(&st.PendingProblems)
	if err != nil {
		return nil, fmt.Errorf("query pending problems: %w", err)
	}

	st.RecentWrong, err = r.RecentWrongAnswers(ctx, recentWrongLimit)
	if err != nil {
		return nil, err
	}
	return st, nil
}
