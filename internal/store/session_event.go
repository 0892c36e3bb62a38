package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/mathstudio/internal/problem"
)

// eventRepo implements EventRepo backed by the builder and the global
// sequence counter.
type eventRepo struct {
	s *Store
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptData) error {
	seqNum, err := r.s.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.s.exec(ctx, builder().Insert(tableAttempts).
		Columns("id", "sequence", "session_id", "problem_id", "genre", "tier", "source",
			"answer", "correct", "hints_used", "duration_ms", "created_at").
		Values(uuid.NewString(), seqNum, data.SessionID, data.ProblemID, string(data.Genre),
			int(data.Tier), string(data.Source), data.Answer, boolInt(data.Correct),
			data.HintsUsed, data.DurationMs, millis(r.s.now())))
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendResult(ctx context.Context, data ResultData) error {
	seqNum, err := r.s.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.s.exec(ctx, builder().Insert(tableResults).
		Columns("id", "sequence", "session_id", "problem_id", "genre", "tier", "points", "created_at").
		Values(uuid.NewString(), seqNum, data.SessionID, data.ProblemID, string(data.Genre),
			int(data.Tier), data.Points, millis(r.s.now())))
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendWrongAnswer(ctx context.Context, data WrongAnswerData) error {
	seqNum, err := r.s.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.s.exec(ctx, builder().Insert(tableWrongAnswers).
		Columns("id", "sequence", "session_id", "problem_id", "genre", "tier",
			"text", "given", "expected", "created_at").
		Values(uuid.NewString(), seqNum, data.SessionID, data.ProblemID, string(data.Genre),
			int(data.Tier), data.Text, data.Given, data.Expected, millis(r.s.now())))
	if err != nil {
		return fmt.Errorf("save wrong answer: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentWrongAnswers(ctx context.Context, limit int) ([]WrongAnswerRecord, error) {
	q := builder().Select("id", "sequence", "created_at", "session_id", "problem_id",
		"genre", "tier", "text", "given", "expected").
		From(entsql.Table(tableWrongAnswers)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		q.Limit(limit)
	}

	rows, err := r.s.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query wrong answers: %w", err)
	}
	defer rows.Close()

	var out []WrongAnswerRecord
	for rows.Next() {
		var (
			rec   WrongAnswerRecord
			ts    int64
			genre string
			tier  int
		)
		err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.SessionID, &rec.ProblemID,
			&genre, &tier, &rec.Text, &rec.Given, &rec.Expected)
		if err != nil {
			return nil, fmt.Errorf("scan wrong answer: %w", err)
		}
		rec.Timestamp = fromMillis(ts)
		rec.Genre = problem.Genre(genre)
		rec.Tier = problem.Tier(tier)
		out = append(out, rec)
	}
	return out, rows.Err()
}
