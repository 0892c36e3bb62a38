package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/abhisek/mathstudio/internal/problem"
)

// ExtensionIDPrefix prefixes the IDs of stored problems.
const ExtensionIDPrefix = "db-"

var problemColumns = []string{
	"id", "genre", "tier", "unit", "text", "answer", "variants", "hints",
	"chips", "created_by", "approved", "created_at", "approved_at",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		_, err := problem.ParseGenre(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("tier", func(fl validator.FieldLevel) bool {
		_, err := problem.ParseTier(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks the submission's fields.
func (in NewProblemInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &problem.InputError{Field: fe.Field(), Value: fmt.Sprint(fe.Value())}
		}
		return err
	}
	return nil
}

// Problem converts the submission to an extension Problem with the given ID.
func (in NewProblemInput) Problem(id string) (problem.Problem, error) {
	g, err := problem.ParseGenre(in.Genre)
	if err != nil {
		return problem.Problem{}, err
	}
	t, err := problem.ParseTier(in.Tier)
	if err != nil {
		return problem.Problem{}, err
	}
	unit := in.Unit
	if unit == "" {
		unit = g.DisplayName()
	}
	return problem.Problem{
		ID:       id,
		Genre:    g,
		Tier:     t,
		Unit:     unit,
		Text:     in.Text,
		Answer:   in.Answer,
		Variants: in.Variants,
		Hints:    in.Hints,
		Chips:    in.Chips,
		Source:   problem.SourceExtension,
	}, nil
}

// InputFromProblem builds a submission from a drafted Problem.
func InputFromProblem(p problem.Problem, createdBy string) NewProblemInput {
	return NewProblemInput{
		Genre:     string(p.Genre),
		Tier:      p.Tier.String(),
		Unit:      p.Unit,
		Text:      p.Text,
		Answer:    p.Answer,
		Variants:  p.Variants,
		Hints:     p.Hints,
		Chips:     p.Chips,
		CreatedBy: createdBy,
	}
}

// problemRepo implements ProblemRepo.
type problemRepo struct {
	s *Store
}

func (r *problemRepo) AddProblem(ctx context.Context, in NewProblemInput) (*ProblemRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p, err := in.Problem(ExtensionIDPrefix + uuid.NewString())
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, &problem.InputError{Field: "problem", Value: err.Error()}
	}

	variants, hints, chips, err := encodeLists(p)
	if err != nil {
		return nil, err
	}
	now := r.s.now().UTC()
	_, err = r.s.exec(ctx, builder().Insert(tableProblems).
		Columns(problemColumns...).
		Values(p.ID, string(p.Genre), int(p.Tier), p.Unit, p.Text, p.Answer,
			variants, hints, chips, in.CreatedBy, 0, millis(now), nil))
	if err != nil {
		return nil, fmt.Errorf("save problem: %w", err)
	}

	return &ProblemRecord{
		ID:        p.ID,
		Problem:   p,
		CreatedBy: in.CreatedBy,
		CreatedAt: fromMillis(millis(now)),
	}, nil
}

func (r *problemRepo) GetProblem(ctx context.Context, id string) (*ProblemRecord, error) {
	q := builder().Select(problemColumns...).
		From(entsql.Table(tableProblems)).
		Where(entsql.EQ("id", id))
	rec, err := scanProblem(r.s.queryRow(ctx, q))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("problem %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query problem: %w", err)
	}
	return rec, nil
}

func (r *problemRepo) ApproveProblem(ctx context.Context, id string) error {
	res, err := r.s.exec(ctx, builder().Update(tableProblems).
		Set("approved", 1).
		Set("approved_at", millis(r.s.now())).
		Where(entsql.EQ("id", id)))
	if err != nil {
		return fmt.Errorf("approve problem: %w", err)
	}
	return requireAffected(res, id)
}

func (r *problemRepo) DeleteProblem(ctx context.Context, id string) error {
	res, err := r.s.exec(ctx, builder().Delete(tableProblems).Where(entsql.EQ("id", id)))
	if err != nil {
		return fmt.Errorf("delete problem: %w", err)
	}
	return requireAffected(res, id)
}

func (r *problemRepo) ListProblems(ctx context.Context, f ProblemFilter) ([]ProblemRecord, error) {
	q := builder().Select(problemColumns...).
		From(entsql.Table(tableProblems)).
		OrderBy(entsql.Desc("created_at"), entsql.Desc("id"))
	if f.CreatedBy != "" {
		q.Where(entsql.EQ("created_by", f.CreatedBy))
	}
	if f.Approved != nil {
		q.Where(entsql.EQ("approved", boolInt(*f.Approved)))
	}
	if f.Genre != "" {
		q.Where(entsql.EQ("genre", string(f.Genre)))
	}
	if f.Tier != nil {
		q.Where(entsql.EQ("tier", int(*f.Tier)))
	}
	paginate(q, f.QueryOpts)

	rows, err := r.s.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	defer rows.Close()

	var out []ProblemRecord
	for rows.Next() {
		rec, err := scanProblem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan problem: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *problemRepo) ApprovedProblems(ctx context.Context, g problem.Genre, t *problem.Tier) ([]problem.Problem, error) {
	approved := true
	recs, err := r.ListProblems(ctx, ProblemFilter{Approved: &approved, Genre: g, Tier: t})
	if err != nil {
		return nil, err
	}
	out := make([]problem.Problem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Problem)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProblem(row rowScanner) (*ProblemRecord, error) {
	var (
		rec                    ProblemRecord
		genre                  string
		tier                   int
		variants, hints, chips string
		approved               int
		createdAt              int64
		approvedAt             sql.NullInt64
	)
	p := &rec.Problem
	err := row.Scan(&rec.ID, &genre, &tier, &p.Unit, &p.Text, &p.Answer,
		&variants, &hints, &chips, &rec.CreatedBy, &approved, &createdAt, &approvedAt)
	if err != nil {
		return nil, err
	}
	p.ID = rec.ID
	p.Genre = problem.Genre(genre)
	p.Tier = problem.Tier(tier)
	p.Source = problem.SourceExtension
	for _, f := range []struct {
		raw string
		dst *[]string
	}{{variants, &p.Variants}, {hints, &p.Hints}, {chips, &p.Chips}} {
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return nil, fmt.Errorf("decode problem %s: %w", rec.ID, err)
		}
	}
	rec.Approved = approved != 0
	rec.CreatedAt = fromMillis(createdAt)
	if approvedAt.Valid {
		at := fromMillis(approvedAt.Int64)
		rec.ApprovedAt = &at
	}
	return &rec, nil
}

func encodeLists(p problem.Problem) (variants, hints, chips string, err error) {
	enc := func(xs []string) (string, error) {
		if xs == nil {
			xs = []string{}
		}
		b, err := json.Marshal(xs)
		return string(b), err
	}
	if variants, err = enc(p.Variants); err != nil {
		return
	}
	if hints, err = enc(p.Hints); err != nil {
		return
	}
	chips, err = enc(p.Chips)
	return
}

func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("problem %q: %w", id, ErrNotFound)
	}
	return nil
}
