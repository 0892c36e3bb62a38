package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathstudio/internal/problem"
)

// tickingClock advances one second per call so rows get distinct timestamps.
func tickingClock(s *Store) {
	base := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func sampleInput() NewProblemInput {
	return NewProblemInput{
		Genre:     "sector",
		Tier:      "normal",
		Text:      "半径 4cm、中心角 90° のおうぎ形の面積を求めなさい。",
		Answer:    "4π",
		Variants:  []string{"4pi"},
		Hints:     []string{"円全体の面積は 16π です。", "90/360 = 1/4"},
		Chips:     []string{"4", "π"},
		CreatedBy: "sato",
	}
}

func TestNewProblemInput_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NewProblemInput)
		field  string
	}{
		{"ok", func(*NewProblemInput) {}, ""},
		{"tier alias", func(in *NewProblemInput) { in.Tier = "advanced" }, ""},
		{"missing genre", func(in *NewProblemInput) { in.Genre = "" }, "Genre"},
		{"unknown genre", func(in *NewProblemInput) { in.Genre = "calculus" }, "Genre"},
		{"unknown tier", func(in *NewProblemInput) { in.Tier = "legendary" }, "Tier"},
		{"no text", func(in *NewProblemInput) { in.Text = "" }, "Text"},
		{"no answer", func(in *NewProblemInput) { in.Answer = "" }, "Answer"},
		{"no hints", func(in *NewProblemInput) { in.Hints = nil }, "Hints"},
		{"blank hint", func(in *NewProblemInput) { in.Hints = []string{""} }, "Hints[0]"},
		{"too many hints", func(in *NewProblemInput) { in.Hints = strings.Fields("a b c d e f g") }, "Hints"},
		{"blank variant", func(in *NewProblemInput) { in.Variants = []string{""} }, "Variants[0]"},
		{"no author", func(in *NewProblemInput) { in.CreatedBy = "" }, "CreatedBy"},
		{"long text", func(in *NewProblemInput) { in.Text = strings.Repeat("x", 501) }, "Text"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := sampleInput()
			tc.mutate(&in)
			err := in.Validate()
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, problem.ErrInvalidInput)
			var ie *problem.InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tc.field, ie.Field)
		})
	}
}

func TestNewProblemInput_Problem(t *testing.T) {
	in := sampleInput()
	in.Tier = "Advanced"
	p, err := in.Problem("db-x")
	require.NoError(t, err)
	assert.Equal(t, problem.GenreSector, p.Genre)
	assert.Equal(t, problem.TierHard, p.Tier)
	assert.Equal(t, problem.SourceExtension, p.Source)
	assert.Equal(t, problem.GenreSector.DisplayName(), p.Unit)
}

func TestInputFromProblem(t *testing.T) {
	p := problem.Problem{
		Genre: problem.GenreLinearFunction, Tier: problem.TierExpert, Unit: "一次関数",
		Text: "t", Answer: "y=2x+1", Hints: []string{"h"},
	}
	in := InputFromProblem(p, "llm:mock")
	assert.Equal(t, "linear", in.Genre)
	assert.Equal(t, "expert", in.Tier)
	assert.Equal(t, "llm:mock", in.CreatedBy)
	assert.NoError(t, in.Validate())
}

func TestAddProblem(t *testing.T) {
	s := openTestStore(t)
	tickingClock(s)
	repo := s.ProblemRepo()
	ctx := context.Background()

	rec, err := repo.AddProblem(ctx, sampleInput())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rec.ID, ExtensionIDPrefix))
	assert.Equal(t, rec.ID, rec.Problem.ID)
	assert.False(t, rec.Approved)
	assert.Nil(t, rec.ApprovedAt)

	got, err := repo.GetProblem(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "sato", got.CreatedBy)
	assert.Equal(t, problem.GenreSector, got.Problem.Genre)
	assert.Equal(t, problem.TierNormal, got.Problem.Tier)
	assert.Equal(t, []string{"4pi"}, got.Problem.Variants)
	assert.Equal(t, sampleInput().Hints, got.Problem.Hints)
	assert.Equal(t, problem.SourceExtension, got.Problem.Source)
	assert.Equal(t, rec.CreatedAt, got.CreatedAt)
	assert.True(t, problem.IsCorrect(got.Problem, "4 π"))
}

func TestAddProblem_Invalid(t *testing.T) {
	s := openTestStore(t)
	in := sampleInput()
	in.Genre = "nope"

	_, err := s.ProblemRepo().AddProblem(context.Background(), in)
	assert.ErrorIs(t, err, problem.ErrInvalidInput)
	assert.Equal(t, 0, countRows(t, s, tableProblems))
}

func TestAddProblem_NilListsStoredEmpty(t *testing.T) {
	s := openTestStore(t)
	in := sampleInput()
	in.Variants = nil
	in.Chips = nil

	rec, err := s.ProblemRepo().AddProblem(context.Background(), in)
	require.NoError(t, err)
	got, err := s.ProblemRepo().GetProblem(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Problem.Variants)
	assert.Empty(t, got.Problem.Chips)
}

func TestApproveAndDelete(t *testing.T) {
	s := openTestStore(t)
	tickingClock(s)
	repo := s.ProblemRepo()
	ctx := context.Background()

	rec, err := repo.AddProblem(ctx, sampleInput())
	require.NoError(t, err)

	require.NoError(t, repo.ApproveProblem(ctx, rec.ID))
	got, err := repo.GetProblem(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, got.Approved)
	require.NotNil(t, got.ApprovedAt)
	assert.True(t, got.ApprovedAt.After(got.CreatedAt))

	require.NoError(t, repo.DeleteProblem(ctx, rec.ID))
	_, err = repo.GetProblem(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMissingProblem(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProblemRepo()
	ctx := context.Background()

	_, err := repo.GetProblem(ctx, "db-missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.ApproveProblem(ctx, "db-missing"), ErrNotFound)
	assert.ErrorIs(t, repo.DeleteProblem(ctx, "db-missing"), ErrNotFound)
}

func TestListProblems(t *testing.T) {
	s := openTestStore(t)
	tickingClock(s)
	repo := s.ProblemRepo()
	ctx := context.Background()

	add := func(genre, tier, author string) string {
		in := sampleInput()
		in.Genre, in.Tier, in.CreatedBy = genre, tier, author
		rec, err := repo.AddProblem(ctx, in)
		require.NoError(t, err)
		return rec.ID
	}
	a := add("sector", "easy", "sato")
	b := add("sector", "hard", "suzuki")
	c := add("linear", "hard", "sato")
	require.NoError(t, repo.ApproveProblem(ctx, b))
	require.NoError(t, repo.ApproveProblem(ctx, c))

	ids := func(recs []ProblemRecord) []string {
		var out []string
		for _, r := range recs {
			out = append(out, r.ID)
		}
		return out
	}
	yes, no := true, false
	hard := problem.TierHard

	tests := []struct {
		name   string
		filter ProblemFilter
		want   []string
	}{
		{"all newest first", ProblemFilter{}, []string{c, b, a}},
		{"by author", ProblemFilter{CreatedBy: "sato"}, []string{c, a}},
		{"approved", ProblemFilter{Approved: &yes}, []string{c, b}},
		{"pending", ProblemFilter{Approved: &no}, []string{a}},
		{"by genre", ProblemFilter{Genre: problem.GenreSector}, []string{b, a}},
		{"by tier", ProblemFilter{Tier: &hard}, []string{c, b}},
		{"limit", ProblemFilter{QueryOpts: QueryOpts{Limit: 1}}, []string{c}},
		{"offset", ProblemFilter{QueryOpts: QueryOpts{Limit: 2, Offset: 1}}, []string{b, a}},
		{"offset only", ProblemFilter{QueryOpts: QueryOpts{Offset: 1}}, []string{b, a}},
		{"offset past end", ProblemFilter{QueryOpts: QueryOpts{Offset: 5}}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recs, err := repo.ListProblems(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(recs))
		})
	}

	approved, err := repo.ApprovedProblems(ctx, problem.GenreSector, nil)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, b, approved[0].ID)
	assert.Equal(t, problem.SourceExtension, approved[0].Source)

	all, err := repo.ApprovedProblems(ctx, "", &hard)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
