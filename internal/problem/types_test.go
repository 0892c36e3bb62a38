package problem

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierPoints(t *testing.T) {
	want := map[Tier]int{TierEasy: 100, TierNormal: 200, TierHard: 300, TierExpert: 400}
	for _, tier := range AllTiers() {
		assert.Equal(t, want[tier], tier.Points(), tier.String())
	}
	assert.Panics(t, func() { Tier(7).Points() })
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{"easy", TierEasy, false},
		{"Introductory", TierEasy, false},
		{"normal", TierNormal, false},
		{"standard", TierNormal, false},
		{"HARD", TierHard, false},
		{"advanced", TierHard, false},
		{" expert ", TierExpert, false},
		{"master", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTier(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				var ie *InputError
				require.True(t, errors.As(err, &ie))
				assert.Equal(t, "tier", ie.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseGenre(t *testing.T) {
	for _, g := range AllGenres() {
		got, err := ParseGenre(string(g))
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}
	_, err := ParseGenre("calculus")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckCount(t *testing.T) {
	assert.NoError(t, CheckCount(1))
	assert.NoError(t, CheckCount(50))
	assert.ErrorIs(t, CheckCount(0), ErrInvalidInput)
	assert.ErrorIs(t, CheckCount(51), ErrInvalidInput)
	assert.ErrorIs(t, CheckTier(Tier(-1)), ErrInvalidInput)
	assert.ErrorIs(t, CheckGenre("nope"), ErrInvalidInput)
}

func TestProblemClone(t *testing.T) {
	p := Problem{
		ID:       "p1",
		Variants: []string{"a"},
		Hints:    []string{"h1"},
		Chips:    []string{"x"},
		Params:   map[string]int{"a": 3},
	}
	c := p.Clone()
	c.Variants[0] = "changed"
	c.Hints[0] = "changed"
	c.Params["a"] = 9

	assert.Equal(t, "a", p.Variants[0])
	assert.Equal(t, "h1", p.Hints[0])
	assert.Equal(t, 3, p.Params["a"])
}

func TestProblemJSON(t *testing.T) {
	p := Problem{
		ID:     "prop-easy-01",
		Genre:  GenreDirectProportion,
		Tier:   TierHard,
		Text:   "t",
		Answer: "12",
		Hints:  []string{"h"},
	}
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "hard", raw["tier"])
	assert.Equal(t, "proportional", raw["genre"])
	assert.EqualValues(t, 300, raw["points"])

	var back Problem
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, p.Tier, back.Tier)
	assert.Equal(t, p.Genre, back.Genre)
	assert.Equal(t, p.Hints, back.Hints)
}

func TestProblemValidate(t *testing.T) {
	good := Problem{
		ID:     "x",
		Genre:  GenreSector,
		Tier:   TierEasy,
		Text:   "text",
		Answer: "9π",
		Hints:  []string{"h"},
	}
	assert.NoError(t, good.Validate())

	bad := good
	bad.Hints = nil
	assert.ErrorContains(t, bad.Validate(), "hints are empty")

	bad = good
	bad.Answer = "  "
	assert.ErrorContains(t, bad.Validate(), "answer is empty")

	bad = good
	bad.Tier = Tier(9)
	assert.ErrorContains(t, bad.Validate(), "invalid tier")
}
