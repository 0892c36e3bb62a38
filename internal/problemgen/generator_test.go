package problemgen

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathstudio/internal/problem"
)

func TestGenerators_Exactness(t *testing.T) {
	validators := DefaultValidators()
	for _, genre := range Genres() {
		gen, ok := For(genre)
		require.True(t, ok, genre)
		for _, tier := range problem.AllTiers() {
			t.Run(string(genre)+"/"+tier.String(), func(t *testing.T) {
				r := NewRand(uint64(tier) + 1)
				for i := 0; i < 1000; i++ {
					p := gen(r, tier)
					if verr := RunValidators(&p, validators); verr != nil {
						t.Fatalf("iteration %d: %v\n%+v", i, verr, p)
					}
					if p.Genre != genre {
						t.Fatalf("genre = %q, want %q", p.Genre, genre)
					}
					if p.Tier != tier {
						t.Fatalf("tier = %v, want %v", p.Tier, tier)
					}
					if !problem.IsCorrect(p, p.Answer) {
						t.Fatalf("canonical answer rejected: %+v", p)
					}
					for _, v := range p.Variants {
						if !problem.IsCorrect(p, v) {
							t.Fatalf("variant %q rejected", v)
						}
					}
					if p.Source != problem.SourceGenerated || p.ID == "" {
						t.Fatalf("missing source or id: %+v", p)
					}
				}
			})
		}
	}
}

func TestFor_UnknownGenre(t *testing.T) {
	_, ok := For(problem.GenreDirectProportion)
	assert.False(t, ok)
	_, ok = For(problem.GenrePlaneGeometry)
	assert.False(t, ok)
}

func TestGenerators_PanicOnInvalidTier(t *testing.T) {
	for _, genre := range Genres() {
		gen, _ := For(genre)
		assert.Panics(t, func() { gen(NewRand(1), problem.Tier(4)) }, genre)
	}
}

func TestLinearEquation_EasyScripted(t *testing.T) {
	fixedClock(t)
	// a = 2 + 1, x = 1 + 6
	p := LinearEquation(&scriptedRand{ints: []int{1, 6}}, problem.TierEasy)

	assert.Contains(t, p.Text, "3x = 21")
	assert.Equal(t, "7", p.Answer)
	assert.Equal(t, []string{"x=7", "x = 7"}, p.Variants)
	assert.Equal(t, 3, p.Params["a"])
	assert.Equal(t, 7, p.Params["x"])
	assert.Equal(t, 100, p.Points())
	assert.True(t, strings.HasPrefix(p.ID, "eq-1700000000000-"))
}

func TestLinearEquation_Shapes(t *testing.T) {
	r := NewRand(5)
	for i := 0; i < 200; i++ {
		easy := LinearEquation(r, problem.TierEasy)
		assert.Equal(t, 0, easy.Params["b"])
		assert.Greater(t, easy.Params["x"], 0)

		normal := LinearEquation(r, problem.TierNormal)
		assert.Greater(t, normal.Params["b"], 0)
		assert.Greater(t, normal.Params["x"], 0)

		expert := LinearEquation(r, problem.TierExpert)
		assert.Greater(t, expert.Params["a"], expert.Params["d"])
		assert.NotContains(t, expert.Text, "1x")
	}
}

func TestLinearEquation_HardAllowsNegatives(t *testing.T) {
	r := NewRand(11)
	var negX, negB bool
	for i := 0; i < 500; i++ {
		p := LinearEquation(r, problem.TierHard)
		negX = negX || p.Params["x"] < 0
		negB = negB || p.Params["b"] < 0
	}
	assert.True(t, negX, "expected some negative solutions")
	assert.True(t, negB, "expected some negative offsets")
}

func TestSimultaneous_Scenario(t *testing.T) {
	p := simultaneousFrom(NewRand(3), problem.TierHard, 2, -3, 1, 2)

	assert.Equal(t, "x=2,y=-3", p.Answer)
	assert.Contains(t, p.Text, "x + 2y = -4")
	a, b, d, e := p.Params["a"], p.Params["b"], p.Params["d"], p.Params["e"]
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.NotEqual(t, a*e, b*d)
	assert.Equal(t, p.Params["f"], d*2+e*-3)
	assert.True(t, problem.IsCorrect(p, "(2, -3)"))
	assert.True(t, problem.IsCorrect(p, "x = 2, y = −3"))
}

func TestSimultaneous_ResamplesParallelRow(t *testing.T) {
	// Row (1, 2) with positive Easy ranges. First draw d=1, e=2 is parallel;
	// second draw d=1, e=1 is accepted.
	r := &scriptedRand{ints: []int{0, 1, 0, 0}}
	p := simultaneousFrom(r, problem.TierEasy, 1, 1, 1, 2)
	assert.Equal(t, 1, p.Params["d"])
	assert.Equal(t, 1, p.Params["e"])
}

func TestSimultaneous_PanicsWhenRowsExhausted(t *testing.T) {
	// A scripted source that always yields the parallel row d=1, e=2.
	ints := make([]int, 0, 2*maxRowAttempts)
	for i := 0; i < maxRowAttempts; i++ {
		ints = append(ints, 0, 1)
	}
	assert.Panics(t, func() {
		simultaneousFrom(&scriptedRand{ints: ints}, problem.TierEasy, 1, 1, 1, 2)
	})
}

func TestSimultaneous_DisplayCoefficients(t *testing.T) {
	r := NewRand(17)
	for i := 0; i < 300; i++ {
		p := Simultaneous(r, problem.TierExpert)
		for _, line := range strings.Split(p.Text, "\n")[1:] {
			assert.NotContains(t, line, " 1x")
			assert.NotContains(t, line, " 1y")
			assert.NotContains(t, line, "-1x")
			assert.NotContains(t, line, "-1y")
		}
	}
}

func TestCircularSector_Scenario(t *testing.T) {
	p := sectorFrom(NewRand(1), problem.TierEasy, 6, 90, sectorArea)

	assert.Equal(t, "9π", p.Answer)
	assert.Contains(t, p.Hints[0], "1/4")
	assert.True(t, problem.IsCorrect(p, "9pi"))
	assert.True(t, problem.IsCorrect(p, "9πcm²"))
	assert.Equal(t, problem.GenreSector, p.Genre)
}

func TestCircularSector_Arc(t *testing.T) {
	tests := []struct {
		r, angle int
		want     string
	}{
		{6, 90, "3π"},
		{4, 180, "4π"},
		{5, 72, "2π"},
		{9, 40, "2π"},
		{5, 45, "5/4π"},
		{1, 180, "π"},
	}
	for _, tc := range tests {
		p := sectorFrom(NewRand(1), problem.TierNormal, tc.r, tc.angle, sectorArc)
		assert.Equal(t, tc.want, p.Answer, "r=%d angle=%d", tc.r, tc.angle)
	}
}

func TestCircularSector_EasyAngles(t *testing.T) {
	r := NewRand(23)
	for i := 0; i < 200; i++ {
		p := CircularSector(r, problem.TierEasy)
		angle := p.Params["angle"]
		assert.True(t, angle == 90 || angle == 180, "angle %d", angle)
	}
}

func TestInverseProportion_RangeOrdering(t *testing.T) {
	r := NewRand(31)
	var sawNegative bool
	for i := 0; i < 500; i++ {
		p := InverseProportion(r, problem.TierExpert)
		lo, hi := p.Params["lo"], p.Params["hi"]
		require.LessOrEqual(t, lo, hi)
		assert.True(t, strings.HasPrefix(p.Answer, strconv.Itoa(lo)+"≦y≦"))
		if p.Params["a"] < 0 {
			sawNegative = true
			assert.Contains(t, p.Hints[2], "増える")
		}
	}
	assert.True(t, sawNegative)
}

func TestInverseProportion_Easy(t *testing.T) {
	// a = inverseEasyConstants[2] = 12, x = properDivisors(12)[1] = 3
	p := InverseProportion(&scriptedRand{ints: []int{2, 1}}, problem.TierEasy)
	assert.Contains(t, p.Text, "y = 12/x")
	assert.Contains(t, p.Text, "x = 3")
	assert.Equal(t, "4", p.Answer)
	assert.Equal(t, "反比例", p.Unit)
}

func TestLinearFunction_SlopeNonZero(t *testing.T) {
	r := NewRand(41)
	for _, tier := range problem.AllTiers() {
		for i := 0; i < 300; i++ {
			p := LinearFunction(r, tier)
			assert.NotZero(t, p.Params["m"])
			if tier >= problem.TierHard {
				assert.NotEqual(t, p.Params["x1"], p.Params["x2"])
			}
		}
	}
}
