// Package engine is the boundary the rest of the application calls: pick
// one problem for a genre and tier, or build a graded challenge set.
package engine

import (
	"fmt"
	"math"

	"github.com/abhisek/mathstudio/internal/catalog"
	"github.com/abhisek/mathstudio/internal/problem"
	"github.com/abhisek/mathstudio/internal/problemgen"
)

const (
	// DefaultExtensionRatio is the probability an extension candidate is
	// served when one exists for the requested genre and tier.
	DefaultExtensionRatio = 0.3

	// SimultaneousRatio is the probability a Hard or Expert equation request
	// is served by the simultaneous-equations generator.
	SimultaneousRatio = 0.5
)

// TierShare is one step of the challenge-set ramp.
type TierShare struct {
	Tier  problem.Tier
	Ratio float64
}

// ChallengeDistribution is the tier composition of a challenge set, in
// serving order.
var ChallengeDistribution = []TierShare{
	{problem.TierEasy, 0.4},
	{problem.TierNormal, 0.3},
	{problem.TierHard, 0.2},
	{problem.TierExpert, 0.1},
}

// ExtensionSource supplies extra problems beyond the catalogue and
// generators, e.g. approved problems loaded from the store.
type ExtensionSource interface {
	// Candidates returns the extension problems eligible for genre and tier.
	Candidates(g problem.Genre, t problem.Tier) []problem.Problem
}

// Extension configures probabilistic injection of extension problems.
// A nil *Extension disables injection.
type Extension struct {
	Source ExtensionSource
	// Ratio in [0, 1]. Zero means DefaultExtensionRatio.
	Ratio float64
}

func (e *Extension) ratio() float64 {
	if e.Ratio <= 0 {
		return DefaultExtensionRatio
	}
	return math.Min(e.Ratio, 1)
}

// Engine selects and generates problems. It holds no state besides its
// random source; give it a problemgen.LockedRand to share it across
// goroutines.
type Engine struct {
	rand problemgen.Rand
}

// New returns an Engine drawing from r.
func New(r problemgen.Rand) *Engine {
	return &Engine{rand: r}
}

// GetProblem returns one problem of genre g and tier t. Catalogue genres
// are sampled from the bank, generated genres are synthesized. When ext has
// candidates for (g, t), one of them is served with probability ext.Ratio.
func (e *Engine) GetProblem(g problem.Genre, t problem.Tier, ext *Extension) (problem.Problem, error) {
	if err := problem.CheckGenre(g); err != nil {
		return problem.Problem{}, err
	}
	if err := problem.CheckTier(t); err != nil {
		return problem.Problem{}, err
	}
	return e.getProblem(g, t, ext)
}

func (e *Engine) getProblem(g problem.Genre, t problem.Tier, ext *Extension) (problem.Problem, error) {
	if ext != nil && ext.Source != nil {
		if candidates := ext.Source.Candidates(g, t); len(candidates) > 0 && e.rand.Float64() < ext.ratio() {
			return candidates[e.rand.IntN(len(candidates))].Clone(), nil
		}
	}

	if catalog.Has(g) {
		return catalog.Sample(e.rand, g, t)
	}

	if g == problem.GenreLinearEquation && t >= problem.TierHard && e.rand.Float64() < SimultaneousRatio {
		return problemgen.Simultaneous(e.rand, t), nil
	}

	gen, ok := problemgen.For(g)
	if !ok {
		return problem.Problem{}, fmt.Errorf("no source for genre %q", g)
	}
	return gen(e.rand, t), nil
}

// BuildChallengeSet returns up to count problems of genre g in increasing
// tier order. Each tier gets max(1, round(count × ratio)) problems until
// count is reached; the result is never longer than count. Rounding can
// leave it one or two short of count for some sizes (11 yields 10), and the
// ramp is kept as is rather than padded.
func (e *Engine) BuildChallengeSet(count int, g problem.Genre, ext *Extension) ([]problem.Problem, error) {
	if err := problem.CheckCount(count); err != nil {
		return nil, err
	}
	if err := problem.CheckGenre(g); err != nil {
		return nil, err
	}

	set := make([]problem.Problem, 0, count)
	for _, share := range ChallengeDistribution {
		n := TierCount(count, share.Ratio)
		for i := 0; i < n && len(set) < count; i++ {
			p, err := e.getProblem(g, share.Tier, ext)
			if err != nil {
				return nil, err
			}
			set = append(set, p)
		}
	}
	if len(set) > count {
		set = set[:count]
	}
	return set, nil
}

// TierCount is the number of problems a tier contributes to a set of count.
func TierCount(count int, ratio float64) int {
	return max(1, int(math.Round(float64(count)*ratio)))
}
