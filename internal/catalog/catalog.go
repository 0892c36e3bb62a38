// Package catalog holds the hand-authored problem banks: direct proportion
// (with the inverse-proportion and applied word problems that ship with it),
// plane geometry, and geometric transforms.
package catalog

import (
	"fmt"
	"slices"

	"github.com/abhisek/mathstudio/internal/problem"
)

// Rand is the subset of a random source Sample needs.
type Rand interface {
	IntN(n int) int
}

// catalog holds the banks with precomputed indices.
type catalog struct {
	problems []problem.Problem
	byGenre  map[problem.Genre]map[problem.Tier][]problem.Problem
	byID     map[string]*problem.Problem
}

// c is the package-level catalog singleton, set by init().
var c *catalog

func init() {
	var all []problem.Problem
	all = append(all, proportionProblems...)
	all = append(all, planeGeometryProblems...)
	all = append(all, transformProblems...)

	if err := validateCatalog(all); err != nil {
		panic(err)
	}
	c = buildCatalog(all)
}

func buildCatalog(problems []problem.Problem) *catalog {
	cat := &catalog{
		problems: problems,
		byGenre:  make(map[problem.Genre]map[problem.Tier][]problem.Problem),
		byID:     make(map[string]*problem.Problem, len(problems)),
	}
	for i := range cat.problems {
		p := &cat.problems[i]
		p.Source = problem.SourceCatalog
		cat.byID[p.ID] = p

		tiers, ok := cat.byGenre[p.Genre]
		if !ok {
			tiers = make(map[problem.Tier][]problem.Problem)
			cat.byGenre[p.Genre] = tiers
		}
		tiers[p.Tier] = append(tiers[p.Tier], *p)
	}
	return cat
}

// Genres returns the catalogue-backed genres in menu order.
func Genres() []problem.Genre {
	var out []problem.Genre
	for _, g := range problem.AllGenres() {
		if _, ok := c.byGenre[g]; ok {
			out = append(out, g)
		}
	}
	return out
}

// Has reports whether g is served from the catalogue.
func Has(g problem.Genre) bool {
	_, ok := c.byGenre[g]
	return ok
}

// All returns every catalogue problem.
func All() []problem.Problem {
	return cloneAll(c.problems)
}

// ByTier returns the problems of one genre and tier, in authored order.
// The result may be empty: not every genre covers every tier.
func ByTier(g problem.Genre, t problem.Tier) []problem.Problem {
	return cloneAll(c.byGenre[g][t])
}

// ByID looks up a catalogue problem by its slug.
func ByID(id string) (problem.Problem, bool) {
	p, ok := c.byID[id]
	if !ok {
		return problem.Problem{}, false
	}
	return p.Clone(), true
}

// Sample picks a problem of genre g uniformly from tier t. When t has no
// entries it falls back to the nearest populated tier, looking at harder
// tiers first and then easier ones, so Expert requests on a bank without
// Expert content are served from Hard.
func Sample(r Rand, g problem.Genre, t problem.Tier) (problem.Problem, error) {
	if err := problem.CheckTier(t); err != nil {
		return problem.Problem{}, err
	}
	tiers, ok := c.byGenre[g]
	if !ok {
		return problem.Problem{}, &problem.InputError{Field: "genre", Value: string(g)}
	}
	for _, tier := range fallbackOrder(t) {
		if pool := tiers[tier]; len(pool) > 0 {
			return pool[r.IntN(len(pool))].Clone(), nil
		}
	}
	// validateCatalog guarantees a non-empty bank.
	panic(fmt.Sprintf("catalog: genre %q has no problems", g))
}

// fallbackOrder lists t, the harder tiers ascending, then the easier tiers
// descending.
func fallbackOrder(t problem.Tier) []problem.Tier {
	order := []problem.Tier{t}
	for tier := t + 1; tier <= problem.TierExpert; tier++ {
		order = append(order, tier)
	}
	for tier := t - 1; tier >= problem.TierEasy; tier-- {
		order = append(order, tier)
	}
	return order
}

func cloneAll(ps []problem.Problem) []problem.Problem {
	out := make([]problem.Problem, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return slices.Clip(out)
}
