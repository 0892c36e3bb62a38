package problemgen

import (
	"fmt"

	"github.com/abhisek/mathstudio/internal/problem"
)

// Generator synthesizes one problem of the given tier. Parameters are drawn
// from r; answers are derived from them exactly, never solved numerically.
// Generators panic on an invalid tier: callers validate input first.
type Generator func(r Rand, tier problem.Tier) problem.Problem

var generators = map[problem.Genre]Generator{
	problem.GenreInverseProportion: InverseProportion,
	problem.GenreLinearEquation:    LinearEquation,
	problem.GenreLinearFunction:    LinearFunction,
	problem.GenreSimultaneous:      Simultaneous,
	problem.GenreSector:            CircularSector,
}

// For returns the generator backing g, if g is a generated genre.
func For(g problem.Genre) (Generator, bool) {
	gen, ok := generators[g]
	return gen, ok
}

// Genres lists the generated genres.
func Genres() []problem.Genre {
	var out []problem.Genre
	for _, g := range problem.AllGenres() {
		if _, ok := generators[g]; ok {
			out = append(out, g)
		}
	}
	return out
}

func mustTier(t problem.Tier) {
	if !t.Valid() {
		panic(fmt.Sprintf("problemgen: invalid tier %d", int(t)))
	}
}

// finish stamps the fields every generated problem shares. The id is drawn
// last so scripted sources only need to cover the parameters.
func finish(r Rand, prefix string, p problem.Problem) problem.Problem {
	p.Source = problem.SourceGenerated
	p.ID = newID(r, prefix)
	return p
}
