package problemgen

import (
	"fmt"

	"github.com/abhisek/mathstudio/internal/problem"
)

// maxRowAttempts bounds the resampling of the second coefficient row.
// Running out means the coefficient ranges are misconfigured.
const maxRowAttempts = 100

type simRanges struct {
	solution int  // x, y in [-solution, solution] (or [1, solution] when positive)
	coef     int  // |coefficient| in [1, coef]
	positive bool // solution and first-row coefficients positive
}

var simTierRanges = map[problem.Tier]simRanges{
	problem.TierEasy:   {solution: 5, coef: 3, positive: true},
	problem.TierNormal: {solution: 9, coef: 5, positive: true},
	problem.TierHard:   {solution: 5, coef: 5},
	problem.TierExpert: {solution: 9, coef: 7},
}

// Simultaneous generates a pair of linear equations in x and y with a
// unique integer solution. The solution is sampled first; the two rows are
// back-computed from it and checked to be non-parallel.
func Simultaneous(r Rand, tier problem.Tier) problem.Problem {
	mustTier(tier)
	rg := simTierRanges[tier]

	var x, y, a, b int
	if rg.positive {
		x = between(r, 1, rg.solution)
		y = between(r, 1, rg.solution)
		a = between(r, 1, rg.coef)
		b = between(r, 1, rg.coef)
	} else {
		x = between(r, -rg.solution, rg.solution)
		y = between(r, -rg.solution, rg.solution)
		a = signed(r, between(r, 1, rg.coef))
		b = signed(r, between(r, 1, rg.coef))
	}
	return simultaneousFrom(r, tier, x, y, a, b)
}

// simultaneousFrom builds the problem for a fixed solution and first row,
// drawing only the second row from r.
func simultaneousFrom(r Rand, tier problem.Tier, x, y, a, b int) problem.Problem {
	rg := simTierRanges[tier]

	var d, e int
	for attempt := 0; ; attempt++ {
		if attempt == maxRowAttempts {
			panic(fmt.Sprintf("problemgen: no non-parallel row for a=%d b=%d after %d attempts", a, b, maxRowAttempts))
		}
		if rg.positive {
			d = between(r, 1, rg.coef)
			e = between(r, 1, rg.coef)
		} else {
			d = signed(r, between(r, 1, rg.coef))
			e = signed(r, between(r, 1, rg.coef))
		}
		if a*e != b*d {
			break
		}
	}
	c := a*x + b*y
	f := d*x + e*y

	eq1 := fmt.Sprintf("%s%s = %d", term(a, "x"), nextTerm(b, "y"), c)
	eq2 := fmt.Sprintf("%s%s = %d", term(d, "x"), nextTerm(e, "y"), f)

	det := a*e - b*d
	rhs := c*e - b*f

	answer := fmt.Sprintf("x=%d,y=%d", x, y)
	p := problem.Problem{
		Genre:  problem.GenreSimultaneous,
		Tier:   tier,
		Unit:   "連立方程式",
		Text:   fmt.Sprintf("次の連立方程式を解きなさい。\n① %s\n② %s", eq1, eq2),
		Answer: answer,
		Variants: []string{
			fmt.Sprintf("x = %d, y = %d", x, y),
			fmt.Sprintf("(%d,%d)", x, y),
			fmt.Sprintf("(%d, %d)", x, y),
			fmt.Sprintf("x=%d、y=%d", x, y),
			fmt.Sprintf("y=%d,x=%d", y, x),
		},
		Hints: []string{
			fmt.Sprintf("①を %s 倍、②を %s 倍して、y の係数をそろえます。", paren(e), paren(b)),
			fmt.Sprintf("辺々を引くと y が消えて %s = %d になります。", term(det, "x"), rhs),
			fmt.Sprintf("x = %d ÷ %s = %d", rhs, paren(det), x),
			fmt.Sprintf("x = %d を①に代入して y を求めると y = %d", x, y),
		},
		Chips: chips(a, b, c, d, e, f, x, y, "x", "y", "=", "+", "-", ","),
		Params: map[string]int{
			"a": a, "b": b, "c": c, "d": d, "e": e, "f": f, "x": x, "y": y,
		},
		Relation: "a * x + b * y == c && d * x + e * y == f && a * e != b * d",
	}
	return finish(r, "sim", p)
}
