package problemgen

import (
	"fmt"

	"github.com/abhisek/mathstudio/internal/problem"
)

type lineRanges struct {
	slope     int // |m| in [1, slope]
	intercept int // b in [-intercept, intercept]
	x         int // x in [-x, x]
}

var lineTierRanges = map[problem.Tier]lineRanges{
	problem.TierNormal: {slope: 5, intercept: 9, x: 5},
	problem.TierHard:   {slope: 5, intercept: 9, x: 5},
	problem.TierExpert: {slope: 9, intercept: 20, x: 9},
}

// LinearFunction generates a y = mx + b problem with a non-zero integer
// slope. Easy asks for y at a given x; Normal for the equation from the
// slope and one point; Hard and Expert for the equation through two points.
// The slope is known from sampling, not re-derived from the points.
func LinearFunction(r Rand, tier problem.Tier) problem.Problem {
	mustTier(tier)

	var p problem.Problem
	if tier == problem.TierEasy {
		m := between(r, 1, 5)
		b := between(r, -5, 5)
		x := between(r, 1, 5)
		p = lineValue(m, b, x)
	} else {
		rg := lineTierRanges[tier]
		m := signed(r, between(r, 1, rg.slope))
		b := between(r, -rg.intercept, rg.intercept)
		x1 := between(r, -rg.x, rg.x)
		if tier == problem.TierNormal {
			p = lineFromSlope(m, b, x1)
		} else {
			x2 := between(r, -rg.x, rg.x-1)
			if x2 >= x1 {
				x2++
			}
			p = lineFromPoints(m, b, x1, x2)
		}
	}

	p.Genre = problem.GenreLinearFunction
	p.Tier = tier
	p.Unit = "一次関数"
	return finish(r, "lin", p)
}

func lineDisplay(m, b int) string {
	return "y = " + term(m, "x") + constTerm(b)
}

func lineValue(m, b, x int) problem.Problem {
	y := m*x + b
	answer, variants := valueAnswer("y", y)
	return problem.Problem{
		Text:     fmt.Sprintf("一次関数 %s で、x = %d のときの y の値を求めなさい。", lineDisplay(m, b), x),
		Answer:   answer,
		Variants: variants,
		Hints: []string{
			fmt.Sprintf("%s の x に %d を代入します。", lineDisplay(m, b), x),
			fmt.Sprintf("y = %d × %d%s を計算しましょう。", m, x, constTerm(b)),
		},
		Chips:    chips(m, b, x, y, "x", "y", "=", "×", "+"),
		Params:   map[string]int{"m": m, "b": b, "x": x, "y": y},
		Relation: "m * x + b == y",
	}
}

func lineFromSlope(m, b, x1 int) problem.Problem {
	y1 := m*x1 + b
	answer, variants := lineAnswer(m, b)
	return problem.Problem{
		Text:     fmt.Sprintf("傾きが %d で、点 (%d, %d) を通る直線の式を求めなさい。", m, x1, y1),
		Answer:   answer,
		Variants: variants,
		Hints: []string{
			fmt.Sprintf("求める式を y = %s + b とおき、点の座標を代入します。", term(m, "x")),
			fmt.Sprintf("%d = %d × %s + b", y1, m, paren(x1)),
			fmt.Sprintf("b = %d", b),
			"よって " + lineDisplay(m, b),
		},
		Chips:    chips(m, x1, y1, b, "x", "y", "=", "+", "-"),
		Params:   map[string]int{"m": m, "b": b, "x1": x1, "y1": y1},
		Relation: "m * x1 + b == y1",
	}
}

func lineFromPoints(m, b, x1, x2 int) problem.Problem {
	y1, y2 := m*x1+b, m*x2+b
	dx, dy := x2-x1, y2-y1
	answer, variants := lineAnswer(m, b)
	return problem.Problem{
		Text:     fmt.Sprintf("2点 (%d, %d), (%d, %d) を通る直線の式を求めなさい。", x1, y1, x2, y2),
		Answer:   answer,
		Variants: variants,
		Hints: []string{
			"傾き = (y の増加量) ÷ (x の増加量) です。",
			fmt.Sprintf("傾き = (%d - %s) ÷ (%d - %s) = %d ÷ %d = %d", y2, paren(y1), x2, paren(x1), dy, dx, m),
			fmt.Sprintf("y = %s + b に (%d, %d) を代入すると b = %d", term(m, "x"), x1, y1, b),
			"よって " + lineDisplay(m, b),
		},
		Chips: chips(x1, y1, x2, y2, m, b, "x", "y", "=", "+", "-"),
		Params: map[string]int{
			"m": m, "b": b, "x1": x1, "y1": y1, "x2": x2, "y2": y2,
		},
		Relation: "m * x1 + b == y1 && m * x2 + b == y2 && y2 - y1 == m * (x2 - x1)",
	}
}
