package problemgen

import (
	"fmt"

	"github.com/abhisek/mathstudio/internal/problem"
)

// LinearEquation generates a one-unknown linear equation. The solution x is
// always sampled before anything derived from it, so every displayed
// constant is back-computed and the solution is an exact integer.
//
//	Easy:   ax = c
//	Normal: ax + b = c, b > 0
//	Hard:   ax + b = c, x and b may be negative
//	Expert: ax + b = dx + e, a > d
func LinearEquation(r Rand, tier problem.Tier) problem.Problem {
	mustTier(tier)

	var p problem.Problem
	switch tier {
	case problem.TierEasy:
		a := between(r, 2, 9)
		x := between(r, 1, 9)
		p = equationOneSide(a, 0, x)
	case problem.TierNormal:
		a := between(r, 2, 9)
		x := between(r, 1, 9)
		b := between(r, 1, 20)
		p = equationOneSide(a, b, x)
	case problem.TierHard:
		a := between(r, 2, 9)
		x := signed(r, between(r, 1, 9))
		b := signed(r, between(r, 1, 20))
		p = equationOneSide(a, b, x)
	default:
		d := between(r, 1, 8)
		a := between(r, d+1, 9)
		x := signed(r, between(r, 1, 9))
		b := signed(r, between(r, 1, 20))
		p = equationBothSides(a, b, d, x)
	}

	p.Genre = problem.GenreLinearEquation
	p.Tier = tier
	p.Unit = "一次方程式"
	return finish(r, "eq", p)
}

func equationOneSide(a, b, x int) problem.Problem {
	c := a*x + b
	lhs := term(a, "x") + constTerm(b)
	equation := fmt.Sprintf("%s = %d", lhs, c)

	var hints []string
	if b != 0 {
		hints = append(hints,
			fmt.Sprintf("左辺の %s を右辺に移項します。符号が変わることに注意しましょう。", compact(constTerm(b))),
			fmt.Sprintf("%s = %d %s %d = %d", term(a, "x"), c, opFor(-b), abs(b), c-b),
		)
	}
	hints = append(hints,
		fmt.Sprintf("x の係数 %d で両辺を割ります。", a),
		fmt.Sprintf("x = %d ÷ %d = %d", c-b, a, x),
	)

	answer, variants := valueAnswer("x", x)
	return problem.Problem{
		Text:     "次の方程式を解きなさい。 " + equation,
		Answer:   answer,
		Variants: variants,
		Hints:    hints,
		Chips:    chips(a, c, x, "x", "=", "+", "-", "÷"),
		Params:   map[string]int{"a": a, "b": b, "c": c, "x": x},
		Relation: "a * x + b == c",
	}
}

func equationBothSides(a, b, d, x int) problem.Problem {
	e := (a-d)*x + b
	k := a - d
	m := e - b
	equation := fmt.Sprintf("%s = %s", term(a, "x")+constTerm(b), rhsTerm(d, e))

	hints := []string{
		"x をふくむ項を左辺に、数の項を右辺に集めます。",
		fmt.Sprintf("%dx - %s = %d - %s", a, term(d, "x"), e, paren(b)),
		fmt.Sprintf("%s = %d", term(k, "x"), m),
	}
	if k != 1 {
		hints = append(hints, fmt.Sprintf("x = %d ÷ %d = %d", m, k, x))
	}

	answer, variants := valueAnswer("x", x)
	return problem.Problem{
		Text:     "次の方程式を解きなさい。 " + equation,
		Answer:   answer,
		Variants: variants,
		Hints:    hints,
		Chips:    chips(a, d, x, "x", "=", "+", "-", "÷"),
		Params:   map[string]int{"a": a, "b": b, "d": d, "e": e, "x": x},
		Relation: "a * x + b == d * x + e && a > d",
	}
}

// rhsTerm renders "dx + e" with the constant omitted when zero.
func rhsTerm(d, e int) string {
	return term(d, "x") + constTerm(e)
}

func opFor(n int) string {
	if n < 0 {
		return "-"
	}
	return "+"
}
