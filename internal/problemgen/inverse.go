package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/mathstudio/internal/problem"
)

var (
	inverseConstants     = []int{6, 8, 12, 16, 18, 20, 24, 30, 36, 48, 60}
	inverseEasyConstants = []int{6, 8, 12, 16, 18, 20, 24}
)

// properDivisors returns the divisors of n other than 1 and n, ascending.
func properDivisors(n int) []int {
	n = abs(n)
	var out []int
	for d := 2; d < n; d++ {
		if n%d == 0 {
			out = append(out, d)
		}
	}
	return out
}

// twoOf draws two distinct elements of xs, in ascending index order.
func twoOf(r Rand, xs []int) (int, int) {
	i := r.IntN(len(xs))
	j := r.IntN(len(xs) - 1)
	if j >= i {
		j++
	}
	if i > j {
		i, j = j, i
	}
	return xs[i], xs[j]
}

// InverseProportion generates a y = a/x problem. The constant comes from a
// fixed set and every x is a proper divisor of it, so all values are
// integers.
func InverseProportion(r Rand, tier problem.Tier) problem.Problem {
	mustTier(tier)

	var p problem.Problem
	switch tier {
	case problem.TierEasy:
		p = inverseValue(r)
	case problem.TierNormal:
		p = inverseTwoPoints(r)
	case problem.TierHard:
		if coin(r) {
			p = inversePoint(r)
		} else {
			p = inverseRange(r, pick(r, inverseConstants))
		}
	default:
		p = inverseRange(r, signed(r, pick(r, inverseConstants)))
	}

	p.Genre = problem.GenreInverseProportion
	p.Tier = tier
	p.Unit = "反比例"
	return finish(r, "inv", p)
}

func inverseValue(r Rand) problem.Problem {
	a := pick(r, inverseEasyConstants)
	x := pick(r, properDivisors(a))
	y := a / x

	answer, variants := valueAnswer("y", y)
	return problem.Problem{
		Text:     fmt.Sprintf("y = %d/x のとき、x = %d ならば y はいくつですか。", a, x),
		Answer:   answer,
		Variants: variants,
		Hints: []string{
			fmt.Sprintf("y = %d/x の x のところに %d を入れます。", a, x),
			fmt.Sprintf("y = %d ÷ %d を計算しましょう。", a, x),
		},
		Chips:    chips(a, x, y, "x", "y", "=", "÷"),
		Params:   map[string]int{"a": a, "x": x, "y": y},
		Relation: "x * y == a",
	}
}

func inverseTwoPoints(r Rand) problem.Problem {
	a := pick(r, inverseConstants)
	x1, x2 := twoOf(r, properDivisors(a))
	if coin(r) {
		x1, x2 = x2, x1
	}
	y1, y2 := a/x1, a/x2

	answer, variants := valueAnswer("y", y2)
	return problem.Problem{
		Text: fmt.Sprintf("y は x に反比例し、x = %d のとき y = %d です。x = %d のとき y の値を求めなさい。",
			x1, y1, x2),
		Answer:   answer,
		Variants: variants,
		Hints: []string{
			fmt.Sprintf("まず xy = a を求めます。%d × %d = %d", x1, y1, a),
			fmt.Sprintf("x = %d のとき、%d × y = %d", x2, x2, a),
			fmt.Sprintf("y = %d ÷ %d = %d", a, x2, y2),
		},
		Chips:    chips(x1, y1, x2, a, y2, "x", "y", "=", "×", "÷"),
		Params:   map[string]int{"a": a, "x1": x1, "y1": y1, "x2": x2, "y2": y2},
		Relation: "x1 * y1 == a && x2 * y2 == a",
	}
}

func inversePoint(r Rand) problem.Problem {
	a := signed(r, pick(r, inverseConstants))
	x := pick(r, properDivisors(a))
	y := a / x

	display := fmt.Sprintf("y = %d/x", a)
	return problem.Problem{
		Text:   fmt.Sprintf("グラフが点 (%d, %d) を通る反比例の式を求めなさい。", x, y),
		Answer: compact(display),
		Variants: []string{
			display,
			fmt.Sprintf("y=%d÷x", a),
		},
		Hints: []string{
			"反比例は y = a/x の形です。",
			fmt.Sprintf("点 (%d, %d) では xy = a なので、%d × %s = %d", x, y, x, paren(y), a),
			"よって " + display,
		},
		Chips:    chips(x, y, a, "a", "x", "y", "=", "×", "÷"),
		Params:   map[string]int{"a": a, "x": x, "y": y},
		Relation: "x * y == a",
	}
}

// inverseRange asks for the range of y over a positive domain of x. The
// range is taken from the values at the endpoints, ordered low to high, so
// it is correct for both increasing and decreasing branches.
func inverseRange(r Rand, a int) problem.Problem {
	x1, x2 := twoOf(r, properDivisors(a))
	y1, y2 := a/x1, a/x2
	lo, hi := min(y1, y2), max(y1, y2)

	direction := "反比例 (a > 0) では、x > 0 の範囲で x が増えると y は減ります。"
	if a < 0 {
		direction = "a が負なので、x > 0 の範囲で x が増えると y も増えます。"
	}

	answer, variants := rangeAnswer(lo, hi)
	return problem.Problem{
		Text: fmt.Sprintf("y = %d/x で、x の変域が %d ≦ x ≦ %d のとき、y の変域を求めなさい。",
			a, x1, x2),
		Answer:   answer,
		Variants: variants,
		Hints: []string{
			fmt.Sprintf("x = %d のとき y = %d ÷ %d = %d", x1, a, x1, y1),
			fmt.Sprintf("x = %d のとき y = %d ÷ %d = %d", x2, a, x2, y2),
			direction,
		},
		Chips: chips(x1, x2, lo, hi, a, "x", "y", "≦", "="),
		Params: map[string]int{
			"a": a, "x1": x1, "y1": y1, "x2": x2, "y2": y2, "lo": lo, "hi": hi,
		},
		Relation: "x1 * y1 == a && x2 * y2 == a && lo + hi == y1 + y2 && lo <= hi",
	}
}

// chips renders keypad tokens from numbers and symbols, dropping repeats.
func chips(items ...any) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		var s string
		switch v := it.(type) {
		case int:
			s = strconv.Itoa(v)
		case string:
			s = v
		default:
			s = fmt.Sprint(v)
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
