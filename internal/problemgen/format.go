package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// reduce returns n/d in lowest terms with a positive denominator.
func reduce(n, d int) (int, int) {
	g := gcd(n, d)
	n, d = n/g, d/g
	if d < 0 {
		n, d = -n, -d
	}
	return n, d
}

// term renders a leading coefficient: 1 → "x", -1 → "-x", 3 → "3x".
func term(c int, v string) string {
	switch c {
	case 1:
		return v
	case -1:
		return "-" + v
	default:
		return strconv.Itoa(c) + v
	}
}

// nextTerm renders a following term with a spaced sign: " + 2y", " - y".
// Zero coefficients render as "".
func nextTerm(c int, v string) string {
	switch {
	case c == 0:
		return ""
	case c < 0:
		return " - " + term(-c, v)
	default:
		return " + " + term(c, v)
	}
}

// constTerm renders a following constant with a spaced sign: " + 5", " - 3".
func constTerm(c int) string {
	switch {
	case c == 0:
		return ""
	case c < 0:
		return fmt.Sprintf(" - %d", -c)
	default:
		return fmt.Sprintf(" + %d", c)
	}
}

// paren wraps negative numbers for use after an operator: -2 → "(-2)".
func paren(n int) string {
	if n < 0 {
		return fmt.Sprintf("(%d)", n)
	}
	return strconv.Itoa(n)
}

// compact strips the spaces a display form carries.
func compact(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// lineAnswer builds the canonical "y=mx+b" answer for a line and the
// variants a learner may type: spaced, explicit multiplication, and
// intercept first.
func lineAnswer(m, b int) (string, []string) {
	display := "y = " + term(m, "x") + constTerm(b)
	canonical := compact(display)

	variants := []string{display}
	if abs(m) != 1 {
		variants = append(variants, compact("y = "+strconv.Itoa(m)+"*x"+constTerm(b)))
	}
	if b != 0 {
		interceptFirst := "y = " + strconv.Itoa(b)
		if m < 0 {
			interceptFirst += " - " + term(-m, "x")
		} else {
			interceptFirst += " + " + term(m, "x")
		}
		variants = append(variants, compact(interceptFirst))
	}
	return canonical, variants
}

// rangeAnswer builds "lo≦y≦hi" and its accepted spellings.
func rangeAnswer(lo, hi int) (string, []string) {
	canonical := fmt.Sprintf("%d≦y≦%d", lo, hi)
	return canonical, []string{
		fmt.Sprintf("%d ≦ y ≦ %d", lo, hi),
		fmt.Sprintf("%d<=y<=%d", lo, hi),
		fmt.Sprintf("%d <= y <= %d", lo, hi),
	}
}

// valueAnswer builds the answer for a single unknown: "7" plus "x=7", "x = 7".
func valueAnswer(v string, n int) (string, []string) {
	s := strconv.Itoa(n)
	return s, []string{v + "=" + s, v + " = " + s}
}

// piCoefficient renders n/d·π: 9π, π, 3/2π.
func piCoefficient(n, d int) string {
	n, d = reduce(n, d)
	switch {
	case d == 1 && n == 1:
		return "π"
	case d == 1:
		return fmt.Sprintf("%dπ", n)
	default:
		return fmt.Sprintf("%d/%dπ", n, d)
	}
}

// piVariants lists the alternate spellings of piCoefficient(n, d).
func piVariants(n, d int, unit string) []string {
	n, d = reduce(n, d)
	canonical := piCoefficient(n, d)
	variants := []string{
		strings.ReplaceAll(canonical, "π", "pi"),
		canonical + unit,
	}
	if d != 1 {
		variants = append(variants,
			fmt.Sprintf("%dπ/%d", n, d),
			fmt.Sprintf("(%d/%d)π", n, d),
		)
	}
	return variants
}
