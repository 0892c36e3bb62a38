package problemgen

import (
	"fmt"

	"github.com/abhisek/mathstudio/internal/problem"
)

type sectorKind int

const (
	sectorArc sectorKind = iota
	sectorArea
)

var (
	sectorRadii = map[problem.Tier][]int{
		problem.TierEasy:   {2, 3, 4, 5, 6},
		problem.TierNormal: {3, 4, 5, 6, 8, 9, 10, 12},
		problem.TierHard:   {4, 5, 6, 8, 9, 10, 12},
		problem.TierExpert: {5, 6, 7, 8, 9, 10, 12, 15},
	}
	sectorAngles = map[problem.Tier][]int{
		problem.TierEasy:   {90, 180},
		problem.TierNormal: {45, 60, 90, 120, 180, 270},
		problem.TierHard:   {30, 45, 60, 72, 120, 135, 150, 240},
		problem.TierExpert: {20, 36, 40, 72, 100, 108, 144, 150, 210, 225, 300},
	}
)

// CircularSector generates an arc-length or area problem for a sector. The
// result is exact and symbolic: a reduced coefficient of π.
func CircularSector(r Rand, tier problem.Tier) problem.Problem {
	mustTier(tier)
	radius := pick(r, sectorRadii[tier])
	angle := pick(r, sectorAngles[tier])
	kind := sectorArc
	if coin(r) {
		kind = sectorArea
	}
	return sectorFrom(r, tier, radius, angle, kind)
}

// sectorFrom builds the problem for fixed parameters. r is only used for
// the id.
func sectorFrom(r Rand, tier problem.Tier, radius, angle int, kind sectorKind) problem.Problem {
	fn, fd := reduce(angle, 360)

	var (
		what, unit, whole string
		wholeN, relation  string
		n, d              int
	)
	switch kind {
	case sectorArea:
		what, unit = "面積", "cm²"
		wholeN = piCoefficient(radius*radius, 1)
		whole = fmt.Sprintf("円の面積は π × %d × %d = %s cm²", radius, radius, wholeN)
		n, d = reduce(radius*radius*fn, fd)
		relation = "n * fd == r * r * fn * d"
	default:
		what, unit = "弧の長さ", "cm"
		wholeN = piCoefficient(2*radius, 1)
		whole = fmt.Sprintf("円周は 2 × π × %d = %s cm", radius, wholeN)
		n, d = reduce(2*radius*fn, fd)
		relation = "n * fd == 2 * r * fn * d"
	}
	relation += " && fn * 360 == angle * fd"

	answer := piCoefficient(n, d)
	p := problem.Problem{
		Genre: problem.GenreSector,
		Tier:  tier,
		Unit:  "おうぎ形",
		Text: fmt.Sprintf("半径 %dcm、中心角 %d° のおうぎ形の%sを求めなさい。円周率は π とします。",
			radius, angle, what),
		Answer:   answer,
		Variants: piVariants(n, d, unit),
		Hints: []string{
			fmt.Sprintf("おうぎ形は円の %d/360 = %d/%d です。", angle, fn, fd),
			whole,
			fmt.Sprintf("%s × %d/%d = %s", wholeN, fn, fd, answer),
		},
		Chips: chips(radius, angle, 360, "π", "×", "÷", "/"),
		Params: map[string]int{
			"r": radius, "angle": angle, "fn": fn, "fd": fd, "n": n, "d": d,
		},
		Relation: relation,
	}
	return finish(r, "sec", p)
}
