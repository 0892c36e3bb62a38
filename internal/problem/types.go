package problem

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Tier is the ordered difficulty tier of a problem.
type Tier int

const (
	TierEasy   Tier = iota // Introductory, 100 points
	TierNormal             // Standard, 200 points
	TierHard               // Advanced, 300 points
	TierExpert             // Expert, 400 points
)

// AllTiers returns the tiers from easiest to hardest.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierNormal, TierHard, TierExpert}
}

// Valid reports whether t is one of the four tiers.
func (t Tier) Valid() bool {
	return t >= TierEasy && t <= TierExpert
}

// Points returns the fixed point value awarded for a problem of this tier.
func (t Tier) Points() int {
	switch t {
	case TierEasy:
		return 100
	case TierNormal:
		return 200
	case TierHard:
		return 300
	case TierExpert:
		return 400
	default:
		panic(fmt.Sprintf("problem: points requested for invalid tier %d", int(t)))
	}
}

// String returns the wire identifier of the tier.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierNormal:
		return "normal"
	case TierHard:
		return "hard"
	case TierExpert:
		return "expert"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Label returns the display label shown next to a problem card.
func (t Tier) Label() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierNormal:
		return "Normal"
	case TierHard:
		return "Hard"
	case TierExpert:
		return "Expert"
	default:
		return "Unknown"
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &InputError{Field: "tier", Value: t.String()}
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	parsed, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Genre identifies the curricular genre a problem belongs to.
type Genre string

const (
	GenreDirectProportion  Genre = "proportional"
	GenreInverseProportion Genre = "inverse"
	GenreLinearEquation    Genre = "equation"
	GenreLinearFunction    Genre = "linear"
	GenreSimultaneous      Genre = "simultaneous"
	GenrePlaneGeometry     Genre = "geometry"
	GenreTransform         Genre = "transform"
	GenreSector            Genre = "sector"
)

// AllGenres returns every genre in menu order.
func AllGenres() []Genre {
	return []Genre{
		GenreDirectProportion,
		GenreInverseProportion,
		GenreLinearEquation,
		GenreLinearFunction,
		GenreSimultaneous,
		GenrePlaneGeometry,
		GenreTransform,
		GenreSector,
	}
}

// Valid reports whether g is a known genre.
func (g Genre) Valid() bool {
	return slices.Contains(AllGenres(), g)
}

// DisplayName returns the Japanese curriculum name of the genre.
func (g Genre) DisplayName() string {
	switch g {
	case GenreDirectProportion:
		return "比例"
	case GenreInverseProportion:
		return "反比例"
	case GenreLinearEquation:
		return "一次方程式"
	case GenreLinearFunction:
		return "一次関数"
	case GenreSimultaneous:
		return "連立方程式"
	case GenrePlaneGeometry:
		return "平面図形"
	case GenreTransform:
		return "図形の移動"
	case GenreSector:
		return "おうぎ形"
	default:
		return string(g)
	}
}

func (g *Genre) UnmarshalText(b []byte) error {
	parsed, err := ParseGenre(string(b))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Source records where a problem came from.
type Source string

const (
	SourceCatalog   Source = "catalog"
	SourceGenerated Source = "generated"
	SourceExtension Source = "extension"
)

// Problem is one exercise. Values are never mutated after they are produced;
// use Clone before handing a shared value to code that might.
type Problem struct {
	// ID is stable for catalog problems ("prop-easy-01") and minted from a
	// timestamp plus random suffix for generated ones.
	ID string `json:"id"`

	Genre Genre `json:"genre"`
	Tier  Tier  `json:"tier"`

	// Unit is the curricular unit label, e.g. "反比例" or "図形の移動".
	Unit string `json:"unit,omitempty"`

	// Text is the problem statement shown to the learner.
	Text string `json:"text"`

	// Answer is the preferred correct answer.
	Answer string `json:"answer"`

	// Variants are alternate forms also accepted as correct.
	Variants []string `json:"variants,omitempty"`

	// Hints are revealed front to back, one at a time.
	Hints []string `json:"hints"`

	// Chips are suggested keypad tokens. Pass-through data.
	Chips []string `json:"chips,omitempty"`

	Source Source `json:"source,omitempty"`

	// Params holds the sampled integer parameters of a generated problem.
	Params map[string]int `json:"params,omitempty"`

	// Relation is an arithmetic identity over Params that holds for every
	// well-formed generated problem, e.g. "a*x + b == c".
	Relation string `json:"relation,omitempty"`
}

// Points returns the point value of the problem, fixed by its tier.
func (p Problem) Points() int {
	return p.Tier.Points()
}

// Clone returns a deep copy of p.
func (p Problem) Clone() Problem {
	c := p
	c.Variants = slices.Clone(p.Variants)
	c.Hints = slices.Clone(p.Hints)
	c.Chips = slices.Clone(p.Chips)
	if p.Params != nil {
		c.Params = make(map[string]int, len(p.Params))
		for k, v := range p.Params {
			c.Params[k] = v
		}
	}
	return c
}

// MarshalJSON adds the derived point value to the encoded problem.
func (p Problem) MarshalJSON() ([]byte, error) {
	type plain Problem
	return json.Marshal(struct {
		plain
		Points int `json:"points"`
	}{plain(p), p.safePoints()})
}

func (p Problem) safePoints() int {
	if !p.Tier.Valid() {
		return 0
	}
	return p.Tier.Points()
}

// Validate checks the structural invariants every problem must satisfy.
func (p Problem) Validate() error {
	var errs []string
	if !p.Genre.Valid() {
		errs = append(errs, fmt.Sprintf("unknown genre %q", p.Genre))
	}
	if !p.Tier.Valid() {
		errs = append(errs, fmt.Sprintf("invalid tier %d", int(p.Tier)))
	}
	if strings.TrimSpace(p.Text) == "" {
		errs = append(errs, "text is empty")
	}
	if Normalize(p.Answer) == "" {
		errs = append(errs, "answer is empty")
	}
	if len(p.Hints) == 0 {
		errs = append(errs, "hints are empty")
	}
	for i, h := range p.Hints {
		if strings.TrimSpace(h) == "" {
			errs = append(errs, fmt.Sprintf("hint %d is blank", i+1))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("problem %q: %s", p.ID, strings.Join(errs, "; "))
	}
	return nil
}
