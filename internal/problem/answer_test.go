package problem

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"y = 5x", "y=5x"},
		{" Y=5X ", "y=5x"},
		{"y\t=\n−4x", "y=-4x"},
		{"3 × 4", "3*4"},
		{"12 ÷ 3", "12/3"},
		{"2≦y≦10", "2≦y≦10"},
		{"9π", "9π"},
		{"y=2/4x", "y=2/4x"},
		{"x　=　7", "x=7"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"y = −3x + 2", "A × B ÷ C", "  ", "x=2、y=-3", "1/4π", "ＡＢＣ", "y ≦ 10",
	}
	for _, s := range inputs {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestIsCorrect(t *testing.T) {
	p := Problem{
		Answer:   "y=-4x",
		Variants: []string{"y = -4x", "y=-4*x"},
		Hints:    []string{"h"},
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"y=-4x", true},
		{"y = -4x", true},
		{"Y = -4X", true},
		{"y=−4x", true},
		{"y=−4×x", true},
		{"y=-4*x", true},
		{"y=4x", false},
		{"-4x", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsCorrect(p, tc.input); got != tc.want {
			t.Errorf("IsCorrect(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsCorrect_LiteralVariantsOnly(t *testing.T) {
	p := Problem{Answer: "y=0.5x", Hints: []string{"h"}}
	if IsCorrect(p, "y=2/4x") {
		t.Error("equivalent but unlisted form must not match")
	}
	p.Variants = []string{"y=2/4x"}
	if !IsCorrect(p, "y = 2/4x") {
		t.Error("listed variant should match")
	}
}

func TestIsCorrect_DivisionSign(t *testing.T) {
	p := Problem{Answer: "y=36/x", Hints: []string{"h"}}
	if !IsCorrect(p, "y=36÷x") {
		t.Error("÷ should normalize to /")
	}
}

func TestNextHint(t *testing.T) {
	p := Problem{Hints: []string{"a", "b", "c"}}

	tests := []struct {
		cur  int
		want int
	}{
		{-1, 0},
		{0, 1},
		{1, 2},
		{2, 2},
		{10, 2},
		{-5, 0},
	}
	for _, tc := range tests {
		if got := NextHint(p, tc.cur); got != tc.want {
			t.Errorf("NextHint(%d) = %d, want %d", tc.cur, got, tc.want)
		}
	}

	if got := NextHint(Problem{}, -1); got != -1 {
		t.Errorf("NextHint on empty hints = %d, want -1", got)
	}
}

func TestHint(t *testing.T) {
	p := Problem{Hints: []string{"first", "second"}}
	if got := Hint(p, 1); got != "second" {
		t.Errorf("Hint(1) = %q", got)
	}
	if got := Hint(p, -1); got != "" {
		t.Errorf("Hint(-1) = %q, want empty", got)
	}
	if got := Hint(p, 2); got != "" {
		t.Errorf("Hint(2) = %q, want empty", got)
	}
}
