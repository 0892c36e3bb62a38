package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerm(t *testing.T) {
	assert.Equal(t, "x", term(1, "x"))
	assert.Equal(t, "-x", term(-1, "x"))
	assert.Equal(t, "3y", term(3, "y"))
	assert.Equal(t, "-4x", term(-4, "x"))
	assert.Equal(t, " + y", nextTerm(1, "y"))
	assert.Equal(t, " - y", nextTerm(-1, "y"))
	assert.Equal(t, " - 2y", nextTerm(-2, "y"))
	assert.Equal(t, "", nextTerm(0, "y"))
	assert.Equal(t, " + 5", constTerm(5))
	assert.Equal(t, " - 5", constTerm(-5))
	assert.Equal(t, "", constTerm(0))
	assert.Equal(t, "(-2)", paren(-2))
	assert.Equal(t, "2", paren(2))
}

func TestReduce(t *testing.T) {
	tests := []struct{ n, d, wn, wd int }{
		{90, 360, 1, 4},
		{120, 360, 1, 3},
		{270, 360, 3, 4},
		{36, 4, 9, 1},
		{3, -6, -1, 2},
	}
	for _, tc := range tests {
		n, d := reduce(tc.n, tc.d)
		if n != tc.wn || d != tc.wd {
			t.Errorf("reduce(%d, %d) = %d/%d, want %d/%d", tc.n, tc.d, n, d, tc.wn, tc.wd)
		}
	}
}

func TestLineAnswer(t *testing.T) {
	tests := []struct {
		m, b      int
		canonical string
		variants  []string
	}{
		{2, 3, "y=2x+3", []string{"y = 2x + 3", "y=2*x+3", "y=3+2x"}},
		{-1, 4, "y=-x+4", []string{"y = -x + 4", "y=4-x"}},
		{5, 0, "y=5x", []string{"y = 5x", "y=5*x"}},
		{-3, -2, "y=-3x-2", []string{"y = -3x - 2", "y=-3*x-2", "y=-2-3x"}},
	}
	for _, tc := range tests {
		c, v := lineAnswer(tc.m, tc.b)
		assert.Equal(t, tc.canonical, c)
		assert.Equal(t, tc.variants, v)
	}
}

func TestPiCoefficient(t *testing.T) {
	assert.Equal(t, "9π", piCoefficient(36, 4))
	assert.Equal(t, "π", piCoefficient(2, 2))
	assert.Equal(t, "3/2π", piCoefficient(6, 4))
	assert.Equal(t, []string{"9pi", "9πcm²"}, piVariants(9, 1, "cm²"))
	assert.Equal(t, []string{"3/2pi", "3/2πcm", "3π/2", "(3/2)π"}, piVariants(3, 2, "cm"))
}

func TestRangeAnswer(t *testing.T) {
	c, v := rangeAnswer(-12, 6)
	assert.Equal(t, "-12≦y≦6", c)
	assert.Contains(t, v, "-12 <= y <= 6")
}
