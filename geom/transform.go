package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Transform is a 2D affine transform in row-vector form:
//
//	[x' y'] = [x y] * | a  b | + [e f]
//	                  | c  d |
//
// The zero value is NOT the identity; use Identity().
type Transform struct {
	A float64 `yaml:"a" json:"a"`
	B float64 `yaml:"b" json:"b"`
	C float64 `yaml:"c" json:"c"`
	D float64 `yaml:"d" json:"d"`
	E float64 `yaml:"e" json:"e"`
	F float64 `yaml:"f" json:"f"`
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translate post-multiplies a translation. The offsets are pushed through the
// current linear part, so a later translation moves along rotated axes.
func (t *Transform) Translate(tx, ty float64) {
	t.E += tx*t.A + ty*t.C
	t.F += tx*t.B + ty*t.D
}

// Compose multiplies the given matrix by the current one (given * current).
// Note the order is the reverse of Translate; pivot chains such as
// "translate to center, apply matrix, translate back" depend on it.
func (t *Transform) Compose(a, b, c, d, e, f float64) {
	ta, tb, tc, td, te, tf := t.A, t.B, t.C, t.D, t.E, t.F
	t.A = a*ta + b*tc
	t.B = a*tb + b*td
	t.C = c*ta + d*tc
	t.D = c*tb + d*td
	t.E = e*ta + f*tc + te
	t.F = e*tb + f*td + tf
}

// Apply maps a point through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return x*t.A + y*t.C + t.E, x*t.B + y*t.D + t.F
}

// IsIdentity reports whether the transform is a no-op.
func (t Transform) IsIdentity() bool {
	return t.IsLinearIdentity() && t.E == 0 && t.F == 0
}

// IsLinearIdentity reports whether the linear part is identity (the transform
// is at most a translation).
func (t Transform) IsLinearIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 && t.D == 1
}

// SVG returns the transform as an SVG matrix() value with coefficients
// rounded to three decimals.
func (t Transform) SVG() string {
	parts := []string{
		FormatRound1k(t.A), FormatRound1k(t.B), FormatRound1k(t.C),
		FormatRound1k(t.D), FormatRound1k(t.E), FormatRound1k(t.F),
	}
	return "matrix(" + strings.Join(parts, ", ") + ")"
}

// String implements fmt.Stringer.
func (t Transform) String() string {
	return fmt.Sprintf("Transform(%g %g %g %g %g %g)", t.A, t.B, t.C, t.D, t.E, t.F)
}

// FormatNumber formats v with the shortest representation that round-trips,
// never in exponent form.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0" // avoids "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRound1k rounds v to three decimals and formats it.
func FormatRound1k(v float64) string {
	return FormatNumber(Round1k(v))
}
