package transform

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Transform is a 2D affine transform in row-vector form.
// A point (x, y) maps to (A*x + C*y + TX, B*x + D*y + TY).
type Transform struct {
	A, B, C, D float64
	TX, TY     float64
}

// Identity leaves every point where it is.
var Identity = Transform{A: 1, D: 1}

// Translation moves points by (tx, ty).
func Translation(tx, ty float64) Transform {
	return Transform{A: 1, D: 1, TX: tx, TY: ty}
}

// Scale stretches points by sx and sy around the origin.
func Scale(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Rotation rotates points by angle radians around the origin.
func Rotation(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{A: cos, B: sin, C: -sin, D: cos}
}

func (t Transform) IsIdentity() bool {
	return t == Identity
}

// Concat returns the transform that applies t first and then u.
func (t Transform) Concat(u Transform) Transform {
	return Transform{
		A:  t.A*u.A + t.B*u.C,
		B:  t.A*u.B + t.B*u.D,
		C:  t.C*u.A + t.D*u.C,
		D:  t.C*u.B + t.D*u.D,
		TX: t.TX*u.A + t.TY*u.C + u.TX,
		TY: t.TX*u.B + t.TY*u.D + u.TY,
	}
}

// Apply maps the point (x, y).
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.TX, t.B*x + t.D*y + t.TY
}

// Invert returns the inverse transform. ok is false when t is singular,
// e.g. a zero scale, in which case t is returned unchanged.
func (t Transform) Invert() (inv Transform, ok bool) {
	det := t.A*t.D - t.B*t.C
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return t, false
	}
	return Transform{
		A:  t.D / det,
		B:  -t.B / det,
		C:  -t.C / det,
		D:  t.A / det,
		TX: (t.C*t.TY - t.D*t.TX) / det,
		TY: (t.B*t.TX - t.A*t.TY) / det,
	}, true
}

// Aff3 converts t to the matrix layout used by golang.org/x/image/draw.
func (t Transform) Aff3() f64.Aff3 {
	return f64.Aff3{
		t.A, t.C, t.TX,
		t.B, t.D, t.TY,
	}
}

func (t Transform) String() string {
	return fmt.Sprintf("[a=%g b=%g c=%g d=%g tx=%g ty=%g]", t.A, t.B, t.C, t.D, t.TX, t.TY)
}
