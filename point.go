package ecc

import "fmt"

// Point is a point on the short Weierstrass curve y^2 = x^3 + ax + b whose
// coordinates live in the field described by E.  A Point is either the point
// at infinity, which is the group identity and carries no coordinates, or an
// affine point that carries its coordinates together with the curve
// coefficients a and b.
//
// The zero value is the point at infinity.  Points are immutable.
type Point[E Element[E]] struct {
	x, y   E
	a, b   E
	affine bool
}

// Infinity returns the point at infinity.
func Infinity[E Element[E]]() *Point[E] {
	return &Point[E]{}
}

// NewPoint returns the affine point (x, y) on the curve with coefficients a
// and b.  It returns ErrPointNotOnCurve when the coordinates do not satisfy
// the curve equation.
//
// All four values must come from the same field, otherwise the curve check
// panics with ErrFieldMismatch.
func NewPoint[E Element[E]](x, y, a, b E) (*Point[E], error) {
	if !onCurve(x, y, a, b) {
		str := fmt.Sprintf("(%v, %v) is not on the curve y^2 = x^3 + %vx + %v",
			x, y, a, b)
		return nil, makeError(ErrPointNotOnCurve, str)
	}
	return &Point[E]{x: x, y: y, a: a, b: b, affine: true}, nil
}

// onCurve reports whether y^2 == x^3 + ax + b.
func onCurve[E Element[E]](x, y, a, b E) bool {
	lhs := y.Mul(y)
	rhs := x.Mul(x).Mul(x).Add(a.Mul(x)).Add(b)
	return lhs.Equal(rhs)
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point[E]) IsInfinity() bool {
	return !p.affine
}

// X returns the x coordinate.  It returns the zero value of E for the point
// at infinity.
func (p *Point[E]) X() E {
	return p.x
}

// Y returns the y coordinate.  It returns the zero value of E for the point
// at infinity.
func (p *Point[E]) Y() E {
	return p.y
}

// A returns the curve coefficient a.
func (p *Point[E]) A() E {
	return p.a
}

// B returns the curve coefficient b.
func (p *Point[E]) B() E {
	return p.b
}

// Equal reports whether p and q are the same point.  The point at infinity is
// only equal to itself, and two affine points are equal when their
// coordinates and curve coefficients all match.
func (p *Point[E]) Equal(q *Point[E]) bool {
	if !p.affine || !q.affine {
		return p.affine == q.affine
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y) && p.a.Equal(q.a) &&
		p.b.Equal(q.b)
}

// Neg returns the inverse of p in the group, (x, -y).
func (p *Point[E]) Neg() *Point[E] {
	if !p.affine {
		return p
	}
	return &Point[E]{x: p.x, y: p.y.Neg(), a: p.a, b: p.b, affine: true}
}

// Add returns p + q under the elliptic curve group law.
//
// It panics with ErrDifferentCurve when both points are affine but their
// curve coefficients differ.
func (p *Point[E]) Add(q *Point[E]) *Point[E] {
	// The point at infinity is the identity.
	if !p.affine {
		return q
	}
	if !q.affine {
		return p
	}

	if !p.a.Equal(q.a) || !p.b.Equal(q.b) {
		str := fmt.Sprintf("points %v and %v are not on the same curve", p, q)
		panic(makeError(ErrDifferentCurve, str))
	}

	// Same x with different y means the line through them is vertical, which
	// covers adding a point to its own inverse.
	sameX := p.x.Equal(q.x)
	if sameX && !p.y.Equal(q.y) {
		return Infinity[E]()
	}

	// Chord through two distinct points.
	//
	// s = (y2 - y1) / (x2 - x1)
	// x3 = s^2 - x1 - x2
	// y3 = s(x1 - x3) - y1
	if !sameX {
		s := q.y.Sub(p.y).Div(q.x.Sub(p.x))
		x3 := s.Mul(s).Sub(p.x).Sub(q.x)
		y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
		return &Point[E]{x: x3, y: y3, a: p.a, b: p.b, affine: true}
	}

	// Doubling a point with y = 0 has a vertical tangent.
	if p.y.IsZero() {
		return Infinity[E]()
	}

	// Tangent at p.
	//
	// s = (3x1^2 + a) / 2y1
	// x3 = s^2 - 2x1
	// y3 = s(x1 - x3) - y1
	s := p.x.Mul(p.x).MulInt(3).Add(p.a).Div(p.y.MulInt(2))
	x3 := s.Mul(s).Sub(p.x.MulInt(2))
	y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
	return &Point[E]{x: x3, y: y3, a: p.a, b: p.b, affine: true}
}

// Double returns p + p.
func (p *Point[E]) Double() *Point[E] {
	return p.Add(p)
}

// String returns a human-readable form of the point.
func (p *Point[E]) String() string {
	if !p.affine {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%v,%v)_%v_%v", p.x, p.y, p.a, p.b)
}
