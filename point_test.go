package ecc

import (
	"errors"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// testPrime is the prime of the small teaching curve y^2 = x^3 + 7 over F_223.
const testPrime = 223

// pt returns the affine point (x, y) on y^2 = x^3 + ax + b over F_prime and
// fails the test when it is not on the curve.
func pt(t *testing.T, x, y, a, b, prime int64) *Point[*FieldElement] {
	t.Helper()
	p, err := NewPoint(fe(t, x, prime), fe(t, y, prime), fe(t, a, prime),
		fe(t, b, prime))
	if err != nil {
		t.Fatalf("unexpected error creating (%d, %d): %v", x, y, err)
	}
	return p
}

// pt223 returns a point of the F_223 teaching curve.
func pt223(t *testing.T, x, y int64) *Point[*FieldElement] {
	t.Helper()
	return pt(t, x, y, 0, 7, testPrime)
}

// allPoints223 returns every affine point of y^2 = x^3 + 7 over F_223.
func allPoints223(t *testing.T) []*Point[*FieldElement] {
	t.Helper()
	var points []*Point[*FieldElement]
	for x := int64(0); x < testPrime; x++ {
		rhs := (x*x*x + 7) % testPrime
		for y := int64(0); y < testPrime; y++ {
			if y*y%testPrime == rhs {
				points = append(points, pt223(t, x, y))
			}
		}
	}
	return points
}

// TestNewPoint ensures points are validated against the curve equation.
func TestNewPoint(t *testing.T) {
	valid := [][2]int64{{192, 105}, {17, 56}, {1, 193}}
	invalid := [][2]int64{{200, 119}, {42, 99}}

	a, b := fe(t, 0, testPrime), fe(t, 7, testPrime)
	for _, c := range valid {
		x, y := fe(t, c[0], testPrime), fe(t, c[1], testPrime)
		if _, err := NewPoint(x, y, a, b); err != nil {
			t.Errorf("(%d, %d): unexpected error %v", c[0], c[1], err)
		}
	}
	for _, c := range invalid {
		x, y := fe(t, c[0], testPrime), fe(t, c[1], testPrime)
		_, err := NewPoint(x, y, a, b)
		if !errors.Is(err, ErrPointNotOnCurve) {
			t.Errorf("(%d, %d): got err %v, want %v", c[0], c[1], err,
				ErrPointNotOnCurve)
		}
	}
}

// TestPointEqual checks equality across the infinity and affine cases.
func TestPointEqual(t *testing.T) {
	inf := Infinity[*FieldElement]()
	p := pt223(t, 192, 105)

	tests := []struct {
		name string
		a, b *Point[*FieldElement]
		want bool
	}{
		{"inf == inf", inf, Infinity[*FieldElement](), true},
		{"inf != p", inf, p, false},
		{"p != inf", p, inf, false},
		{"p == p", p, pt223(t, 192, 105), true},
		{"p != q", p, pt223(t, 17, 56), false},
		{"p != -p", p, p.Neg(), false},
	}
	for _, test := range tests {
		if got := test.a.Equal(test.b); got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
	}

	var zero Point[*FieldElement]
	if !zero.IsInfinity() {
		t.Errorf("zero value is not the point at infinity")
	}
}

// TestPointAdd checks the chord rule against known sums on the F_223 curve.
func TestPointAdd(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2, x3, y3 int64
	}{
		{192, 105, 17, 56, 170, 142},
		{47, 71, 117, 141, 60, 139},
		{143, 98, 76, 66, 47, 71},
		{170, 142, 60, 139, 220, 181},
		{47, 71, 17, 56, 215, 68},
	}

	for i, test := range tests {
		p1 := pt223(t, test.x1, test.y1)
		p2 := pt223(t, test.x2, test.y2)
		want := pt223(t, test.x3, test.y3)
		got := p1.Add(p2)
		if !got.Equal(want) {
			t.Errorf("#%d: got %v, want %v\n%s", i, got, want, spew.Sdump(got))
			continue
		}
		if rev := p2.Add(p1); !rev.Equal(want) {
			t.Errorf("#%d: addition not commutative: %v", i, rev)
		}
	}
}

// TestPointAddSpecialCases covers the identity, inverse and vertical tangent
// branches of the group law.
func TestPointAddSpecialCases(t *testing.T) {
	inf := Infinity[*FieldElement]()
	for _, p := range allPoints223(t) {
		if got := p.Add(inf); !got.Equal(p) {
			t.Errorf("%v + inf = %v", p, got)
		}
		if got := inf.Add(p); !got.Equal(p) {
			t.Errorf("inf + %v = %v", p, got)
		}
		if got := p.Add(p.Neg()); !got.IsInfinity() {
			t.Errorf("%v + -P = %v, want infinity", p, got)
		}
		if got := p.Double(); !got.IsInfinity() {
			if _, err := NewPoint(got.X(), got.Y(), got.A(), got.B()); err != nil {
				t.Errorf("2*%v = %v is off the curve", p, got)
			}
		}
	}
	if got := inf.Add(inf); !got.IsInfinity() {
		t.Errorf("inf + inf = %v", got)
	}

	// (1, 0) lies on y^2 = x^3 + 12 over F_13 and has a vertical tangent.
	torsion := pt(t, 1, 0, 0, 12, 13)
	if got := torsion.Double(); !got.IsInfinity() {
		t.Errorf("doubling a 2-torsion point: got %v, want infinity", got)
	}
}

// TestPointAddAssociative spot checks associativity over all points of a small
// curve.
func TestPointAddAssociative(t *testing.T) {
	points := allPoints223(t)
	p, q := pt223(t, 47, 71), pt223(t, 17, 56)
	for _, r := range points {
		lhs := p.Add(q).Add(r)
		rhs := p.Add(q.Add(r))
		if !lhs.Equal(rhs) {
			t.Errorf("(P+Q)+%v = %v, P+(Q+R) = %v", r, lhs, rhs)
		}
	}
}

// TestPointDifferentCurve ensures adding points of different curves panics.
func TestPointDifferentCurve(t *testing.T) {
	// y^2 = x^3 + 7 and y^2 = x^3 + 12 over F_13.
	p := pt(t, 7, 5, 0, 7, 13)
	q := pt(t, 1, 0, 0, 12, 13)
	expectPanic(t, "different b", ErrDifferentCurve, func() { p.Add(q) })

	// Same coefficients but over different fields.
	r := pt223(t, 47, 71)
	expectPanic(t, "different field", ErrDifferentCurve, func() { p.Add(r) })
}

// TestScalarMult checks double-and-add against known multiples.
func TestScalarMult(t *testing.T) {
	p := pt223(t, 47, 71)
	tests := []struct {
		k      int64
		x, y   int64
		infRes bool
	}{
		{k: 1, x: 47, y: 71},
		{k: 2, x: 36, y: 111},
		{k: 4, x: 194, y: 51},
		{k: 8, x: 116, y: 55},
		{k: 20, x: 47, y: 152},
		{k: 21, infRes: true},
		{k: 0, infRes: true},
	}

	for _, test := range tests {
		got := ScalarMult(big.NewInt(test.k), p)
		if test.infRes {
			if !got.IsInfinity() {
				t.Errorf("%d*P: got %v, want infinity", test.k, got)
			}
			continue
		}
		want := pt223(t, test.x, test.y)
		if !got.Equal(want) {
			t.Errorf("%d*P: got %v, want %v", test.k, got, want)
		}
	}

	if got := ScalarMult(big.NewInt(7), pt223(t, 15, 86)); !got.IsInfinity() {
		t.Errorf("7*(15,86): got %v, want infinity", got)
	}
	inf := Infinity[*FieldElement]()
	if got := inf.ScalarMult(big.NewInt(12345)); !got.IsInfinity() {
		t.Errorf("k*inf: got %v, want infinity", got)
	}
}

// TestScalarMultMatchesRepeatedAdd compares double-and-add with naive repeated
// addition and checks negative scalars.
func TestScalarMultMatchesRepeatedAdd(t *testing.T) {
	p := pt223(t, 143, 98)
	acc := Infinity[*FieldElement]()
	for k := int64(0); k < 40; k++ {
		kb := big.NewInt(k)
		if got := ScalarMult(kb, p); !got.Equal(acc) {
			t.Fatalf("%d*P: got %v, want %v", k, got, acc)
		}
		neg := ScalarMult(new(big.Int).Neg(kb), p)
		if !neg.Equal(acc.Neg()) {
			t.Fatalf("-%d*P: got %v, want %v", k, neg, acc.Neg())
		}
		if kb.Int64() != k {
			t.Fatalf("scalar modified: %v", kb)
		}
		acc = acc.Add(p)
	}
}
