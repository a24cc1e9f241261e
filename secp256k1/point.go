// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"

	"github.com/ModChain/ecc"
)

// Point is a point on the secp256k1 curve, or the point at infinity.  It is the
// generic curve point instantiated with elements of the secp256k1 field, so
// equality and addition follow the generic rules.
type Point = ecc.Point[*ecc.FieldElement]

// NewFieldVal returns v as an element of the secp256k1 field.  It returns
// ecc.ErrOutOfRange when v is negative or not less than P.
func NewFieldVal(v *big.Int) (*ecc.FieldElement, error) {
	return ecc.NewFieldElement(v, curveP)
}

// Sqrt returns a square root of e computed as e^((P+1)/4).
//
// The result is only a square root when e is a quadratic residue.  Callers
// that cannot rule out a non-residue must square the result and compare.  The
// other root is the negation of the returned one.
func Sqrt(e *ecc.FieldElement) *ecc.FieldElement {
	return e.Pow(sqrtExp)
}

// NewPoint returns the affine point (x, y) on secp256k1.  It returns
// ecc.ErrOutOfRange when a coordinate is not in [0, P) and
// ecc.ErrPointNotOnCurve when (x, y) does not satisfy y^2 = x^3 + 7.
func NewPoint(x, y *big.Int) (*Point, error) {
	fx, err := NewFieldVal(x)
	if err != nil {
		return nil, err
	}
	fy, err := NewFieldVal(y)
	if err != nil {
		return nil, err
	}
	return ecc.NewPoint(fx, fy, curveA, curveB)
}

// Infinity returns the point at infinity.
func Infinity() *Point {
	return ecc.Infinity[*ecc.FieldElement]()
}

// isCurvePoint reports whether p is a point on secp256k1 rather than some
// other curve sharing the generic point type.
func isCurvePoint(p *Point) bool {
	if p == nil {
		return false
	}
	if p.IsInfinity() {
		return true
	}
	return p.A().Equal(curveA) && p.B().Equal(curveB)
}

// ScalarMult returns k*p.  The scalar is first reduced modulo N, since every
// point of the group has an order dividing N.
func ScalarMult(k *big.Int, p *Point) *Point {
	return ecc.ScalarMult(new(big.Int).Mod(k, curveN), p)
}

// ScalarBaseMult returns k*G.  The scalar is first reduced modulo N.
func ScalarBaseMult(k *big.Int) *Point {
	return ScalarMult(k, generator)
}
