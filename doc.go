// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecc implements exact arithmetic in prime fields and the elliptic curve
group law for short Weierstrass curves y^2 = x^3 + ax + b in pure Go.

The package is generic over the coordinate type.  Any type satisfying the
Element contract (add, subtract, multiply, divide, exponentiate, compare) can
be used for the coordinates of a Point, and FieldElement is the provided
implementation over F_p backed by math/big.  The secp256k1 sub package builds
the Bitcoin curve on top of these primitives, so the group law is written only
once for both small teaching curves and the production curve.

An overview of the features provided by this package are as follows:

  - FieldElement type for working modulo an arbitrary prime
  - Modular exponentiation with negative exponents via Fermat's little theorem
  - Division by modular inverse
  - Point type with the point at infinity as its zero value
  - Point addition including the vertical line and vertical tangent cases
  - Point doubling and negation
  - Scalar multiplication via binary double-and-add

None of the arithmetic is constant time and it must not be used where timing
side channels matter.

Errors that stem from bad input, such as a value outside the field or a point
that does not satisfy the curve equation, are returned as an Error wrapping an
ErrorKind.  Combining elements of different fields or points of different
curves is a programming error and panics with an Error value of the same shape,
much like math/big panics on division by zero.
*/
package ecc
