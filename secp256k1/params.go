package secp256k1

import (
	"math/big"

	"github.com/ModChain/ecc"
)

// The values below are the secp256k1 domain parameters from [SEC2] section
// 2.4.1.  They are set up once during package initialization and never
// modified afterwards, so they are safe for concurrent use.  Exported accessors
// hand out copies of the big integers.
//
//	[SEC2]: Recommended Elliptic Curve Domain Parameters
//	  https://www.secg.org/sec2-v2.pdf
var (
	// curveP is the field prime 2^256 - 2^32 - 977.
	curveP = new(big.Int).Sub(
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256),
			new(big.Int).Lsh(big.NewInt(1), 32)),
		big.NewInt(977))

	// curveN is the order of the group generated by G.
	curveN = hexToBigInt("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	// halfOrder is floor(N/2) and is used for low-S normalization.
	halfOrder = new(big.Int).Rsh(curveN, 1)

	// sqrtExp is (P+1)/4.  Since P = 3 mod 4, x^sqrtExp is a square root of x
	// whenever one exists.
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(curveP, big.NewInt(1)), 2)

	// nMinus2 is the exponent used for inversion modulo N.
	nMinus2 = new(big.Int).Sub(curveN, big.NewInt(2))

	// curveA and curveB are the curve coefficients of y^2 = x^3 + 7.
	curveA = mustFieldVal(big.NewInt(0))
	curveB = mustFieldVal(big.NewInt(7))

	// generator is the base point G.
	generator = mustPoint(
		hexToBigInt("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		hexToBigInt("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"))
)

// hexToBigInt converts the passed hex string into a big integer and panics if
// there is an error.  It is only intended for hard-coded constants.
func hexToBigInt(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

// mustFieldVal returns v reduced into the secp256k1 field.
func mustFieldVal(v *big.Int) *ecc.FieldElement {
	f, err := ecc.NewFieldElement(new(big.Int).Mod(v, curveP), curveP)
	if err != nil {
		panic(err)
	}
	return f
}

// mustPoint returns the point (x, y) and panics if it is not on the curve.  It
// is only intended for hard-coded constants.
func mustPoint(x, y *big.Int) *Point {
	p, err := NewPoint(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// P returns the secp256k1 field prime.
func P() *big.Int {
	return new(big.Int).Set(curveP)
}

// N returns the order of the secp256k1 base point.
func N() *big.Int {
	return new(big.Int).Set(curveN)
}

// HalfOrder returns floor(N/2).
func HalfOrder() *big.Int {
	return new(big.Int).Set(halfOrder)
}

// G returns the secp256k1 base point.  Points are immutable so the shared
// value is returned.
func G() *Point {
	return generator
}
