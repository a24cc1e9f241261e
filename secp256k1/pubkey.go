// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ModChain/ecc"
)

// These constants define the lengths of serialized public keys.
const (
	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed public key.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the number of bytes of a serialized
	// uncompressed public key.
	PubKeyBytesLenUncompressed = 65
)

const (
	// pubkeyCompressed is the header byte for a compressed secp256k1 pubkey
	// with an even y coordinate.
	pubkeyCompressed byte = 0x2 // y_bit + x coord

	// pubkeyCompressedOdd is the header byte for a compressed secp256k1 pubkey
	// with an odd y coordinate.
	pubkeyCompressedOdd byte = 0x3

	// pubkeyUncompressed is the header byte for an uncompressed secp256k1
	// pubkey.
	pubkeyUncompressed byte = 0x4 // x coord + y coord
)

// EncodeSEC serializes an affine point in the SEC format of [SEC1] section
// 2.3.3.
//
// The compressed format is 33 bytes: 0x02 for an even y coordinate or 0x03 for
// an odd one, followed by the 32-byte big-endian x coordinate.  The
// uncompressed format is 65 bytes: 0x04 followed by the 32-byte big-endian x
// and y coordinates.
//
// The point at infinity has no encoding and yields ErrCannotEncodeInfinity.
// A point of a curve other than secp256k1 yields ErrPubKeyNotOnCurve.
//
//	[SEC1]: Elliptic Curve Cryptography (May 31, 2009, Version 2.0)
//	  https://www.secg.org/sec1-v2.pdf
func EncodeSEC(p *Point, compressed bool) ([]byte, error) {
	if p == nil || p.IsInfinity() {
		return nil, makeError(ErrCannotEncodeInfinity,
			"the point at infinity has no SEC encoding")
	}
	if !isCurvePoint(p) {
		str := fmt.Sprintf("point %v is not on the secp256k1 curve", p)
		return nil, makeError(ErrPubKeyNotOnCurve, str)
	}
	return serializePoint(p, compressed), nil
}

// serializePoint encodes an affine secp256k1 point without validation.
func serializePoint(p *Point, compressed bool) []byte {
	if compressed {
		b := make([]byte, PubKeyBytesLenCompressed)
		b[0] = pubkeyCompressed
		if p.Y().IsOdd() {
			b[0] = pubkeyCompressedOdd
		}
		p.X().FillBytes(b[1:33])
		return b
	}

	b := make([]byte, PubKeyBytesLenUncompressed)
	b[0] = pubkeyUncompressed
	p.X().FillBytes(b[1:33])
	p.Y().FillBytes(b[33:65])
	return b
}

// ParseSEC parses a compressed or uncompressed SEC encoded point.
//
// For the uncompressed format the coordinates are read directly and the point
// is checked against the curve equation.  For the compressed format y is
// recovered as a square root of x^3 + 7, choosing between the two roots beta
// and P - beta by the parity encoded in the format byte.
func ParseSEC(b []byte) (*Point, error) {
	if len(b) == 0 {
		return nil, makeError(ErrPubKeyInvalidLen,
			"malformed public key: empty input")
	}

	switch format := b[0]; format {
	case pubkeyUncompressed:
		if len(b) != PubKeyBytesLenUncompressed {
			str := fmt.Sprintf("malformed public key: invalid length: %d, "+
				"want %d", len(b), PubKeyBytesLenUncompressed)
			return nil, makeError(ErrPubKeyInvalidLen, str)
		}
		x := new(big.Int).SetBytes(b[1:33])
		y := new(big.Int).SetBytes(b[33:65])
		if x.Cmp(curveP) >= 0 {
			str := "invalid public key: x >= field prime"
			return nil, makeError(ErrPubKeyXTooBig, str)
		}
		if y.Cmp(curveP) >= 0 {
			str := "invalid public key: y >= field prime"
			return nil, makeError(ErrPubKeyYTooBig, str)
		}
		p, err := NewPoint(x, y)
		if err != nil {
			if errors.Is(err, ecc.ErrPointNotOnCurve) {
				str := fmt.Sprintf("invalid public key: (%x, %x) is "+
					"not on the secp256k1 curve", x, y)
				return nil, makeError(ErrPubKeyNotOnCurve, str)
			}
			return nil, err
		}
		return p, nil

	case pubkeyCompressed, pubkeyCompressedOdd:
		if len(b) != PubKeyBytesLenCompressed {
			str := fmt.Sprintf("malformed public key: invalid length: %d, "+
				"want %d", len(b), PubKeyBytesLenCompressed)
			return nil, makeError(ErrPubKeyInvalidLen, str)
		}
		x := new(big.Int).SetBytes(b[1:33])
		if x.Cmp(curveP) >= 0 {
			str := "invalid public key: x >= field prime"
			return nil, makeError(ErrPubKeyXTooBig, str)
		}
		y, err := decompressY(mustFieldVal(x), format == pubkeyCompressedOdd)
		if err != nil {
			return nil, err
		}
		return NewPoint(x, y)

	default:
		str := fmt.Sprintf("malformed public key: invalid format: %#x", format)
		return nil, makeError(ErrInvalidSECPrefix, str)
	}
}

// decompressY returns the y coordinate with the requested parity for the
// given x coordinate, or ErrPubKeyNotOnCurve when x^3 + 7 has no square root.
func decompressY(x *ecc.FieldElement, odd bool) (*big.Int, error) {
	// alpha = x^3 + 7, beta = sqrt(alpha)
	alpha := x.Mul(x).Mul(x).Add(curveB)
	beta := Sqrt(alpha)
	if !beta.Mul(beta).Equal(alpha) {
		str := fmt.Sprintf("invalid public key: x coordinate %s is not on "+
			"the secp256k1 curve", x.Hex())
		return nil, makeError(ErrPubKeyNotOnCurve, str)
	}
	if beta.IsOdd() != odd {
		beta = beta.Neg()
	}
	return beta.Num(), nil
}

// PublicKey is a secp256k1 public key: an affine point of the curve other than
// the point at infinity.
type PublicKey struct {
	point *Point
}

// NewPublicKey returns a public key for the given point.  It returns
// ErrInfinityPoint for the point at infinity and ErrPubKeyNotOnCurve for a
// point of another curve.
func NewPublicKey(p *Point) (*PublicKey, error) {
	if p == nil || p.IsInfinity() {
		return nil, makeError(ErrInfinityPoint,
			"public key cannot be the point at infinity")
	}
	if !isCurvePoint(p) {
		str := fmt.Sprintf("point %v is not on the secp256k1 curve", p)
		return nil, makeError(ErrPubKeyNotOnCurve, str)
	}
	return &PublicKey{point: p}, nil
}

// ParsePubKey parses a secp256k1 public key encoded in the compressed or
// uncompressed SEC format.
func ParsePubKey(serialized []byte) (*PublicKey, error) {
	p, err := ParseSEC(serialized)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: p}, nil
}

// Point returns the curve point of the key.
func (p *PublicKey) Point() *Point {
	return p.point
}

// X returns a copy of the x coordinate of the public key.
func (p *PublicKey) X() *big.Int {
	return p.point.X().Num()
}

// Y returns a copy of the y coordinate of the public key.
func (p *PublicKey) Y() *big.Int {
	return p.point.Y().Num()
}

// SerializeCompressed serializes the public key in the 33-byte compressed
// format.
func (p *PublicKey) SerializeCompressed() []byte {
	return serializePoint(p.point, true)
}

// SerializeUncompressed serializes the public key in the 65-byte uncompressed
// format.
func (p *PublicKey) SerializeUncompressed() []byte {
	return serializePoint(p.point, false)
}

// IsEqual compares this public key instance to the one passed, returning true
// if both public keys are equivalent.
func (p *PublicKey) IsEqual(otherPubKey *PublicKey) bool {
	return p.point.Equal(otherPubKey.point)
}

// String returns the compressed serialization in hex.
func (p *PublicKey) String() string {
	return fmt.Sprintf("%x", p.SerializeCompressed())
}
