// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)
//
//   [ISO/IEC 8825-1]: Information technology - ASN.1 encoding rules:
//     Specification of Basic Encoding Rules (BER), Canonical Encoding Rules
//     (CER) and Distinguished Encoding Rules (DER)
//
//   [RFC6979]: Deterministic Usage of the Digital Signature Algorithm (DSA)
//     and Elliptic Curve Digital Signature Algorithm (ECDSA)

// Signature is a type representing an ECDSA signature.
type Signature struct {
	r *big.Int
	s *big.Int
}

// NewSignature instantiates a new signature given some R,S values.  Valid
// signatures have both values in [1, N-1]; anything else never verifies.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{r: new(big.Int).Set(r), s: new(big.Int).Set(s)}
}

// R returns a copy of the r component.
func (sig *Signature) R() *big.Int {
	return new(big.Int).Set(sig.r)
}

// S returns a copy of the s component.
func (sig *Signature) S() *big.Int {
	return new(big.Int).Set(sig.s)
}

// IsEqual compares this Signature instance to the one passed, returning true if
// both Signatures are equivalent.  A signature is equivalent to another, if
// they both have the same scalar value for R and S.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	return sig.r.Cmp(otherSig.r) == 0 && sig.s.Cmp(otherSig.s) == 0
}

// String returns the signature as Signature(r,s) with both values in hex.
func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(%064x,%064x)", sig.r, sig.s)
}

// hashToInt converts a message digest into the integer z used by ECDSA.  Only
// the leftmost 256 bits of longer digests are used.
func hashToInt(hash []byte) *big.Int {
	if len(hash) > 32 {
		hash = hash[:32]
	}
	return new(big.Int).SetBytes(hash)
}

// Sign produces an ECDSA signature of the digest z with the given private key.
//
// When nonce is nil a fresh nonce is drawn uniformly from [1, N-1] using
// crypto/rand.  A fixed nonce may be passed to reproduce known test vectors;
// it must never be reused across different messages with the same key.
//
// ErrInfinityPoint is returned when the nonce is a multiple of N, and
// ErrSigRIsZero or ErrSigSIsZero when the nonce leads to a degenerate
// signature.  In any of these cases the caller may retry with a new nonce.  The
// returned s is always normalized to the lower half of the group order.
func Sign(key *PrivateKey, z, nonce *big.Int) (*Signature, error) {
	k := nonce
	if k == nil {
		var err error
		k, err = randScalar(rand.Reader)
		if err != nil {
			return nil, err
		}
	}
	return signWithNonce(key.secret, z, k)
}

// signWithNonce implements ECDSA signing for a given nonce.
func signWithNonce(secret, z, nonce *big.Int) (*Signature, error) {
	// R = kG
	k := new(big.Int).Mod(nonce, curveN)
	bigR := ScalarBaseMult(k)
	if bigR.IsInfinity() {
		return nil, makeError(ErrInfinityPoint,
			"signing nonce produced the point at infinity")
	}

	// r = R.x mod N
	r := bigR.X().Num()
	r.Mod(r, curveN)
	if r.Sign() == 0 {
		return nil, signatureError(ErrSigRIsZero,
			"signing nonce produced r = 0")
	}

	// s = (z + r*d) / k mod N, with 1/k = k^(N-2) mod N.
	kInv := new(big.Int).Exp(k, nMinus2, curveN)
	s := new(big.Int).Mul(r, secret)
	s.Add(s, z)
	s.Mul(s, kInv)
	s.Mod(s, curveN)
	if s.Sign() == 0 {
		return nil, signatureError(ErrSigSIsZero,
			"signing nonce produced s = 0")
	}

	// Both s and N-s are valid, so force the lower one to reduce signature
	// malleability.
	if s.Cmp(halfOrder) > 0 {
		s.Sub(curveN, s)
	}
	return &Signature{r: r, s: s}, nil
}

// SignRFC6979 produces a deterministic ECDSA signature of hash according to
// [RFC6979] and BIP0062.  The nonce stream is advanced until it produces a
// usable nonce, so signing always succeeds.
func SignRFC6979(key *PrivateKey, hash []byte) *Signature {
	privKeyBytes := key.Serialize()
	z := hashToInt(hash)
	for iteration := uint32(0); ; iteration++ {
		nonce := dcrsecp.NonceRFC6979(privKeyBytes, hash, nil, nil, iteration)
		nonceBytes := nonce.Bytes()
		nonce.Zero()
		sig, err := signWithNonce(key.secret, z, new(big.Int).SetBytes(nonceBytes[:]))
		if err == nil {
			return sig
		}
	}
}

// Verify returns whether or not the signature is valid for the provided digest
// and secp256k1 public key.
func (sig *Signature) Verify(z *big.Int, pubKey *PublicKey) bool {
	return Verify(pubKey, z, sig)
}

// Verify returns whether or not sig is a valid signature of the digest z by
// the given public key.  It never panics and reports false for any malformed
// input.
func Verify(pubKey *PublicKey, z *big.Int, sig *Signature) bool {
	if pubKey == nil {
		return false
	}
	return VerifyPoint(pubKey.point, z, sig)
}

// VerifyPoint is like Verify but takes the public key as a bare curve point.
func VerifyPoint(pub *Point, z *big.Int, sig *Signature) bool {
	// The algorithm for verifying an ECDSA signature is given as algorithm 4.30
	// in [GECC].
	//
	// 1. Fail if R and S are not in [1, N-1]
	// 2. w = S^-1 mod N
	// 3. u1 = z * w mod N
	//    u2 = R * w mod N
	// 4. X = u1G + u2Q
	// 5. Fail if X is the point at infinity
	// 6. Verified if X.x mod N == R
	if pub == nil || z == nil || sig == nil || sig.r == nil || sig.s == nil {
		return false
	}
	if pub.IsInfinity() || !isCurvePoint(pub) {
		return false
	}

	// Step 1.
	if sig.r.Sign() <= 0 || sig.r.Cmp(curveN) >= 0 {
		return false
	}
	if sig.s.Sign() <= 0 || sig.s.Cmp(curveN) >= 0 {
		return false
	}

	// Step 2.
	w := new(big.Int).Exp(sig.s, nMinus2, curveN)

	// Step 3.
	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, curveN)
	u2 := new(big.Int).Mul(sig.r, w)
	u2.Mod(u2, curveN)

	// Step 4.
	total := ScalarBaseMult(u1).Add(ScalarMult(u2, pub))

	// Step 5.
	if total.IsInfinity() {
		return false
	}

	// Step 6.
	x := total.X().Num()
	return x.Mod(x, curveN).Cmp(sig.r) == 0
}

// Serialize returns the ECDSA signature in the Distinguished Encoding Rules
// (DER) format per section 10 of [ISO/IEC 8825-1].  R and S are encoded modulo
// the group order.
//
// Note that the serialized bytes returned do not include the appended hash type
// used in Bitcoin signature scripts.
func (sig *Signature) Serialize() []byte {
	var r, s dcrsecp.ModNScalar
	r.SetByteSlice(sig.r.Bytes())
	s.SetByteSlice(sig.s.Bytes())
	return ecdsa.NewSignature(&r, &s).Serialize()
}

// derErrorKinds maps the parse failures reported by the dcrd codec onto the
// kinds exported by this package.
var derErrorKinds = []struct {
	from ecdsa.ErrorKind
	to   ErrorKind
}{
	{ecdsa.ErrSigTooShort, ErrSigTooShort},
	{ecdsa.ErrSigTooLong, ErrSigTooLong},
	{ecdsa.ErrSigInvalidSeqID, ErrSigInvalidSeqID},
	{ecdsa.ErrSigInvalidDataLen, ErrSigInvalidDataLen},
	{ecdsa.ErrSigMissingSTypeID, ErrSigMissingSTypeID},
	{ecdsa.ErrSigMissingSLen, ErrSigMissingSLen},
	{ecdsa.ErrSigInvalidSLen, ErrSigInvalidSLen},
	{ecdsa.ErrSigInvalidRIntID, ErrSigInvalidRIntID},
	{ecdsa.ErrSigZeroRLen, ErrSigZeroRLen},
	{ecdsa.ErrSigNegativeR, ErrSigNegativeR},
	{ecdsa.ErrSigTooMuchRPadding, ErrSigTooMuchRPadding},
	{ecdsa.ErrSigRIsZero, ErrSigRIsZero},
	{ecdsa.ErrSigRTooBig, ErrSigRTooBig},
	{ecdsa.ErrSigInvalidSIntID, ErrSigInvalidSIntID},
	{ecdsa.ErrSigZeroSLen, ErrSigZeroSLen},
	{ecdsa.ErrSigNegativeS, ErrSigNegativeS},
	{ecdsa.ErrSigTooMuchSPadding, ErrSigTooMuchSPadding},
	{ecdsa.ErrSigSIsZero, ErrSigSIsZero},
	{ecdsa.ErrSigSTooBig, ErrSigSTooBig},
}

// ParseDERSignature parses a signature in the Distinguished Encoding Rules
// (DER) format per section 10 of [ISO/IEC 8825-1].  Both R and S must be in
// the range [1, N-1].
func ParseDERSignature(sig []byte) (*Signature, error) {
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		for _, k := range derErrorKinds {
			if errors.Is(err, k.from) {
				return nil, signatureError(k.to, err.Error())
			}
		}
		return nil, fmt.Errorf("malformed signature: %w", err)
	}

	r, s := parsed.R(), parsed.S()
	rBytes, sBytes := r.Bytes(), s.Bytes()
	return &Signature{
		r: new(big.Int).SetBytes(rBytes[:]),
		s: new(big.Int).SetBytes(sBytes[:]),
	}, nil
}
