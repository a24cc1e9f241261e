// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey provides facilities for working with secp256k1 private keys.  The
// public point secret*G is derived once at construction.
type PrivateKey struct {
	secret *big.Int
	pubKey *PublicKey
}

// NewPrivateKey returns the private key for the given secret.  The secret must
// be in the range [1, N-1], otherwise ErrInvalidSecret is returned.
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	if secret == nil || secret.Sign() <= 0 || secret.Cmp(curveN) >= 0 {
		return nil, makeError(ErrInvalidSecret,
			"private key secret must be in the range [1, N-1]")
	}
	d := new(big.Int).Set(secret)
	return &PrivateKey{
		secret: d,
		pubKey: &PublicKey{point: ScalarBaseMult(d)},
	}, nil
}

// PrivKeyFromBytes returns a private key for the secret encoded as a
// big-endian unsigned integer.
func PrivKeyFromBytes(pk []byte) (*PrivateKey, error) {
	return NewPrivateKey(new(big.Int).SetBytes(pk))
}

// GeneratePrivateKey returns a private key that is suitable for use with
// secp256k1 using the cryptographically secure source of randomness provided
// by crypto/rand.
func GeneratePrivateKey() (*PrivateKey, error) {
	return GeneratePrivateKeyFromRand(rand.Reader)
}

// GeneratePrivateKeyFromRand returns a private key whose secret is drawn
// uniformly from [1, N-1] using the passed reader.
func GeneratePrivateKeyFromRand(r io.Reader) (*PrivateKey, error) {
	d, err := randScalar(r)
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(d)
}

// randScalar draws an integer uniformly from [1, N-1].
func randScalar(r io.Reader) (*big.Int, error) {
	limit := new(big.Int).Sub(curveN, one)
	k, err := rand.Int(r, limit)
	if err != nil {
		return nil, fmt.Errorf("unable to read random scalar: %w", err)
	}
	return k.Add(k, one), nil
}

var one = big.NewInt(1)

// Secret returns a copy of the secret scalar.
func (p *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(p.secret)
}

// PubKey returns the public key corresponding to this private key.
func (p *PrivateKey) PubKey() *PublicKey {
	return p.pubKey
}

// Serialize returns the private key as a 32-byte big-endian number.
func (p *PrivateKey) Serialize() []byte {
	b := make([]byte, PrivKeyBytesLen)
	return p.secret.FillBytes(b)
}

// Hex returns the secret as 64 zero-padded lowercase hex digits.
func (p *PrivateKey) Hex() string {
	return fmt.Sprintf("%064x", p.secret)
}
