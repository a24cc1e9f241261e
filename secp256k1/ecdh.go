// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// GenerateSharedSecret generates a shared secret based on a private key and a
// public key using Diffie-Hellman key exchange (ECDH) (RFC 5903).
// RFC5903 Section 9 states we should only return x.
//
// It is recommended to securely hash the result before using as a cryptographic
// key.
//
// It returns nil when pubkey does not hold a finite curve point.
func GenerateSharedSecret(privkey *PrivateKey, pubkey *PublicKey) []byte {
	if pubkey == nil || pubkey.point == nil || pubkey.point.IsInfinity() {
		return nil
	}
	result := ScalarMult(privkey.secret, pubkey.point)
	xBytes := result.X().Bytes32()
	return xBytes[:]
}

// ECDH generates a shared secret and is an alias to GenerateSharedSecret, however
// by being part of the private key it is closer to go's own ecdh api.
func (privkey *PrivateKey) ECDH(remote *PublicKey) ([]byte, error) {
	if remote == nil || !isCurvePoint(remote.point) || remote.point.IsInfinity() {
		return nil, makeError(ErrPubKeyNotOnCurve,
			"remote public key is not a secp256k1 point")
	}
	return GenerateSharedSecret(privkey, remote), nil
}
