package secp256k1

import (
	"crypto"
	"io"
)

// SignOptions can be passed to [PrivateKey.Sign].
type SignOptions struct {
	Hash crypto.Hash
}

func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// Public returns the public key corresponding to this private key.  Along with
// Sign it makes *PrivateKey a crypto.Signer.
func (privkey *PrivateKey) Public() crypto.PublicKey {
	return privkey.pubKey
}

// Sign will sign the provided digest, returning the DER encoded signature.
// [SignOptions] can be used to pass options.
//
// A nil rand selects the deterministic RFC6979 nonce, otherwise the nonce is
// drawn from rand.
func (privkey *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	if rand == nil {
		return SignRFC6979(privkey, digest).Serialize(), nil
	}

	z := hashToInt(digest)
	for {
		k, err := randScalar(rand)
		if err != nil {
			return nil, err
		}
		sig, err := signWithNonce(privkey.secret, z, k)
		if err == nil {
			return sig.Serialize(), nil
		}
	}
}
