package secp256k1

import (
	"crypto/sha256"
	"math/big"

	"github.com/ModChain/ecc/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// Version bytes of P2PKH addresses.
const (
	MainNetPubKeyHashAddrID = 0x00
	TestNetPubKeyHashAddrID = 0x6f
)

// HashMessage returns SHA-256(SHA-256(msg)) as the integer digest used by
// Sign and Verify.
func HashMessage(msg []byte) *big.Int {
	return new(big.Int).SetBytes(chainhash.DoubleHashB(msg))
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	sum := sha256.Sum256(buf)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// Hash160 returns the HASH160 of the compressed or uncompressed serialization
// of the key.
func (p *PublicKey) Hash160(compressed bool) []byte {
	return Hash160(serializePoint(p.point, compressed))
}

// Address returns the Base58Check encoded pay-to-pubkey-hash address of the
// key.
func (p *PublicKey) Address(compressed, testnet bool) string {
	prefix := byte(MainNetPubKeyHashAddrID)
	if testnet {
		prefix = TestNetPubKeyHashAddrID
	}
	payload := make([]byte, 0, 21)
	payload = append(payload, prefix)
	payload = append(payload, p.Hash160(compressed)...)
	return base58.CheckEncode(payload)
}
