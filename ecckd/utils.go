package ecckd

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

func doubleSha256(in []byte) []byte {
	return chainhash.DoubleHashB(in)
}

// leftPad32 returns b left padded with zeros to 32 bytes.
func leftPad32(b []byte) []byte {
	if len(b) >= 32 {
		return b
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}
