package secp256k1

import (
	"fmt"

	"github.com/ModChain/ecc/base58"
)

// Version bytes of wallet import format private keys.
const (
	MainNetPrivKeyID = 0x80
	TestNetPrivKeyID = 0xef
)

// compressMagic is the byte appended to the secret of a WIF private key whose
// public key is meant to be serialized in the compressed format.
const compressMagic byte = 0x01

// WIF returns the private key in wallet import format:
//
//	version (1) || secret (32) || [0x01 if compressed] || checksum (4)
//
// encoded with Base58.
func (p *PrivateKey) WIF(compressed, testnet bool) string {
	prefix := byte(MainNetPrivKeyID)
	if testnet {
		prefix = TestNetPrivKeyID
	}
	payload := make([]byte, 0, 1+PrivKeyBytesLen+1)
	payload = append(payload, prefix)
	payload = append(payload, p.Serialize()...)
	if compressed {
		payload = append(payload, compressMagic)
	}
	return base58.CheckEncode(payload)
}

// ParseWIF decodes a wallet import format private key.  Besides the key it
// reports whether the public key is meant to be compressed and whether the
// version byte is the testnet one.
func ParseWIF(wif string) (key *PrivateKey, compressed, testnet bool, err error) {
	payload, err := base58.CheckDecode(wif)
	if err != nil {
		str := fmt.Sprintf("malformed WIF: %v", err)
		return nil, false, false, makeError(ErrInvalidWIF, str)
	}

	switch len(payload) {
	case 1 + PrivKeyBytesLen:
	case 1 + PrivKeyBytesLen + 1:
		if payload[len(payload)-1] != compressMagic {
			str := fmt.Sprintf("malformed WIF: bad compression flag %#x",
				payload[len(payload)-1])
			return nil, false, false, makeError(ErrInvalidWIF, str)
		}
		compressed = true
	default:
		str := fmt.Sprintf("malformed WIF: invalid payload length %d",
			len(payload))
		return nil, false, false, makeError(ErrInvalidWIF, str)
	}

	switch payload[0] {
	case MainNetPrivKeyID:
	case TestNetPrivKeyID:
		testnet = true
	default:
		str := fmt.Sprintf("malformed WIF: unknown version %#x", payload[0])
		return nil, false, false, makeError(ErrInvalidWIF, str)
	}

	key, err = PrivKeyFromBytes(payload[1 : 1+PrivKeyBytesLen])
	if err != nil {
		str := fmt.Sprintf("malformed WIF: %v", err)
		return nil, false, false, makeError(ErrInvalidWIF, str)
	}
	return key, compressed, testnet, nil
}
