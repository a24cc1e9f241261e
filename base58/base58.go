// Package base58 implements the Bitcoin flavour of Base58 and Base58Check.
package base58

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	mrbase58 "github.com/mr-tron/base58"
)

// Alphabet is the Bitcoin Base58 alphabet.  It omits 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var (
	ErrInvalidFormat = errors.New("invalid base58 string")
	ErrChecksum      = errors.New("base58 checksum mismatch")
	ErrTooShort      = errors.New("base58check payload too short")
)

var bigRadix = big.NewInt(58)

// Encode returns the Base58 encoding of b.  Every leading zero byte becomes a
// leading '1', and the rest is the big-endian value of b written in base 58.
func Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	num := new(big.Int).SetBytes(b[zeros:])
	mod := new(big.Int)
	digits := make([]byte, 0, len(b)*138/100+1)
	for num.Sign() > 0 {
		num.DivMod(num, bigRadix, mod)
		digits = append(digits, Alphabet[mod.Int64()])
	}

	out := make([]byte, zeros, zeros+len(digits))
	for i := range out {
		out[i] = Alphabet[0]
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}

// Decode returns the bytes represented by the Base58 string s.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	b, err := mrbase58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return b, nil
}

// checksum returns the first four bytes of SHA-256d(payload).
func checksum(payload []byte) []byte {
	return chainhash.DoubleHashB(payload)[:4]
}

// CheckEncode appends the four byte checksum to payload and encodes the result.
// The caller provides the version byte as part of payload.
func CheckEncode(payload []byte) string {
	b := make([]byte, 0, len(payload)+4)
	b = append(b, payload...)
	b = append(b, checksum(payload)...)
	return Encode(b)
}

// CheckDecode decodes s and verifies its trailing checksum, returning the
// payload without it.
func CheckDecode(s string) ([]byte, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) < 5 {
		return nil, ErrTooShort
	}
	payload, sum := b[:len(b)-4], b[len(b)-4:]
	if !bytes.Equal(checksum(payload), sum) {
		return nil, ErrChecksum
	}
	return payload, nil
}
