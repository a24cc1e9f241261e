package base58

import (
	"encoding/hex"
	"testing"

	mrbase58 "github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEncode(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0}, "1"},
		{[]byte{0, 0, 0}, "111"},
		{[]byte{57}, "z"},
		{[]byte{58}, "21"},
		{[]byte("\x00\x00\x00\x00abc"), "1111ZiCa"},
		{mustHex(t, "7c076ff316692a3d7eb3c3bb0f8b1488cf72e1afcd929e29307032997a838a3d"),
			"9MA8fRQrT4u8Zj8ZRd6MAiiyaxb2Y1CMpvVkHQu5hVM6"},
		{mustHex(t, "eff69ef2b1bd93a66ed5219add4fb51e11a840f404876325a1e8ffe0529a2c"),
			"4fE3H2E6XMp4SsxtwinF7w9a34ooUrwWe4WsW1458Pd"},
		{mustHex(t, "c7207fee197d27c618aea621406f6bf5ef6fca38681d82b2f06fddbdce6feab6"),
			"EQJsjkd6JaGwxrjEhfeqPenqHwrBmPQZjJGNSCHBkcF7"},
	}

	for i, test := range tests {
		assert.Equal(t, test.want, Encode(test.in), "#%d", i)
	}
}

func TestEncodeMatchesReference(t *testing.T) {
	inputs := [][]byte{
		{1},
		{0, 1},
		{0, 0, 0xff, 0xfe},
		[]byte("hello world"),
		mustHex(t, "00010966776006953d5567439e5e39f86a0d273beed61967f6"),
		mustHex(t, "ffffffffffffffffffffffffffffffffffffffffffffffff"),
	}
	for i, in := range inputs {
		assert.Equal(t, mrbase58.Encode(in), Encode(in), "#%d", i)
	}
}

func TestDecode(t *testing.T) {
	inputs := [][]byte{
		{},
		{0},
		{0, 0, 0, 'a', 'b', 'c'},
		[]byte("hello world"),
		mustHex(t, "00010966776006953d5567439e5e39f86a0d273beed61967f6"),
	}
	for i, in := range inputs {
		got, err := Decode(Encode(in))
		require.NoError(t, err, "#%d", i)
		assert.Equal(t, in, got, "#%d", i)
	}

	for _, bad := range []string{"0", "O", "I", "l", "abc!"} {
		_, err := Decode(bad)
		assert.ErrorIs(t, err, ErrInvalidFormat, bad)
	}
}

func TestCheck(t *testing.T) {
	// Version 0x00 followed by the HASH160 of the compressed public key of
	// secret 1.
	payload := mustHex(t, "00751e76e8199196d454941c45d1b3a323f1433bd6")
	s := CheckEncode(payload)
	assert.Equal(t, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", s)

	got, err := CheckDecode(s)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// Changing any character breaks the checksum.
	tampered := []byte(s)
	tampered[5] = '2'
	if tampered[5] == s[5] {
		tampered[5] = '3'
	}
	_, err = CheckDecode(string(tampered))
	assert.ErrorIs(t, err, ErrChecksum)

	_, err = CheckDecode("1111")
	assert.ErrorIs(t, err, ErrTooShort)

	_, err = CheckDecode("0OIl")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
