// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/ModChain/ecc"
	"github.com/davecgh/go-spew/spew"
	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// TestEncodeSECVectors ensures known secrets serialize to the expected bytes.
func TestEncodeSECVectors(t *testing.T) {
	tests := []struct {
		name       string
		secret     *big.Int
		compressed bool
		want       string
	}{{
		name:   "5000 uncompressed",
		secret: big.NewInt(5000),
		want: "04ffe558e388852f0120e46af2d1b370f85854a8eb0841811ece0e3e03d28" +
			"2d57c315dc72890a4f10a1481c031b03b351b0dc79901ca18a00cf009dbdb15" +
			"7a1d10",
	}, {
		name:       "5000 compressed",
		secret:     big.NewInt(5000),
		compressed: true,
		want:       "02ffe558e388852f0120e46af2d1b370f85854a8eb0841811ece0e3e03d282d57c",
	}, {
		name:       "5001 compressed",
		secret:     big.NewInt(5001),
		compressed: true,
		want:       "0357a4f368868a8a6d572991e484e664810ff14c05c0fa023275251151fe0e53d1",
	}, {
		name:       "1 compressed",
		secret:     big.NewInt(1),
		compressed: true,
		want:       "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	}}

	for _, test := range tests {
		got, err := EncodeSEC(ScalarBaseMult(test.secret), test.compressed)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		want := hexToBytes(test.want)
		if !bytes.Equal(got, want) {
			t.Errorf("%s: mismatched serialization:\ngot: %x\nwant: %x",
				test.name, got, want)
			continue
		}

		// Parsing must give back the same point.
		p, err := ParseSEC(got)
		if err != nil {
			t.Errorf("%s: unexpected parse error: %v", test.name, err)
			continue
		}
		if !p.Equal(ScalarBaseMult(test.secret)) {
			t.Errorf("%s: mismatched point:\ngot: %v\nwant: %v", test.name,
				spew.Sdump(p), spew.Sdump(ScalarBaseMult(test.secret)))
		}
	}
}

// TestSECRoundTrip ensures both formats round trip for points of either
// y parity and that the compressed form matches dcrd.
func TestSECRoundTrip(t *testing.T) {
	secrets := []string{
		"01",
		"02",
		"03",
		"0123456789abcdef",
		"deadbeef12345",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
		"c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00",
	}

	for _, s := range secrets {
		secret := hexToBigInt(s)
		p := ScalarBaseMult(secret)
		for _, compressed := range []bool{true, false} {
			b, err := EncodeSEC(p, compressed)
			if err != nil {
				t.Errorf("%s: unexpected error: %v", s, err)
				continue
			}
			got, err := ParseSEC(b)
			if err != nil {
				t.Errorf("%s: unexpected parse error: %v", s, err)
				continue
			}
			if !got.Equal(p) {
				t.Errorf("%s: round trip (compressed %v) mismatch", s,
					compressed)
			}
		}

		var buf [32]byte
		secret.FillBytes(buf[:])
		dcrPub := dcrsecp.PrivKeyFromBytes(buf[:]).PubKey()
		priv, err := PrivKeyFromBytes(buf[:])
		if err != nil {
			t.Errorf("%s: unexpected error: %v", s, err)
			continue
		}
		if !bytes.Equal(priv.PubKey().SerializeCompressed(),
			dcrPub.SerializeCompressed()) {

			t.Errorf("%s: compressed key mismatch with dcrd", s)
		}
		if !bytes.Equal(priv.PubKey().SerializeUncompressed(),
			dcrPub.SerializeUncompressed()) {

			t.Errorf("%s: uncompressed key mismatch with dcrd", s)
		}
	}
}

// TestParseSECErrors ensures malformed keys are rejected with the expected
// error kind.
func TestParseSECErrors(t *testing.T) {
	gx := G().X().Hex()
	gy := G().Y().Hex()
	pHex := "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"
	tests := []struct {
		name string
		key  []byte
		err  ErrorKind
	}{{
		name: "empty",
		key:  nil,
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "bad prefix",
		key:  hexToBytes("05" + gx),
		err:  ErrInvalidSECPrefix,
	}, {
		name: "hybrid format",
		key:  hexToBytes("06" + gx + gy),
		err:  ErrInvalidSECPrefix,
	}, {
		name: "uncompressed too short",
		key:  hexToBytes("04" + gx + gy[:62]),
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "compressed too long",
		key:  hexToBytes("02" + gx + "00"),
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "uncompressed x >= P",
		key:  hexToBytes("04" + pHex + gy),
		err:  ErrPubKeyXTooBig,
	}, {
		name: "uncompressed y >= P",
		key:  hexToBytes("04" + gx + pHex),
		err:  ErrPubKeyYTooBig,
	}, {
		name: "compressed x >= P",
		key:  hexToBytes("03" + pHex),
		err:  ErrPubKeyXTooBig,
	}, {
		name: "uncompressed off curve",
		key:  hexToBytes("04" + gx + gx),
		err:  ErrPubKeyNotOnCurve,
	}, {
		// 5^3 + 7 is not a square modulo P.
		name: "compressed x without root",
		key:  hexToBytes("02" + mustFieldVal(big.NewInt(5)).Hex()),
		err:  ErrPubKeyNotOnCurve,
	}}

	for _, test := range tests {
		_, err := ParseSEC(test.key)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if _, err := ParsePubKey(test.key); !errors.Is(err, test.err) {
			t.Errorf("%s: ParsePubKey mismatched err -- got %v, want %v",
				test.name, err, test.err)
		}
	}
}

// TestEncodeSECErrors ensures points without an encoding are rejected.
func TestEncodeSECErrors(t *testing.T) {
	if _, err := EncodeSEC(Infinity(), true); !errors.Is(err, ErrCannotEncodeInfinity) {
		t.Fatalf("infinity: mismatched err -- got %v", err)
	}

	f := func(v int64) *ecc.FieldElement {
		e, err := ecc.NewFieldElementInt64(v, 223)
		if err != nil {
			t.Fatal(err)
		}
		return e
	}
	other, err := ecc.NewPoint(f(192), f(105), f(0), f(7))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := EncodeSEC(other, false); !errors.Is(err, ErrPubKeyNotOnCurve) {
		t.Fatalf("foreign curve: mismatched err -- got %v", err)
	}
	if _, err := NewPublicKey(other); !errors.Is(err, ErrPubKeyNotOnCurve) {
		t.Fatalf("foreign curve: mismatched err -- got %v", err)
	}
	if _, err := NewPublicKey(Infinity()); !errors.Is(err, ErrInfinityPoint) {
		t.Fatalf("infinity: mismatched err -- got %v", err)
	}
}

// TestPublicKeyAccessors ensures the accessors agree with the point.
func TestPublicKeyAccessors(t *testing.T) {
	pub, err := NewPublicKey(G())
	if err != nil {
		t.Fatal(err)
	}
	if pub.X().Cmp(G().X().Num()) != 0 || pub.Y().Cmp(G().Y().Num()) != 0 {
		t.Fatal("coordinate mismatch")
	}
	want := "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	if pub.String() != want {
		t.Fatalf("unexpected string %s, want %s", pub, want)
	}
	other, _ := ParsePubKey(hexToBytes(want))
	if !pub.IsEqual(other) {
		t.Fatal("parsed key differs")
	}
}
