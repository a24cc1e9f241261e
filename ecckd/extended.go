package ecckd

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"math/big"

	"github.com/ModChain/ecc/base58"
	"github.com/ModChain/ecc/secp256k1"
)

// HardenedBit is set in the child index of hardened children.
const HardenedBit = 0x80000000

// serializedKeyLen is the length of a serialized extended key without its
// checksum.
const serializedKeyLen = 4 + 1 + 4 + 4 + 32 + 33

// splitHMAC computes HMAC-SHA512(key, data) and splits it into IL and IR.
// ErrUnusableIL is returned with both halves when IL is zero or not below N.
func splitHMAC(data, key []byte) (il, ir []byte, err error) {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	sum := mac.Sum(nil)

	il, ir = sum[:32], sum[32:]
	v := new(big.Int).SetBytes(il)
	if v.Sign() == 0 || v.Cmp(secp256k1.N()) >= 0 {
		err = ErrUnusableIL
	}
	return il, ir, err
}

type ExtendedKey struct {
	Version     KeyVersion
	Depth       uint8
	Fingerprint [4]byte
	ChildNumber uint32 // ser32(i) for i in xi = xpar/i, with xi the key being serialized. (0x00000000 if master key)
	KeyData     []byte // 33 bytes public key (serP(K)) or 32 bytes private key (ser256(k))
	ChainCode   []byte // 32 bytes, the chain code
}

// FromBitcoinSeed returns a master node for a bitcoin wallet
func FromBitcoinSeed(seed []byte) (*ExtendedKey, error) {
	return FromSeed(seed, []byte("Bitcoin seed"))
}

func FromSeed(seed, masterSecret []byte) (*ExtendedKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrInvalidSeed
	}
	key, chainCode, err := splitHMAC(seed, masterSecret)
	if err != nil {
		return nil, err
	}

	res := &ExtendedKey{
		Version:     BitcoinMainnetPrivate,
		Depth:       0,
		Fingerprint: [4]byte{0, 0, 0, 0},
		ChildNumber: 0,
		KeyData:     key,
		ChainCode:   chainCode,
	}
	return res, nil
}

// FromPublicKey returns a mainnet master public node for pub and chainCode.
func FromPublicKey(pub *secp256k1.PublicKey, chainCode []byte) (*ExtendedKey, error) {
	if pub == nil {
		return nil, ErrInvalidKey
	}
	if len(chainCode) != 32 {
		return nil, ErrInvalidKeyLen
	}
	return &ExtendedKey{
		Version:   BitcoinMainnetPublic,
		KeyData:   pub.SerializeCompressed(),
		ChainCode: append([]byte(nil), chainCode...),
	}, nil
}

func FromString(str string) (*ExtendedKey, error) {
	bin, err := base58.Decode(str)
	if err != nil {
		return nil, err
	}

	e := &ExtendedKey{}
	return e, e.UnmarshalBinary(bin)
}

func (k *ExtendedKey) IsPrivate() bool {
	return k.Version.IsPrivate()
}

// Child derives extended key at a given index i.
// If parent is private, then derived key is also private. If parent is public, then derived is public.
//
// If i >= HardenedKeyStart, then hardened key is generated.
// You can only generate hardened keys from private parent keys.
// If you try generating hardened key form public parent key, ErrDerivingHardenedFromPublic is returned.
//
// There are four CKD (child key derivation) scenarios:
// 1) Private extended key -> Hardened child private extended key
// 2) Private extended key -> Non-hardened child private extended key
// 3) Public extended key -> Non-hardened child public extended key
// 4) Public extended key -> Hardened child public extended key (INVALID!)
func (k *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	child, _, err := k.childWithIL(i)
	return child, err
}

// childWithIL derives the child at index i and also returns parse256(IL), the
// scalar added to the parent key.
func (k *ExtendedKey) childWithIL(i uint32) (*ExtendedKey, *big.Int, error) {
	if k.Depth == 0xff {
		return nil, nil, ErrMaxDepthExceeded
	}

	// A hardened child may not be created from a public extended key (Case #4).
	isChildHardened := i&HardenedBit == HardenedBit
	if !k.IsPrivate() && isChildHardened {
		return nil, nil, ErrDerivingHardenedFromPublic
	}

	parentPub, err := k.pubKeyBytes()
	if err != nil {
		return nil, nil, err
	}

	keyLen := 33
	seed := make([]byte, keyLen+4)
	if isChildHardened {
		// Case #1: 0x00 || ser256(parentKey) || ser32(i)
		copy(seed[1:], leftPad32(k.KeyData))
	} else {
		// Case #2 and #3: serP(parentPubKey) || ser32(i)
		copy(seed, parentPub)
	}
	binary.BigEndian.PutUint32(seed[keyLen:], i)

	il, chainCode, err := splitHMAC(seed, k.ChainCode)
	if err != nil {
		return nil, nil, err
	}
	ilNum := new(big.Int).SetBytes(il)

	child := &ExtendedKey{
		ChainCode:   chainCode,
		Depth:       k.Depth + 1,
		ChildNumber: i,
		Version:     k.Version,
	}
	// The fingerprint of the child is the first 4 bytes of the parent's
	// HASH160.
	copy(child.Fingerprint[:], secp256k1.Hash160(parentPub))

	if k.IsPrivate() {
		// Case #1 or #2: childKey = parse256(IL) + parentKey
		keyNum := new(big.Int).SetBytes(k.KeyData)
		keyNum.Add(keyNum, ilNum)
		keyNum.Mod(keyNum, secp256k1.N())
		if keyNum.Sign() == 0 {
			return nil, nil, ErrInvalidKey
		}

		// The key data is always 32 bytes, otherwise the hardened seed of
		// the grandchildren would be shifted.
		child.KeyData = leftPad32(keyNum.Bytes())
		return child, ilNum, nil
	}

	// Case #3: childKey = serP(point(parse256(IL)) + parentKey)
	pubKey, err := secp256k1.ParsePubKey(k.KeyData)
	if err != nil {
		return nil, nil, err
	}
	childPoint := secp256k1.ScalarBaseMult(ilNum).Add(pubKey.Point())
	childPub, err := secp256k1.NewPublicKey(childPoint)
	if err != nil {
		return nil, nil, ErrInvalidKey
	}
	child.KeyData = childPub.SerializeCompressed()
	return child, ilNum, nil
}

// Derive returns a derived child key at a given path
func (k *ExtendedKey) Derive(path []uint32) (*ExtendedKey, error) {
	var err error
	extKey := k
	for _, i := range path {
		extKey, err = extKey.Child(i)
		if err != nil {
			return nil, ErrDerivingChild
		}
	}

	return extKey, nil
}

// DeriveWithIL is like Derive but also returns the sum modulo N of the IL
// scalars of every step.  For a private parent k the derived secret is
// k + il mod N, and for a public parent K the derived point is K + il*G.
func (k *ExtendedKey) DeriveWithIL(path []uint32) (*big.Int, *ExtendedKey, error) {
	total := new(big.Int)
	extKey := k
	for _, i := range path {
		child, il, err := extKey.childWithIL(i)
		if err != nil {
			return nil, nil, ErrDerivingChild
		}
		total.Add(total, il)
		extKey = child
	}
	return total.Mod(total, secp256k1.N()), extKey, nil
}

// Public returns a new extended public key from a give extended private key.
// If the input extended key is already public, it will be returned unaltered.
func (k *ExtendedKey) Public() (*ExtendedKey, error) {
	// Already an extended public key.
	if !k.IsPrivate() {
		return k, nil
	}

	// Convert it to an extended public key.  The key for the new extended
	// key will simply be the pubkey of the current extended private key.
	pub, err := k.pubKeyBytes()
	if err != nil {
		return nil, err
	}
	return &ExtendedKey{
		Version:     k.Version.ToPublic(),
		KeyData:     pub,
		ChainCode:   k.ChainCode,
		Fingerprint: k.Fingerprint,
		Depth:       k.Depth,
		ChildNumber: k.ChildNumber,
	}, nil
}

// MarshalBinary encodes the key in standard format that can be base58 encoded for humans
func (k *ExtendedKey) MarshalBinary() ([]byte, error) {
	var childNumBytes [4]byte
	binary.BigEndian.PutUint32(childNumBytes[:], k.ChildNumber)

	// The serialized format is:
	//   version (4) || depth (1) || parent fingerprint (4)) ||
	//   child num (4) || chain code (32) || key data (33) || checksum (4)
	serializedBytes := make([]byte, 0, serializedKeyLen+4)
	serializedBytes = append(serializedBytes, k.Version[:]...)
	serializedBytes = append(serializedBytes, k.Depth)
	serializedBytes = append(serializedBytes, k.Fingerprint[:]...)
	serializedBytes = append(serializedBytes, childNumBytes[:]...)
	serializedBytes = append(serializedBytes, k.ChainCode...)
	if k.IsPrivate() {
		serializedBytes = append(serializedBytes, 0x00)
		serializedBytes = append(serializedBytes, leftPad32(k.KeyData)...)
	} else {
		serializedBytes = append(serializedBytes, k.KeyData...)
	}
	if len(serializedBytes) != serializedKeyLen {
		return nil, ErrInvalidKeyLen
	}

	checkSum := doubleSha256(serializedBytes)[:4]
	serializedBytes = append(serializedBytes, checkSum...)
	return serializedBytes, nil
}

func (k *ExtendedKey) String() string {
	bin, err := k.MarshalBinary()
	if err != nil {
		return ""
	}
	return base58.Encode(bin)
}

// pubKeyBytes returns bytes for the serialized compressed public key associated
// with this extended key.
//
// When the extended key is already a public key, the key is simply returned as
// is since it's already in the correct form.
func (k *ExtendedKey) pubKeyBytes() ([]byte, error) {
	// Just return the key if it's already an extended public key.
	if !k.IsPrivate() {
		return k.KeyData, nil
	}

	privKey, err := secp256k1.PrivKeyFromBytes(k.KeyData)
	if err != nil {
		return nil, err
	}
	return privKey.PubKey().SerializeCompressed(), nil
}

// PrivateKey returns the secp256k1 private key of a private extended key.
func (k *ExtendedKey) PrivateKey() (*secp256k1.PrivateKey, error) {
	if !k.IsPrivate() {
		return nil, ErrNotPrivate
	}
	return secp256k1.PrivKeyFromBytes(k.KeyData)
}

// PublicKey returns the secp256k1 public key of the extended key.
func (k *ExtendedKey) PublicKey() (*secp256k1.PublicKey, error) {
	pub, err := k.pubKeyBytes()
	if err != nil {
		return nil, err
	}
	return secp256k1.ParsePubKey(pub)
}

// Address returns the P2PKH address of the compressed public key on the
// network of the key version.
func (k *ExtendedKey) Address() (string, error) {
	pub, err := k.PublicKey()
	if err != nil {
		return "", err
	}
	return pub.Address(true, k.Version.IsTestnet()), nil
}

func (k *ExtendedKey) UnmarshalBinary(data []byte) error {
	if len(data) != serializedKeyLen+4 {
		return ErrInvalidKeyLen
	}

	// The serialized format is:
	//   version (4) || depth (1) || parent fingerprint (4)) ||
	//   child num (4) || chain code (32) || key data (33) || checksum (4)

	// Split the payload and checksum up and ensure the checksum matches.
	payload := data[:len(data)-4]
	checkSum := data[len(data)-4:]
	expectedCheckSum := doubleSha256(payload)[:4]
	if !bytes.Equal(checkSum, expectedCheckSum) {
		return ErrBadChecksum
	}

	// Deserialize each of the payload fields.
	var version KeyVersion
	copy(version[:], payload[:4])
	if !version.IsKnown() {
		return ErrUnknownVersion
	}
	depth := payload[4:5][0]
	var fingerprint [4]byte
	copy(fingerprint[:], payload[5:9])
	childNumber := binary.BigEndian.Uint32(payload[9:13])
	chainCode := append([]byte(nil), payload[13:45]...)
	keyData := append([]byte(nil), payload[45:78]...)

	// The key data is a private key if it starts with 0x00.  Serialized
	// compressed pubkeys either start with 0x02 or 0x03.
	isPrivate := keyData[0] == 0x00
	if isPrivate != version.IsPrivate() {
		return ErrInvalidPrivateFlag
	}

	if isPrivate {
		// Ensure the private key is valid.  It must be within the range
		// of the order of the secp256k1 curve and not be 0.
		keyData = keyData[1:]
		if _, err := secp256k1.PrivKeyFromBytes(keyData); err != nil {
			return ErrInvalidKey
		}
	} else {
		// Ensure the public key parses correctly and is actually on the
		// secp256k1 curve.
		_, err := secp256k1.ParsePubKey(keyData)
		if err != nil {
			return err
		}
	}

	k.Version = version
	k.KeyData = keyData
	k.ChainCode = chainCode
	k.Fingerprint = fingerprint
	k.Depth = depth
	k.ChildNumber = childNumber
	return nil
}
