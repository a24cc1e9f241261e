// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements secp256k1 elliptic curve operations in pure Go on
top of the generic field and point types of package ecc.

This package provides the domain parameters of the secp256k1 curve along with
data structures and functions for working with public and private secp256k1
keys.  See https://www.secg.org/sec2-v2.pdf for details on the standard.

An overview of the features provided by this package are as follows:

  - Domain parameters P, N and G
  - Square roots in the secp256k1 field
  - Scalar multiplication with an arbitrary point and with the base point
  - Private key generation, serialization, and parsing
  - Public key serialization and parsing in the SEC compressed and
    uncompressed formats, including point decompression from x
  - ECDSA signing with a random, fixed or RFC6979 deterministic nonce,
    producing canonical low-S signatures
  - ECDSA verification
  - Parsing and serializing signatures with the Distinguished Encoding Rules
    (DER) of ISO/IEC 8825-1 and some additional restrictions specific to
    secp256k1
  - Shared secrets via ECDH
  - Wallet import format private keys and pay-to-pubkey-hash addresses
  - A crypto.Signer implementation on the private key

The arithmetic runs on math/big and is not constant time.  It favours clarity
over speed and must not be used where timing side channels matter.
*/
package secp256k1
