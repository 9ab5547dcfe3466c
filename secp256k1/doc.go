// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 provides the curve, field, and ECDSA primitives that the
rest of this module's keypair, message, and ASN.1 codec packages build on.
See https://www.secg.org/sec2-v2.pdf for the underlying standard.

Key types:

  - FieldVal, arithmetic modulo the secp256k1 field prime
  - ModNScalar, arithmetic modulo the secp256k1 group order
  - JacobianPoint, curve points in Jacobian projective coordinates, plus
    AddNonConst/DoubleNonConst/ScalarMultNonConst/ScalarBaseMultNonConst
  - PrivateKey/PublicKey, parsing and serialization of SEC1 keys (compressed
    or uncompressed; hybrid and point-at-infinity encodings are rejected on
    input)
  - Signature, DER and compact encodings, public key recovery, and the
    low-s canonicalization required by BIP0062 (see NormalizeS)

Signing is deterministic per RFC6979: the same private key, message digest,
and nonce-generation inputs always produce the same signature, so there is
no entropy-consuming signing path to seed or fail.

This package also satisfies the standard library's crypto/elliptic Curve
interface via S256, and PrivateKey implements crypto.Signer, so it can be
dropped into crypto/tls, crypto/x509, or crypto/ecdsa call sites that expect
those interfaces — though Sign and the Signature type here are the faster,
secp256k1-specific path and are what the rest of this module uses directly.
*/
package secp256k1
