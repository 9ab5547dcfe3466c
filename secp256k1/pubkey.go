// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// PublicKey represents a secp256k1 public key in affine coordinates. The
// coordinates are stored as big.Int to interoperate directly with
// crypto/ecdsa and crypto/elliptic (see ToECDSA in ellipticadaptor.go and
// KoblitzCurve.Add/Double/ScalarMult, also in ellipticadaptor.go).
type PublicKey struct {
	X, Y *big.Int
}

// NewPublicKey instantiates a new public key from the passed affine
// coordinates, given as field elements (as produced after a JacobianPoint is
// converted to affine with ToAffine).
func NewPublicKey(x, y *FieldVal) *PublicKey {
	xb, yb := x.Bytes(), y.Bytes()
	return &PublicKey{
		X: new(big.Int).SetBytes(xb[:]),
		Y: new(big.Int).SetBytes(yb[:]),
	}
}

// NewPublicKeyFromBig instantiates a public key directly from big.Int affine
// coordinates, as used by the crypto/elliptic adaptor in ellipticadaptor.go.
func NewPublicKeyFromBig(x, y *big.Int) *PublicKey {
	return &PublicKey{X: x, Y: y}
}

// AsJacobian converts pub to Jacobian coordinates (Z = 1) and stores the
// result in result.
func (p *PublicKey) AsJacobian(result *JacobianPoint) {
	result.X.SetByteSlice(p.X.Bytes())
	result.Y.SetByteSlice(p.Y.Bytes())
	result.Z.SetInt(1)
}

// IsEqual reports whether p and otherPubKey represent the same point. Per
// SEC1 this is a purely mathematical comparison of the affine coordinates;
// it does not take the compression flag used to encode either key into
// account, since two different encodings of the same point are still the
// same public key.
func (p *PublicKey) IsEqual(otherPubKey *PublicKey) bool {
	return p.X.Cmp(otherPubKey.X) == 0 && p.Y.Cmp(otherPubKey.Y) == 0
}

const (
	pubKeyCompressedLen   = 33
	pubKeyUncompressedLen = 65

	pubKeyCompressedEven = 0x02
	pubKeyCompressedOdd  = 0x03
	pubKeyUncompressed   = 0x04
	pubKeyHybridEven     = 0x06
	pubKeyHybridOdd      = 0x07
)

// SerializeUncompressed serializes p as the 65-byte SEC1 uncompressed
// encoding: 0x04 || X || Y.
func (p *PublicKey) SerializeUncompressed() []byte {
	var xPadded, yPadded [32]byte
	fieldPutBig(p.X, &xPadded)
	fieldPutBig(p.Y, &yPadded)

	b := make([]byte, 0, pubKeyUncompressedLen)
	b = append(b, pubKeyUncompressed)
	b = append(b, xPadded[:]...)
	b = append(b, yPadded[:]...)
	return b
}

// SerializeCompressed serializes p as the 33-byte SEC1 compressed encoding:
// 0x02|0x03 || X, where the prefix low bit carries the parity of Y.
func (p *PublicKey) SerializeCompressed() []byte {
	var xPadded [32]byte
	fieldPutBig(p.X, &xPadded)

	prefix := byte(pubKeyCompressedEven)
	if p.Y.Bit(0) == 1 {
		prefix = pubKeyCompressedOdd
	}

	b := make([]byte, 0, pubKeyCompressedLen)
	b = append(b, prefix)
	b = append(b, xPadded[:]...)
	return b
}

// fieldPutBig writes v into out as a 32-byte big-endian array.
func fieldPutBig(v *big.Int, out *[32]byte) {
	b := v.Bytes()
	copy(out[32-len(b):], b)
}

// ParsePubKey parses a secp256k1 public key encoded per SEC1 and returns the
// resulting public key along with whether the encoding was compressed.
//
// Only the canonical compressed (0x02/0x03) and uncompressed (0x04)
// encodings are accepted. Hybrid (0x06/0x07) and the point-at-infinity
// (0x00) encodings are rejected, per spec.
func ParsePubKey(serialized []byte) (key *PublicKey, wasCompressed bool, err error) {
	switch len(serialized) {
	case pubKeyCompressedLen:
		format := serialized[0]
		switch format {
		case pubKeyCompressedEven, pubKeyCompressedOdd:
		default:
			str := fmt.Sprintf("invalid public key: unsupported format: %#x", format)
			return nil, false, signatureError(ErrPubKeyInvalidFormat, str)
		}

		var x FieldVal
		if overflow := x.SetByteSlice(serialized[1:]); overflow {
			str := "invalid public key: x >= field prime"
			return nil, false, signatureError(ErrPubKeyXTooBig, str)
		}

		var y FieldVal
		odd := format == pubKeyCompressedOdd
		if !DecompressY(&x, odd, &y) {
			str := "invalid public key: x coordinate is not on the curve"
			return nil, false, signatureError(ErrPubKeyNotOnCurve, str)
		}
		y.Normalize()
		return NewPublicKey(&x, &y), true, nil

	case pubKeyUncompressedLen:
		format := serialized[0]
		if format != pubKeyUncompressed {
			str := fmt.Sprintf("invalid public key: unsupported format: %#x", format)
			return nil, false, signatureError(ErrPubKeyInvalidFormat, str)
		}

		x := new(big.Int).SetBytes(serialized[1:33])
		y := new(big.Int).SetBytes(serialized[33:65])
		if x.Cmp(fieldPrimeBig) >= 0 {
			str := "invalid public key: x >= field prime"
			return nil, false, signatureError(ErrPubKeyXTooBig, str)
		}
		if y.Cmp(fieldPrimeBig) >= 0 {
			str := "invalid public key: y >= field prime"
			return nil, false, signatureError(ErrPubKeyYTooBig, str)
		}
		var xf, yf FieldVal
		xf.SetByteSlice(x.Bytes())
		yf.SetByteSlice(y.Bytes())
		if !isOnCurve(&xf, &yf) {
			str := "invalid public key: point is not on the curve"
			return nil, false, signatureError(ErrPubKeyNotOnCurve, str)
		}
		return NewPublicKeyFromBig(x, y), false, nil

	default:
		str := fmt.Sprintf("invalid public key: malformed length: %d", len(serialized))
		return nil, false, signatureError(ErrPubKeyInvalidLen, str)
	}
}
