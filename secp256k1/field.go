// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// FieldVal implements optimized fixed-precision arithmetic over the
// secp256k1 field prime p = 2^256 - 2^32 - 977.
//
// The reference implementation this package is modeled on represents field
// elements as ten 26-bit limbs to avoid allocation and enable constant-time
// reduction. This tree instead backs FieldVal with math/big and normalizes
// (reduces mod p) after every arithmetic op, trading the limb-level speed
// tricks for a much smaller surface while preserving the exact same method
// set used by the curve arithmetic in curve.go and the rest of this package.
type FieldVal struct {
	n big.Int
}

var fieldPrimeBig = fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

func (f *FieldVal) reduce() *FieldVal {
	f.n.Mod(&f.n, fieldPrimeBig)
	return f
}

// SetInt sets f to the passed small integer and returns f for chaining.
func (f *FieldVal) SetInt(i uint16) *FieldVal {
	f.n.SetInt64(int64(i))
	return f
}

// SetHex sets f to the passed big-endian hex string and returns f. It panics
// on malformed input since it is only used for hard-coded constants.
func (f *FieldVal) SetHex(s string) *FieldVal {
	f.n.Set(fromHex(s))
	return f.reduce()
}

// SetByteSlice interprets b as an unsigned big-endian integer, reduces it mod
// p, stores the result in f and returns whether the value originally
// overflowed the field prime.
func (f *FieldVal) SetByteSlice(b []byte) bool {
	f.n.SetBytes(b)
	overflow := f.n.Cmp(fieldPrimeBig) >= 0
	f.reduce()
	return overflow
}

// SetBytes interprets b as a 32-byte big-endian integer, reduces it mod p,
// stores the result in f and returns 1 if the value overflowed the field
// prime or 0 otherwise.
func (f *FieldVal) SetBytes(b *[32]byte) uint32 {
	if f.SetByteSlice(b[:]) {
		return 1
	}
	return 0
}

// Set sets f equal to val and returns f for chaining.
func (f *FieldVal) Set(val *FieldVal) *FieldVal {
	f.n.Set(&val.n)
	return f
}

// Normalize reduces f mod p in place and returns f for chaining. Since this
// implementation reduces after every operation it is already normalized; the
// method exists so call sites written against the limb-based API continue to
// compile and read naturally.
func (f *FieldVal) Normalize() *FieldVal {
	return f.reduce()
}

// Negate sets f to its additive inverse mod p and returns f for chaining.
// The magnitude parameter is part of the limb-based API this type mirrors
// and is accepted but unused since every value here is kept normalized.
func (f *FieldVal) Negate(magnitude uint32) *FieldVal {
	f.n.Sub(fieldPrimeBig, &f.n)
	return f.reduce()
}

// Add adds val to f, stores the result in f and returns f for chaining.
func (f *FieldVal) Add(val *FieldVal) *FieldVal {
	f.n.Add(&f.n, &val.n)
	return f.reduce()
}

// Add2 sets f = val1 + val2 and returns f for chaining.
func (f *FieldVal) Add2(val1, val2 *FieldVal) *FieldVal {
	f.n.Add(&val1.n, &val2.n)
	return f.reduce()
}

// Mul multiplies f by val, stores the result in f and returns f for chaining.
func (f *FieldVal) Mul(val *FieldVal) *FieldVal {
	f.n.Mul(&f.n, &val.n)
	return f.reduce()
}

// Mul2 sets f = val1 * val2 and returns f for chaining.
func (f *FieldVal) Mul2(val1, val2 *FieldVal) *FieldVal {
	f.n.Mul(&val1.n, &val2.n)
	return f.reduce()
}

// MulInt multiplies f by the passed small integer, stores the result in f
// and returns f for chaining.
func (f *FieldVal) MulInt(val uint8) *FieldVal {
	f.n.Mul(&f.n, big.NewInt(int64(val)))
	return f.reduce()
}

// Square squares f in place and returns f for chaining.
func (f *FieldVal) Square() *FieldVal {
	f.n.Mul(&f.n, &f.n)
	return f.reduce()
}

// SquareVal sets f = val * val and returns f for chaining.
func (f *FieldVal) SquareVal(val *FieldVal) *FieldVal {
	f.n.Mul(&val.n, &val.n)
	return f.reduce()
}

// Inverse sets f to its multiplicative inverse mod p and returns f.
func (f *FieldVal) Inverse() *FieldVal {
	f.n.ModInverse(&f.n, fieldPrimeBig)
	return f
}

// IsZero returns whether f is exactly zero.
func (f *FieldVal) IsZero() bool {
	return f.n.Sign() == 0
}

// IsOddBit returns 1 if f is odd and 0 otherwise, as a uint32 so it can be
// combined into recovery/compression flag bits without a bool conversion.
func (f *FieldVal) IsOddBit() uint32 {
	return uint32(f.n.Bit(0))
}

// Equals returns whether f and val represent the same field element.
func (f *FieldVal) Equals(val *FieldVal) bool {
	return f.n.Cmp(&val.n) == 0
}

// IsGtOrEqPrimeMinusOrder returns whether f >= (P - N), i.e. whether adding
// the group order N to f would overflow the field prime P. This is used by
// both verification and public key recovery to decide whether the
// "X coordinate >= N" candidate is even reachable.
func (f *FieldVal) IsGtOrEqPrimeMinusOrder() bool {
	return f.n.Cmp(fieldPrimeMinusOrder) >= 0
}

var fieldPrimeMinusOrder = new(big.Int).Sub(fieldPrimeBig, curveParams.N)

// Bytes returns f as a 32-byte big-endian array.
func (f *FieldVal) Bytes() [32]byte {
	var out [32]byte
	f.PutBytes(&out)
	return out
}

// PutBytes stores f into out as a 32-byte big-endian array.
func (f *FieldVal) PutBytes(out *[32]byte) {
	b := f.n.Bytes()
	copy(out[32-len(b):], b)
}

// PutBytesUnchecked writes f into b as a big-endian integer, left-padded
// with zeroes to len(b). The caller must ensure b is large enough.
func (f *FieldVal) PutBytesUnchecked(b []byte) {
	src := f.n.Bytes()
	for i := range b {
		b[i] = 0
	}
	copy(b[len(b)-len(src):], src)
}

// fromHex converts the passed hex string into a big integer pointer and will
// panic if there is an error. This is only provided for hard-coded constants
// so errors in the source code can be detected. It must only be called for
// initialization purposes.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

// zeroArray32 zeroes out the passed 32-byte array. It is used to scrub
// sensitive scalars such as private keys and nonces from memory as soon as
// they are no longer needed.
func zeroArray32(b *[32]byte) {
	for i := range b {
		b[i] = 0
	}
}
