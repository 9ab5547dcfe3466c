// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// ModNScalar implements optimized arithmetic modulo the secp256k1 group
// order N. As with FieldVal, this tree backs it with math/big rather than
// the reference implementation's ten-limb representation, reducing after
// every operation so the type stays usable anywhere a plain integer mod N
// would be.
type ModNScalar struct {
	n big.Int
}

var groupOrderHalf = new(big.Int).Rsh(curveParams.N, 1)

func (s *ModNScalar) reduce() *ModNScalar {
	s.n.Mod(&s.n, curveParams.N)
	return s
}

// SetInt sets s to the passed small integer and returns s for chaining.
func (s *ModNScalar) SetInt(i uint32) *ModNScalar {
	s.n.SetInt64(int64(i))
	return s
}

// SetByteSlice interprets b as an unsigned big-endian integer, reduces it
// mod N, stores the result in s and reports whether the value overflowed N.
//
// Passing a slice longer than 32 bytes is truncated to its low 32 bytes per
// the documented behavior of the reference API this type mirrors; it is the
// caller's responsibility to only do so deliberately (digests are already
// at most 32 bytes).
func (s *ModNScalar) SetByteSlice(b []byte) bool {
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	s.n.SetBytes(b)
	overflow := s.n.Cmp(curveParams.N) >= 0
	s.reduce()
	return overflow
}

// SetBytes interprets b as a 32-byte big-endian integer, reduces it mod N,
// stores the result in s and returns 1 if it overflowed N or 0 otherwise.
func (s *ModNScalar) SetBytes(b *[32]byte) uint32 {
	if s.SetByteSlice(b[:]) {
		return 1
	}
	return 0
}

// Set sets s equal to val and returns s for chaining.
func (s *ModNScalar) Set(val *ModNScalar) *ModNScalar {
	s.n.Set(&val.n)
	return s
}

// Add adds val to s, stores the result in s and returns s for chaining.
func (s *ModNScalar) Add(val *ModNScalar) *ModNScalar {
	s.n.Add(&s.n, &val.n)
	return s.reduce()
}

// Mul multiplies s by val, stores the result in s and returns s.
func (s *ModNScalar) Mul(val *ModNScalar) *ModNScalar {
	s.n.Mul(&s.n, &val.n)
	return s.reduce()
}

// Mul2 sets s = val1 * val2 and returns s for chaining.
func (s *ModNScalar) Mul2(val1, val2 *ModNScalar) *ModNScalar {
	s.n.Mul(&val1.n, &val2.n)
	return s.reduce()
}

// Negate sets s to its additive inverse mod N and returns s for chaining.
func (s *ModNScalar) Negate() *ModNScalar {
	s.n.Sub(curveParams.N, &s.n)
	return s.reduce()
}

// InverseValNonConst sets s to the multiplicative inverse of val mod N and
// returns s. Named to match the reference API; this implementation is not
// constant time since it is backed by math/big.
func (s *ModNScalar) InverseValNonConst(val *ModNScalar) *ModNScalar {
	s.n.ModInverse(&val.n, curveParams.N)
	return s
}

// IsZero returns whether s is exactly zero.
func (s *ModNScalar) IsZero() bool {
	return s.n.Sign() == 0
}

// Equals returns whether s and val represent the same scalar value.
func (s *ModNScalar) Equals(val *ModNScalar) bool {
	return s.n.Cmp(&val.n) == 0
}

// IsOverHalfOrder returns whether s > N/2. Used to pick the canonical, low-S
// member of {s, N-s} for a given signature.
func (s *ModNScalar) IsOverHalfOrder() bool {
	return s.n.Cmp(groupOrderHalf) > 0
}

// Bytes returns s as a 32-byte big-endian array.
func (s *ModNScalar) Bytes() [32]byte {
	var out [32]byte
	s.PutBytes(&out)
	return out
}

// PutBytes stores s into out as a 32-byte big-endian array.
func (s *ModNScalar) PutBytes(out *[32]byte) {
	b := s.n.Bytes()
	copy(out[32-len(b):], b)
}

// PutBytesUnchecked writes s into b as a big-endian integer, left-padded
// with zeroes to len(b). The caller must ensure b is large enough.
func (s *ModNScalar) PutBytesUnchecked(b []byte) {
	src := s.n.Bytes()
	for i := range b {
		b[i] = 0
	}
	copy(b[len(b)-len(src):], src)
}

// Zero overwrites s with zero. Used to scrub ephemeral nonces from memory.
func (s *ModNScalar) Zero() {
	s.n.SetInt64(0)
}
