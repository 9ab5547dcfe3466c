// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/hmac"
	"crypto/sha256"
)

const (
	rfc6979PrivKeyLen   = 32
	rfc6979HashLen      = 32
	rfc6979ExtraDataLen = 32
	rfc6979VersionLen   = 16
)

// copyPadded copies src into dst, a fixed-size buffer, as a big-endian
// value: src is truncated to the leftmost len(dst) bytes when it is too
// long, and zero-padded on the left when it is too short.
func copyPadded(dst, src []byte) {
	for i := range dst {
		dst[i] = 0
	}
	if len(src) > len(dst) {
		src = src[:len(dst)]
	}
	copy(dst[len(dst)-len(src):], src)
}

// hmacSHA256 computes HMAC-SHA256(key, concatenation of data).
func hmacSHA256(key []byte, data ...[]byte) []byte {
	mac := hmac.New(sha256.New, key)
	for _, d := range data {
		mac.Write(d)
	}
	return mac.Sum(nil)
}

// NonceRFC6979 generates a deterministic nonce for signing hash with
// privKey following the HMAC-DRBG construction described in RFC 6979
// section 3.2, using HMAC-SHA256 throughout.
//
// extraData and version let a caller fold additional context into the
// initial seed; extraData is mixed in only when it is exactly 32 bytes and
// version only when it is exactly 16 bytes, otherwise each is treated as
// absent. When version is present but extraData is not, extraData's slot
// in the seed is still reserved (as all zeros) so version lands at a fixed
// offset regardless.
//
// extraIterations skips that many additional valid candidates (1 <= k < N)
// past the first one before returning, so a caller needing more than one
// deterministic nonce for the same inputs can request later ones in the
// sequence.
func NonceRFC6979(privKey []byte, hash []byte, extraData []byte, version []byte, extraIterations uint32) *ModNScalar {
	var keyBuf [rfc6979PrivKeyLen + rfc6979HashLen + rfc6979ExtraDataLen + rfc6979VersionLen]byte

	offset := 0
	copyPadded(keyBuf[offset:offset+rfc6979PrivKeyLen], privKey)
	offset += rfc6979PrivKeyLen

	copyPadded(keyBuf[offset:offset+rfc6979HashLen], hash)
	offset += rfc6979HashLen

	bxLen := rfc6979PrivKeyLen + rfc6979HashLen
	haveExtraData := len(extraData) == rfc6979ExtraDataLen
	if haveExtraData {
		copy(keyBuf[offset:offset+rfc6979ExtraDataLen], extraData)
		bxLen += rfc6979ExtraDataLen
	}
	offset += rfc6979ExtraDataLen

	if len(version) == rfc6979VersionLen {
		if !haveExtraData {
			bxLen += rfc6979ExtraDataLen
		}
		copy(keyBuf[offset:offset+rfc6979VersionLen], version)
		bxLen += rfc6979VersionLen
	}
	bx := keyBuf[:bxLen]

	// Steps B and C of RFC6979 3.2: initialize V and K.
	v := make([]byte, 32)
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, 32)

	// Step D.
	k = hmacSHA256(k, v, []byte{0x00}, bx)
	// Step E.
	v = hmacSHA256(k, v)
	// Step F.
	k = hmacSHA256(k, v, []byte{0x01}, bx)
	// Step G.
	v = hmacSHA256(k, v)

	// Step H: generate candidates until one lands in [1, N-1], skipping
	// extraIterations of them past the first.
	for {
		v = hmacSHA256(k, v)

		var candidate ModNScalar
		overflow := candidate.SetByteSlice(v)
		if !overflow && !candidate.IsZero() {
			if extraIterations == 0 {
				return &candidate
			}
			extraIterations--
		}

		k = hmacSHA256(k, v, []byte{0x00})
		v = hmacSHA256(k, v)
	}
}
