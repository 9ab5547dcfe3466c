// Package message implements the "magic-prefixed" message signing format
// used to prove a keypair's identity over an ordinary text string rather
// than a pre-hashed digest. The signing payload format, the compact
// 65-byte signature layout, and the recId-driven recovery walk mirror the
// reference wallet implementations this format interoperates with.
package message

import (
	"crypto/sha256"
	"encoding/binary"
)

// encodeVarint appends the Bitcoin-style variable-length integer encoding
// of n to buf and returns the result.
func encodeVarint(buf []byte, n int) []byte {
	switch {
	case n < 0xfd:
		return append(buf, byte(n))
	case n <= 0xffff:
		buf = append(buf, 0xfd)
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(n))
		return append(buf, b[:]...)
	case n <= 0xffffffff:
		buf = append(buf, 0xfe)
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(n))
		return append(buf, b[:]...)
	default:
		buf = append(buf, 0xff)
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(n))
		return append(buf, b[:]...)
	}
}

// formatPayload composes the varint-framed magic prefix followed by the
// varint-framed message, the exact byte string the reference
// implementation signs.
func formatPayload(magic, msg string) []byte {
	out := make([]byte, 0, 9+len(magic)+9+len(msg))
	out = encodeVarint(out, len(magic))
	out = append(out, magic...)
	out = encodeVarint(out, len(msg))
	out = append(out, msg...)
	return out
}

// digest returns the double-SHA-256 hash of the signing payload for msg
// under the given network magic string.
func digest(magic, msg string) [32]byte {
	payload := formatPayload(magic, msg)
	first := sha256.Sum256(payload)
	return sha256.Sum256(first[:])
}
