package keypair

import (
	"sync"

	"github.com/blockkit/eckey/secp256k1"
)

// lazyPoint wraps a public point, deferring the curve decompression that a
// compressed SEC1 encoding requires until something actually needs the
// affine (x, y) coordinates. pub_bytes and pub_hash only ever need the raw
// encoding, so constructing a keypair from public bytes alone never touches
// the curve.
type lazyPoint struct {
	once sync.Once

	raw        []byte
	compressed bool

	pub *secp256k1.PublicKey
	err error

	encodeOnce sync.Once
	encoded    []byte
}

// newLazyPointFromBytes defers decoding raw, which has already been checked
// for a canonical SEC1 prefix and length by the caller.
func newLazyPointFromBytes(raw []byte, compressed bool) *lazyPoint {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return &lazyPoint{raw: cp, compressed: compressed}
}

// newLazyPointFromKey wraps an already-decoded point, e.g. one just derived
// as d*G, so resolve never needs to parse anything.
func newLazyPointFromKey(pub *secp256k1.PublicKey, compressed bool) *lazyPoint {
	return &lazyPoint{pub: pub, compressed: compressed}
}

// resolve returns the decoded point, parsing and validating raw on first
// call if the point wasn't already known.
func (l *lazyPoint) resolve() (*secp256k1.PublicKey, error) {
	l.once.Do(func() {
		if l.pub != nil {
			return
		}
		pub, _, err := secp256k1.ParsePubKey(l.raw)
		l.pub, l.err = pub, err
	})
	return l.pub, l.err
}

// bytes returns the canonical SEC1 encoding, computing it from the decoded
// point only if it wasn't already known as raw bytes.
func (l *lazyPoint) bytes() []byte {
	if l.raw != nil {
		return l.raw
	}
	l.encodeOnce.Do(func() {
		if l.compressed {
			l.encoded = l.pub.SerializeCompressed()
		} else {
			l.encoded = l.pub.SerializeUncompressed()
		}
	})
	return l.encoded
}
