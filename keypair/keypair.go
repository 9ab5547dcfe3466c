// Package keypair implements the immutable secp256k1 keypair value: an
// optional private scalar, an always-derivable public point, a creation
// timestamp, and an optional encrypted-at-rest private blob.
package keypair

import (
	"bytes"
	"crypto/sha256"
	"sync/atomic"
	"time"

	"github.com/blockkit/eckey/asn1key"
	"github.com/blockkit/eckey/crypter"
	"github.com/blockkit/eckey/secp256k1"
	"golang.org/x/crypto/ripemd160"
)

// Keypair is an immutable secp256k1 keypair. The zero value is not valid;
// construct one with a factory function.
//
// Apart from the lazily filled caches of the decoded public point and the
// PubHash result, the only field that may change after construction is
// createdAt, which is written through sync/atomic so that it can be set once
// by whichever code owns the keypair without requiring external
// synchronization. Every other operation returns a new Keypair rather than
// mutating this one.
type Keypair struct {
	priv       *secp256k1.PrivateKey // nil if pub-only or still encrypted
	pub        *lazyPoint
	compressed bool

	createdAt atomic.Int64

	encBlob    []byte
	encCrypter crypter.Crypter

	pubHash atomic.Pointer[[20]byte]
}

// validateScalar enforces that a private scalar is neither 0 nor 1, per the
// sentinel-collision defense.
func validateScalar(d *secp256k1.ModNScalar) error {
	if d.IsZero() {
		return ErrBadInput
	}
	var one secp256k1.ModNScalar
	one.SetInt(1)
	if d.Equals(&one) {
		return ErrBadInput
	}
	return nil
}

func newFromPrivate(priv *secp256k1.PrivateKey, compressed bool) *Keypair {
	return &Keypair{
		priv:       priv,
		pub:        newLazyPointFromKey(priv.PubKey(), compressed),
		compressed: compressed,
	}
}

// NewRandom generates a fresh private scalar and returns the compressed
// keypair derived from it.
func NewRandom() (*Keypair, error) {
	for {
		priv, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return nil, err
		}
		if validateScalar(&priv.Key) != nil {
			continue
		}
		k := newFromPrivate(priv, true)
		k.createdAt.Store(time.Now().Unix())
		return k, nil
	}
}

// FromPrivate builds a keypair from an existing scalar, deriving Q = d*G
// with the requested compression.
func FromPrivate(d *secp256k1.ModNScalar, compressed bool) (*Keypair, error) {
	if err := validateScalar(d); err != nil {
		return nil, err
	}
	return newFromPrivate(secp256k1.NewPrivateKey(d), compressed), nil
}

// FromPrivateBytes builds a keypair from a 32-byte big-endian scalar.
func FromPrivateBytes(b []byte, compressed bool) (*Keypair, error) {
	if len(b) != secp256k1.PrivKeyBytesLen {
		return nil, ErrBadInput
	}
	var d secp256k1.ModNScalar
	if overflow := d.SetByteSlice(b); overflow {
		return nil, ErrBadInput
	}
	return FromPrivate(&d, compressed)
}

// FromPrivateAndPublic builds a keypair trusting that pubKeyBytes already
// encodes d*G; the compression flag is taken from pubKeyBytes' own prefix.
func FromPrivateAndPublic(d *secp256k1.ModNScalar, pubKeyBytes []byte) (*Keypair, error) {
	if err := validateScalar(d); err != nil {
		return nil, err
	}
	pub, compressed, err := secp256k1.ParsePubKey(pubKeyBytes)
	if err != nil {
		return nil, err
	}
	return &Keypair{
		priv:       secp256k1.NewPrivateKey(d),
		pub:        newLazyPointFromKey(pub, compressed),
		compressed: compressed,
	}, nil
}

// validatePubKeyFormat checks the length and prefix byte of a SEC1-encoded
// public key without decompressing it, so constructing a pub-only keypair
// never touches the curve until something needs the affine coordinates.
func validatePubKeyFormat(b []byte) (compressed bool, err error) {
	switch len(b) {
	case 33:
		switch b[0] {
		case 0x02, 0x03:
			return true, nil
		default:
			return false, ErrBadInput
		}
	case 65:
		if b[0] != 0x04 {
			return false, ErrBadInput
		}
		return false, nil
	default:
		return false, ErrBadInput
	}
}

// FromPublicOnly builds a signing-disabled keypair from a SEC1-encoded
// public key.
func FromPublicOnly(pubKeyBytes []byte) (*Keypair, error) {
	compressed, err := validatePubKeyFormat(pubKeyBytes)
	if err != nil {
		return nil, err
	}
	return &Keypair{
		pub:        newLazyPointFromBytes(pubKeyBytes, compressed),
		compressed: compressed,
	}, nil
}

// FromEncrypted builds a signing-disabled keypair backed by an already
// encrypted private blob. Decrypt must be called with the matching crypter
// and AES key before it can sign.
func FromEncrypted(blob []byte, c crypter.Crypter, pubKeyBytes []byte) (*Keypair, error) {
	if c == nil {
		return nil, ErrBadInput
	}
	if len(blob) == 0 {
		return nil, ErrBadInput
	}
	compressed, err := validatePubKeyFormat(pubKeyBytes)
	if err != nil {
		return nil, err
	}
	return &Keypair{
		pub:        newLazyPointFromBytes(pubKeyBytes, compressed),
		compressed: compressed,
		encBlob:    append([]byte(nil), blob...),
		encCrypter: c,
	}, nil
}

// FromASN1 decodes an OpenSSL EC_PRIVATEKEY structure. The underlying codec
// already recomputes Q from d and rejects the blob if it disagrees with the
// encoded public key.
func FromASN1(der []byte) (*Keypair, error) {
	privBytes, pubBytes, err := asn1key.Decode(der)
	if err != nil {
		return nil, err
	}
	defer zero(privBytes)

	var d secp256k1.ModNScalar
	if overflow := d.SetByteSlice(privBytes); overflow {
		return nil, ErrBadInput
	}
	return FromPrivateAndPublic(&d, pubBytes)
}

// ToASN1 encodes this keypair as an OpenSSL EC_PRIVATEKEY structure. It
// fails if the keypair has no accessible private scalar.
func (k *Keypair) ToASN1() ([]byte, error) {
	privBytes, err := k.PrivBytes()
	if err != nil {
		return nil, err
	}
	defer zero(privBytes)
	return asn1key.Encode(privBytes, k.PubBytes()), nil
}

// PubBytes returns the SEC1-encoded public key, preserving the compression
// flag this keypair was constructed or last decompressed with.
func (k *Keypair) PubBytes() []byte {
	return k.pub.bytes()
}

// PublicPoint returns the affine public point, decompressing it from the
// stored SEC1 bytes on first use if it wasn't already resolved.
func (k *Keypair) PublicPoint() (*secp256k1.PublicKey, error) {
	return k.pub.resolve()
}

// PubHash returns RIPEMD160(SHA256(PubBytes())), computing and caching it
// on first use.
func (k *Keypair) PubHash() [20]byte {
	if cached := k.pubHash.Load(); cached != nil {
		return *cached
	}
	sum := sha256.Sum256(k.PubBytes())
	h := ripemd160.New()
	h.Write(sum[:])
	var out [20]byte
	copy(out[:], h.Sum(nil))
	k.pubHash.CompareAndSwap(nil, &out)
	return *k.pubHash.Load()
}

// PrivBytes returns the 32-byte big-endian private scalar. It fails if the
// keypair is pub-only or the private scalar is still encrypted.
func (k *Keypair) PrivBytes() ([]byte, error) {
	if k.priv != nil {
		return k.priv.Serialize(), nil
	}
	if k.IsEncrypted() {
		return nil, ErrKeyEncrypted
	}
	return nil, ErrMissingPrivateKey
}

// IsCompressed reports whether PubBytes uses the 33-byte compressed
// encoding.
func (k *Keypair) IsCompressed() bool { return k.compressed }

// IsPubOnly reports whether this keypair holds no cleartext private scalar.
// An encrypted keypair that has not been decrypted also counts as pub-only.
func (k *Keypair) IsPubOnly() bool { return k.priv == nil }

// IsEncrypted reports whether this keypair carries an encrypted private
// blob with a matching crypter.
func (k *Keypair) IsEncrypted() bool {
	return k.encCrypter != nil && len(k.encBlob) > 0
}

// IsWatching reports whether this keypair is pub-only and not encrypted,
// i.e. it can never sign no matter what key material is later supplied.
func (k *Keypair) IsWatching() bool {
	return k.IsPubOnly() && !k.IsEncrypted()
}

// CreatedAt returns the creation time, or the zero time if unknown.
func (k *Keypair) CreatedAt() time.Time {
	sec := k.createdAt.Load()
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}

// SetCreatedAt records the creation time. Safe to call concurrently;
// callers that set it more than once should only ever move it forward.
func (k *Keypair) SetCreatedAt(t time.Time) {
	k.createdAt.Store(t.Unix())
}

// Decompress returns a copy of this keypair whose public key uses the
// uncompressed SEC1 encoding. The affine point is resolved if it wasn't
// already, since producing the uncompressed encoding requires both
// coordinates.
func (k *Keypair) Decompress() (*Keypair, error) {
	pub, err := k.pub.resolve()
	if err != nil {
		return nil, err
	}
	nk := &Keypair{
		priv:       k.priv,
		pub:        newLazyPointFromKey(pub, false),
		compressed: false,
		encBlob:    k.encBlob,
		encCrypter: k.encCrypter,
	}
	nk.createdAt.Store(k.createdAt.Load())
	return nk, nil
}

// ToAddress prepends networkMagic to PubHash, producing the payload a
// downstream collaborator Base58Check-encodes into an address.
func (k *Keypair) ToAddress(networkMagic byte) []byte {
	hash := k.PubHash()
	out := make([]byte, 0, 1+len(hash))
	out = append(out, networkMagic)
	return append(out, hash[:]...)
}

// Equals reports whether k and other have the same private scalar (or lack
// of one), public point and compression flag, creation time, crypter
// identity, and encrypted blob.
func (k *Keypair) Equals(other *Keypair) bool {
	if other == nil {
		return false
	}
	if (k.priv == nil) != (other.priv == nil) {
		return false
	}
	if k.priv != nil && !k.priv.Key.Equals(&other.priv.Key) {
		return false
	}
	kp, err := k.pub.resolve()
	if err != nil {
		return false
	}
	op, err := other.pub.resolve()
	if err != nil {
		return false
	}
	if !kp.IsEqual(op) || k.compressed != other.compressed {
		return false
	}
	if k.createdAt.Load() != other.createdAt.Load() {
		return false
	}
	if k.encCrypter != other.encCrypter {
		return false
	}
	return bytes.Equal(k.encBlob, other.encBlob)
}

// ByAge reports whether a should sort before b: earlier creation time
// first, ties broken by lexicographic comparison of the public key bytes.
func ByAge(a, b *Keypair) bool {
	at, bt := a.createdAt.Load(), b.createdAt.Load()
	if at != bt {
		return at < bt
	}
	return bytes.Compare(a.PubBytes(), b.PubBytes()) < 0
}

// zero overwrites b with zeroes; used to scrub transient cleartext scalars.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
