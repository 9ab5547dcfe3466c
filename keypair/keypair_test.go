package keypair

import (
	"bytes"
	"crypto/sha256"
	"testing"
	"time"

	"github.com/blockkit/eckey/crypter"
	"github.com/blockkit/eckey/secp256k1"
	"golang.org/x/crypto/ripemd160"
)

func fixedKeypair(t *testing.T) *Keypair {
	t.Helper()
	k, err := FromPrivateBytes(bytes.Repeat([]byte{0x09}, 32), true)
	if err != nil {
		t.Fatalf("FromPrivateBytes: %v", err)
	}
	return k
}

func TestRejectsZeroAndOnePrivateKey(t *testing.T) {
	var zero secp256k1.ModNScalar
	if _, err := FromPrivate(&zero, true); err != ErrBadInput {
		t.Fatalf("d=0: got err %v, want %v", err, ErrBadInput)
	}

	var one secp256k1.ModNScalar
	one.SetInt(1)
	if _, err := FromPrivate(&one, true); err != ErrBadInput {
		t.Fatalf("d=1: got err %v, want %v", err, ErrBadInput)
	}

	var two secp256k1.ModNScalar
	two.SetInt(2)
	if _, err := FromPrivate(&two, true); err != nil {
		t.Fatalf("d=2 should be accepted: %v", err)
	}
}

func TestSignAndVerify(t *testing.T) {
	k := fixedKeypair(t)
	hash := sha256.Sum256([]byte("hello"))

	sig, err := k.SignDigest(hash[:], nil)
	if err != nil {
		t.Fatalf("SignDigest: %v", err)
	}
	if err := k.VerifyDigest(hash[:], sig); err != nil {
		t.Fatalf("VerifyDigest: %v", err)
	}

	otherHash := sha256.Sum256([]byte("goodbye"))
	if err := k.VerifyDigest(otherHash[:], sig); err != ErrSignatureMismatch {
		t.Fatalf("got err %v, want %v", err, ErrSignatureMismatch)
	}
}

func TestPubHashMatchesRipemd160Sha256(t *testing.T) {
	k := fixedKeypair(t)

	sum := sha256.Sum256(k.PubBytes())
	h := ripemd160.New()
	h.Write(sum[:])
	var want [20]byte
	copy(want[:], h.Sum(nil))

	if got := k.PubHash(); got != want {
		t.Fatalf("PubHash mismatch: got %x want %x", got, want)
	}
	// Cache hit path should return the same value.
	if got := k.PubHash(); got != want {
		t.Fatalf("cached PubHash mismatch: got %x want %x", got, want)
	}
}

func TestRoundtripCompressedPublicKey(t *testing.T) {
	k := fixedKeypair(t)
	encoded := k.PubBytes()

	pubOnly, err := FromPublicOnly(encoded)
	if err != nil {
		t.Fatalf("FromPublicOnly: %v", err)
	}
	if !bytes.Equal(pubOnly.PubBytes(), encoded) {
		t.Fatalf("re-serialized bytes differ: got %x want %x", pubOnly.PubBytes(), encoded)
	}
	if !pubOnly.IsWatching() {
		t.Fatal("a pub-only, unencrypted keypair should be watching")
	}
}

func TestDecompressPreservesIdentity(t *testing.T) {
	k := fixedKeypair(t)
	uncompressed, err := k.Decompress()
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if uncompressed.IsCompressed() {
		t.Fatal("Decompress should produce an uncompressed key")
	}
	kPub, err := k.PublicPoint()
	if err != nil {
		t.Fatalf("PublicPoint: %v", err)
	}
	uPub, err := uncompressed.PublicPoint()
	if err != nil {
		t.Fatalf("PublicPoint: %v", err)
	}
	if !kPub.IsEqual(uPub) {
		t.Fatal("decompressing should not change the mathematical identity of the key")
	}
}

func TestFromPublicOnlyRejectsHybridAndInfinity(t *testing.T) {
	k := fixedKeypair(t)
	encoded := append([]byte(nil), k.PubBytes()...)
	encoded[0] = 0x06 // hybrid prefix
	if _, err := FromPublicOnly(encoded); err != ErrBadInput {
		t.Fatalf("hybrid prefix: got err %v, want %v", err, ErrBadInput)
	}

	if _, err := FromPublicOnly(bytes.Repeat([]byte{0x00}, 33)); err != ErrBadInput {
		t.Fatalf("infinity prefix: got err %v, want %v", err, ErrBadInput)
	}
}

func TestMissingPrivateKeyErrors(t *testing.T) {
	k := fixedKeypair(t)
	pubOnly, err := FromPublicOnly(k.PubBytes())
	if err != nil {
		t.Fatalf("FromPublicOnly: %v", err)
	}
	if _, err := pubOnly.PrivBytes(); err != ErrMissingPrivateKey {
		t.Fatalf("got err %v, want %v", err, ErrMissingPrivateKey)
	}
	hash := sha256.Sum256([]byte("x"))
	if _, err := pubOnly.SignDigest(hash[:], nil); err != ErrMissingPrivateKey {
		t.Fatalf("got err %v, want %v", err, ErrMissingPrivateKey)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	k := fixedKeypair(t)
	c, err := crypter.NewScryptCrypter()
	if err != nil {
		t.Fatalf("NewScryptCrypter: %v", err)
	}
	c.N = 1 << 10

	aesKey, err := c.DeriveKey([]byte("hunter2"))
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}

	encrypted, err := k.Encrypt(c, aesKey)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if !encrypted.IsEncrypted() {
		t.Fatal("encrypted keypair should report IsEncrypted")
	}
	if _, err := encrypted.PrivBytes(); err != ErrKeyEncrypted {
		t.Fatalf("got err %v, want %v", err, ErrKeyEncrypted)
	}

	decrypted, err := encrypted.Decrypt(c, aesKey)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !decrypted.Equals(k) {
		t.Fatal("decrypted keypair should equal the original")
	}

	if !EncryptionIsReversible(k, encrypted, c, aesKey) {
		t.Fatal("EncryptionIsReversible should succeed for a correct key")
	}

	wrongKey, err := c.DeriveKey([]byte("wrong"))
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if _, err := encrypted.Decrypt(c, wrongKey); err == nil {
		t.Fatal("Decrypt with a wrong AES key should fail")
	}

	other, err := crypter.NewScryptCrypter()
	if err != nil {
		t.Fatalf("NewScryptCrypter: %v", err)
	}
	if _, err := encrypted.Decrypt(other, aesKey); err != ErrCrypterMismatch {
		t.Fatalf("got err %v, want %v", err, ErrCrypterMismatch)
	}
}

func TestByAgeOrdersByCreationTimeThenPubBytes(t *testing.T) {
	a := fixedKeypair(t)
	a.SetCreatedAt(time.Unix(100, 0))
	b, err := FromPrivateBytes(bytes.Repeat([]byte{0x0a}, 32), true)
	if err != nil {
		t.Fatalf("FromPrivateBytes: %v", err)
	}
	b.SetCreatedAt(time.Unix(200, 0))

	if !ByAge(a, b) {
		t.Fatal("a was created first and should sort before b")
	}
	if ByAge(b, a) {
		t.Fatal("b was created after a and should not sort before it")
	}
}
