package keypair

import (
	"bytes"

	"github.com/blockkit/eckey/crypter"
)

// Encrypt returns a new keypair whose private scalar is sealed with c under
// aesKey; the returned keypair has no cleartext private scalar. The
// creation time is copied from k.
func (k *Keypair) Encrypt(c crypter.Crypter, aesKey []byte) (*Keypair, error) {
	if k.priv == nil {
		return nil, ErrMissingPrivateKey
	}
	privBytes := k.priv.Serialize()
	blob, err := c.Encrypt(privBytes, aesKey)
	zero(privBytes)
	if err != nil {
		return nil, err
	}

	nk := &Keypair{
		pub:        k.pub,
		compressed: k.compressed,
		encBlob:    blob,
		encCrypter: c,
	}
	nk.createdAt.Store(k.createdAt.Load())
	return nk, nil
}

// Decrypt returns a new keypair holding the cleartext private scalar,
// failing with ErrCrypterMismatch if c is not the crypter this keypair was
// encrypted with, or ErrWrongKey if the decrypted scalar doesn't recover
// this keypair's own public point.
func (k *Keypair) Decrypt(c crypter.Crypter, aesKey []byte) (*Keypair, error) {
	if !k.IsEncrypted() {
		return nil, ErrMissingPrivateKey
	}
	if c != k.encCrypter {
		return nil, ErrCrypterMismatch
	}

	priv, cleanup, err := k.unlockedPrivateKey(aesKey)
	if err != nil {
		return nil, err
	}

	expected, err := k.pub.resolve()
	if err != nil {
		cleanup()
		return nil, err
	}
	if !priv.PubKey().IsEqual(expected) {
		cleanup()
		return nil, ErrWrongKey
	}

	nk := &Keypair{
		priv:       priv,
		pub:        k.pub,
		compressed: k.compressed,
	}
	nk.createdAt.Store(k.createdAt.Load())
	return nk, nil
}

// MaybeDecrypt returns k unchanged if it isn't encrypted or no key was
// supplied, otherwise it behaves like Decrypt(k's own crypter, aesKey).
func (k *Keypair) MaybeDecrypt(aesKey []byte) (*Keypair, error) {
	if !k.IsEncrypted() || len(aesKey) == 0 {
		return k, nil
	}
	return k.Decrypt(k.encCrypter, aesKey)
}

// EncryptionIsReversible reports whether decrypting encrypted with c and
// aesKey recovers the same private scalar original holds, letting a caller
// confirm an encryption will be reversible before committing to it.
func EncryptionIsReversible(original, encrypted *Keypair, c crypter.Crypter, aesKey []byte) bool {
	decrypted, err := encrypted.Decrypt(c, aesKey)
	if err != nil {
		return false
	}
	got, err := decrypted.PrivBytes()
	if err != nil {
		return false
	}
	want, err := original.PrivBytes()
	if err != nil {
		return false
	}
	return bytes.Equal(got, want)
}
