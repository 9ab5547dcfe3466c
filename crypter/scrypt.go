package crypter

import (
	"crypto/rand"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

const (
	keySize   = 32
	saltSize  = 32
	nonceSize = 24

	// scryptN, scryptR and scryptP match the "interactive" parameter set
	// btcwallet's snacl package uses for passphrase-derived wallet keys.
	scryptN = 1 << 18
	scryptR = 8
	scryptP = 1
)

// ScryptCrypter is a Crypter that derives an AES key from a passphrase with
// scrypt and seals the private scalar with a NaCl secretbox, the same
// pairing used by btcwallet's snacl package.
//
// The salt lives on the struct rather than being regenerated per call so
// that DeriveKey is deterministic for a given passphrase: a caller that
// persists a ScryptCrypter's parameters alongside an encrypted blob can
// reconstruct the same key later.
type ScryptCrypter struct {
	Salt    [saltSize]byte
	N, R, P int
}

// NewScryptCrypter returns a ScryptCrypter with a freshly generated random
// salt and the default scrypt cost parameters.
func NewScryptCrypter() (*ScryptCrypter, error) {
	c := &ScryptCrypter{N: scryptN, R: scryptR, P: scryptP}
	if _, err := rand.Read(c.Salt[:]); err != nil {
		return nil, err
	}
	return c, nil
}

// DeriveKey stretches passphrase into a 32-byte AES key using this
// crypter's salt and cost parameters.
func (c *ScryptCrypter) DeriveKey(passphrase []byte) ([]byte, error) {
	return scrypt.Key(passphrase, c.Salt[:], c.N, c.R, c.P, keySize)
}

// Encrypt seals plaintext under aesKey with a freshly generated nonce,
// returning nonce || ciphertext.
func (c *ScryptCrypter) Encrypt(plaintext, aesKey []byte) ([]byte, error) {
	if len(aesKey) != keySize {
		return nil, ErrInvalidKeySize
	}
	var key [keySize]byte
	copy(key[:], aesKey)

	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, &key), nil
}

// Decrypt opens a blob produced by Encrypt. A wrong aesKey surfaces as
// ErrOpenFailed since secretbox authentication fails before any plaintext
// is recovered.
func (c *ScryptCrypter) Decrypt(blob, aesKey []byte) ([]byte, error) {
	if len(aesKey) != keySize {
		return nil, ErrInvalidKeySize
	}
	if len(blob) < nonceSize {
		return nil, ErrCiphertextShort
	}
	var key [keySize]byte
	copy(key[:], aesKey)
	var nonce [nonceSize]byte
	copy(nonce[:], blob[:nonceSize])

	plaintext, ok := secretbox.Open(nil, blob[nonceSize:], &nonce, &key)
	if !ok {
		return nil, ErrOpenFailed
	}
	return plaintext, nil
}

// UnderstoodEncryptionType identifies this scheme for persistence alongside
// an encrypted blob.
func (c *ScryptCrypter) UnderstoodEncryptionType() string {
	return "scrypt-secretbox-v1"
}
