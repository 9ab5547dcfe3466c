// Package crypter provides the pluggable at-rest encryption contract used to
// hold a keypair's private scalar encrypted, plus a concrete implementation
// backed by scrypt and NaCl secretbox.
package crypter

// Crypter is an abstract provider of symmetric encryption over a keypair's
// private scalar. Implementations should be used through a pointer receiver
// so that two Crypter values can be compared for identity with == without
// risking a panic from comparing incomparable fields (e.g. a salt slice).
type Crypter interface {
	// Encrypt seals plaintext with aesKey, returning an opaque blob.
	Encrypt(plaintext, aesKey []byte) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt using the same aesKey.
	Decrypt(blob, aesKey []byte) ([]byte, error)

	// DeriveKey stretches passphrase into an AES key. It is deliberately
	// slow; callers should derive once and cache the result.
	DeriveKey(passphrase []byte) ([]byte, error)

	// UnderstoodEncryptionType identifies the encryption scheme so a
	// decoder that persists a blob alongside this tag can pick the right
	// Crypter implementation to reopen it with.
	UnderstoodEncryptionType() string
}
