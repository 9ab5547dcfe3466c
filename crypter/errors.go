package crypter

import "errors"

var (
	ErrInvalidKeySize  = errors.New("crypter: aes key must be 32 bytes")
	ErrCiphertextShort = errors.New("crypter: ciphertext is shorter than the nonce it should carry")
	ErrOpenFailed      = errors.New("crypter: decryption failed, wrong key or corrupt ciphertext")
)
