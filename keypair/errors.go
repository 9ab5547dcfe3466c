package keypair

import "errors"

var (
	ErrBadInput           = errors.New("keypair: malformed input")
	ErrMissingPrivateKey  = errors.New("keypair: operation requires a private key but this keypair is pub-only")
	ErrKeyEncrypted       = errors.New("keypair: private key is encrypted and no AES key was supplied")
	ErrCrypterMismatch    = errors.New("keypair: supplied crypter does not match the one used to encrypt this keypair")
	ErrWrongKey           = errors.New("keypair: decryption produced a key that does not match the stored public key")
	ErrRecoveryImpossible = errors.New("keypair: signature recovery did not yield a valid public key")
	ErrSignatureMismatch  = errors.New("keypair: signature does not verify against this key")
	ErrInvariant          = errors.New("keypair: internal invariant violated")
)
