package message

import "errors"

var (
	ErrBadSignatureLength = errors.New("message: signature must decode to exactly 65 bytes")
	ErrBadHeader          = errors.New("message: header byte is out of the valid [27, 34] range")
	ErrRecoveryImpossible = errors.New("message: no public key could be recovered from the signature")
	ErrSignatureMismatch  = errors.New("message: recovered signer does not match the expected key")
)
