package asn1key

import "errors"

var (
	ErrMalformed           = errors.New("asn1key: malformed EC_PRIVATEKEY structure")
	ErrBadVersion          = errors.New("asn1key: unsupported EC_PRIVATEKEY version")
	ErrBadPrivateKeyLength = errors.New("asn1key: private key octet string is not 32 bytes")
	ErrBadPrivateKeyRange  = errors.New("asn1key: private key scalar is out of range")
	ErrMissingCurve        = errors.New("asn1key: missing curve parameters")
	ErrWrongCurve          = errors.New("asn1key: curve parameters do not name secp256k1")
	ErrMissingPublicKey    = errors.New("asn1key: missing public key bit string")
	ErrBadPublicKeyLength  = errors.New("asn1key: public key is not 33 or 65 bytes")
	ErrBadPublicKeyPrefix  = errors.New("asn1key: public key has an invalid SEC1 prefix")
	ErrPublicKeyMismatch   = errors.New("asn1key: decoded public key does not match private key * G")
	ErrTrailingData        = errors.New("asn1key: trailing data after EC_PRIVATEKEY structure")
)
