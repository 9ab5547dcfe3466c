package secp256k1

import (
	"crypto"
	"io"
)

// SignOptions satisfies crypto.SignerOpts so *PrivateKey can be handed to
// APIs written against the standard library's crypto.Signer interface.
type SignOptions struct {
	Hash crypto.Hash
}

func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// Sign implements crypto.Signer. rand is ignored since signing here is
// always RFC6979-deterministic; the return value is the DER encoding of
// the signature, already normalized to low-s.
func (privkey *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	sig := Sign(privkey, digest)
	sig.NormalizeS()
	return sig.Serialize(), nil
}
