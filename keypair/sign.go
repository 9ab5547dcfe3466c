package keypair

import "github.com/blockkit/eckey/secp256k1"

// unlockedPrivateKey returns the cleartext private key to sign with,
// transiently decrypting an encrypted keypair if necessary. The returned
// cleanup function scrubs any cleartext copy made solely for this call; it
// is a no-op when the keypair already held its private key in the clear.
func (k *Keypair) unlockedPrivateKey(aesKey []byte) (priv *secp256k1.PrivateKey, cleanup func(), err error) {
	if k.priv != nil {
		return k.priv, func() {}, nil
	}
	if !k.IsEncrypted() {
		return nil, nil, ErrMissingPrivateKey
	}
	if len(aesKey) == 0 {
		return nil, nil, ErrKeyEncrypted
	}

	plaintext, err := k.encCrypter.Decrypt(k.encBlob, aesKey)
	if err != nil {
		return nil, nil, err
	}
	defer zero(plaintext)

	var d secp256k1.ModNScalar
	if overflow := d.SetByteSlice(plaintext); overflow {
		return nil, nil, ErrWrongKey
	}
	if validateScalar(&d) != nil {
		return nil, nil, ErrWrongKey
	}
	priv = secp256k1.NewPrivateKey(&d)
	return priv, func() { priv.Key.Zero() }, nil
}

// SignDigest signs a 32-byte digest with this keypair's private scalar. If
// the keypair is encrypted, aesKey must decrypt it; the cleartext copy is
// discarded once signing completes. The result is explicitly canonicalized
// to its low-s form (see (*secp256k1.Signature).NormalizeS) so two calls
// signing the same digest always agree on a single valid encoding.
func (k *Keypair) SignDigest(hash []byte, aesKey []byte) (*secp256k1.Signature, error) {
	priv, cleanup, err := k.unlockedPrivateKey(aesKey)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	sig := secp256k1.Sign(priv, hash)
	sig.NormalizeS()
	return sig, nil
}

// VerifyDigest reports ErrSignatureMismatch if sig does not verify against
// this keypair's public point and hash, or nil on success.
func (k *Keypair) VerifyDigest(hash []byte, sig *secp256k1.Signature) error {
	pub, err := k.pub.resolve()
	if err != nil {
		return err
	}
	if !sig.Verify(hash, pub) {
		return ErrSignatureMismatch
	}
	return nil
}

// VerifyDER parses der as a DER-encoded signature and verifies it against
// hash, per VerifyDigest.
func (k *Keypair) VerifyDER(hash []byte, der []byte) error {
	sig, err := secp256k1.ParseDERSignature(der)
	if err != nil {
		return err
	}
	return k.VerifyDigest(hash, sig)
}

// Verify is the boolean-returning counterpart to VerifyDigest, for callers
// that don't need to distinguish a malformed key from a bad signature.
func (k *Keypair) Verify(hash []byte, sig *secp256k1.Signature) bool {
	return k.VerifyDigest(hash, sig) == nil
}
