package message

import (
	"encoding/base64"

	"github.com/blockkit/eckey/keypair"
	"github.com/blockkit/eckey/secp256k1"
)

const (
	headerMin = 27
	headerMax = 34
)

// Sign produces the base64 wire form of a magic-prefixed message signature
// over msg with k's private scalar. It searches recId 0-3 for the one
// whose recovered point equals k's own public point; a well-formed key
// always yields exactly one.
func Sign(k *keypair.Keypair, magic, msg string, aesKey []byte) (string, error) {
	hash := digest(magic, msg)

	sig, err := k.SignDigest(hash[:], aesKey)
	if err != nil {
		return "", err
	}

	expected, err := k.PublicPoint()
	if err != nil {
		return "", err
	}

	// A well-formed key always has exactly one recId among 0-3 that
	// recovers back to its own public point; failing to find one here
	// means this signature disagrees with the key we just signed with,
	// which is a bug in this package rather than a bad external input.
	if !sig.BruteforceRecoveryCode(hash[:], expected) {
		return "", keypair.ErrInvariant
	}

	header := byte(27 + sig.RecoveryCode())
	if k.IsCompressed() {
		header += 4
	}

	var r, s [32]byte
	rv, sv := sig.R(), sig.S()
	rv.PutBytesUnchecked(r[:])
	sv.PutBytesUnchecked(s[:])

	out := make([]byte, 0, 65)
	out = append(out, header)
	out = append(out, r[:]...)
	out = append(out, s[:]...)

	return base64.StdEncoding.EncodeToString(out), nil
}

// RecoverSigner recovers the public keypair that produced b64Sig over msg
// under the given magic prefix, per the header's encoded recId and
// compression flag.
func RecoverSigner(magic, msg, b64Sig string) (*keypair.Keypair, error) {
	raw, err := base64.StdEncoding.DecodeString(b64Sig)
	if err != nil {
		return nil, err
	}
	if len(raw) != 65 {
		return nil, ErrBadSignatureLength
	}

	header := raw[0]
	if header < headerMin || header > headerMax {
		return nil, ErrBadHeader
	}
	recId := (header - 27) % 4
	compressed := header >= 31

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(raw[1:33]); overflow {
		return nil, ErrBadSignatureLength
	}
	if overflow := s.SetByteSlice(raw[33:65]); overflow {
		return nil, ErrBadSignatureLength
	}
	sig := secp256k1.NewSignatureWithRecoveryCode(&r, &s, recId)

	hash := digest(magic, msg)
	pub, err := sig.RecoverPublicKey(hash[:])
	if err != nil {
		return nil, ErrRecoveryImpossible
	}

	if compressed {
		return keypair.FromPublicOnly(pub.SerializeCompressed())
	}
	return keypair.FromPublicOnly(pub.SerializeUncompressed())
}

// VerifyMessage reports whether b64Sig is a valid signature over msg for
// k's public point.
func VerifyMessage(k *keypair.Keypair, magic, msg, b64Sig string) error {
	signer, err := RecoverSigner(magic, msg, b64Sig)
	if err != nil {
		return err
	}
	signerPoint, err := signer.PublicPoint()
	if err != nil {
		return err
	}
	kPoint, err := k.PublicPoint()
	if err != nil {
		return err
	}
	if !signerPoint.IsEqual(kPoint) {
		return ErrSignatureMismatch
	}
	return nil
}
