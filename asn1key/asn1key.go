// Package asn1key encodes and decodes the OpenSSL EC_PRIVATEKEY ASN.1
// structure used to carry a secp256k1 private scalar alongside its curve
// and public point, following the same cryptobyte-based approach as
// sibling secp256k1 Go implementations in this ecosystem rather than the
// heavier reflection-based encoding/asn1 package.
package asn1key

import (
	encasn1 "encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/blockkit/eckey/secp256k1"
)

// oidSecp256k1 is the named curve OID from SEC 2, section A.2.1.
var oidSecp256k1 = encasn1.ObjectIdentifier{1, 3, 132, 0, 10}

const ecPrivateKeyVersion = 1

// Encode serializes a 32-byte big-endian private scalar and a SEC1-encoded
// public key as an EC_PRIVATEKEY structure:
//
//	ECPrivateKey ::= SEQUENCE {
//	  version        INTEGER { ecPrivkeyVer1(1) } (ecPrivkeyVer1),
//	  privateKey     OCTET STRING,
//	  parameters [0] EXPLICIT ECParameters OPTIONAL,
//	  publicKey  [1] EXPLICIT BIT STRING OPTIONAL
//	}
//
// parameters and publicKey are always emitted even though the grammar marks
// them optional, matching what OpenSSL itself writes for a named curve.
func Encode(privKeyBytes, pubKeyBytes []byte) []byte {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(ecPrivateKeyVersion)
		b.AddASN1OctetString(privKeyBytes)
		b.AddASN1(cbasn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidSecp256k1)
		})
		b.AddASN1(cbasn1.Tag(1).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddASN1BitString(pubKeyBytes)
		})
	})
	return b.BytesOrPanic()
}

// Decode parses an EC_PRIVATEKEY structure, validating the version, the
// named curve, and the public key's SEC1 framing, then recomputing the
// public point from the private scalar and failing if it disagrees with
// the decoded bit string.
func Decode(der []byte) (privKeyBytes, pubKeyBytes []byte, err error) {
	var inner cryptobyte.String
	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, cbasn1.SEQUENCE) || !input.Empty() {
		return nil, nil, ErrMalformed
	}

	var version int64
	if !inner.ReadASN1Integer(&version) {
		return nil, nil, ErrMalformed
	}
	if version != ecPrivateKeyVersion {
		return nil, nil, ErrBadVersion
	}

	var privKey []byte
	if !inner.ReadASN1OctetString(&privKey) {
		return nil, nil, ErrMalformed
	}
	if len(privKey) != 32 {
		return nil, nil, ErrBadPrivateKeyLength
	}

	var params cryptobyte.String
	if !inner.ReadASN1(&params, cbasn1.Tag(0).Constructed().ContextSpecific()) {
		return nil, nil, ErrMissingCurve
	}
	var curveOID encasn1.ObjectIdentifier
	if !params.ReadASN1ObjectIdentifier(&curveOID) || !params.Empty() {
		return nil, nil, ErrMalformed
	}
	if !curveOID.Equal(oidSecp256k1) {
		return nil, nil, ErrWrongCurve
	}

	var pubWrap cryptobyte.String
	if !inner.ReadASN1(&pubWrap, cbasn1.Tag(1).Constructed().ContextSpecific()) {
		return nil, nil, ErrMissingPublicKey
	}
	var pubBits encasn1.BitString
	if !pubWrap.ReadASN1BitString(&pubBits) || !pubWrap.Empty() {
		return nil, nil, ErrMalformed
	}
	if !inner.Empty() {
		return nil, nil, ErrTrailingData
	}

	pub := pubBits.RightAlign()
	switch len(pub) {
	case 33, 65:
	default:
		return nil, nil, ErrBadPublicKeyLength
	}
	switch pub[0] {
	case 0x02, 0x03, 0x04:
	default:
		return nil, nil, ErrBadPublicKeyPrefix
	}

	var d secp256k1.ModNScalar
	if overflow := d.SetByteSlice(privKey); overflow {
		return nil, nil, ErrBadPrivateKeyRange
	}
	recomputed := secp256k1.NewPrivateKey(&d).PubKey()

	parsed, _, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return nil, nil, err
	}
	if !parsed.IsEqual(recomputed) {
		return nil, nil, ErrPublicKeyMismatch
	}

	return privKey, pub, nil
}
