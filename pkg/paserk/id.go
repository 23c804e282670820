package paserk

import (
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// idSize is the digest length of every PASERK identifier, fixed at 33
// bytes so the base64url form carries no trailing bits.
const idSize = 33

// ID derives the identifier string for a data-type PASERK string: the
// identifier prefix plus a 33-byte digest of prefix+serialized. Versions 1
// and 3 use SHA-384 truncated to 33 bytes; versions 2 and 4 use BLAKE2b
// with a 33-byte output. The digest covers the identifier prefix itself,
// so the same raw bytes under different types yield different identifiers.
func ID(serialized string) (string, error) {
	version, typ, _, err := Parse(serialized)
	if err != nil {
		return "", err
	}
	idTyp, ok := typ.idType()
	if !ok {
		return "", ErrDerivedType
	}

	prefix := fmt.Sprintf("k%d.%s.", version, idTyp)
	msg := []byte(prefix + serialized)

	var digest []byte
	switch version {
	case 1, 3:
		sum := sha512.Sum384(msg)
		digest = sum[:idSize]
	default:
		h, err := blake2b.New(idSize, nil)
		if err != nil {
			return "", err
		}
		h.Write(msg)
		digest = h.Sum(nil)
	}
	return prefix + b64.EncodeToString(digest), nil
}
