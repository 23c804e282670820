package paserk

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Type is a PASERK type token, the middle segment of a PASERK string.
type Type string

const (
	TypeLocal  Type = "local" // symmetric key material
	TypePublic Type = "public"
	TypeSecret Type = "secret"

	TypeLocalID  Type = "lid" // one-way identifier types
	TypePublicID Type = "pid"
	TypeSecretID Type = "sid"
)

// dataType reports whether the type carries key material.
func (t Type) dataType() bool {
	return t == TypeLocal || t == TypePublic || t == TypeSecret
}

func (t Type) known() bool {
	switch t {
	case TypeLocal, TypePublic, TypeSecret, TypeLocalID, TypePublicID, TypeSecretID:
		return true
	}
	return false
}

// idType maps a data type to its identifier counterpart.
func (t Type) idType() (Type, bool) {
	switch t {
	case TypeLocal:
		return TypeLocalID, true
	case TypePublic:
		return TypePublicID, true
	case TypeSecret:
		return TypeSecretID, true
	}
	return "", false
}

// b64 is the PASERK payload alphabet: base64url without padding, the same
// encoding the token format uses.
var b64 = base64.RawURLEncoding

// Build assembles "k{version}.{type}.{base64url(material)}". Only data
// types can be built; identifier types are derived with ID.
func Build(version int, typ Type, material []byte) (string, error) {
	if version < 1 || version > 4 {
		return "", ErrUnsupportedVersion
	}
	if !typ.known() {
		return "", ErrUnsupportedType
	}
	if !typ.dataType() {
		return "", ErrDerivedType
	}
	if len(material) == 0 {
		return "", ErrEmptyMaterial
	}
	return fmt.Sprintf("k%d.%s.%s", version, typ, b64.EncodeToString(material)), nil
}

// Parse splits a PASERK string into version, type, and decoded material.
// Identifier types parse too; their material is the 33-byte digest, not a
// key.
func Parse(s string) (int, Type, []byte, error) {
	frags := strings.Split(s, ".")
	if len(frags) != 3 {
		return 0, "", nil, ErrInvalidFormat
	}

	version, ok := parseVersion(frags[0])
	if !ok {
		return 0, "", nil, ErrUnsupportedVersion
	}

	typ := Type(frags[1])
	if !typ.known() {
		return 0, "", nil, ErrUnsupportedType
	}

	material, err := b64.DecodeString(frags[2])
	if err != nil {
		return 0, "", nil, ErrInvalidFormat
	}
	if len(material) == 0 {
		return 0, "", nil, ErrEmptyMaterial
	}
	return version, typ, material, nil
}

func parseVersion(s string) (int, bool) {
	if len(s) != 2 || s[0] != 'k' || s[1] < '1' || s[1] > '4' {
		return 0, false
	}
	return int(s[1] - '0'), true
}
