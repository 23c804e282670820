package paserk

import "errors"

var (
	ErrInvalidFormat      = errors.New("paserk: malformed PASERK string")
	ErrUnsupportedVersion = errors.New("paserk: unsupported PASERK version")
	ErrUnsupportedType    = errors.New("paserk: unsupported PASERK type")
	ErrDerivedType        = errors.New("paserk: key identifiers are derived, not built from material")
	ErrEmptyMaterial      = errors.New("paserk: key material must not be empty")
)
