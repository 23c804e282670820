package paseto

import "errors"

var (
	// Validation errors, all detectable before any cryptographic work.
	ErrMissingKey       = errors.New("paseto: key must be specified")
	ErrInvalidKeySize   = errors.New("paseto: invalid key size for this version")
	ErrInvalidKeyType   = errors.New("paseto: invalid key type for this version")
	ErrInvalidNonceSize = errors.New("paseto: invalid nonce size for this version")
	ErrInvalidToken     = errors.New("paseto: malformed token")
	ErrUnsupportedToken = errors.New("paseto: unknown version or purpose")
	ErrWrongKey         = errors.New("paseto: key does not match token header")
	ErrNotSigningKey    = errors.New("paseto: a public key cannot sign")

	// Cryptographic failures. These carry no cause on purpose: callers
	// must not be able to distinguish a bad tag from a bad key or a
	// truncated ciphertext.
	ErrEncrypt = errors.New("paseto: failed to encrypt")
	ErrDecrypt = errors.New("paseto: failed to decrypt")
	ErrSign    = errors.New("paseto: failed to sign")
	ErrVerify  = errors.New("paseto: failed to verify")
)
