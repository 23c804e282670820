package paseto

import (
	"crypto"
	"fmt"
)

// Version denotes a PASETO protocol version. Each version pins a fixed
// cipher suite; there is no runtime algorithm negotiation.
type Version int

const (
	V1 Version = 1 // AES-256-CTR + HMAC-SHA384 / RSA-PSS
	V2 Version = 2 // XChaCha20-Poly1305 / Ed25519
	V3 Version = 3 // AES-256-CTR + HMAC-SHA384 / ECDSA P-384
	V4 Version = 4 // XChaCha20 + BLAKE2b MAC / Ed25519
)

func (v Version) valid() bool {
	return v >= V1 && v <= V4
}

// String renders the version the way token headers spell it, e.g. "v2".
func (v Version) String() string {
	return fmt.Sprintf("v%d", int(v))
}

// Purpose selects between the symmetric and asymmetric modes of a version.
type Purpose string

const (
	Local  Purpose = "local"  // shared-key encrypt + authenticate
	Public Purpose = "public" // sign + verify, payload stays readable
)

func (p Purpose) valid() bool {
	return p == Local || p == Public
}

// header is the literal token prefix for a (version, purpose) pair. It is
// always the first PAE element, so the adapter choice itself is
// authenticated.
func header(v Version, p Purpose) string {
	return fmt.Sprintf("v%d.%s.", v, p)
}

// localSuite fixes the symmetric discipline of one version: key rule,
// nonce-seed and nonce lengths, trailing tag length, and the seal/open
// primitives. Dispatch is a single table lookup; versions never branch on
// each other. open may assume len(body) >= overhead; Decode enforces it.
type localSuite struct {
	header   string
	seedSize int // caller-suppliable nonce seed length
	overhead int // nonce + tag bytes flanking the ciphertext
	checkKey func([]byte) error
	seal     func(key, seed, payload, footer, assertion []byte) ([]byte, error)
	open     func(key, body, footer, assertion []byte) ([]byte, error)
}

// publicSuite fixes the signature discipline of one version.
type publicSuite struct {
	header      string
	sigSize     int
	checkSecret func(crypto.PrivateKey) error
	checkPublic func(crypto.PublicKey) error
	sign        func(key crypto.PrivateKey, payload, footer, assertion []byte) ([]byte, error)
	verify      func(key crypto.PublicKey, body, footer, assertion []byte) ([]byte, error)
}

// The closed suite tables. Initialized once at package load and never
// mutated; every encode/decode resolves its adapter here.
var (
	localSuites = map[Version]*localSuite{
		V1: {
			header:   v1LocalHeader,
			seedSize: v1SeedSize,
			overhead: v1NonceSize + v1MacSize,
			checkKey: checkKeyNonEmpty,
			seal:     v1LocalSeal,
			open:     v1LocalOpen,
		},
		V2: {
			header:   v2LocalHeader,
			seedSize: v2SeedSize,
			overhead: v2NonceSize + v2TagSize,
			checkKey: checkKeyExactly32,
			seal:     v2LocalSeal,
			open:     v2LocalOpen,
		},
		V3: {
			header:   v3LocalHeader,
			seedSize: v3NonceSize,
			overhead: v3NonceSize + v3MacSize,
			checkKey: checkKeyNonEmpty,
			seal:     v3LocalSeal,
			open:     v3LocalOpen,
		},
		V4: {
			header:   v4LocalHeader,
			seedSize: v4SeedSize,
			overhead: v4NonceSize + v4MacSize,
			checkKey: checkKeyUpTo64,
			seal:     v4LocalSeal,
			open:     v4LocalOpen,
		},
	}

	publicSuites = map[Version]*publicSuite{
		V1: {
			header:      v1PublicHeader,
			sigSize:     v1SigSize,
			checkSecret: v1CheckSecret,
			checkPublic: v1CheckPublic,
			sign:        v1PublicSign,
			verify:      v1PublicVerify,
		},
		V2: {
			header:      v2PublicHeader,
			sigSize:     ed25519SigSize,
			checkSecret: ed25519CheckSecret,
			checkPublic: ed25519CheckPublic,
			sign:        v2PublicSign,
			verify:      v2PublicVerify,
		},
		V3: {
			header:      v3PublicHeader,
			sigSize:     v3SigSize,
			checkSecret: v3CheckSecret,
			checkPublic: v3CheckPublic,
			sign:        v3PublicSign,
			verify:      v3PublicVerify,
		},
		V4: {
			header:      v4PublicHeader,
			sigSize:     ed25519SigSize,
			checkSecret: ed25519CheckSecret,
			checkPublic: ed25519CheckPublic,
			sign:        v4PublicSign,
			verify:      v4PublicVerify,
		},
	}
)

// Local key material rules follow the per-version primitive: HKDF-based
// versions accept any non-empty key, XChaCha20-Poly1305 needs exactly 32
// bytes, and keyed BLAKE2b caps the key at 64 bytes.

func checkKeyNonEmpty(key []byte) error {
	if len(key) == 0 {
		return ErrMissingKey
	}
	return nil
}

func checkKeyExactly32(key []byte) error {
	if len(key) != 32 {
		return ErrInvalidKeySize
	}
	return nil
}

func checkKeyUpTo64(key []byte) error {
	if len(key) == 0 {
		return ErrMissingKey
	}
	if len(key) > 64 {
		return ErrInvalidKeySize
	}
	return nil
}
