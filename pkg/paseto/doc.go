// Package paseto implements Platform-Agnostic SEcurity TOkens: versioned
// bearer tokens that bind a payload and an optional footer to either
// symmetric authenticated encryption ("local") or an asymmetric signature
// ("public").
//
// Each protocol version pins one fixed cipher suite; the key's version and
// purpose select the suite, and the token header is authenticated so the
// two can never diverge:
//
//	v1: AES-256-CTR + HMAC-SHA384 / RSA-PSS (2048-bit)
//	v2: XChaCha20-Poly1305 / Ed25519
//	v3: AES-256-CTR + HMAC-SHA384 / ECDSA P-384
//	v4: XChaCha20 + BLAKE2b MAC / Ed25519
//
// Token format: "v{n}.{local|public}.base64url(body)[.base64url(footer)]"
// with unpadded base64url throughout.
//
// # Usage
//
//	import "github.com/dmitrymomot/pasetokit/pkg/paseto"
//
//	key, err := paseto.GenerateLocalKey(paseto.V4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := paseto.Encode(key, []byte(`{"sub":"42"}`),
//	    paseto.WithFooter([]byte("kid:main")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	payload, footer, err := paseto.Decode(key, token)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Keys serialize to PASERK strings (Key.Paserk, FromPaserk) and have
// stable one-way identifiers (Key.PaserkID) for logging and key lookup
// without exposing material.
//
// Decoding failures collapse to ErrDecrypt or ErrVerify with no further
// detail; malformed input is reported as ErrInvalidToken or
// ErrUnsupportedToken before any cryptographic work. All operations are
// stateless and safe for concurrent use.
package paseto
