package paseto

import (
	"crypto"
	"crypto/ed25519"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/dmitrymomot/pasetokit/pkg/pae"
)

// v2: XChaCha20-Poly1305 with a message-keyed BLAKE2b nonce, Ed25519 for
// the public purpose. No implicit assertion input in this version.

const (
	v2LocalHeader  = "v2.local."
	v2PublicHeader = "v2.public."

	v2SeedSize  = 24
	v2NonceSize = 24
	v2TagSize   = 16

	ed25519SigSize = ed25519.SignatureSize
)

// v2Nonce hashes the payload under the random seed, making the AEAD nonce
// a collision-resistant function of the message.
func v2Nonce(seed, payload []byte) ([]byte, error) {
	h, err := blake2b.New(v2NonceSize, seed)
	if err != nil {
		return nil, err
	}
	h.Write(payload)
	return h.Sum(nil), nil
}

func v2LocalSeal(key, seed, payload, footer, _ []byte) ([]byte, error) {
	n, err := v2Nonce(seed, payload)
	if err != nil {
		return nil, ErrEncrypt
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, ErrEncrypt
	}

	preAuth := pae.Encode([]byte(v2LocalHeader), n, footer)
	body := make([]byte, v2NonceSize, v2NonceSize+len(payload)+v2TagSize)
	copy(body, n)
	return aead.Seal(body, n, payload, preAuth), nil
}

func v2LocalOpen(key, body, footer, _ []byte) ([]byte, error) {
	n := body[:v2NonceSize]
	c := body[v2NonceSize:]

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, ErrDecrypt
	}

	preAuth := pae.Encode([]byte(v2LocalHeader), n, footer)
	// Open into a non-nil destination so an empty plaintext decodes to an
	// empty slice, matching the other versions.
	payload, err := aead.Open(make([]byte, 0, len(c)-v2TagSize), n, c, preAuth)
	if err != nil {
		return nil, ErrDecrypt
	}
	return payload, nil
}

func ed25519CheckSecret(key crypto.PrivateKey) error {
	priv, ok := key.(ed25519.PrivateKey)
	if !ok {
		return ErrInvalidKeyType
	}
	if len(priv) != ed25519.PrivateKeySize {
		return ErrInvalidKeySize
	}
	return nil
}

func ed25519CheckPublic(key crypto.PublicKey) error {
	pub, ok := key.(ed25519.PublicKey)
	if !ok {
		return ErrInvalidKeyType
	}
	if len(pub) != ed25519.PublicKeySize {
		return ErrInvalidKeySize
	}
	return nil
}

func v2PublicSign(key crypto.PrivateKey, payload, footer, _ []byte) ([]byte, error) {
	priv := key.(ed25519.PrivateKey)
	m2 := pae.Encode([]byte(v2PublicHeader), payload, footer)
	sig := ed25519.Sign(priv, m2)
	return append(append([]byte{}, payload...), sig...), nil
}

func v2PublicVerify(key crypto.PublicKey, body, footer, _ []byte) ([]byte, error) {
	pub := key.(ed25519.PublicKey)
	m := body[:len(body)-ed25519SigSize]
	sig := body[len(body)-ed25519SigSize:]

	m2 := pae.Encode([]byte(v2PublicHeader), m, footer)
	if !ed25519.Verify(pub, m2, sig) {
		return nil, ErrVerify
	}
	return m, nil
}
