package paseto

import (
	"crypto"
	"crypto/ed25519"
	"crypto/hmac"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"

	"github.com/dmitrymomot/pasetokit/pkg/pae"
)

// v4: XChaCha20 stream cipher with a keyed-BLAKE2b MAC in
// encrypt-then-MAC, Ed25519 for the public purpose. Implicit assertions
// join the authenticated input in both modes.

const (
	v4LocalHeader  = "v4.local."
	v4PublicHeader = "v4.public."

	v4SeedSize  = 32
	v4NonceSize = 32
	v4MacSize   = 32
)

// v4Keys derives the cipher key, cipher nonce, and MAC key from the token
// nonce with keyed BLAKE2b, domain-separated by info prefix.
func v4Keys(key, n []byte) (ek, n2, ak []byte, err error) {
	eh, err := blake2b.New(56, key)
	if err != nil {
		return nil, nil, nil, err
	}
	eh.Write([]byte("paseto-encryption-key"))
	eh.Write(n)
	tmp := eh.Sum(nil)
	ek, n2 = tmp[:32], tmp[32:56]

	ah, err := blake2b.New(32, key)
	if err != nil {
		return nil, nil, nil, err
	}
	ah.Write([]byte("paseto-auth-key-for-aead"))
	ah.Write(n)
	return ek, n2, ah.Sum(nil), nil
}

func v4Nonce(seed, payload []byte) ([]byte, error) {
	h, err := blake2b.New(v4NonceSize, seed)
	if err != nil {
		return nil, err
	}
	h.Write(payload)
	return h.Sum(nil), nil
}

func v4LocalSeal(key, seed, payload, footer, assertion []byte) ([]byte, error) {
	n, err := v4Nonce(seed, payload)
	if err != nil {
		return nil, ErrEncrypt
	}

	ek, n2, ak, err := v4Keys(key, n)
	if err != nil {
		return nil, ErrEncrypt
	}

	stream, err := chacha20.NewUnauthenticatedCipher(ek, n2)
	if err != nil {
		return nil, ErrEncrypt
	}
	c := make([]byte, len(payload))
	stream.XORKeyStream(c, payload)

	preAuth := pae.Encode([]byte(v4LocalHeader), n, c, footer, assertion)
	th, err := blake2b.New(v4MacSize, ak)
	if err != nil {
		return nil, ErrEncrypt
	}
	th.Write(preAuth)

	body := make([]byte, 0, v4NonceSize+len(c)+v4MacSize)
	body = append(body, n...)
	body = append(body, c...)
	return th.Sum(body), nil
}

func v4LocalOpen(key, body, footer, assertion []byte) ([]byte, error) {
	n := body[:v4NonceSize]
	c := body[v4NonceSize : len(body)-v4MacSize]
	tag := body[len(body)-v4MacSize:]

	ek, n2, ak, err := v4Keys(key, n)
	if err != nil {
		return nil, ErrDecrypt
	}

	th, err := blake2b.New(v4MacSize, ak)
	if err != nil {
		return nil, ErrDecrypt
	}
	th.Write(pae.Encode([]byte(v4LocalHeader), n, c, footer, assertion))
	if !hmac.Equal(tag, th.Sum(nil)) {
		return nil, ErrDecrypt
	}

	stream, err := chacha20.NewUnauthenticatedCipher(ek, n2)
	if err != nil {
		return nil, ErrDecrypt
	}
	payload := make([]byte, len(c))
	stream.XORKeyStream(payload, c)
	return payload, nil
}

func v4PublicSign(key crypto.PrivateKey, payload, footer, assertion []byte) ([]byte, error) {
	priv := key.(ed25519.PrivateKey)
	m2 := pae.Encode([]byte(v4PublicHeader), payload, footer, assertion)
	sig := ed25519.Sign(priv, m2)
	return append(append([]byte{}, payload...), sig...), nil
}

func v4PublicVerify(key crypto.PublicKey, body, footer, assertion []byte) ([]byte, error) {
	pub := key.(ed25519.PublicKey)
	m := body[:len(body)-ed25519SigSize]
	sig := body[len(body)-ed25519SigSize:]

	m2 := pae.Encode([]byte(v4PublicHeader), m, footer, assertion)
	if !ed25519.Verify(pub, m2, sig) {
		return nil, ErrVerify
	}
	return m, nil
}
