package paseto

import (
	"crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/dmitrymomot/pasetokit/pkg/pae"
)

// v1: AES-256-CTR with HMAC-SHA384 in encrypt-then-MAC, RSA-PSS for the
// public purpose. No implicit assertion input in this version.

const (
	v1LocalHeader  = "v1.local."
	v1PublicHeader = "v1.public."

	v1SeedSize  = 32
	v1NonceSize = 32
	v1MacSize   = 48 // full SHA-384 HMAC
	v1SigSize   = 256
	v1RSABits   = 2048
)

// v1SplitKey derives the encryption and authentication subkeys from the
// token nonce, so distinct tokens never share cipher or MAC keys.
func v1SplitKey(key, salt []byte) (ek, ak []byte, err error) {
	ek = make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha512.New384, key, salt, []byte("paseto-encryption-key")), ek); err != nil {
		return nil, nil, err
	}
	ak = make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha512.New384, key, salt, []byte("paseto-auth-key")), ak); err != nil {
		return nil, nil, err
	}
	return ek, ak, nil
}

func v1Nonce(seed, payload []byte) []byte {
	mac := hmac.New(sha512.New384, seed)
	mac.Write(payload)
	return mac.Sum(nil)[:v1NonceSize]
}

func v1LocalSeal(key, seed, payload, footer, _ []byte) ([]byte, error) {
	hdr := []byte(v1LocalHeader)
	n := v1Nonce(seed, payload)

	ek, ak, err := v1SplitKey(key, n[:16])
	if err != nil {
		return nil, ErrEncrypt
	}

	block, err := aes.NewCipher(ek)
	if err != nil {
		return nil, ErrEncrypt
	}
	c := make([]byte, len(payload))
	cipher.NewCTR(block, n[16:32]).XORKeyStream(c, payload)

	preAuth := pae.Encode(hdr, n, c, footer)
	mac := hmac.New(sha512.New384, ak)
	mac.Write(preAuth)

	body := make([]byte, 0, v1NonceSize+len(c)+v1MacSize)
	body = append(body, n...)
	body = append(body, c...)
	return mac.Sum(body), nil
}

func v1LocalOpen(key, body, footer, _ []byte) ([]byte, error) {
	hdr := []byte(v1LocalHeader)
	n := body[:v1NonceSize]
	c := body[v1NonceSize : len(body)-v1MacSize]
	tag := body[len(body)-v1MacSize:]

	ek, ak, err := v1SplitKey(key, n[:16])
	if err != nil {
		return nil, ErrDecrypt
	}

	// MAC over the ciphertext is confirmed before any decryption runs.
	mac := hmac.New(sha512.New384, ak)
	mac.Write(pae.Encode(hdr, n, c, footer))
	if !hmac.Equal(tag, mac.Sum(nil)) {
		return nil, ErrDecrypt
	}

	block, err := aes.NewCipher(ek)
	if err != nil {
		return nil, ErrDecrypt
	}
	payload := make([]byte, len(c))
	cipher.NewCTR(block, n[16:32]).XORKeyStream(payload, c)
	return payload, nil
}

func v1CheckSecret(key crypto.PrivateKey) error {
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return ErrInvalidKeyType
	}
	if priv.N.BitLen() != v1RSABits {
		return ErrInvalidKeySize
	}
	return nil
}

func v1CheckPublic(key crypto.PublicKey) error {
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return ErrInvalidKeyType
	}
	if pub.N.BitLen() != v1RSABits {
		return ErrInvalidKeySize
	}
	return nil
}

var v1PSSOptions = &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash, Hash: crypto.SHA384}

func v1PublicSign(key crypto.PrivateKey, payload, footer, _ []byte) ([]byte, error) {
	priv := key.(*rsa.PrivateKey)
	m2 := pae.Encode([]byte(v1PublicHeader), payload, footer)
	digest := sha512.Sum384(m2)

	sig, err := rsa.SignPSS(rand.Reader, priv, crypto.SHA384, digest[:], v1PSSOptions)
	if err != nil {
		return nil, ErrSign
	}
	return append(append([]byte{}, payload...), sig...), nil
}

func v1PublicVerify(key crypto.PublicKey, body, footer, _ []byte) ([]byte, error) {
	pub := key.(*rsa.PublicKey)
	m := body[:len(body)-v1SigSize]
	sig := body[len(body)-v1SigSize:]

	m2 := pae.Encode([]byte(v1PublicHeader), m, footer)
	digest := sha512.Sum384(m2)
	if err := rsa.VerifyPSS(pub, crypto.SHA384, digest[:], sig, v1PSSOptions); err != nil {
		return nil, ErrVerify
	}
	return m, nil
}
