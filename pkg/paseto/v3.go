package paseto

import (
	"crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"

	"github.com/dmitrymomot/pasetokit/pkg/pae"
)

// v3: AES-256-CTR with HMAC-SHA384, subkeys derived from the nonce via
// HKDF info binding; ECDSA over P-384 for the public purpose. Implicit
// assertions join the authenticated input in both modes.

const (
	v3LocalHeader  = "v3.local."
	v3PublicHeader = "v3.public."

	v3NonceSize = 32 // the random nonce is used directly, payload-independent
	v3MacSize   = 48
	v3SigSize   = 96 // r || s, 48 bytes each
)

// v3SplitKey folds the nonce into the HKDF info string rather than the
// salt, per the version's key-derivation discipline.
func v3SplitKey(key, n []byte) (ek, iv, ak []byte, err error) {
	tmp := make([]byte, 48)
	info := append([]byte("paseto-encryption-key"), n...)
	if _, err := io.ReadFull(hkdf.New(sha512.New384, key, nil, info), tmp); err != nil {
		return nil, nil, nil, err
	}
	ek, iv = tmp[:32], tmp[32:48]

	ak = make([]byte, 48)
	info = append([]byte("paseto-auth-key-for-aead"), n...)
	if _, err := io.ReadFull(hkdf.New(sha512.New384, key, nil, info), ak); err != nil {
		return nil, nil, nil, err
	}
	return ek, iv, ak, nil
}

func v3LocalSeal(key, seed, payload, footer, assertion []byte) ([]byte, error) {
	n := seed // the seed is the nonce in this version

	ek, iv, ak, err := v3SplitKey(key, n)
	if err != nil {
		return nil, ErrEncrypt
	}

	block, err := aes.NewCipher(ek)
	if err != nil {
		return nil, ErrEncrypt
	}
	c := make([]byte, len(payload))
	cipher.NewCTR(block, iv).XORKeyStream(c, payload)

	preAuth := pae.Encode([]byte(v3LocalHeader), n, c, footer, assertion)
	mac := hmac.New(sha512.New384, ak)
	mac.Write(preAuth)

	body := make([]byte, 0, v3NonceSize+len(c)+v3MacSize)
	body = append(body, n...)
	body = append(body, c...)
	return mac.Sum(body), nil
}

func v3LocalOpen(key, body, footer, assertion []byte) ([]byte, error) {
	n := body[:v3NonceSize]
	c := body[v3NonceSize : len(body)-v3MacSize]
	tag := body[len(body)-v3MacSize:]

	ek, iv, ak, err := v3SplitKey(key, n)
	if err != nil {
		return nil, ErrDecrypt
	}

	mac := hmac.New(sha512.New384, ak)
	mac.Write(pae.Encode([]byte(v3LocalHeader), n, c, footer, assertion))
	if !hmac.Equal(tag, mac.Sum(nil)) {
		return nil, ErrDecrypt
	}

	block, err := aes.NewCipher(ek)
	if err != nil {
		return nil, ErrDecrypt
	}
	payload := make([]byte, len(c))
	cipher.NewCTR(block, iv).XORKeyStream(payload, c)
	return payload, nil
}

func v3CheckSecret(key crypto.PrivateKey) error {
	priv, ok := key.(*ecdsa.PrivateKey)
	if !ok {
		return ErrInvalidKeyType
	}
	if priv.Curve != elliptic.P384() {
		return ErrInvalidKeyType
	}
	return nil
}

func v3CheckPublic(key crypto.PublicKey) error {
	pub, ok := key.(*ecdsa.PublicKey)
	if !ok {
		return ErrInvalidKeyType
	}
	if pub.Curve != elliptic.P384() {
		return ErrInvalidKeyType
	}
	return nil
}

func v3PublicSign(key crypto.PrivateKey, payload, footer, assertion []byte) ([]byte, error) {
	priv := key.(*ecdsa.PrivateKey)
	m2 := pae.Encode([]byte(v3PublicHeader), payload, footer, assertion)
	digest := sha512.Sum384(m2)

	r, s, err := ecdsa.Sign(rand.Reader, priv, digest[:])
	if err != nil {
		return nil, ErrSign
	}

	sig := make([]byte, v3SigSize)
	r.FillBytes(sig[:48])
	s.FillBytes(sig[48:])
	return append(append([]byte{}, payload...), sig...), nil
}

func v3PublicVerify(key crypto.PublicKey, body, footer, assertion []byte) ([]byte, error) {
	pub := key.(*ecdsa.PublicKey)
	m := body[:len(body)-v3SigSize]
	sig := body[len(body)-v3SigSize:]

	m2 := pae.Encode([]byte(v3PublicHeader), m, footer, assertion)
	digest := sha512.Sum384(m2)

	r := new(big.Int).SetBytes(sig[:48])
	s := new(big.Int).SetBytes(sig[48:])
	if !ecdsa.Verify(pub, digest[:], r, s) {
		return nil, ErrVerify
	}
	return m, nil
}
