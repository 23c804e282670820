package paseto

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
)

// localKeySize is the generated symmetric key length for every version.
// Versions 1, 3, and 4 accept other lengths on construction, but 32 bytes
// is the generated default throughout.
const localKeySize = 32

// GenerateLocalKey creates a new random symmetric key for the given
// version.
func GenerateLocalKey(v Version) (*Key, error) {
	if !v.valid() {
		return nil, ErrUnsupportedToken
	}
	material := make([]byte, localKeySize)
	if _, err := rand.Read(material); err != nil {
		return nil, err
	}
	return NewLocalKey(v, material)
}

// GenerateKeyPair creates a fresh signing key pair for the given version
// and returns both halves as ready-to-use keys.
func GenerateKeyPair(v Version) (secret, public *Key, err error) {
	switch v {
	case V1:
		priv, err := rsa.GenerateKey(rand.Reader, v1RSABits)
		if err != nil {
			return nil, nil, err
		}
		return keyPair(v, priv, &priv.PublicKey)
	case V2, V4:
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, nil, err
		}
		return keyPair(v, priv, pub)
	case V3:
		priv, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
		if err != nil {
			return nil, nil, err
		}
		return keyPair(v, priv, &priv.PublicKey)
	default:
		return nil, nil, ErrUnsupportedToken
	}
}

func keyPair(v Version, priv any, pub any) (*Key, *Key, error) {
	secret, err := NewSecretKey(v, priv)
	if err != nil {
		return nil, nil, err
	}
	public, err := NewPublicKey(v, pub)
	if err != nil {
		return nil, nil, err
	}
	return secret, public, nil
}
