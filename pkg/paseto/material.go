package paseto

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"
	"errors"
	"math/big"
)

// PASERK material forms per version:
//   - v2/v4: 32-byte raw Ed25519 public key, 32-byte seed for the secret.
//   - v3:    49-byte SEC1 compressed P-384 point, 48-byte scalar.
//   - v1:    PKCS#1 DER (RSA keys have no fixed-size raw form).

func derivePublic(key crypto.PrivateKey) crypto.PublicKey {
	if signer, ok := key.(crypto.Signer); ok {
		return signer.Public()
	}
	return nil
}

func encodePublicMaterial(v Version, key crypto.PublicKey) ([]byte, error) {
	switch v {
	case V1:
		pub, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, ErrInvalidKeyType
		}
		return x509.MarshalPKCS1PublicKey(pub), nil
	case V3:
		pub, ok := key.(*ecdsa.PublicKey)
		if !ok {
			return nil, ErrInvalidKeyType
		}
		return elliptic.MarshalCompressed(elliptic.P384(), pub.X, pub.Y), nil
	default:
		pub, ok := key.(ed25519.PublicKey)
		if !ok {
			return nil, ErrInvalidKeyType
		}
		return []byte(pub), nil
	}
}

func decodePublicMaterial(v Version, material []byte) (crypto.PublicKey, error) {
	switch v {
	case V1:
		pub, err := x509.ParsePKCS1PublicKey(material)
		if err != nil {
			return nil, errors.Join(ErrInvalidKeyType, err)
		}
		return pub, nil
	case V3:
		x, y := elliptic.UnmarshalCompressed(elliptic.P384(), material)
		if x == nil {
			return nil, ErrInvalidKeyType
		}
		return &ecdsa.PublicKey{Curve: elliptic.P384(), X: x, Y: y}, nil
	default:
		if len(material) != ed25519.PublicKeySize {
			return nil, ErrInvalidKeySize
		}
		return ed25519.PublicKey(material), nil
	}
}

func encodeSecretMaterial(v Version, key crypto.PrivateKey) ([]byte, error) {
	switch v {
	case V1:
		priv, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, ErrInvalidKeyType
		}
		return x509.MarshalPKCS1PrivateKey(priv), nil
	case V3:
		priv, ok := key.(*ecdsa.PrivateKey)
		if !ok {
			return nil, ErrInvalidKeyType
		}
		scalar := make([]byte, 48)
		priv.D.FillBytes(scalar)
		return scalar, nil
	default:
		priv, ok := key.(ed25519.PrivateKey)
		if !ok {
			return nil, ErrInvalidKeyType
		}
		return priv.Seed(), nil
	}
}

func decodeSecretMaterial(v Version, material []byte) (crypto.PrivateKey, error) {
	switch v {
	case V1:
		priv, err := x509.ParsePKCS1PrivateKey(material)
		if err != nil {
			return nil, errors.Join(ErrInvalidKeyType, err)
		}
		return priv, nil
	case V3:
		if len(material) != 48 {
			return nil, ErrInvalidKeySize
		}
		d := new(big.Int).SetBytes(material)
		if d.Sign() == 0 || d.Cmp(elliptic.P384().Params().N) >= 0 {
			return nil, ErrInvalidKeyType
		}
		priv := &ecdsa.PrivateKey{D: d}
		priv.Curve = elliptic.P384()
		priv.X, priv.Y = priv.Curve.ScalarBaseMult(material)
		return priv, nil
	default:
		if len(material) != ed25519.SeedSize {
			return nil, ErrInvalidKeySize
		}
		return ed25519.NewKeyFromSeed(material), nil
	}
}
