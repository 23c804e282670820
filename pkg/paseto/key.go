package paseto

import (
	"crypto"

	"github.com/dmitrymomot/pasetokit/pkg/paserk"
)

// Key binds raw key material to the single (version, purpose) pair it may
// be used with. A Key is immutable after construction and safe for
// concurrent use.
//
// For the public purpose the secret half is optional: a Key built from a
// public key alone can only verify. The capability is encoded by shape,
// not by a runtime flag.
type Key struct {
	version Version
	purpose Purpose

	material []byte // local purpose only

	secret crypto.PrivateKey // public purpose, nil when verify-only
	public crypto.PublicKey  // public purpose, always set
}

// NewLocalKey constructs a symmetric key for the given version. Material
// rules are fixed per version: v1/v3 accept any non-empty key, v2 requires
// exactly 32 bytes, v4 requires 1 to 64 bytes.
func NewLocalKey(v Version, material []byte) (*Key, error) {
	suite, ok := localSuites[v]
	if !ok {
		return nil, ErrUnsupportedToken
	}
	if err := suite.checkKey(material); err != nil {
		return nil, err
	}

	m := make([]byte, len(material))
	copy(m, material)
	return &Key{version: v, purpose: Local, material: m}, nil
}

// NewSecretKey constructs a signing key for the given version. The key
// type must match the version's suite: *rsa.PrivateKey (2048-bit) for v1,
// ed25519.PrivateKey for v2/v4, *ecdsa.PrivateKey on P-384 for v3. The
// public half is derived and retained for verification.
func NewSecretKey(v Version, key crypto.PrivateKey) (*Key, error) {
	suite, ok := publicSuites[v]
	if !ok {
		return nil, ErrUnsupportedToken
	}
	if err := suite.checkSecret(key); err != nil {
		return nil, err
	}
	return &Key{
		version: v,
		purpose: Public,
		secret:  key,
		public:  derivePublic(key),
	}, nil
}

// NewPublicKey constructs a verify-only key for the given version.
func NewPublicKey(v Version, key crypto.PublicKey) (*Key, error) {
	suite, ok := publicSuites[v]
	if !ok {
		return nil, ErrUnsupportedToken
	}
	if err := suite.checkPublic(key); err != nil {
		return nil, err
	}
	return &Key{version: v, purpose: Public, public: key}, nil
}

// FromPaserk reconstructs a Key from its PASERK string. The parsed
// material is routed through the same validating constructors as direct
// construction, so both entry points share one invariant-checking path.
// Identifier strings (lid/pid/sid) are one-way and cannot become keys.
func FromPaserk(s string) (*Key, error) {
	version, typ, material, err := paserk.Parse(s)
	if err != nil {
		return nil, err
	}

	v := Version(version)
	switch typ {
	case paserk.TypeLocal:
		return NewLocalKey(v, material)
	case paserk.TypePublic:
		pub, err := decodePublicMaterial(v, material)
		if err != nil {
			return nil, err
		}
		return NewPublicKey(v, pub)
	case paserk.TypeSecret:
		priv, err := decodeSecretMaterial(v, material)
		if err != nil {
			return nil, err
		}
		return NewSecretKey(v, priv)
	default:
		return nil, paserk.ErrDerivedType
	}
}

// Version reports the protocol version the key is bound to.
func (k *Key) Version() Version { return k.version }

// Purpose reports whether the key is local (symmetric) or public
// (asymmetric).
func (k *Key) Purpose() Purpose { return k.purpose }

// Header is the token prefix every token made with this key carries.
func (k *Key) Header() string { return header(k.version, k.purpose) }

// canSign reports whether the key holds a secret half.
func (k *Key) canSign() bool { return k.purpose == Public && k.secret != nil }

// Paserk serializes the key to its PASERK string. Local keys emit
// k{v}.local, asymmetric keys emit k{v}.secret when the secret half is
// held and k{v}.public otherwise.
func (k *Key) Paserk() (string, error) {
	switch {
	case k.purpose == Local:
		return paserk.Build(int(k.version), paserk.TypeLocal, k.material)
	case k.canSign():
		material, err := encodeSecretMaterial(k.version, k.secret)
		if err != nil {
			return "", err
		}
		return paserk.Build(int(k.version), paserk.TypeSecret, material)
	default:
		material, err := encodePublicMaterial(k.version, k.public)
		if err != nil {
			return "", err
		}
		return paserk.Build(int(k.version), paserk.TypePublic, material)
	}
}

// PaserkID derives the key's stable content identifier (k{v}.lid/pid/sid).
// The identifier is a one-way digest over both the serialized key and its
// declared role.
func (k *Key) PaserkID() (string, error) {
	s, err := k.Paserk()
	if err != nil {
		return "", err
	}
	return paserk.ID(s)
}
