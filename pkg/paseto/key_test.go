package paseto_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pasetokit/pkg/paserk"
	"github.com/dmitrymomot/pasetokit/pkg/paseto"
)

func TestNewLocalKeyValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		version  paseto.Version
		material []byte
		wantErr  error
	}{
		{"v1 empty", paseto.V1, nil, paseto.ErrMissingKey},
		{"v1 short key ok", paseto.V1, []byte("our-secret"), nil},
		{"v2 empty", paseto.V2, nil, paseto.ErrInvalidKeySize},
		{"v2 31 bytes", paseto.V2, make([]byte, 31), paseto.ErrInvalidKeySize},
		{"v2 33 bytes", paseto.V2, make([]byte, 33), paseto.ErrInvalidKeySize},
		{"v2 exactly 32", paseto.V2, make([]byte, 32), nil},
		{"v3 empty", paseto.V3, nil, paseto.ErrMissingKey},
		{"v3 long key ok", paseto.V3, make([]byte, 100), nil},
		{"v4 empty", paseto.V4, nil, paseto.ErrMissingKey},
		{"v4 short key ok", paseto.V4, []byte("our-secret"), nil},
		{"v4 64 bytes ok", paseto.V4, make([]byte, 64), nil},
		{"v4 65 bytes", paseto.V4, make([]byte, 65), paseto.ErrInvalidKeySize},
		{"unknown version", paseto.Version(9), make([]byte, 32), paseto.ErrUnsupportedToken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			key, err := paseto.NewLocalKey(tt.version, tt.material)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, key)
		})
	}
}

func TestNewLocalKeyCopiesMaterial(t *testing.T) {
	t.Parallel()

	material := bytes.Repeat([]byte{0x42}, 32)
	key, err := paseto.NewLocalKey(paseto.V4, material)
	require.NoError(t, err)

	token, err := paseto.Encode(key, []byte("Hello world!"))
	require.NoError(t, err)

	// Mutating the caller's slice must not affect the key.
	material[0] ^= 0xff
	_, _, err = paseto.Decode(key, token)
	require.NoError(t, err)
}

func TestAsymmetricKeyTypeMismatch(t *testing.T) {
	t.Parallel()

	edSecret, _, err := paseto.GenerateKeyPair(paseto.V2)
	require.NoError(t, err)
	edPaserk, err := edSecret.Paserk()
	require.NoError(t, err)
	_, _, material, err := paserk.Parse(edPaserk)
	require.NoError(t, err)

	// An Ed25519 seed is not a P-384 scalar-sized secret.
	_, err = paseto.FromPaserk("k3.secret." + strings.Split(edPaserk, ".")[2])
	require.Error(t, err)
	require.Len(t, material, 32)
}

func TestPaserkRoundTrip(t *testing.T) {
	t.Parallel()
	payload := []byte("Hello world!")

	t.Run("local", func(t *testing.T) {
		t.Parallel()
		for _, v := range allVersions {
			key, err := paseto.GenerateLocalKey(v)
			require.NoError(t, err)

			s, err := key.Paserk()
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(s, "k"), s)
			require.Contains(t, s, ".local.")

			restored, err := paseto.FromPaserk(s)
			require.NoError(t, err)

			// The restored key is behaviorally identical.
			token, err := paseto.Encode(key, payload)
			require.NoError(t, err)
			got, _, err := paseto.Decode(restored, token)
			require.NoError(t, err)
			assert.Equal(t, payload, got)

			token2, err := paseto.Encode(restored, payload)
			require.NoError(t, err)
			_, _, err = paseto.Decode(key, token2)
			require.NoError(t, err)
		}
	})

	t.Run("secret and public", func(t *testing.T) {
		t.Parallel()
		for _, v := range allVersions {
			secret, public := signingKeyPair(t, v)

			ss, err := secret.Paserk()
			require.NoError(t, err)
			require.Contains(t, ss, ".secret.")
			ps, err := public.Paserk()
			require.NoError(t, err)
			require.Contains(t, ps, ".public.")

			restoredSecret, err := paseto.FromPaserk(ss)
			require.NoError(t, err)
			restoredPublic, err := paseto.FromPaserk(ps)
			require.NoError(t, err)

			token, err := paseto.Encode(restoredSecret, payload)
			require.NoError(t, err)
			got, _, err := paseto.Decode(restoredPublic, token)
			require.NoError(t, err)
			assert.Equal(t, payload, got, v.String())

			// A restored public key stays verify-only.
			_, err = paseto.Encode(restoredPublic, payload)
			require.ErrorIs(t, err, paseto.ErrNotSigningKey)
		}
	})
}

func TestPaserkID(t *testing.T) {
	t.Parallel()

	t.Run("deterministic per key", func(t *testing.T) {
		t.Parallel()
		key, err := paseto.GenerateLocalKey(paseto.V4)
		require.NoError(t, err)

		id1, err := key.PaserkID()
		require.NoError(t, err)
		id2, err := key.PaserkID()
		require.NoError(t, err)
		require.Equal(t, id1, id2)
		require.True(t, strings.HasPrefix(id1, "k4.lid."))
	})

	t.Run("same bytes different purpose differ", func(t *testing.T) {
		t.Parallel()
		raw := bytes.Repeat([]byte{0x7f}, 32)

		local, err := paseto.NewLocalKey(paseto.V2, raw)
		require.NoError(t, err)
		// The same 32 bytes read as an Ed25519 public key.
		public, err := paseto.FromPaserk("k2.public." + strings.Split(mustPaserk(t, local), ".")[2])
		require.NoError(t, err)

		lid, err := local.PaserkID()
		require.NoError(t, err)
		pid, err := public.PaserkID()
		require.NoError(t, err)
		require.NotEqual(t, strings.TrimPrefix(lid, "k2.lid."), strings.TrimPrefix(pid, "k2.pid."))
	})

	t.Run("distinct keys get distinct ids", func(t *testing.T) {
		t.Parallel()
		k1, err := paseto.GenerateLocalKey(paseto.V4)
		require.NoError(t, err)
		k2, err := paseto.GenerateLocalKey(paseto.V4)
		require.NoError(t, err)

		id1, err := k1.PaserkID()
		require.NoError(t, err)
		id2, err := k2.PaserkID()
		require.NoError(t, err)
		require.NotEqual(t, id1, id2)
	})

	t.Run("secret and public ids differ", func(t *testing.T) {
		t.Parallel()
		secret, public := signingKeyPair(t, paseto.V4)

		sid, err := secret.PaserkID()
		require.NoError(t, err)
		pid, err := public.PaserkID()
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(sid, "k4.sid."))
		require.True(t, strings.HasPrefix(pid, "k4.pid."))
	})
}

func TestFromPaserkRejectsIdentifiers(t *testing.T) {
	t.Parallel()

	key, err := paseto.GenerateLocalKey(paseto.V4)
	require.NoError(t, err)
	id, err := key.PaserkID()
	require.NoError(t, err)

	_, err = paseto.FromPaserk(id)
	require.ErrorIs(t, err, paserk.ErrDerivedType)
}

func TestFromPaserkValidatesMaterial(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", "not-a-paserk"},
		{"v2 local wrong size", "k2.local.AAAA"},
		{"v2 public wrong size", "k2.public.AAAA"},
		{"v2 secret wrong size", "k2.secret.AAAA"},
		{"v3 public not a point", "k3.public." + strings.Repeat("A", 66)},
		{"unknown type", "k2.sealed.AAAA"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := paseto.FromPaserk(tt.input)
			require.Error(t, err)
		})
	}
}

func mustPaserk(t *testing.T, k *paseto.Key) string {
	t.Helper()
	s, err := k.Paserk()
	require.NoError(t, err)
	return s
}
