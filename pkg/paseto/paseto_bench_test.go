package paseto_test

import (
	"testing"

	"github.com/dmitrymomot/pasetokit/pkg/paseto"
)

func benchLocal(b *testing.B, v paseto.Version) {
	key, err := paseto.GenerateLocalKey(v)
	if err != nil {
		b.Fatal(err)
	}
	payload := []byte(`{"sub":"user_42","role":"admin"}`)

	b.Run("encode", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := paseto.Encode(key, payload); err != nil {
				b.Fatal(err)
			}
		}
	})

	token, err := paseto.Encode(key, payload)
	if err != nil {
		b.Fatal(err)
	}
	b.Run("decode", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, _, err := paseto.Decode(key, token); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkV2Local(b *testing.B) { benchLocal(b, paseto.V2) }
func BenchmarkV4Local(b *testing.B) { benchLocal(b, paseto.V4) }

func BenchmarkV4Public(b *testing.B) {
	secret, public, err := paseto.GenerateKeyPair(paseto.V4)
	if err != nil {
		b.Fatal(err)
	}
	payload := []byte(`{"sub":"user_42","role":"admin"}`)

	b.Run("sign", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := paseto.Encode(secret, payload); err != nil {
				b.Fatal(err)
			}
		}
	})

	token, err := paseto.Encode(secret, payload)
	if err != nil {
		b.Fatal(err)
	}
	b.Run("verify", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, _, err := paseto.Decode(public, token); err != nil {
				b.Fatal(err)
			}
		}
	})
}
