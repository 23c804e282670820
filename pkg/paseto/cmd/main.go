package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dmitrymomot/pasetokit/pkg/paseto"
)

func main() {
	version := flag.Int("version", 4, "PASETO protocol version (1-4)")
	purpose := flag.String("purpose", "local", "key purpose: local or public")
	flag.Parse()

	v := paseto.Version(*version)

	switch *purpose {
	case "local":
		key, err := paseto.GenerateLocalKey(v)
		if err != nil {
			log.Fatalf("Failed to generate local key: %v", err)
		}
		s, err := key.Paserk()
		if err != nil {
			log.Fatalf("Failed to serialize key: %v", err)
		}
		id, err := key.PaserkID()
		if err != nil {
			log.Fatalf("Failed to derive key id: %v", err)
		}
		fmt.Printf("Generated local key (for PASETO_KEY env var): \n———\n%s\n———\nKey ID: %s\n", s, id)
	case "public":
		secret, public, err := paseto.GenerateKeyPair(v)
		if err != nil {
			log.Fatalf("Failed to generate key pair: %v", err)
		}
		ss, err := secret.Paserk()
		if err != nil {
			log.Fatalf("Failed to serialize secret key: %v", err)
		}
		ps, err := public.Paserk()
		if err != nil {
			log.Fatalf("Failed to serialize public key: %v", err)
		}
		id, err := public.PaserkID()
		if err != nil {
			log.Fatalf("Failed to derive key id: %v", err)
		}
		fmt.Printf("Generated signing key (for PASETO_KEY env var): \n———\n%s\n———\nPublic key: %s\nKey ID: %s\n", ss, ps, id)
	default:
		log.Fatalf("Unknown purpose %q: want local or public", *purpose)
	}
}
