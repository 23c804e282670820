// Package paserk implements the PASERK key-serialization string format.
//
// A PASERK string is "k{version}.{type}.{base64url(material)}" with no
// base64 padding. Data types (local, public, secret) carry raw key
// material; identifier types (lid, pid, sid) are one-way digests that name
// a key without revealing it. Identifiers bind both the key bytes and the
// key's role, so a local key and a public key with identical raw bytes
// never share an identifier.
//
// The package deals purely in strings and bytes. Turning PASERK material
// into usable keys (and back) lives in pkg/paseto, which routes every
// parsed string through its validating key constructors.
//
// # Usage
//
//	import "github.com/dmitrymomot/pasetokit/pkg/paserk"
//
//	s, err := paserk.Build(4, paserk.TypeLocal, keyBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id, err := paserk.ID(s)   // "k4.lid...."
package paserk
