// Package pae implements PASETO's Pre-Authentication Encoding.
//
// PAE turns an ordered list of byte strings into a single canonical byte
// string that is safe to feed into an AEAD as associated data or into a
// signature as the message. Every element is length-prefixed, so no two
// distinct lists share an encoding: ["ab","c"] and ["a","bc"] produce
// different output even though their concatenations collide.
//
// There is deliberately no decoder. Verification never parses PAE output
// back into parts; it re-derives the encoding from independently parsed
// fields and compares authentication tags.
//
// # Usage
//
//	import "github.com/dmitrymomot/pasetokit/pkg/pae"
//
//	preAuth := pae.Encode(header, nonce, footer)
package pae
