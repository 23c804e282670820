package pae

import "encoding/binary"

// Encode produces the canonical Pre-Authentication Encoding of parts:
// an 8-byte little-endian part count, then for each part an 8-byte
// little-endian length followed by the raw bytes. It is total and never
// fails; a nil part encodes the same as an empty one.
func Encode(parts ...[]byte) []byte {
	size := 8
	for _, p := range parts {
		size += 8 + len(p)
	}

	out := make([]byte, 8, size)
	binary.LittleEndian.PutUint64(out, uint64(len(parts)))
	for _, p := range parts {
		var n [8]byte
		binary.LittleEndian.PutUint64(n[:], uint64(len(p)))
		out = append(out, n[:]...)
		out = append(out, p...)
	}
	return out
}
