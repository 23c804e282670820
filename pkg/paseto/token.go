package paseto

import (
	"encoding/base64"
	"strings"
)

// b64 is the token payload alphabet: base64url without padding, as the
// wire format requires.
var b64 = base64.RawURLEncoding

// buildToken assembles "v{n}.{purpose}.{body}[.{footer}]". An empty footer
// drops the fourth segment entirely.
func buildToken(hdr string, body, footer []byte) string {
	var sb strings.Builder
	sb.Grow(len(hdr) + b64.EncodedLen(len(body)) + 1 + b64.EncodedLen(len(footer)))
	sb.WriteString(hdr)
	sb.WriteString(b64.EncodeToString(body))
	if len(footer) > 0 {
		sb.WriteByte('.')
		sb.WriteString(b64.EncodeToString(footer))
	}
	return sb.String()
}

// parseToken splits a token into its header pair, decoded body, and
// decoded footer. A missing footer segment yields an empty footer, which
// still participates in PAE as a zero-length element.
func parseToken(token string) (Version, Purpose, []byte, []byte, error) {
	frags := strings.Split(token, ".")
	if len(frags) != 3 && len(frags) != 4 {
		return 0, "", nil, nil, ErrInvalidToken
	}

	v, ok := parseVersionSegment(frags[0])
	p := Purpose(frags[1])
	if !ok || !p.valid() {
		return 0, "", nil, nil, ErrUnsupportedToken
	}

	body, err := b64.DecodeString(frags[2])
	if err != nil {
		return 0, "", nil, nil, ErrInvalidToken
	}

	var footer []byte
	if len(frags) == 4 {
		footer, err = b64.DecodeString(frags[3])
		if err != nil {
			return 0, "", nil, nil, ErrInvalidToken
		}
	}
	return v, p, body, footer, nil
}

func parseVersionSegment(s string) (Version, bool) {
	if len(s) != 2 || s[0] != 'v' || s[1] < '1' || s[1] > '4' {
		return 0, false
	}
	return Version(s[1] - '0'), true
}
