package claims

import (
	"encoding/json"
	"errors"

	"github.com/dmitrymomot/pasetokit/pkg/paseto"
)

// Validator is implemented by claims types that can check themselves after
// decode. RegisteredClaims implements it, so any struct embedding it gets
// temporal validation for free.
type Validator interface {
	Valid() error
}

// Issue JSON-encodes claims and seals them into a token under k. Options
// are forwarded to paseto.Encode.
func Issue[T any](k *paseto.Key, claims T, opts ...paseto.Option) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", errors.Join(ErrMarshalingFailed, err)
	}
	return paseto.Encode(k, payload, opts...)
}

// Parse validates token under k, decodes the JSON payload into T, and
// runs T's Valid check when it implements Validator. The raw footer is
// returned alongside the claims.
func Parse[T any](k *paseto.Key, token string, opts ...paseto.Option) (T, []byte, error) {
	var claims T

	payload, footer, err := paseto.Decode(k, token, opts...)
	if err != nil {
		return claims, nil, err
	}

	if err := json.Unmarshal(payload, &claims); err != nil {
		return claims, nil, errors.Join(ErrInvalidPayload, err)
	}

	if v, ok := any(claims).(Validator); ok {
		if err := v.Valid(); err != nil {
			return claims, nil, err
		}
	}
	return claims, footer, nil
}
