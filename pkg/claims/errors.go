package claims

import "errors"

var (
	ErrTokenExpired     = errors.New("claims: token is expired")
	ErrTokenNotYetValid = errors.New("claims: token is not valid yet")
	ErrInvalidPayload   = errors.New("claims: payload is not a valid claims document")
	ErrMarshalingFailed = errors.New("claims: failed to marshal claims")
)
