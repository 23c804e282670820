// Package claims provides JSON claim payloads on top of pkg/paseto.
//
// RegisteredClaims carries the PASETO registered claim set (iss, sub, aud,
// jti, and the RFC 3339 temporal claims exp/nbf/iat) and validates the
// temporal ones. Issue and Parse wrap paseto.Encode/Decode with JSON
// marshaling for any claims structure, validating it after decode when it
// implements Validator.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/pasetokit/pkg/claims"
//	    "github.com/dmitrymomot/pasetokit/pkg/paseto"
//	)
//
//	type SessionClaims struct {
//	    claims.RegisteredClaims
//	    Role string `json:"role,omitempty"`
//	}
//
//	key, _ := paseto.GenerateLocalKey(paseto.V4)
//
//	c := SessionClaims{RegisteredClaims: claims.New("user_42"), Role: "admin"}
//	c.Expiration = claims.In(time.Hour)
//
//	token, err := claims.Issue(key, c)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	parsed, _, err := claims.Parse[SessionClaims](key, token)
//	if err != nil {
//	    log.Fatal(err) // claims.ErrTokenExpired once the hour passes
//	}
package claims
