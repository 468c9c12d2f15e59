package token

import "github.com/golang-jwt/jwt/v5"

// Claim is the payload of an access token. The subject carries the
// login identifier (email or CPF) the principal is resolved from.
type Claim struct {
	Metadata Metadata `json:"metadata"`
	jwt.RegisteredClaims
}

type Metadata struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
}
