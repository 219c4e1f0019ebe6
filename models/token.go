package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenType is the value of token_type in a login response.
const TokenType = "bearer"

// Claims is the claim set carried by an access token.
//
// It embeds [jwt.RegisteredClaims] for exp, iat and iss. The identity claims
// are kept at the top level of the payload under the names the clients of the
// service already read (user_id, username, role).
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`

	jwt.RegisteredClaims
}

// Token is an issued access token together with the user it was issued for.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Claims holds the claims embedded in SignedString.
	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// LoginResponse is returned by POST /api/auth/login.
type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        PublicUser `json:"user"`
}
