package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed validity window of an access token. Tokens cannot be
// revoked or shortened after issuance.
const TokenTTL = 24 * time.Hour

// IssueToken creates a signed HMAC-SHA256 JWT for the given user.
//
// The token carries user_id, username and role as top-level claims plus the
// registered claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now + TokenTTL
//
// Returns an error if the identity fields, issuer or sign key are empty.
//
// Example usage:
//
//	token, err := utils.IssueToken(user.ID, user.Username, user.Role, "circuit-records", "secret", time.Now())
func IssueToken(userID, username string, role models.Role, issuer, signKey string, now time.Time) (models.Token, error) {
	if userID == "" || username == "" || role == "" || issuer == "" || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := models.Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}

// ValidateToken verifies the signature, algorithm, issuer and expiry of
// tokenString at the instant now and returns its claims.
//
// Every failure wraps exactly one of the token sentinels so that callers can
// tell them apart with [errors.Is]:
//   - [ErrTokenExpired]       — the signature is valid but exp is in the past
//   - [ErrTokenMissingClaims] — exp, iss, user_id, username or role is absent
//   - [ErrTokenMalformed]     — anything else (bad encoding, signature
//     mismatch, wrong algorithm, wrong issuer)
func ValidateToken(tokenString, signKey, issuer string, now time.Time) (models.Claims, error) {
	var claims models.Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Claims{}, classifyTokenError(err)
	}

	if claims.UserID == "" || claims.Username == "" || claims.Role == "" {
		return models.Claims{}, ErrTokenMissingClaims
	}

	return claims, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return fmt.Errorf("%w: %w", ErrTokenMissingClaims, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
