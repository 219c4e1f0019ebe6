// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

// Token validation failures. [ValidateToken] wraps exactly one of them, so
// callers can log the kind while rejecting all three the same way.
var (
	// ErrTokenExpired is returned when the signature is valid but the exp
	// claim lies in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenMalformed is returned when the token cannot be decoded, its
	// signature does not match, or it was signed by another issuer or with an
	// unexpected algorithm.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenMissingClaims is returned when a correctly signed token lacks
	// one of the required claims (exp, iss, user_id, username, role).
	ErrTokenMissingClaims = errors.New("token is missing required claims")
)

var (
	// ErrInvalidTokenParams is returned by [IssueToken] when any of its
	// identity or signing inputs is empty.
	ErrInvalidTokenParams = errors.New("invalid params for issuing JWT token")

	// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] when the
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
