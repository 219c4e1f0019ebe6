// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the command-line client to
// talk to the circuit records server.
//
// [ServerAdapter] decouples the client commands from the protocol. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built on
// resty.
//
// Error bodies of the server are mapped by mapHTTPError onto the sentinel
// values in errors.go so that callers can use [errors.Is] (e.g.
// [ErrTokenExpired] for a 401 with reason "TokenExpired").
package adapter

import (
	"context"

	"github.com/MKhiriev/go-circuit-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines the client's view of the circuit records API.
// Implementations are responsible for serialisation, attaching the bearer
// token and mapping error responses to the sentinel errors of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Login exchanges credentials for an access token. On success the token
	// is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	// Members lists member records matching filter.
	Members(ctx context.Context, filter models.MemberFilter) ([]models.Member, error)

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}
