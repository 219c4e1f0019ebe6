// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains application-level constants shared by the server
// handlers and the command-line client.
//
// Msg* constants are the human-readable texts written into response bodies.
// Reason* constants are the machine-stable values of the "reason" field of
// an error body; the client maps them back to its own sentinel errors.
package app

const (
	// MsgUserCreated acknowledges a successful registration.
	MsgUserCreated = "User created successfully"

	// MsgMemberDeleted acknowledges removal of a member record.
	MsgMemberDeleted = "Member deleted successfully"

	// MsgFileUploaded acknowledges a stored upload.
	MsgFileUploaded = "File uploaded successfully"

	// MsgInvalidCredentials is returned for any failed login. It does not
	// reveal whether the username exists.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgTokenExpired is returned when a bearer token is well-formed but
	// past its expiry.
	MsgTokenExpired = "Token expired"

	// MsgInvalidToken is returned when a bearer token cannot be verified or
	// no longer resolves to an active account.
	MsgInvalidToken = "Invalid token"

	// MsgNotAuthenticated is returned when no usable bearer credentials
	// were sent.
	MsgNotAuthenticated = "Not authenticated"

	// MsgUsernameExists is returned when registration hits a taken username.
	MsgUsernameExists = "Username already exists"

	// MsgNotEnoughPermissions is returned when the caller's role does not
	// grant access to a route.
	MsgNotEnoughPermissions = "Not enough permissions"

	// MsgFileTooLarge is returned when an upload exceeds the configured
	// size limit.
	MsgFileTooLarge = "File too large"

	MsgNotFound            = "Not found"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgInternalServerError = "Internal server error"
)

// Values of the "reason" field of an error body.
const (
	ReasonInvalidCredentials = "InvalidCredentials"
	ReasonDuplicateUsername  = "DuplicateUsername"
	ReasonTokenExpired       = "TokenExpired"
	ReasonInvalidToken       = "InvalidToken"
	ReasonNotAuthenticated   = "NotAuthenticated"
	ReasonValidationError    = "ValidationError"
	ReasonForbidden          = "Forbidden"
	ReasonNotFound           = "NotFound"
	ReasonMethodNotAllowed   = "MethodNotAllowed"
	ReasonRequestTooLarge    = "RequestTooLarge"
	ReasonInternalError      = "InternalError"
)
