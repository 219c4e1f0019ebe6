// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. They are mapped to
// responses together with the service and store errors in errorStatusMap.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidRequestBody wraps JSON and multipart decoding failures.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrInvalidQueryParameter wraps query-string values that cannot be
	// parsed, such as an unknown society or a malformed date.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")

	// ErrRequestTooLarge is reported when a body exceeds its size limit.
	ErrRequestTooLarge = errors.New("request body too large")

	// ErrRouteNotFound is reported for paths no route matches.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is reported when the path exists but not for the
	// requested method.
	ErrMethodNotAllowed = errors.New("method not allowed")
)
