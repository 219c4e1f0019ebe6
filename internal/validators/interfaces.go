// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the services.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//   - RequestValidator: the rules for every request body the API accepts,
//     expressed with ozzo-validation.
//
// Usage patterns:
//  1. Inject a Validator into the services.
//  2. Call Validate with the decoded request before touching storage.
//  3. Map errors matching ErrValidation to 400 responses.
//
// Field errors are reported by JSON field name, e.g.
// "validation failed: full_name: cannot be blank.".
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input. Every rule violation is
	// returned wrapped in ErrValidation.
	Validate(ctx context.Context, obj any) error
}
