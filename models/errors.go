package models

import "errors"

// ErrUnknownEnumValue is returned when a role, society or organization
// outside the fixed set is decoded or parsed.
var ErrUnknownEnumValue = errors.New("unknown enum value")
