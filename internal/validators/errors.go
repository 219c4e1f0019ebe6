package validators

import "errors"

var (
	// ErrValidation wraps every rule violation. The wrapped error lists the
	// offending fields by their JSON names.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)
