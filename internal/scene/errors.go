package scene

import "errors"

// Domain errors for registry and body operations.
var (
	// ErrDuplicateName indicates a body with the same name is already registered.
	ErrDuplicateName = errors.New("scene: duplicate body name")

	// ErrNotFound indicates no body matched the requested name.
	ErrNotFound = errors.New("scene: body not found")

	// ErrInvalidBody indicates a body record with a non-positive or non-finite
	// radius, distance or orbital period.
	ErrInvalidBody = errors.New("scene: invalid body")

	// ErrInvalidMetadata indicates a body record missing an expected metadata
	// field. Callers recover by substituting a "not available" display value.
	ErrInvalidMetadata = errors.New("scene: invalid metadata")
)
