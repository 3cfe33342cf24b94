package mask

import "errors"

// Error kinds returned by mask operations. Wrapped errors carry the detail;
// callers match the kind with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
)
