package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a format tag is not in the registry.
	ErrCodecNotFound = errors.New("codec: format not found")

	// ErrDuplicateTag is returned by Register when a tag is already registered.
	ErrDuplicateTag = errors.New("codec: format already registered")
)
