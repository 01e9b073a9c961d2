package processor

import "errors"

var (
	// ErrDecode marks a source that is missing, unreadable or not an image.
	ErrDecode = errors.New("decode image")
	// ErrWrite marks a destination that could not be encoded or written.
	ErrWrite = errors.New("write image")
	// ErrUnsupportedFormat is reported, together with ErrWrite, when the output
	// extension has no encoder.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
