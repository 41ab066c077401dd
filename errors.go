package climg

import "errors"

var (
	// ErrUnsupportedFormat is returned for files that are not .png, .jpg or .jpeg
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrDecode is returned when the codec rejects the byte stream or the file cannot be read
	ErrDecode = errors.New("failed to decode image")
	// ErrInvalidSize is returned for malformed width/height specifications
	ErrInvalidSize = errors.New("invalid size")
	// ErrEmptyImage is returned when rendering a grid without pixels
	ErrEmptyImage = errors.New("image has no pixels")
	// ErrJaggedGrid is returned when grid rows differ in length
	ErrJaggedGrid = errors.New("grid rows have unequal lengths")
	// ErrUnsupportedProtocol is returned by GetRenderer for unknown protocols
	ErrUnsupportedProtocol = errors.New("unsupported protocol")
)
