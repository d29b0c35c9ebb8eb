package services

import "errors"

// Analysis service errors
var (
	ErrEmptyDocument    = errors.New("document is empty")
	ErrDocumentTooLarge = errors.New("document exceeds the upload size limit")

	// General errors
	ErrInvalidInput       = errors.New("invalid input")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
)
