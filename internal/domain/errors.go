package domain

import "errors"

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtractionFailed  = errors.New("text extraction failed")
	ErrFileTooLarge      = errors.New("file exceeds maximum allowed size")
	ErrInvalidSource     = errors.New("invalid document source")
	ErrStorageDisabled   = errors.New("object storage is not configured")
)
