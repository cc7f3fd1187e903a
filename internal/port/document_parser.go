package port

import "context"

// ParseInput carries the raw bytes of one document.
type ParseInput struct {
	Filename string
	Data     []byte
}

// TextParser extracts the text layer of a document format.
type TextParser interface {
	Parse(ctx context.Context, input ParseInput) (string, error)
	SupportedFormats() []string
}
