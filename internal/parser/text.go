package parser

import (
	"context"
	"strings"

	"fnolrouter/internal/port"
)

// TextParser handles plain text (.txt) files.
type TextParser struct{}

func (p *TextParser) SupportedFormats() []string { return []string{"txt"} }

// Parse decodes the bytes as UTF-8, dropping invalid sequences, and normalizes line endings.
func (p *TextParser) Parse(_ context.Context, input port.ParseInput) (string, error) {
	text := strings.ToValidUTF8(string(input.Data), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), nil
}
