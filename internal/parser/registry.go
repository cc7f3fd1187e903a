package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"fnolrouter/internal/domain"
	"fnolrouter/internal/port"
)

// Registry maps a document format (file extension) to its TextParser.
type Registry struct {
	parsers map[string]port.TextParser
}

// NewRegistry creates a Registry with the built-in text and PDF parsers.
func NewRegistry(logger *zap.Logger) *Registry {
	r := &Registry{parsers: make(map[string]port.TextParser)}
	r.Register(&TextParser{})
	r.Register(NewPDFParser(logger.Named("pdf")))
	return r
}

// Register adds p under every format it supports, replacing any previous parser.
func (r *Registry) Register(p port.TextParser) {
	for _, f := range p.SupportedFormats() {
		r.parsers[strings.ToLower(f)] = p
	}
}

// Get returns the parser for format, or an error wrapping domain.ErrUnsupportedFormat.
func (r *Registry) Get(format string) (port.TextParser, error) {
	p, ok := r.parsers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	return p, nil
}

// ForFile resolves the parser for a filename by its extension.
func (r *Registry) ForFile(filename string) (port.TextParser, error) {
	return r.Get(FormatOf(filename))
}

// FormatOf returns the lowercase extension of filename without the dot.
func FormatOf(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}
