package extractor

import (
	"path/filepath"
	"strings"

	"fnolrouter/internal/domain"
)

// Options tunes the inference heuristics. Nil slices fall back to the defaults.
type Options struct {
	AssetTypeHints     []KeywordHint
	FilenameClaimTypes []KeywordHint
}

// Extractor turns FNOL document text into ExtractedFields. It holds no per-document
// state and is safe for concurrent use.
type Extractor struct {
	opts Options
}

// New creates an Extractor.
func New(opts Options) *Extractor {
	if opts.AssetTypeHints == nil {
		opts.AssetTypeHints = DefaultAssetTypeHints
	}
	if opts.FilenameClaimTypes == nil {
		opts.FilenameClaimTypes = DefaultFilenameClaimTypes
	}
	return &Extractor{opts: opts}
}

// Extract runs the labeled-pattern pass, the line scan and inference over text.
// filename is only a hint for claim type inference and may be empty.
func (e *Extractor) Extract(text, filename string) domain.ExtractedFields {
	fields := ExtractText(text)
	if filename != "" {
		filename = filepath.Base(filename)
	}
	e.infer(fields, filename)
	return fields
}

// ExtractText runs the two recognition passes without any inference.
func ExtractText(text string) domain.ExtractedFields {
	fields := make(domain.ExtractedFields)
	if strings.TrimSpace(text) == "" {
		return fields
	}

	for i := range labelRules {
		rule := &labelRules[i]
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value := strings.TrimSpace(m[1])
		if rule.normalize != nil {
			value = rule.normalize(value)
		}
		fields[rule.field] = value
		for _, alias := range rule.aliases {
			fields[alias] = value
		}
	}

	scanLines(documentLines(text), fields)
	return fields
}
