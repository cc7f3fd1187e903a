package parser

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"fnolrouter/internal/port"
)

// PDFParser extracts the text layer of a PDF, one page per line block.
type PDFParser struct {
	logger *zap.Logger
}

// NewPDFParser creates a PDFParser.
func NewPDFParser(logger *zap.Logger) *PDFParser {
	return &PDFParser{logger: logger}
}

func (p *PDFParser) SupportedFormats() []string { return []string{"pdf"} }

// Parse concatenates the plain text of every page that yields any, each followed by a newline.
// Pages that fail to extract are skipped.
func (p *PDFParser) Parse(ctx context.Context, input port.ParseInput) (text string, err error) {
	// ledongthuc/pdf panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("reading PDF %s: %v", input.Filename, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(input.Data), int64(len(input.Data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	var b strings.Builder
	totalPages := reader.NumPage()
	for i := 1; i <= totalPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.Debug("skipping unreadable PDF page",
				zap.String("file", input.Filename), zap.Int("page", i), zap.Error(err))
			continue
		}
		if pageText == "" {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return b.String(), nil
}
