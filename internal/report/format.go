package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fnolrouter/internal/domain"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFor picks the export format from a path's extension.
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("report %q: %w (want .csv or .xlsx)", path, domain.ErrUnsupportedFormat)
	}
}

// Write exports reports in the given format.
func Write(out io.Writer, format Format, reports []*domain.ClaimReport) error {
	switch format {
	case FormatCSV:
		return WriteCSV(out, reports)
	case FormatXLSX:
		return WriteXLSX(out, reports)
	default:
		return fmt.Errorf("report format %q: %w", format, domain.ErrUnsupportedFormat)
	}
}
