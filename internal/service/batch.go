package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"fnolrouter/internal/domain"
	"fnolrouter/internal/parser"
)

// BatchItem is the outcome for one source of a batch run. Exactly one of Report
// and Err is set.
type BatchItem struct {
	Source string
	Report *domain.ClaimReport
	Err    error
}

// ProcessBatch processes sources one after another. A failing source is recorded
// and the run moves on; only context cancellation stops it early.
func ProcessBatch(ctx context.Context, svc ClaimService, sources []string, logger *zap.Logger) []BatchItem {
	items := make([]BatchItem, 0, len(sources))
	for _, src := range sources {
		if ctx.Err() != nil {
			break
		}
		report, err := svc.ProcessFile(ctx, src)
		if err != nil {
			logger.Warn("skipping document", zap.String("source", src), zap.Error(err))
		}
		items = append(items, BatchItem{Source: src, Report: report, Err: err})
	}
	return items
}

// Reports returns the successful reports of a batch, in input order.
func Reports(items []BatchItem) []*domain.ClaimReport {
	out := make([]*domain.ClaimReport, 0, len(items))
	for _, it := range items {
		if it.Report != nil {
			out = append(out, it.Report)
		}
	}
	return out
}

// DiscoverDocuments lists the supported documents directly inside dir, sorted by name.
func DiscoverDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dir, domain.ErrFileNotFound)
		}
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := domain.SupportedFormats[parser.FormatOf(e.Name())]; ok {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}
