package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fnolrouter/internal/domain"
	"fnolrouter/internal/extractor"
	"fnolrouter/internal/parser"
	"fnolrouter/internal/port"
	"fnolrouter/internal/routing"
	"fnolrouter/internal/storage/s3"
	"fnolrouter/internal/validator"
)

// ClaimService defines the FNOL processing contract. Every call processes exactly one
// document end to end and keeps nothing afterwards.
type ClaimService interface {
	// ProcessFile reads a local path or an s3:// URI.
	ProcessFile(ctx context.Context, source string) (*domain.ClaimReport, error)
	ProcessUpload(ctx context.Context, filename string, data []byte) (*domain.ClaimReport, error)
	// ProcessText routes already-extracted text. filename is only an inference hint.
	ProcessText(ctx context.Context, filename, text string) (*domain.ClaimReport, error)
}

type claimService struct {
	parsers   *parser.Registry
	extractor *extractor.Extractor
	validator *validator.Engine
	router    *routing.Engine
	storage   port.ObjectStorage // nil when object storage is disabled
	maxBytes  int64
	logger    *zap.Logger
	now       func() time.Time
}

// NewClaimService creates a new ClaimService. storage may be nil; maxBytes <= 0
// disables the size check.
func NewClaimService(
	parsers *parser.Registry,
	ext *extractor.Extractor,
	val *validator.Engine,
	router *routing.Engine,
	storage port.ObjectStorage,
	maxBytes int64,
	logger *zap.Logger,
) ClaimService {
	return &claimService{
		parsers:   parsers,
		extractor: ext,
		validator: val,
		router:    router,
		storage:   storage,
		maxBytes:  maxBytes,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *claimService) ProcessFile(ctx context.Context, source string) (*domain.ClaimReport, error) {
	if s3.IsURI(source) {
		return s.processObject(ctx, source)
	}

	info, err := os.Stat(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", source, domain.ErrFileNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", source, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", source, domain.ErrInvalidSource)
	}
	if err := s.checkSize(source, info.Size()); err != nil {
		return nil, err
	}
	textParser, err := s.parsers.ForFile(source)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(source)
	if err != nil {
		s.logger.Warn("could not read document, continuing with no fields",
			zap.String("source", source), zap.Error(err))
		return s.evaluate(source, domain.ExtractedFields{}, s.now()), nil
	}
	return s.analyze(ctx, source, textParser, data)
}

func (s *claimService) processObject(ctx context.Context, uri string) (*domain.ClaimReport, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("%s: %w", uri, domain.ErrStorageDisabled)
	}
	bucket, key, err := s3.ParseURI(uri)
	if err != nil {
		return nil, err
	}
	textParser, err := s.parsers.ForFile(key)
	if err != nil {
		return nil, err
	}

	data, err := s.storage.Download(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", uri, err)
	}
	return s.analyze(ctx, uri, textParser, data)
}

func (s *claimService) ProcessUpload(ctx context.Context, filename string, data []byte) (*domain.ClaimReport, error) {
	if filename == "" {
		return nil, fmt.Errorf("upload has no filename: %w", domain.ErrInvalidSource)
	}
	if err := s.checkSize(filename, int64(len(data))); err != nil {
		return nil, err
	}
	textParser, err := s.parsers.ForFile(filename)
	if err != nil {
		return nil, err
	}
	return s.analyze(ctx, filename, textParser, data)
}

func (s *claimService) ProcessText(ctx context.Context, filename, text string) (*domain.ClaimReport, error) {
	if err := s.checkSize(filename, int64(len(text))); err != nil {
		return nil, err
	}
	textParser, err := s.parsers.Get(string(domain.FormatText))
	if err != nil {
		return nil, err
	}
	return s.analyze(ctx, filename, textParser, []byte(text))
}

func (s *claimService) checkSize(source string, size int64) error {
	if s.maxBytes > 0 && size > s.maxBytes {
		return fmt.Errorf("%s is %d bytes, limit %d: %w", source, size, s.maxBytes, domain.ErrFileTooLarge)
	}
	return nil
}

// analyze turns raw bytes into a report. A document whose text cannot be read is
// still validated and routed, with no fields and no inference. Cancellation is
// returned as an error rather than producing a report.
func (s *claimService) analyze(ctx context.Context, source string, textParser port.TextParser, data []byte) (*domain.ClaimReport, error) {
	start := s.now()
	text, err := textParser.Parse(ctx, port.ParseInput{Filename: source, Data: data})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		s.logger.Warn("text extraction failed, continuing with no fields",
			zap.String("source", source),
			zap.Error(fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)),
		)
		return s.evaluate(source, domain.ExtractedFields{}, start), nil
	}

	var hint string
	if source != "" {
		hint = filepath.Base(source)
	}
	return s.evaluate(source, s.extractor.Extract(text, hint), start), nil
}

func (s *claimService) evaluate(source string, fields domain.ExtractedFields, start time.Time) *domain.ClaimReport {
	missing := s.validator.Validate(fields)
	decision := s.router.Route(fields, missing)

	report := &domain.ClaimReport{
		ID:     uuid.New(),
		Source: source,
		Result: domain.ProcessingResult{
			ExtractedFields:  fields,
			MissingFields:    missing,
			RecommendedRoute: decision.Route(),
			Reasoning:        decision.Reasoning(),
		},
		Inconsistencies: validator.Inconsistencies(fields),
		ProcessedAt:     s.now().UTC(),
	}

	s.logger.Info("claim processed",
		zap.String("id", report.ID.String()),
		zap.String("source", source),
		zap.Int("fields", len(fields)),
		zap.Int("missing_count", len(missing)),
		zap.Strings("missing", missing.Strings()),
		zap.String("route", string(decision.Route())),
		zap.Duration("elapsed", s.now().Sub(start)),
	)
	return report
}
