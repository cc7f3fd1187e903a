package service

import (
	"fmt"

	"go.uber.org/zap"

	"fnolrouter/internal/config"
	"fnolrouter/internal/domain"
	"fnolrouter/internal/extractor"
	"fnolrouter/internal/parser"
	"fnolrouter/internal/port"
	"fnolrouter/internal/routing"
	s3storage "fnolrouter/internal/storage/s3"
	"fnolrouter/internal/validator"
)

// NewClaimServiceFromConfig assembles the full pipeline from configuration. The S3
// client is only created when cfg.S3.Enabled is set.
func NewClaimServiceFromConfig(cfg *config.Config, logger *zap.Logger) (ClaimService, error) {
	var storage port.ObjectStorage
	if cfg.S3.Enabled {
		client, err := s3storage.NewS3Client(&cfg.S3, cfg.Upload.MaxBytes())
		if err != nil {
			return nil, fmt.Errorf("initializing S3 client: %w", err)
		}
		storage = client
	}

	return NewClaimService(
		parser.NewRegistry(logger.Named("parser")),
		extractor.New(ExtractorOptions(cfg.Extraction)),
		validator.NewDefaultEngine(cfg.Validation.DescriptionMinWords, logger.Named("validator")),
		routing.NewEngine(RoutingOptions(cfg.Routing), logger.Named("routing")),
		storage,
		cfg.Upload.MaxBytes(),
		logger.Named("service"),
	), nil
}

// ExtractorOptions converts the extraction config section. A configured but empty
// filename table disables filename inference.
func ExtractorOptions(cfg config.ExtractionConfig) extractor.Options {
	var opts extractor.Options
	if cfg.FilenameClaimTypes != nil {
		opts.FilenameClaimTypes = make([]extractor.KeywordHint, 0, len(cfg.FilenameClaimTypes))
		for _, h := range cfg.FilenameClaimTypes {
			opts.FilenameClaimTypes = append(opts.FilenameClaimTypes, extractor.KeywordHint{
				Keywords: []string{h.Keyword},
				Value:    h.ClaimType,
			})
		}
	}
	return opts
}

// RoutingOptions converts the routing config section.
func RoutingOptions(cfg config.RoutingConfig) routing.Options {
	fields := make([]domain.FieldName, 0, len(cfg.RoutingFields))
	for _, f := range cfg.RoutingFields {
		fields = append(fields, domain.FieldName(f))
	}
	return routing.Options{
		FastTrackThreshold:        cfg.FastTrackThreshold,
		StrongFraudIndicators:     cfg.StrongFraudIndicators,
		InjuryIndicators:          cfg.InjuryIndicators,
		WeakFraudIndicators:       cfg.WeakFraudIndicators,
		RoutingFields:             fields,
		MaxListedMissing:          cfg.MaxListedMissing,
		SuspiciousExemptClaimType: cfg.SuspiciousExemptClaimType,
	}
}
