package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fnolrouter/internal/config"
	"fnolrouter/internal/domain"
	"fnolrouter/internal/service"
)

func TestExtractorOptions(t *testing.T) {
	opts := service.ExtractorOptions(config.ExtractionConfig{
		FilenameClaimTypes: []config.FilenameHint{{Keyword: "hail", ClaimType: "Hail Damage"}},
	})
	require.Len(t, opts.FilenameClaimTypes, 1)
	assert.Equal(t, []string{"hail"}, opts.FilenameClaimTypes[0].Keywords)
	assert.Equal(t, "Hail Damage", opts.FilenameClaimTypes[0].Value)

	assert.Nil(t, service.ExtractorOptions(config.ExtractionConfig{}).FilenameClaimTypes)
	assert.NotNil(t, service.ExtractorOptions(config.ExtractionConfig{FilenameClaimTypes: []config.FilenameHint{}}).FilenameClaimTypes)
}

func TestRoutingOptions(t *testing.T) {
	opts := service.RoutingOptions(config.RoutingConfig{
		FastTrackThreshold: 10000,
		RoutingFields:      []string{"policy_number", "location"},
		MaxListedMissing:   2,
	})
	assert.InDelta(t, 10000, opts.FastTrackThreshold, 0)
	assert.Equal(t, []domain.FieldName{domain.FieldPolicyNumber, domain.FieldLocation}, opts.RoutingFields)
	assert.Equal(t, 2, opts.MaxListedMissing)
}

func TestNewClaimServiceFromConfig(t *testing.T) {
	t.Setenv("FNOL_ROUTING_FAST_TRACK_THRESHOLD", "1000")
	t.Setenv("FNOL_EXTRACTION_FILENAME_CLAIM_TYPES", "hail=Hail Damage")
	cfg, err := config.Load()
	require.NoError(t, err)

	svc, err := service.NewClaimServiceFromConfig(cfg, zap.NewNop())
	require.NoError(t, err)

	report, err := svc.ProcessText(context.Background(), "hail_claim.txt", theftClaim)
	require.NoError(t, err)
	assert.Equal(t, domain.RouteStandardProcessing, report.Result.RecommendedRoute)
	assert.Equal(t, "Estimated damage ($5,000) ≥ $1,000", report.Result.Reasoning)

	report, err = svc.ProcessText(context.Background(), "hail_claim.txt", "LOCATION: Roof\n")
	require.NoError(t, err)
	assert.Equal(t, "Hail Damage", report.Result.ExtractedFields.Get(domain.FieldClaimType))

	_, err = svc.ProcessFile(context.Background(), "s3://bucket/a.txt")
	assert.ErrorIs(t, err, domain.ErrStorageDisabled)
}
