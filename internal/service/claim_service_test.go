package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"fnolrouter/internal/domain"
	"fnolrouter/internal/extractor"
	"fnolrouter/internal/parser"
	"fnolrouter/internal/port"
	"fnolrouter/internal/routing"
	"fnolrouter/internal/service"
	"fnolrouter/internal/validator"
	"fnolrouter/mocks"
)

const collisionClaim = `FIRST NOTICE OF LOSS
POLICY NUMBER: POL-2024-00123
NAME OF INSURED: Jane Doe
DATE OF LOSS: 05/01/2024
TIME: 10:30 AM
LOCATION: 123 Main St, Springfield
CLAIM TYPE: Collision
ASSET TYPE: Vehicle
ESTIMATE AMOUNT: $30,000
DESCRIPTION: Rear-ended at a stop light causing extensive damage to the bumper.
`

const theftClaim = `POLICY NUMBER: POL-77
NAME OF INSURED: Sam Lee
DATE OF LOSS: 03/14/2024
TIME: 11:45 PM
LOCATION: Parking garage level 2
CLAIM TYPE: Theft
ESTIMATE AMOUNT: $5,000
DESCRIPTION: Car stolen overnight, security noted suspicious activity nearby.
`

type fixture struct {
	svc     service.ClaimService
	parsers *parser.Registry
	storage *mocks.MockObjectStorage
	logs    *observer.ObservedLogs
}

func setupClaimService(t *testing.T, maxBytes int64, withStorage bool) *fixture {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	f := &fixture{parsers: parser.NewRegistry(logger), logs: logs}
	var storage port.ObjectStorage
	if withStorage {
		f.storage = new(mocks.MockObjectStorage)
		storage = f.storage
	}
	f.svc = service.NewClaimService(
		f.parsers,
		extractor.New(extractor.Options{}),
		validator.NewDefaultEngine(0, logger),
		routing.NewEngine(routing.Options{}, logger),
		storage,
		maxBytes,
		logger,
	)
	return f
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// --- ProcessText ---

func TestClaimService_ProcessText_StandardProcessing(t *testing.T) {
	f := setupClaimService(t, 0, false)

	report, err := f.svc.ProcessText(context.Background(), "claim.txt", collisionClaim)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.Equal(t, "claim.txt", report.Source)
	assert.False(t, report.ProcessedAt.IsZero())
	assert.Equal(t, "05/01/2024", report.Result.ExtractedFields.Get(domain.FieldIncidentDate))
	assert.Equal(t, domain.MissingFields{domain.FieldClaimant, domain.FieldInitialEstimate}, report.Result.MissingFields)
	assert.Equal(t, domain.RouteStandardProcessing, report.Result.RecommendedRoute)
	assert.Contains(t, report.Result.Reasoning, "$30,000")
	assert.Contains(t, report.Result.Reasoning, "≥ $25,000")
	assert.Empty(t, report.Inconsistencies)
}

func TestClaimService_ProcessText_TheftFastTrack(t *testing.T) {
	f := setupClaimService(t, 0, false)

	report, err := f.svc.ProcessText(context.Background(), "", theftClaim)
	require.NoError(t, err)
	assert.Equal(t, domain.RouteFastTrack, report.Result.RecommendedRoute)
	assert.Equal(t, "Estimated damage ($5,000) < $25,000", report.Result.Reasoning)
}

func TestClaimService_ProcessText_StrongFraud(t *testing.T) {
	f := setupClaimService(t, 0, false)

	text := "CLAIM TYPE: Bodily Injury\nDESCRIPTION: Scene appears to be staged by both drivers.\n"
	report, err := f.svc.ProcessText(context.Background(), "", text)
	require.NoError(t, err)
	assert.Equal(t, domain.RouteInvestigationFlag, report.Result.RecommendedRoute)
	assert.Equal(t, "Description contains fraud indicator: 'appears to be staged'", report.Result.Reasoning)
}

func TestClaimService_ProcessText_Empty(t *testing.T) {
	f := setupClaimService(t, 0, false)

	report, err := f.svc.ProcessText(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, report.Result.ExtractedFields)
	assert.Equal(t, domain.MissingFields(domain.MandatoryFields), report.Result.MissingFields)
	assert.Equal(t, domain.RouteManualReview, report.Result.RecommendedRoute)
}

func TestClaimService_ProcessText_TooLarge(t *testing.T) {
	f := setupClaimService(t, 16, false)

	_, err := f.svc.ProcessText(context.Background(), "", collisionClaim)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestClaimService_LogsOneLinePerDocument(t *testing.T) {
	f := setupClaimService(t, 0, false)

	_, err := f.svc.ProcessText(context.Background(), "claim.txt", collisionClaim)
	require.NoError(t, err)

	entries := f.logs.FilterMessage("claim processed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Standard Processing", entries[0].ContextMap()["route"])
	assert.Equal(t, "claim.txt", entries[0].ContextMap()["source"])
}

// --- ProcessFile ---

func TestClaimService_ProcessFile_Local(t *testing.T) {
	f := setupClaimService(t, 0, false)
	path := writeFile(t, t.TempDir(), "fnol_theft_claim.txt", "LOCATION: Parking lot\r\nDESCRIPTION: Bike taken from rack\r\n")

	report, err := f.svc.ProcessFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, report.Source)
	assert.Equal(t, "Theft", report.Result.ExtractedFields.Get(domain.FieldClaimType))
	assert.Equal(t, "Parking lot", report.Result.ExtractedFields.Get(domain.FieldLocation))
	assert.Equal(t, domain.RouteManualReview, report.Result.RecommendedRoute)
}

func TestClaimService_ProcessFile_Errors(t *testing.T) {
	f := setupClaimService(t, 64, false)
	dir := t.TempDir()

	tests := []struct {
		name   string
		source string
		want   error
	}{
		{"missing", filepath.Join(dir, "nope.txt"), domain.ErrFileNotFound},
		{"directory", dir, domain.ErrInvalidSource},
		{"unsupported", writeFile(t, dir, "claim.docx", "x"), domain.ErrUnsupportedFormat},
		{"too_large", writeFile(t, dir, "big.txt", collisionClaim), domain.ErrFileTooLarge},
		{"storage_disabled", "s3://bucket/claim.txt", domain.ErrStorageDisabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := f.svc.ProcessFile(context.Background(), tt.source)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClaimService_ProcessFile_UnreadablePDF(t *testing.T) {
	f := setupClaimService(t, 0, false)
	path := writeFile(t, t.TempDir(), "fnol_theft_claim.pdf", "definitely not a pdf")

	report, err := f.svc.ProcessFile(context.Background(), path)
	require.NoError(t, err)
	// no inference on an unreadable document, not even from the filename
	assert.Empty(t, report.Result.ExtractedFields)
	assert.Equal(t, domain.MissingFields(domain.MandatoryFields), report.Result.MissingFields)
	assert.Equal(t, domain.RouteManualReview, report.Result.RecommendedRoute)
	assert.Equal(t, "Missing mandatory fields: policy_number, policyholder_name, incident_date", report.Result.Reasoning)
}

func TestClaimService_ProcessFile_ParserFailure(t *testing.T) {
	f := setupClaimService(t, 0, false)
	p := new(mocks.MockTextParser)
	p.On("SupportedFormats").Return([]string{"txt"})
	p.On("Parse", mock.Anything, mock.AnythingOfType("port.ParseInput")).Return("", errors.New("encoding broken"))
	f.parsers.Register(p)

	path := writeFile(t, t.TempDir(), "claim.txt", collisionClaim)
	report, err := f.svc.ProcessFile(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, report.Result.ExtractedFields)
	assert.Equal(t, domain.RouteManualReview, report.Result.RecommendedRoute)
	assert.Len(t, f.logs.FilterMessage("text extraction failed, continuing with no fields").All(), 1)
	p.AssertExpectations(t)
}

func TestClaimService_ProcessFile_CancelledDuringParse(t *testing.T) {
	f := setupClaimService(t, 0, false)
	ctx, cancel := context.WithCancel(context.Background())
	p := new(mocks.MockTextParser)
	p.On("SupportedFormats").Return([]string{"txt"})
	p.On("Parse", mock.Anything, mock.AnythingOfType("port.ParseInput")).
		Run(func(mock.Arguments) { cancel() }).
		Return("", context.Canceled)
	f.parsers.Register(p)

	path := writeFile(t, t.TempDir(), "claim.txt", collisionClaim)
	report, err := f.svc.ProcessFile(ctx, path)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
	assert.Empty(t, f.logs.FilterMessage("text extraction failed, continuing with no fields").All())
	assert.Empty(t, f.logs.FilterMessage("claim processed").All())
	p.AssertExpectations(t)
}

func TestClaimService_ProcessFile_S3(t *testing.T) {
	f := setupClaimService(t, 0, true)
	f.storage.On("Download", mock.Anything, "claims", "inbox/fnol_small.txt").Return([]byte(theftClaim), nil)

	report, err := f.svc.ProcessFile(context.Background(), "s3://claims/inbox/fnol_small.txt")
	require.NoError(t, err)
	assert.Equal(t, "s3://claims/inbox/fnol_small.txt", report.Source)
	assert.Equal(t, domain.RouteFastTrack, report.Result.RecommendedRoute)
	f.storage.AssertExpectations(t)
}

func TestClaimService_ProcessFile_S3Errors(t *testing.T) {
	f := setupClaimService(t, 0, true)
	f.storage.On("Download", mock.Anything, "claims", "gone.txt").Return(nil, domain.ErrFileNotFound)

	_, err := f.svc.ProcessFile(context.Background(), "s3://claims/gone.txt")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)

	_, err = f.svc.ProcessFile(context.Background(), "s3://claims")
	assert.ErrorIs(t, err, domain.ErrInvalidSource)

	_, err = f.svc.ProcessFile(context.Background(), "s3://claims/scan.tiff")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	f.storage.AssertNumberOfCalls(t, "Download", 1)
}

// --- ProcessUpload ---

func TestClaimService_ProcessUpload(t *testing.T) {
	f := setupClaimService(t, 1<<20, false)

	report, err := f.svc.ProcessUpload(context.Background(), "fnol.txt", []byte(collisionClaim))
	require.NoError(t, err)
	assert.Equal(t, domain.RouteStandardProcessing, report.Result.RecommendedRoute)

	_, err = f.svc.ProcessUpload(context.Background(), "", []byte(collisionClaim))
	assert.ErrorIs(t, err, domain.ErrInvalidSource)

	_, err = f.svc.ProcessUpload(context.Background(), "fnol.png", []byte{0x89})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
