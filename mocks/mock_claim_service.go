package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fnolrouter/internal/domain"
)

// MockClaimService is a mock implementation of service.ClaimService.
type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) ProcessFile(ctx context.Context, source string) (*domain.ClaimReport, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimReport), args.Error(1)
}

func (m *MockClaimService) ProcessUpload(ctx context.Context, filename string, data []byte) (*domain.ClaimReport, error) {
	args := m.Called(ctx, filename, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimReport), args.Error(1)
}

func (m *MockClaimService) ProcessText(ctx context.Context, filename, text string) (*domain.ClaimReport, error) {
	args := m.Called(ctx, filename, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimReport), args.Error(1)
}
