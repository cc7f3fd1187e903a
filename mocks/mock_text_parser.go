package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fnolrouter/internal/port"
)

// MockTextParser is a mock implementation of port.TextParser.
type MockTextParser struct {
	mock.Mock
}

func (m *MockTextParser) Parse(ctx context.Context, input port.ParseInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockTextParser) SupportedFormats() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
