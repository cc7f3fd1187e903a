package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fnolrouter/internal/domain"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"30000", 30000, true},
		{"$30,000.50", 30000.5, true},
		{"USD 4500", 4500, true},
		{"24999.99", 24999.99, true},
		{"", 0, false},
		{"unknown", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tt := range tests {
		got, ok := domain.ParseAmount(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestExtractedFields_SyncEstimate(t *testing.T) {
	t.Run("copies_when_absent", func(t *testing.T) {
		f := domain.ExtractedFields{domain.FieldEstimateAmount: "500"}
		assert.True(t, f.SyncEstimate())
		assert.Equal(t, "500", f.Get(domain.FieldEstimatedDamage))
		assert.False(t, f.SyncEstimate(), "second call is a no-op")
	})

	t.Run("keeps_existing", func(t *testing.T) {
		f := domain.ExtractedFields{domain.FieldEstimateAmount: "500", domain.FieldEstimatedDamage: "700"}
		assert.False(t, f.SyncEstimate())
		assert.Equal(t, "700", f.Get(domain.FieldEstimatedDamage))
	})

	t.Run("nothing_to_copy", func(t *testing.T) {
		f := domain.ExtractedFields{}
		assert.False(t, f.SyncEstimate())
		assert.False(t, f.Has(domain.FieldEstimatedDamage))
	})
}

func TestExtractedFields_SetIfAbsent(t *testing.T) {
	f := domain.ExtractedFields{domain.FieldLocation: ""}
	assert.False(t, f.SetIfAbsent(domain.FieldLocation, "Dock"))
	assert.Equal(t, "", f.Get(domain.FieldLocation))
	assert.True(t, f.SetIfAbsent(domain.FieldClaimant, "Bob"))

	clone := f.Clone()
	clone[domain.FieldClaimant] = "Alice"
	assert.Equal(t, "Bob", f.Get(domain.FieldClaimant))
}

func TestMissingFields(t *testing.T) {
	m := domain.MissingFields{domain.FieldClaimant, domain.FieldLocation}
	assert.True(t, m.Contains(domain.FieldLocation))
	assert.False(t, m.Contains(domain.FieldVIN))
	assert.Equal(t, "claimant, location", m.String())
}

func TestNewRouteDecision(t *testing.T) {
	d := domain.NewRouteDecision(domain.RouteManualReview, "first clause", "second clause")
	assert.Equal(t, domain.RouteManualReview, d.Route())
	assert.Equal(t, "first clause. second clause", d.Reasoning())
	assert.Contains(t, domain.Routes, d.Route())
}
