package report

import (
	"strings"
	"time"

	"fnolrouter/internal/domain"
)

// fieldColumns are the extracted-field columns, in output order.
var fieldColumns = []domain.FieldName{
	domain.FieldPolicyNumber,
	domain.FieldPolicyholderName,
	domain.FieldIncidentDate,
	domain.FieldIncidentTime,
	domain.FieldLocation,
	domain.FieldClaimType,
	domain.FieldAssetType,
	domain.FieldEstimatedDamage,
	domain.FieldEstimateAmount,
	domain.FieldVIN,
	domain.FieldDescription,
}

var metaColumns = []string{
	"ID",
	"Source",
	"Recommended Route",
	"Reasoning",
	"Missing Fields",
	"Inconsistencies",
	"Processed At",
}

// Columns returns the header row shared by every report format.
func Columns() []string {
	out := make([]string, 0, len(metaColumns)+len(fieldColumns))
	out = append(out, metaColumns...)
	for _, f := range fieldColumns {
		out = append(out, string(f))
	}
	return out
}

// reportToRow flattens a report into one row matching Columns.
func reportToRow(r *domain.ClaimReport) []string {
	row := make([]string, 0, len(metaColumns)+len(fieldColumns))
	row = append(row,
		r.ID.String(),
		r.Source,
		string(r.Result.RecommendedRoute),
		r.Result.Reasoning,
		r.Result.MissingFields.String(),
		strings.Join(r.Inconsistencies, "; "),
		formatTime(r.ProcessedAt),
	)
	for _, f := range fieldColumns {
		row = append(row, r.Result.ExtractedFields.Get(f))
	}
	return row
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
