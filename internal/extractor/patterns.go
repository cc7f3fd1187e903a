package extractor

import (
	"regexp"
	"strings"

	"fnolrouter/internal/domain"
)

// labelRule recognizes one labeled field anywhere in the document text.
// Group 1 of pattern is the raw value.
type labelRule struct {
	field     domain.FieldName
	pattern   *regexp.Regexp
	normalize func(string) string
	// aliases receive the same normalized value as field.
	aliases []domain.FieldName
}

// labelRules is applied in order; each field is recognized by its first match.
var labelRules = []labelRule{
	{
		field:   domain.FieldPolicyNumber,
		pattern: regexp.MustCompile(`(?is)POLICY\s*(?:NO\.?|NUMBER|#)\s*:?\s*([A-Z0-9-]+)`),
	},
	{
		field:   domain.FieldPolicyholderName,
		pattern: regexp.MustCompile(`(?is)NAME\s*(?:OF\s*)?INSURED\s*:?\s*(.+?)(?:\n|\z)`),
	},
	{
		field:   domain.FieldIncidentDate,
		pattern: regexp.MustCompile(`(?is)DATE\s*(?:OF\s*)?LOSS\s*:?\s*(\d{1,2}/\d{1,2}/\d{4})`),
	},
	{
		field:   domain.FieldIncidentTime,
		pattern: regexp.MustCompile(`(?is)TIME\s*:?\s*(\d{1,2}:\d{2}\s*[APM]{2})`),
	},
	{
		field:   domain.FieldLocation,
		pattern: regexp.MustCompile(`(?is)LOCATION\s*:?\s*(.+?)(?:\n|\z)`),
	},
	{
		field:     domain.FieldEstimateAmount,
		pattern:   regexp.MustCompile(`(?is)ESTIMATE\s*AMOUNT\s*:?\s*\$?\s*([\d,]+)`),
		normalize: normalizeAmount,
		aliases:   []domain.FieldName{domain.FieldEstimatedDamage},
	},
	{
		field:   domain.FieldClaimType,
		pattern: regexp.MustCompile(`(?is)CLAIM\s*TYPE\s*:?\s*(.+?)(?:\n|\z)`),
	},
	{
		field:   domain.FieldAssetType,
		pattern: regexp.MustCompile(`(?is)ASSET\s*TYPE\s*:?\s*(.+?)(?:\n|\z)`),
	},
	{
		field:   domain.FieldVIN,
		pattern: regexp.MustCompile(`(?is)V\.?I\.?N\.?\s*:?\s*([A-HJ-NPR-Z0-9]{17})`),
	},
	{
		// The value runs until a line starting with an uppercase letter (the next label) or end of text.
		field:     domain.FieldDescription,
		pattern:   regexp.MustCompile(`(?s)(?i:DESCRIPTION)\s*:?\s*(.+?)(?:\n[A-Z]|\n?\z)`),
		normalize: cleanDescription,
	},
}

// descriptionStopLabels are labels that, when captured inside a description, end it.
var descriptionStopLabels = []string{"VEHICLE MAKE:", "V.I.N.:", "CONTACT:", "ASSET TYPE:"}

// descriptionNoise is dropped from descriptions wherever it appears.
const descriptionNoise = "INVESTIGATION NEEDED"

var amountReplacer = strings.NewReplacer("$", "", ",", "")

// normalizeAmount strips currency symbols and thousands separators.
func normalizeAmount(s string) string {
	return amountReplacer.Replace(s)
}

// cleanDescription cuts the description at any captured field label, removes the
// investigation marker and folds continuation lines into single spaces.
func cleanDescription(s string) string {
	for _, label := range descriptionStopLabels {
		if before, _, found := strings.Cut(s, label); found {
			s = strings.TrimSpace(before)
		}
	}
	if strings.Contains(s, descriptionNoise) {
		s = strings.TrimSpace(strings.ReplaceAll(s, descriptionNoise, ""))
	}
	return joinLines(s)
}

// joinLines trims every line of s and joins the non-empty ones with single spaces.
func joinLines(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	parts := strings.Split(s, "\n")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
