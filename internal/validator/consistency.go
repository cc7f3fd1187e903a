package validator

import (
	"fmt"
	"regexp"

	"fnolrouter/internal/domain"
)

// datePrefixes are the accepted date shapes; only the start of the value is checked.
var datePrefixes = []*regexp.Regexp{
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`),
}

var (
	dateFields    = []domain.FieldName{domain.FieldIncidentDate, domain.FieldEffectiveDates}
	numericFields = []domain.FieldName{domain.FieldEstimatedDamage, domain.FieldEstimateAmount, domain.FieldInitialEstimate}
)

// Inconsistencies reports values that are present but malformed. It is advisory:
// nothing here changes the missing-field list or the route.
func Inconsistencies(fields domain.ExtractedFields) []string {
	var out []string
	for _, f := range dateFields {
		if v := fields.Get(f); v != "" && !isDate(v) {
			out = append(out, fmt.Sprintf("Invalid date format in %s: %s", f, v))
		}
	}
	for _, f := range numericFields {
		if v := fields.Get(f); v != "" {
			if _, ok := domain.ParseAmount(v); !ok {
				out = append(out, fmt.Sprintf("%s is not a valid number: %s", f, v))
			}
		}
	}
	return out
}

func isDate(v string) bool {
	for _, re := range datePrefixes {
		if re.MatchString(v) {
			return true
		}
	}
	return false
}
