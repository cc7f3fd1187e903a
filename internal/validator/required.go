package validator

import (
	"fmt"
	"strings"

	"fnolrouter/internal/domain"
)

// DefaultDescriptionMinWords is the fewest whitespace-delimited words a usable description has.
const DefaultDescriptionMinWords = 3

// requiredFieldValidator checks that a mandatory field is present and non-blank,
// and optionally that it carries a minimum number of words.
type requiredFieldValidator struct {
	ruleKey  string
	ruleName string
	field    domain.FieldName
	minWords int
}

func (v *requiredFieldValidator) RuleKey() string         { return v.ruleKey }
func (v *requiredFieldValidator) RuleName() string        { return v.ruleName }
func (v *requiredFieldValidator) Field() domain.FieldName { return v.field }

func (v *requiredFieldValidator) Validate(fields domain.ExtractedFields) ValidationResult {
	val := fields.Get(v.field)
	result := ValidationResult{Field: v.field, Value: val}

	switch {
	case strings.TrimSpace(val) == "":
		result.Message = fmt.Sprintf("%s: %s is missing or empty", v.ruleName, v.field)
	case v.minWords > 0 && len(strings.Fields(val)) < v.minWords:
		result.Message = fmt.Sprintf("%s: %s has fewer than %d words", v.ruleName, v.field, v.minWords)
	default:
		result.Passed = true
		result.Message = fmt.Sprintf("%s: %s is present", v.ruleName, v.field)
	}
	return result
}

// RequiredFieldValidators returns one rule per mandatory field, in domain.MandatoryFields order.
// descriptionMinWords <= 0 selects DefaultDescriptionMinWords.
func RequiredFieldValidators(descriptionMinWords int) []Validator {
	if descriptionMinWords <= 0 {
		descriptionMinWords = DefaultDescriptionMinWords
	}
	out := make([]Validator, 0, len(domain.MandatoryFields))
	for _, f := range domain.MandatoryFields {
		v := &requiredFieldValidator{
			ruleKey:  "req." + string(f),
			ruleName: "Required: " + humanize(f),
			field:    f,
		}
		if f == domain.FieldDescription {
			v.minWords = descriptionMinWords
		}
		out = append(out, v)
	}
	return out
}

// humanize turns "policy_number" into "Policy Number".
func humanize(f domain.FieldName) string {
	words := strings.Split(string(f), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
