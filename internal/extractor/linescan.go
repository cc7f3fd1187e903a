package extractor

import (
	"strings"

	"fnolrouter/internal/domain"
)

// lineRule fills a field from a "KEY: value" line whose uppercased key contains every keyword.
type lineRule struct {
	field    domain.FieldName
	keywords []string
	// transform shapes the value; returning false leaves the field unset.
	transform func(string) (string, bool)
	aliases   []domain.FieldName
	// continued rules absorb the following colon-free lines into the value.
	continued bool
}

// lineRules is evaluated in order. The first rule that matches the key and whose field
// is still absent consumes the line.
var lineRules = []lineRule{
	{field: domain.FieldPolicyNumber, keywords: []string{"POLICY", "NUMBER"}},
	{field: domain.FieldPolicyholderName, keywords: []string{"NAME", "INSURED"}},
	{field: domain.FieldIncidentDate, keywords: []string{"DATE", "LOSS"}},
	{field: domain.FieldIncidentTime, keywords: []string{"TIME"}},
	{field: domain.FieldLocation, keywords: []string{"LOCATION"}},
	{
		field:     domain.FieldEstimateAmount,
		keywords:  []string{"ESTIMATE", "AMOUNT"},
		transform: func(v string) (string, bool) { return normalizeAmount(v), true },
		aliases:   []domain.FieldName{domain.FieldEstimatedDamage},
	},
	{field: domain.FieldClaimType, keywords: []string{"CLAIM", "TYPE"}, transform: firstToken},
	{field: domain.FieldAssetType, keywords: []string{"ASSET", "TYPE"}, transform: firstToken},
	{field: domain.FieldDescription, keywords: []string{"DESCRIPTION"}, continued: true},
}

func (r *lineRule) matches(key string, fields domain.ExtractedFields) bool {
	if fields.Has(r.field) {
		return false
	}
	for _, kw := range r.keywords {
		if !strings.Contains(key, kw) {
			return false
		}
	}
	return true
}

// firstToken keeps the first whitespace-delimited word so a value cannot run into a
// following label on the same line.
func firstToken(v string) (string, bool) {
	tokens := strings.Fields(v)
	if len(tokens) == 0 {
		return "", false
	}
	return tokens[0], true
}

// documentLines returns the trimmed, non-empty lines of text.
func documentLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// scanLines fills fields the labeled patterns missed from colon-delimited lines.
func scanLines(lines []string, fields domain.ExtractedFields) {
	for i, line := range lines {
		rawKey, rawValue, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key := strings.ToUpper(strings.TrimSpace(rawKey))
		value := strings.TrimSpace(rawValue)

		for idx := range lineRules {
			rule := &lineRules[idx]
			if !rule.matches(key, fields) {
				continue
			}
			if rule.continued {
				value = absorbContinuation(value, lines[i+1:])
			}
			if rule.transform != nil {
				v, keep := rule.transform(value)
				if !keep {
					break
				}
				value = v
			}
			fields[rule.field] = value
			for _, alias := range rule.aliases {
				fields[alias] = value
			}
			break
		}
	}
}

// absorbContinuation appends the lines following a value until one contains a colon.
func absorbContinuation(value string, rest []string) string {
	parts := make([]string, 0, 4)
	if value != "" {
		parts = append(parts, value)
	}
	for _, next := range rest {
		if strings.Contains(next, ":") {
			break
		}
		parts = append(parts, next)
	}
	return strings.Join(parts, " ")
}
