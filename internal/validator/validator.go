package validator

import "fnolrouter/internal/domain"

// ValidationResult is the outcome of one rule against one document.
type ValidationResult struct {
	Passed  bool
	Field   domain.FieldName
	Value   string
	Message string
}

// Validator is the interface for a single mandatory-field rule.
type Validator interface {
	Validate(fields domain.ExtractedFields) ValidationResult
	Field() domain.FieldName
	RuleKey() string
	RuleName() string
}
