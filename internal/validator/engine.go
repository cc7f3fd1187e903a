package validator

import (
	"go.uber.org/zap"

	"fnolrouter/internal/domain"
)

// Engine runs the registered mandatory-field rules over extracted fields.
type Engine struct {
	registry *Registry
	logger   *zap.Logger
}

// NewEngine creates a new validation engine.
func NewEngine(registry *Registry, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{registry: registry, logger: logger}
}

// NewDefaultEngine creates an engine with the built-in mandatory-field rules.
func NewDefaultEngine(descriptionMinWords int, logger *zap.Logger) *Engine {
	registry := NewRegistry()
	for _, v := range RequiredFieldValidators(descriptionMinWords) {
		registry.Register(v)
	}
	return NewEngine(registry, logger)
}

// Validate returns the mandatory fields judged absent or insufficient, in rule order.
//
// Before checking, estimate_amount is aliased into estimated_damage when only the
// former is present. This writes to fields; the write is idempotent.
func (e *Engine) Validate(fields domain.ExtractedFields) domain.MissingFields {
	if fields.SyncEstimate() {
		e.logger.Debug("aliased estimate_amount into estimated_damage")
	}

	missing := make(domain.MissingFields, 0)
	for _, r := range e.Results(fields) {
		if !r.Passed {
			missing = append(missing, r.Field)
		}
	}
	return missing
}

// Results runs every rule and returns the individual outcomes, without aliasing.
func (e *Engine) Results(fields domain.ExtractedFields) []ValidationResult {
	validators := e.registry.All()
	results := make([]ValidationResult, 0, len(validators))
	for _, v := range validators {
		results = append(results, v.Validate(fields))
	}
	return results
}
