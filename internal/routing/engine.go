package routing

import (
	"strings"

	"go.uber.org/zap"

	"fnolrouter/internal/domain"
)

const (
	DefaultFastTrackThreshold = 25000
	DefaultMaxListedMissing   = 3
	DefaultExemptClaimType    = "theft"
)

var (
	DefaultStrongFraudIndicators = []string{"potentially fraudulent", "appears to be staged", "fraudulent claim", "false claim", "fabricated"}
	DefaultInjuryIndicators      = []string{"injury", "medical", "bodily", "hospital"}
	DefaultWeakFraudIndicators   = []string{"suspicious", "inconsistent", "questionable"}
)

// Options tunes the rule chain. Zero values select the defaults above; the
// routing-relevant field set defaults to domain.RoutingFields.
type Options struct {
	FastTrackThreshold        float64
	StrongFraudIndicators     []string
	InjuryIndicators          []string
	WeakFraudIndicators       []string
	RoutingFields             []domain.FieldName
	MaxListedMissing          int
	SuspiciousExemptClaimType string
}

func (o Options) withDefaults() Options {
	if o.FastTrackThreshold <= 0 {
		o.FastTrackThreshold = DefaultFastTrackThreshold
	}
	if len(o.StrongFraudIndicators) == 0 {
		o.StrongFraudIndicators = DefaultStrongFraudIndicators
	}
	if len(o.InjuryIndicators) == 0 {
		o.InjuryIndicators = DefaultInjuryIndicators
	}
	if len(o.WeakFraudIndicators) == 0 {
		o.WeakFraudIndicators = DefaultWeakFraudIndicators
	}
	if len(o.RoutingFields) == 0 {
		o.RoutingFields = domain.RoutingFields
	}
	if o.MaxListedMissing <= 0 {
		o.MaxListedMissing = DefaultMaxListedMissing
	}
	if o.SuspiciousExemptClaimType == "" {
		o.SuspiciousExemptClaimType = DefaultExemptClaimType
	}
	return o
}

// Engine evaluates the rule chain. It holds no per-document state and is safe
// for concurrent use.
type Engine struct {
	rules  []Rule
	logger *zap.Logger
}

// NewEngine builds the chain in its fixed order: strong fraud, injury, missing
// fields, damage threshold, weak fraud.
func NewEngine(opts Options, logger *zap.Logger) *Engine {
	opts = opts.withDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	relevant := make(map[domain.FieldName]bool, len(opts.RoutingFields))
	for _, f := range opts.RoutingFields {
		relevant[f] = true
	}

	return &Engine{
		rules: []Rule{
			strongFraudRule{indicators: lowerAll(opts.StrongFraudIndicators)},
			injuryRule{indicators: lowerAll(opts.InjuryIndicators)},
			missingFieldsRule{relevant: relevant, maxListed: opts.MaxListedMissing},
			thresholdRule{threshold: opts.FastTrackThreshold},
			weakFraudRule{
				indicators:      lowerAll(opts.WeakFraudIndicators),
				exemptClaimType: strings.ToLower(opts.SuspiciousExemptClaimType),
			},
		},
		logger: logger,
	}
}

// Rules returns the chain in evaluation order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Route returns the decision of the first rule that fires, or Standard
// Processing when none does.
func (e *Engine) Route(fields domain.ExtractedFields, missing domain.MissingFields) domain.RouteDecision {
	in := newInput(fields, missing)
	for _, r := range e.rules {
		if d, ok := r.Evaluate(in); ok {
			e.logger.Debug("routing rule fired",
				zap.String("rule", r.Name()),
				zap.String("route", string(d.Route())),
			)
			return d
		}
	}
	return domain.NewRouteDecision(domain.RouteStandardProcessing, DefaultReasoning)
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}
