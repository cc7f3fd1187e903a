package routing

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"fnolrouter/internal/domain"
)

// Input is what every rule sees for one document. Description and ClaimType are
// pre-lowered copies of the extracted values.
type Input struct {
	Fields      domain.ExtractedFields
	Missing     domain.MissingFields
	Description string
	ClaimType   string
}

func newInput(fields domain.ExtractedFields, missing domain.MissingFields) Input {
	return Input{
		Fields:      fields,
		Missing:     missing,
		Description: strings.ToLower(fields.Get(domain.FieldDescription)),
		ClaimType:   strings.ToLower(fields.Get(domain.FieldClaimType)),
	}
}

// Rule is one link of the chain. Evaluate returns ok=false to fall through.
type Rule interface {
	Name() string
	Evaluate(in Input) (decision domain.RouteDecision, ok bool)
}

// firstContained returns the first phrase found in text, in list order.
func firstContained(text string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if p != "" && strings.Contains(text, p) {
			return p, true
		}
	}
	return "", false
}

type strongFraudRule struct {
	indicators []string
}

func (r strongFraudRule) Name() string { return "strong_fraud" }

func (r strongFraudRule) Evaluate(in Input) (domain.RouteDecision, bool) {
	phrase, ok := firstContained(in.Description, r.indicators)
	if !ok {
		return domain.RouteDecision{}, false
	}
	return domain.NewRouteDecision(domain.RouteInvestigationFlag,
		fmt.Sprintf("Description contains fraud indicator: '%s'", phrase)), true
}

type injuryRule struct {
	indicators []string
}

func (r injuryRule) Name() string { return "injury" }

func (r injuryRule) Evaluate(in Input) (domain.RouteDecision, bool) {
	for _, ind := range r.indicators {
		if ind == "" {
			continue
		}
		if strings.Contains(in.ClaimType, ind) || strings.Contains(in.Description, ind) {
			return domain.NewRouteDecision(domain.RouteSpecialistQueue,
				fmt.Sprintf("Claim involves injury: '%s'", in.ClaimType)), true
		}
	}
	return domain.RouteDecision{}, false
}

type missingFieldsRule struct {
	relevant  map[domain.FieldName]bool
	maxListed int
}

func (r missingFieldsRule) Name() string { return "missing_fields" }

func (r missingFieldsRule) Evaluate(in Input) (domain.RouteDecision, bool) {
	var relevant domain.MissingFields
	for _, f := range in.Missing {
		if r.relevant[f] {
			relevant = append(relevant, f)
		}
	}
	if len(relevant) == 0 {
		return domain.RouteDecision{}, false
	}
	if r.maxListed > 0 && len(relevant) > r.maxListed {
		relevant = relevant[:r.maxListed]
	}
	return domain.NewRouteDecision(domain.RouteManualReview,
		"Missing mandatory fields: "+relevant.String()), true
}

type thresholdRule struct {
	threshold float64
}

func (r thresholdRule) Name() string { return "damage_threshold" }

func (r thresholdRule) Evaluate(in Input) (domain.RouteDecision, bool) {
	amount, ok := ResolveEstimate(in.Fields)
	if !ok {
		return domain.RouteDecision{}, false
	}
	if amount < r.threshold {
		return domain.NewRouteDecision(domain.RouteFastTrack,
			fmt.Sprintf("Estimated damage (%s) < %s", FormatDollars(amount), FormatDollars(r.threshold))), true
	}
	return domain.NewRouteDecision(domain.RouteStandardProcessing,
		fmt.Sprintf("Estimated damage (%s) ≥ %s", FormatDollars(amount), FormatDollars(r.threshold))), true
}

type weakFraudRule struct {
	indicators []string
	// exemptClaimType silences "suspicious" when the claim type contains it.
	exemptClaimType string
}

const suspiciousIndicator = "suspicious"

func (r weakFraudRule) Name() string { return "weak_fraud" }

func (r weakFraudRule) Evaluate(in Input) (domain.RouteDecision, bool) {
	for _, ind := range r.indicators {
		if ind == "" || !strings.Contains(in.Description, ind) {
			continue
		}
		if ind == suspiciousIndicator && r.exemptClaimType != "" && strings.Contains(in.ClaimType, r.exemptClaimType) {
			continue
		}
		return domain.NewRouteDecision(domain.RouteInvestigationFlag,
			fmt.Sprintf("Description contains '%s'", ind)), true
	}
	return domain.RouteDecision{}, false
}

// DefaultReasoning is the clause used when no rule fires.
const DefaultReasoning = "All checks passed, no special conditions"

// ResolveEstimate returns the first parseable amount from estimated_damage,
// then estimate_amount.
func ResolveEstimate(fields domain.ExtractedFields) (float64, bool) {
	for _, f := range []domain.FieldName{domain.FieldEstimatedDamage, domain.FieldEstimateAmount} {
		if v, ok := domain.ParseAmount(fields.Get(f)); ok {
			return v, true
		}
	}
	return 0, false
}

// FormatDollars renders v as "$12,345", rounding half to even.
func FormatDollars(v float64) string {
	return "$" + humanize.Commaf(math.RoundToEven(v))
}
