package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReasoningSeparator joins the clauses of a routing justification.
const ReasoningSeparator = ". "

// RouteDecision is the routing engine's verdict. Construct it with NewRouteDecision.
type RouteDecision struct {
	route     Route
	reasoning string
}

// NewRouteDecision builds a decision whose reasoning is the clauses joined by ". ".
func NewRouteDecision(route Route, clauses ...string) RouteDecision {
	return RouteDecision{route: route, reasoning: strings.Join(clauses, ReasoningSeparator)}
}

// Route returns the recommended route.
func (d RouteDecision) Route() Route { return d.route }

// Reasoning returns the justification trail.
func (d RouteDecision) Reasoning() string { return d.reasoning }

// ProcessingResult is the four-field contract returned for every document.
type ProcessingResult struct {
	ExtractedFields  ExtractedFields `json:"extractedFields"`
	MissingFields    MissingFields   `json:"missingFields"`
	RecommendedRoute Route           `json:"recommendedRoute"`
	Reasoning        string          `json:"reasoning"`
}

// ClaimReport wraps a ProcessingResult with bookkeeping used by the API, CLI and reports.
type ClaimReport struct {
	ID              uuid.UUID        `json:"id"`
	Source          string           `json:"source"`
	Result          ProcessingResult `json:"result"`
	Inconsistencies []string         `json:"inconsistencies"`
	ProcessedAt     time.Time        `json:"processed_at"`
}
