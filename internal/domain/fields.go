package domain

import "strings"

// FieldName identifies one semantic field of an FNOL document.
type FieldName string

const (
	FieldPolicyNumber     FieldName = "policy_number"
	FieldPolicyholderName FieldName = "policyholder_name"
	FieldIncidentDate     FieldName = "incident_date"
	FieldIncidentTime     FieldName = "incident_time"
	FieldLocation         FieldName = "location"
	FieldDescription      FieldName = "description"
	FieldClaimType        FieldName = "claim_type"
	FieldAssetType        FieldName = "asset_type"
	FieldEstimatedDamage  FieldName = "estimated_damage"
	FieldEstimateAmount   FieldName = "estimate_amount"
	FieldVIN              FieldName = "vin"
	FieldClaimant         FieldName = "claimant"
	FieldInitialEstimate  FieldName = "initial_estimate"
	FieldEffectiveDates   FieldName = "effective_dates"
)

// MandatoryFields is the validator's mandatory vocabulary, in reporting order.
var MandatoryFields = []FieldName{
	FieldPolicyNumber,
	FieldPolicyholderName,
	FieldIncidentDate,
	FieldIncidentTime,
	FieldLocation,
	FieldDescription,
	FieldClaimant,
	FieldAssetType,
	FieldEstimatedDamage,
	FieldClaimType,
	FieldInitialEstimate,
}

// RoutingFields is the subset of MandatoryFields whose absence sends a claim to
// manual review. claimant and initial_estimate are validated but never route.
var RoutingFields = []FieldName{
	FieldPolicyNumber,
	FieldPolicyholderName,
	FieldIncidentDate,
	FieldIncidentTime,
	FieldLocation,
	FieldDescription,
	FieldAssetType,
	FieldEstimatedDamage,
	FieldClaimType,
}

// ExtractedFields maps a field name to the raw value captured from the document.
// Amounts are kept as numeric strings.
type ExtractedFields map[FieldName]string

// Has reports whether the field key is present, regardless of its value.
func (f ExtractedFields) Has(name FieldName) bool {
	_, ok := f[name]
	return ok
}

// Get returns the value for name, or "" when absent.
func (f ExtractedFields) Get(name FieldName) string {
	return f[name]
}

// SetIfAbsent stores value only when name has no entry yet and reports whether it did.
func (f ExtractedFields) SetIfAbsent(name FieldName, value string) bool {
	if f.Has(name) {
		return false
	}
	f[name] = value
	return true
}

// SyncEstimate copies estimate_amount into estimated_damage when only the former is present.
// It is idempotent and reports whether it wrote anything.
func (f ExtractedFields) SyncEstimate() bool {
	if v, ok := f[FieldEstimateAmount]; ok && !f.Has(FieldEstimatedDamage) {
		f[FieldEstimatedDamage] = v
		return true
	}
	return false
}

// Clone returns a shallow copy of the map.
func (f ExtractedFields) Clone() ExtractedFields {
	out := make(ExtractedFields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// MissingFields is the ordered list of mandatory fields judged absent or insufficient.
type MissingFields []FieldName

// Contains reports whether name is in the list.
func (m MissingFields) Contains(name FieldName) bool {
	for _, f := range m {
		if f == name {
			return true
		}
	}
	return false
}

// Strings returns the field names as plain strings.
func (m MissingFields) Strings() []string {
	out := make([]string, len(m))
	for i, f := range m {
		out[i] = string(f)
	}
	return out
}

// String joins the field names with ", ".
func (m MissingFields) String() string {
	return strings.Join(m.Strings(), ", ")
}
