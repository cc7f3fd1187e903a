package extractor

import (
	"strings"

	"fnolrouter/internal/domain"
)

// KeywordHint maps any of Keywords (contained, case-insensitive) to Value.
type KeywordHint struct {
	Keywords []string
	Value    string
}

// DefaultAssetTypeHints infers asset_type from claim_type. Order matters.
var DefaultAssetTypeHints = []KeywordHint{
	{Keywords: []string{"theft", "auto", "vehicle", "property"}, Value: "Vehicle"},
	{Keywords: []string{"fire"}, Value: "Property"},
	{Keywords: []string{"injury"}, Value: "Property"},
}

// DefaultFilenameClaimTypes infers claim_type from the source filename.
// These keywords describe one sample document set; deployments should override them
// with their own intake naming or drop them.
var DefaultFilenameClaimTypes = []KeywordHint{
	{Keywords: []string{"theft"}, Value: "Theft"},
	{Keywords: []string{"injury"}, Value: "Injury"},
	{Keywords: []string{"fraud"}, Value: "Fire Damage"},
	{Keywords: []string{"small"}, Value: "Property Damage"},
}

// match returns the value of the first hint with a keyword contained in s.
func match(hints []KeywordHint, s string) (string, bool) {
	s = strings.ToLower(s)
	for _, h := range hints {
		for _, kw := range h.Keywords {
			if strings.Contains(s, strings.ToLower(kw)) {
				return h.Value, true
			}
		}
	}
	return "", false
}

// infer fills fields that are still absent from context. It never overwrites.
// asset_type is inferred before claim_type, so a claim type guessed from the filename
// does not feed asset inference.
func (e *Extractor) infer(fields domain.ExtractedFields, filename string) {
	if !fields.Has(domain.FieldAssetType) {
		if fields.Has(domain.FieldVIN) {
			fields[domain.FieldAssetType] = "Vehicle"
		} else if fields.Has(domain.FieldClaimType) {
			if v, ok := match(e.opts.AssetTypeHints, fields.Get(domain.FieldClaimType)); ok {
				fields[domain.FieldAssetType] = v
			}
		}
	}

	if !fields.Has(domain.FieldClaimType) && filename != "" {
		if v, ok := match(e.opts.FilenameClaimTypes, filename); ok {
			fields.SetIfAbsent(domain.FieldClaimType, v)
		}
	}

	fields.SyncEstimate()
}
