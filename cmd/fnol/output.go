package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fnolrouter/internal/domain"
)

const separatorWidth = 60

// resultFileName returns "<stem>_result.json" for a local path or s3 URI.
func resultFileName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_result.json"
}

// writeJSON writes v indented and without HTML escaping, so "≥" and "&" stay readable.
func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// printDetail prints the full single-document summary, extracted values included.
func printDetail(w io.Writer, r *domain.ProcessingResult) {
	fmt.Fprintf(w, "Extracted Fields: %d\n", len(r.ExtractedFields))
	fmt.Fprintf(w, "Missing Fields: [%s]\n", r.MissingFields)
	fmt.Fprintf(w, "Recommended Route: %s\n", r.RecommendedRoute)
	fmt.Fprintf(w, "Reasoning: %s\n", r.Reasoning)

	if len(r.ExtractedFields) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extracted Data:")
	keys := make([]string, 0, len(r.ExtractedFields))
	for k := range r.ExtractedFields {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %s\n", k, r.ExtractedFields[domain.FieldName(k)])
	}
}

// printSummary prints the short per-document block used by batch runs.
func printSummary(w io.Writer, r *domain.ProcessingResult) {
	fmt.Fprintf(w, "Extracted Fields: %d\n", len(r.ExtractedFields))
	fmt.Fprintf(w, "Missing Fields: %d\n", len(r.MissingFields))
	fmt.Fprintf(w, "Recommended Route: %s\n", r.RecommendedRoute)
	fmt.Fprintf(w, "Reasoning: %s\n", r.Reasoning)
}
