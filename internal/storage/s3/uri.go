package s3

import (
	"fmt"
	"strings"

	"fnolrouter/internal/domain"
)

// URIScheme prefixes document sources held in object storage.
const URIScheme = "s3://"

// IsURI reports whether source names an object-storage document.
func IsURI(source string) bool {
	return strings.HasPrefix(source, URIScheme)
}

// ParseURI splits "s3://bucket/key/with/slashes" into bucket and key.
func ParseURI(uri string) (bucket, key string, err error) {
	if !IsURI(uri) {
		return "", "", fmt.Errorf("%q lacks %s prefix: %w", uri, URIScheme, domain.ErrInvalidSource)
	}
	rest := strings.TrimPrefix(uri, URIScheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("%q must name a bucket and an object key: %w", uri, domain.ErrInvalidSource)
	}
	return bucket, key, nil
}
