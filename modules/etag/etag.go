package etag

import (
	"fmt"
	"strings"
)

type ETaggable interface {
	V() string
}

const prefix = "v:"

// ETag returns the unquoted tag for obj. Header values carry it quoted, see
// Header.
func ETag(obj ETaggable) string {
	return prefix + obj.V()
}

// Header returns the strong entity tag for use in ETag response headers.
func Header(obj ETaggable) string {
	return `"` + ETag(obj) + `"`
}

func ParseETag(etag string) (string, error) {
	etag = strings.TrimPrefix(strings.TrimSpace(etag), "W/")
	etag = strings.Trim(etag, `"`)
	if !strings.HasPrefix(etag, prefix) {
		return "", fmt.Errorf("invalid etag format")
	}
	return strings.TrimPrefix(etag, prefix), nil
}

// Matches reports whether an If-None-Match header value names obj's current
// version. "*" matches anything.
func Matches(header string, obj ETaggable) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		v, err := ParseETag(candidate)
		if err == nil && v == obj.V() {
			return true
		}
	}
	return false
}
