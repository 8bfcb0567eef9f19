package shared

import (
	"strconv"
	"strings"

	"borrowdung/shared/failure"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the non-empty parts into a cache key, e.g. "session:abc:token".
func BuildCacheKey(parts ...string) string {
	filtered := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			filtered = append(filtered, part)
		}
	}

	return strings.Join(filtered, cacheKeySeparator)
}

// BuildCacheKeyPrefix returns the prefix shared by every key built from parts
// plus further parts.
func BuildCacheKeyPrefix(parts ...string) string {
	return BuildCacheKey(parts...) + cacheKeySeparator
}

// ParseID converts a path or form identifier to the API's numeric id.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("invalid id: " + value) //nolint:wrapcheck
	}

	return id, nil
}

// OptionalString returns nil for a blank form value.
func OptionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	return &value
}

// Deref returns the pointed string or "" for nil.
func Deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
