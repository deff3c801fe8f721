package efficiency

import "strings"

// StylePrefix returns the part of a style identifier before the first '-' or '_'.
// Identifiers without a separator are returned unchanged, so applying it twice is a no-op.
func StylePrefix(styleID string) string {
	if i := strings.IndexAny(styleID, "-_"); i >= 0 {
		return styleID[:i]
	}
	return styleID
}
