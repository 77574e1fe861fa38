package validation

import (
	"strings"
)

var validTriggers = map[string]bool{
	"initial":         true,
	"pull_to_refresh": true,
	"foreground":      true,
	"manual":          true,
	"scheduled":       true,
	"retry":           true,
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTrigger validates the origin label of a refresh request
func IsValidTrigger(trigger string) bool {
	return validTriggers[trigger]
}

// IsValidLatitude reports whether lat is within [-90, 90]
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude reports whether lon is within [-180, 180]
func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

// IsHTTPURL checks the value starts with an http or https scheme
func IsHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
