package domain

import "strings"

// CountryCode maps free-text location onto a coarse ISO country code by substring.
// matched is false when the location fell through to the "us" default.
func CountryCode(location string) (code string, matched bool) {
	loc := strings.ToLower(location)
	switch {
	case strings.Contains(loc, "uk") || strings.Contains(loc, "united kingdom"):
		return "gb", true
	case strings.Contains(loc, "canada"):
		return "ca", true
	case strings.Contains(loc, "australia"):
		return "au", true
	default:
		return "us", false
	}
}
