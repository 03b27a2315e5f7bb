package main

import "strings"

// resolveTimezone maps an ISO-3166 country code to a single IANA zone
// identifier. Codes are case-insensitive. Countries spanning several
// zones resolve to the first entry of their table listing; picking one
// representative zone per country is a known approximation, not
// per-region disambiguation.
func resolveTimezone(country string) (string, bool) {
	zones, ok := countryTimezones[strings.ToUpper(strings.TrimSpace(country))]
	if !ok || len(zones) == 0 {
		return "", false
	}
	return zones[0], true
}
