// Package target parses the two configuration strings that select what gets
// invalidated: which distributions, and which object paths on each.
package target

import "strings"

// Wildcard selects every distribution visible to the caller's credentials.
const Wildcard = "*"

// DefaultPath invalidates everything in a distribution.
const DefaultPath = "/*"

// ParsePaths splits a comma-separated list of object path patterns. An empty
// string yields the catch-all path set. No further validation is done;
// a malformed pattern surfaces as a provider error at request time.
func ParsePaths(s string) []string {
	paths := strings.Split(s, ",")
	if len(paths) == 1 && paths[0] == "" {
		return []string{DefaultPath}
	}
	return paths
}

// ParseDistributions splits a comma-separated list of distribution ids.
// Both "*" and the empty string select all distributions, reported via all.
func ParseDistributions(s string) (ids []string, all bool) {
	ids = strings.Split(s, ",")
	if len(ids) == 1 && (ids[0] == Wildcard || ids[0] == "") {
		return nil, true
	}
	return ids, false
}
