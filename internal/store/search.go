package store

import "strings"

// MatchFold reports whether any of the haystack fields contains term as a
// case-insensitive substring. An empty term matches everything, so list
// screens with an empty search box show the full collection unchanged.
func MatchFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Filter returns the records for which keep returns true, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
