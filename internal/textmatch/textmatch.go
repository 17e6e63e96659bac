// Package textmatch implements the case-insensitive substring matching used
// by every search and filter operation.
package textmatch

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold lowercases s using Unicode case folding.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Contains reports whether needle occurs in haystack, ignoring case.
// An empty needle matches everything.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// ContainsAny reports whether needle occurs in at least one of fields.
func ContainsAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if Contains(f, needle) {
			return true
		}
	}
	return false
}
