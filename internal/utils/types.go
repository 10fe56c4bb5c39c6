package utils

import "strings"

// ToStringPtr returns a pointer to a copy of s.
func ToStringPtr(s string) *string {
	return &s
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
