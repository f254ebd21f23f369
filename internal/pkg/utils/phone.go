package utils

import "strings"

// NormalizePhone trims surrounding spaces and removes inner spaces and dashes
// so "010 1234-5678" validates like "01012345678".
func NormalizePhone(input string) string {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}
