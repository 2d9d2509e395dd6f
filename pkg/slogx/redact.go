package slogx

import "strings"

// Mask hides a secret for display, keeping the first and last four
// characters of values longer than eight. Shorter values are fully masked.
func Mask(secret string) string {
	runes := []rune(secret)
	n := len(runes)
	switch {
	case n == 0:
		return ""
	case n <= 8:
		return strings.Repeat("•", n)
	default:
		return string(runes[:4]) + strings.Repeat("•", n-8) + string(runes[n-4:])
	}
}

// Truncate keeps the first n characters of a token followed by an ellipsis.
func Truncate(token string, n int) string {
	runes := []rune(token)
	if n < 0 {
		n = 0
	}
	if len(runes) <= n {
		return strings.Repeat("•", len(runes))
	}
	return string(runes[:n]) + "…"
}
