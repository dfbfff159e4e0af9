package practice

import "strings"

// Normalize prepares an answer string for comparison: leading/trailing
// whitespace is trimmed, letters are lowercased, and internal whitespace
// runs collapse to a single space. Normalize is idempotent.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// CheckAnswer compares the learner's input against the expected answer.
// Equality is exact after normalization: no numeric tolerance, no partial
// credit.
func CheckAnswer(given, expected string) bool {
	return Normalize(given) == Normalize(expected)
}
