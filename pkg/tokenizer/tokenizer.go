// Package tokenizer splits raw source lines into delimiter-separated fields
// and normalizes header tokens into column names.
//
// Splitting is strict: there is no quoting or escaping, so a delimiter
// appearing inside a field is indistinguishable from a field boundary. This
// is a documented limitation of the source format, not something the
// tokenizer attempts to repair.
package tokenizer

import "strings"

// Split breaks a raw line into its delimiter-separated fields. The delimiter
// is matched exactly and may be longer than one character (e.g. ", ").
// Trailing carriage-return and newline characters are never part of field
// content and are stripped before splitting.
//
// Split is a pure function: it keeps no state between calls and never
// modifies its input.
func Split(line, delimiter string) []string {
	line = strings.TrimRight(line, "\r\n")
	return strings.Split(line, delimiter)
}

// Clean removes every character that is not an ASCII letter or digit,
// preserving the relative order of the remaining characters. It is applied
// to header fields to produce column names; data fields skip it and go
// through numeric conversion instead.
//
// Empty input yields empty output, never an error. Clean is idempotent.
func Clean(field string) string {
	var b strings.Builder
	b.Grow(len(field))
	for i := 0; i < len(field); i++ {
		c := field[i]
		if isAlphanumeric(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isAlphanumeric(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
