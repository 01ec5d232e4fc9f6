// Package shared provides common utility functions used across multiple
// packages in the chebi-leaves codebase.
package shared

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"chebi-leaves/internal/types"
)

// ChEBIPrefix is the namespace prefix of canonical ChEBI identifiers.
const ChEBIPrefix = "CHEBI:"

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// NormalizeChEBIID turns user input into the canonical "CHEBI:<digits>"
// form. Bare digit sequences gain the prefix; a prefix in any letter case
// is upper-cased. Everything else yields an InvalidIdentifierError.
func NormalizeChEBIID(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if digitsPattern.MatchString(value) {
		return ChEBIPrefix + value, nil
	}
	if len(value) > len(ChEBIPrefix) && strings.EqualFold(value[:len(ChEBIPrefix)], ChEBIPrefix) {
		digits := value[len(ChEBIPrefix):]
		if digitsPattern.MatchString(digits) {
			return ChEBIPrefix + digits, nil
		}
	}
	return "", &types.InvalidIdentifierError{Input: raw}
}

// IsCanonicalChEBIID reports whether value is already in "CHEBI:<digits>"
// form.
func IsCanonicalChEBIID(value string) bool {
	return strings.HasPrefix(value, ChEBIPrefix) && digitsPattern.MatchString(value[len(ChEBIPrefix):])
}

// TrimBody shortens a response body for inclusion in log lines. The cut
// never splits a UTF-8 sequence.
func TrimBody(body []byte, limit int) string {
	text := strings.TrimSpace(string(body))
	if limit <= 0 || len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
