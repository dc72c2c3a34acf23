package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// PDF text runs carry NBSP, thin spaces and BOMs as well as ASCII whitespace
	whitespaceRun = regexp.MustCompile(`[\s\p{Zs}\x{FEFF}]+`)

	spacedInitials  = regexp.MustCompile(`([А-ЯЁ])\s*\.\s*([А-ЯЁ])\s*\.`)
	partialInitials = regexp.MustCompile(`([А-ЯЁ])\.([А-ЯЁ])\s?\.?`)
	subgroupMarker  = regexp.MustCompile(`(?i)(\d+)\s*п\s*/\s*г`)
	spacedSlash     = regexp.MustCompile(`\s*/\s*`)
	digitThenLetter = regexp.MustCompile(`(\d)\s+([А-Яа-яЁё])`)
)

// SubgroupMarker is the canonical spelling of the subgroup abbreviation.
const SubgroupMarker = "п/г"

// Canonical returns s in Unicode NFC form. Some PDF fonts emit "Й" and "Ё" as
// a base letter followed by a combining mark; composing them lets the
// Cyrillic character classes in the parsers match.
func Canonical(s string) string {
	return norm.NFC.String(s)
}

// CollapseSpaces replaces every whitespace run with one ASCII space and trims
// the result.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// Normalize canonicalises the text of a table cell before it is parsed:
//
//   - whitespace runs collapse to one space and the ends are trimmed
//   - spaced initials such as "А . Б ." become "А.Б."
//   - the subgroup marker is spelled "N п/г"
//   - spaces around "/" are removed
//   - a digit followed by a space and a letter is joined ("3 а" becomes "3а")
//     unless the letter starts the subgroup marker
//
// Normalize is idempotent.
func Normalize(s string) string {
	s = CollapseSpaces(Canonical(s))
	if s == "" {
		return s
	}

	s = spacedInitials.ReplaceAllString(s, "$1.$2.")
	s = partialInitials.ReplaceAllString(s, "$1.$2.")
	s = subgroupMarker.ReplaceAllString(s, "$1 "+SubgroupMarker)
	s = spacedSlash.ReplaceAllString(s, "/")
	return joinDigitLetter(s)
}

// joinDigitLetter removes the space between a digit and a following letter.
// RE2 has no lookahead, so the subgroup exception is checked by hand.
func joinDigitLetter(s string) string {
	matches := digitThenLetter.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		letterStart := m[4]
		if hasPrefixFold(s[letterStart:], SubgroupMarker) {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(s[m[2]:m[3]])
		b.WriteString(s[letterStart:m[5]])
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}
