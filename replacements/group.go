package replacements

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidGroup is returned when a Latin group code uses letters that have
// no Cyrillic counterpart in the letter map.
var ErrInvalidGroup = errors.New("unknown group letters")

var (
	latinGroup  = regexp.MustCompile(`^([A-Z]{1,2})(\d)(\d)$`)
	nativeGroup = regexp.MustCompile(`^[А-ЯЁ]{1,2}-\d-\d$`)

	// groupCell matches group codes as printed in the group column
	groupCell = regexp.MustCompile(`^[А-ЯЁA-Z]{1,2}-\d+-\d+$`)
)

// Latin transliterations used in URLs, mapped to the department letters
// printed on the sheet.
var groupLetters = map[string]string{
	"A":  "А",
	"V":  "В",
	"D":  "Д",
	"KS": "КС",
	"L":  "Л",
	"P":  "П",
	"PM": "ПМ",
	"R":  "Р",
	"S":  "С",
	"SP": "СП",
	"E":  "Э",
	"ES": "ЭС",
}

// IsLatinGroup reports whether s is a transliterated code such as "PM21".
func IsLatinGroup(s string) bool {
	return latinGroup.MatchString(s)
}

// IsNativeGroup reports whether s is a Cyrillic code such as "ПМ-2-1".
func IsNativeGroup(s string) bool {
	return nativeGroup.MatchString(s)
}

// CanonicalGroup converts a Latin group code to the form printed on the
// sheet: "PM21" becomes "ПМ-2-1", "A05" becomes "А-0-5". Any other input is
// returned unchanged and looked up verbatim.
func CanonicalGroup(group string) (string, error) {
	m := latinGroup.FindStringSubmatch(group)
	if m == nil {
		return group, nil
	}

	letters, ok := groupLetters[m[1]]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidGroup, group)
	}
	return letters + "-" + m[2] + "-" + m[3], nil
}
