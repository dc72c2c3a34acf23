package schedparse

import (
	"fmt"
	"strings"
)

// WarningKind classifies a non-fatal problem met during extraction.
type WarningKind string

const (
	// WarningPageFailed means a page could not be decoded or parsed and was
	// skipped. The other pages are unaffected.
	WarningPageFailed WarningKind = "page_failed"

	// WarningHeaderDateMissing means a page header was found without a
	// recognisable date; its timestamp is the extraction time.
	WarningHeaderDateMissing WarningKind = "header_date_missing"

	// WarningInvalidGroup means the requested group code could not be
	// converted; the result is empty.
	WarningInvalidGroup WarningKind = "invalid_group"
)

// Warning is a non-fatal issue. Extraction succeeded but the result may be
// incomplete.
type Warning struct {
	Kind WarningKind
	// Page is the 1-based page number, or 0 when the warning is not tied to
	// a page.
	Page    int
	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into one line for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// HasWarning reports whether warnings contains one of kind.
func HasWarning(warnings []Warning, kind WarningKind) bool {
	for _, w := range warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}
