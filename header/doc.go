// Package header parses the title block of a replacements sheet.
//
// The title block is not at a fixed position: its fragments ("Лист
// изменений", "2 неделя", "15 Апреля 2025г.", "Вторник") are found anywhere on
// the page by their wording, grouped into lines, and read top to bottom:
//
//	info := header.NewParser().Parse(items)
//	if info.IsoDate == nil {
//	    // Timestamp holds the parse time instead of the sheet's date
//	}
//
// Dates are converted to ISO-8601 at UTC midnight through a fixed table of
// genitive month names; see [RussianDateToISO].
package header
