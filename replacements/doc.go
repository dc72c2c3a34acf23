// Package replacements extracts one group's rows from the daily replacements
// sheet.
//
// The sheet is a table with a group column, a pair-number column, the
// original subject, the change and a room. Group codes act as row anchors:
//
//	b := replacements.NewBuilder()
//	page, err := b.ParseGroup(items, "PM21") // looks for "ПМ-2-1"
//
// The row's vertical extent is estimated from the y-coordinates of all group
// codes on the page (see layout.EstimateRowBoundary). Every item inside it is
// assigned a column by x, fragments of a cell are reassembled line by line,
// and a row holding several stacked pairs is split per pair number.
package replacements
