package layout

import "github.com/ttgt/schedparse/model"

// Column is the logical name of a table column.
type Column string

// Columns of the replacements sheet.
const (
	ColumnGroup           Column = "group"
	ColumnPair            Column = "pair"
	ColumnSubjectOriginal Column = "subject_original"
	ColumnChange          Column = "change"
	ColumnRoom            Column = "room"
)

// Columns of the weekly timetable.
const (
	ColumnDay Column = "day"
	ColumnP1  Column = "p1"
	ColumnP2  Column = "p2"
	ColumnP3  Column = "p3"
	ColumnP4  Column = "p4"
	ColumnP5  Column = "p5"
)

// SlotColumns lists the five lesson-slot columns of the timetable in pair order.
var SlotColumns = [5]Column{ColumnP1, ColumnP2, ColumnP3, ColumnP4, ColumnP5}

// ColumnRange maps a half-open x-interval [Min, Max) to a column.
type ColumnRange struct {
	Column Column
	Min    float64
	Max    float64
}

// Contains reports whether x falls inside the half-open range.
func (r ColumnRange) Contains(x float64) bool {
	return x >= r.Min && x < r.Max
}

// ColumnTable is an ordered set of column ranges for one document layout.
//
// Ranges are checked in declaration order and the first match wins, so
// overlapping ranges resolve toward the earlier column.
type ColumnTable struct {
	ranges []ColumnRange
}

// NewColumnTable creates a table from ranges in lookup order.
func NewColumnTable(ranges ...ColumnRange) ColumnTable {
	return ColumnTable{ranges: append([]ColumnRange(nil), ranges...)}
}

// Classify returns the first column whose range contains x.
func (t ColumnTable) Classify(x float64) (Column, bool) {
	for _, r := range t.ranges {
		if r.Contains(x) {
			return r.Column, true
		}
	}
	return "", false
}

// ClassifyItem classifies an item by its rounded x-coordinate.
func (t ColumnTable) ClassifyItem(item model.Item) (Column, bool) {
	return t.Classify(item.X)
}

// Range returns the range configured for a column.
func (t ColumnTable) Range(c Column) (ColumnRange, bool) {
	for _, r := range t.ranges {
		if r.Column == c {
			return r, true
		}
	}
	return ColumnRange{}, false
}

// Ranges returns a copy of the configured ranges in lookup order.
func (t ColumnTable) Ranges() []ColumnRange {
	return append([]ColumnRange(nil), t.ranges...)
}

// Overlaps returns every pair of ranges that share at least one x value.
// The replacements layout is known to be tight around the change column;
// callers can use this to surface the ambiguity rather than fix it silently.
func (t ColumnTable) Overlaps() [][2]Column {
	var out [][2]Column
	for i := 0; i < len(t.ranges); i++ {
		for j := i + 1; j < len(t.ranges); j++ {
			a, b := t.ranges[i], t.ranges[j]
			if a.Min < b.Max && b.Min < a.Max {
				out = append(out, [2]Column{a.Column, b.Column})
			}
		}
	}
	return out
}

var replacementColumns = NewColumnTable(
	ColumnRange{ColumnGroup, 35, 70},
	ColumnRange{ColumnPair, 70, 95},
	ColumnRange{ColumnSubjectOriginal, 95, 250},
	ColumnRange{ColumnChange, 250, 500},
	ColumnRange{ColumnRoom, 500, 510},
)

// The timetable columns are centred on fixed x positions with a 45pt half-width,
// so neighbouring lesson slots overlap by 10pt.
var scheduleColumns = NewColumnTable(
	centred(ColumnDay, 43, 45),
	centred(ColumnP1, 135, 45),
	centred(ColumnP2, 215, 45),
	centred(ColumnP3, 295, 45),
	centred(ColumnP4, 375, 45),
	centred(ColumnP5, 455, 45),
)

func centred(c Column, centre, half float64) ColumnRange {
	return ColumnRange{Column: c, Min: centre - half, Max: centre + half}
}

// ReplacementColumns returns the column layout of the replacements sheet.
func ReplacementColumns() ColumnTable {
	return replacementColumns
}

// ScheduleColumns returns the column layout of the weekly timetable.
func ScheduleColumns() ColumnTable {
	return scheduleColumns
}
