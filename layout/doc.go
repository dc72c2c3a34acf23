// Package layout reconstructs table geometry from positioned text items.
//
// The source documents carry no table structure: rows and columns exist only
// as the x/y placement of text runs. This package provides the three
// geometric primitives the parsers are built from.
//
// # Columns
//
// A [ColumnTable] maps an x-coordinate to a logical [Column] using half-open
// ranges checked in declaration order:
//
//	col, ok := layout.ReplacementColumns().Classify(82) // ColumnPair, true
//
// Two static tables exist, [ReplacementColumns] and [ScheduleColumns]. They
// are built once at package initialisation and never modified.
//
// # Row Boundaries
//
// [EstimateRowBoundary] infers the vertical extent of one row from the
// y-coordinates of all row anchors (for example, every group code in the
// group column). The heuristic starts from the tightest pair of neighbouring
// anchors and reflects outward until it reaches the target row.
//
// # Lines
//
// A [LineGrouper] clusters items whose y-coordinates are within a tolerance
// into [Line] values, top of page first, each ordered left to right. Cell
// text fragmented across several runs is reassembled this way.
package layout
