// Package model provides the data types shared by the schedule and
// replacements parsers.
//
// # Positioned Text
//
// Every parser consumes a page as a slice of [Item] values. An item is one
// run of text with the coordinates of its origin in PDF user space:
//
//	item := model.NewItem("ПМ-2-1", 41.7, 512.34)
//	// item.X == 42, item.Y == 512, item.RawY == 512.34
//
// Rounded coordinates drive column classification and row membership; the raw
// y-values feed the row boundary estimator.
//
// # Row Boundaries
//
// A [RowBoundary] is an inclusive y-interval expected to contain exactly one
// logical table row. It is computed per target row and never stored.
//
// # Results
//
// The replacements sheet produces one [ReplacementPage] per page, holding the
// parsed [HeaderInfo] and the [ReplacementRow] values found for a group.
//
// The weekly timetable produces [ScheduleWeek] values. Each [ScheduleDay]
// always carries exactly five [LessonSlot] entries numbered "1" to "5", empty
// when no lesson is scheduled.
package model
