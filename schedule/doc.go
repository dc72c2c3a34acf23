// Package schedule reconstructs the weekly class timetable of a group.
//
// The timetable page has a day column followed by five lesson-slot columns.
// The day column holds week markers ("1-я неделя") and weekday abbreviations
// ("Пнд", "Втр", ...). Each abbreviation anchors a row that extends down to the
// next entry of the day column:
//
//	weeks := schedule.NewBuilder().Parse(items)
//	for _, w := range weeks {
//	    for _, d := range w.Days {
//	        fmt.Println(w.Week, d.Day, d.Pairs[0].Subject)
//	    }
//	}
//
// Slot text is normalised and split into subject, teacher and room by
// [ParseLesson].
package schedule
