package model

// HeaderInfo describes the title block of a replacements sheet.
//
// Nil pointer fields mean the value was not found in the header. Timestamp is
// always set when a header was parsed: it is IsoDate when a date was found and
// the parse time otherwise.
type HeaderInfo struct {
	CombinedHeader string  `json:"combinedHeader,omitempty"`
	WeekNumber     *int    `json:"weekNumber,omitempty"`
	Date           *string `json:"date,omitempty"`
	IsoDate        *string `json:"isoDate,omitempty"`
	DayOfWeek      *string `json:"dayOfWeek,omitempty"`
	Timestamp      string  `json:"timestamp,omitempty"`
}

// IsZero reports whether no header was parsed at all.
func (h HeaderInfo) IsZero() bool {
	return h.CombinedHeader == "" && h.Timestamp == ""
}

// HasDate reports whether the header carried a recognizable calendar date.
func (h HeaderInfo) HasDate() bool {
	return h.IsoDate != nil
}

// ReplacementRow is one lesson-pair change for a group.
type ReplacementRow struct {
	Pair            string `json:"pair,omitempty"`
	SubjectOriginal string `json:"subject_original,omitempty"`
	Change          string `json:"change,omitempty"`
	Room            string `json:"room,omitempty"`
}

// ReplacementPage holds the rows found for one group on one page.
type ReplacementPage struct {
	Page   int              `json:"-"`
	Header HeaderInfo       `json:"header"`
	Rows   []ReplacementRow `json:"rows"`
}

// LessonSlot is one of the five lesson pairs of a weekday.
type LessonSlot struct {
	Pair    string `json:"pair"`
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
}

// IsEmpty reports whether the slot has no lesson.
func (s LessonSlot) IsEmpty() bool {
	return s.Subject == "" && s.Teacher == "" && s.Room == ""
}

// ScheduleDay is the timetable of a single weekday.
type ScheduleDay struct {
	Day   string       `json:"day"`
	Pairs []LessonSlot `json:"pairs"`
}

// ScheduleWeek groups the weekdays that follow one week marker.
type ScheduleWeek struct {
	Week int           `json:"week"`
	Days []ScheduleDay `json:"days"`
}
