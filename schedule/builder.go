package schedule

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ttgt/schedparse/layout"
	"github.com/ttgt/schedparse/model"
	"github.com/ttgt/schedparse/text"
)

// DayAbbreviations are the weekday markers printed in the day column, in
// timetable order.
var DayAbbreviations = [6]string{"Пнд", "Втр", "Срд", "Чтв", "Птн", "Сбт"}

var dayNames = map[string]string{
	"Пнд": "Понедельник",
	"Втр": "Вторник",
	"Срд": "Среда",
	"Чтв": "Четверг",
	"Птн": "Пятница",
	"Сбт": "Суббота",
}

var weekDigits = regexp.MustCompile(`\d+`)

// DayName returns the full weekday name for an abbreviation, or s itself
// when it is not a known abbreviation.
func DayName(s string) string {
	if name, ok := dayNames[s]; ok {
		return name
	}
	return s
}

// IsWeekMarker reports whether a day-column entry starts a new week block.
func IsWeekMarker(s string) bool {
	return strings.Contains(s, "1-") || strings.Contains(s, "2-")
}

// Config holds configuration for the weekly timetable builder
type Config struct {
	// Columns is the x layout of the timetable
	Columns layout.ColumnTable

	// AnchorMargin is added to a weekday anchor's y (and to the next anchor's y)
	// to form the day's y-range
	// Default: 5 points
	AnchorMargin float64

	// LastDayHeight is how far below the anchor the last weekday extends
	// Default: 20 points
	LastDayHeight float64
}

// DefaultConfig returns the configuration tuned for the weekly timetable
func DefaultConfig() Config {
	return Config{
		Columns:       layout.ScheduleColumns(),
		AnchorMargin:  5,
		LastDayHeight: 20,
	}
}

// Builder reconstructs the weekly timetable of a page
type Builder struct {
	config Config
}

// NewBuilder creates a builder with default configuration
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// NewBuilderWithConfig creates a builder with custom configuration
func NewBuilderWithConfig(config Config) *Builder {
	return &Builder{config: config}
}

// dayAnchor is a day-column entry and the week block it was seen in
type dayAnchor struct {
	text    string
	y       float64
	week    int
	hasWeek bool
}

// Parse returns one ScheduleWeek per week marker on the page. Each weekday
// found in the week's block carries exactly five lesson slots.
func (b *Builder) Parse(items []model.Item) []model.ScheduleWeek {
	weeks := []model.ScheduleWeek{}
	var anchors []dayAnchor

	current, hasWeek := 0, false
	for _, it := range items {
		txt := strings.TrimSpace(it.Text)
		if txt == "" {
			continue
		}
		col, ok := b.config.Columns.ClassifyItem(it)
		if !ok || col != layout.ColumnDay {
			continue
		}

		if IsWeekMarker(txt) {
			current, _ = strconv.Atoi(weekDigits.FindString(txt))
			hasWeek = true
			weeks = append(weeks, model.ScheduleWeek{Week: current, Days: []model.ScheduleDay{}})
			continue
		}
		anchors = append(anchors, dayAnchor{text: txt, y: it.Y, week: current, hasWeek: hasWeek})
	}

	for w := range weeks {
		var block []dayAnchor
		for _, a := range anchors {
			if a.hasWeek && a.week == weeks[w].Week {
				block = append(block, a)
			}
		}

		for _, abbr := range DayAbbreviations {
			upper, lower, ok := b.dayRange(block, abbr)
			if !ok {
				continue
			}
			weeks[w].Days = append(weeks[w].Days, b.buildDay(items, upper, lower))
		}
	}

	return weeks
}

// dayRange computes the y-range of a weekday from its anchor and the entry
// that follows it in the day column.
func (b *Builder) dayRange(block []dayAnchor, abbr string) (upper, lower float64, ok bool) {
	target := -1
	for i, a := range block {
		if a.text == abbr {
			target = i
			break
		}
	}
	if target < 0 {
		return 0, 0, false
	}

	y := block[target].y

	// The neighbour is taken after the first entry at the anchor's y, which
	// is not necessarily the anchor itself.
	current := target
	for i, a := range block {
		if a.y == y {
			current = i
			break
		}
	}

	upper = y + b.config.AnchorMargin
	if current < len(block)-1 {
		lower = block[current+1].y + b.config.AnchorMargin
	} else {
		lower = y - b.config.LastDayHeight
	}
	return upper, lower, true
}

func (b *Builder) buildDay(items []model.Item, upper, lower float64) model.ScheduleDay {
	cells := make(map[layout.Column][]string)
	for _, it := range items {
		if it.Y > upper || it.Y < lower {
			continue
		}
		if col, ok := b.config.Columns.ClassifyItem(it); ok {
			cells[col] = append(cells[col], strings.TrimSpace(it.Text))
		}
	}

	day := model.ScheduleDay{
		Day:   DayName(text.Normalize(strings.Join(cells[layout.ColumnDay], " "))),
		Pairs: make([]model.LessonSlot, 0, len(layout.SlotColumns)),
	}

	for i, col := range layout.SlotColumns {
		slot := model.LessonSlot{Pair: strconv.Itoa(i + 1)}
		if lesson, ok := ParseLesson(strings.Join(cells[col], " ")); ok {
			slot.Subject = lesson.Subject
			slot.Teacher = lesson.Teacher
			slot.Room = lesson.Room
		}
		day.Pairs = append(day.Pairs, slot)
	}
	return day
}
