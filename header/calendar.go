package header

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISOLayout matches the millisecond UTC instants written by the site's
// original service, e.g. "2025-04-15T00:00:00.000Z".
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// Weekdays lists the full Russian weekday names, Monday first.
var Weekdays = [7]string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
	"Воскресенье",
}

// genitive month names, lower-cased, as printed in dates ("15 апреля")
var months = map[string]time.Month{
	"января":   time.January,
	"февраля":  time.February,
	"марта":    time.March,
	"апреля":   time.April,
	"мая":      time.May,
	"июня":     time.June,
	"июля":     time.July,
	"августа":  time.August,
	"сентября": time.September,
	"октября":  time.October,
	"ноября":   time.November,
	"декабря":  time.December,
}

var (
	dayMonthPattern = regexp.MustCompile(`(?i)(\d{1,2})\s+([А-Яа-я]+)[г.]*`)
	yearPattern     = regexp.MustCompile(`(\d{4})`)
)

// MonthFromName returns the month for a genitive Russian month name, ignoring
// case. Nominative forms ("Май", "Март") are not recognised.
func MonthFromName(name string) (time.Month, bool) {
	m, ok := months[strings.ToLower(name)]
	return m, ok
}

// RussianDateToISO converts a date such as "15 Апреля 2025г." to an ISO-8601
// instant at UTC midnight. A missing year falls back to the year of now.
// It reports false when the string has no day and month or the month name
// is not recognised.
func RussianDateToISO(dateStr string, now time.Time) (string, bool) {
	m := dayMonthPattern.FindStringSubmatch(dateStr)
	if m == nil {
		return "", false
	}

	day, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}

	month, ok := MonthFromName(m[2])
	if !ok {
		return "", false
	}

	year := now.Year()
	if y := yearPattern.FindString(dateStr); y != "" {
		year, _ = strconv.Atoi(y)
	}

	// time.Date normalises out-of-range days the same way the site's
	// JavaScript Date.UTC does, so "31 Апреля" becomes 1 May.
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(ISOLayout), true
}
