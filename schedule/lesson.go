package schedule

import (
	"regexp"
	"strings"

	"github.com/ttgt/schedparse/text"
)

// PhysicalEducation is printed without a teacher-specific layout and is
// matched literally.
const PhysicalEducation = "Физическая культура"

var (
	peTeacher = regexp.MustCompile(`(?:` + PhysicalEducation + `\s+)?([А-ЯЁ][а-яё]+)\s+([А-ЯЁ])\s*\.\s*([А-ЯЁ])\s*\.`)
	subgroup  = regexp.MustCompile(`(?i)^(\d+)\s*п/г\s*(.+)`)
	lessonRow = regexp.MustCompile(`^(.*?)\s+([А-ЯЁ][а-яё]+(?:\s+[А-ЯЁ]\.[А-ЯЁ]\.)?)\s*([\w/\-]*)?$`)
)

// Lesson is the parsed content of one timetable slot.
type Lesson struct {
	Subject string
	Teacher string
	Room    string
}

// ParseLesson splits the text of a timetable slot into subject, teacher and
// room. The rules are tried in order:
//
//  1. physical education: the teacher is the "Surname I.O." after it and the
//     room is whatever follows the teacher
//  2. a leading subgroup marker ("1 п/г ..."): the rest is the teacher
//  3. "subject Surname [I.O.] [room]"
//  4. anything else is kept whole as the subject
//
// It reports false for empty input.
func ParseLesson(raw string) (Lesson, bool) {
	s := text.Normalize(raw)
	if s == "" {
		return Lesson{}, false
	}

	if strings.Contains(s, PhysicalEducation) {
		if m := peTeacher.FindStringSubmatch(s); m != nil {
			teacher := m[1] + " " + m[2] + "." + m[3] + "."
			room := ""
			if i := strings.Index(s, teacher); i >= 0 {
				room = strings.TrimSpace(s[i+len(teacher):])
			}
			return Lesson{Subject: PhysicalEducation, Teacher: teacher, Room: room}, true
		}
	}

	if m := subgroup.FindStringSubmatch(s); m != nil {
		return Lesson{Teacher: strings.TrimSpace(m[2])}, true
	}

	if m := lessonRow.FindStringSubmatch(s); m != nil {
		return Lesson{
			Subject: strings.TrimSpace(m[1]),
			Teacher: strings.TrimSpace(m[2]),
			Room:    strings.TrimSpace(m[3]),
		}, true
	}

	return Lesson{Subject: s}, true
}
