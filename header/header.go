package header

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ttgt/schedparse/layout"
	"github.com/ttgt/schedparse/model"
	"github.com/ttgt/schedparse/text"
)

var (
	candidatePattern = regexp.MustCompile(`(?i)Лист\s+изменений|неделя|\d{1,2}\s*(?:Январ|Феврал|Март|Апрел|Ма[йя]|Июн|Июл|Август|Сентябр|Октябр|Ноябр|Декабр)|` +
		strings.Join(Weekdays[:], "|") + `|\d{4}\s*г`)

	weekPattern = regexp.MustCompile(`(?i)(\d+)\s*неделя`)

	datePattern = regexp.MustCompile(`(?i)(\d{1,2})\s*(Январ[ья]|Феврал[ья]|Март[а]?|Апрел[ья]|Ма[йя]|Июн[ья]|Июл[ья]|Август[а]|Сентябр[ья]|Октябр[ья]|Ноябр[ья]|Декабр[ья])\s*(\d{4})(?:г\.?)?`)

	weekdayPattern = regexp.MustCompile(`(?i)(` + strings.Join(Weekdays[:], "|") + `)`)

	underscores = regexp.MustCompile(`_+`)
)

// Config holds configuration for header parsing
type Config struct {
	// LineTolerance is the strict y distance below which candidates share a line
	// Default: 10 points
	LineTolerance float64

	// Now supplies the fallback timestamp when the header has no date
	// Default: time.Now
	Now func() time.Time
}

// DefaultConfig returns the configuration tuned for the replacements sheet
func DefaultConfig() Config {
	return Config{
		LineTolerance: 10,
		Now:           time.Now,
	}
}

// Parser extracts the title block of a replacements sheet
type Parser struct {
	config  Config
	grouper *layout.LineGrouper
}

// NewParser creates a parser with default configuration
func NewParser() *Parser {
	return NewParserWithConfig(DefaultConfig())
}

// NewParserWithConfig creates a parser with custom configuration
func NewParserWithConfig(config Config) *Parser {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Parser{
		config: config,
		grouper: layout.NewLineGrouperWithConfig(layout.LineConfig{
			Tolerance: config.LineTolerance,
			Exclusive: true,
			UseRawX:   true,
		}),
	}
}

// IsCandidate reports whether a text run looks like part of the title block:
// the change-sheet caption, a week marker, a day and month, a weekday name or
// a year.
func IsCandidate(s string) bool {
	return candidatePattern.MatchString(s)
}

// Candidates returns the items that may belong to the title block, wherever
// they are on the page.
func Candidates(items []model.Item) []model.Item {
	var out []model.Item
	for _, it := range items {
		if IsCandidate(it.Text) {
			out = append(out, it)
		}
	}
	return out
}

// Parse locates the title block among all page items and extracts the week
// number, date and weekday. It returns a zero HeaderInfo when no item looks
// like part of a header.
func (p *Parser) Parse(items []model.Item) model.HeaderInfo {
	candidates := Candidates(items)
	if len(candidates) == 0 {
		return model.HeaderInfo{}
	}
	return p.ParseLine(p.CombinedHeader(candidates))
}

// CombinedHeader rebuilds the header text from candidate items: items are
// grouped into lines, lines are read top to bottom and joined.
func (p *Parser) CombinedHeader(candidates []model.Item) string {
	lines := p.grouper.Group(candidates)
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.Text())
	}
	return text.CollapseSpaces(strings.Join(parts, " "))
}

// ParseLine extracts header fields from an already combined header string.
func (p *Parser) ParseLine(combined string) model.HeaderInfo {
	info := model.HeaderInfo{CombinedHeader: combined}
	now := p.config.Now()

	if m := weekPattern.FindStringSubmatch(combined); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			info.WeekNumber = &n
		}
	}

	if m := datePattern.FindStringSubmatch(combined); m != nil {
		date := fmt.Sprintf("%s %s %sг.", m[1], m[2], m[3])
		info.Date = &date
		if iso, ok := RussianDateToISO(date, now); ok {
			info.IsoDate = &iso
		}
	}

	cleaned := strings.TrimSpace(underscores.ReplaceAllString(combined, ""))
	if m := weekdayPattern.FindStringSubmatch(cleaned); m != nil {
		day := strings.TrimSpace(m[1])
		info.DayOfWeek = &day
	}

	if info.IsoDate != nil {
		info.Timestamp = *info.IsoDate
	} else {
		info.Timestamp = now.UTC().Format(ISOLayout)
	}

	return info
}
