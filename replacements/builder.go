package replacements

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ttgt/schedparse/header"
	"github.com/ttgt/schedparse/layout"
	"github.com/ttgt/schedparse/model"
)

var (
	pairNumber      = regexp.MustCompile(`^\d+$`)
	capitalizedWord = regexp.MustCompile(`^[А-ЯЁ][а-яё]+$`)
	leadingInitials = regexp.MustCompile(`^([А-ЯЁ]\.[А-ЯЁ]\.)(.*)$`)
)

// Config holds configuration for the replacements row builder
type Config struct {
	// Columns is the x layout of the sheet
	Columns layout.ColumnTable

	// CellTolerance is the y distance within which fragments of one cell share a line
	// Default: 5 points
	CellTolerance float64

	// PairTolerance is the y distance from a pair number within which items
	// belong to that pair when one group row holds several pairs
	// Default: 5 points
	PairTolerance float64

	// Header configures the title block parser
	Header header.Config
}

// DefaultConfig returns the configuration tuned for the replacements sheet
func DefaultConfig() Config {
	return Config{
		Columns:       layout.ReplacementColumns(),
		CellTolerance: 5,
		PairTolerance: 5,
		Header:        header.DefaultConfig(),
	}
}

// Builder extracts the replacement rows of one group from a page
type Builder struct {
	config Config
	header *header.Parser
	cells  *layout.LineGrouper
}

// NewBuilder creates a builder with default configuration
func NewBuilder() *Builder {
	return NewBuilderWithConfig(DefaultConfig())
}

// NewBuilderWithConfig creates a builder with custom configuration
func NewBuilderWithConfig(config Config) *Builder {
	return &Builder{
		config: config,
		header: header.NewParserWithConfig(config.Header),
		cells: layout.NewLineGrouperWithConfig(layout.LineConfig{
			Tolerance: config.CellTolerance,
		}),
	}
}

// ParseGroup converts group to its printed form and parses the page for it.
// See [CanonicalGroup] for the accepted forms.
func (b *Builder) ParseGroup(items []model.Item, group string) (model.ReplacementPage, error) {
	target, err := CanonicalGroup(group)
	if err != nil {
		return model.ReplacementPage{Rows: []model.ReplacementRow{}}, err
	}
	return b.Parse(items, target), nil
}

// Parse returns the header of the page and the rows printed for target,
// which must already be in printed form ("ПМ-2-1"). A group that is not on
// the page yields no rows.
func (b *Builder) Parse(items []model.Item, target string) model.ReplacementPage {
	page := model.ReplacementPage{
		Header: b.header.Parse(items),
		Rows:   []model.ReplacementRow{},
	}

	anchors := b.GroupAnchors(items)
	idx := -1
	for i, a := range anchors {
		if strings.TrimSpace(a.Text) == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return page
	}

	ys := make([]float64, len(anchors))
	for i, a := range anchors {
		ys[i] = a.RawY
	}

	boundary, ok := layout.EstimateRowBoundary(ys, idx)
	if !ok {
		return page
	}

	page.Rows = append(page.Rows, b.BuildRows(layout.ItemsWithin(items, boundary))...)
	return page
}

// GroupAnchors returns the group codes printed in the group column, sorted
// by rounded y ascending.
func (b *Builder) GroupAnchors(items []model.Item) []model.Item {
	groupRange, ok := b.config.Columns.Range(layout.ColumnGroup)
	if !ok {
		return nil
	}

	var anchors []model.Item
	for _, it := range items {
		txt := strings.TrimSpace(it.Text)
		if txt == "" || !groupRange.Contains(it.X) || !groupCell.MatchString(txt) {
			continue
		}
		anchors = append(anchors, it)
	}

	sort.SliceStable(anchors, func(i, j int) bool {
		return anchors[i].Y < anchors[j].Y
	})
	return anchors
}

// BuildRows turns the items of one group row into replacement rows. When the
// row holds more than one pair number the pairs are stacked at the same group
// y, and each pair is built from the items near its own number.
// Rows without a pair number are dropped.
func (b *Builder) BuildRows(rowItems []model.Item) []model.ReplacementRow {
	var pairs []model.Item
	for _, it := range rowItems {
		col, ok := b.config.Columns.ClassifyItem(it)
		if ok && col == layout.ColumnPair && pairNumber.MatchString(strings.TrimSpace(it.Text)) {
			pairs = append(pairs, it)
		}
	}

	var rows []model.ReplacementRow
	if len(pairs) > 1 {
		for _, p := range pairs {
			var near []model.Item
			for _, it := range rowItems {
				if abs(it.Y-p.Y) <= b.config.PairTolerance {
					near = append(near, it)
				}
			}
			if row := b.BuildRow(near); row.Pair != "" {
				rows = append(rows, row)
			}
		}
		return rows
	}

	if row := b.BuildRow(rowItems); row.Pair != "" {
		rows = append(rows, row)
	}
	return rows
}

// BuildRow assembles one row from its items. Each column's fragments are
// grouped into lines, read top to bottom and left to right, and joined.
func (b *Builder) BuildRow(items []model.Item) model.ReplacementRow {
	byColumn := make(map[layout.Column][]model.Item)
	for _, it := range items {
		col, ok := b.config.Columns.ClassifyItem(it)
		if !ok || col == layout.ColumnGroup {
			continue
		}
		byColumn[col] = append(byColumn[col], it)
	}

	cell := func(c layout.Column) string {
		if len(byColumn[c]) == 0 {
			return ""
		}
		return layout.JoinLines(b.cells.Group(byColumn[c]))
	}

	row := model.ReplacementRow{
		Pair:            cell(layout.ColumnPair),
		SubjectOriginal: cell(layout.ColumnSubjectOriginal),
		Change:          cell(layout.ColumnChange),
		Room:            cell(layout.ColumnRoom),
	}
	mergeTeacherInitials(&row)
	return row
}

// mergeTeacherInitials fixes a layout artifact: the initials of the original
// teacher sometimes sit at the x of the change column. When the change cell
// is a single token starting with initials and the original subject ends in a
// surname, the initials move back onto the subject.
func mergeTeacherInitials(row *model.ReplacementRow) {
	if row.SubjectOriginal == "" || row.Change == "" || strings.Contains(row.Change, " ") {
		return
	}

	words := strings.Split(row.SubjectOriginal, " ")
	last := words[len(words)-1]
	if !capitalizedWord.MatchString(last) {
		return
	}

	m := leadingInitials.FindStringSubmatch(row.Change)
	if m == nil {
		return
	}

	words[len(words)-1] = last + " " + m[1]
	row.SubjectOriginal = strings.Join(words, " ")
	row.Change = strings.TrimSpace(m[2])
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
