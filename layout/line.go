package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/ttgt/schedparse/model"
)

// Line is a group of items sharing approximately the same y-coordinate.
type Line struct {
	// Key is the y of the item that started the line
	Key float64

	// Items, left to right once grouped
	Items []model.Item
}

// LineConfig holds configuration for grouping items into lines
type LineConfig struct {
	// Tolerance is the maximum y distance from a line's key for an item to join it
	Tolerance float64

	// Exclusive makes the tolerance a strict bound (distance < Tolerance)
	Exclusive bool

	// UseRawX orders items within a line by their unrounded x
	UseRawX bool
}

// DefaultLineConfig returns the tolerance used for table cells
func DefaultLineConfig() LineConfig {
	return LineConfig{
		Tolerance: 5,
	}
}

// LineGrouper groups positioned items into horizontal lines
type LineGrouper struct {
	config LineConfig
}

// NewLineGrouper creates a grouper with default configuration
func NewLineGrouper() *LineGrouper {
	return &LineGrouper{config: DefaultLineConfig()}
}

// NewLineGrouperWithConfig creates a grouper with custom configuration
func NewLineGrouperWithConfig(config LineConfig) *LineGrouper {
	return &LineGrouper{config: config}
}

// Group assigns every item to a line. An item joins the nearest existing line
// whose key is within tolerance, otherwise it starts a new line keyed by its
// own y. Lines are returned top of page first (descending y) with items
// ordered left to right.
func (g *LineGrouper) Group(items []model.Item) []Line {
	var lines []Line

	for _, it := range items {
		best := -1
		bestDist := math.Inf(1)
		for i := range lines {
			d := math.Abs(it.Y - lines[i].Key)
			if !g.within(d) {
				continue
			}
			if d < bestDist {
				best = i
				bestDist = d
			}
		}

		if best < 0 {
			lines = append(lines, Line{Key: it.Y, Items: []model.Item{it}})
			continue
		}
		lines[best].Items = append(lines[best].Items, it)
	}

	for i := range lines {
		lines[i].sort(g.config.UseRawX)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Key > lines[j].Key
	})

	return lines
}

func (g *LineGrouper) within(d float64) bool {
	if g.config.Exclusive {
		return d < g.config.Tolerance
	}
	return d <= g.config.Tolerance
}

func (l *Line) sort(raw bool) {
	sort.SliceStable(l.Items, func(i, j int) bool {
		if raw {
			return l.Items[i].RawX < l.Items[j].RawX
		}
		return l.Items[i].X < l.Items[j].X
	})
}

// Texts returns the trimmed text of each item in the line.
func (l Line) Texts() []string {
	out := make([]string, len(l.Items))
	for i, it := range l.Items {
		out[i] = strings.TrimSpace(it.Text)
	}
	return out
}

// Text returns the line's items joined by single spaces.
func (l Line) Text() string {
	return strings.TrimSpace(strings.Join(l.Texts(), " "))
}

// JoinLines flattens lines in order and joins every item's trimmed text with
// a single space.
func JoinLines(lines []Line) string {
	var parts []string
	for _, l := range lines {
		parts = append(parts, l.Texts()...)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
