package reader

import (
	"math"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"github.com/ttgt/schedparse/model"
	"github.com/ttgt/schedparse/text"
)

// Glyph is one decoded character with its placement.
type Glyph struct {
	Text     string
	X, Y     float64
	Width    float64
	FontSize float64
}

// GlyphsFromText converts the decoder's text records into glyphs.
func GlyphsFromText(texts []pdf.Text) []Glyph {
	glyphs := make([]Glyph, 0, len(texts))
	for _, t := range texts {
		glyphs = append(glyphs, Glyph{
			Text:     t.S,
			X:        t.X,
			Y:        t.Y,
			Width:    t.W,
			FontSize: t.FontSize,
		})
	}
	return glyphs
}

// MergeConfig holds configuration for rebuilding text runs from glyphs
type MergeConfig struct {
	// BaselineTolerance is the largest y difference between glyphs of one run
	// Default: 1 point
	BaselineTolerance float64

	// SpaceFactor is the gap, as a fraction of font size, above which a space
	// is inserted between two glyphs of the same run
	// Default: 0.2
	SpaceFactor float64

	// BreakFactor is the gap, as a fraction of font size, above which a new
	// run starts
	// Default: 1.5
	BreakFactor float64

	// DefaultFontSize is used for glyphs that report no font size
	// Default: 10 points
	DefaultFontSize float64
}

// DefaultMergeConfig returns the configuration tuned for table cells
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		BaselineTolerance: 1,
		SpaceFactor:       0.2,
		BreakFactor:       1.5,
		DefaultFontSize:   10,
	}
}

type run struct {
	text   strings.Builder
	x, y   float64
	end    float64
	spaced bool
}

// MergeGlyphs joins glyphs into text runs in content-stream order.
// Whitespace-only runs are dropped and run text is composed to NFC.
func MergeGlyphs(glyphs []Glyph, config MergeConfig) []model.Item {
	items := []model.Item{}
	var cur *run

	flush := func() {
		if cur == nil {
			return
		}
		s := strings.TrimSpace(text.Canonical(cur.text.String()))
		if s != "" {
			items = append(items, model.NewItem(s, cur.x, cur.y))
		}
		cur = nil
	}

	for _, g := range glyphs {
		if g.Text == "" {
			continue
		}
		size := g.FontSize
		if size <= 0 {
			size = config.DefaultFontSize
		}

		if isBlank(g.Text) {
			if cur != nil {
				cur.spaced = true
				cur.end = math.Max(cur.end, g.X+g.Width)
			}
			continue
		}

		if cur != nil {
			gap := g.X - cur.end
			sameLine := math.Abs(g.Y-cur.y) <= config.BaselineTolerance
			switch {
			case !sameLine || gap > config.BreakFactor*size || gap < -size:
				flush()
			case cur.spaced || gap > config.SpaceFactor*size:
				cur.text.WriteByte(' ')
			}
		}

		if cur == nil {
			cur = &run{x: g.X, y: g.Y}
		}
		cur.text.WriteString(g.Text)
		cur.end = g.X + g.Width
		cur.spaced = false
	}
	flush()

	return items
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
