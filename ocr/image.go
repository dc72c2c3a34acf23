package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ttgt/schedparse/model"
	"github.com/ttgt/schedparse/text"
)

// ErrOCRNotEnabled is returned when recognition is requested but OCR support
// was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Word is one recognised word and its pixel box (origin top-left).
type Word struct {
	Text       string
	Box        image.Rectangle
	Confidence float64
}

// Config holds configuration for recognition
type Config struct {
	// Language is the Tesseract language set
	// Default: "rus"
	Language string

	// PageWidth is the width in points the image is scaled to, so that the
	// column tables of the PDF layout apply
	// Default: 595 (A4 portrait)
	PageWidth float64

	// MinConfidence drops words Tesseract is less sure about (0-100)
	// Default: 30
	MinConfidence float64
}

// DefaultConfig returns the configuration for A4 timetable scans
func DefaultConfig() Config {
	return Config{
		Language:      "rus",
		PageWidth:     595,
		MinConfidence: 30,
	}
}

// ImageSize returns the pixel dimensions of an encoded image. PNG, JPEG,
// BMP, TIFF and WebP are recognised.
func ImageSize(data []byte) (width, height int, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("empty %s image", format)
	}
	return cfg.Width, cfg.Height, nil
}

// IsImage reports whether data starts with a recognised image header.
func IsImage(data []byte) bool {
	_, _, err := image.DecodeConfig(bytes.NewReader(data))
	return err == nil
}

// ItemsFromWords converts word boxes of a width x height image into items.
// The item position is the bottom-left corner of the box, which is where a
// PDF places the baseline of the same text.
func ItemsFromWords(words []Word, width, height int, config Config) []model.Item {
	items := []model.Item{}
	if width <= 0 || height <= 0 {
		return items
	}

	scale := 1.0
	if config.PageWidth > 0 {
		scale = config.PageWidth / float64(width)
	}

	for _, w := range words {
		s := strings.TrimSpace(text.Canonical(w.Text))
		if s == "" || w.Confidence < config.MinConfidence {
			continue
		}
		x := float64(w.Box.Min.X) * scale
		y := float64(height-w.Box.Max.Y) * scale
		items = append(items, model.NewItem(s, x, y))
	}
	return items
}
