package reader

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/ttgt/schedparse/model"
)

// ErrNoPages is returned when a document decodes but holds no pages.
var ErrNoPages = errors.New("document has no pages")

// Page is the text content of one page.
type Page struct {
	Number int
	Items  []model.Item
}

// Document is a decoded PDF held in memory
type Document struct {
	pdf    *pdf.Reader
	config MergeConfig
}

// Decode parses PDF bytes.
func Decode(data []byte) (*Document, error) {
	return DecodeWithConfig(data, DefaultMergeConfig())
}

// DecodeWithConfig parses PDF bytes and merges glyphs using config.
func DecodeWithConfig(data []byte, config MergeConfig) (doc *Document, err error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("failed to decode PDF: %w", ErrNoPages)
	}

	// The decoder panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("failed to decode PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode PDF: %w", err)
	}
	if r.NumPage() == 0 {
		return nil, ErrNoPages
	}

	return &Document{pdf: r, config: config}, nil
}

// Open reads and decodes the PDF file at path.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return Decode(data)
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return d.pdf.NumPage()
}

// Page returns the text items of page n (1-based). A page whose content
// stream cannot be interpreted yields an error; other pages are unaffected.
func (d *Document) Page(n int) (page Page, err error) {
	if n < 1 || n > d.NumPages() {
		return Page{}, fmt.Errorf("page %d out of range [1, %d]", n, d.NumPages())
	}

	defer func() {
		if r := recover(); r != nil {
			page, err = Page{}, fmt.Errorf("failed to read page %d: %v", n, r)
		}
	}()

	p := d.pdf.Page(n)
	if p.V.IsNull() {
		return Page{Number: n, Items: []model.Item{}}, nil
	}

	content := p.Content()
	return Page{Number: n, Items: MergeGlyphs(GlyphsFromText(content.Text), d.config)}, nil
}

// Pages returns every page of the document. The first page that fails to
// decode stops the walk.
func (d *Document) Pages() ([]Page, error) {
	pages := make([]Page, 0, d.NumPages())
	for n := 1; n <= d.NumPages(); n++ {
		page, err := d.Page(n)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}
