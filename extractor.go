package schedparse

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/ttgt/schedparse/model"
	"github.com/ttgt/schedparse/ocr"
	"github.com/ttgt/schedparse/reader"
	"github.com/ttgt/schedparse/replacements"
	"github.com/ttgt/schedparse/schedule"
)

type sourceKind int

const (
	sourcePDF sourceKind = iota
	sourceImage
)

// Extractor provides a fluent interface for extracting timetables.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	data     []byte
	kind     sourceKind

	// Decoded content; pages is used when loaded is set, doc otherwise
	doc    *reader.Document
	pages  []reader.Page
	loaded bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		kind:     e.kind,
		doc:      e.doc,
		pages:    e.pages,
		loaded:   e.loaded,
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

// ensureSource reads and decodes the source if not already done.
func (e *Extractor) ensureSource() error {
	if e.loaded || e.doc != nil {
		return nil
	}

	if e.data == nil {
		if e.filename == "" {
			return fmt.Errorf("no source specified")
		}
		data, err := os.ReadFile(e.filename)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		e.data = data
		if !bytes.HasPrefix(data, []byte("%PDF")) && ocr.IsImage(data) {
			e.kind = sourceImage
		}
	}

	switch e.kind {
	case sourceImage:
		client, err := ocr.NewWithConfig(e.options.ocr)
		if err != nil {
			return err
		}
		defer client.Close()

		items, err := client.Recognize(e.data)
		if err != nil {
			return fmt.Errorf("failed to recognize image: %w", err)
		}
		e.pages = []reader.Page{{Number: 1, Items: items}}
		e.loaded = true
		return nil

	default:
		doc, err := reader.DecodeWithConfig(e.data, e.options.merge)
		if err != nil {
			return fmt.Errorf("failed to open PDF: %w", err)
		}
		e.doc = doc
		return nil
	}
}

// Close releases the decoded document.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	e.doc = nil
	if e.filename != "" {
		e.data = nil
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	pages, _, err := schedparse.Open("zamena.pdf").Pages(1, 3).Replacements("PM21")
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// At fixes the time used for header timestamps when a sheet prints no date.
func (e *Extractor) At(t time.Time) *Extractor {
	newExt := e.clone()
	newExt.options.setNow(func() time.Time { return t })
	return newExt
}

// WithReplacementsConfig replaces the configuration of the replacements
// table builder.
func (e *Extractor) WithReplacementsConfig(config replacements.Config) *Extractor {
	newExt := e.clone()
	newExt.options.replacements = config
	return newExt
}

// WithScheduleConfig replaces the configuration of the weekly timetable
// builder.
func (e *Extractor) WithScheduleConfig(config schedule.Config) *Extractor {
	newExt := e.clone()
	newExt.options.schedule = config
	return newExt
}

// WithMergeConfig replaces the glyph merging configuration of the PDF decoder.
func (e *Extractor) WithMergeConfig(config reader.MergeConfig) *Extractor {
	newExt := e.clone()
	newExt.options.merge = config
	return newExt
}

// WithOCRConfig replaces the recognition configuration for image sources.
func (e *Extractor) WithOCRConfig(config ocr.Config) *Extractor {
	newExt := e.clone()
	newExt.options.ocr = config
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the number of pages in the source.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureSource(); err != nil {
		return 0, err
	}
	return e.pageCount(), nil
}

// Replacements returns the replacement rows of group, one entry per page that
// lists the group. The group may be given as printed ("ПМ-2-1") or in Latin
// transliteration ("PM21").
//
// A group that appears on no page is not an error: the result is empty. A
// page that fails to decode or parse is skipped with a WarningPageFailed.
func (e *Extractor) Replacements(group string) ([]model.ReplacementPage, []Warning, error) {
	result := []model.ReplacementPage{}
	if e.err != nil {
		return result, nil, e.err
	}
	warnings := append([]Warning(nil), e.warnings...)

	target, err := replacements.CanonicalGroup(group)
	if err != nil {
		warnings = append(warnings, Warning{Kind: WarningInvalidGroup, Message: err.Error()})
		return result, warnings, nil
	}

	if err := e.ensureSource(); err != nil {
		return result, warnings, err
	}
	defer e.Close()

	nums, err := e.resolvePages()
	if err != nil {
		return result, warnings, err
	}

	builder := replacements.NewBuilderWithConfig(e.options.replacements)
	e.eachPage(nums, &warnings, func(p reader.Page) {
		rp := builder.Parse(p.Items, target)
		if len(rp.Rows) == 0 {
			return
		}
		rp.Page = p.Number
		if !rp.Header.IsZero() && !rp.Header.HasDate() {
			warnings = append(warnings, Warning{
				Kind:    WarningHeaderDateMissing,
				Page:    p.Number,
				Message: "header has no date, timestamp is the extraction time",
			})
		}
		result = append(result, rp)
	})

	return result, warnings, nil
}

// Schedule returns the weekly timetable of every selected page, one slice of
// weeks per page in page order. Pages without a week marker contribute an
// empty slice.
func (e *Extractor) Schedule() ([][]model.ScheduleWeek, []Warning, error) {
	result := [][]model.ScheduleWeek{}
	if e.err != nil {
		return result, nil, e.err
	}
	warnings := append([]Warning(nil), e.warnings...)

	if err := e.ensureSource(); err != nil {
		return result, warnings, err
	}
	defer e.Close()

	nums, err := e.resolvePages()
	if err != nil {
		return result, warnings, err
	}

	builder := schedule.NewBuilderWithConfig(e.options.schedule)
	e.eachPage(nums, &warnings, func(p reader.Page) {
		result = append(result, builder.Parse(p.Items))
	})

	return result, warnings, nil
}

// ============================================================================
// Page handling
// ============================================================================

func (e *Extractor) pageCount() int {
	if e.loaded {
		return len(e.pages)
	}
	return e.doc.NumPages()
}

// resolvePages returns the 1-based page numbers to process.
func (e *Extractor) resolvePages() ([]int, error) {
	count := e.pageCount()
	if e.options.pages == nil {
		nums := make([]int, count)
		for i := range nums {
			nums[i] = i + 1
		}
		return nums, nil
	}

	seen := make(map[int]bool, len(e.options.pages))
	nums := make([]int, 0, len(e.options.pages))
	for _, n := range e.options.pages {
		if n < 1 || n > count {
			return nil, fmt.Errorf("page %d out of range [1, %d]", n, count)
		}
		if !seen[n] {
			seen[n] = true
			nums = append(nums, n)
		}
	}
	return nums, nil
}

func (e *Extractor) page(n int) (reader.Page, error) {
	if e.loaded {
		p := e.pages[n-1]
		if p.Number == 0 {
			p.Number = n
		}
		return p, nil
	}
	return e.doc.Page(n)
}

// eachPage runs fn on every page in nums. A page that fails to decode, or
// whose processing panics, is recorded as a warning and skipped.
func (e *Extractor) eachPage(nums []int, warnings *[]Warning, fn func(reader.Page)) {
	for _, n := range nums {
		p, err := e.page(n)
		if err != nil {
			*warnings = append(*warnings, Warning{Kind: WarningPageFailed, Page: n, Message: err.Error()})
			continue
		}
		if err := runPage(p, fn); err != nil {
			*warnings = append(*warnings, Warning{Kind: WarningPageFailed, Page: n, Message: err.Error()})
		}
	}
}

func runPage(p reader.Page, fn func(reader.Page)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse page: %v", r)
		}
	}()
	fn(p)
	return nil
}
