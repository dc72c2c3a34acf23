// Package schedparse reconstructs college timetables from PDF sheets.
//
// Two kinds of sheet are understood: the daily replacements sheet, a table
// of group, pair, original subject, change and room; and a group's weekly
// timetable, a grid of weekdays by five pair slots for each of two weeks.
//
// Replacements for one group:
//
//	pages, warnings, err := schedparse.Open("zamena.pdf").Replacements("PM21")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", schedparse.FormatWarnings(warnings))
//	}
//
// The weekly timetable of selected pages:
//
//	weeks, _, err := schedparse.FromBytes(data).
//	    Pages(1, 2).
//	    Schedule()
//
// The table builders in the replacements and schedule packages can be used
// directly on items from any source.
package schedparse

import (
	"github.com/ttgt/schedparse/reader"
)

// Open returns an Extractor that reads the PDF file at filename.
//
// Example:
//
//	pages, warnings, err := schedparse.Open("zamena.pdf").Replacements("ПМ-2-1")
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes returns an Extractor over PDF data already in memory.
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		kind:    sourcePDF,
		options: defaultOptions(),
	}
}

// FromImage returns an Extractor over a scanned page image. Recognition
// requires a build with the "ocr" tag; otherwise terminal operations fail
// with ocr.ErrOCRNotEnabled.
func FromImage(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		kind:    sourceImage,
		options: defaultOptions(),
	}
}

// FromPages returns an Extractor over pages decoded elsewhere.
func FromPages(pages []reader.Page) *Extractor {
	return &Extractor{
		pages:   pages,
		loaded:  true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to a terminal operation and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	weeks := schedparse.MustResult(schedparse.Open("PM21.pdf").Schedule())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
