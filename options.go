package schedparse

import (
	"time"

	"github.com/ttgt/schedparse/ocr"
	"github.com/ttgt/schedparse/reader"
	"github.com/ttgt/schedparse/replacements"
	"github.com/ttgt/schedparse/schedule"
)

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	// Page selection (1-indexed, nil means all pages)
	pages []int

	merge        reader.MergeConfig
	replacements replacements.Config
	schedule     schedule.Config
	ocr          ocr.Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		merge:        reader.DefaultMergeConfig(),
		replacements: replacements.DefaultConfig(),
		schedule:     schedule.DefaultConfig(),
		ocr:          ocr.DefaultConfig(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	return newOpts
}

// setNow fixes the clock used for header timestamps.
func (o *ExtractOptions) setNow(now func() time.Time) {
	o.replacements.Header.Now = now
}
