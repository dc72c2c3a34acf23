// Command schedparse parses a local replacements sheet or timetable and
// prints the result as JSON.
//
// Usage:
//
//	schedparse -mode replacements -group PM21 zamena.pdf
//	schedparse -mode schedule PM21.pdf
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ttgt/schedparse"
)

func main() {
	mode := flag.String("mode", "replacements", "sheet kind: replacements or schedule")
	group := flag.String("group", "", "group code, e.g. PM21 or ПМ-2-1 (replacements mode)")
	pages := flag.String("pages", "", "comma-separated 1-based page numbers (default all)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.pdf\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	ext := schedparse.Open(flag.Arg(0))
	if *pages != "" {
		nums, err := parsePages(*pages)
		if err != nil {
			logger.Error("invalid -pages", "error", err)
			os.Exit(2)
		}
		ext = ext.Pages(nums...)
	}

	var (
		out      any
		warnings []schedparse.Warning
		err      error
	)
	switch *mode {
	case "replacements":
		if strings.TrimSpace(*group) == "" {
			logger.Error("-group is required in replacements mode")
			os.Exit(2)
		}
		var result any
		result, warnings, err = ext.Replacements(*group)
		out = map[string]any{"success": err == nil, "replacements": result}
	case "schedule":
		var result any
		result, warnings, err = ext.Schedule()
		out = map[string]any{"success": err == nil, "structuredData": result}
	default:
		logger.Error("unknown mode", "mode", *mode)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("parsing", "file", flag.Arg(0), "error", err)
		os.Exit(1)
	}
	if len(warnings) > 0 {
		logger.Warn("warnings", "warnings", schedparse.FormatWarnings(warnings))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		logger.Error("encoding output", "error", err)
		os.Exit(1)
	}
}

func parsePages(s string) ([]int, error) {
	var nums []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", part, err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
