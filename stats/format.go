// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// FormatHistogram renders the sample's histogram as a text bar chart,
// one bin per line. Binning and layout follow o; a nil o selects
// automatic binning at the terminal width.
func (s *Sample) FormatHistogram(o *Histogram) string {
	counts := s.HistogramCounts(o)
	var width int
	var formatBin func(float64) string
	if o != nil {
		width, formatBin = o.Width, o.FormatBin
	}
	return FormatHistogramCounts(counts, width, formatBin)
}

// FormatHistogramCounts renders pre-computed (boundary, count) pairs
// as a text bar chart without touching a Sample. Each line shows the
// bin label and count right-justified, then a bar of '#' scaled so
// the largest count fills the space left in width; a count whose bar
// would otherwise be empty is drawn as '|' so the bin stays visible.
// A width of 0 means the COLUMNS environment
// variable or the terminal width, falling back to 80. formatBin
// labels the boundaries; nil formats them like 2.5 and 4.0.
//
// Lines are joined with '\n' with no trailing newline, and no counts
// render as "".
func FormatHistogramCounts(counts []BinCount, width int, formatBin func(float64) string) string {
	if len(counts) == 0 {
		return ""
	}
	if formatBin == nil {
		formatBin = floatString
	}
	if width == 0 {
		width = terminalWidth()
	}

	maxCount := 0
	for _, bc := range counts {
		if bc.Count > maxCount {
			maxCount = bc.Count
		}
	}
	countCols := len(strconv.Itoa(maxCount))

	labels := make([]string, len(counts))
	labelCols := 0
	for i, bc := range counts {
		labels[i] = formatBin(bc.Bound)
		if len(labels[i]) > labelCols {
			labelCols = len(labels[i])
		}
	}

	// Label, ": ", count, " ", and at least one bar character.
	barCols := width - (labelCols + 2 + countCols + 2)
	if barCols < 3 {
		barCols = 3
	}
	scale := 0.0
	if maxCount > 0 {
		scale = float64(barCols) / float64(maxCount)
	}

	lines := make([]string, len(counts))
	for i, bc := range counts {
		bar := strings.Repeat("#", int(math.Round(float64(bc.Count)*scale)))
		if bar == "" {
			bar = "|"
		}
		lines[i] = fmt.Sprintf("%*s: %*d %s", labelCols, labels[i], countCols, bc.Count, bar)
	}
	return strings.Join(lines, "\n")
}

// terminalWidth returns the width to lay histograms out in when the
// caller didn't give one: the COLUMNS environment variable if set,
// else the width of the terminal on stdout, else 80.
func terminalWidth() int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// floatString formats v in its shortest decimal form, keeping a
// trailing ".0" on integral values so they still read as
// floating-point quantities. It is the default formatter for
// histogram labels and summary values.
func floatString(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
