// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A SummaryItem is one labeled statistic in a Summary.
type SummaryItem struct {
	Label string
	Value float64

	// Exact reports whether Value was read directly from the data
	// (the minimum, the maximum, or a quantile landing exactly on
	// an element) rather than computed from it. Summary.String
	// prints exact integral values without a decimal point.
	Exact bool
}

// A Summary is the standard descriptive summary of a sample: count,
// mean, standard deviation, median absolute deviation, minimum, a set
// of quantiles, and maximum, in that order.
type Summary struct {
	items []SummaryItem
}

// Describe summarizes the sample. quantiles gives the quantile
// positions to include between the minimum and maximum; if none are
// given, the quartiles 0.25, 0.5, and 0.75 are reported. A position
// outside [0, 1] returns ErrQuantileRange.
func (s *Sample) Describe(quantiles ...float64) (*Summary, error) {
	if len(quantiles) == 0 {
		quantiles = []float64{0.25, 0.5, 0.75}
	}

	n := len(s.xs)
	items := []SummaryItem{
		{Label: "count", Value: float64(s.Count())},
		{Label: "mean", Value: s.Mean()},
		{Label: "std_dev", Value: s.StdDev()},
		{Label: "mad", Value: s.MedianAbsDev()},
		{Label: "min", Value: s.Min(), Exact: n > 0},
	}
	for _, q := range quantiles {
		v, err := s.Quantile(q)
		if err != nil {
			return nil, err
		}
		idx := q * float64(n-1)
		items = append(items, SummaryItem{
			Label: strconv.FormatFloat(q, 'g', -1, 64),
			Value: v,
			Exact: n > 0 && idx == math.Floor(idx),
		})
	}
	items = append(items, SummaryItem{Label: "max", Value: s.Max(), Exact: n > 0})
	return &Summary{items}, nil
}

// Items returns the summary's statistics in report order. The caller
// must not modify the returned slice.
func (sm *Summary) Items() []SummaryItem {
	return sm.items
}

// Map returns the summary as a label-to-value map, losing the report
// order. Quantile labels are the shortest decimal form of the
// position, like "0.25".
func (sm *Summary) Map() map[string]float64 {
	m := make(map[string]float64, len(sm.items))
	for _, it := range sm.items {
		m[it.Label] = it.Value
	}
	return m
}

// String renders the summary as a multi-line block with aligned
// labels, one statistic per line and no trailing newline:
//
//	count:    7
//	mean:     3.0
//	...
func (sm *Summary) String() string {
	lines := make([]string, len(sm.items))
	for i, it := range sm.items {
		lines[i] = fmt.Sprintf("%-10s%s", it.Label+":", itemString(it))
	}
	return strings.Join(lines, "\n")
}

// itemString formats one summary value: the count as a plain integer,
// exact integral values without a decimal point, and everything else
// in decimal form.
func itemString(it SummaryItem) string {
	if it.Label == "count" {
		return strconv.Itoa(int(it.Value))
	}
	if it.Exact && !math.IsInf(it.Value, 0) && it.Value == math.Trunc(it.Value) {
		return strconv.FormatFloat(it.Value, 'f', -1, 64)
	}
	return floatString(it.Value)
}
