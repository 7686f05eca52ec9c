// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// A Histogram specifies how a sample is split into bins and how the
// result is laid out as text. The zero value (or a nil *Histogram)
// selects automatic bin sizing, boundaries floored to one decimal
// digit, and the terminal width.
type Histogram struct {
	// Count is the number of fixed-width bins. If Count is 0 the
	// bin width is derived from the inter-quartile range in the
	// style of the Freedman-Diaconis rule.
	Count int

	// Bounds, if non-empty, gives the lower bin boundaries
	// directly and overrides Count. If the sample minimum falls
	// below the first boundary, the minimum is prepended as an
	// extra boundary so no data point is lost off the low end.
	Bounds []float64

	// Digits is the number of decimal digits boundaries are
	// floored to before counting. Flooring only ever moves a
	// boundary down, so a value never crosses below its bin. 0
	// means the default of one digit; negative values floor to
	// whole numbers.
	Digits int

	// Width is the total character width FormatHistogram lays
	// lines out in. 0 means the COLUMNS environment variable or
	// the terminal width, falling back to 80.
	Width int

	// FormatBin renders a bin boundary as its row label. If nil,
	// boundaries are formatted like 2.5 and 4.0.
	FormatBin func(float64) string
}

// A BinCount pairs a bin's lower boundary with the number of data
// points falling in the bin.
type BinCount struct {
	Bound float64
	Count int
}

// BinBounds returns the lower bin boundaries for splitting the sample
// into count fixed-width bins. If count is 0 and the sample has at
// least four points, the bin width is instead derived from the
// inter-quartile range, which adapts bin resolution to the sample's
// spread. If withMax is set, the sample maximum is appended as a
// final closing boundary. An empty sample gets the single boundary 0.
func (s *Sample) BinBounds(count int, withMax bool) []float64 {
	if len(s.xs) == 0 {
		return []float64{0}
	}

	min, max := s.Min(), s.Max()
	var bounds []float64
	if n := len(s.xs); count == 0 && n >= 4 {
		q1, _ := s.Quantile(0.25)
		q3, _ := s.Quantile(0.75)
		dx := 2 * (q3 - q1) / math.Cbrt(float64(n))
		if dx <= 0 {
			// The middle half of the data is a single
			// value, so no usable width comes out of the
			// IQR. Lump everything into one bin.
			bounds = []float64{min}
		} else {
			nbins := int(math.Ceil((max - min) / dx))
			if nbins < 1 {
				nbins = 1
			}
			for i := 0; i <= nbins; i++ {
				if b := min + dx*float64(i); b < max {
					bounds = append(bounds, b)
				}
			}
		}
	} else {
		if count == 0 {
			count = n
		}
		dx := (max - min) / float64(count)
		for i := 0; i < count; i++ {
			bounds = append(bounds, min+dx*float64(i))
		}
	}

	if withMax {
		bounds = append(bounds, max)
	}
	return bounds
}

// HistogramCounts splits the sample into bins and returns one
// (boundary, count) pair per bin in ascending boundary order,
// including empty bins. Boundaries come from o.Bounds or BinBounds
// per the Histogram documentation, and are floored to o.Digits
// decimal digits and deduplicated before counting. Each data point
// counts toward the rightmost boundary not exceeding it; points below
// every boundary are dropped.
func (s *Sample) HistogramCounts(o *Histogram) []BinCount {
	var opt Histogram
	if o != nil {
		opt = *o
	}
	digits := opt.Digits
	if digits == 0 {
		digits = 1
	} else if digits < 0 {
		digits = 0
	}

	var bounds []float64
	if len(opt.Bounds) > 0 {
		bounds = append([]float64(nil), opt.Bounds...)
		if min := s.Min(); min < bounds[0] {
			bounds = append([]float64{min}, bounds...)
		}
	} else {
		bounds = s.BinBounds(opt.Count, false)
	}

	round := math.Pow(10, float64(digits))
	for i, b := range bounds {
		bounds[i] = math.Floor(b*round) / round
	}
	sort.Float64s(bounds)
	bounds = dedup(bounds)

	counts := make([]int, len(bounds))
	for _, x := range s.xs {
		// Rightmost boundary not exceeding x.
		i := sort.Search(len(bounds), func(j int) bool {
			return bounds[j] > x
		}) - 1
		if i >= 0 {
			counts[i]++
		}
	}

	out := make([]BinCount, len(bounds))
	for i, b := range bounds {
		out[i] = BinCount{b, counts[i]}
	}
	return out
}

// dedup removes adjacent duplicates from sorted xs in place.
func dedup(xs []float64) []float64 {
	out := xs[:0]
	for _, x := range xs {
		if len(out) == 0 || out[len(out)-1] != x {
			out = append(out, x)
		}
	}
	return out
}
