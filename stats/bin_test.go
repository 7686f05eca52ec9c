// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"testing"
)

func TestBinBounds(t *testing.T) {
	check := func(got, want []float64) {
		t.Helper()
		if len(got) != len(want) {
			t.Errorf("want bounds %v, got %v", want, got)
			return
		}
		for i := range want {
			if !aeq(want[i], got[i]) {
				t.Errorf("want bounds %v, got %v", want, got)
				return
			}
		}
	}

	// Empty sample: one bin at 0, with or without the maximum.
	check(New(nil).BinBounds(0, false), []float64{0})
	check(New(nil).BinBounds(0, true), []float64{0})

	// Fewer than four points: one bin per point unless told
	// otherwise.
	check(New([]float64{10, 20}).BinBounds(0, false), []float64{10, 15})
	check(New([]float64{10, 20}).BinBounds(0, true), []float64{10, 15, 20})
	check(New([]float64{10, 20}).BinBounds(4, false), []float64{10, 12.5, 15, 17.5})

	// Explicit count.
	check(New(seq(10)).BinBounds(5, false), []float64{0, 1.8, 3.6, 5.4, 7.2})

	// Automatic width from the inter-quartile range:
	// dx = 2*4.5/cbrt(10).
	check(New(seq(10)).BinBounds(0, false), []float64{0, 4.17743, 8.35486})
	check(New(seq(10)).BinBounds(0, true), []float64{0, 4.17743, 8.35486, 9})

	// A zero IQR gives no usable width: single bin.
	check(New([]float64{5, 5, 5, 5, 7}).BinBounds(0, false), []float64{5})
	check(New([]float64{5, 5, 5, 5, 7}).BinBounds(0, true), []float64{5, 7})

	// A nonsense bin count produces no bounds.
	check(New([]float64{1, 2, 3, 4, 5}).BinBounds(-2, false), nil)
}

func TestHistogramCounts(t *testing.T) {
	check := func(got, want []BinCount) {
		t.Helper()
		if len(got) != len(want) {
			t.Errorf("want counts %v, got %v", want, got)
			return
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("want counts %v, got %v", want, got)
				return
			}
		}
	}

	// Automatic binning, boundaries floored to one digit.
	s := New(seq(10))
	got := s.HistogramCounts(nil)
	check(got, []BinCount{{0, 5}, {4.1, 4}, {8.3, 1}})
	total := 0
	for _, bc := range got {
		total += bc.Count
	}
	if total != s.Count() {
		t.Errorf("want %d points binned, got %d", s.Count(), total)
	}

	// Fixed bin count.
	check(New(seq(8)).HistogramCounts(&Histogram{Count: 2}),
		[]BinCount{{0, 4}, {3.5, 4}})

	// Explicit bounds; the minimum is prepended when it falls
	// below the first bound.
	check(New([]float64{1, 5, 9}).HistogramCounts(&Histogram{Bounds: []float64{4, 8}}),
		[]BinCount{{1, 1}, {4, 1}, {8, 1}})
	check(New([]float64{5, 9}).HistogramCounts(&Histogram{Bounds: []float64{5, 8}}),
		[]BinCount{{5, 1}, {8, 1}})

	// Bounds collapsing to one digit merge, and empty bins are
	// reported.
	check(New([]float64{0.15, 0.25}).HistogramCounts(&Histogram{Bounds: []float64{0.12, 0.17, 0.13}}),
		[]BinCount{{0.1, 2}})
	check(New([]float64{0.15, 0.25}).HistogramCounts(&Histogram{Bounds: []float64{0.12, 0.17, 0.13}, Digits: 2}),
		[]BinCount{{0.12, 0}, {0.13, 1}, {0.17, 1}})

	// Negative Digits floors bounds to whole numbers.
	check(New([]float64{2.6, 3.4}).HistogramCounts(&Histogram{Bounds: []float64{2.5, 3.2}, Digits: -1}),
		[]BinCount{{2, 1}, {3, 1}})

	// No bounds, nothing counted.
	check(New(seq(5)).HistogramCounts(&Histogram{Count: -2}), nil)

	// Empty sample: single 0 bound, zero count.
	check(New(nil).HistogramCounts(nil), []BinCount{{0, 0}})
}

func BenchmarkHistogramCounts(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = float64(i * i % 997)
		}
		s := New(xs)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s.HistogramCounts(nil)
			}
		})
	}
}
