// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) {
			continue
		}
		if !aeq(want, got) {
			t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
		}
	}
}

// seq returns the values 0, 1, ..., n-1.
func seq(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
