// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
)

// ErrQuantileRange is returned when a requested quantile position
// lies outside the closed interval [0, 1].
var ErrQuantileRange = errors.New("quantile must be in [0, 1]")

// quantile returns the value at fractional position q in xs, which
// must be non-empty and sorted in ascending order, with 0 <= q <= 1.
// The position q*(len(xs)-1) is linearly interpolated between the two
// neighboring elements when it does not land on one exactly. This is
// the Hyndman and Fan R-7 definition, the default in most statistics
// environments.
func quantile(xs []float64, q float64) float64 {
	idx := q * float64(len(xs)-1)
	lo, hi := math.Floor(idx), math.Ceil(idx)
	if lo == hi {
		return xs[int(idx)]
	}
	return xs[int(lo)]*(hi-idx) + xs[int(hi)]*(idx-lo)
}

// Quantile returns the value at fractional position q in the sorted
// sample, where q is in [0, 1]. Quantile(0) is the minimum,
// Quantile(1) the maximum, and Quantile(0.5) the median. Positions
// between two elements interpolate linearly between them.
//
// If q is outside [0, 1] (or NaN), Quantile returns ErrQuantileRange.
// On an empty sample it returns the sample's default value.
func (s *Sample) Quantile(q float64) (float64, error) {
	if !(0 <= q && q <= 1) {
		return 0, ErrQuantileRange
	}
	if len(s.xs) == 0 {
		return s.def, nil
	}
	return quantile(s.sortedData(), q), nil
}
