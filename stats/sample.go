// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A Sample is a fixed collection of data points together with a set
// of descriptive statistics over them. Each statistic is computed the
// first time it is read and memoized, so repeated reads are cheap and
// statistics that are never read cost nothing. The cache survives
// until ClearCache or an operation documented to discard it
// (TrimRelative); mutating the data under a live cache leaves stale
// values behind.
//
// Statistics that are undefined on an empty sample read as a
// configurable default value (see WithDefault) and are never cached
// in that case.
//
// A Sample is not safe for concurrent use. Even read-only accessors
// mutate the cache, and the first sorted-order statistic on a sample
// that owns its data reorders it in place.
type Sample struct {
	// PearsonPrecision is the number of decimal digits the
	// Pearson classification rounds its discriminants to before
	// comparing them, so small departures from an exact family
	// condition still classify as that family. It may be
	// negative to round to tens, hundreds, and so on.
	//
	// PearsonPrecision is read when PearsonType first classifies
	// the sample. Changing it later has no effect on the cached
	// classification until ClearCache.
	PearsonPrecision int

	xs     []float64
	def    float64
	copied bool // xs is owned by this Sample
	sorted bool // xs is known to be in ascending order

	cache [numStats]memo
	ptype PearsonType
	pok   bool
}

// A memo is one cache slot for a lazily computed statistic.
type memo struct {
	val float64
	ok  bool
}

// statKind enumerates the cached float-valued statistics of a Sample.
type statKind int

const (
	statCount statKind = iota
	statMean
	statMin
	statMax
	statMedian
	statIQR
	statTrimean
	statVariance
	statStdDev
	statMedianAbsDev
	statRelStdDev
	statSkewness
	statKurtosis
	numStats
)

// An Option configures a Sample at construction time.
type Option func(*Sample)

// WithDefault sets the value returned by statistics that are
// undefined on an empty sample. It defaults to 0; NaN is a common
// alternative.
func WithDefault(v float64) Option {
	return func(s *Sample) { s.def = v }
}

// WithNoCopy makes the Sample alias the caller's slice instead of
// copying it. The caller must not mutate the slice while the Sample
// is in use. In exchange, sorted-order statistics on an aliased
// sample work on transient copies, so the caller's slice is never
// reordered.
func WithNoCopy() Option {
	return func(s *Sample) { s.copied = false }
}

// WithSorted asserts that the data is already in ascending order.
// Minimum, maximum, and sorted-order statistics then skip sorting.
// The assertion is trusted; statistics of an unsorted sample
// constructed with WithSorted are wrong.
func WithSorted() Option {
	return func(s *Sample) { s.sorted = true }
}

// New returns a Sample over xs. By default the data is copied, is not
// assumed sorted, and statistics of an empty sample read as 0. See
// WithNoCopy, WithSorted, and WithDefault.
func New(xs []float64, opts ...Option) *Sample {
	s := &Sample{xs: xs, copied: true}
	for _, o := range opts {
		o(s)
	}
	if s.copied {
		s.xs = append([]float64(nil), xs...)
	}
	return s
}

// lazy returns the cached value of k, computing it with f and filling
// the slot on first read. On an empty sample it returns the default
// value without calling f or touching the cache.
func (s *Sample) lazy(k statKind, f func() float64) float64 {
	if len(s.xs) == 0 {
		return s.def
	}
	if c := &s.cache[k]; c.ok {
		return c.val
	}
	v := f()
	s.cache[k] = memo{v, true}
	return v
}

// ClearCache discards every memoized statistic, including the Pearson
// classification. Statistics read afterwards are recomputed from the
// current data. Clearing an already-clear cache is a no-op.
func (s *Sample) ClearCache() {
	for k := statKind(0); k < numStats; k++ {
		s.cache[k] = memo{}
	}
	s.ptype, s.pok = 0, false
}

// Values returns the sample's backing slice. The caller must not
// mutate it without calling ClearCache, and for a copying sample it
// may have been reordered by a sorted-order statistic.
func (s *Sample) Values() []float64 {
	return s.xs
}

// sortedData returns the data in ascending order. A sample that owns
// its data is sorted in place on first use and flagged so later calls
// are free. A sample aliasing caller data sorts a fresh copy on every
// call instead.
func (s *Sample) sortedData() []float64 {
	if !s.copied {
		if s.sorted {
			return s.xs
		}
		xs := append([]float64(nil), s.xs...)
		sort.Float64s(xs)
		return xs
	}
	if !s.sorted {
		s.sorted = true
		sort.Float64s(s.xs)
	}
	return s.xs
}

// Count returns the number of data points. An empty sample counts as
// 0 regardless of the configured default value.
func (s *Sample) Count() int {
	if len(s.xs) == 0 {
		return 0
	}
	return int(s.lazy(statCount, func() float64 {
		return float64(len(s.xs))
	}))
}

// Min returns the smallest value in the sample.
func (s *Sample) Min() float64 {
	return s.lazy(statMin, func() float64 {
		if s.sorted {
			return s.xs[0]
		}
		return floats.Min(s.xs)
	})
}

// Max returns the largest value in the sample.
func (s *Sample) Max() float64 {
	return s.lazy(statMax, func() float64 {
		if s.sorted {
			return s.xs[len(s.xs)-1]
		}
		return floats.Max(s.xs)
	})
}

// Mean returns the arithmetic mean.
func (s *Sample) Mean() float64 {
	return s.lazy(statMean, func() float64 {
		return floats.Sum(s.xs) / float64(len(s.xs))
	})
}

// Median returns the middle value of the sample, interpolating
// halfway between the two middle values when the sample has an even
// number of points. It is equivalent to Quantile(0.5).
func (s *Sample) Median() float64 {
	return s.lazy(statMedian, func() float64 {
		return quantile(s.sortedData(), 0.5)
	})
}

// IQR returns the inter-quartile range, Quantile(0.75) minus
// Quantile(0.25). Like the median, it is insensitive to outliers.
func (s *Sample) IQR() float64 {
	return s.lazy(statIQR, func() float64 {
		q1, _ := s.Quantile(0.25)
		q3, _ := s.Quantile(0.75)
		return q3 - q1
	})
}

// Trimean returns Tukey's trimean, the weighted average of the median
// and the two other quartiles: (Q1 + 2*Q2 + Q3) / 4. It captures
// center and tails while remaining robust to outliers.
func (s *Sample) Trimean() float64 {
	return s.lazy(statTrimean, func() float64 {
		xs := s.sortedData()
		return (quantile(xs, 0.25) + 2*quantile(xs, 0.5) + quantile(xs, 0.75)) / 4
	})
}

// Variance returns the population variance, the mean of the squared
// deviations from the sample mean.
func (s *Sample) Variance() float64 {
	return s.lazy(statVariance, func() float64 {
		return floats.Sum(s.powDiffs(2)) / float64(len(s.xs))
	})
}

// StdDev returns the population standard deviation, the square root
// of Variance.
func (s *Sample) StdDev() float64 {
	return s.lazy(statStdDev, func() float64 {
		return math.Sqrt(s.Variance())
	})
}

// MedianAbsDev returns the median absolute deviation, the median of
// the absolute deviations from the median. It is a robust measure of
// dispersion, useful where outliers would dominate StdDev. The inner
// median is computed from the data each time, not taken from the
// Median cache slot.
func (s *Sample) MedianAbsDev() float64 {
	return s.lazy(statMedianAbsDev, func() float64 {
		xs := s.sortedData()
		med := quantile(xs, 0.5)
		devs := make([]float64, len(xs))
		for i, x := range xs {
			devs[i] = math.Abs(med - x)
		}
		sort.Float64s(devs)
		return quantile(devs, 0.5)
	})
}

// RelStdDev returns the standard deviation as a fraction of the
// magnitude of the mean (the coefficient of variation). If the mean
// is 0 it returns the sample's default value.
func (s *Sample) RelStdDev() float64 {
	return s.lazy(statRelStdDev, func() float64 {
		if mean := math.Abs(s.Mean()); mean != 0 {
			return s.StdDev() / mean
		}
		return s.def
	})
}

// Skewness returns the sample skewness, the standardized third
// moment. Symmetric data has skewness near 0; positive values mean a
// longer or fatter right tail. A sample with fewer than two points or
// zero standard deviation has no defined skewness and reads as the
// sample's default value.
func (s *Sample) Skewness() float64 {
	return s.lazy(statSkewness, func() float64 {
		sd := s.StdDev()
		if len(s.xs) > 1 && sd > 0 {
			return floats.Sum(s.powDiffs(3)) /
				(float64(len(s.xs)-1) * math.Pow(sd, 3))
		}
		return s.def
	})
}

// Kurtosis returns the sample kurtosis, the standardized fourth
// moment. This is the classic definition under which the normal
// distribution has kurtosis 3, not excess kurtosis. A sample with
// fewer than two points or zero standard deviation reads as 0.
func (s *Sample) Kurtosis() float64 {
	return s.lazy(statKurtosis, func() float64 {
		sd := s.StdDev()
		if len(s.xs) > 1 && sd > 0 {
			return floats.Sum(s.powDiffs(4)) /
				(float64(len(s.xs)-1) * math.Pow(sd, 4))
		}
		return 0.0
	})
}

// powDiffs returns the deviations from the mean, each raised to
// power.
func (s *Sample) powDiffs(power float64) []float64 {
	m := s.Mean()
	diffs := make([]float64, len(s.xs))
	for i, x := range s.xs {
		diffs[i] = math.Pow(x-m, power)
	}
	return diffs
}

// ZScore returns the number of standard deviations v lies above the
// sample mean. If the sample has zero standard deviation the z-score
// is 0 at the mean, +Inf above it, and -Inf below it.
func (s *Sample) ZScore(v float64) float64 {
	mean := s.Mean()
	if s.StdDev() == 0 {
		switch {
		case v == mean:
			return 0
		case v > mean:
			return inf
		case v < mean:
			return -inf
		}
	}
	return (v - mean) / s.StdDev()
}

// ErrTrimAmount is returned when a trim fraction lies outside the
// half-open interval [0, 0.5).
var ErrTrimAmount = errors.New("trim amount must be in [0, 0.5)")

// TrimRelative discards the smallest and largest amount fraction of
// the data points and replaces the data with the sorted middle,
// discarding all cached statistics. The number of points trimmed from
// each tail is floor(count*amount), so an amount too small to remove
// at least one point per tail leaves the sample unchanged. A typical
// amount is 0.15. Amounts outside [0, 0.5) return ErrTrimAmount.
func (s *Sample) TrimRelative(amount float64) error {
	if !(0 <= amount && amount < 0.5) {
		return ErrTrimAmount
	}
	trim := int(float64(len(s.xs)) * amount)
	if trim == 0 {
		return nil
	}
	xs := append([]float64(nil), s.xs...)
	sort.Float64s(xs)
	s.xs = xs[trim : len(xs)-trim]
	s.ClearCache()
	return nil
}
