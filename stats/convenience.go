// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// The package-level functions below compute a single statistic of xs
// without the caller managing a Sample. Each one wraps xs in a
// throwaway non-copying Sample, so xs is read but never modified, and
// nothing is retained. Statistics that are undefined on empty or
// degenerate input return 0; use a Sample with WithDefault to get a
// different sentinel.

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 { return New(xs, WithNoCopy()).Mean() }

// Median returns the middle value of xs, interpolating between the
// two middle values when len(xs) is even.
func Median(xs []float64) float64 { return New(xs, WithNoCopy()).Median() }

// IQR returns the inter-quartile range of xs.
func IQR(xs []float64) float64 { return New(xs, WithNoCopy()).IQR() }

// Trimean returns Tukey's trimean of xs.
func Trimean(xs []float64) float64 { return New(xs, WithNoCopy()).Trimean() }

// Variance returns the population variance of xs.
func Variance(xs []float64) float64 { return New(xs, WithNoCopy()).Variance() }

// StdDev returns the population standard deviation of xs.
func StdDev(xs []float64) float64 { return New(xs, WithNoCopy()).StdDev() }

// MedianAbsDev returns the median absolute deviation of xs.
func MedianAbsDev(xs []float64) float64 { return New(xs, WithNoCopy()).MedianAbsDev() }

// RelStdDev returns the standard deviation of xs relative to the
// magnitude of its mean.
func RelStdDev(xs []float64) float64 { return New(xs, WithNoCopy()).RelStdDev() }

// Skewness returns the sample skewness of xs.
func Skewness(xs []float64) float64 { return New(xs, WithNoCopy()).Skewness() }

// Kurtosis returns the sample kurtosis of xs.
func Kurtosis(xs []float64) float64 { return New(xs, WithNoCopy()).Kurtosis() }

// PearsonTypeOf classifies xs within the Pearson distribution system.
func PearsonTypeOf(xs []float64) PearsonType { return New(xs, WithNoCopy()).PearsonType() }

// Describe summarizes xs. See Sample.Describe.
func Describe(xs []float64, quantiles ...float64) (*Summary, error) {
	return New(xs, WithNoCopy()).Describe(quantiles...)
}
