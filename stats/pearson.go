// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/floats/scalar"

// A PearsonType identifies a family in the Pearson distribution
// system. The constant values are the conventional Pearson type
// numbers.
type PearsonType int

//go:generate stringer -type=PearsonType

const (
	// PearsonNormal is the normal distribution.
	PearsonNormal PearsonType = 0
	// PearsonBeta is the asymmetric beta family (Pearson type I).
	PearsonBeta PearsonType = 1
	// PearsonSymBeta is the symmetric beta family (type II).
	PearsonSymBeta PearsonType = 2
	// PearsonGamma is the gamma family (type III).
	PearsonGamma PearsonType = 3
	// PearsonStudentT is Student's t family (type VII).
	PearsonStudentT PearsonType = 7
)

// PearsonType classifies the sample within the Pearson distribution
// system from its skewness and kurtosis. The criterion discriminants
// are rounded to PearsonPrecision decimal digits before comparison,
// so a nonzero precision tolerates small departures from an exact
// family condition. The classification is cached; to reclassify after
// changing PearsonPrecision, call ClearCache.
//
// An empty sample classifies as PearsonNormal. The heavy-tailed
// asymmetric families (Pearson types IV through VI) are not
// implemented; PearsonType panics if the moments land in their
// region, or if a moment is NaN.
func (s *Sample) PearsonType() PearsonType {
	if len(s.xs) == 0 {
		return PearsonNormal
	}
	if s.pok {
		return s.ptype
	}
	t := s.classify()
	s.ptype, s.pok = t, true
	return t
}

// classify implements the classification criterion of the Pearson
// system. beta1 and beta2 are the conventional names for the squared
// skewness and the kurtosis; c0, c1, c2 are the coefficients of the
// quadratic in the system's defining differential equation.
func (s *Sample) classify() PearsonType {
	skew := s.Skewness()
	beta1 := skew * skew
	beta2 := s.Kurtosis()

	c0 := 4*beta2 - 3*beta1
	c1 := skew * (beta2 + 3)
	c2 := 2*beta2 - 3*beta1 - 6

	prec := s.PearsonPrecision
	switch {
	case scalar.Round(c1, prec) == 0:
		// Symmetric families.
		if scalar.Round(beta2, prec) == 3 {
			return PearsonNormal
		}
		if beta2 < 3 {
			return PearsonSymBeta
		}
		if beta2 > 3 {
			return PearsonStudentT
		}
	case scalar.Round(c2, prec) == 0:
		return PearsonGamma
	default:
		if k := c1 * c1 / (4 * c0 * c2); k < 0 {
			return PearsonBeta
		}
	}
	panic("stats: Pearson criterion matched no family")
}
