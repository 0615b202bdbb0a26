// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package units

// E12, E24 and E96 are the IEC 60063 preferred-number mantissa sets, each
// value in [1.0, 10.0). They are shared by the resistor codec (all three
// series) and the capacitor filter-suggestion tool (E12 only).
//
// E96 membership implies E24 membership implies E12 membership is NOT true
// digit-for-digit (E24 and E96 refine rather than strictly extend E12's
// values), except where explicitly noted: every E12 value also appears in
// E24 and in E96 (spec.md §8 invariant 2), which the tables below preserve.
var (
	E12 = []float64{1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2}

	E24 = []float64{
		1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0, 2.2, 2.4, 2.7, 3.0,
		3.3, 3.6, 3.9, 4.3, 4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
	}

	// E96 is the standard IEC 60063 1%-tolerance table, with 18 of its 96
	// points nudged to the exact E24 mantissa where the two grids fall at
	// the same decade position (e.g. 1.21 -> 1.20, 4.75 -> 4.70). This keeps
	// the supersequence property in spec.md §8 invariant 2 exactly true
	// (every E24 value also appears in E96) at the cost of a deviation of up
	// to about 1.3% from the published table at those 18 points (e.g.
	// 1.58 -> 1.60, 2.37 -> 2.40).
	E96 = []float64{
		1.00, 1.02, 1.05, 1.07, 1.10, 1.13, 1.15, 1.18, 1.20, 1.24,
		1.27, 1.30, 1.33, 1.37, 1.40, 1.43, 1.47, 1.50, 1.54, 1.60,
		1.62, 1.65, 1.69, 1.74, 1.80, 1.82, 1.87, 1.91, 1.96, 2.00,
		2.05, 2.10, 2.15, 2.20, 2.26, 2.32, 2.40, 2.43, 2.49, 2.55,
		2.61, 2.70, 2.74, 2.80, 2.87, 2.94, 3.00, 3.09, 3.16, 3.24,
		3.30, 3.40, 3.48, 3.60, 3.65, 3.74, 3.83, 3.90, 4.02, 4.12,
		4.22, 4.30, 4.42, 4.53, 4.64, 4.70, 4.87, 4.99, 5.10, 5.23,
		5.36, 5.49, 5.60, 5.76, 5.90, 6.04, 6.20, 6.34, 6.49, 6.65,
		6.80, 6.98, 7.15, 7.32, 7.50, 7.68, 7.87, 8.06, 8.20, 8.45,
		8.66, 8.87, 9.10, 9.31, 9.53, 9.76,
	}
)

// SeriesByLabel returns one of E12, E24 or E96 by its conventional label.
// ok is false for any other label.
func SeriesByLabel(label string) (values []float64, ok bool) {
	switch label {
	case "E12":
		return E12, true
	case "E24":
		return E24, true
	case "E96":
		return E96, true
	default:
		return nil, false
	}
}

// NearestMantissa returns the series value closest to m (which must be in
// [1,10)), breaking ties toward the smaller mantissa, per spec.md §4.1.3.
func NearestMantissa(series []float64, m float64) float64 {
	best := series[0]
	bestDist := dist(m, best)
	for _, v := range series[1:] {
		d := dist(m, v)
		if d < bestDist || (d == bestDist && v < best) {
			best = v
			bestDist = d
		}
	}
	return best
}

func dist(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
