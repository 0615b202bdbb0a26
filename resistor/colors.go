// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package resistor implements the resistor color-band codec: decoding a
// band sequence to a resistance and tolerance, encoding a resistance back
// to bands, and snapping an arbitrary target to the nearest standard value
// in an E-series.
package resistor

import "strings"

// NoToleranceBandPercent is the implied tolerance when a 3-band sequence
// omits the tolerance band entirely (spec.md §3.1, §9).
const NoToleranceBandPercent = 20.0

// digitColors maps a color name to the digit 0-9 it represents when used as
// a digit band.
var digitColors = map[string]int{
	"black":  0,
	"brown":  1,
	"red":    2,
	"orange": 3,
	"yellow": 4,
	"green":  5,
	"blue":   6,
	"violet": 7,
	"grey":   8,
	"gray":   8, // accept the common alternate spelling
	"white":  9,
}

// multiplierColors maps a color name to the power-of-ten (or fractional)
// multiplier it represents when used as the multiplier band.
var multiplierColors = map[string]float64{
	"black":  1,
	"brown":  1e1,
	"red":    1e2,
	"orange": 1e3,
	"yellow": 1e4,
	"green":  1e5,
	"blue":   1e6,
	"violet": 1e7,
	"grey":   1e8,
	"gray":   1e8,
	"white":  1e9,
	"gold":   0.1,
	"silver": 0.01,
}

// toleranceColors maps a color name to the tolerance percent it represents
// when used as the tolerance band.
var toleranceColors = map[string]float64{
	"brown":  1,
	"red":    2,
	"green":  0.5,
	"blue":   0.25,
	"violet": 0.1,
	"grey":   0.05,
	"gray":   0.05,
	"gold":   5,
	"silver": 10,
}

// digitColorOrder lists colors in ascending digit order, used by the encoder
// to pick a band color for a computed digit or (via colorForMultiplier) a
// non-negative exponent.
var digitColorOrder = []string{
	"black", "brown", "red", "orange", "yellow",
	"green", "blue", "violet", "grey", "white",
}

func colorForDigit(d int) string {
	return digitColorOrder[d]
}

func colorForMultiplier(exp int) (string, bool) {
	switch {
	case exp == -2:
		return "silver", true
	case exp == -1:
		return "gold", true
	case exp >= 0 && exp <= 9:
		return digitColorOrder[exp], true
	default:
		return "", false
	}
}

// toleranceColorOrder is the preference order used when reverse-looking-up
// a tolerance percent to a color name (fixes the map's nondeterministic
// iteration order and prefers canonical "grey" over the "gray" alias).
var toleranceColorOrder = []string{
	"brown", "red", "green", "blue", "violet", "grey", "gold", "silver",
}

func colorForTolerance(pct float64) (string, bool) {
	for _, name := range toleranceColorOrder {
		if toleranceColors[name] == pct {
			return name, true
		}
	}
	return "", false
}

func normalizeColor(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
