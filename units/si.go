// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package units formats the physical quantities used across the resistor
// and capacitor packages: resistance, capacitance, frequency and
// duration, each rendered with an SI prefix chosen so the mantissa falls in
// [1,1000), or scientific notation outside the p..M prefix range.
//
// The prefix-bucketing algorithm is adapted from
// periph.io/x/conn/v3/physic's nanoAsString/microAsString (fixed-point
// int64 nanounits); this package instead operates on float64, per the
// half-to-even, 2-to-6-significant-figure rounding this server requires.
package units

import (
	"fmt"
	"math"
	"strconv"
)

// siPrefixes maps a power-of-1000 exponent (relative to the base unit) to
// its SI prefix symbol. Index 0 is the base unit (no prefix).
var siPrefixes = map[int]string{
	-4: "p",
	-3: "n",
	-2: "µ",
	-1: "m",
	0:  "",
	1:  "k",
	2:  "M",
}

// Format renders value (in the base unit, e.g. ohms, farads, hertz, seconds)
// with an SI prefix and the given unit symbol, using 3 significant figures.
// See FormatPrec for control over precision.
func Format(value float64, unit string) string {
	return FormatPrec(value, unit, 3)
}

// FormatPrec renders value with an SI prefix and the given unit symbol,
// choosing the prefix so the mantissa lies in [1,1000), at the requested
// number of significant figures (clamped to [2,6] per this server's
// formatting contract). Values outside the p..M prefix range fall back to
// "m.mm×10^n" scientific notation. Rounding is half-to-even via
// strconv.FormatFloat (round to nearest, ties to even); the mantissa is
// always padded to the requested significant-figure count, so "1.00kΩ"
// rather than "1kΩ".
func FormatPrec(value float64, unit string, sigFigs int) string {
	if sigFigs < 2 {
		sigFigs = 2
	} else if sigFigs > 6 {
		sigFigs = 6
	}
	if value == 0 {
		return "0" + unit
	}
	sign := ""
	v := value
	if v < 0 {
		sign = "-"
		v = -v
	}

	exp3 := int(math.Floor(math.Log10(v) / 3))
	mantissa := v / math.Pow(1000, float64(exp3))
	// Guard against log10 rounding putting the mantissa just outside [1,1000).
	for mantissa >= 1000 {
		mantissa /= 1000
		exp3++
	}
	for mantissa < 1 {
		mantissa *= 1000
		exp3--
	}

	prefix, ok := siPrefixes[exp3]
	if !ok {
		return sign + sciNotation(mantissa, exp3*3) + unit
	}
	return sign + formatMantissa(mantissa, sigFigs) + prefix + unit
}

// formatMantissa renders a mantissa in [1,1000) with the requested number of
// significant figures, half-to-even (strconv.FormatFloat rounds to nearest,
// ties to even).
func formatMantissa(m float64, sigFigs int) string {
	intDigits := 1
	if m >= 100 {
		intDigits = 3
	} else if m >= 10 {
		intDigits = 2
	}
	decimals := sigFigs - intDigits
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(m, 'f', decimals, 64)
}

// sciNotation renders m*10^exp in "m.mm×10^exp" form (mantissa in [1,10))
// for magnitudes the SI prefix table doesn't cover.
func sciNotation(m float64, exp int) string {
	for m >= 10 {
		m /= 10
		exp++
	}
	return fmt.Sprintf("%.2f×10^%d", m, exp)
}
