// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package resistor

import (
	"fmt"
	"math"
	"strings"

	"github.com/benchtop-tools/elex-mcp/units"
)

// DecodedValue is the result of reading a band sequence, per spec.md §4.1.1.
type DecodedValue struct {
	ResistanceOhms   float64
	TolerancePercent float64
	Bands            []string
}

// DecodeColorBands reads a 3, 4 or 5-band color sequence into a resistance
// and tolerance. A 3-band sequence (digit, digit, multiplier) has no
// tolerance band and is taken to mean ±20% per spec.md §3.1/§9.
func DecodeColorBands(bands []string) (DecodedValue, error) {
	switch len(bands) {
	case 3, 4, 5:
	default:
		return DecodedValue{}, &DomainError{
			Kind:    KindInvalidBandCount,
			Message: fmt.Sprintf("expected 3, 4 or 5 bands, got %d", len(bands)),
		}
	}

	digitCount := len(bands) - 2 // 4->2, 5->3; 3 bands (no tolerance) is raised to 2 below
	hasToleranceBand := len(bands) != 3
	if !hasToleranceBand {
		digitCount = 2
	}

	digits := make([]int, digitCount)
	for i := 0; i < digitCount; i++ {
		d, ok := digitColors[normalizeColor(bands[i])]
		if !ok {
			return DecodedValue{}, invalidColorAt(bands[i], i, "digit")
		}
		digits[i] = d
	}

	multIdx := digitCount
	mult, ok := multiplierColors[normalizeColor(bands[multIdx])]
	if !ok {
		return DecodedValue{}, invalidColorAt(bands[multIdx], multIdx, "multiplier")
	}

	tolerance := NoToleranceBandPercent
	if hasToleranceBand {
		tolIdx := multIdx + 1
		t, ok := toleranceColors[normalizeColor(bands[tolIdx])]
		if !ok {
			return DecodedValue{}, invalidColorAt(bands[tolIdx], tolIdx, "tolerance")
		}
		tolerance = t
	}

	mantissa := 0
	for _, d := range digits {
		mantissa = mantissa*10 + d
	}

	return DecodedValue{
		ResistanceOhms:   float64(mantissa) * mult,
		TolerancePercent: tolerance,
		Bands:            bands,
	}, nil
}

func invalidColorAt(color string, pos int, role string) error {
	return &DomainError{
		Kind:    KindInvalidColor,
		Message: fmt.Sprintf("%q is not a valid %s-band color at position %d", color, role, pos+1),
		Hint:    colorHint(normalizeColor(color)),
	}
}

// colorHint gives a one-line explanation for colors that are valid
// elsewhere but not at the position they were used, matching spec.md §7's
// example ("Gold is only valid as a multiplier or tolerance band...").
func colorHint(color string) string {
	_, isMult := multiplierColors[color]
	_, isTol := toleranceColors[color]
	switch {
	case isMult && isTol:
		return fmt.Sprintf("%s is only valid as a multiplier or tolerance band, not as a digit band", titleCase(color))
	case isMult:
		return fmt.Sprintf("%s is only valid as a multiplier band", titleCase(color))
	case isTol:
		return fmt.Sprintf("%s is only valid as a tolerance band", titleCase(color))
	default:
		return "not a recognized resistor band color"
	}
}

// RenderDecoded formats a DecodedValue per spec.md §4.1.1 and §6.2,
// including the digits × multiplier formula with the decoded values.
func RenderDecoded(d DecodedValue) string {
	formula := ""
	if len(d.Bands) >= 3 {
		digitCount := len(d.Bands) - 2
		if len(d.Bands) == 3 {
			digitCount = 2
		}
		digits := ""
		for _, b := range d.Bands[:digitCount] {
			digits += fmt.Sprint(digitColors[normalizeColor(b)])
		}
		mult := multiplierColors[normalizeColor(d.Bands[digitCount])]
		formula = fmt.Sprintf("\nFormula: %s × %s = %s", digits, trimFloat(mult), units.Format(d.ResistanceOhms, "Ω"))
	}
	return fmt.Sprintf(
		"🔧 Decoded resistance: %s\nTolerance: ±%s%%%s\nBands: %s",
		units.Format(d.ResistanceOhms, "Ω"),
		trimFloat(d.TolerancePercent),
		formula,
		joinBands(d.Bands),
	)
}

// EncodeResult is the outcome of encoding a resistance into color bands,
// per spec.md §4.1.2.
type EncodeResult struct {
	Bands        []string
	ErrorPercent float64
}

// EncodeResistance chooses digit, multiplier and tolerance bands for ohms
// and tolerancePct. When prefer5Band is true three digit bands are used
// (5-band form); otherwise two (4-band form). If ohms isn't exactly
// representable on the chosen digit grid, the nearest integer mantissa is
// used and the resulting rounding error is reported in ErrorPercent.
func EncodeResistance(ohms, tolerancePct float64, prefer5Band bool) (EncodeResult, error) {
	if ohms <= 0 {
		return EncodeResult{}, &DomainError{Kind: KindInvalidBandCount, Message: "resistance must be positive"}
	}
	toleranceName, ok := colorForTolerance(tolerancePct)
	if !ok {
		return EncodeResult{}, &DomainError{
			Kind:    KindInvalidTolerance,
			Message: fmt.Sprintf("%.2f%% has no tolerance-band color mapping", tolerancePct),
		}
	}

	digitCount := 2
	if prefer5Band {
		digitCount = 3
	}

	rawExp := int(math.Floor(math.Log10(ohms)))
	exp := rawExp - digitCount + 1
	normalized := ohms / math.Pow(10, float64(exp))
	rounded := math.Ceil(normalized - 0.5) // nearest integer; ties go to the smaller mantissa
	upperBound := math.Pow(10, float64(digitCount))
	if rounded >= upperBound {
		rounded /= 10
		exp++
	}

	multColor, ok := colorForMultiplier(exp)
	if !ok {
		return EncodeResult{}, &DomainError{
			Kind:    KindInvalidBandCount,
			Message: fmt.Sprintf("%s is outside the representable color-band range", units.Format(ohms, "Ω")),
		}
	}

	mantissaInt := int(rounded)
	digitStr := fmt.Sprintf("%0*d", digitCount, mantissaInt)
	bands := make([]string, 0, digitCount+2)
	for _, r := range digitStr {
		d := int(r - '0')
		bands = append(bands, colorForDigit(d))
	}
	bands = append(bands, multColor, toleranceName)

	valueOhms := rounded * math.Pow(10, float64(exp))
	errPct := (valueOhms - ohms) / ohms * 100

	return EncodeResult{Bands: bands, ErrorPercent: errPct}, nil
}

// RenderEncoded formats an EncodeResult per spec.md §6.2.
func RenderEncoded(ohms, tolerancePct float64, r EncodeResult) string {
	note := ""
	if r.ErrorPercent != 0 {
		note = fmt.Sprintf(" (snapped, %.2f%% error)", r.ErrorPercent)
	}
	return fmt.Sprintf(
		"🎨 Encoded %s at ±%s%%%s\nBands: %s",
		units.Format(ohms, "Ω"),
		trimFloat(tolerancePct),
		note,
		joinBands(r.Bands),
	)
}

func joinBands(bands []string) string {
	titled := make([]string, len(bands))
	for i, b := range bands {
		titled[i] = titleCase(b)
	}
	return strings.Join(titled, ", ")
}

// titleCase upper-cases the first rune of a resistor color name ("gold" ->
// "Gold"). Color names are always single ASCII words, so this doesn't need
// strings.Title's (deprecated) Unicode word-boundary handling.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// trimFloat renders a float without a trailing ".00" for whole numbers
// (tolerance percentages are conventionally whole or half numbers).
func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%g", v)
}
