// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package resistor

import (
	"fmt"
	"math"

	"github.com/benchtop-tools/elex-mcp/units"
)

// StandardResult is the outcome of snapping a target resistance to the
// nearest value in a preferred-number series. See spec.md §4.1.3.
type StandardResult struct {
	Series        string
	TargetOhms    float64
	ValueOhms     float64
	ErrorPercent  float64
	Bands         []string
	ToleranceName string
}

// FindStandardResistor snaps targetOhms to the nearest value available in
// the named E-series (E12, E24 or E96), reporting the percent error versus
// the target and the 4-band color encoding of the chosen value at the
// series' conventional tolerance (E12 -> 10%, E24 -> 5%, E96 -> 1%).
func FindStandardResistor(targetOhms float64, series string) (StandardResult, error) {
	if targetOhms <= 0 {
		return StandardResult{}, &DomainError{Kind: KindInvalidBandCount, Message: "target resistance must be positive"}
	}
	values, ok := units.SeriesByLabel(series)
	if !ok {
		return StandardResult{}, &DomainError{Kind: KindInvalidTolerance, Message: fmt.Sprintf("unknown series %q, expected E12, E24 or E96", series)}
	}

	exp := int(math.Floor(math.Log10(targetOhms)))
	mantissa := targetOhms / math.Pow(10, float64(exp))
	for mantissa >= 10 {
		mantissa /= 10
		exp++
	}
	for mantissa < 1 {
		mantissa *= 10
		exp--
	}

	chosen := units.NearestMantissa(values, mantissa)
	// The next decade's 1.0 can be nearer than the series' top value.
	if 10-mantissa < math.Abs(mantissa-chosen) {
		chosen = 1
		exp++
	}
	valueOhms := chosen * math.Pow(10, float64(exp))
	errPct := (valueOhms - targetOhms) / targetOhms * 100

	tolerancePct := seriesTolerancePercent(series)
	toleranceName, _ := colorForTolerance(tolerancePct)
	enc, err := EncodeResistance(valueOhms, tolerancePct, false)
	if err != nil {
		return StandardResult{}, err
	}

	return StandardResult{
		Series:        series,
		TargetOhms:    targetOhms,
		ValueOhms:     valueOhms,
		ErrorPercent:  errPct,
		Bands:         enc.Bands,
		ToleranceName: toleranceName,
	}, nil
}

func seriesTolerancePercent(series string) float64 {
	switch series {
	case "E96":
		return 1
	case "E24":
		return 5
	default:
		return 10
	}
}

// RenderStandardResult formats a StandardResult per spec.md §6.2.
func RenderStandardResult(r StandardResult) string {
	exact := ""
	if r.ErrorPercent == 0 {
		exact = " (exact match)"
	}
	return fmt.Sprintf(
		"🎯 Nearest %s value to %s: %s%s\nError: %.2f%%\nBands: %s\nTolerance: ±%s",
		r.Series,
		units.Format(r.TargetOhms, "Ω"),
		units.Format(r.ValueOhms, "Ω"),
		exact,
		r.ErrorPercent,
		joinBands(r.Bands),
		r.ToleranceName,
	)
}
