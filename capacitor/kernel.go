// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package capacitor implements the four pure numeric-formula tools over
// capacitance, resistance, inductance and frequency: reactance, RC time
// constant, LC resonant frequency, and E12-snapped filter capacitor
// suggestion.
package capacitor

import (
	"fmt"
	"math"

	"github.com/benchtop-tools/elex-mcp/units"
)

// Kind is one of the closed enumeration of capacitor-kernel error kinds
// from spec.md §7.
type Kind string

const (
	KindNonPositiveInput Kind = "NonPositiveInput"
	KindSnapOutOfRange   Kind = "SnapOutOfRange"
)

// DomainError is a validation failure from the capacitor kernel.
type DomainError struct {
	Kind    Kind
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func requirePositive(name string, v float64) error {
	if v <= 0 {
		return &DomainError{Kind: KindNonPositiveInput, Message: fmt.Sprintf("%s must be positive, got %g", name, v)}
	}
	return nil
}

// ReactanceResult is the outcome of computing capacitive reactance, per
// spec.md §4.2.
type ReactanceResult struct {
	CapacitanceFarads float64
	FrequencyHz       float64
	ReactanceOhms     float64
	VoltageVolts      float64 // 0 if not supplied
	CurrentAmps       float64 // 0 if VoltageVolts not supplied
	HasCurrent        bool
}

// ComputeReactance computes Xc = 1/(2πfC), and I = V/Xc if voltage > 0.
func ComputeReactance(capacitanceFarads, frequencyHz, voltageVolts float64) (ReactanceResult, error) {
	if err := requirePositive("capacitance", capacitanceFarads); err != nil {
		return ReactanceResult{}, err
	}
	if err := requirePositive("frequency", frequencyHz); err != nil {
		return ReactanceResult{}, err
	}
	xc := 1 / (2 * math.Pi * frequencyHz * capacitanceFarads)
	r := ReactanceResult{
		CapacitanceFarads: capacitanceFarads,
		FrequencyHz:       frequencyHz,
		ReactanceOhms:     xc,
	}
	if voltageVolts > 0 {
		r.VoltageVolts = voltageVolts
		r.CurrentAmps = voltageVolts / xc
		r.HasCurrent = true
	}
	return r, nil
}

// RenderReactance formats a ReactanceResult per spec.md §6.2.
func RenderReactance(r ReactanceResult) string {
	s := fmt.Sprintf(
		"⚡ Capacitive reactance: Xc = %s\n"+
			"C = %s, f = %s\n"+
			"Formula: Xc = 1/(2π × %s × %s)",
		units.Format(r.ReactanceOhms, "Ω"),
		units.Format(r.CapacitanceFarads, "F"),
		units.Format(r.FrequencyHz, "Hz"),
		units.Format(r.FrequencyHz, "Hz"),
		units.Format(r.CapacitanceFarads, "F"),
	)
	if r.HasCurrent {
		s += fmt.Sprintf("\nAt %s: I = V/Xc = %s", units.Format(r.VoltageVolts, "V"), units.Format(r.CurrentAmps, "A"))
	}
	return s
}

// ChargePoint is one row of the RC charge-curve table: after n time
// constants, the capacitor reaches pctCharged of its asymptotic voltage.
type ChargePoint struct {
	N          int
	PctCharged float64
}

// RCResult is the outcome of computing an RC time constant, per spec.md §4.2.
type RCResult struct {
	ResistanceOhms    float64
	CapacitanceFarads float64
	TauSeconds        float64
	Table             []ChargePoint
}

// ComputeRCTimeConstant computes τ = R·C and the 1τ..5τ charge table
// (pct = 1 - e^-n).
func ComputeRCTimeConstant(resistanceOhms, capacitanceFarads float64) (RCResult, error) {
	if err := requirePositive("resistance", resistanceOhms); err != nil {
		return RCResult{}, err
	}
	if err := requirePositive("capacitance", capacitanceFarads); err != nil {
		return RCResult{}, err
	}
	tau := resistanceOhms * capacitanceFarads
	table := make([]ChargePoint, 5)
	for n := 1; n <= 5; n++ {
		table[n-1] = ChargePoint{N: n, PctCharged: (1 - math.Exp(-float64(n))) * 100}
	}
	return RCResult{
		ResistanceOhms:    resistanceOhms,
		CapacitanceFarads: capacitanceFarads,
		TauSeconds:        tau,
		Table:             table,
	}, nil
}

// RenderRC formats an RCResult per spec.md §6.2.
func RenderRC(r RCResult) string {
	s := fmt.Sprintf(
		"⏱ RC time constant: τ = %s\n"+
			"R = %s, C = %s\n"+
			"Charge curve:",
		units.Format(r.TauSeconds, "s"),
		units.Format(r.ResistanceOhms, "Ω"),
		units.Format(r.CapacitanceFarads, "F"),
	)
	for _, p := range r.Table {
		s += fmt.Sprintf("\n  %dτ (%s): %.1f%% charged", p.N, units.Format(float64(p.N)*r.TauSeconds, "s"), p.PctCharged)
	}
	return s
}

// ResonantBand categorizes a resonant frequency by its usable range.
type ResonantBand string

const (
	BandAudio ResonantBand = "audio"
	BandRFLF  ResonantBand = "RF-LF"
	BandRFHF  ResonantBand = "RF-HF"
)

// ResonantResult is the outcome of computing an LC resonant frequency, per
// spec.md §4.2.
type ResonantResult struct {
	InductanceHenries  float64
	CapacitanceFarads  float64
	FrequencyHz        float64
	Band               ResonantBand
}

// ComputeResonantFrequency computes f0 = 1/(2π√(LC)) and categorizes the
// result into audio (<20kHz), RF-LF ([20kHz,30MHz)) or RF-HF (>=30MHz).
func ComputeResonantFrequency(inductanceHenries, capacitanceFarads float64) (ResonantResult, error) {
	if err := requirePositive("inductance", inductanceHenries); err != nil {
		return ResonantResult{}, err
	}
	if err := requirePositive("capacitance", capacitanceFarads); err != nil {
		return ResonantResult{}, err
	}
	f0 := 1 / (2 * math.Pi * math.Sqrt(inductanceHenries*capacitanceFarads))
	var band ResonantBand
	switch {
	case f0 < 20000:
		band = BandAudio
	case f0 < 30e6:
		band = BandRFLF
	default:
		band = BandRFHF
	}
	return ResonantResult{
		InductanceHenries: inductanceHenries,
		CapacitanceFarads: capacitanceFarads,
		FrequencyHz:       f0,
		Band:              band,
	}, nil
}

// RenderResonant formats a ResonantResult per spec.md §6.2.
func RenderResonant(r ResonantResult) string {
	return fmt.Sprintf(
		"🔔 Resonant frequency: f0 = %s (%s band)\n"+
			"L = %s, C = %s\n"+
			"Formula: f0 = 1/(2π√(%s × %s))",
		units.Format(r.FrequencyHz, "Hz"), r.Band,
		units.Format(r.InductanceHenries, "H"),
		units.Format(r.CapacitanceFarads, "F"),
		units.Format(r.InductanceHenries, "H"),
		units.Format(r.CapacitanceFarads, "F"),
	)
}

// FilterSuggestion is the outcome of suggest_capacitor_for_filter, per
// spec.md §4.2.
type FilterSuggestion struct {
	ResistanceOhms    float64
	CutoffHz          float64
	IdealFarads       float64
	SnappedFarads     float64
	ActualCutoffHz    float64
	ErrorPercent      float64
	Snappable         bool
}

// SuggestCapacitorForFilter computes the ideal single-pole RC low-pass
// capacitance C = 1/(2πR·fc), snaps it to the nearest E12 value (within any
// decade), and reports the cutoff frequency that snapped value actually
// produces. If the ideal value is more than one decade from any E12 point,
// it is still returned but marked unsnappable (spec.md §4.2, §7).
func SuggestCapacitorForFilter(resistanceOhms, cutoffHz float64) (FilterSuggestion, error) {
	if err := requirePositive("resistance", resistanceOhms); err != nil {
		return FilterSuggestion{}, err
	}
	if err := requirePositive("cutoff frequency", cutoffHz); err != nil {
		return FilterSuggestion{}, err
	}
	ideal := 1 / (2 * math.Pi * resistanceOhms * cutoffHz)

	exp := int(math.Floor(math.Log10(ideal)))
	mantissa := ideal / math.Pow(10, float64(exp))
	for mantissa >= 10 {
		mantissa /= 10
		exp++
	}
	for mantissa < 1 {
		mantissa *= 10
		exp--
	}

	nearest := units.NearestMantissa(units.E12, mantissa)
	// The next decade's 1.0 can be nearer than E12's top value, 8.2.
	if 10-mantissa < math.Abs(mantissa-nearest) {
		nearest = 1
		exp++
	}
	ratio := mantissa / nearest
	if ratio < 1 {
		ratio = 1 / ratio
	}
	snappable := ratio <= 10 // within one decade, per spec.md §4.2

	snapped := nearest * math.Pow(10, float64(exp))
	actualCutoff := 1 / (2 * math.Pi * resistanceOhms * snapped)
	errPct := (actualCutoff - cutoffHz) / cutoffHz * 100

	return FilterSuggestion{
		ResistanceOhms: resistanceOhms,
		CutoffHz:       cutoffHz,
		IdealFarads:    ideal,
		SnappedFarads:  snapped,
		ActualCutoffHz: actualCutoff,
		ErrorPercent:   errPct,
		Snappable:      snappable,
	}, nil
}

// RenderFilterSuggestion formats a FilterSuggestion per spec.md §6.2/§7.
func RenderFilterSuggestion(r FilterSuggestion) string {
	if !r.Snappable {
		return fmt.Sprintf(
			"✗ Ideal capacitance %s for R=%s, fc=%s has no E12 value within a decade; unsnappable.",
			units.Format(r.IdealFarads, "F"), units.Format(r.ResistanceOhms, "Ω"), units.Format(r.CutoffHz, "Hz"),
		)
	}
	return fmt.Sprintf(
		"🎚 Suggested filter capacitor: %s (ideal %s)\n"+
			"R = %s, target fc = %s\n"+
			"Actual cutoff with snapped C: %s (%.2f%% error)",
		units.Format(r.SnappedFarads, "F"), units.Format(r.IdealFarads, "F"),
		units.Format(r.ResistanceOhms, "Ω"), units.Format(r.CutoffHz, "Hz"),
		units.Format(r.ActualCutoffHz, "Hz"), r.ErrorPercent,
	)
}
