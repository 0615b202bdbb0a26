// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package capacitor

import (
	"math"
	"testing"
)

func almostEqual(a, b, tolPct float64) bool {
	if b == 0 {
		return a == 0
	}
	return math.Abs((a-b)/b)*100 <= tolPct
}

func TestComputeReactance(t *testing.T) {
	r, err := ComputeReactance(1e-6, 1000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 1 / (2 * math.Pi * 1000 * 1e-6)
	if !almostEqual(r.ReactanceOhms, want, 0.01) {
		t.Errorf("Xc = %v, want %v", r.ReactanceOhms, want)
	}
	if r.HasCurrent {
		t.Errorf("expected no current without voltage")
	}
}

func TestComputeReactanceWithVoltage(t *testing.T) {
	r, err := ComputeReactance(1e-6, 1000, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.HasCurrent {
		t.Fatalf("expected current to be computed")
	}
	wantI := 5 / r.ReactanceOhms
	if !almostEqual(r.CurrentAmps, wantI, 0.01) {
		t.Errorf("I = %v, want %v", r.CurrentAmps, wantI)
	}
}

func TestComputeReactanceRejectsNonPositive(t *testing.T) {
	if _, err := ComputeReactance(0, 1000, 0); err == nil {
		t.Fatalf("expected error for zero capacitance")
	}
	if _, err := ComputeReactance(1e-6, -1, 0); err == nil {
		t.Fatalf("expected error for negative frequency")
	}
}

func TestComputeRCTimeConstant(t *testing.T) {
	r, err := ComputeRCTimeConstant(10000, 1e-4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(r.TauSeconds, 1.0, 0.01) {
		t.Errorf("tau = %v, want 1.0", r.TauSeconds)
	}
	if len(r.Table) != 5 {
		t.Fatalf("expected 5 charge points, got %d", len(r.Table))
	}
	if !almostEqual(r.Table[0].PctCharged, 63.2, 0.5) {
		t.Errorf("1tau charge = %v%%, want ~63.2%%", r.Table[0].PctCharged)
	}
	if !almostEqual(r.Table[4].PctCharged, 99.3, 0.5) {
		t.Errorf("5tau charge = %v%%, want ~99.3%%", r.Table[4].PctCharged)
	}
}

func TestComputeResonantFrequencyBands(t *testing.T) {
	cases := []struct {
		l, c float64
		band ResonantBand
	}{
		{1, 1, BandAudio},
		{1e-3, 1e-9, BandRFLF},
		{1e-9, 1e-12, BandRFHF},
	}
	for _, c := range cases {
		r, err := ComputeResonantFrequency(c.l, c.c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Band != c.band {
			t.Errorf("L=%v C=%v: band = %v, want %v (f0=%v)", c.l, c.c, r.Band, c.band, r.FrequencyHz)
		}
	}
}

func TestSuggestCapacitorForFilter(t *testing.T) {
	r, err := SuggestCapacitorForFilter(10000, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Snappable {
		t.Fatalf("expected a snappable E12 suggestion")
	}
	if !almostEqual(r.SnappedFarads, 15e-9, 1) {
		t.Errorf("snapped C = %v, want ~15nF", r.SnappedFarads)
	}
	if !almostEqual(r.ActualCutoffHz, 1061, 1) {
		t.Errorf("actual cutoff = %v, want ~1061Hz", r.ActualCutoffHz)
	}
	if math.Abs(r.ErrorPercent) >= 10 {
		t.Errorf("error percent = %v, want < 10%%", r.ErrorPercent)
	}
}

func TestSuggestCapacitorForFilterRejectsNonPositive(t *testing.T) {
	if _, err := SuggestCapacitorForFilter(-1, 1000); err == nil {
		t.Fatalf("expected error for negative resistance")
	}
	if _, err := SuggestCapacitorForFilter(1000, 0); err == nil {
		t.Fatalf("expected error for zero cutoff")
	}
}
