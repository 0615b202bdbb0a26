// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package resistor

import (
	"math"
	"testing"
)

func TestFindStandardResistorExactMatch(t *testing.T) {
	r, err := FindStandardResistor(3300, "E12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ValueOhms != 3300 {
		t.Errorf("ValueOhms = %v, want 3300", r.ValueOhms)
	}
	if math.Abs(r.ErrorPercent) > 1e-9 {
		t.Errorf("ErrorPercent = %v, want 0 for an exact E12 value", r.ErrorPercent)
	}
	if r.ToleranceName != "silver" {
		t.Errorf("ToleranceName = %q, want %q for E12", r.ToleranceName, "silver")
	}
}

func TestFindStandardResistorSnaps(t *testing.T) {
	r, err := FindStandardResistor(5000, "E24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ValueOhms != 5100 {
		t.Errorf("ValueOhms = %v, want 5100 (nearest E24 to 5000)", r.ValueOhms)
	}
	if r.ErrorPercent == 0 {
		t.Errorf("expected a nonzero rounding error when snapping 5000 to E24")
	}
}

func TestFindStandardResistorRejectsUnknownSeries(t *testing.T) {
	_, err := FindStandardResistor(1000, "E48")
	if err == nil {
		t.Fatalf("expected error for an unsupported series")
	}
}

func TestFindStandardResistorRejectsNonPositive(t *testing.T) {
	_, err := FindStandardResistor(0, "E12")
	if err == nil {
		t.Fatalf("expected error for a non-positive target")
	}
}

func TestFindStandardResistorAcrossDecades(t *testing.T) {
	r, err := FindStandardResistor(47, "E12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ValueOhms != 47 {
		t.Errorf("ValueOhms = %v, want 47", r.ValueOhms)
	}

	r2, err := FindStandardResistor(470000, "E12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r2.ValueOhms != 470000 {
		t.Errorf("ValueOhms = %v, want 470000", r2.ValueOhms)
	}
}
