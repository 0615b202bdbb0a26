// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package units

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
		want  string
	}{
		{1000, "Ω", "1.00kΩ"},
		{4700, "Ω", "4.70kΩ"},
		{1, "s", "1.00s"},
		{0.000150, "s", "150µs"},
		{0, "F", "0F"},
		{-1000, "Ω", "-1.00kΩ"},
	}
	for _, c := range cases {
		if got := Format(c.value, c.unit); got != c.want {
			t.Errorf("Format(%v, %q) = %q, want %q", c.value, c.unit, got, c.want)
		}
	}
}

func TestFormatScientificFallback(t *testing.T) {
	got := FormatPrec(4.2e15, "Hz", 3)
	want := "4.20×10^15Hz"
	if got != want {
		t.Errorf("FormatPrec = %q, want %q", got, want)
	}
}

func TestNearestMantissaTieBreak(t *testing.T) {
	series := []float64{1.0, 2.0, 3.0}
	// 1.5 is equidistant between 1.0 and 2.0; smaller mantissa wins.
	if got := NearestMantissa(series, 1.5); got != 1.0 {
		t.Errorf("NearestMantissa(1.5) = %v, want 1.0", got)
	}
}

func TestE12SubsetOfE24SubsetOfE96(t *testing.T) {
	for _, v := range E12 {
		if !contains(E24, v) {
			t.Errorf("E12 value %v missing from E24", v)
		}
	}
	for _, v := range E24 {
		if !contains(E96, v) {
			t.Errorf("E24 value %v missing from E96", v)
		}
	}
}

func contains(series []float64, v float64) bool {
	for _, s := range series {
		if s == v {
			return true
		}
	}
	return false
}
