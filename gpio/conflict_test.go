// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

import "testing"

func adviceKinds(advisories []Advisory) map[Severity]int {
	out := map[Severity]int{}
	for _, a := range advisories {
		out[a.Severity]++
	}
	return out
}

func TestCheckPinConflictESP32FlashAndStrapping(t *testing.T) {
	r, err := CheckPinConflict("ESP32", []int{0, 2, 6, 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Pins) != 4 {
		t.Fatalf("expected 4 pin reports, got %d", len(r.Pins))
	}

	byNumber := map[int]PinReport{}
	for _, pr := range r.Pins {
		byNumber[pr.Pin.Number] = pr
	}

	if k := adviceKinds(byNumber[6].Advisories); k[SeverityError] == 0 {
		t.Errorf("expected an ERROR advisory on flash-reserved GPIO6, got %v", byNumber[6].Advisories)
	}
	for _, n := range []int{0, 2, 12} {
		if k := adviceKinds(byNumber[n].Advisories); k[SeverityWarning] == 0 {
			t.Errorf("expected a WARNING advisory on strapping pin GPIO%d, got %v", n, byNumber[n].Advisories)
		}
	}

	foundADC2Warning := false
	for _, a := range r.GlobalAdvisories {
		if a.Severity == SeverityWarning {
			foundADC2Warning = true
		}
	}
	if !foundADC2Warning {
		t.Errorf("expected a global ADC2+WiFi warning, got %v", r.GlobalAdvisories)
	}
}

func TestCheckPinConflictUnknownPin(t *testing.T) {
	r, err := CheckPinConflict("ESP32", []int{999})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Pins) != 1 || !r.Pins[0].Unknown {
		t.Fatalf("expected a single unknown-pin report, got %v", r.Pins)
	}
	if k := adviceKinds(r.Pins[0].Advisories); k[SeverityError] == 0 {
		t.Errorf("expected ERROR for an unknown pin number")
	}
}

func TestCheckPinConflictArduinoUART0(t *testing.T) {
	r, err := CheckPinConflict("Arduino UNO", []int{0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, pr := range r.Pins {
		if k := adviceKinds(pr.Advisories); k[SeverityWarning] == 0 {
			t.Errorf("expected a UART0 WARNING on pin %d, got %v", pr.Pin.Number, pr.Advisories)
		}
	}
}

func TestCheckPinConflictSafeAlternativesBounded(t *testing.T) {
	r, err := CheckPinConflict("ESP32", []int{16, 17})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.SafeAlternatives) > maxSafeAlternatives {
		t.Errorf("SafeAlternatives has %d entries, want <= %d", len(r.SafeAlternatives), maxSafeAlternatives)
	}
	for i := 1; i < len(r.SafeAlternatives); i++ {
		if r.SafeAlternatives[i].Number <= r.SafeAlternatives[i-1].Number {
			t.Errorf("SafeAlternatives not strictly ascending: %v", r.SafeAlternatives)
			break
		}
	}
	for _, p := range r.SafeAlternatives {
		if p.Number == 16 || p.Number == 17 {
			t.Errorf("requested pin %d should not appear in safe alternatives", p.Number)
		}
		if len(p.Flags) > 0 {
			t.Errorf("flagged pin %d should not appear in safe alternatives", p.Number)
		}
	}
}

func TestCheckPinConflictUnknownBoard(t *testing.T) {
	_, err := CheckPinConflict("potato", []int{1})
	if err == nil {
		t.Fatalf("expected error for an unrecognized board")
	}
}

func TestCheckPinConflictEachFlashPinIsError(t *testing.T) {
	for n := 6; n <= 11; n++ {
		r, err := CheckPinConflict("ESP32", []int{n})
		if err != nil {
			t.Fatalf("unexpected error for pin %d: %v", n, err)
		}
		if k := adviceKinds(r.Pins[0].Advisories); k[SeverityError] == 0 {
			t.Errorf("GPIO%d: expected ERROR, got %v", n, r.Pins[0].Advisories)
		}
	}
}
