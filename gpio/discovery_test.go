// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

import "testing"

func assertAscending(t *testing.T, pins []DiscoveredPin) {
	t.Helper()
	for i := 1; i < len(pins); i++ {
		if pins[i].Pin.Number <= pins[i-1].Pin.Number {
			t.Fatalf("pins not in strictly ascending order: %v", pins)
		}
	}
}

func TestFindADCPinsESP32SplitsADC1ADC2(t *testing.T) {
	_, pins, err := FindADCPins("ESP32")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAscending(t, pins)

	var adc1, adc2 int
	for _, dp := range pins {
		switch dp.Bus {
		case "ADC1":
			adc1++
		case "ADC2":
			adc2++
		default:
			t.Errorf("unexpected ADC bus %q for pin %d", dp.Bus, dp.Pin.Number)
		}
	}
	if adc1 == 0 || adc2 == 0 {
		t.Errorf("expected both ADC1 and ADC2 pins, got adc1=%d adc2=%d", adc1, adc2)
	}
}

func TestFindADCPinsGPIO0IsADC2(t *testing.T) {
	_, pins, err := FindADCPins("ESP32")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, dp := range pins {
		if dp.Pin.Number == 0 && dp.Bus != "ADC2" {
			t.Errorf("GPIO0 bus = %q, want ADC2", dp.Bus)
		}
	}
}

func TestFindPWMPinsOrdering(t *testing.T) {
	_, pins, err := FindPWMPins("Arduino UNO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pins) == 0 {
		t.Fatalf("expected some PWM pins on the UNO")
	}
	assertAscending(t, pins)
}

func TestFindI2CPinsUNO(t *testing.T) {
	_, pins, err := FindI2CPins("UNO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pins) != 2 {
		t.Fatalf("expected exactly 2 I2C pins (SDA, SCL) on the UNO, got %d", len(pins))
	}
	assertAscending(t, pins)
}

func TestFindSPIPinsBluePillGroupsByBus(t *testing.T) {
	_, pins, err := FindSPIPins("STM32")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAscending(t, pins)
	seen := map[string]bool{}
	for _, dp := range pins {
		seen[dp.Bus] = true
	}
	if !seen["SPI1"] || !seen["SPI2"] {
		t.Errorf("expected both SPI1 and SPI2 buses represented, got %v", seen)
	}
}

func TestGetPinInfoUnknownPin(t *testing.T) {
	_, _, err := GetPinInfo("ESP32", 999)
	if err == nil {
		t.Fatalf("expected UnknownPin error")
	}
	de, ok := err.(*DomainError)
	if !ok || de.Kind != KindUnknownPin {
		t.Fatalf("expected KindUnknownPin, got %v", err)
	}
}

func TestGetPinInfoSWD(t *testing.T) {
	_, p, err := GetPinInfo("STM32", bluePillPin("A", 13))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.HasFlag(FlagSWD) {
		t.Errorf("expected PA13 to carry the SWD flag")
	}
}

func TestResolveBoardAliases(t *testing.T) {
	aliases := []string{"esp32", "ESP32", "Arduino UNO", "arduinouno", "UNO", "stm32", "Blue Pill", "bluepill"}
	for _, a := range aliases {
		if _, err := ResolveBoard(a); err != nil {
			t.Errorf("ResolveBoard(%q) failed: %v", a, err)
		}
	}
}

func TestResolveBoardUnknown(t *testing.T) {
	_, err := ResolveBoard("raspberry pi")
	if err == nil {
		t.Fatalf("expected UnknownBoard error")
	}
	de, ok := err.(*DomainError)
	if !ok || de.Kind != KindUnknownBoard {
		t.Fatalf("expected KindUnknownBoard, got %v", err)
	}
}
