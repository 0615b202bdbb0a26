// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// DiscoveredPin is one pin returned by a peripheral-discovery query, grouped
// by bus where the peripheral has multiple instances (e.g. ESP32 ADC1 vs
// ADC2, or VSPI vs HSPI), per spec.md §4.3.2.
type DiscoveredPin struct {
	Pin        Pin
	Bus        string
	Advisories []string
}

func discoveredPins(b Board, match func(Pin) (bus string, ok bool)) []DiscoveredPin {
	var out []DiscoveredPin
	for _, p := range b.Pins {
		bus, ok := match(p)
		if !ok {
			continue
		}
		out = append(out, DiscoveredPin{Pin: p, Bus: bus, Advisories: flagAdvisories(p.Flags)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pin.Number < out[j].Pin.Number })
	return out
}

func busFromGroup(p Pin, prefix string) (string, bool) {
	afs := p.AltFunctionsInGroup(prefix)
	if len(afs) == 0 {
		return "", false
	}
	return afs[0].Group, true
}

// FindPWMPins implements find_pwm_pins: every pin with PWM capability,
// per spec.md §4.3.2.
func FindPWMPins(boardName string) (Board, []DiscoveredPin, error) {
	b, err := ResolveBoard(boardName)
	if err != nil {
		return Board{}, nil, err
	}
	return b, discoveredPins(b, func(p Pin) (string, bool) {
		return "", p.HasCapability(PWM)
	}), nil
}

// FindADCPins implements find_adc_pins: every pin with ADC capability,
// grouped by ADC bus instance where the board distinguishes one (e.g. ESP32
// ADC1/ADC2), per spec.md §4.3.2.
func FindADCPins(boardName string) (Board, []DiscoveredPin, error) {
	b, err := ResolveBoard(boardName)
	if err != nil {
		return Board{}, nil, err
	}
	return b, discoveredPins(b, func(p Pin) (string, bool) {
		if !p.HasCapability(ADC) {
			return "", false
		}
		bus, ok := busFromGroup(p, "ADC")
		if !ok {
			return "ADC", true
		}
		return bus, true
	}), nil
}

// FindI2CPins implements find_i2c_pins: every pin carrying an I2Cn_SDA or
// I2Cn_SCL alternate function, grouped by bus index, per spec.md §4.3.2.
func FindI2CPins(boardName string) (Board, []DiscoveredPin, error) {
	b, err := ResolveBoard(boardName)
	if err != nil {
		return Board{}, nil, err
	}
	return b, discoveredPins(b, func(p Pin) (string, bool) {
		for _, af := range p.AltFunctionsInGroup("I2C") {
			if strings.HasSuffix(af.Name, "_SDA") || strings.HasSuffix(af.Name, "_SCL") {
				return af.Group, true
			}
		}
		return "", false
	}), nil
}

// FindSPIPins implements find_spi_pins: every pin carrying a
// SPIn_{MOSI,MISO,SCK,CS/NSS} alternate function, grouped by bus index, per
// spec.md §4.3.2.
func FindSPIPins(boardName string) (Board, []DiscoveredPin, error) {
	b, err := ResolveBoard(boardName)
	if err != nil {
		return Board{}, nil, err
	}
	return b, discoveredPins(b, func(p Pin) (string, bool) {
		return busFromGroup(p, "SPI")
	}), nil
}

// RenderDiscovered formats a discovery result per spec.md §6.2 as a table,
// one row per pin. title is e.g. "PWM-capable pins"; when groupByBus is
// true, a "Bus" column distinguishes instances (used for ADC/I2C/SPI)
// rather than a flat list.
func RenderDiscovered(b Board, title string, pins []DiscoveredPin, groupByBus bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🔌 %s on %s\n", title, b.Name)
	if len(pins) == 0 {
		sb.WriteString("(none)")
		return sb.String()
	}

	if groupByBus {
		sort.SliceStable(pins, func(i, j int) bool { return pins[i].Bus < pins[j].Bus })
	}

	t := table.NewWriter()
	if groupByBus {
		t.AppendHeader(table.Row{"Bus", "Pin", "Label", "Advisories"})
	} else {
		t.AppendHeader(table.Row{"Pin", "Label", "Advisories"})
	}
	lastBus := ""
	for _, dp := range pins {
		advisories := strings.Join(dp.Advisories, "; ")
		if groupByBus {
			if dp.Bus != lastBus {
				if dp.Bus == "ADC2" {
					advisories = appendNote(advisories, "ADC2 reads fail while WiFi is active")
				} else if dp.Bus == "ADC1" {
					advisories = appendNote(advisories, "WiFi-safe")
				}
			}
			t.AppendRow(table.Row{dp.Bus, dp.Pin.Number, dp.Pin.Label, advisories})
			lastBus = dp.Bus
			continue
		}
		t.AppendRow(table.Row{dp.Pin.Number, dp.Pin.Label, advisories})
	}
	sb.WriteString(t.Render())
	return sb.String()
}

func appendNote(advisories, note string) string {
	if advisories == "" {
		return note
	}
	return advisories + "; " + note
}
