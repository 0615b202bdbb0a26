// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// registry is the process-lifetime, read-only set of supported boards. It is
// populated once from esp32.go, uno.go and bluepill.go at init and never
// mutated thereafter.
var registry = map[BoardID]Board{}

func register(b Board) {
	sort.Slice(b.Pins, func(i, j int) bool { return b.Pins[i].Number < b.Pins[j].Number })
	registry[b.ID] = b
}

// boardAliases maps every case-insensitive spelling accepted by the tool
// surface to its canonical BoardID, per spec.md §6.1.
var boardAliases = map[string]BoardID{
	"esp32":          ESP32,
	"arduino uno":    ArduinoUNO,
	"arduinouno":     ArduinoUNO,
	"uno":            ArduinoUNO,
	"stm32":          STM32BluePill,
	"blue pill":      STM32BluePill,
	"bluepill":       STM32BluePill,
}

// ResolveBoard looks up a board by any of its accepted aliases
// (case-insensitive, spaces significant only within the alias table above).
func ResolveBoard(name string) (Board, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	id, ok := boardAliases[key]
	if !ok {
		return Board{}, &DomainError{
			Kind:    KindUnknownBoard,
			Message: fmt.Sprintf("%q is not a recognized board (expected ESP32, Arduino UNO or STM32 Blue Pill)", name),
		}
	}
	b, ok := registry[id]
	if !ok {
		// Unreachable unless a BoardID constant is added without a matching
		// register() call in an esp32.go/uno.go/bluepill.go init().
		return Board{}, &DomainError{Kind: KindUnknownBoard, Message: fmt.Sprintf("board %q has no registered pin table", name)}
	}
	return b, nil
}

// GetPinInfo implements get_pin_info: look up board, then pin, per
// spec.md §4.3.1.
func GetPinInfo(boardName string, pinNumber int) (Board, Pin, error) {
	b, err := ResolveBoard(boardName)
	if err != nil {
		return Board{}, Pin{}, err
	}
	p, err := b.Pin(pinNumber)
	if err != nil {
		return Board{}, Pin{}, err
	}
	return b, p, nil
}

// RenderPinInfo formats a Pin per spec.md §6.2.
func RenderPinInfo(b Board, p Pin) string {
	s := fmt.Sprintf("📍 %s pin %d (%s)\nCapabilities: %s", b.Name, p.Number, p.Label, joinCapabilities(p.Capabilities))
	if len(p.AltFunctions) > 0 {
		s += fmt.Sprintf("\nAlternate functions: %s", joinAltFunctions(p.AltFunctions))
	}
	if len(p.Flags) > 0 {
		s += fmt.Sprintf("\nFlags: %s", joinFlags(p.Flags))
	}
	if p.Notes != "" {
		s += "\nNotes: " + p.Notes
	}
	return s
}

func joinCapabilities(caps []Capability) string {
	return strings.Join(lo.Map(caps, func(c Capability, _ int) string { return string(c) }), ", ")
}

func joinAltFunctions(afs []AltFunction) string {
	return strings.Join(lo.Map(afs, func(af AltFunction, _ int) string { return af.Name }), ", ")
}

func joinFlags(flags []ConflictFlag) string {
	return strings.Join(lo.Map(flags, func(f ConflictFlag, _ int) string { return flagAdvisory(f) }), "; ")
}
