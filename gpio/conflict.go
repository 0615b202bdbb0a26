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

// Severity is one of the three levels check_pin_conflict can attach to an
// advisory, per spec.md §4.3.3.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// Advisory is one flagged concern, either attached to a specific pin or
// global to the whole request (e.g. the ESP32 ADC2+WiFi rule).
type Advisory struct {
	Severity Severity
	Message  string
}

// PinReport is one requested pin's resolution and advisories. Unknown is
// true when the pin number doesn't exist on the board, in which case Pin is
// zero except for Number.
type PinReport struct {
	Pin        Pin
	Unknown    bool
	Advisories []Advisory
}

// ConflictReport is the full result of check_pin_conflict, per spec.md
// §4.3.3.
type ConflictReport struct {
	Board             Board
	Pins              []PinReport
	GlobalAdvisories  []Advisory
	SafeAlternatives  []Pin
}

// maxSafeAlternatives bounds the "safe alternatives" list, per spec.md
// §4.3.3.
const maxSafeAlternatives = 10

// CheckPinConflict implements check_pin_conflict: resolves each requested
// pin, attaches per-pin advisories (flash-reserved and unknown pins are
// ERROR, strapping/SWD/USB/UART0 are WARNING, input-only is INFO), computes
// board-global advisories (duplicate exclusive alt-function assignment, the
// ESP32 ADC2+WiFi rule), and offers up to 10 unflagged, unused pins as safe
// alternatives.
func CheckPinConflict(boardName string, pinNumbers []int) (ConflictReport, error) {
	b, err := ResolveBoard(boardName)
	if err != nil {
		return ConflictReport{}, err
	}

	requested := map[int]bool{}
	reports := make([]PinReport, 0, len(pinNumbers))
	altFunctionUsers := map[string][]string{} // alt function name -> pin labels using it
	sawADC2 := false

	for _, n := range pinNumbers {
		requested[n] = true
		p, perr := b.Pin(n)
		if perr != nil {
			reports = append(reports, PinReport{
				Pin:     Pin{Number: n},
				Unknown: true,
				Advisories: []Advisory{{
					Severity: SeverityError,
					Message:  fmt.Sprintf("pin %d does not exist on %s", n, b.Name),
				}},
			})
			continue
		}

		var advisories []Advisory
		if p.HasFlag(FlagFlashReserved) {
			advisories = append(advisories, Advisory{SeverityError, fmt.Sprintf("%s is hardware-reserved for SPI flash and cannot be used as GPIO", p.Label)})
		}
		if p.HasFlag(FlagStrapping) {
			advisories = append(advisories, Advisory{SeverityWarning, fmt.Sprintf("%s is a strapping pin sampled at boot; avoid driving it externally during reset", p.Label)})
		}
		if p.HasFlag(FlagSWD) {
			advisories = append(advisories, Advisory{SeverityWarning, fmt.Sprintf("%s carries the SWD debug interface; repurposing it makes the board un-debuggable", p.Label)})
		}
		if p.HasFlag(FlagUSB) {
			advisories = append(advisories, Advisory{SeverityWarning, fmt.Sprintf("%s is wired to the onboard USB connector", p.Label)})
		}
		if p.HasFlag(FlagUART0) {
			advisories = append(advisories, Advisory{SeverityWarning, fmt.Sprintf("%s conflicts with the onboard USB-serial bridge whenever it is present", p.Label)})
		}
		if p.HasFlag(FlagInputOnly) {
			advisories = append(advisories, Advisory{SeverityInfo, fmt.Sprintf("%s is input-only; it has no output driver", p.Label)})
		}

		for _, af := range p.AltFunctionsInGroup("ADC2") {
			_ = af
			sawADC2 = true
		}
		for _, af := range p.AltFunctions {
			altFunctionUsers[af.Name] = append(altFunctionUsers[af.Name], p.Label)
		}

		reports = append(reports, PinReport{Pin: p, Advisories: advisories})
	}

	var global []Advisory
	var exclusiveNames []string
	for name := range altFunctionUsers {
		if len(altFunctionUsers[name]) > 1 {
			exclusiveNames = append(exclusiveNames, name)
		}
	}
	sort.Strings(exclusiveNames)
	for _, name := range exclusiveNames {
		global = append(global, Advisory{
			Severity: SeverityError,
			Message:  fmt.Sprintf("%s is assigned to more than one pin in this set: %s", name, strings.Join(altFunctionUsers[name], ", ")),
		})
	}
	if b.ID == ESP32 && sawADC2 {
		global = append(global, Advisory{
			Severity: SeverityWarning,
			Message:  "one or more selected pins share the ADC2 unit with the WiFi radio; ADC2 reads will fail while WiFi is active",
		})
	}

	safe := lo.Filter(b.Pins, func(p Pin, _ int) bool {
		return !requested[p.Number] && len(p.Flags) == 0
	})
	sort.Slice(safe, func(i, j int) bool { return safe[i].Number < safe[j].Number })
	safe = lo.Subset(safe, 0, maxSafeAlternatives)

	return ConflictReport{
		Board:            b,
		Pins:             reports,
		GlobalAdvisories: global,
		SafeAlternatives: safe,
	}, nil
}

func flagAdvisory(f ConflictFlag) string {
	switch f {
	case FlagStrapping:
		return "strapping pin"
	case FlagFlashReserved:
		return "flash-reserved, unusable as GPIO"
	case FlagInputOnly:
		return "input-only"
	case FlagSWD:
		return "SWD debug interface"
	case FlagUSB:
		return "USB data line"
	case FlagUART0:
		return "shared with USB-serial bridge"
	case FlagADC2WiFi:
		return "ADC2, unusable while WiFi is active"
	default:
		return string(f)
	}
}

func flagAdvisories(flags []ConflictFlag) []string {
	return lo.Map(flags, func(f ConflictFlag, _ int) string { return flagAdvisory(f) })
}

func severityMark(s Severity) string {
	switch s {
	case SeverityError:
		return "✗"
	case SeverityWarning:
		return "⚠"
	default:
		return "ℹ"
	}
}

// RenderConflictReport formats a ConflictReport per spec.md §6.2.
func RenderConflictReport(r ConflictReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🔍 Pin conflict check on %s\n", r.Board.Name)
	for _, pr := range r.Pins {
		label := pr.Pin.Label
		if pr.Unknown {
			label = fmt.Sprintf("pin %d", pr.Pin.Number)
		}
		if len(pr.Advisories) == 0 {
			fmt.Fprintf(&sb, "  %s: OK\n", label)
			continue
		}
		fmt.Fprintf(&sb, "  %s:\n", label)
		for _, a := range pr.Advisories {
			fmt.Fprintf(&sb, "    %s %s: %s\n", severityMark(a.Severity), a.Severity, a.Message)
		}
	}
	if len(r.GlobalAdvisories) > 0 {
		sb.WriteString("Global:\n")
		for _, a := range r.GlobalAdvisories {
			fmt.Fprintf(&sb, "  %s %s: %s\n", severityMark(a.Severity), a.Severity, a.Message)
		}
	}
	if len(r.SafeAlternatives) > 0 {
		labels := lo.Map(r.SafeAlternatives, func(p Pin, _ int) string { return p.Label })
		fmt.Fprintf(&sb, "Safe alternatives: %s\n", strings.Join(labels, ", "))
	}
	return strings.TrimRight(sb.String(), "\n")
}
