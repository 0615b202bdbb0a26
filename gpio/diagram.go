// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

import (
	"fmt"
	"strings"
)

// GeneratePinDiagramASCII implements generate_pin_diagram_ascii: a
// fixed-width text rendering of the board's pin rows, shaped to match each
// board's physical header layout (ESP32: two side columns flanking the
// module; UNO: the classic two-row header; Blue Pill: two side columns
// flanking the chip). It is a pure, deterministic leaf function over the
// pin database (spec.md §4.3.4).
func GeneratePinDiagramASCII(boardName string) (string, error) {
	b, err := ResolveBoard(boardName)
	if err != nil {
		return "", err
	}
	switch b.ID {
	case ArduinoUNO:
		return renderTwoRowHeader(b), nil
	default:
		return renderTwoColumnFlanking(b), nil
	}
}

func pinCell(p Pin) string {
	flags := diagramFlagString(p.Flags)
	cell := fmt.Sprintf("%-4d %-10s", p.Number, p.Label)
	if flags != "" {
		cell += " " + flags
	}
	return cell
}

// renderTwoColumnFlanking lays pins out in two side columns around a center
// rule, used for the ESP32 DevKit and the Blue Pill, both of which place
// their header rows left and right of a central module/chip.
func renderTwoColumnFlanking(b Board) string {
	half := (len(b.Pins) + 1) / 2
	left := b.Pins[:half]
	right := b.Pins[half:]

	const colWidth = 24
	var sb strings.Builder
	fmt.Fprintf(&sb, "┌%s┬%s┐\n", strings.Repeat("─", colWidth), strings.Repeat("─", colWidth))
	fmt.Fprintf(&sb, "│%s│\n", centered(b.Name, colWidth*2+1))
	fmt.Fprintf(&sb, "├%s┼%s┤\n", strings.Repeat("─", colWidth), strings.Repeat("─", colWidth))
	for i := 0; i < half; i++ {
		l := pinCell(left[i])
		r := ""
		if i < len(right) {
			r = pinCell(right[i])
		}
		fmt.Fprintf(&sb, "│%-*s│%-*s│\n", colWidth, truncate(l, colWidth), colWidth, truncate(r, colWidth))
	}
	fmt.Fprintf(&sb, "└%s┴%s┘", strings.Repeat("─", colWidth), strings.Repeat("─", colWidth))
	return sb.String()
}

// renderTwoRowHeader lays pins out as a single top row (digital header,
// D0-D13) above a single bottom row (analog header, A0-A5), matching the
// Arduino UNO's two physical header strips.
func renderTwoRowHeader(b Board) string {
	var digital, analog []Pin
	for _, p := range b.Pins {
		if strings.HasPrefix(p.Label, "A") {
			analog = append(analog, p)
		} else {
			digital = append(digital, p)
		}
	}

	// The box widens when a header row would not fit in 70 columns.
	width := 70
	for _, row := range [][]Pin{digital, analog} {
		n := 0
		for i, p := range row {
			if i > 0 {
				n += len([]rune(" │ "))
			}
			n += len([]rune(p.Label + diagramFlagString(p.Flags)))
		}
		if n+2 > width {
			width = n + 2
		}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "┌%s┐\n", strings.Repeat("─", width))
	fmt.Fprintf(&sb, "│ %-*s │\n", width-2, b.Name+" — digital header")
	fmt.Fprintf(&sb, "├%s┤\n", strings.Repeat("─", width))
	sb.WriteString(rowOf(digital, width))
	fmt.Fprintf(&sb, "├%s┤\n", strings.Repeat("─", width))
	fmt.Fprintf(&sb, "│ %-*s │\n", width-2, b.Name+" — analog header")
	fmt.Fprintf(&sb, "├%s┤\n", strings.Repeat("─", width))
	sb.WriteString(rowOf(analog, width))
	fmt.Fprintf(&sb, "└%s┘", strings.Repeat("─", width))
	return strings.TrimRight(sb.String(), "\n")
}

func rowOf(pins []Pin, width int) string {
	parts := make([]string, len(pins))
	for i, p := range pins {
		cell := p.Label
		if f := diagramFlagString(p.Flags); f != "" {
			cell += f
		}
		parts[i] = cell
	}
	line := strings.Join(parts, " │ ")
	return fmt.Sprintf("│ %-*s │\n", width-2, truncate(line, width-2))
}

func centered(s string, width int) string {
	if len(s) >= width {
		return truncate(s, width)
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}

// diagramFlagString renders a pin's flags as a terse marker string, e.g.
// "⚠strap" or "⚠swd", matching spec.md §4.3.4's example.
func diagramFlagString(flags []ConflictFlag) string {
	if len(flags) == 0 {
		return ""
	}
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = "⚠" + diagramFlagAbbrev(f)
	}
	return strings.Join(parts, " ")
}

func diagramFlagAbbrev(f ConflictFlag) string {
	switch f {
	case FlagStrapping:
		return "strap"
	case FlagFlashReserved:
		return "flash"
	case FlagInputOnly:
		return "in-only"
	case FlagSWD:
		return "swd"
	case FlagUSB:
		return "usb"
	case FlagUART0:
		return "uart0"
	case FlagADC2WiFi:
		return "adc2wifi"
	default:
		return strings.ToLower(string(f))
	}
}
