// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package elexmcp is an electronics engineering knowledge server.
//
// It exposes resistor color-band decoding/encoding, capacitor and RC/LC
// formula kernels, and a GPIO pin capability and conflict-detection engine
// for a handful of common development boards, as tools over the Model
// Context Protocol.
//
// → resistor/ decodes and encodes 4- and 5-band color codes and snaps
// arbitrary values onto the E12/E24/E96 preferred-number series.
//
// → capacitor/ computes reactance, RC time constants, LC resonant
// frequency and suggests E12-valued capacitors for RC low-pass filters.
//
// → gpio/ holds per-board pin databases (ESP32 DevKitC, Arduino UNO R3,
// STM32F103C8T6 Blue Pill) and the conflict-detection engine that flags
// strapping pins, flash-reserved pins and other unsafe combinations.
//
// → units/ formats values with SI prefixes and holds the IEC 60063
// preferred-number series used by resistor/ and capacitor/.
//
// → server/ registers all of the above as MCP tools and serves them over
// stdio.
//
// → cmd/elex-mcp-server contains the executable entry point.
package elexmcp // import "github.com/benchtop-tools/elex-mcp"
