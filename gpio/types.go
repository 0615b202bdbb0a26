// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gpio is a read-only knowledge base of pin capabilities for three
// microcontroller boards (ESP32 DevKitC, Arduino UNO R3, STM32 "Blue Pill"),
// plus a conflict-detection engine over arbitrary pin sets and an ASCII pin
// diagram renderer. Every exported entry point is a pure function over the
// board tables built in boards.go, esp32.go, uno.go and bluepill.go — there
// is no mutable state and no I/O.
package gpio

import "fmt"

// Capability is one thing a pin can do electrically.
type Capability string

const (
	DigitalIn  Capability = "DIGITAL_IN"
	DigitalOut Capability = "DIGITAL_OUT"
	PWM        Capability = "PWM"
	ADC        Capability = "ADC"
	DAC        Capability = "DAC"
	Touch      Capability = "TOUCH"
	InputOnly  Capability = "INPUT_ONLY"
)

// ConflictFlag is a board-level warning attached to a pin.
type ConflictFlag string

const (
	FlagStrapping     ConflictFlag = "STRAPPING"
	FlagFlashReserved ConflictFlag = "FLASH_RESERVED"
	FlagInputOnly     ConflictFlag = "INPUT_ONLY"
	FlagSWD           ConflictFlag = "SWD"
	FlagUSB           ConflictFlag = "USB"
	FlagUART0         ConflictFlag = "UART0"
	FlagADC2WiFi      ConflictFlag = "ADC2_WIFI"
)

// AltFunction names a bus/peripheral role a pin can be muxed to, e.g.
// "I2C0_SDA", "SPI1_MOSI", "USART1_TX", "ADC2_CH3". Group is the bus family
// prefix used by peripheral discovery ("I2C0", "SPI1", "USART1", "ADC2").
type AltFunction struct {
	Name  string
	Group string
}

// Pin is one electrical pin on a board.
type Pin struct {
	Number       int
	Label        string
	Capabilities []Capability
	AltFunctions []AltFunction
	Flags        []ConflictFlag
	Notes        string
}

// HasCapability reports whether the pin supports cap.
func (p Pin) HasCapability(cap Capability) bool {
	for _, c := range p.Capabilities {
		if c == cap {
			return true
		}
	}
	return false
}

// HasFlag reports whether the pin carries flag.
func (p Pin) HasFlag(flag ConflictFlag) bool {
	for _, f := range p.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// AltFunctionsInGroup returns the pin's alt functions whose Group has the
// given prefix (e.g. "I2C" matches groups "I2C0" and "I2C1").
func (p Pin) AltFunctionsInGroup(prefix string) []AltFunction {
	var out []AltFunction
	for _, af := range p.AltFunctions {
		if len(af.Group) >= len(prefix) && af.Group[:len(prefix)] == prefix {
			out = append(out, af)
		}
	}
	return out
}

// BoardID is one of the three supported board identifiers.
type BoardID string

const (
	ESP32          BoardID = "ESP32"
	ArduinoUNO     BoardID = "ArduinoUNO"
	STM32BluePill  BoardID = "STM32BluePill"
)

// Board is a supported microcontroller and its full pin list, ordered by
// Pin.Number ascending.
type Board struct {
	ID   BoardID
	Name string
	Pins []Pin
}

// Pin returns the board's pin with the given number, or UnknownPin.
func (b Board) Pin(number int) (Pin, error) {
	for _, p := range b.Pins {
		if p.Number == number {
			return p, nil
		}
	}
	return Pin{}, &DomainError{
		Kind:    KindUnknownPin,
		Message: fmt.Sprintf("%s has no pin numbered %d", b.Name, number),
	}
}
