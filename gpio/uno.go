// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

// Arduino UNO R3 pin table, ATmega328P addressing. The six analog inputs
// (A0-A5) are also usable as digital I/O and are numbered 14-19 to match
// the Arduino core's own digitalPinToPort mapping (pinMode(14, ...) and
// analogRead(A0) address the same pad). D0/D1 are the hardware UART wired
// to the onboard USB-serial bridge; using them as general I/O conflicts
// with the Serial Monitor and with uploading new sketches.
func init() {
	digital := []Capability{DigitalIn, DigitalOut}
	digitalPWM := []Capability{DigitalIn, DigitalOut, PWM}
	analog := []Capability{DigitalIn, DigitalOut, ADC}

	register(Board{
		ID:   ArduinoUNO,
		Name: "Arduino UNO R3",
		Pins: []Pin{
			{Number: 0, Label: "D0/RX", Capabilities: digital,
				AltFunctions: []AltFunction{{"UART0_RX", "UART0"}},
				Flags:        []ConflictFlag{FlagUART0},
				Notes:        "Wired to the onboard USB-serial bridge; shared with Serial Monitor and sketch uploads."},
			{Number: 1, Label: "D1/TX", Capabilities: digital,
				AltFunctions: []AltFunction{{"UART0_TX", "UART0"}},
				Flags:        []ConflictFlag{FlagUART0},
				Notes:        "Wired to the onboard USB-serial bridge; shared with Serial Monitor and sketch uploads."},
			{Number: 2, Label: "D2", Capabilities: digital, Notes: "INT0 external interrupt."},
			{Number: 3, Label: "D3", Capabilities: digitalPWM, Notes: "INT1 external interrupt."},
			{Number: 4, Label: "D4", Capabilities: digital},
			{Number: 5, Label: "D5", Capabilities: digitalPWM},
			{Number: 6, Label: "D6", Capabilities: digitalPWM},
			{Number: 7, Label: "D7", Capabilities: digital},
			{Number: 8, Label: "D8", Capabilities: digital},
			{Number: 9, Label: "D9", Capabilities: digitalPWM},
			{Number: 10, Label: "D10", Capabilities: digitalPWM,
				AltFunctions: []AltFunction{{"SPI0_CS", "SPI0"}}},
			{Number: 11, Label: "D11", Capabilities: digitalPWM,
				AltFunctions: []AltFunction{{"SPI0_MOSI", "SPI0"}}},
			{Number: 12, Label: "D12", Capabilities: digital,
				AltFunctions: []AltFunction{{"SPI0_MISO", "SPI0"}}},
			{Number: 13, Label: "D13", Capabilities: digital,
				AltFunctions: []AltFunction{{"SPI0_SCK", "SPI0"}},
				Notes:        "Wired to the onboard LED through a series resistor."},
			{Number: 14, Label: "A0", Capabilities: analog},
			{Number: 15, Label: "A1", Capabilities: analog},
			{Number: 16, Label: "A2", Capabilities: analog},
			{Number: 17, Label: "A3", Capabilities: analog},
			{Number: 18, Label: "A4/SDA", Capabilities: analog,
				AltFunctions: []AltFunction{{"I2C0_SDA", "I2C0"}}},
			{Number: 19, Label: "A5/SCL", Capabilities: analog,
				AltFunctions: []AltFunction{{"I2C0_SCL", "I2C0"}}},
		},
	})
}
