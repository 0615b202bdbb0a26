// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

// ESP32 DevKitC pin table. GPIO numbering follows the SoC's own scheme
// (not a board-silkscreen renumbering). Pins 6-11 are wired to the
// on-module SPI flash and are never broken out for general use; 34-39 are
// input-only (no output driver on these pads); 0, 2, 12, 15 are strapping
// pins sampled at reset to select boot mode. ADC2 is unusable whenever the
// WiFi radio is active (handled board-globally in conflict.go, not per pin).
func init() {
	digitalIO := []Capability{DigitalIn, DigitalOut, PWM}

	register(Board{
		ID:   ESP32,
		Name: "ESP32 DevKitC",
		Pins: []Pin{
			{Number: 0, Label: "GPIO0", Capabilities: append(append([]Capability{}, digitalIO...), ADC),
				AltFunctions: []AltFunction{{"ADC2_CH1", "ADC2"}},
				Flags:        []ConflictFlag{FlagStrapping},
				Notes:        "Boot mode strap: pulled low enters download mode. Has an onboard BOOT button on most DevKitC boards."},
			{Number: 1, Label: "GPIO1", Capabilities: digitalIO,
				AltFunctions: []AltFunction{{"UART0_TX", "UART0"}},
				Notes:        "U0TXD, used by the USB-serial bridge for flashing and the console."},
			{Number: 2, Label: "GPIO2", Capabilities: append(append([]Capability{}, digitalIO...), ADC, Touch),
				AltFunctions: []AltFunction{{"ADC2_CH2", "ADC2"}, {"TOUCH2", "TOUCH"}},
				Flags:        []ConflictFlag{FlagStrapping},
				Notes:        "Boot strap: must be low or floating to enter UART download mode. Tied to the onboard LED on many DevKitC boards."},
			{Number: 3, Label: "GPIO3", Capabilities: digitalIO,
				AltFunctions: []AltFunction{{"UART0_RX", "UART0"}},
				Notes:        "U0RXD, used by the USB-serial bridge."},
			{Number: 4, Label: "GPIO4", Capabilities: append(append([]Capability{}, digitalIO...), ADC, Touch),
				AltFunctions: []AltFunction{{"ADC2_CH0", "ADC2"}, {"TOUCH0", "TOUCH"}}},
			{Number: 5, Label: "GPIO5", Capabilities: digitalIO,
				AltFunctions: []AltFunction{{"VSPI_CS", "SPI0"}},
				Flags:        []ConflictFlag{FlagStrapping},
				Notes:        "Boot strap: affects SDIO slave timing. Default VSPI chip select."},
			{Number: 6, Label: "GPIO6", Capabilities: []Capability{DigitalIn, DigitalOut}, Flags: []ConflictFlag{FlagFlashReserved}, Notes: "SPI flash CLK. Electrically a GPIO, but reconfiguring it disconnects the on-module flash chip."},
			{Number: 7, Label: "GPIO7", Capabilities: []Capability{DigitalIn, DigitalOut}, Flags: []ConflictFlag{FlagFlashReserved}, Notes: "SPI flash D0."},
			{Number: 8, Label: "GPIO8", Capabilities: []Capability{DigitalIn, DigitalOut}, Flags: []ConflictFlag{FlagFlashReserved}, Notes: "SPI flash D1."},
			{Number: 9, Label: "GPIO9", Capabilities: []Capability{DigitalIn, DigitalOut}, Flags: []ConflictFlag{FlagFlashReserved}, Notes: "SPI flash D2 (HD)."},
			{Number: 10, Label: "GPIO10", Capabilities: []Capability{DigitalIn, DigitalOut}, Flags: []ConflictFlag{FlagFlashReserved}, Notes: "SPI flash D3 (WP)."},
			{Number: 11, Label: "GPIO11", Capabilities: []Capability{DigitalIn, DigitalOut}, Flags: []ConflictFlag{FlagFlashReserved}, Notes: "SPI flash CMD."},
			{Number: 12, Label: "GPIO12", Capabilities: append(append([]Capability{}, digitalIO...), ADC, Touch),
				AltFunctions: []AltFunction{{"ADC2_CH5", "ADC2"}, {"TOUCH5", "TOUCH"}, {"HSPI_MISO", "SPI1"}},
				Flags:        []ConflictFlag{FlagStrapping},
				Notes:        "Boot strap MTDI: selects flash voltage (3.3V if low, 1.8V if high at reset). Pulling high can brick a 3.3V-flash module."},
			{Number: 13, Label: "GPIO13", Capabilities: append(append([]Capability{}, digitalIO...), ADC, Touch),
				AltFunctions: []AltFunction{{"ADC2_CH4", "ADC2"}, {"TOUCH4", "TOUCH"}, {"HSPI_MOSI", "SPI1"}}},
			{Number: 14, Label: "GPIO14", Capabilities: append(append([]Capability{}, digitalIO...), ADC, Touch),
				AltFunctions: []AltFunction{{"ADC2_CH6", "ADC2"}, {"TOUCH6", "TOUCH"}, {"HSPI_SCK", "SPI1"}}},
			{Number: 15, Label: "GPIO15", Capabilities: append(append([]Capability{}, digitalIO...), ADC, Touch),
				AltFunctions: []AltFunction{{"ADC2_CH3", "ADC2"}, {"TOUCH3", "TOUCH"}, {"HSPI_CS", "SPI1"}},
				Flags:        []ConflictFlag{FlagStrapping},
				Notes:        "Boot strap: controls boot log verbosity on the UART."},
			{Number: 16, Label: "GPIO16", Capabilities: digitalIO},
			{Number: 17, Label: "GPIO17", Capabilities: digitalIO},
			{Number: 18, Label: "GPIO18", Capabilities: digitalIO,
				AltFunctions: []AltFunction{{"VSPI_SCK", "SPI0"}}},
			{Number: 19, Label: "GPIO19", Capabilities: digitalIO,
				AltFunctions: []AltFunction{{"VSPI_MISO", "SPI0"}}},
			{Number: 21, Label: "GPIO21", Capabilities: digitalIO,
				AltFunctions: []AltFunction{{"I2C0_SDA", "I2C0"}}},
			{Number: 22, Label: "GPIO22", Capabilities: digitalIO,
				AltFunctions: []AltFunction{{"I2C0_SCL", "I2C0"}}},
			{Number: 23, Label: "GPIO23", Capabilities: digitalIO,
				AltFunctions: []AltFunction{{"VSPI_MOSI", "SPI0"}}},
			{Number: 25, Label: "GPIO25", Capabilities: append(append([]Capability{}, digitalIO...), ADC, DAC),
				AltFunctions: []AltFunction{{"ADC2_CH8", "ADC2"}, {"DAC1", "DAC"}}},
			{Number: 26, Label: "GPIO26", Capabilities: append(append([]Capability{}, digitalIO...), ADC, DAC),
				AltFunctions: []AltFunction{{"ADC2_CH9", "ADC2"}, {"DAC2", "DAC"}}},
			{Number: 27, Label: "GPIO27", Capabilities: append(append([]Capability{}, digitalIO...), ADC, Touch),
				AltFunctions: []AltFunction{{"ADC2_CH7", "ADC2"}, {"TOUCH7", "TOUCH"}}},
			{Number: 32, Label: "GPIO32", Capabilities: append(append([]Capability{}, digitalIO...), ADC, Touch),
				AltFunctions: []AltFunction{{"ADC1_CH4", "ADC1"}, {"TOUCH9", "TOUCH"}}},
			{Number: 33, Label: "GPIO33", Capabilities: append(append([]Capability{}, digitalIO...), ADC, Touch),
				AltFunctions: []AltFunction{{"ADC1_CH5", "ADC1"}, {"TOUCH8", "TOUCH"}}},
			{Number: 34, Label: "GPIO34", Capabilities: []Capability{DigitalIn, ADC, InputOnly},
				AltFunctions: []AltFunction{{"ADC1_CH6", "ADC1"}},
				Flags:        []ConflictFlag{FlagInputOnly},
				Notes:        "Input-only: no output driver on this pad."},
			{Number: 35, Label: "GPIO35", Capabilities: []Capability{DigitalIn, ADC, InputOnly},
				AltFunctions: []AltFunction{{"ADC1_CH7", "ADC1"}},
				Flags:        []ConflictFlag{FlagInputOnly},
				Notes:        "Input-only: no output driver on this pad."},
			{Number: 36, Label: "GPIO36", Capabilities: []Capability{DigitalIn, ADC, InputOnly},
				AltFunctions: []AltFunction{{"ADC1_CH0", "ADC1"}},
				Flags:        []ConflictFlag{FlagInputOnly},
				Notes:        "SVP. Input-only: no output driver on this pad."},
			{Number: 39, Label: "GPIO39", Capabilities: []Capability{DigitalIn, ADC, InputOnly},
				AltFunctions: []AltFunction{{"ADC1_CH3", "ADC1"}},
				Flags:        []ConflictFlag{FlagInputOnly},
				Notes:        "SVN. Input-only: no output driver on this pad."},
		},
	})
}
