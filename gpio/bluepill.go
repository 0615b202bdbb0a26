// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

// STM32F103C8T6 "Blue Pill" pin table. Pin.Number encodes port*16+pin
// (PA0=0 ... PA15=15, PB0=16 ... PB15=31, PC13=45, PC14=46, PC15=47), which
// keeps the ordering invariant (pin_number ascending, no ties) while still
// reading back to a silkscreen label via Pin.Label. Per spec.md §9 this
// covers {PA0-PA15, PB0-PB15, PC13-PC15}; power and reset pins are not
// modeled as they carry no GPIO capability. PA13/PA14 carry the SWD debug
// interface and PA11/PA12 the USB D-/D+ pair; both are usable as GPIO in
// firmware that disables the corresponding peripheral, but doing so is
// risky enough to warrant a standing warning (see conflict.go).
func bluePillPin(port string, n int) int {
	portIdx := map[string]int{"A": 0, "B": 1, "C": 2}[port]
	return portIdx*16 + n
}

func init() {
	analogPWM := func(adcCh int) []Capability { return []Capability{DigitalIn, DigitalOut, ADC, PWM} }
	analog := []Capability{DigitalIn, DigitalOut, ADC}
	digital := []Capability{DigitalIn, DigitalOut}
	digitalPWM := []Capability{DigitalIn, DigitalOut, PWM}

	pins := []Pin{
		{Number: bluePillPin("A", 0), Label: "PA0", Capabilities: analogPWM(0), AltFunctions: []AltFunction{{"ADC_CH0", "ADC"}, {"TIM2_CH1", "TIM2"}}},
		{Number: bluePillPin("A", 1), Label: "PA1", Capabilities: analogPWM(1), AltFunctions: []AltFunction{{"ADC_CH1", "ADC"}, {"TIM2_CH2", "TIM2"}}},
		{Number: bluePillPin("A", 2), Label: "PA2", Capabilities: analogPWM(2), AltFunctions: []AltFunction{{"ADC_CH2", "ADC"}, {"TIM2_CH3", "TIM2"}, {"USART2_TX", "USART2"}}},
		{Number: bluePillPin("A", 3), Label: "PA3", Capabilities: analogPWM(3), AltFunctions: []AltFunction{{"ADC_CH3", "ADC"}, {"TIM2_CH4", "TIM2"}, {"USART2_RX", "USART2"}}},
		{Number: bluePillPin("A", 4), Label: "PA4", Capabilities: analog, AltFunctions: []AltFunction{{"ADC_CH4", "ADC"}, {"SPI1_NSS", "SPI1"}}},
		{Number: bluePillPin("A", 5), Label: "PA5", Capabilities: analog, AltFunctions: []AltFunction{{"ADC_CH5", "ADC"}, {"SPI1_SCK", "SPI1"}}},
		{Number: bluePillPin("A", 6), Label: "PA6", Capabilities: analogPWM(6), AltFunctions: []AltFunction{{"ADC_CH6", "ADC"}, {"SPI1_MISO", "SPI1"}, {"TIM3_CH1", "TIM3"}}},
		{Number: bluePillPin("A", 7), Label: "PA7", Capabilities: analogPWM(7), AltFunctions: []AltFunction{{"ADC_CH7", "ADC"}, {"SPI1_MOSI", "SPI1"}, {"TIM3_CH2", "TIM3"}}},
		{Number: bluePillPin("A", 8), Label: "PA8", Capabilities: digitalPWM, AltFunctions: []AltFunction{{"TIM1_CH1", "TIM1"}, {"MCO", "MCO"}}},
		{Number: bluePillPin("A", 9), Label: "PA9", Capabilities: digital, AltFunctions: []AltFunction{{"USART1_TX", "USART1"}}},
		{Number: bluePillPin("A", 10), Label: "PA10", Capabilities: digital, AltFunctions: []AltFunction{{"USART1_RX", "USART1"}}},
		{Number: bluePillPin("A", 11), Label: "PA11", Capabilities: digital,
			AltFunctions: []AltFunction{{"USB_DM", "USB"}, {"CAN_RX", "CAN"}},
			Flags:        []ConflictFlag{FlagUSB},
			Notes:        "USB D-. Shared with the onboard micro-USB connector on most Blue Pill boards."},
		{Number: bluePillPin("A", 12), Label: "PA12", Capabilities: digital,
			AltFunctions: []AltFunction{{"USB_DP", "USB"}, {"CAN_TX", "CAN"}},
			Flags:        []ConflictFlag{FlagUSB},
			Notes:        "USB D+. Shared with the onboard micro-USB connector on most Blue Pill boards."},
		{Number: bluePillPin("A", 13), Label: "PA13", Capabilities: digital,
			AltFunctions: []AltFunction{{"SWDIO", "SWD"}},
			Flags:        []ConflictFlag{FlagSWD},
			Notes:        "SWDIO. Remapping away from SWD requires disabling the debug port in firmware, making the chip un-debuggable afterward."},
		{Number: bluePillPin("A", 14), Label: "PA14", Capabilities: digital,
			AltFunctions: []AltFunction{{"SWCLK", "SWD"}},
			Flags:        []ConflictFlag{FlagSWD},
			Notes:        "SWCLK. See PA13."},
		{Number: bluePillPin("A", 15), Label: "PA15", Capabilities: digital, AltFunctions: []AltFunction{{"SPI1_NSS_REMAP", "SPI1"}, {"JTDI", "JTAG"}}},

		{Number: bluePillPin("B", 0), Label: "PB0", Capabilities: analogPWM(8), AltFunctions: []AltFunction{{"ADC_CH8", "ADC"}, {"TIM3_CH3", "TIM3"}}},
		{Number: bluePillPin("B", 1), Label: "PB1", Capabilities: analogPWM(9), AltFunctions: []AltFunction{{"ADC_CH9", "ADC"}, {"TIM3_CH4", "TIM3"}}},
		{Number: bluePillPin("B", 2), Label: "PB2", Capabilities: digital, Notes: "BOOT1. Sampled at reset alongside BOOT0 to select the boot loader."},
		{Number: bluePillPin("B", 3), Label: "PB3", Capabilities: digitalPWM, AltFunctions: []AltFunction{{"SPI1_SCK_REMAP", "SPI1"}, {"JTDO", "JTAG"}, {"TIM2_CH2_REMAP", "TIM2"}}},
		{Number: bluePillPin("B", 4), Label: "PB4", Capabilities: digitalPWM, AltFunctions: []AltFunction{{"SPI1_MISO_REMAP", "SPI1"}, {"JTRST", "JTAG"}, {"TIM3_CH1_REMAP", "TIM3"}}},
		{Number: bluePillPin("B", 5), Label: "PB5", Capabilities: digital, AltFunctions: []AltFunction{{"SPI1_MOSI_REMAP", "SPI1"}, {"I2C1_SMBA", "I2C1"}}},
		{Number: bluePillPin("B", 6), Label: "PB6", Capabilities: digitalPWM, AltFunctions: []AltFunction{{"I2C1_SCL", "I2C1"}, {"TIM4_CH1", "TIM4"}}},
		{Number: bluePillPin("B", 7), Label: "PB7", Capabilities: digitalPWM, AltFunctions: []AltFunction{{"I2C1_SDA", "I2C1"}, {"TIM4_CH2", "TIM4"}}},
		{Number: bluePillPin("B", 8), Label: "PB8", Capabilities: digitalPWM, AltFunctions: []AltFunction{{"TIM4_CH3", "TIM4"}, {"CAN_RX", "CAN"}}},
		{Number: bluePillPin("B", 9), Label: "PB9", Capabilities: digitalPWM, AltFunctions: []AltFunction{{"TIM4_CH4", "TIM4"}, {"CAN_TX", "CAN"}}},
		{Number: bluePillPin("B", 10), Label: "PB10", Capabilities: digital, AltFunctions: []AltFunction{{"I2C2_SCL", "I2C2"}, {"USART3_TX", "USART3"}}},
		{Number: bluePillPin("B", 11), Label: "PB11", Capabilities: digital, AltFunctions: []AltFunction{{"I2C2_SDA", "I2C2"}, {"USART3_RX", "USART3"}}},
		{Number: bluePillPin("B", 12), Label: "PB12", Capabilities: digital, AltFunctions: []AltFunction{{"SPI2_NSS", "SPI2"}}},
		{Number: bluePillPin("B", 13), Label: "PB13", Capabilities: digital, AltFunctions: []AltFunction{{"SPI2_SCK", "SPI2"}}},
		{Number: bluePillPin("B", 14), Label: "PB14", Capabilities: digital, AltFunctions: []AltFunction{{"SPI2_MISO", "SPI2"}}},
		{Number: bluePillPin("B", 15), Label: "PB15", Capabilities: digital, AltFunctions: []AltFunction{{"SPI2_MOSI", "SPI2"}}},

		{Number: bluePillPin("C", 13), Label: "PC13", Capabilities: digital, Notes: "Wired to the onboard LED (active-low) on most Blue Pill boards."},
		{Number: bluePillPin("C", 14), Label: "PC14", Capabilities: digital, Notes: "Shared with the 32.768kHz RTC crystal if one is populated; low drive strength."},
		{Number: bluePillPin("C", 15), Label: "PC15", Capabilities: digital, Notes: "Shared with the 32.768kHz RTC crystal if one is populated; low drive strength."},
	}

	register(Board{ID: STM32BluePill, Name: "STM32F103C8T6 Blue Pill", Pins: pins})
}
