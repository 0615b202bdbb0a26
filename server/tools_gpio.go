// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/benchtop-tools/elex-mcp/gpio"
)

func (s *Server) registerGPIOTools() {
	boardArg := func(desc string) mcp.ToolOption {
		return mcp.WithString("board", mcp.Description(desc), mcp.Required())
	}

	s.mcp.AddTool(mcp.NewTool("get_pin_info",
		mcp.WithDescription("Look up a single pin's capabilities, alternate functions and conflict flags"),
		boardArg("Board id: ESP32, Arduino UNO or STM32 Blue Pill"),
		mcp.WithNumber("pin_number", mcp.Description("Pin number in the board's own addressing scheme"), mcp.Required()),
	), s.handleGetPinInfo)

	s.mcp.AddTool(mcp.NewTool("find_pwm_pins",
		mcp.WithDescription("List every PWM-capable pin on a board"),
		boardArg("Board id: ESP32, Arduino UNO or STM32 Blue Pill"),
	), s.handleFindPWMPins)

	s.mcp.AddTool(mcp.NewTool("find_adc_pins",
		mcp.WithDescription("List every ADC-capable pin on a board, grouped by ADC unit where the board has more than one"),
		boardArg("Board id: ESP32, Arduino UNO or STM32 Blue Pill"),
	), s.handleFindADCPins)

	s.mcp.AddTool(mcp.NewTool("find_i2c_pins",
		mcp.WithDescription("List every I2C SDA/SCL pin on a board, grouped by bus"),
		boardArg("Board id: ESP32, Arduino UNO or STM32 Blue Pill"),
	), s.handleFindI2CPins)

	s.mcp.AddTool(mcp.NewTool("find_spi_pins",
		mcp.WithDescription("List every SPI MOSI/MISO/SCK/CS pin on a board, grouped by bus"),
		boardArg("Board id: ESP32, Arduino UNO or STM32 Blue Pill"),
	), s.handleFindSPIPins)

	s.mcp.AddTool(mcp.NewTool("check_pin_conflict",
		mcp.WithDescription("Report ERROR/WARNING/INFO advisories for a set of pins a caller intends to use simultaneously"),
		boardArg("Board id: ESP32, Arduino UNO or STM32 Blue Pill"),
		mcp.WithArray("pin_numbers", mcp.Description("Pin numbers to check together"), mcp.Required()),
	), s.handleCheckPinConflict)

	s.mcp.AddTool(mcp.NewTool("generate_pin_diagram_ascii",
		mcp.WithDescription("Render a fixed-width ASCII diagram of the board's pin header"),
		boardArg("Board id: ESP32, Arduino UNO or STM32 Blue Pill"),
	), s.handleGeneratePinDiagramASCII)
}

func (s *Server) handleGetPinInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	board := argString(args, "board", "")
	pin := int(argFloat(args, "pin_number", 0))

	b, p, err := gpio.GetPinInfo(board, pin)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(gpio.RenderPinInfo(b, p)), nil
}

func (s *Server) handleFindPWMPins(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	board := argString(args, "board", "")

	b, pins, err := gpio.FindPWMPins(board)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(gpio.RenderDiscovered(b, "PWM-capable pins", pins, false)), nil
}

func (s *Server) handleFindADCPins(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	board := argString(args, "board", "")

	b, pins, err := gpio.FindADCPins(board)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(gpio.RenderDiscovered(b, "ADC-capable pins", pins, true)), nil
}

func (s *Server) handleFindI2CPins(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	board := argString(args, "board", "")

	b, pins, err := gpio.FindI2CPins(board)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(gpio.RenderDiscovered(b, "I2C pins", pins, true)), nil
}

func (s *Server) handleFindSPIPins(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	board := argString(args, "board", "")

	b, pins, err := gpio.FindSPIPins(board)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(gpio.RenderDiscovered(b, "SPI pins", pins, true)), nil
}

func (s *Server) handleCheckPinConflict(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	board := argString(args, "board", "")
	pins, err := argIntSlice(args, "pin_numbers")
	if err != nil {
		return toToolError(err), nil
	}

	report, err := gpio.CheckPinConflict(board, pins)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(gpio.RenderConflictReport(report)), nil
}

func (s *Server) handleGeneratePinDiagramASCII(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	board := argString(args, "board", "")

	diagram, err := gpio.GeneratePinDiagramASCII(board)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(diagram), nil
}
