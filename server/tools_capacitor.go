// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/benchtop-tools/elex-mcp/capacitor"
)

func (s *Server) registerCapacitorTools() {
	s.mcp.AddTool(mcp.NewTool("calculate_capacitive_reactance",
		mcp.WithDescription("Compute Xc = 1/(2*pi*f*C), and current if a voltage is given"),
		mcp.WithNumber("capacitance", mcp.Description("Capacitance in farads"), mcp.Required()),
		mcp.WithNumber("frequency", mcp.Description("Frequency in hertz"), mcp.Required()),
		mcp.WithNumber("voltage", mcp.Description("Optional RMS voltage across the capacitor, in volts")),
	), s.handleCalculateCapacitiveReactance)

	s.mcp.AddTool(mcp.NewTool("calculate_rc_time_constant",
		mcp.WithDescription("Compute tau = R*C and the charge-curve table for 1..5 time constants"),
		mcp.WithNumber("resistance", mcp.Description("Resistance in ohms"), mcp.Required()),
		mcp.WithNumber("capacitance", mcp.Description("Capacitance in farads"), mcp.Required()),
	), s.handleCalculateRCTimeConstant)

	s.mcp.AddTool(mcp.NewTool("calculate_resonant_frequency",
		mcp.WithDescription("Compute f0 = 1/(2*pi*sqrt(L*C)) for an LC tank, and its usable band"),
		mcp.WithNumber("inductance", mcp.Description("Inductance in henries"), mcp.Required()),
		mcp.WithNumber("capacitance", mcp.Description("Capacitance in farads"), mcp.Required()),
	), s.handleCalculateResonantFrequency)

	s.mcp.AddTool(mcp.NewTool("suggest_capacitor_for_filter",
		mcp.WithDescription("Suggest an E12-valued capacitor for a single-pole RC low-pass filter at a target cutoff"),
		mcp.WithNumber("resistance", mcp.Description("Resistance in ohms"), mcp.Required()),
		mcp.WithNumber("cutoff_frequency", mcp.Description("Target cutoff frequency in hertz"), mcp.Required()),
	), s.handleSuggestCapacitorForFilter)
}

func (s *Server) handleCalculateCapacitiveReactance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	c := argFloat(args, "capacitance", 0)
	f := argFloat(args, "frequency", 0)
	v := argFloat(args, "voltage", 0)

	r, err := capacitor.ComputeReactance(c, f, v)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(capacitor.RenderReactance(r)), nil
}

func (s *Server) handleCalculateRCTimeConstant(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	r := argFloat(args, "resistance", 0)
	c := argFloat(args, "capacitance", 0)

	result, err := capacitor.ComputeRCTimeConstant(r, c)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(capacitor.RenderRC(result)), nil
}

func (s *Server) handleCalculateResonantFrequency(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	l := argFloat(args, "inductance", 0)
	c := argFloat(args, "capacitance", 0)

	result, err := capacitor.ComputeResonantFrequency(l, c)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(capacitor.RenderResonant(result)), nil
}

func (s *Server) handleSuggestCapacitorForFilter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	r := argFloat(args, "resistance", 0)
	fc := argFloat(args, "cutoff_frequency", 0)

	result, err := capacitor.SuggestCapacitorForFilter(r, fc)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(capacitor.RenderFilterSuggestion(result)), nil
}
