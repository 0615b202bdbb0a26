// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/benchtop-tools/elex-mcp/resistor"
)

func (s *Server) registerResistorTools() {
	s.mcp.AddTool(mcp.NewTool("decode_resistor_color_bands",
		mcp.WithDescription("Decode a resistor's painted color bands into a resistance value and tolerance"),
		mcp.WithArray("bands",
			mcp.Description("Band color names in order, e.g. [\"brown\",\"black\",\"red\",\"gold\"]"),
			mcp.Required(),
		),
	), s.handleDecodeResistorColorBands)

	s.mcp.AddTool(mcp.NewTool("encode_resistor_value",
		mcp.WithDescription("Encode a resistance and tolerance into color bands"),
		mcp.WithNumber("resistance", mcp.Description("Resistance in ohms"), mcp.Required()),
		mcp.WithNumber("tolerance", mcp.Description("Tolerance in percent"), mcp.DefaultNumber(5.0)),
		mcp.WithBoolean("prefer_5band", mcp.Description("Use 3 digit bands (5-band form) instead of 2 (4-band form)")),
	), s.handleEncodeResistorValue)

	s.mcp.AddTool(mcp.NewTool("find_standard_resistor",
		mcp.WithDescription("Snap a target resistance to the nearest value in a preferred-number series"),
		mcp.WithNumber("target_value", mcp.Description("Target resistance in ohms"), mcp.Required()),
		mcp.WithString("series", mcp.Description("E12, E24 or E96"), mcp.DefaultString("E12")),
	), s.handleFindStandardResistor)
}

func (s *Server) handleDecodeResistorColorBands(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	bands, err := argStringSlice(args, "bands")
	if err != nil {
		return toToolError(err), nil
	}
	d, err := resistor.DecodeColorBands(bands)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(resistor.RenderDecoded(d)), nil
}

func (s *Server) handleEncodeResistorValue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	ohms := argFloat(args, "resistance", 0)
	tolerance := argFloat(args, "tolerance", 5.0)
	prefer5Band := argBool(args, "prefer_5band", false)

	r, err := resistor.EncodeResistance(ohms, tolerance, prefer5Band)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(resistor.RenderEncoded(ohms, tolerance, r)), nil
}

func (s *Server) handleFindStandardResistor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(req)
	target := argFloat(args, "target_value", 0)
	series := argString(args, "series", "E12")

	r, err := resistor.FindStandardResistor(target, series)
	if err != nil {
		return toToolError(err), nil
	}
	return mcp.NewToolResultText(resistor.RenderStandardResult(r)), nil
}
