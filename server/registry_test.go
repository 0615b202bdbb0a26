// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package server

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger, err := zap.NewDevelopment()
	if err != nil {
		t.Fatalf("failed to build test logger: %v", err)
	}
	return New("test", logger)
}

func callTool(s *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args

	switch name {
	case "decode_resistor_color_bands":
		result, _ := s.handleDecodeResistorColorBands(context.Background(), req)
		return result
	case "encode_resistor_value":
		result, _ := s.handleEncodeResistorValue(context.Background(), req)
		return result
	case "find_standard_resistor":
		result, _ := s.handleFindStandardResistor(context.Background(), req)
		return result
	case "calculate_capacitive_reactance":
		result, _ := s.handleCalculateCapacitiveReactance(context.Background(), req)
		return result
	case "calculate_rc_time_constant":
		result, _ := s.handleCalculateRCTimeConstant(context.Background(), req)
		return result
	case "check_pin_conflict":
		result, _ := s.handleCheckPinConflict(context.Background(), req)
		return result
	case "get_pin_info":
		result, _ := s.handleGetPinInfo(context.Background(), req)
		return result
	}
	panic("unknown tool in test: " + name)
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	if tc, ok := r.Content[0].(mcp.TextContent); ok {
		return tc.Text
	}
	return ""
}

func TestDecodeResistorColorBandsTool(t *testing.T) {
	s := newTestServer(t)
	result := callTool(s, "decode_resistor_color_bands", map[string]interface{}{
		"bands": []interface{}{"brown", "black", "red", "gold"},
	})
	text := resultText(result)
	if !strings.Contains(text, "kΩ") {
		t.Errorf("expected an SI-prefixed ohm value in %q", text)
	}
	if !strings.Contains(text, "5") {
		t.Errorf("expected the tolerance percent in %q", text)
	}
}

func TestDecodeResistorColorBandsToolInvalidColor(t *testing.T) {
	s := newTestServer(t)
	result := callTool(s, "decode_resistor_color_bands", map[string]interface{}{
		"bands": []interface{}{"gold", "black", "red", "gold"},
	})
	text := resultText(result)
	if !strings.HasPrefix(text, "✗") {
		t.Errorf("expected an error-marked result, got %q", text)
	}
	if !result.IsError {
		t.Errorf("expected IsError to be set on a domain error result")
	}
}

func TestFindStandardResistorTool(t *testing.T) {
	s := newTestServer(t)
	result := callTool(s, "find_standard_resistor", map[string]interface{}{
		"target_value": 3300.0,
		"series":       "E12",
	})
	text := resultText(result)
	if !strings.Contains(text, "3.30kΩ") && !strings.Contains(text, "3.3kΩ") {
		t.Errorf("expected the exact 3300 ohm value in %q", text)
	}
}

func TestCalculateRCTimeConstantTool(t *testing.T) {
	s := newTestServer(t)
	result := callTool(s, "calculate_rc_time_constant", map[string]interface{}{
		"resistance":  10000.0,
		"capacitance": 1e-4,
	})
	text := resultText(result)
	if !strings.Contains(text, "63.2%") {
		t.Errorf("expected the 1-tau charge percentage in %q", text)
	}
}

func TestCheckPinConflictTool(t *testing.T) {
	s := newTestServer(t)
	result := callTool(s, "check_pin_conflict", map[string]interface{}{
		"board":       "ESP32",
		"pin_numbers": []interface{}{0.0, 2.0, 6.0, 12.0},
	})
	text := resultText(result)
	if !strings.Contains(text, "ERROR") {
		t.Errorf("expected an ERROR advisory in %q", text)
	}
	if !strings.Contains(text, "WARNING") {
		t.Errorf("expected a WARNING advisory in %q", text)
	}
}

func TestGetPinInfoToolUnknownBoard(t *testing.T) {
	s := newTestServer(t)
	result := callTool(s, "get_pin_info", map[string]interface{}{
		"board":      "potato",
		"pin_number": 1.0,
	})
	if !result.IsError {
		t.Errorf("expected an error result for an unknown board")
	}
}
