// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package server

import "github.com/pkg/errors"

// argString, argFloat, argBool, argStringSlice and argIntSlice read a typed value out of a tool call's raw JSON arguments
// (decoded into map[string]interface{} by the MCP runtime). They exist
// because mcp.NewTool's schema only constrains shape at the protocol level;
// the handler still receives interface{} and must assert it.

func argString(args map[string]interface{}, key, def string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func argFloat(args map[string]interface{}, key string, def float64) float64 {
	if v, ok := args[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return def
}

func argBool(args map[string]interface{}, key string, def bool) bool {
	if v, ok := args[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

func argStringSlice(args map[string]interface{}, key string) ([]string, error) {
	v, ok := args[key]
	if !ok {
		return nil, errors.Errorf("missing required argument %q", key)
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil, errors.Errorf("argument %q must be an array of strings", key)
	}
	out := make([]string, len(raw))
	for i, e := range raw {
		s, ok := e.(string)
		if !ok {
			return nil, errors.Errorf("argument %q[%d] must be a string", key, i)
		}
		out[i] = s
	}
	return out, nil
}

func argIntSlice(args map[string]interface{}, key string) ([]int, error) {
	v, ok := args[key]
	if !ok {
		return nil, errors.Errorf("missing required argument %q", key)
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil, errors.Errorf("argument %q must be an array of integers", key)
	}
	out := make([]int, len(raw))
	for i, e := range raw {
		n, ok := e.(float64) // encoding/json decodes all JSON numbers as float64
		if !ok {
			return nil, errors.Errorf("argument %q[%d] must be a number", key, i)
		}
		out[i] = int(n)
	}
	return out, nil
}
