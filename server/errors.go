// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// toToolError maps a domain error to an MCP tool-error result, per
// spec.md §6.2/§7: error text begins with "✗ ".
func toToolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("✗ %s", err.Error()))
}
