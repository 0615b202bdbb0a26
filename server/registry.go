// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package server wires the resistor, capacitor and GPIO packages into
// fourteen MCP tools and serves them over stdio via mark3labs/mcp-go. Every
// handler is a thin adapter: decode arguments, call the matching Compute*
// function, and render either the success text or a tool-error. See
// SPEC_FULL.md §3 ("render vs compute split").
package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Server wraps the MCP runtime server with the logger used across all
// handler adapters.
type Server struct {
	mcp    *server.MCPServer
	logger *zap.SugaredLogger
}

// New creates a Server with all fourteen tools registered, ready to Serve.
func New(version string, logger *zap.Logger) *Server {
	s := &Server{
		mcp:    server.NewMCPServer("elex-mcp", version, server.WithToolCapabilities(false)),
		logger: logger.Sugar(),
	}
	s.registerResistorTools()
	s.registerCapacitorTools()
	s.registerGPIOTools()
	return s
}

// Serve starts the MCP server on stdio, the transport spec.md §6.3 names as
// the default for this deployment.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("serving elex-mcp over stdio")
	return server.ServeStdio(s.mcp)
}

// arguments extracts the raw argument map from a tool call, per the
// mcp.CallToolRequest shape used across mark3labs/mcp-go handlers.
func arguments(req mcp.CallToolRequest) map[string]interface{} {
	if m, ok := req.Params.Arguments.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}
