// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// elex-mcp-server serves the resistor codec, capacitor kernel and GPIO
// engine as MCP tools over stdio.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/benchtop-tools/elex-mcp/server"
)

var version = "dev"

func mainImpl() error {
	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	s := server.New(version, logger)
	return s.Serve(context.Background())
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "elex-mcp-server: %s.\n", err)
		os.Exit(1)
	}
}
