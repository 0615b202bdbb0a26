// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

import (
	"strings"
	"testing"
)

func TestGeneratePinDiagramASCIIAllBoards(t *testing.T) {
	for _, board := range []string{"ESP32", "Arduino UNO", "STM32"} {
		out, err := GeneratePinDiagramASCII(board)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", board, err)
		}
		if !strings.Contains(out, "┌") || !strings.Contains(out, "└") {
			t.Errorf("%s: diagram missing box-drawing frame:\n%s", board, out)
		}
	}
}

func TestGeneratePinDiagramASCIIUnknownBoard(t *testing.T) {
	if _, err := GeneratePinDiagramASCII("nonexistent"); err == nil {
		t.Fatalf("expected error for an unrecognized board")
	}
}

func TestGeneratePinDiagramASCIIIsDeterministic(t *testing.T) {
	a, err := GeneratePinDiagramASCII("ESP32")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := GeneratePinDiagramASCII("ESP32")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("expected deterministic output across calls")
	}
}
