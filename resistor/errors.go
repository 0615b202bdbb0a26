// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package resistor

// Kind is one of the closed enumeration of resistor-codec error kinds from
// spec.md §7.
type Kind string

const (
	KindInvalidColor      Kind = "InvalidColor"
	KindInvalidBandCount  Kind = "InvalidBandCount"
	KindInvalidTolerance  Kind = "InvalidTolerance"
)

// DomainError is a validation failure from the resistor codec. It is never
// panicked or returned as a bare error out of band — callers (the server
// package) map Kind to the MCP tool-error response.
type DomainError struct {
	Kind    Kind
	Message string
	Hint    string
}

func (e *DomainError) Error() string {
	if e.Hint != "" {
		return e.Message + " (" + e.Hint + ")"
	}
	return e.Message
}
