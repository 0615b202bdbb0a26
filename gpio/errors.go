// Copyright 2016 The PIO Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

// Kind is one of the closed enumeration of GPIO-engine error kinds from
// spec.md §7.
type Kind string

const (
	KindUnknownBoard   Kind = "UnknownBoard"
	KindUnknownPin     Kind = "UnknownPin"
	KindFlashReserved  Kind = "FlashReserved"
)

// DomainError is a validation failure from the GPIO engine.
type DomainError struct {
	Kind    Kind
	Message string
}

func (e *DomainError) Error() string { return e.Message }
