// SPDX-License-Identifier: MIT
// Package: phom/persistence
//
// handle.go — the opaque forward/backward linkage.
//
// A Handle owns the transient state of exactly one forward call. Release
// drops it; afterwards Gradient fails with ErrInvalidPairingHandle. The
// state pointer is atomic so Release may race with Gradient safely.

package persistence

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/katalvlaran/phom/barcode"
	"github.com/katalvlaran/phom/filtration"
	"github.com/katalvlaran/phom/reduction"
)

// Handle links a forward Compute call to its backward Gradient call.
// The zero value is not a valid handle.
type Handle struct {
	id    uuid.UUID
	state atomic.Pointer[forward]
}

// forward is everything the backward pass needs from one Compute call.
type forward struct {
	order   *filtration.Order
	pairing *reduction.Pairing
	index   barcode.Index
}

func newHandle(f *forward) *Handle {
	h := &Handle{id: uuid.New()}
	h.state.Store(f)

	return h
}

// ID returns a unique identifier for logs and archives.
func (h *Handle) ID() string {
	if h == nil {
		return ""
	}
	return h.id.String()
}

// Release drops the retained order, pairing and selection record.
// Idempotent; safe on nil.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.state.Store(nil)
}

// Pairing returns the reduced pairing for diagnostics, or nil once released.
// The result is read-only.
func (h *Handle) Pairing() *reduction.Pairing {
	if f := h.live(); f != nil {
		return f.pairing
	}
	return nil
}

// Order returns the filtration order for diagnostics, or nil once released.
// The result is read-only.
func (h *Handle) Order() *filtration.Order {
	if f := h.live(); f != nil {
		return f.order
	}
	return nil
}

func (h *Handle) live() *forward {
	if h == nil || h.id == uuid.Nil {
		return nil
	}
	return h.state.Load()
}
