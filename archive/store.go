// SPDX-License-Identifier: MIT

// Package archive persists barcodes per optimization step.
//
// A run is a sequence of steps (e.g. gradient-descent iterations); each
// step stores one Record. Backends: MemoryStore, BadgerStore, SQLiteStore.
// All share the JSON codec in codec.go, which keeps ±Inf and NaN intact.
package archive

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/phom/barcode"
)

var (
	ErrNotInitialized  = errors.New("archive: store is not initialized")
	ErrInvalidRecord   = errors.New("archive: record needs a NUL-free run id and a non-negative step")
	ErrVersionMismatch = errors.New("archive: record version mismatch")
	ErrUnsupported     = errors.New("archive: unsupported store backend")
)

// Record is one archived barcode.
type Record struct {
	RunID         string
	Step          int
	Barcode       barcode.Barcode
	Metrics       map[string]float64 // optional scalars (loss, features)
	SchemaVersion int
	CodecVersion  int
}

// Store is implemented by every backend. Get reports ok=false for a missing
// record; Steps returns the stored steps of a run in ascending order.
type Store interface {
	Init(ctx context.Context) error
	Save(ctx context.Context, rec Record) error
	Get(ctx context.Context, runID string, step int) (Record, bool, error)
	Steps(ctx context.Context, runID string) ([]int, error)
	Close() error
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string { return uuid.NewString() }

// stamp validates rec and fills zero versions with the current ones.
func stamp(rec Record) (Record, error) {
	// NUL separates the run id from the step in badger keys.
	if rec.RunID == "" || rec.Step < 0 || strings.IndexByte(rec.RunID, 0) >= 0 {
		return Record{}, ErrInvalidRecord
	}
	if rec.SchemaVersion == 0 {
		rec.SchemaVersion = CurrentSchemaVersion
	}
	if rec.CodecVersion == 0 {
		rec.CodecVersion = CurrentCodecVersion
	}
	return rec, nil
}
