// SPDX-License-Identifier: MIT

package archive

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/katalvlaran/phom/barcode"
)

// MemoryStore keeps records in maps. Records are deep-copied in and out.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string]map[int]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string]map[int]Record)
	return nil
}

func (s *MemoryStore) Save(_ context.Context, rec Record) error {
	rec, err := stamp(rec)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	steps, ok := s.runs[rec.RunID]
	if !ok {
		steps = make(map[int]Record)
		s.runs[rec.RunID] = steps
	}
	steps[rec.Step] = cloneRecord(rec)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, runID string, step int) (Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return Record{}, false, ErrNotInitialized
	}
	rec, ok := s.runs[runID][step]
	if !ok {
		return Record{}, false, nil
	}
	return cloneRecord(rec), true, nil
}

func (s *MemoryStore) Steps(_ context.Context, runID string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	return slices.Sorted(maps.Keys(s.runs[runID])), nil
}

func (s *MemoryStore) Close() error { return nil }

func cloneRecord(rec Record) Record {
	out := rec
	out.Barcode = barcode.Barcode{Sublevel: rec.Barcode.Sublevel, Dims: make([][]barcode.Bar, len(rec.Barcode.Dims))}
	for d, bars := range rec.Barcode.Dims {
		out.Barcode.Dims[d] = slices.Clone(bars)
	}
	out.Metrics = maps.Clone(rec.Metrics)
	return out
}
