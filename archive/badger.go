// SPDX-License-Identifier: MIT
// Package: phom/archive
//
// badger.go — BadgerDB backend.
//
// Key layout (single-byte prefix, as in a graph store):
//
//	0x01 | runID | 0x00 | step (8 bytes, big-endian) → EncodeRecord payload
//
// Big-endian steps make a prefix scan over one run return steps in order.

package archive

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

const (
	prefixRecord = byte(0x01)
	keySeparator = byte(0x00)
)

// BadgerOptions configures a BadgerStore.
type BadgerOptions struct {
	// Dir is the data directory; ignored when InMemory is set.
	Dir string
	// InMemory keeps everything in RAM (tests, throwaway runs).
	InMemory bool
	// SyncWrites fsyncs after each write.
	SyncWrites bool
	// Logger receives badger's own logs; nil silences them.
	Logger badger.Logger
}

// BadgerStore archives records in a BadgerDB key-value store.
type BadgerStore struct {
	opts BadgerOptions

	mu sync.RWMutex
	db *badger.DB
}

func NewBadgerStore(opts BadgerOptions) *BadgerStore {
	return &BadgerStore{opts: opts}
}

func (s *BadgerStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}
	if !s.opts.InMemory && s.opts.Dir == "" {
		return errors.New("archive: badger directory is required")
	}

	bopts := badger.DefaultOptions(s.opts.Dir)
	if s.opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	bopts = bopts.
		WithSyncWrites(s.opts.SyncWrites).
		WithLogger(s.opts.Logger).
		WithMemTableSize(16 << 20).
		WithValueLogFileSize(64 << 20).
		WithNumMemtables(2).
		WithBlockCacheSize(32 << 20)

	db, err := badger.Open(bopts)
	if err != nil {
		return fmt.Errorf("archive: open badger: %w", err)
	}
	s.db = db
	return nil
}

func (s *BadgerStore) Save(_ context.Context, rec Record) error {
	rec, err := stamp(rec)
	if err != nil {
		return err
	}
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeRecord(rec)
	if err != nil {
		return err
	}
	return db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(rec.RunID, rec.Step), payload)
	})
}

func (s *BadgerStore) Get(_ context.Context, runID string, step int) (Record, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Record{}, false, err
	}
	if step < 0 {
		return Record{}, false, nil
	}

	var (
		rec   Record
		found bool
	)
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(runID, step))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			var decodeErr error
			rec, decodeErr = DecodeRecord(val)
			return decodeErr
		})
	})
	if err != nil {
		return Record{}, false, fmt.Errorf("decode record %s/%d: %w", runID, step, err)
	}
	return rec, found, nil
}

func (s *BadgerStore) Steps(_ context.Context, runID string) ([]int, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	var steps []int
	prefix := runPrefix(runID)
	err = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			steps = append(steps, int(binary.BigEndian.Uint64(key[len(prefix):])))
		}
		return nil
	})
	return steps, err
}

func (s *BadgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *BadgerStore) getDB() (*badger.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

// runPrefix returns prefix | runID | separator.
func runPrefix(runID string) []byte {
	key := make([]byte, 0, len(runID)+2)
	key = append(key, prefixRecord)
	key = append(key, runID...)
	return append(key, keySeparator)
}

func recordKey(runID string, step int) []byte {
	return binary.BigEndian.AppendUint64(runPrefix(runID), uint64(step))
}
