// SPDX-License-Identifier: MIT

package archive

import "fmt"

// NewStore returns an uninitialized store for kind:
//   - "" or "memory": MemoryStore (path ignored);
//   - "badger": BadgerStore in path, in memory when path is empty;
//   - "sqlite": SQLiteStore at path (required).
func NewStore(kind, path string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "badger":
		return NewBadgerStore(BadgerOptions{Dir: path, InMemory: path == ""}), nil
	case "sqlite":
		return NewSQLiteStore(path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}
}
