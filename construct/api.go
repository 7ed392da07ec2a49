// SPDX-License-Identifier: MIT
// Package: phom/construct
//
// api.go — the Build orchestrator and the Constructor contract.
//
// Contract:
//   - Build creates the complex, resolves options once and runs constructors
//     in order. The first error aborts; no partial cleanup.
//   - Constructors validate parameters before appending anything and return
//     wrapped sentinels, never panic.
//   - Same inputs and constructor order ⇒ identical arenas (indices included).

package construct

import (
	"fmt"

	"github.com/katalvlaran/phom/simplicial"
)

// Constructor appends simplices to c using the resolved config.
type Constructor func(c *simplicial.Complex, cfg config) error

// Build returns a new complex populated by cons, applied in order.
// Constructor errors are wrapped as "Build: %w".
// Complexity: Σ cost of constructors.
func Build(opts []Option, cons ...Constructor) (*simplicial.Complex, error) {
	c := simplicial.New()
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return c, nil
}
