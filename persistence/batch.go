// SPDX-License-Identifier: MIT
// Package: phom/persistence
//
// batch.go — concurrent forward passes over one shared complex.

package persistence

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/phom/barcode"
	"github.com/katalvlaran/phom/simplicial"
)

// Result is one forward pass of a batch.
type Result struct {
	Barcode barcode.Barcode
	Handle  *Handle
}

// ComputeBatch runs Compute for every input in inputs, at most
// WithConcurrency workers at a time (default GOMAXPROCS). Results keep the
// order of inputs. The first error cancels the remaining work and is
// returned with its input position; handles of finished calls are released.
func ComputeBatch(ctx context.Context, c *simplicial.Complex, inputs [][]float64, opts ...Option) ([]Result, error) {
	cfg := gatherOptions(opts...)
	if c == nil {
		return nil, fmt.Errorf("ComputeBatch: nil complex: %w", ErrInvalidComplex)
	}
	c.Freeze()

	out := make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i, values := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bc, h, err := compute(c, values, cfg)
			if err != nil {
				return fmt.Errorf("ComputeBatch: input %d: %w", i, err)
			}
			out[i] = Result{Barcode: bc, Handle: h}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, r := range out {
			r.Handle.Release()
		}
		return nil, err
	}

	return out, nil
}
