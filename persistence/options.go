// SPDX-License-Identifier: MIT
// Package: phom/persistence
//
// options.go — functional options for Compute and ComputeBatch.
//
// Contract:
//   - Option constructors panic on nonsensical values (programmer error);
//     Compute itself never panics on user input.
//   - Later options override earlier ones.
//   - Defaults below are the single source of truth.

package persistence

import (
	"runtime"

	"github.com/katalvlaran/phom/filtration"
)

const (
	// DefaultKind is the lower-star extension of per-vertex values.
	DefaultKind = filtration.LowerStar

	// DefaultSublevel sweeps thresholds upward.
	DefaultSublevel = true

	// DefaultMaxDim computes H0 and H1.
	DefaultMaxDim = 1

	// DefaultValidate skips simplicial.Validate; it costs a full pass over
	// the complex on every call.
	DefaultValidate = false

	// DefaultAcyclicityCheck verifies the pairing counts after reduction.
	DefaultAcyclicityCheck = true
)

const (
	panicMaxDimNegative   = "persistence: WithMaxDim: d must be non-negative"
	panicConcurrencyRange = "persistence: WithConcurrency: n must be ≥ 1"
	panicKindUnknown      = "persistence: WithKind: unknown filtration kind"
)

// Option mutates internal options.
type Option func(*options)

type options struct {
	kind        filtration.Kind
	sublevel    bool
	maxDim      int
	validate    bool
	acyclicity  bool
	columnOnly  bool
	concurrency int // ComputeBatch only; 0 = GOMAXPROCS
}

// WithKind selects the filtration variant. Panics on an unknown Kind.
func WithKind(k filtration.Kind) Option {
	if !k.Valid() {
		panic(panicKindUnknown)
	}
	return func(o *options) { o.kind = k }
}

// WithSublevel chooses sublevel (true) or superlevel (false) sweeps.
func WithSublevel(sublevel bool) Option {
	return func(o *options) { o.sublevel = sublevel }
}

// WithSuperlevel is WithSublevel(false).
func WithSuperlevel() Option { return WithSublevel(false) }

// WithMaxDim bounds the homology dimensions computed. Dimensions beyond the
// complex yield empty bar lists. Panics when d < 0.
func WithMaxDim(d int) Option {
	if d < 0 {
		panic(panicMaxDimNegative)
	}
	return func(o *options) { o.maxDim = d }
}

// WithValidation runs simplicial.Validate before every forward pass.
func WithValidation() Option {
	return func(o *options) { o.validate = true }
}

// WithoutAcyclicityCheck skips reduction.CheckAccounting. Use it for
// complexes known to carry essential higher classes (cycles, spheres).
func WithoutAcyclicityCheck() Option {
	return func(o *options) { o.acyclicity = false }
}

// WithColumnReductionOnly disables the union-find path for dimension 0.
func WithColumnReductionOnly() Option {
	return func(o *options) { o.columnOnly = true }
}

// WithConcurrency caps ComputeBatch workers. Panics when n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyRange)
	}
	return func(o *options) { o.concurrency = n }
}

func gatherOptions(opts ...Option) options {
	o := options{
		kind:       DefaultKind,
		sublevel:   DefaultSublevel,
		maxDim:     DefaultMaxDim,
		validate:   DefaultValidate,
		acyclicity: DefaultAcyclicityCheck,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency == 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}

	return o
}
