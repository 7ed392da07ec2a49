// SPDX-License-Identifier: MIT
// Package: phom/reduction
//
// options.go — functional options for Reduce.

package reduction

// DefaultColumnReductionOnly keeps the union-find fast path for dimension 0.
const DefaultColumnReductionOnly = false

// Option mutates internal options.
type Option func(*options)

type options struct {
	columnOnly bool // DefaultColumnReductionOnly
}

// WithColumnReductionOnly reduces edge columns with the matrix algorithm
// instead of union-find. Pairs are identical; this exists for
// cross-checking and benchmarking.
func WithColumnReductionOnly() Option {
	return func(o *options) { o.columnOnly = true }
}

func gatherOptions(opts ...Option) options {
	o := options{columnOnly: DefaultColumnReductionOnly}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
