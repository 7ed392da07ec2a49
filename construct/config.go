// SPDX-License-Identifier: MIT
// Package: phom/construct
//
// config.go — resolved options and the shared append path.
//
// config is passed to constructors by value; the dedup set is a map and is
// therefore shared by every constructor of one Build call.

package construct

import (
	"strconv"

	"github.com/katalvlaran/phom/simplicial"
)

// Option customizes Build.
type Option func(*config)

type config struct {
	closure bool
	seen    map[string]struct{} // canonical keys, closure mode only
}

// WithClosure makes every constructor append the missing faces of each
// simplex before the simplex itself and skip simplices already present.
// Useful for hand-written inputs; built-in topologies are closed already.
func WithClosure() Option {
	return func(c *config) { c.closure = true }
}

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.closure {
		cfg.seen = make(map[string]struct{})
	}

	return cfg
}

// emit appends vertices (sorted ascending) to c, honoring closure mode.
func (cfg config) emit(c *simplicial.Complex, vertices ...int) {
	if !cfg.closure {
		c.Append(vertices...)
		return
	}
	cfg.emitClosed(c, vertices)
}

// emitClosed appends the faces of s depth-first, then s, skipping known keys.
func (cfg config) emitClosed(c *simplicial.Complex, s []int) {
	k := keyOf(s)
	if _, ok := cfg.seen[k]; ok {
		return
	}
	if len(s) > 1 {
		face := make([]int, 0, len(s)-1)
		for omit := range s {
			face = face[:0]
			face = append(face, s[:omit]...)
			face = append(face, s[omit+1:]...)
			cfg.emitClosed(c, face)
		}
	}
	cfg.seen[k] = struct{}{}
	c.Append(s...)
}

func keyOf(s []int) string {
	b := make([]byte, 0, 4*len(s))
	for i, v := range s {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}

	return string(b)
}
