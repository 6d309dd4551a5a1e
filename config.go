// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd

import (
	"io"
	"log/slog"
	"time"
)

// _DEFAULTNODETABLESIZE and _DEFAULTCACHESIZE mirror the role of rudd's
// _MINFREENODES / _DEFAULTMAXNODEINC constants (config.go): starting
// capacities that keep small diagrams cheap without forcing every store to
// pre-size for a million nodes.
const _DEFAULTNODETABLESIZE = 256
const _DEFAULTCACHESIZE = 256
const _DEFAULTLPTIMEOUT = 2 * time.Second

// config holds the tunable parameters of a Store. Unlike rudd's
// config (config.go in dalzilio/rudd), there is no notion of a fixed
// Varnum or of resizing an array-backed node table: the store's tables are
// Go maps that grow on their own. What remains configurable is how much
// capacity to pre-allocate, the LP solver's time budget, and where to send
// log output.
type config struct {
	nodeTableSize int
	cacheSize     int
	lpTimeout     time.Duration
	logger        *slog.Logger
}

func defaultConfig() *config {
	return &config{
		nodeTableSize: _DEFAULTNODETABLESIZE,
		cacheSize:     _DEFAULTCACHESIZE,
		lpTimeout:     _DEFAULTLPTIMEOUT,
		logger:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
}

// Option is a configuration option (function). Used as a parameter to New,
// generalizing the functional-options pattern rudd exposes in
// config.go (Nodesize, Cachesize, Cacheratio, ...).
type Option func(*config)

// WithNodeTableSize sets a preferred initial capacity for the node and
// decision tables. The tables grow on demand; this only avoids a few
// reallocations for diagrams known to be large up front.
func WithNodeTableSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.nodeTableSize = size
		}
	}
}

// WithCacheSize sets a preferred initial capacity for the memoization
// tables (apply/unary/canonicalize/reduce-lp).
func WithCacheSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.cacheSize = size
		}
	}
}

// WithLPTimeout bounds how long the LP backend may spend discharging a
// single feasibility query in ReduceLP before the store treats the
// solver as unavailable (SolverUnavailable degrades to identity
// reduction with a warning, it never blocks reduction indefinitely).
func WithLPTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.lpTimeout = d
		}
	}
}

// WithLogger overrides the structured logger used for recoverable
// warnings (SolverUnavailable) and internal diagnostics. The default
// discards all output, mirroring aretw0-trellis's default of a JSON
// handler writing to io.Discard until a caller opts in.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
