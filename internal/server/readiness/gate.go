// Package readiness tracks whether the server finished bootstrapping.
// Transports accept connections right away and reject data calls with
// common.ErrNotReady until the gate is opened.
package readiness

import (
	"sync/atomic"

	"github.com/dmitrijs2005/mnemos/internal/common"
)

// Gate is safe for concurrent use. The zero value is closed.
type Gate struct {
	ready atomic.Bool
}

// Open marks the server ready.
func (g *Gate) Open() {
	g.ready.Store(true)
}

// Close marks the server not ready again, e.g. during shutdown.
func (g *Gate) Close() {
	g.ready.Store(false)
}

// Ready reports whether the gate is open.
func (g *Gate) Ready() bool {
	return g.ready.Load()
}

// Check returns common.ErrNotReady while the gate is closed.
func (g *Gate) Check() error {
	if !g.Ready() {
		return common.ErrNotReady
	}
	return nil
}
