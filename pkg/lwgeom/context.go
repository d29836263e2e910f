// Package lwgeom provides the public host contract (§6.2) over the
// internal geometry object model, codecs, union-find and clustering
// engine: the same wrapper-around-internal shape pkg/s57 uses over
// internal/parser.
package lwgeom

import (
	"github.com/postgis/lwgeom/internal/cluster"
	"github.com/postgis/lwgeom/internal/engine"
	"github.com/postgis/lwgeom/internal/geom"
	"github.com/postgis/lwgeom/internal/wkb"
)

// Context is the process-wide (or per-caller) state the core needs:
// the logger/error-reporter callbacks of §5's shared-resources model,
// plus the external 2D engine handle. There is no allocator configuration
// point — the host contract's {alloc, realloc, free} triple has no
// counterpart in a garbage-collected runtime, so Context carries only the
// two callbacks init() still has a use for.
type Context struct {
	// Notice reports a non-fatal diagnostic. Defaults to a no-op.
	Notice func(msg string)
	// Error reports a fatal diagnostic ahead of an aborted operation
	// (InvariantError, EngineError, ResourceError — spec §7's
	// non-recoverable kinds). Defaults to a no-op; the error is always
	// also returned to the caller.
	Error func(msg string)

	engine *engine.Planar
}

// NewContext returns a Context with no-op callbacks and the reference
// planar engine (internal/engine.Planar) wired in as the §6.3 adapter.
func NewContext() *Context {
	return &Context{
		Notice: func(string) {},
		Error:  func(string) {},
		engine: engine.NewPlanar(),
	}
}

// reportFatal invokes Error for the error kinds spec §7 treats as
// non-recoverable; ParseError is recoverable at the parse boundary and is
// never reported here, only returned.
func (c *Context) reportFatal(err error) {
	if err == nil {
		return
	}
	switch err.(type) {
	case *cluster.ResourceError, *engine.EngineError, *wkb.InvariantError, *geom.EngineFailure:
		c.Error(err.Error())
	}
}
