// Package xgraph draws 2D line charts onto a gpu.Surface.
//
// A Graph holds an ordered list of series, each a flat x,y sample array with
// one color, plus a viewport made of an origin placement and a visible range
// per axis. Render maps every sample into normalized device coordinates,
// drops samples outside the visible span and draws each series as one line
// strip, followed by two axis lines through the origin.
//
// A Graph is not safe for concurrent use. Hosts that call it from several
// goroutines must serialize access, and GL-backed surfaces additionally
// require all calls on the thread that owns the context.
package xgraph
