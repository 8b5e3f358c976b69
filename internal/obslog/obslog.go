// Package obslog configures the one logger cmd/frlayout uses for run and
// bench progress: text to stderr by default, JSON when FRLAYOUT_ENV is
// "production". Adapted from the component/request-scoped slog wrapper
// pattern in the retrieval pack's reddit-cluster-map backend, narrowed to
// this CLI's needs — no request-id context plumbing, since frlayout has no
// request lifecycle, just one command invocation.
//
// The simulation core (geom, quadtree, repulsion, layout, graph) never
// imports this package: it does not log, per spec.md's "core does not
// read environment variables" policy.
package obslog

import (
	"log/slog"
	"os"
)

// New builds a component-scoped logger. component is attached to every
// record as a "component" field, letting "run" and "bench" output be told
// apart when both are piped to the same log sink.
func New(component string) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if os.Getenv("FRLAYOUT_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler).With("component", component)
}
