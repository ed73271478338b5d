package main

import (
	"context"

	"github.com/cdpdoc/cdpdoc/index"
)

// Compile-time interface verification.
var _ Indexer = (*rebuilder)(nil)

// rebuilder chains an index build with publication on the serving engine.
// Queries in flight keep the snapshot they started with.
type rebuilder struct {
	builder *index.Builder
	engine  *index.Engine
}

// Rebuild builds a snapshot from the page store and publishes it.
func (r *rebuilder) Rebuild(ctx context.Context) (int, int, error) {
	snap, err := r.builder.Build(ctx)
	if err != nil {
		return 0, 0, err
	}
	r.engine.Publish(snap)
	return snap.DocumentCount(), snap.PassageCount(), nil
}
