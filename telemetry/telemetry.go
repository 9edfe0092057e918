// Package telemetry collects hierarchical timings for an invocation. A
// collector travels through the context so instrumentation never changes
// function signatures; without one, all calls are no-ops.
package telemetry

import (
	"context"
	"io"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers timings for one command invocation.
type Collector interface {
	// Start begins timing an operation. End the returned timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected timings to w.
	Report(w io.Writer)
}

// Timer tracks one operation. Nested operations hang off Child.
type Timer interface {
	End()
	Child(name string) Timer
}

// WithCollector attaches a collector to the context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext returns the context's collector, or a no-op collector when
// none is attached.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer { return noOpTimer{} }
func (noOpCollector) Report(w io.Writer)      {}

type noOpTimer struct{}

func (noOpTimer) End()                    {}
func (noOpTimer) Child(name string) Timer { return noOpTimer{} }
