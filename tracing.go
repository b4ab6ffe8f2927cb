// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// traceSpan starts a span named op over the pipe identified by id when
// cfg.Tracer is configured, returning a function that ends it. When no
// tracer is configured the returned function is a no-op, so callers can
// unconditionally `defer traceSpan(cfg, id, "inject")()`.
func traceSpan(cfg *Config, id, op string) func() {
	if cfg.Tracer == nil {
		return func() {}
	}
	_, span := cfg.Tracer.Start(context.Background(), op)
	span.SetAttributes(attribute.String("pipe.id", id))
	return func() { span.End() }
}
