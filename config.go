// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Config holds common configuration for pipe construction.
//
// Pass this to [Cap], [Exit], and [Ref] to pre-wire dependencies. All
// fields have sensible defaults set by [NewConfig].
type Config struct {
	// TimeNow returns the current time.
	//
	// Used by [CappedPipe] and [OpenPipe] to measure the elapsed time
	// of each Inject/Trigger call they log. Segment constructors such
	// as [NewRateLimit] take their own clock argument instead.
	// Configurable for testing with a fake clock.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time

	// Logger is the [SLogger] used by primitives that report activity.
	//
	// Set by [NewConfig] to [DefaultSLogger].
	Logger SLogger

	// ErrorSink receives failures from segments that wrap user
	// callbacks.
	//
	// Set by [NewConfig] to [DefaultObservabilitySink].
	ErrorSink ObservabilitySink

	// IDGen generates the id assigned to each [CappedPipe]/[OpenPipe]
	// at construction, used for log correlation and as the pipe.id
	// attribute of trace spans. [Group] does not use it.
	//
	// Set by [NewConfig] to [NewSpanID].
	IDGen func() string

	// Tracer, when non-nil, causes Inject/Trigger on pipes built with
	// this Config to be wrapped in an OpenTelemetry span named after the
	// operation ("inject" or "trigger") and carrying the pipe's id as
	// the pipe.id attribute. Left nil by [NewConfig]: tracing is opt-in, and the
	// [trace.Tracer] interface is itself a safe no-op when no provider
	// is configured.
	Tracer trace.Tracer
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		TimeNow:   time.Now,
		Logger:    DefaultSLogger(),
		ErrorSink: DefaultObservabilitySink,
		IDGen:     NewSpanID,
	}
}

// configOrDefault returns cfg if non-nil, otherwise [NewConfig]'s
// defaults. Used by every pipe/segment constructor that accepts an
// optional *Config.
func configOrDefault(cfg *Config) *Config {
	if cfg != nil {
		return cfg
	}
	return NewConfig()
}
