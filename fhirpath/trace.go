package fhirpath

import (
	"context"

	"github.com/rs/zerolog"
)

// Tracer receives the collections passed to trace(name).
type Tracer interface {
	// Log logs a trace message with the given name and collection
	Log(name string, collection Collection) error
}

// LogTracer writes traces to a zerolog.Logger at debug level.
type LogTracer struct {
	Logger zerolog.Logger
}

func (t LogTracer) Log(name string, collection Collection) error {
	items := make([]string, 0, len(collection))
	for _, e := range collection {
		items = append(items, e.String())
	}
	t.Logger.Debug().
		Str("name", name).
		Int("count", len(collection)).
		Strs("items", items).
		Msg("fhirpath trace")
	return nil
}

type tracerKey struct{}

// WithTracer installs the given tracer into the context.
//
// Without a tracer, traces go to the logger attached with zerolog's
// Logger.WithContext, and are dropped if there is none.
func WithTracer(ctx context.Context, tracer Tracer) context.Context {
	return context.WithValue(ctx, tracerKey{}, tracer)
}

func tracer(ctx context.Context) Tracer {
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok && t != nil {
		return t
	}
	return LogTracer{Logger: *zerolog.Ctx(ctx)}
}
