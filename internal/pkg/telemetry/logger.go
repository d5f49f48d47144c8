// Package telemetry wires structured logging and distributed tracing. Both
// are installed globally once from main(); the rest of the codebase only uses
// log/slog and the spans opened by the HTTP instrumentation.
package telemetry

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

// spanHandler decorates every log record with the trace_id and span_id of
// the span active in the context, so a log line can be joined to its trace.
type spanHandler struct {
	slog.Handler
}

func (h *spanHandler) Handle(ctx context.Context, record slog.Record) error {
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.HasTraceID() {
		record.AddAttrs(slog.String("trace_id", spanCtx.TraceID().String()))
	}
	if spanCtx.HasSpanID() {
		record.AddAttrs(slog.String("span_id", spanCtx.SpanID().String()))
	}
	return h.Handler.Handle(ctx, record)
}

// InitLogger installs the process-wide JSON slog logger, decorated with
// tracing ids.
func InitLogger() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(&spanHandler{Handler: handler}))
}
