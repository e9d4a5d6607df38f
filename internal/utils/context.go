// Package utils holds small helpers shared by the client packages: context
// keys, trace identifiers, the resty client wrapper and JSON response writing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the context key carrying the trace identifier of the
// current user action. The same value is sent in the X-Trace-ID header and
// logged, so one UI action can be followed through client and server logs.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace identifier stored in ctx.
// ok is false when none is set or it has an unexpected type.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	if !ok || traceID == "" {
		return "", false
	}
	return traceID, true
}
