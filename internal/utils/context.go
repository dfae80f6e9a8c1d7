// Package utils provides general-purpose helper utilities
// used across different parts of the application: context keys,
// trace id generation, JSON response writing and the HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the request trace id is stored.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// TraceIDFromContext retrieves the trace id stored by [WithTraceID].
//
// Returns ok == false when the value is missing, empty or of another type.
//
// Example usage:
//
//	if traceID, ok := utils.TraceIDFromContext(ctx); ok {
//	    req.Header.Set("X-Trace-ID", traceID)
//	}
func TraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
