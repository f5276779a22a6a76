package middlewares

import (
	"context"
	"time"
)

// RequestContext is the per-request record kept by LoggingMiddleware.
// It lives only as long as the request.
type RequestContext struct {
	RequestID  string
	Method     string
	URI        string
	RemoteHost string
	Start      time.Time

	// Filled once the handler has returned.
	Status  int
	Latency time.Duration
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var requestContextKey = contextKey{}

func setRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey, rc)
}

// GetRequestContext retrieves the request record from the context. Returns nil if not present.
func GetRequestContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey).(*RequestContext)
	return rc
}

// GetRequestID returns the request ID stored in ctx, or an empty string.
func GetRequestID(ctx context.Context) string {
	if rc := GetRequestContext(ctx); rc != nil {
		return rc.RequestID
	}
	return ""
}
