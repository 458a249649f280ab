package ctxutil

import "context"

type requestTraceKey struct{}

// RequestTrace identifies one inbound API call. PlanRunID is filled in once a
// plan run has been assigned so later log lines can join request and run.
type RequestTrace struct {
	TraceID   string
	RequestID string
	PlanRunID string
}

func WithRequestTrace(ctx context.Context, rt *RequestTrace) context.Context {
	return context.WithValue(ctx, requestTraceKey{}, rt)
}

func RequestTraceFrom(ctx context.Context) *RequestTrace {
	if ctx == nil {
		return nil
	}
	rt, _ := ctx.Value(requestTraceKey{}).(*RequestTrace)
	return rt
}

// RequestID returns "" when ctx carries no trace.
func RequestID(ctx context.Context) string {
	if rt := RequestTraceFrom(ctx); rt != nil {
		return rt.RequestID
	}
	return ""
}
