package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/degreeplan-backend/internal/platform/ctxutil"
)

const (
	HeaderTraceID   = "X-Trace-Id"
	HeaderRequestID = "X-Request-Id"
	// HeaderPlanRunID carries the run id of a generated plan back to the caller.
	HeaderPlanRunID = "X-Plan-Run-Id"
)

// AttachTraceContext accepts caller-supplied ids, otherwise mints them. The
// trace id prefers the otelgin span so logs and traces line up.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		rt := &ctxutil.RequestTrace{
			RequestID: strings.TrimSpace(c.GetHeader(HeaderRequestID)),
			TraceID:   strings.TrimSpace(c.GetHeader(HeaderTraceID)),
		}
		if rt.RequestID == "" {
			rt.RequestID = uuid.NewString()
		}
		if rt.TraceID == "" {
			if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
				rt.TraceID = sc.TraceID().String()
			} else {
				rt.TraceID = uuid.NewString()
			}
		}
		c.Request = c.Request.WithContext(ctxutil.WithRequestTrace(c.Request.Context(), rt))
		c.Set("trace_id", rt.TraceID)
		c.Set("request_id", rt.RequestID)
		c.Header(HeaderTraceID, rt.TraceID)
		c.Header(HeaderRequestID, rt.RequestID)
		c.Next()
	}
}

// SetPlanRunID records a plan run on the request trace and response headers.
func SetPlanRunID(c *gin.Context, runID string) {
	if rt := ctxutil.RequestTraceFrom(c.Request.Context()); rt != nil {
		rt.PlanRunID = runID
	}
	c.Header(HeaderPlanRunID, runID)
}
