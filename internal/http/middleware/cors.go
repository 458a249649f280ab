package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/degreeplan-backend/internal/platform/envutil"
)

var defaultOrigins = []string{
	"http://localhost:80",
	"http://localhost:3000",
	"http://localhost:5174",
	"http://localhost:5173",
	"http://127.0.0.1:80",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5174",
	"http://127.0.0.1:5173",
}

// AllowedOrigins reads CORS_ORIGINS (comma separated) and falls back to the
// local dev origins.
func AllowedOrigins() []string {
	raw := envutil.String("CORS_ORIGINS", "")
	if raw == "" {
		return defaultOrigins
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimRight(strings.TrimSpace(part), "/"); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return defaultOrigins
	}
	return out
}

func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = defaultOrigins
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", HeaderRequestID, HeaderTraceID},
		ExposeHeaders:    []string{HeaderRequestID, HeaderTraceID, HeaderPlanRunID},
		AllowCredentials: true,
	})
}
