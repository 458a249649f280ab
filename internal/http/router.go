package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/degreeplan-backend/internal/http/handlers"
	httpMW "github.com/yungbote/degreeplan-backend/internal/http/middleware"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string

	HealthHandler      *httpH.HealthHandler
	PlanHandler        *httpH.PlanHandler
	InstitutionHandler *httpH.InstitutionHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}

	api := r.Group("/api")
	{
		// Plans
		if cfg.PlanHandler != nil {
			api.POST("/plans", cfg.PlanHandler.CreatePlan)
		}

		// Institutions
		if cfg.InstitutionHandler != nil {
			api.GET("/institutions/:id/prefixes", cfg.InstitutionHandler.ResolvePrefixes)
		}
	}

	return r
}
