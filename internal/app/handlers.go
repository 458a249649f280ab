package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	httpserver "github.com/yungbote/degreeplan-backend/internal/http"
	httpH "github.com/yungbote/degreeplan-backend/internal/http/handlers"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

type Handlers struct {
	Health      *httpH.HealthHandler
	Plan        *httpH.PlanHandler
	Institution *httpH.InstitutionHandler
}

func wireHandlers(log *logger.Logger, sqlDB *sql.DB, services Services) Handlers {
	log.Info("Wiring handlers...")
	deps := map[string]httpH.Pinger{}
	if sqlDB != nil {
		deps["db"] = sqlDB
	}
	h := Handlers{
		Health:      httpH.NewHealthHandler(deps),
		Institution: httpH.NewInstitutionHandler(log, services.Catalog, services.Resolver),
	}
	if services.Pipeline != nil {
		h.Plan = httpH.NewPlanHandler(log, services.Pipeline)
	}
	return h
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers) *gin.Engine {
	return httpserver.NewRouter(httpserver.RouterConfig{
		Log:                log,
		ServiceName:        cfg.ServiceName,
		CORSOrigins:        cfg.CORSOrigins,
		HealthHandler:      handlers.Health,
		PlanHandler:        handlers.Plan,
		InstitutionHandler: handlers.Institution,
	})
}
