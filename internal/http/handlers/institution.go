package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/degreeplan-backend/internal/catalog"
	"github.com/yungbote/degreeplan-backend/internal/http/response"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/discipline"
	pkgerrors "github.com/yungbote/degreeplan-backend/internal/pkg/errors"
	"github.com/yungbote/degreeplan-backend/internal/platform/apierr"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

type InstitutionHandler struct {
	log      *logger.Logger
	catalog  catalog.Provider
	resolver *discipline.Resolver
}

func NewInstitutionHandler(log *logger.Logger, provider catalog.Provider, resolver *discipline.Resolver) *InstitutionHandler {
	return &InstitutionHandler{
		log:      log.With("handler", "InstitutionHandler"),
		catalog:  provider,
		resolver: resolver,
	}
}

// GET /api/institutions/:id/prefixes?program=...
func (h *InstitutionHandler) ResolvePrefixes(c *gin.Context) {
	ctx := c.Request.Context()
	id := strings.TrimSpace(c.Param("id"))
	program := strings.TrimSpace(c.Query("program"))
	if program == "" {
		response.RespondAPIError(c, apierr.BadRequest("invalid_request", errors.New("program query parameter required")))
		return
	}

	inst, err := h.catalog.Institution(ctx, id)
	if err != nil {
		response.RespondAPIError(c, catalogAPIError(err))
		return
	}

	prefixes, err := h.resolver.Resolve(ctx, inst.Slug, program)
	if errors.Is(err, discipline.ErrNoPrefixes) {
		response.RespondError(c, http.StatusUnprocessableEntity, "resolution_failed", err)
		return
	}
	if err != nil {
		response.RespondAPIError(c, apierr.New(http.StatusServiceUnavailable, "catalog_unavailable", err))
		return
	}

	response.RespondOK(c, gin.H{
		"institution_id": inst.Slug,
		"program_title":  program,
		"prefixes":       []string(prefixes),
		"keywords":       discipline.Keywords(program),
		"tables_version": h.resolver.Version(),
	})
}

func catalogAPIError(err error) *apierr.Error {
	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		return apierr.New(http.StatusNotFound, "not_found", err)
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		return apierr.BadRequest("invalid_request", err)
	default:
		return apierr.New(http.StatusServiceUnavailable, "catalog_unavailable", err)
	}
}
