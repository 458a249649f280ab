package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/degreeplan-backend/internal/domain/plan"
	"github.com/yungbote/degreeplan-backend/internal/http/middleware"
	"github.com/yungbote/degreeplan-backend/internal/http/response"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/validate"
	"github.com/yungbote/degreeplan-backend/internal/platform/apierr"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

// PlanGenerator is satisfied by *planning.Pipeline.
type PlanGenerator interface {
	Generate(ctx context.Context, req planning.Request) (*planning.Result, error)
}

type PlanHandler struct {
	log       *logger.Logger
	generator PlanGenerator
}

func NewPlanHandler(log *logger.Logger, generator PlanGenerator) *PlanHandler {
	return &PlanHandler{log: log.With("handler", "PlanHandler"), generator: generator}
}

type createPlanRequest struct {
	InstitutionID  string   `json:"institution_id"`
	ProgramTitle   string   `json:"program_title"`
	CredentialCode string   `json:"credential_code"`
	Skills         []string `json:"skills"`
}

type planDiagnostics struct {
	RunID             uuid.UUID       `json:"run_id"`
	Prefixes          []string        `json:"prefixes"`
	TablesVersion     string          `json:"tables_version"`
	CandidateCount    int             `json:"candidate_courses"`
	CuratedCount      int             `json:"curated_courses"`
	PromptFingerprint string          `json:"prompt_fingerprint"`
	RequiredCredits   int             `json:"required_credits"`
	DurationYears     int             `json:"duration_years"`
	Validation        validate.Report `json:"validation"`
}

type createPlanResponse struct {
	Plan        *plan.GeneratedPlan `json:"plan"`
	Diagnostics planDiagnostics     `json:"diagnostics"`
}

// POST /api/plans
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondAPIError(c, apierr.BadRequest("invalid_request", errors.New("request body must be a JSON object")))
		return
	}

	res, err := h.generator.Generate(c.Request.Context(), planning.Request{
		InstitutionID:  strings.TrimSpace(req.InstitutionID),
		ProgramTitle:   strings.TrimSpace(req.ProgramTitle),
		CredentialCode: strings.TrimSpace(req.CredentialCode),
		Skills:         req.Skills,
	})
	if err != nil {
		ae := planAPIError(err)
		if ae.Status >= 500 {
			h.log.Warn("plan request failed", "code", ae.Code, "error", err)
		}
		response.RespondAPIError(c, ae)
		return
	}

	middleware.SetPlanRunID(c, res.RunID.String())
	response.RespondOK(c, createPlanResponse{
		Plan: res.Plan,
		Diagnostics: planDiagnostics{
			RunID:             res.RunID,
			Prefixes:          res.Prefixes,
			TablesVersion:     res.TablesVersion,
			CandidateCount:    res.CandidateCount,
			CuratedCount:      res.CuratedCount,
			PromptFingerprint: res.PromptFingerprint,
			RequiredCredits:   res.Requirement.RequiredCredits,
			DurationYears:     res.Requirement.DurationYears(),
			Validation:        res.Report,
		},
	})
}
