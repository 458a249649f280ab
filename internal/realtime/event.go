package realtime

import (
	"time"

	"github.com/google/uuid"
)

type PlanStage string

const (
	StageRequirements PlanStage = "requirements"
	StageResolve      PlanStage = "resolve"
	StageCatalog      PlanStage = "catalog"
	StageCurate       PlanStage = "curate"
	StageSynthesize   PlanStage = "synthesize"
	StageValidate     PlanStage = "validate"
)

type PlanStatus string

const (
	StatusStarted   PlanStatus = "started"
	StatusSucceeded PlanStatus = "succeeded"
	StatusFailed    PlanStatus = "failed"
)

// PlanEvent is one stage transition of a plan generation run.
type PlanEvent struct {
	ID            uuid.UUID      `json:"id"`
	RunID         uuid.UUID      `json:"run_id"`
	Stage         PlanStage      `json:"stage"`
	Status        PlanStatus     `json:"status"`
	InstitutionID string         `json:"institution_id,omitempty"`
	ProgramTitle  string         `json:"program_title,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
	At            time.Time      `json:"at"`
}

func NewPlanEvent(runID uuid.UUID, stage PlanStage, status PlanStatus, data map[string]any) PlanEvent {
	return PlanEvent{
		ID:     uuid.New(),
		RunID:  runID,
		Stage:  stage,
		Status: status,
		Data:   data,
		At:     time.Now().UTC(),
	}
}
