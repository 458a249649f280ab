package planning

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	catalogsvc "github.com/yungbote/degreeplan-backend/internal/catalog"
	"github.com/yungbote/degreeplan-backend/internal/domain/catalog"
	"github.com/yungbote/degreeplan-backend/internal/domain/plan"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/curation"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/discipline"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/synth"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/validate"
	"github.com/yungbote/degreeplan-backend/internal/observability"
	"github.com/yungbote/degreeplan-backend/internal/platform/ctxutil"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
	"github.com/yungbote/degreeplan-backend/internal/realtime"
	"github.com/yungbote/degreeplan-backend/internal/realtime/bus"
)

type Deps struct {
	Log          *logger.Logger
	Catalog      catalogsvc.Provider
	Requirements catalogsvc.RequirementsProvider
	Resolver     *discipline.Resolver
	Curator      *curation.Curator
	Synth        *synth.Synthesizer
	// Bus is optional; stage events are dropped when nil.
	Bus bus.Bus
}

type Request struct {
	InstitutionID  string   `json:"institution_id"`
	ProgramTitle   string   `json:"program_title"`
	CredentialCode string   `json:"credential_code"`
	Skills         []string `json:"skills"`
}

type Result struct {
	RunID             uuid.UUID
	Plan              *plan.GeneratedPlan
	Report            validate.Report
	Prefixes          discipline.PrefixSet
	TablesVersion     string
	CuratedCount      int
	CandidateCount    int
	PromptFingerprint string
	Requirement       catalog.CredentialRequirement
}

// Pipeline runs resolve → curate → synthesize → validate for one request.
// It holds no per-request state.
type Pipeline struct {
	log  *logger.Logger
	deps Deps
}

func NewPipeline(deps Deps) (*Pipeline, error) {
	switch {
	case deps.Log == nil:
		return nil, fmt.Errorf("planning: logger required")
	case deps.Catalog == nil:
		return nil, fmt.Errorf("planning: catalog provider required")
	case deps.Requirements == nil:
		return nil, fmt.Errorf("planning: requirements provider required")
	case deps.Resolver == nil:
		return nil, fmt.Errorf("planning: resolver required")
	case deps.Curator == nil:
		return nil, fmt.Errorf("planning: curator required")
	case deps.Synth == nil:
		return nil, fmt.Errorf("planning: synthesizer required")
	}
	return &Pipeline{log: deps.Log.With("service", "PlanningPipeline"), deps: deps}, nil
}

func (r Request) normalized() Request {
	r.InstitutionID = strings.TrimSpace(r.InstitutionID)
	r.ProgramTitle = strings.TrimSpace(r.ProgramTitle)
	r.CredentialCode = strings.ToUpper(strings.TrimSpace(r.CredentialCode))
	return r
}

func (r Request) validate() error {
	var missing []string
	if r.InstitutionID == "" {
		missing = append(missing, "institution_id")
	}
	if r.ProgramTitle == "" {
		missing = append(missing, "program_title")
	}
	if r.CredentialCode == "" {
		missing = append(missing, "credential_code")
	}
	if len(missing) > 0 {
		return newError(CodeInvalidRequest, "request", "missing "+strings.Join(missing, ", "), nil)
	}
	return nil
}

// Generate runs every stage once, in order. The caller owns the deadline via ctx.
func (p *Pipeline) Generate(ctx context.Context, req Request) (res *Result, err error) {
	req = req.normalized()
	if err := req.validate(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	log := p.log.With("run_id", runID.String(), "institution_id", req.InstitutionID, "program", req.ProgramTitle)
	if reqID := ctxutil.RequestID(ctx); reqID != "" {
		log = log.With("request_id", reqID)
	}
	ctx, span := observability.StartSpan(ctx, "planning.generate",
		attribute.String("plan.run_id", runID.String()),
		attribute.String("plan.institution_id", req.InstitutionID),
		attribute.String("plan.program", req.ProgramTitle),
		attribute.String("plan.credential", req.CredentialCode),
	)
	defer func() { observability.EndSpan(span, err) }()

	r := &run{p: p, log: log, id: runID, req: req}
	res, err = r.execute(ctx)
	if err != nil {
		log.Warn("plan generation failed", "code", string(CodeOf(err)), "error", err)
		return nil, err
	}
	log.Info("plan generated",
		"prefixes", []string(res.Prefixes),
		"curated", res.CuratedCount,
		"total_credits", res.Plan.TotalCredits,
		"credit_status", string(res.Report.CreditStatus),
		"discarded", res.Report.Repaired(),
	)
	return res, nil
}

// run carries the state of one Generate call.
type run struct {
	p   *Pipeline
	log *logger.Logger
	id  uuid.UUID
	req Request
}

func (r *run) execute(ctx context.Context) (*Result, error) {
	var (
		inst *catalog.Institution
		cred *catalog.CredentialRequirement
	)
	err := r.stage(ctx, realtime.StageRequirements, func(ctx context.Context) (map[string]any, error) {
		var err error
		inst, err = r.p.deps.Catalog.Institution(ctx, r.req.InstitutionID)
		if err != nil {
			return nil, newError(CodeCatalogUnavailable, string(realtime.StageRequirements), "institution unavailable", err)
		}
		cred, err = r.p.deps.Requirements.RequirementsFor(ctx, r.req.ProgramTitle, r.req.CredentialCode)
		if err != nil {
			return nil, newError(CodeCatalogUnavailable, string(realtime.StageRequirements), "credential requirements unavailable", err)
		}
		return map[string]any{"required_credits": cred.RequiredCredits, "duration_years": cred.DurationYears()}, nil
	})
	if err != nil {
		return nil, err
	}

	var prefixes discipline.PrefixSet
	err = r.stage(ctx, realtime.StageResolve, func(ctx context.Context) (map[string]any, error) {
		var err error
		prefixes, err = r.p.deps.Resolver.Resolve(ctx, inst.Slug, r.req.ProgramTitle)
		if errors.Is(err, discipline.ErrNoPrefixes) {
			return nil, newError(CodeResolutionFailed, string(realtime.StageResolve), "no relevant courses could be identified for this program and institution", err)
		}
		if err != nil {
			return nil, newError(CodeCatalogUnavailable, string(realtime.StageResolve), "discipline tables unavailable", err)
		}
		return map[string]any{"prefixes": []string(prefixes)}, nil
	})
	if err != nil {
		return nil, err
	}

	var candidates []catalog.CourseRecord
	err = r.stage(ctx, realtime.StageCatalog, func(ctx context.Context) (map[string]any, error) {
		all, err := r.p.deps.Catalog.CoursesForInstitution(ctx, r.req.InstitutionID)
		if err != nil {
			return nil, newError(CodeCatalogUnavailable, string(realtime.StageCatalog), "course catalog unavailable", err)
		}
		if len(all) == 0 {
			return nil, newError(CodeCatalogUnavailable, string(realtime.StageCatalog), "course catalog has no courses for institution", nil)
		}
		candidates = FilterByPrefixes(all, prefixes)
		if len(candidates) == 0 {
			return nil, newError(CodeResolutionFailed, string(realtime.StageCatalog), "no catalog courses carry the resolved prefixes", nil)
		}
		return map[string]any{"catalog_courses": len(all), "candidates": len(candidates)}, nil
	})
	if err != nil {
		return nil, err
	}

	var curated curation.List
	_ = r.stage(ctx, realtime.StageCurate, func(ctx context.Context) (map[string]any, error) {
		curated = r.p.deps.Curator.Curate(candidates, cred.RequiredCredits, cred.DurationYears())
		return map[string]any{"curated": curated.Len(), "target": curated.TargetCount, "trimmed": curated.Trimmed}, nil
	})

	var synthesized *synth.Result
	err = r.stage(ctx, realtime.StageSynthesize, func(ctx context.Context) (map[string]any, error) {
		var err error
		synthesized, err = r.p.deps.Synth.Synthesize(ctx, synth.Request{
			Curated:         curated,
			ProgramTitle:    r.req.ProgramTitle,
			CredentialName:  credentialName(cred),
			InstitutionName: inst.Name,
			RequiredCredits: cred.RequiredCredits,
			DurationYears:   cred.DurationYears(),
			Undergraduate:   cred.IsUndergraduateLevel,
			Skills:          r.req.Skills,
		})
		if err != nil {
			return nil, synthError(err)
		}
		return map[string]any{"prompt_fingerprint": synthesized.PromptFingerprint}, nil
	})
	if err != nil {
		return nil, err
	}

	var report validate.Report
	_ = r.stage(ctx, realtime.StageValidate, func(ctx context.Context) (map[string]any, error) {
		report = validate.Validate(synthesized.Plan, curated, validate.Options{
			RequiredCredits: cred.RequiredCredits,
			DurationYears:   cred.DurationYears(),
			Log:             r.log,
		})
		return map[string]any{
			"total_credits": report.TotalCredits,
			"credit_status": string(report.CreditStatus),
			"discarded":     report.Repaired(),
		}, nil
	})

	return &Result{
		RunID:             r.id,
		Plan:              synthesized.Plan,
		Report:            report,
		Prefixes:          prefixes,
		TablesVersion:     r.p.deps.Resolver.Version(),
		CuratedCount:      curated.Len(),
		CandidateCount:    len(candidates),
		PromptFingerprint: synthesized.PromptFingerprint,
		Requirement:       *cred,
	}, nil
}

// stage wraps fn in a span and publishes started/succeeded/failed events.
func (r *run) stage(ctx context.Context, name realtime.PlanStage, fn func(ctx context.Context) (map[string]any, error)) (err error) {
	ctx, span := observability.StartSpan(ctx, "planning."+string(name),
		attribute.String("plan.run_id", r.id.String()),
	)
	defer func() { observability.EndSpan(span, err) }()

	r.publish(ctx, name, realtime.StatusStarted, nil)
	data, err := fn(ctx)
	if err != nil {
		failed := map[string]any{"code": string(CodeOf(err)), "error": err.Error()}
		r.publish(ctx, name, realtime.StatusFailed, failed)
		return err
	}
	r.publish(ctx, name, realtime.StatusSucceeded, data)
	return nil
}

func (r *run) publish(ctx context.Context, stage realtime.PlanStage, status realtime.PlanStatus, data map[string]any) {
	if r.p.deps.Bus == nil {
		return
	}
	evt := realtime.NewPlanEvent(r.id, stage, status, data)
	evt.InstitutionID = r.req.InstitutionID
	evt.ProgramTitle = r.req.ProgramTitle
	if err := r.p.deps.Bus.Publish(ctx, evt); err != nil {
		r.log.Warn("plan event publish failed", "stage", string(stage), "status", string(status), "error", err)
	}
}

func synthError(err error) error {
	stage := string(realtime.StageSynthesize)
	var pe *synth.ParseError
	var ge *synth.GenerationError
	switch {
	case errors.As(err, &pe):
		return newError(CodeGenerationParseFailed, stage, "model response is not a valid plan", err)
	case errors.As(err, &ge):
		return newError(CodeGenerationFailed, stage, "model could not produce a plan", err)
	case errors.Is(err, synth.ErrInvalidRequest):
		return newError(CodeInvalidRequest, stage, "plan request could not be rendered", err)
	default:
		return newError(CodeGenerationFailed, stage, "model could not produce a plan", err)
	}
}

func credentialName(c *catalog.CredentialRequirement) string {
	if name := strings.TrimSpace(c.CredentialName); name != "" {
		return name
	}
	return c.CredentialCode
}

// FilterByPrefixes keeps catalog order and drops courses outside prefixes.
func FilterByPrefixes(courses []catalog.CourseRecord, prefixes discipline.PrefixSet) []catalog.CourseRecord {
	want := make(map[string]bool, len(prefixes))
	for _, p := range prefixes {
		want[p] = true
	}
	out := make([]catalog.CourseRecord, 0, len(courses))
	for _, c := range courses {
		if want[strings.TrimSpace(c.Prefix)] {
			out = append(out, c)
		}
	}
	return out
}
