package synth

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/yungbote/degreeplan-backend/internal/domain/catalog"
	"github.com/yungbote/degreeplan-backend/internal/domain/plan"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/curation"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/prompts"
	"github.com/yungbote/degreeplan-backend/internal/platform/envutil"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
	"github.com/yungbote/degreeplan-backend/internal/platform/openai"
)

// Generator is the structured-output model boundary.
type Generator interface {
	GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any, opts openai.GenerateOptions) (map[string]any, error)
}

type Config struct {
	Temperature     float64
	MaxOutputTokens int
}

func DefaultConfig() Config {
	return Config{Temperature: 0.2, MaxOutputTokens: 8000}
}

func ConfigFromEnv() Config {
	d := DefaultConfig()
	return Config{
		Temperature:     envutil.Float("PLAN_TEMPERATURE", d.Temperature),
		MaxOutputTokens: envutil.Int("PLAN_MAX_OUTPUT_TOKENS", d.MaxOutputTokens),
	}
}

type Request struct {
	Curated         curation.List
	ProgramTitle    string
	CredentialName  string
	InstitutionName string
	RequiredCredits int
	DurationYears   int
	Undergraduate   bool
	Skills          []string
}

type Result struct {
	Plan              *plan.GeneratedPlan
	PromptName        string
	PromptVersion     int
	PromptFingerprint string
}

type Synthesizer struct {
	log *logger.Logger
	gen Generator
	cfg Config
}

func NewSynthesizer(log *logger.Logger, gen Generator, cfg Config) *Synthesizer {
	prompts.RegisterAll()
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = DefaultConfig().MaxOutputTokens
	}
	return &Synthesizer{log: log.With("service", "PlanSynthesizer"), gen: gen, cfg: cfg}
}

// BuildPrompt renders the policy and data blocks without calling the model.
func (s *Synthesizer) BuildPrompt(req Request) (prompts.Prompt, error) {
	p, err := prompts.Build(prompts.PromptDegreePlan, prompts.Input{
		ProgramTitle:    strings.TrimSpace(req.ProgramTitle),
		CredentialName:  strings.TrimSpace(req.CredentialName),
		InstitutionName: strings.TrimSpace(req.InstitutionName),
		RequiredCredits: req.RequiredCredits,
		DurationYears:   req.DurationYears,
		Undergraduate:   req.Undergraduate,
		SkillsCSV:       skillsCSV(req.Skills),
		CourseList:      FormatCourseList(req.Curated.Courses),
		CourseCount:     req.Curated.Len(),
	})
	if err != nil {
		return prompts.Prompt{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return p, nil
}

// Synthesize calls the model exactly once and parses its answer strictly.
// Nothing is retried or patched here.
func (s *Synthesizer) Synthesize(ctx context.Context, req Request) (*Result, error) {
	p, err := s.BuildPrompt(req)
	if err != nil {
		return nil, err
	}
	fp := p.Fingerprint()

	temp := s.cfg.Temperature
	obj, err := s.gen.GenerateJSON(ctx, p.System, p.User, p.SchemaName, p.Schema, openai.GenerateOptions{
		Temperature:     &temp,
		MaxOutputTokens: s.cfg.MaxOutputTokens,
	})
	if err != nil {
		s.log.Warn("plan generation failed",
			"prompt", p.Name,
			"prompt_fingerprint", fp,
			"error", err,
		)
		return nil, classifyGeneratorError(err)
	}

	parsed, err := ParsePlan(obj)
	if err != nil {
		s.log.Warn("plan output rejected",
			"prompt", p.Name,
			"prompt_fingerprint", fp,
			"error", err,
		)
		return nil, err
	}

	s.log.Info("plan synthesized",
		"prompt", p.Name,
		"prompt_version", p.Version,
		"prompt_fingerprint", fp,
		"curated_courses", req.Curated.Len(),
		"years", len(parsed.Years),
	)
	return &Result{
		Plan:              parsed,
		PromptName:        p.Name,
		PromptVersion:     p.Version,
		PromptFingerprint: fp,
	}, nil
}

// FormatCourseList renders one "CODE - Title (N credits)" line per course,
// with the prerequisite text appended where known.
func FormatCourseList(courses []catalog.CourseRecord) string {
	var b strings.Builder
	for i, c := range courses {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(FormatCourseLine(c))
	}
	return b.String()
}

func FormatCourseLine(c catalog.CourseRecord) string {
	line := fmt.Sprintf("%s - %s (%s credits)", c.Code(), strings.TrimSpace(c.Title), formatCredits(c.Credits))
	if prereq := strings.TrimSpace(c.Prerequisites); prereq != "" {
		line += " | Prereq: " + prereq
	}
	return line
}

func formatCredits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func skillsCSV(skills []string) string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, ", ")
}
