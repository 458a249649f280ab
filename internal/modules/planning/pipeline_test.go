package planning

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogsvc "github.com/yungbote/degreeplan-backend/internal/catalog"
	"github.com/yungbote/degreeplan-backend/internal/data/repos"
	"github.com/yungbote/degreeplan-backend/internal/data/repos/testutil"
	"github.com/yungbote/degreeplan-backend/internal/domain/catalog"
	"github.com/yungbote/degreeplan-backend/internal/domain/plan"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/curation"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/discipline"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/synth"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/validate"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
	"github.com/yungbote/degreeplan-backend/internal/platform/openai"
	"github.com/yungbote/degreeplan-backend/internal/realtime"
	"github.com/yungbote/degreeplan-backend/internal/realtime/bus"
)

type fakeGenerator struct {
	calls int
	user  string
	out   string
	err   error
}

func (g *fakeGenerator) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any, opts openai.GenerateOptions) (map[string]any, error) {
	g.calls++
	g.user = user
	if g.err != nil {
		return nil, g.err
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(g.out), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

type fixedRequirements struct {
	req *catalog.CredentialRequirement
	err error
}

func (f fixedRequirements) RequirementsFor(ctx context.Context, programTitle, credentialCode string) (*catalog.CredentialRequirement, error) {
	return f.req, f.err
}

const planDoc = `{
  "program_name": "Computer Science",
  "institution": "University of Hawaii at Manoa",
  "total_credits": 42,
  "years": [
    {"year_number": 1, "semesters": [
      {"semester_name": "fall_semester", "credits": 0, "courses": [
        {"name": "ICS 111 - Introduction to Computer Science I", "credits": 3},
        {"name": "Gen Ed Requirement", "credits": 3},
        {"name": "ICS 999 - Time Travel", "credits": 3}
      ]}
    ]}
  ]
}`

type harness struct {
	pipeline *Pipeline
	provider *catalogsvc.RepoProvider
	gen      *fakeGenerator
	bus      *bus.MemoryBus
}

func newHarness(t *testing.T, requirements catalogsvc.RequirementsProvider) *harness {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	r := repos.NewCatalog(db, log)

	seed, err := catalogsvc.LoadSeedFile("../../catalog/testdata/catalog.yaml")
	require.NoError(t, err)
	seeder := catalogsvc.NewSeeder(db, log, r)
	seeder.Concurrency = 1
	_, err = seeder.Apply(context.Background(), seed)
	require.NoError(t, err)

	provider := catalogsvc.NewProvider(db, log, r)
	if requirements == nil {
		requirements = provider
	}
	gen := &fakeGenerator{out: planDoc}
	mem := bus.NewMemoryBus(0)

	p, err := NewPipeline(Deps{
		Log:          logger.NewNop(),
		Catalog:      provider,
		Requirements: requirements,
		Resolver:     discipline.NewResolver(log, discipline.NewCatalogLookup(provider, discipline.StaticTables())),
		Curator:      curation.NewCurator(log, curation.DefaultConfig()),
		Synth:        synth.NewSynthesizer(log, gen, synth.DefaultConfig()),
		Bus:          mem,
	})
	require.NoError(t, err)
	return &harness{pipeline: p, provider: provider, gen: gen, bus: mem}
}

func TestGenerateEndToEnd(t *testing.T) {
	h := newHarness(t, nil)

	res, err := h.pipeline.Generate(context.Background(), Request{
		InstitutionID:  "uh_manoa",
		ProgramTitle:   "Computer Science",
		CredentialCode: "bs",
		Skills:         []string{"algorithms"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, h.gen.calls)

	assert.True(t, res.Prefixes.Contains("ICS"))
	assert.Equal(t, 5, res.CandidateCount, "only ICS courses survive the prefix filter")
	assert.Equal(t, 5, res.CuratedCount)
	assert.NotEmpty(t, res.PromptFingerprint)
	assert.Contains(t, h.gen.user, "ICS 111")
	assert.NotContains(t, h.gen.user, "POLS 110")

	entries := res.Plan.Years[0].Semesters[0].Courses
	require.Len(t, entries, 3)
	assert.Equal(t, "ICS 111", entries[0].Name)
	assert.Equal(t, "Gen Ed Requirement", entries[1].Name)
	assert.Equal(t, "Elective", entries[2].Name)

	assert.Equal(t, 9.0, res.Plan.TotalCredits)
	assert.Equal(t, 1, res.Report.Repaired())
	assert.Equal(t, validate.UnderTarget, res.Report.CreditStatus)
	assert.Equal(t, 120, res.Requirement.RequiredCredits)

	events := h.bus.Events()
	require.Len(t, events, 12)
	for _, evt := range events {
		assert.Equal(t, res.RunID, evt.RunID)
		assert.Equal(t, "uh_manoa", evt.InstitutionID)
	}
	last := events[len(events)-1]
	assert.Equal(t, realtime.StageValidate, last.Stage)
	assert.Equal(t, realtime.StatusSucceeded, last.Status)
}

// fourYearPlan fills eight terms with 15 credits each, cycling through codes
// and placeholders.
func fourYearPlan(t *testing.T, codes []string) string {
	t.Helper()
	fill := append(append([]string{}, codes...), "Gen Ed Requirement", "Elective", "Thesis/Capstone")
	next := 0
	years := []map[string]any{}
	for y := 1; y <= 4; y++ {
		sems := []map[string]any{}
		for _, name := range []string{"fall_semester", "spring_semester"} {
			courses := []map[string]any{}
			for i := 0; i < 5; i++ {
				courses = append(courses, map[string]any{"name": fill[next%len(fill)], "credits": 3})
				next++
			}
			sems = append(sems, map[string]any{"semester_name": name, "credits": 15, "courses": courses})
		}
		years = append(years, map[string]any{"year_number": y, "semesters": sems})
	}
	raw, err := json.Marshal(map[string]any{
		"program_name":  "Computer Science",
		"institution":   "University of Hawaii at Manoa",
		"total_credits": 120,
		"years":         years,
	})
	require.NoError(t, err)
	return string(raw)
}

func TestGenerateFourYearBachelor(t *testing.T) {
	h := newHarness(t, nil)
	h.gen.out = fourYearPlan(t, []string{"ICS 111", "ICS 141", "ICS 211", "ICS 311", "ICS 414"})

	res, err := h.pipeline.Generate(context.Background(), Request{
		InstitutionID:  "uh_manoa",
		ProgramTitle:   "Computer Science",
		CredentialCode: "BS",
	})
	require.NoError(t, err)
	require.Len(t, res.Plan.Years, 4)
	assert.Equal(t, 4, res.Requirement.DurationYears())

	courses, err := h.provider.CoursesForInstitution(context.Background(), "uh_manoa")
	require.NoError(t, err)
	curated := map[string]bool{}
	for _, c := range FilterByPrefixes(courses, res.Prefixes) {
		curated[c.Code()] = true
	}
	require.Len(t, curated, res.CuratedCount)

	majors := 0
	res.Plan.Entries(func(_, _ int, e *plan.CourseEntry) {
		if strings.HasPrefix(e.Name, "ICS ") {
			majors++
			assert.True(t, curated[e.Name], "%s is not a curated course", e.Name)
		}
	})
	assert.Equal(t, res.Report.MajorCount, majors)
	assert.Positive(t, majors)

	assert.Equal(t, 120.0, res.Plan.TotalCredits)
	assert.Equal(t, validate.OnTarget, res.Report.CreditStatus)
	assert.Empty(t, res.Report.Discarded)
	assert.Empty(t, res.Report.Warnings)
}

func TestGenerateWarnsOnShortPlan(t *testing.T) {
	h := newHarness(t, nil)
	res, err := h.pipeline.Generate(context.Background(), Request{
		InstitutionID:  "uh_manoa",
		ProgramTitle:   "Computer Science",
		CredentialCode: "BS",
	})
	require.NoError(t, err)
	assert.Contains(t, res.Report.Warnings, "plan spans 1 years, expected 4")
}

func TestGenerateErrorCodes(t *testing.T) {
	stubReq := &catalog.CredentialRequirement{
		ProgramTitle: "Anything", CredentialCode: "BS", RequiredCredits: 120, TypicalDurationMonths: 48, IsUndergraduateLevel: true,
	}

	cases := []struct {
		name  string
		req   Request
		reqs  catalogsvc.RequirementsProvider
		gen   func(g *fakeGenerator)
		want  Code
		calls int
	}{
		{
			name: "missing program",
			req:  Request{InstitutionID: "uh_manoa", CredentialCode: "BS"},
			want: CodeInvalidRequest,
		},
		{
			name: "unknown institution",
			req:  Request{InstitutionID: "atlantis", ProgramTitle: "Computer Science", CredentialCode: "BS"},
			want: CodeCatalogUnavailable,
		},
		{
			name: "unknown credential",
			req:  Request{InstitutionID: "uh_manoa", ProgramTitle: "Basket Weaving", CredentialCode: "BA"},
			want: CodeCatalogUnavailable,
		},
		{
			name: "no prefixes",
			req:  Request{InstitutionID: "uh_manoa", ProgramTitle: "Zzyzx Qwrt", CredentialCode: "BS"},
			reqs: fixedRequirements{req: stubReq},
			want: CodeResolutionFailed,
		},
		{
			name: "prefixes without courses",
			req:  Request{InstitutionID: "abc_college", ProgramTitle: "Computer Science", CredentialCode: "BS"},
			reqs: fixedRequirements{req: stubReq},
			want: CodeResolutionFailed,
		},
		{
			name:  "malformed plan",
			req:   Request{InstitutionID: "uh_manoa", ProgramTitle: "Computer Science", CredentialCode: "BS"},
			gen:   func(g *fakeGenerator) { g.out = `{"program_name":"CS","institution":"X","total_credits":0,"years":[]}` },
			want:  CodeGenerationParseFailed,
			calls: 1,
		},
		{
			name:  "model unreachable",
			req:   Request{InstitutionID: "uh_manoa", ProgramTitle: "Computer Science", CredentialCode: "BS"},
			gen:   func(g *fakeGenerator) { g.err = errors.New("connection reset") },
			want:  CodeGenerationFailed,
			calls: 1,
		},
		{
			name:  "model output not json",
			req:   Request{InstitutionID: "uh_manoa", ProgramTitle: "Computer Science", CredentialCode: "BS"},
			gen:   func(g *fakeGenerator) { g.err = &openai.DecodeError{Text: "{", Err: errors.New("eof")} },
			want:  CodeGenerationParseFailed,
			calls: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, tc.reqs)
			if tc.gen != nil {
				tc.gen(h.gen)
			}
			res, err := h.pipeline.Generate(context.Background(), tc.req)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.Equal(t, tc.want, CodeOf(err), "err=%v", err)
			assert.Equal(t, tc.calls, h.gen.calls, "model calls")

			var pe *Error
			require.True(t, errors.As(err, &pe))
			if tc.want != CodeInvalidRequest {
				events := h.bus.Events()
				require.NotEmpty(t, events)
				assert.Equal(t, realtime.StatusFailed, events[len(events)-1].Status)
			}
		})
	}
}

func TestFilterByPrefixes(t *testing.T) {
	courses := []catalog.CourseRecord{
		{Prefix: "ICS", Number: "111"},
		{Prefix: "POLS", Number: "110"},
		{Prefix: "MATH", Number: "241"},
	}
	got := FilterByPrefixes(courses, discipline.PrefixSet{"MATH", "ICS"})
	require.Len(t, got, 2)
	assert.Equal(t, "ICS 111", got[0].Code())
	assert.Equal(t, "MATH 241", got[1].Code())
}

func TestNewPipelineRequiresDeps(t *testing.T) {
	_, err := NewPipeline(Deps{Log: logger.NewNop()})
	assert.Error(t, err)
}

func TestErrorString(t *testing.T) {
	err := newError(CodeResolutionFailed, "resolve", "no relevant courses", discipline.ErrNoPrefixes)
	assert.Contains(t, err.Error(), "resolution_failed")
	assert.True(t, errors.Is(err, discipline.ErrNoPrefixes))
	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
}
