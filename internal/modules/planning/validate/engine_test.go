package validate

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/degreeplan-backend/internal/domain/catalog"
	"github.com/yungbote/degreeplan-backend/internal/domain/plan"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/curation"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

func curated() curation.List {
	return curation.NewList([]catalog.CourseRecord{
		{Prefix: "ICS", Number: "111", Title: "Introduction to Computer Science I", Credits: 4},
		{Prefix: "ICS", Number: "211", Title: "Introduction to Computer Science II", Credits: 4},
		{Prefix: "MATH", Number: "241", Title: "Calculus I", Credits: 4},
	})
}

func semester(name plan.SemesterName, credits float64, entries ...plan.CourseEntry) plan.Semester {
	return plan.Semester{SemesterName: name, Credits: credits, Courses: entries}
}

func entry(name string, credits float64) plan.CourseEntry {
	return plan.CourseEntry{Name: name, Credits: credits}
}

func TestValidateRepairsHallucinatedCourse(t *testing.T) {
	p := &plan.GeneratedPlan{
		ProgramName:  "Computer Science",
		Institution:  "UH Manoa",
		TotalCredits: 500,
		Years: []plan.Year{{YearNumber: 1, Semesters: []plan.Semester{
			semester(plan.SemesterFall, 99,
				entry("ICS 111", 4),
				entry("MATH 999", 3),
				entry("Gen Ed Requirement", 3),
			),
		}}},
	}
	rep := Validate(p, curated(), Options{RequiredCredits: 10, Log: logger.NewNop()})

	courses := p.Years[0].Semesters[0].Courses
	assert.Equal(t, "Elective", courses[1].Name)
	assert.Equal(t, 3.0, courses[1].Credits, "credits survive the rewrite")
	require.Len(t, rep.Discarded, 1)
	assert.Equal(t, Discarded{YearNumber: 1, SemesterName: plan.SemesterFall, Name: "MATH 999", Credits: 3}, rep.Discarded[0])

	assert.Equal(t, 10.0, p.Years[0].Semesters[0].Credits)
	assert.Equal(t, 10.0, p.TotalCredits)
	assert.Equal(t, 500.0, rep.ReportedTotal)
	assert.Equal(t, 1, rep.MajorCount)
	assert.Equal(t, 2, rep.PlaceholderCount)
	assert.Equal(t, 6.0, rep.PlaceholderCredits)
	assert.InDelta(t, 0.4, rep.MajorRatio, 1e-9)
	assert.Equal(t, OnTarget, rep.CreditStatus)
	assert.Equal(t, 1, rep.Placeholders[plan.PlaceholderElective])
	assert.Equal(t, 1, rep.Placeholders[plan.PlaceholderGenEd])
	assert.NotEmpty(t, rep.Warnings)
}

func TestValidateNormalizesTitledCodes(t *testing.T) {
	p := &plan.GeneratedPlan{Years: []plan.Year{{YearNumber: 1, Semesters: []plan.Semester{
		semester(plan.SemesterSpring, 0,
			entry("ICS 211 - Introduction to Computer Science II", 4),
			entry("Thesis/Capstone - Senior Project", 3),
			entry("Elective - Upper Division", 3),
			entry("ics 111", 4),
		),
	}}}}
	rep := Validate(p, curated(), Options{})

	names := []string{}
	for _, c := range p.Years[0].Semesters[0].Courses {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"ICS 211", "Thesis/Capstone - Senior Project", "Elective - Upper Division", "Elective"}, names)
	assert.Equal(t, 1, rep.Normalized)
	assert.Equal(t, 1, rep.Placeholders[plan.PlaceholderThesisCapstone], "Thesis/Capstone wins over its Capstone substring")
	require.Len(t, rep.Discarded, 1)
	assert.Equal(t, "ics 111", rep.Discarded[0].Name, "code matching is case-sensitive")
}

func TestValidateCreditBands(t *testing.T) {
	build := func(credits float64) *plan.GeneratedPlan {
		return &plan.GeneratedPlan{Years: []plan.Year{{YearNumber: 1, Semesters: []plan.Semester{
			semester(plan.SemesterFall, 0, entry("Elective", credits)),
		}}}}
	}
	cases := []struct {
		credits float64
		want    CreditStatus
	}{
		{119, UnderTarget},
		{120, OnTarget},
		{132, OnTarget},
		{132.5, OverTarget},
	}
	for _, tc := range cases {
		rep := Validate(build(tc.credits), curated(), Options{RequiredCredits: 120})
		assert.Equal(t, tc.want, rep.CreditStatus, "credits=%v", tc.credits)
	}
	rep := Validate(build(10), curated(), Options{})
	assert.Equal(t, OnTarget, rep.CreditStatus, "no requirement means nothing to compare")
}

func TestValidateWarnsOnYearCount(t *testing.T) {
	p := &plan.GeneratedPlan{Years: []plan.Year{{YearNumber: 1, Semesters: []plan.Semester{
		semester(plan.SemesterFall, 0, entry("ICS 111", 4)),
	}}}}
	rep := Validate(p, curated(), Options{DurationYears: 4})
	assert.Contains(t, rep.Warnings, "plan spans 1 years, expected 4")

	rep = Validate(p, curated(), Options{DurationYears: 1})
	assert.Empty(t, rep.Warnings)
}

func TestValidateNilPlan(t *testing.T) {
	rep := Validate(nil, curated(), Options{RequiredCredits: 60})
	assert.Equal(t, UnderTarget, rep.CreditStatus)
	assert.Contains(t, rep.Warnings, "plan is empty")
}

// Randomised plans must always come back vocabulary-clean with exact totals.
func TestValidateInvariants(t *testing.T) {
	list := curated()
	pool := []string{
		"ICS 111", "ICS 211", "MATH 241", "MATH 241 - Calculus I",
		"MATH 999", "ICS 999", "Basket Weaving", "",
		"Gen Ed Requirement", "Support Course", "Elective", "Capstone", "Thesis/Capstone",
		"Free Elective (Humanities)",
	}
	terms := []plan.SemesterName{plan.SemesterFall, plan.SemesterSpring, plan.SemesterSummer}
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		p := &plan.GeneratedPlan{TotalCredits: rng.Float64() * 1000}
		for y := 1; y <= 1+rng.Intn(5); y++ {
			year := plan.Year{YearNumber: y}
			for s := 0; s < 1+rng.Intn(3); s++ {
				sem := plan.Semester{SemesterName: terms[s], Credits: rng.Float64() * 40}
				for c := 0; c < rng.Intn(7); c++ {
					sem.Courses = append(sem.Courses, entry(pool[rng.Intn(len(pool))], float64(rng.Intn(6))))
				}
				year.Semesters = append(year.Semesters, sem)
			}
			p.Years = append(p.Years, year)
		}

		rep := Validate(p, list, Options{RequiredCredits: 120})

		sum := 0.0
		count := 0
		for _, y := range p.Years {
			for _, s := range y.Semesters {
				semSum := 0.0
				for _, c := range s.Courses {
					count++
					semSum += c.Credits
					_, isPlaceholder := plan.MatchPlaceholder(c.Name)
					require.True(t, list.Has(c.Name) || isPlaceholder, "iter %d: %q survived repair", iter, c.Name)
				}
				require.Equal(t, semSum, s.Credits, fmt.Sprintf("iter %d: semester credits", iter))
				sum += semSum
			}
		}
		require.Equal(t, sum, p.TotalCredits, "iter %d: total credits", iter)
		require.Equal(t, count, rep.MajorCount+rep.PlaceholderCount)
	}
}

func TestClassify(t *testing.T) {
	list := curated()
	assert.Equal(t, plan.MajorCourse("ICS 111"), Classify("ICS 111 - Intro", list))
	assert.Equal(t, plan.Placeholder(plan.PlaceholderSupport), Classify("Support Course (Math)", list))
	assert.Equal(t, plan.Placeholder(plan.PlaceholderCapstone), Classify("Senior Capstone", list))
	assert.Equal(t, plan.Unknown("elective"), Classify("elective", list))
	assert.Equal(t, plan.Unknown(""), Classify("", nil))
}
