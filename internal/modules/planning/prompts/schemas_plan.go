package prompts

import "github.com/yungbote/degreeplan-backend/internal/domain/plan"

func DegreePlanSchema() map[string]any {
	course := ObjectSchema(map[string]any{
		"name":    StringSchema(),
		"credits": NumberSchema(),
	}, []string{"name", "credits"})

	semester := ObjectSchema(map[string]any{
		"semester_name": EnumSchema(
			string(plan.SemesterFall),
			string(plan.SemesterSpring),
			string(plan.SemesterSummer),
		),
		"credits": NumberSchema(),
		"courses": ArraySchema(course),
	}, []string{"semester_name", "credits", "courses"})

	year := ObjectSchema(map[string]any{
		"year_number": IntSchema(),
		"semesters":   ArraySchema(semester),
	}, []string{"year_number", "semesters"})

	return ObjectSchema(map[string]any{
		"program_name":  StringSchema(),
		"institution":   StringSchema(),
		"total_credits": NumberSchema(),
		"years":         ArraySchema(year),
	}, []string{"program_name", "institution", "total_credits", "years"})
}
