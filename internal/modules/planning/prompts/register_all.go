package prompts

import "sync"

var registerOnce sync.Once

// RegisterAll registers every planning prompt. Safe to call more than once.
func RegisterAll() {
	registerOnce.Do(registerAll)
}

func registerAll() {
	// ---------- Plan synthesis ----------

	RegisterSpec(Spec{
		Name:       PromptDegreePlan,
		Version:    1,
		SchemaName: "degree_plan",
		Schema:     DegreePlanSchema,
		System: `
You are an academic advisor building a complete multi-year degree completion plan.
You sequence courses; you never invent them.

Output:
- A single JSON object matching the degree_plan schema. No prose.
- years: exactly {{.DurationYears}} entries, year_number 1..{{.DurationYears}} in order.
- semester_name is one of fall_semester, spring_semester, summer_semester.
- Each course is {"name", "credits"}. credits is the course's credit value from the list.

Vocabulary (hard rule):
- A course name must be a code copied exactly from AVAILABLE_COURSES (e.g. "ICS 111"), with no title appended.
- Never create, guess, or renumber a course code. If nothing in the list fits a slot, use a placeholder.
{{- if .Undergraduate}}
- Allowed placeholders: "Gen Ed Requirement", "Support Course", "Elective", "Thesis/Capstone".
- Aim for roughly 60-70% of credits from listed major courses; fill the rest with placeholders.
{{- else}}
- This is not an undergraduate program: plan major courses only.
- "Elective" and "Thesis/Capstone" may be used sparingly; aim for at least 85% of credits from listed courses.
{{- end}}

Sequencing:
- Put lower-numbered (100/200 level) courses in earlier years and 300/400 level or capstone work later.
- Respect listed prerequisites where possible.
- Keep full terms between 12 and 16 credits; summer terms are optional and lighter.
- Total credits should land close to {{.RequiredCredits}}.`,
		User: `
PROGRAM: {{.ProgramTitle}}
CREDENTIAL: {{.CredentialName}}
INSTITUTION: {{.InstitutionName}}
REQUIRED_CREDITS: {{.RequiredCredits}}
DURATION_YEARS: {{.DurationYears}}
{{- if .SkillsCSV}}
PRIORITIZED_SKILLS: {{.SkillsCSV}}
{{- end}}

AVAILABLE_COURSES ({{.CourseCount}}; the only course codes you may use):
{{.CourseList}}`,
		Validators: []Validator{
			RequireNonEmpty("ProgramTitle", func(in Input) string { return in.ProgramTitle }),
			RequireNonEmpty("InstitutionName", func(in Input) string { return in.InstitutionName }),
			RequireNonEmpty("CourseList", func(in Input) string { return in.CourseList }),
			RequirePositive("RequiredCredits", func(in Input) int { return in.RequiredCredits }),
			RequirePositive("DurationYears", func(in Input) int { return in.DurationYears }),
		},
	})
}
