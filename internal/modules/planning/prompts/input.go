package prompts

// Input is a superset of all fields any prompt might need.
// Missing fields render empty strings (templates use missingkey=zero).
type Input struct {
	// Program context
	ProgramTitle    string
	CredentialName  string
	InstitutionName string
	RequiredCredits int
	DurationYears   int
	Undergraduate   bool
	SkillsCSV       string
	// Curated vocabulary, one "CODE - Title (N credits)" line per course
	CourseList  string
	CourseCount int
}
