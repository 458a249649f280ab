package prompts

type PromptName string

const (
	// Plan synthesis
	PromptDegreePlan PromptName = "degree_plan"
)
