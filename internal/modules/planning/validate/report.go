package validate

import "github.com/yungbote/degreeplan-backend/internal/domain/plan"

type CreditStatus string

const (
	UnderTarget CreditStatus = "under_target"
	OnTarget    CreditStatus = "on_target"
	OverTarget  CreditStatus = "over_target"
)

// Discarded records an entry that was rewritten to "Elective".
type Discarded struct {
	YearNumber   int               `json:"year_number"`
	SemesterName plan.SemesterName `json:"semester_name"`
	Name         string            `json:"name"`
	Credits      float64           `json:"credits"`
}

// Report holds the non-fatal diagnostics of one validation pass.
type Report struct {
	MajorCount         int     `json:"major_count"`
	MajorCredits       float64 `json:"major_credits"`
	PlaceholderCount   int     `json:"placeholder_count"`
	PlaceholderCredits float64 `json:"placeholder_credits"`
	// MajorRatio is major credits over total credits, 0 when the plan is empty.
	MajorRatio float64 `json:"major_ratio"`

	Placeholders map[plan.PlaceholderKind]int `json:"placeholders,omitempty"`
	Normalized   int                          `json:"normalized"`
	Discarded    []Discarded                  `json:"discarded"`

	ReportedTotal   float64      `json:"reported_total_credits"`
	TotalCredits    float64      `json:"total_credits"`
	RequiredCredits int          `json:"required_credits"`
	CreditRatio     float64      `json:"credit_ratio"`
	CreditStatus    CreditStatus `json:"credit_status"`

	Warnings []string `json:"warnings"`
}

func (r Report) Repaired() int { return len(r.Discarded) }
