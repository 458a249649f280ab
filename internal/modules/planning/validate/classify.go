package validate

import (
	"strings"

	"github.com/yungbote/degreeplan-backend/internal/domain/plan"
)

// CodeSet is the curated vocabulary. curation.List satisfies it.
type CodeSet interface {
	Has(code string) bool
}

// StripTitle drops a " - Title" suffix: "ICS 111 - Intro" -> "ICS 111".
func StripTitle(name string) string {
	if i := strings.Index(name, " - "); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// Classify decides what a plan entry is. Exact curated codes win over
// placeholder labels; anything else is Unknown.
func Classify(name string, codes CodeSet) plan.Classification {
	if code := StripTitle(name); code != "" && codes != nil && codes.Has(code) {
		return plan.MajorCourse(code)
	}
	if kind, ok := plan.MatchPlaceholder(name); ok {
		return plan.Placeholder(kind)
	}
	return plan.Unknown(name)
}
