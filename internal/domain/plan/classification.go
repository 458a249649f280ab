package plan

import "strings"

// PlaceholderKind is the closed set of synthetic plan entries.
type PlaceholderKind string

const (
	PlaceholderGenEd          PlaceholderKind = "Gen Ed Requirement"
	PlaceholderSupport        PlaceholderKind = "Support Course"
	PlaceholderElective       PlaceholderKind = "Elective"
	PlaceholderThesisCapstone PlaceholderKind = "Thesis/Capstone"
	PlaceholderCapstone       PlaceholderKind = "Capstone"
)

// PlaceholderKinds is in match priority order: "Thesis/Capstone" must be
// tried before its substring "Capstone".
var PlaceholderKinds = []PlaceholderKind{
	PlaceholderGenEd,
	PlaceholderSupport,
	PlaceholderElective,
	PlaceholderThesisCapstone,
	PlaceholderCapstone,
}

// MatchPlaceholder reports which placeholder label name contains, if any.
// Matching is a case-sensitive substring search.
func MatchPlaceholder(name string) (PlaceholderKind, bool) {
	for _, k := range PlaceholderKinds {
		if strings.Contains(name, string(k)) {
			return k, true
		}
	}
	return "", false
}

type ClassificationKind string

const (
	KindMajorCourse ClassificationKind = "major_course"
	KindPlaceholder ClassificationKind = "placeholder"
	KindUnknown     ClassificationKind = "unknown"
)

// Classification is the tagged result of checking one plan entry. Exactly one
// of Code, Placeholder, or Raw is meaningful, selected by Kind.
type Classification struct {
	Kind        ClassificationKind `json:"kind"`
	Code        string             `json:"code,omitempty"`
	Placeholder PlaceholderKind    `json:"placeholder,omitempty"`
	Raw         string             `json:"raw,omitempty"`
}

func MajorCourse(code string) Classification {
	return Classification{Kind: KindMajorCourse, Code: code}
}

func Placeholder(kind PlaceholderKind) Classification {
	return Classification{Kind: KindPlaceholder, Placeholder: kind}
}

func Unknown(raw string) Classification {
	return Classification{Kind: KindUnknown, Raw: raw}
}
