package plan

import "testing"

func samplePlan() *GeneratedPlan {
	return &GeneratedPlan{
		ProgramName:  "Computer Science",
		Institution:  "University of Hawaii at Manoa",
		TotalCredits: 999,
		Years: []Year{
			{YearNumber: 1, Semesters: []Semester{
				{SemesterName: SemesterFall, Courses: []CourseEntry{{Name: "ICS 111", Credits: 4}, {Name: "Gen Ed Requirement", Credits: 3}}},
				{SemesterName: SemesterSpring, Courses: []CourseEntry{{Name: "ICS 211", Credits: 4}}},
			}},
			{YearNumber: 2, Semesters: []Semester{
				{SemesterName: SemesterSummer, Courses: []CourseEntry{{Name: "Elective", Credits: 1.5}}},
			}},
		},
	}
}

func TestSumCredits(t *testing.T) {
	if got := samplePlan().SumCredits(); got != 12.5 {
		t.Fatalf("SumCredits: want=12.5 got=%v", got)
	}
	var nilPlan *GeneratedPlan
	if nilPlan.SumCredits() != 0 {
		t.Fatalf("expected 0 for nil plan")
	}
}

func TestEntriesVisitsInOrderAndMutates(t *testing.T) {
	p := samplePlan()
	var names []string
	p.Entries(func(y, s int, e *CourseEntry) {
		names = append(names, e.Name)
		e.Credits = 1
	})
	want := []string{"ICS 111", "Gen Ed Requirement", "ICS 211", "Elective"}
	if len(names) != len(want) {
		t.Fatalf("entries: want=%v got=%v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("entries[%d]: want=%q got=%q", i, want[i], names[i])
		}
	}
	if p.SumCredits() != 4 {
		t.Fatalf("expected mutation through pointer, sum=%v", p.SumCredits())
	}
}

func TestSemesterNameValid(t *testing.T) {
	if !SemesterSummer.Valid() || SemesterName("winter_semester").Valid() {
		t.Fatalf("unexpected validity")
	}
}

func TestMatchPlaceholder(t *testing.T) {
	cases := []struct {
		name string
		want PlaceholderKind
		ok   bool
	}{
		{"Gen Ed Requirement (Diversification)", PlaceholderGenEd, true},
		{"Upper Division Elective", PlaceholderElective, true},
		{"Thesis/Capstone Project", PlaceholderThesisCapstone, true},
		{"Senior Capstone", PlaceholderCapstone, true},
		{"Support Course", PlaceholderSupport, true},
		{"elective", "", false},
		{"MATH 999", "", false},
	}
	for _, tc := range cases {
		got, ok := MatchPlaceholder(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("MatchPlaceholder(%q): want=(%q,%v) got=(%q,%v)", tc.name, tc.want, tc.ok, got, ok)
		}
	}
}
