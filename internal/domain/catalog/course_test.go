package catalog

import "testing"

func TestCourseCode(t *testing.T) {
	c := CourseRecord{Prefix: " ICS ", Number: "111"}
	if got := c.Code(); got != "ICS 111" {
		t.Fatalf("Code: want=%q got=%q", "ICS 111", got)
	}
}

func TestNumericNumber(t *testing.T) {
	cases := []struct {
		number string
		want   int
		ok     bool
	}{
		{"241", 241, true},
		{"241L", 241, true},
		{" 99 ", 99, true},
		{"L101", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := CourseRecord{Number: tc.number}.NumericNumber()
		if got != tc.want || ok != tc.ok {
			t.Fatalf("NumericNumber(%q): want=(%d,%v) got=(%d,%v)", tc.number, tc.want, tc.ok, got, ok)
		}
	}
}

func TestDurationYears(t *testing.T) {
	cases := map[int]int{0: 1, 12: 1, 24: 2, 30: 3, 48: 4}
	for months, want := range cases {
		if got := (CredentialRequirement{TypicalDurationMonths: months}).DurationYears(); got != want {
			t.Fatalf("DurationYears(%d): want=%d got=%d", months, want, got)
		}
	}
}

func TestDisciplineMappingPrefixes(t *testing.T) {
	var d DisciplineMapping
	d.SetPrefixes([]string{"ICS", "MATH"})
	got := d.PrefixList()
	if len(got) != 2 || got[0] != "ICS" || got[1] != "MATH" {
		t.Fatalf("PrefixList: got %v", got)
	}
	d.Prefixes = nil
	if d.PrefixList() != nil {
		t.Fatalf("expected nil for empty column")
	}
}
