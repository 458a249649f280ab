package synth

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yungbote/degreeplan-backend/internal/domain/plan"
)

// Pointer fields tell "missing" apart from zero values.
type wirePlan struct {
	ProgramName  *string     `json:"program_name"`
	Institution  *string     `json:"institution"`
	TotalCredits *float64    `json:"total_credits"`
	Years        *[]wireYear `json:"years"`
}

type wireYear struct {
	YearNumber *int            `json:"year_number"`
	Semesters  *[]wireSemester `json:"semesters"`
}

type wireSemester struct {
	SemesterName *string       `json:"semester_name"`
	Credits      *float64      `json:"credits"`
	Courses      *[]wireCourse `json:"courses"`
}

type wireCourse struct {
	Name    *string  `json:"name"`
	Credits *float64 `json:"credits"`
}

// ParsePlan validates a decoded model object against the plan shape.
func ParsePlan(obj map[string]any) (*plan.GeneratedPlan, error) {
	if obj == nil {
		return nil, &ParseError{Reason: "empty model output"}
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, &ParseError{Reason: "re-encode model output", Err: err}
	}
	return ParsePlanJSON(raw)
}

// ParsePlanJSON decodes strictly: unknown fields, missing fields, bad
// semester labels, non-sequential years and negative credits are all errors.
func ParsePlanJSON(raw []byte) (*plan.GeneratedPlan, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var w wirePlan
	if err := dec.Decode(&w); err != nil {
		return nil, &ParseError{Reason: "decode plan", Err: err}
	}
	if dec.More() {
		return nil, &ParseError{Reason: "trailing data after plan object"}
	}

	switch {
	case w.ProgramName == nil:
		return nil, missing("program_name")
	case w.Institution == nil:
		return nil, missing("institution")
	case w.TotalCredits == nil:
		return nil, missing("total_credits")
	case w.Years == nil:
		return nil, missing("years")
	}
	if len(*w.Years) == 0 {
		return nil, &ParseError{Reason: "years is empty"}
	}

	out := &plan.GeneratedPlan{
		ProgramName:  *w.ProgramName,
		Institution:  *w.Institution,
		TotalCredits: *w.TotalCredits,
		Years:        make([]plan.Year, 0, len(*w.Years)),
	}
	for yi, wy := range *w.Years {
		path := fmt.Sprintf("years[%d]", yi)
		if wy.YearNumber == nil {
			return nil, missing(path + ".year_number")
		}
		if *wy.YearNumber != yi+1 {
			return nil, &ParseError{Reason: fmt.Sprintf("%s.year_number is %d, want %d", path, *wy.YearNumber, yi+1)}
		}
		if wy.Semesters == nil {
			return nil, missing(path + ".semesters")
		}
		year := plan.Year{YearNumber: *wy.YearNumber, Semesters: make([]plan.Semester, 0, len(*wy.Semesters))}
		for si, ws := range *wy.Semesters {
			spath := fmt.Sprintf("%s.semesters[%d]", path, si)
			sem, err := parseSemester(spath, ws)
			if err != nil {
				return nil, err
			}
			year.Semesters = append(year.Semesters, sem)
		}
		out.Years = append(out.Years, year)
	}
	return out, nil
}

func parseSemester(path string, ws wireSemester) (plan.Semester, error) {
	switch {
	case ws.SemesterName == nil:
		return plan.Semester{}, missing(path + ".semester_name")
	case ws.Credits == nil:
		return plan.Semester{}, missing(path + ".credits")
	case ws.Courses == nil:
		return plan.Semester{}, missing(path + ".courses")
	}
	name := plan.SemesterName(*ws.SemesterName)
	if !name.Valid() {
		return plan.Semester{}, &ParseError{Reason: fmt.Sprintf("%s.semester_name %q is not a known term", path, *ws.SemesterName)}
	}
	if *ws.Credits < 0 {
		return plan.Semester{}, &ParseError{Reason: path + ".credits is negative"}
	}
	sem := plan.Semester{SemesterName: name, Credits: *ws.Credits, Courses: make([]plan.CourseEntry, 0, len(*ws.Courses))}
	for ci, wc := range *ws.Courses {
		cpath := fmt.Sprintf("%s.courses[%d]", path, ci)
		if wc.Name == nil {
			return plan.Semester{}, missing(cpath + ".name")
		}
		if wc.Credits == nil {
			return plan.Semester{}, missing(cpath + ".credits")
		}
		if *wc.Credits < 0 {
			return plan.Semester{}, &ParseError{Reason: cpath + ".credits is negative"}
		}
		sem.Courses = append(sem.Courses, plan.CourseEntry{Name: *wc.Name, Credits: *wc.Credits})
	}
	return sem, nil
}

func missing(field string) error {
	return &ParseError{Reason: "missing field " + field}
}
