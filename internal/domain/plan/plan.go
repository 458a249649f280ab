package plan

// SemesterName is one of the three fixed term labels in the wire format.
type SemesterName string

const (
	SemesterFall   SemesterName = "fall_semester"
	SemesterSpring SemesterName = "spring_semester"
	SemesterSummer SemesterName = "summer_semester"
)

func (s SemesterName) Valid() bool {
	switch s {
	case SemesterFall, SemesterSpring, SemesterSummer:
		return true
	default:
		return false
	}
}

// GeneratedPlan is the wire shape exchanged with the model and returned to callers.
type GeneratedPlan struct {
	ProgramName  string  `json:"program_name"`
	Institution  string  `json:"institution"`
	TotalCredits float64 `json:"total_credits"`
	Years        []Year  `json:"years"`
}

type Year struct {
	YearNumber int        `json:"year_number"`
	Semesters  []Semester `json:"semesters"`
}

type Semester struct {
	SemesterName SemesterName  `json:"semester_name"`
	Credits      float64       `json:"credits"`
	Courses      []CourseEntry `json:"courses"`
}

type CourseEntry struct {
	Name    string  `json:"name"`
	Credits float64 `json:"credits"`
}

// SumCredits adds every course credit across every semester of every year.
func (p *GeneratedPlan) SumCredits() float64 {
	if p == nil {
		return 0
	}
	total := 0.0
	for _, y := range p.Years {
		for _, s := range y.Semesters {
			total += s.SumCredits()
		}
	}
	return total
}

func (s Semester) SumCredits() float64 {
	total := 0.0
	for _, c := range s.Courses {
		total += c.Credits
	}
	return total
}

// Entries calls fn with a pointer to every course entry in plan order.
func (p *GeneratedPlan) Entries(fn func(year, semester int, entry *CourseEntry)) {
	if p == nil {
		return
	}
	for yi := range p.Years {
		for si := range p.Years[yi].Semesters {
			courses := p.Years[yi].Semesters[si].Courses
			for ci := range courses {
				fn(yi, si, &courses[ci])
			}
		}
	}
}
