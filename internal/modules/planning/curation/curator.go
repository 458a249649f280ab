package curation

import (
	"math"
	"sort"

	"github.com/yungbote/degreeplan-backend/internal/domain/catalog"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

// Level buckets a course by the hundreds digit of its number.
type Level string

const (
	Level100   Level = "100"
	Level200   Level = "200"
	Level300   Level = "300"
	Level400   Level = "400"
	LevelOther Level = "other"
)

func LevelOf(c catalog.CourseRecord) Level {
	n, ok := c.NumericNumber()
	if !ok {
		return LevelOther
	}
	switch {
	case n >= 100 && n < 200:
		return Level100
	case n >= 200 && n < 300:
		return Level200
	case n >= 300 && n < 400:
		return Level300
	case n >= 400 && n < 500:
		return Level400
	default:
		return LevelOther
	}
}

// List is the curated vocabulary handed to the generator.
type List struct {
	Courses []catalog.CourseRecord
	// TargetCount is the size the curator aimed for.
	TargetCount int
	// Trimmed is false when the input was small enough to pass through.
	Trimmed bool

	index map[string]struct{}
}

func NewList(courses []catalog.CourseRecord) List {
	l := List{Courses: courses, TargetCount: len(courses)}
	l.buildIndex()
	return l
}

func (l *List) buildIndex() {
	l.index = make(map[string]struct{}, len(l.Courses))
	for _, c := range l.Courses {
		l.index[c.Code()] = struct{}{}
	}
}

func (l List) Len() int { return len(l.Courses) }

// Codes returns every course code in list order.
func (l List) Codes() []string {
	out := make([]string, 0, len(l.Courses))
	for _, c := range l.Courses {
		out = append(out, c.Code())
	}
	return out
}

// Has reports whether code is exactly one of the curated codes.
func (l List) Has(code string) bool {
	if l.index != nil {
		_, ok := l.index[code]
		return ok
	}
	for _, c := range l.Courses {
		if c.Code() == code {
			return true
		}
	}
	return false
}

type Curator struct {
	log *logger.Logger
	cfg Config
}

func NewCurator(log *logger.Logger, cfg Config) *Curator {
	return &Curator{log: log.With("service", "CourseCurator"), cfg: cfg}
}

// TargetCount is min(MaxCourses, ceil(ceil(required/CreditsPerCourse) * Overprovision)).
func (c *Curator) TargetCount(requiredCredits int) int {
	courses := math.Ceil(float64(requiredCredits) / c.cfg.CreditsPerCourse)
	target := int(math.Ceil(courses * c.cfg.Overprovision))
	if target > c.cfg.MaxCourses {
		target = c.cfg.MaxCourses
	}
	if target < 0 {
		target = 0
	}
	return target
}

type quota struct {
	level Level
	share float64
}

func (c *Curator) quotas(durationYears int) []quota {
	if durationYears <= c.cfg.ShortProgramYears {
		return []quota{
			{Level100, c.cfg.ShortL100},
			{Level200, 0}, // remainder
		}
	}
	return []quota{
		{Level100, c.cfg.LongL100},
		{Level200, c.cfg.LongL200},
		{Level300, c.cfg.LongL300},
		{Level400, 0}, // remainder
	}
}

// Curate bounds and level-balances the course list. Identical inputs give
// identical output.
func (c *Curator) Curate(courses []catalog.CourseRecord, requiredCredits, durationYears int) List {
	target := c.TargetCount(requiredCredits)
	if len(courses) <= target {
		l := NewList(courses)
		l.TargetCount = target
		return l
	}

	buckets := map[Level][]catalog.CourseRecord{}
	for _, course := range courses {
		lvl := LevelOf(course)
		if lvl == LevelOther {
			continue
		}
		buckets[lvl] = append(buckets[lvl], course)
	}
	for _, b := range buckets {
		sortBucket(b)
	}

	qs := c.quotas(durationYears)
	out := make([]catalog.CourseRecord, 0, target)
	taken := 0
	for i, q := range qs {
		n := int(math.Floor(q.share*float64(target) + 1e-9))
		if i == len(qs)-1 {
			n = target - taken
		}
		if n < 0 {
			n = 0
		}
		taken += n
		b := buckets[q.level]
		if n > len(b) {
			n = len(b)
		}
		out = append(out, b[:n]...)
	}

	c.log.Debug("course list curated",
		"input", len(courses),
		"target", target,
		"output", len(out),
		"duration_years", durationYears,
	)
	l := NewList(out)
	l.TargetCount = target
	l.Trimmed = true
	return l
}

func sortBucket(b []catalog.CourseRecord) {
	sort.SliceStable(b, func(i, j int) bool {
		ni, _ := b[i].NumericNumber()
		nj, _ := b[j].NumericNumber()
		if ni != nj {
			return ni < nj
		}
		if b[i].Number != b[j].Number {
			return b[i].Number < b[j].Number
		}
		if b[i].Prefix != b[j].Prefix {
			return b[i].Prefix < b[j].Prefix
		}
		return b[i].Title < b[j].Title
	})
}
