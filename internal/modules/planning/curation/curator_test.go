package curation

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/degreeplan-backend/internal/domain/catalog"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

func newCurator() *Curator {
	return NewCurator(logger.NewNop(), DefaultConfig())
}

// courses builds n courses per level starting at base+1, e.g. ICS 101..ICS 130.
func courses(prefix string, perLevel map[int]int) []catalog.CourseRecord {
	var out []catalog.CourseRecord
	for _, base := range []int{0, 100, 200, 300, 400, 500, 600} {
		for i := 1; i <= perLevel[base]; i++ {
			out = append(out, catalog.CourseRecord{
				Prefix:  prefix,
				Number:  fmt.Sprintf("%d", base+i),
				Title:   fmt.Sprintf("%s course %d", prefix, base+i),
				Credits: 3,
			})
		}
	}
	return out
}

func countLevels(l List) map[Level]int {
	out := map[Level]int{}
	for _, c := range l.Courses {
		out[LevelOf(c)]++
	}
	return out
}

func TestTargetCount(t *testing.T) {
	c := newCurator()
	cases := map[int]int{
		60:   36,  // 20 courses * 1.8
		120:  72,  // 40 courses * 1.8
		31:   20,  // ceil(31/3)=11, ceil(19.8)=20
		1000: 150, // capped
		0:    0,
	}
	for credits, want := range cases {
		assert.Equal(t, want, c.TargetCount(credits), "credits=%d", credits)
	}
}

func TestCuratePassThroughWhenSmall(t *testing.T) {
	in := courses("ICS", map[int]int{0: 2, 300: 3, 600: 2})
	out := newCurator().Curate(in, 120, 4)
	assert.False(t, out.Trimmed)
	assert.Equal(t, in, out.Courses, "small inputs are returned unchanged, other levels included")
	assert.Equal(t, 72, out.TargetCount)
}

func TestCurateShortProgram(t *testing.T) {
	in := courses("MATH", map[int]int{100: 30, 200: 30, 300: 20, 400: 20})
	out := newCurator().Curate(in, 60, 2)
	require.True(t, out.Trimmed)
	require.Equal(t, 36, out.Len())

	levels := countLevels(out)
	assert.Equal(t, 14, levels[Level100])
	assert.Equal(t, 22, levels[Level200])
	assert.Zero(t, levels[Level300])
	assert.Zero(t, levels[Level400])

	// Lowest numbers first within each level.
	assert.Equal(t, "MATH 101", out.Courses[0].Code())
	assert.Equal(t, "MATH 114", out.Courses[13].Code())
	assert.Equal(t, "MATH 201", out.Courses[14].Code())
}

func TestCurateFourYearProgram(t *testing.T) {
	in := courses("ICS", map[int]int{0: 5, 100: 30, 200: 30, 300: 30, 400: 30, 600: 5})
	out := newCurator().Curate(in, 120, 4)
	require.Equal(t, 72, out.Len())

	levels := countLevels(out)
	assert.Equal(t, 18, levels[Level100])
	assert.Equal(t, 21, levels[Level200])
	assert.Equal(t, 21, levels[Level300])
	assert.Equal(t, 12, levels[Level400])
	assert.Zero(t, levels[LevelOther])

	// Concatenated in level order.
	prev := Level100
	for _, c := range out.Courses {
		lvl := LevelOf(c)
		assert.GreaterOrEqual(t, string(lvl), string(prev))
		prev = lvl
	}
}

func TestCurateShortBucketTakesWhatExists(t *testing.T) {
	in := courses("ICS", map[int]int{100: 5, 200: 60})
	out := newCurator().Curate(in, 60, 2)
	levels := countLevels(out)
	assert.Equal(t, 5, levels[Level100])
	assert.Equal(t, 22, levels[Level200])
}

func TestCurateIsDeterministic(t *testing.T) {
	in := append(courses("ICS", map[int]int{100: 40, 200: 40, 300: 40, 400: 40}),
		courses("MATH", map[int]int{100: 20, 200: 20, 300: 10, 400: 10})...)
	c := newCurator()
	first := c.Curate(in, 120, 4)
	second := c.Curate(in, 120, 4)
	assert.Equal(t, first.Courses, second.Courses)

	shuffled := append([]catalog.CourseRecord(nil), in...)
	rand.New(rand.NewSource(7)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	third := c.Curate(shuffled, 120, 4)
	assert.Equal(t, first.Courses, third.Courses, "input order must not leak into the result")

	// Ties on number break by prefix.
	assert.Equal(t, "ICS 101", first.Courses[0].Code())
	assert.Equal(t, "MATH 101", first.Courses[1].Code())
}

func TestListHas(t *testing.T) {
	l := NewList([]catalog.CourseRecord{{Prefix: "ICS", Number: "111"}})
	assert.True(t, l.Has("ICS 111"))
	assert.False(t, l.Has("ICS 1110"))
	assert.False(t, l.Has("ics 111"))
	assert.Equal(t, []string{"ICS 111"}, l.Codes())

	raw := List{Courses: []catalog.CourseRecord{{Prefix: "MATH", Number: "241"}}}
	assert.True(t, raw.Has("MATH 241"))
}

func TestLevelOf(t *testing.T) {
	cases := map[string]Level{"99": LevelOther, "100": Level100, "241L": Level200, "499": Level400, "500": LevelOther, "X1": LevelOther}
	for number, want := range cases {
		assert.Equal(t, want, LevelOf(catalog.CourseRecord{Number: number}), "number=%s", number)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CURATION_MAX_COURSES", "90")
	t.Setenv("CURATION_OVERPROVISION", "2")
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.MaxCourses)
	assert.Equal(t, 2.0, cfg.Overprovision)
	assert.Equal(t, 0.25, cfg.LongL100)

	t.Setenv("CURATION_LONG_L300", "0.9")
	_, err = ConfigFromEnv()
	assert.Error(t, err)
}
