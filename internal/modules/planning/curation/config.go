package curation

import (
	"fmt"

	"github.com/yungbote/degreeplan-backend/internal/platform/envutil"
)

// Config holds the curation heuristics. The defaults are empirical and meant
// to be tuned, so every field can be overridden through CURATION_* env vars.
type Config struct {
	MaxCourses       int
	CreditsPerCourse float64
	Overprovision    float64
	// Programs lasting at most this many years only draw from levels 100 and 200.
	ShortProgramYears int

	ShortL100 float64 // level 200 receives the remainder
	LongL100  float64
	LongL200  float64
	LongL300  float64 // level 400 receives the remainder
}

func DefaultConfig() Config {
	return Config{
		MaxCourses:        150,
		CreditsPerCourse:  3,
		Overprovision:     1.8,
		ShortProgramYears: 2,
		ShortL100:         0.40,
		LongL100:          0.25,
		LongL200:          0.30,
		LongL300:          0.30,
	}
}

func ConfigFromEnv() (Config, error) {
	d := DefaultConfig()
	cfg := Config{
		MaxCourses:        envutil.Int("CURATION_MAX_COURSES", d.MaxCourses),
		CreditsPerCourse:  envutil.Float("CURATION_CREDITS_PER_COURSE", d.CreditsPerCourse),
		Overprovision:     envutil.Float("CURATION_OVERPROVISION", d.Overprovision),
		ShortProgramYears: envutil.Int("CURATION_SHORT_PROGRAM_YEARS", d.ShortProgramYears),
		ShortL100:         envutil.Float("CURATION_SHORT_L100", d.ShortL100),
		LongL100:          envutil.Float("CURATION_LONG_L100", d.LongL100),
		LongL200:          envutil.Float("CURATION_LONG_L200", d.LongL200),
		LongL300:          envutil.Float("CURATION_LONG_L300", d.LongL300),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxCourses <= 0 {
		return fmt.Errorf("curation: max courses must be positive, got %d", c.MaxCourses)
	}
	if c.CreditsPerCourse <= 0 {
		return fmt.Errorf("curation: credits per course must be positive, got %v", c.CreditsPerCourse)
	}
	if c.Overprovision <= 0 {
		return fmt.Errorf("curation: overprovision must be positive, got %v", c.Overprovision)
	}
	for name, v := range map[string]float64{
		"short_l100": c.ShortL100,
		"long_l100":  c.LongL100,
		"long_l200":  c.LongL200,
		"long_l300":  c.LongL300,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("curation: quota %s out of range: %v", name, v)
		}
	}
	if c.LongL100+c.LongL200+c.LongL300 > 1 {
		return fmt.Errorf("curation: long quotas exceed 100%%")
	}
	return nil
}
