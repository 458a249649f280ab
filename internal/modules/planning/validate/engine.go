package validate

import (
	"fmt"

	"github.com/yungbote/degreeplan-backend/internal/domain/plan"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

const (
	// DefaultOverTargetRatio flags plans more than 10% above the requirement.
	DefaultOverTargetRatio = 1.10
)

type Options struct {
	RequiredCredits int
	// DurationYears, when set, is the year count the plan is expected to span.
	DurationYears int
	// OverTargetRatio defaults to DefaultOverTargetRatio when zero.
	OverTargetRatio float64
	Log             *logger.Logger
}

// Validate repairs p in place and reports on it. Every entry ends as either a
// curated code or a placeholder; semester credits and total_credits are
// recomputed from the entries. It never fails.
func Validate(p *plan.GeneratedPlan, codes CodeSet, opts Options) Report {
	rep := Report{
		RequiredCredits: opts.RequiredCredits,
		Placeholders:    map[plan.PlaceholderKind]int{},
		Discarded:       []Discarded{},
		Warnings:        []string{},
	}
	if p == nil {
		rep.CreditStatus = status(0, opts)
		rep.Warnings = append(rep.Warnings, "plan is empty")
		return rep
	}
	rep.ReportedTotal = p.TotalCredits

	p.Entries(func(yi, si int, entry *plan.CourseEntry) {
		c := Classify(entry.Name, codes)
		switch c.Kind {
		case plan.KindMajorCourse:
			if entry.Name != c.Code {
				rep.Normalized++
			}
			entry.Name = c.Code
			rep.MajorCount++
			rep.MajorCredits += entry.Credits
		case plan.KindPlaceholder:
			rep.PlaceholderCount++
			rep.PlaceholderCredits += entry.Credits
			rep.Placeholders[c.Placeholder]++
		default:
			rep.Discarded = append(rep.Discarded, Discarded{
				YearNumber:   p.Years[yi].YearNumber,
				SemesterName: p.Years[yi].Semesters[si].SemesterName,
				Name:         c.Raw,
				Credits:      entry.Credits,
			})
			entry.Name = string(plan.PlaceholderElective)
			rep.PlaceholderCount++
			rep.PlaceholderCredits += entry.Credits
			rep.Placeholders[plan.PlaceholderElective]++
		}
	})
	for yi := range p.Years {
		for si := range p.Years[yi].Semesters {
			sem := &p.Years[yi].Semesters[si]
			sem.Credits = sem.SumCredits()
		}
	}
	p.TotalCredits = p.SumCredits()

	rep.TotalCredits = p.TotalCredits
	if rep.TotalCredits > 0 {
		rep.MajorRatio = rep.MajorCredits / rep.TotalCredits
	}
	if opts.RequiredCredits > 0 {
		rep.CreditRatio = rep.TotalCredits / float64(opts.RequiredCredits)
	}
	rep.CreditStatus = status(rep.TotalCredits, opts)

	if opts.DurationYears > 0 && len(p.Years) != opts.DurationYears {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("plan spans %d years, expected %d", len(p.Years), opts.DurationYears))
	}
	if n := len(rep.Discarded); n > 0 {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("replaced %d unknown course entries with Elective", n))
	}
	switch rep.CreditStatus {
	case UnderTarget:
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("total credits %.1f below required %d", rep.TotalCredits, opts.RequiredCredits))
	case OverTarget:
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("total credits %.1f more than %.0f%% of required %d", rep.TotalCredits, overRatio(opts)*100, opts.RequiredCredits))
	}

	logReport(opts.Log, rep)
	return rep
}

func overRatio(opts Options) float64 {
	if opts.OverTargetRatio > 0 {
		return opts.OverTargetRatio
	}
	return DefaultOverTargetRatio
}

func status(total float64, opts Options) CreditStatus {
	if opts.RequiredCredits <= 0 {
		return OnTarget
	}
	ratio := total / float64(opts.RequiredCredits)
	switch {
	case ratio < 1:
		return UnderTarget
	case ratio > overRatio(opts):
		return OverTarget
	default:
		return OnTarget
	}
}

func logReport(log *logger.Logger, rep Report) {
	if log == nil {
		return
	}
	log = log.With("service", "PlanValidator")
	for _, d := range rep.Discarded {
		log.Warn("discarded unknown course entry",
			"name", d.Name,
			"credits", d.Credits,
			"year", d.YearNumber,
			"semester", string(d.SemesterName),
		)
	}
	kv := []interface{}{
		"major_count", rep.MajorCount,
		"major_credits", rep.MajorCredits,
		"placeholder_count", rep.PlaceholderCount,
		"placeholder_credits", rep.PlaceholderCredits,
		"major_ratio", rep.MajorRatio,
		"total_credits", rep.TotalCredits,
		"reported_total_credits", rep.ReportedTotal,
		"required_credits", rep.RequiredCredits,
		"credit_status", string(rep.CreditStatus),
	}
	if rep.CreditStatus != OnTarget {
		log.Warn("plan credits outside target band", kv...)
		return
	}
	log.Info("plan validated", kv...)
}
