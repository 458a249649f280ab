package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/yungbote/degreeplan-backend/internal/data/repos"
	types "github.com/yungbote/degreeplan-backend/internal/domain/catalog"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

// SeedFile is the on-disk catalog format consumed by `planctl seed`.
type SeedFile struct {
	Version      string            `yaml:"version"`
	Institutions []SeedInstitution `yaml:"institutions"`
	Credentials  []SeedCredential  `yaml:"credentials"`
}

type SeedInstitution struct {
	Slug        string           `yaml:"slug"`
	Name        string           `yaml:"name"`
	Disciplines []SeedDiscipline `yaml:"disciplines"`
	Courses     []SeedCourse     `yaml:"courses"`
}

type SeedDiscipline struct {
	Discipline string   `yaml:"discipline"`
	Prefixes   []string `yaml:"prefixes"`
}

type SeedCourse struct {
	Prefix        string  `yaml:"prefix"`
	Number        string  `yaml:"number"`
	Title         string  `yaml:"title"`
	Credits       float64 `yaml:"credits"`
	Department    string  `yaml:"department"`
	Prerequisites string  `yaml:"prerequisites"`
}

type SeedCredential struct {
	ProgramTitle          string `yaml:"program_title"`
	CredentialCode        string `yaml:"credential_code"`
	CredentialName        string `yaml:"credential_name"`
	RequiredCredits       int    `yaml:"required_credits"`
	TypicalDurationMonths int    `yaml:"typical_duration_months"`
	Undergraduate         bool   `yaml:"undergraduate"`
}

// SeedSummary reports what Apply wrote.
type SeedSummary struct {
	Institutions int
	Courses      int
	Disciplines  int
	Credentials  int
}

func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (*SeedFile, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}
	if err := validateSeed(&seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

func validateSeed(seed *SeedFile) error {
	if seed == nil {
		return errors.New("missing seed")
	}
	if len(seed.Institutions) == 0 && len(seed.Credentials) == 0 {
		return errors.New("seed has no institutions or credentials")
	}
	seen := map[string]bool{}
	for i, inst := range seed.Institutions {
		slug := strings.TrimSpace(inst.Slug)
		if slug == "" {
			return fmt.Errorf("institutions[%d]: slug is required", i)
		}
		if seen[slug] {
			return fmt.Errorf("duplicate institution slug: %s", slug)
		}
		seen[slug] = true
		for j, c := range inst.Courses {
			if strings.TrimSpace(c.Prefix) == "" || strings.TrimSpace(c.Number) == "" {
				return fmt.Errorf("%s courses[%d]: prefix and number are required", slug, j)
			}
			if c.Credits < 0 {
				return fmt.Errorf("%s %s %s: negative credits", slug, c.Prefix, c.Number)
			}
		}
		for j, d := range inst.Disciplines {
			if strings.TrimSpace(d.Discipline) == "" {
				return fmt.Errorf("%s disciplines[%d]: name is required", slug, j)
			}
		}
	}
	for i, c := range seed.Credentials {
		if strings.TrimSpace(c.ProgramTitle) == "" || strings.TrimSpace(c.CredentialCode) == "" {
			return fmt.Errorf("credentials[%d]: program_title and credential_code are required", i)
		}
		if c.RequiredCredits <= 0 {
			return fmt.Errorf("credentials[%d]: required_credits must be positive", i)
		}
	}
	return nil
}

type Seeder struct {
	db    *gorm.DB
	log   *logger.Logger
	repos repos.Catalog
	// Concurrency bounds parallel institution writes; sqlite callers should use 1.
	Concurrency int
}

func NewSeeder(db *gorm.DB, log *logger.Logger, r repos.Catalog) *Seeder {
	return &Seeder{db: db, log: log.With("service", "CatalogSeeder"), repos: r, Concurrency: 4}
}

// Apply upserts every institution in its own transaction, then the credentials.
func (s *Seeder) Apply(ctx context.Context, seed *SeedFile) (SeedSummary, error) {
	var sum SeedSummary
	if err := validateSeed(seed); err != nil {
		return sum, err
	}

	limit := s.Concurrency
	if limit <= 0 {
		limit = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	counts := make([]SeedSummary, len(seed.Institutions))
	for i := range seed.Institutions {
		i := i
		inst := seed.Institutions[i]
		g.Go(func() error {
			c, err := s.applyInstitution(gctx, seed.Version, inst)
			if err != nil {
				return fmt.Errorf("seed %s: %w", inst.Slug, err)
			}
			counts[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}
	for _, c := range counts {
		sum.Institutions += c.Institutions
		sum.Courses += c.Courses
		sum.Disciplines += c.Disciplines
	}

	if len(seed.Credentials) > 0 {
		rows := make([]*types.CredentialRequirement, 0, len(seed.Credentials))
		for _, c := range seed.Credentials {
			rows = append(rows, &types.CredentialRequirement{
				ProgramTitle:          c.ProgramTitle,
				CredentialCode:        c.CredentialCode,
				CredentialName:        c.CredentialName,
				RequiredCredits:       c.RequiredCredits,
				TypicalDurationMonths: c.TypicalDurationMonths,
				IsUndergraduateLevel:  c.Undergraduate,
			})
		}
		if err := s.repos.Credentials.UpsertMany(ctx, s.db, rows); err != nil {
			return sum, fmt.Errorf("seed credentials: %w", err)
		}
		sum.Credentials = len(rows)
	}

	s.log.Info("catalog seeded",
		"version", seed.Version,
		"institutions", sum.Institutions,
		"courses", sum.Courses,
		"disciplines", sum.Disciplines,
		"credentials", sum.Credentials,
	)
	return sum, nil
}

func (s *Seeder) applyInstitution(ctx context.Context, version string, in SeedInstitution) (SeedSummary, error) {
	var sum SeedSummary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inst, err := s.repos.Institutions.Upsert(ctx, tx, &types.Institution{
			Slug: strings.TrimSpace(in.Slug),
			Name: strings.TrimSpace(in.Name),
		})
		if err != nil {
			return err
		}
		if inst == nil {
			return fmt.Errorf("institution upsert returned nothing")
		}
		sum.Institutions = 1

		courses := make([]*types.CourseRecord, 0, len(in.Courses))
		for _, c := range in.Courses {
			courses = append(courses, &types.CourseRecord{
				InstitutionID: inst.ID,
				Prefix:        strings.ToUpper(strings.TrimSpace(c.Prefix)),
				Number:        strings.TrimSpace(c.Number),
				Title:         strings.TrimSpace(c.Title),
				Credits:       c.Credits,
				Department:    strings.TrimSpace(c.Department),
				Prerequisites: strings.TrimSpace(c.Prerequisites),
			})
		}
		if err := s.repos.Courses.UpsertMany(ctx, tx, courses); err != nil {
			return err
		}
		sum.Courses = len(courses)

		// An omitted disciplines list leaves any stored table untouched.
		if in.Disciplines == nil {
			return nil
		}
		mappings := make([]*types.DisciplineMapping, 0, len(in.Disciplines))
		for _, d := range in.Disciplines {
			m := &types.DisciplineMapping{
				Discipline: strings.ToLower(strings.TrimSpace(d.Discipline)),
				Version:    version,
			}
			m.SetPrefixes(normalizePrefixes(d.Prefixes))
			mappings = append(mappings, m)
		}
		if err := s.repos.Disciplines.ReplaceForInstitution(ctx, tx, inst.ID, mappings); err != nil {
			return err
		}
		sum.Disciplines = len(mappings)
		return nil
	})
	return sum, err
}

// normalizePrefixes matches the upper-cased form course prefixes are stored in.
func normalizePrefixes(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
