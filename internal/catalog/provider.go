package catalog

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/degreeplan-backend/internal/data/repos"
	types "github.com/yungbote/degreeplan-backend/internal/domain/catalog"
	pkgerrors "github.com/yungbote/degreeplan-backend/internal/pkg/errors"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

// Provider is the read side of the course catalog. institutionID is the
// institution slug or its uuid.
type Provider interface {
	Institution(ctx context.Context, institutionID string) (*types.Institution, error)
	CoursesForInstitution(ctx context.Context, institutionID string) ([]types.CourseRecord, error)
	// DisciplineMapping returns ok=false when the institution has no dedicated table.
	DisciplineMapping(ctx context.Context, institutionID string) (map[string][]string, bool, error)
	CoursePrefixes(ctx context.Context, institutionID string) ([]string, error)
}

type RequirementsProvider interface {
	RequirementsFor(ctx context.Context, programTitle, credentialCode string) (*types.CredentialRequirement, error)
}

type RepoProvider struct {
	db    *gorm.DB
	log   *logger.Logger
	repos repos.Catalog
}

// NewProvider returns a Provider and RequirementsProvider backed by the gorm repos.
func NewProvider(db *gorm.DB, log *logger.Logger, r repos.Catalog) *RepoProvider {
	return &RepoProvider{db: db, log: log.With("service", "CatalogProvider"), repos: r}
}

func (p *RepoProvider) Institution(ctx context.Context, institutionID string) (*types.Institution, error) {
	if strings.TrimSpace(institutionID) == "" {
		return nil, fmt.Errorf("institution id: %w", pkgerrors.ErrInvalidArgument)
	}
	inst, err := p.repos.Institutions.Get(ctx, p.db, institutionID)
	if err != nil {
		return nil, fmt.Errorf("load institution %q: %w", institutionID, err)
	}
	if inst == nil {
		return nil, fmt.Errorf("institution %q: %w", institutionID, pkgerrors.ErrNotFound)
	}
	return inst, nil
}

func (p *RepoProvider) CoursesForInstitution(ctx context.Context, institutionID string) ([]types.CourseRecord, error) {
	inst, err := p.Institution(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	rows, err := p.repos.Courses.ListByInstitution(ctx, p.db, inst.ID)
	if err != nil {
		return nil, fmt.Errorf("load courses for %q: %w", institutionID, err)
	}
	out := make([]types.CourseRecord, 0, len(rows))
	for _, r := range rows {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (p *RepoProvider) DisciplineMapping(ctx context.Context, institutionID string) (map[string][]string, bool, error) {
	inst, err := p.Institution(ctx, institutionID)
	if err != nil {
		return nil, false, err
	}
	rows, err := p.repos.Disciplines.ListByInstitution(ctx, p.db, inst.ID)
	if err != nil {
		return nil, false, fmt.Errorf("load discipline mapping for %q: %w", institutionID, err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	out := make(map[string][]string, len(rows))
	for _, r := range rows {
		if r == nil || r.Discipline == "" {
			continue
		}
		out[r.Discipline] = r.PrefixList()
	}
	return out, len(out) > 0, nil
}

func (p *RepoProvider) CoursePrefixes(ctx context.Context, institutionID string) ([]string, error) {
	inst, err := p.Institution(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	prefixes, err := p.repos.Courses.ListPrefixes(ctx, p.db, inst.ID)
	if err != nil {
		return nil, fmt.Errorf("load prefixes for %q: %w", institutionID, err)
	}
	return prefixes, nil
}

func (p *RepoProvider) RequirementsFor(ctx context.Context, programTitle, credentialCode string) (*types.CredentialRequirement, error) {
	if strings.TrimSpace(programTitle) == "" || strings.TrimSpace(credentialCode) == "" {
		return nil, fmt.Errorf("program title and credential code: %w", pkgerrors.ErrInvalidArgument)
	}
	req, err := p.repos.Credentials.Get(ctx, p.db, programTitle, credentialCode)
	if err != nil {
		return nil, fmt.Errorf("load requirements for %q/%q: %w", programTitle, credentialCode, err)
	}
	if req == nil {
		return nil, fmt.Errorf("requirements for %q/%q: %w", programTitle, credentialCode, pkgerrors.ErrNotFound)
	}
	return req, nil
}
