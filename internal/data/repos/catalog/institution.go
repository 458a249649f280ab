package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/degreeplan-backend/internal/domain/catalog"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

type InstitutionRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, row *types.Institution) (*types.Institution, error)

	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Institution, error)
	GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.Institution, error)
	// Get accepts either a slug or a uuid string.
	Get(ctx context.Context, tx *gorm.DB, ref string) (*types.Institution, error)

	List(ctx context.Context, tx *gorm.DB) ([]*types.Institution, error)
}

type institutionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInstitutionRepo(db *gorm.DB, baseLog *logger.Logger) InstitutionRepo {
	return &institutionRepo{db: db, log: baseLog.With("repo", "InstitutionRepo")}
}

func (r *institutionRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.Institution) (*types.Institution, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil || strings.TrimSpace(row.Slug) == "" {
		return nil, nil
	}
	if err := t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
		}).
		Create(row).Error; err != nil {
		return nil, err
	}
	// The conflict path keeps the stored id; read it back.
	return r.GetBySlug(ctx, t, row.Slug)
}

func (r *institutionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Institution, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.Institution
	if err := t.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *institutionRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.Institution, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}
	var out []*types.Institution
	if err := t.WithContext(ctx).
		Where("slug = ?", slug).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *institutionRepo) Get(ctx context.Context, tx *gorm.DB, ref string) (*types.Institution, error) {
	ref = strings.TrimSpace(ref)
	if id, err := uuid.Parse(ref); err == nil {
		return r.GetByID(ctx, tx, id)
	}
	return r.GetBySlug(ctx, tx, ref)
}

func (r *institutionRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Institution, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Institution
	if err := t.WithContext(ctx).
		Order("slug ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
