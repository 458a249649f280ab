package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/degreeplan-backend/internal/domain/catalog"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

type DisciplineMappingRepo interface {
	// ReplaceForInstitution swaps the whole table for one institution atomically.
	ReplaceForInstitution(ctx context.Context, tx *gorm.DB, institutionID uuid.UUID, rows []*types.DisciplineMapping) error
	ListByInstitution(ctx context.Context, tx *gorm.DB, institutionID uuid.UUID) ([]*types.DisciplineMapping, error)
}

type disciplineMappingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDisciplineMappingRepo(db *gorm.DB, baseLog *logger.Logger) DisciplineMappingRepo {
	return &disciplineMappingRepo{db: db, log: baseLog.With("repo", "DisciplineMappingRepo")}
}

func (r *disciplineMappingRepo) ReplaceForInstitution(ctx context.Context, tx *gorm.DB, institutionID uuid.UUID, rows []*types.DisciplineMapping) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if institutionID == uuid.Nil {
		return nil
	}
	return t.WithContext(ctx).Transaction(func(txx *gorm.DB) error {
		if err := txx.Where("institution_id = ?", institutionID).
			Delete(&types.DisciplineMapping{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		for i, row := range rows {
			row.InstitutionID = institutionID
			row.Position = i
		}
		return txx.Create(&rows).Error
	})
}

func (r *disciplineMappingRepo) ListByInstitution(ctx context.Context, tx *gorm.DB, institutionID uuid.UUID) ([]*types.DisciplineMapping, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.DisciplineMapping
	if institutionID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("institution_id = ?", institutionID).
		Order("position ASC, discipline ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
