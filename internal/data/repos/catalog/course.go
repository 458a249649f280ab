package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/degreeplan-backend/internal/domain/catalog"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

type CourseRepo interface {
	UpsertMany(ctx context.Context, tx *gorm.DB, rows []*types.CourseRecord) error

	ListByInstitution(ctx context.Context, tx *gorm.DB, institutionID uuid.UUID) ([]*types.CourseRecord, error)
	ListPrefixes(ctx context.Context, tx *gorm.DB, institutionID uuid.UUID) ([]string, error)
	CountByInstitution(ctx context.Context, tx *gorm.DB, institutionID uuid.UUID) (int64, error)
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return &courseRepo{db: db, log: baseLog.With("repo", "CourseRepo")}
}

func (r *courseRepo) UpsertMany(ctx context.Context, tx *gorm.DB, rows []*types.CourseRecord) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "institution_id"}, {Name: "prefix"}, {Name: "number"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title",
				"credits",
				"department",
				"prerequisites",
				"updated_at",
			}),
		}).
		CreateInBatches(&rows, 200).Error
}

func (r *courseRepo) ListByInstitution(ctx context.Context, tx *gorm.DB, institutionID uuid.UUID) ([]*types.CourseRecord, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.CourseRecord
	if institutionID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("institution_id = ?", institutionID).
		Order("prefix ASC, number ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *courseRepo) ListPrefixes(ctx context.Context, tx *gorm.DB, institutionID uuid.UUID) ([]string, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []string
	if institutionID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Model(&types.CourseRecord{}).
		Where("institution_id = ?", institutionID).
		Distinct("prefix").
		Order("prefix ASC").
		Pluck("prefix", &out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *courseRepo) CountByInstitution(ctx context.Context, tx *gorm.DB, institutionID uuid.UUID) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var n int64
	if institutionID == uuid.Nil {
		return 0, nil
	}
	if err := t.WithContext(ctx).
		Model(&types.CourseRecord{}).
		Where("institution_id = ?", institutionID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
