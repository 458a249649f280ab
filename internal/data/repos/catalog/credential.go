package catalog

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/degreeplan-backend/internal/domain/catalog"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

type CredentialRequirementRepo interface {
	UpsertMany(ctx context.Context, tx *gorm.DB, rows []*types.CredentialRequirement) error
	// Get matches the program title case-insensitively and the credential code exactly (upper-cased).
	Get(ctx context.Context, tx *gorm.DB, programTitle, credentialCode string) (*types.CredentialRequirement, error)
}

type credentialRequirementRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCredentialRequirementRepo(db *gorm.DB, baseLog *logger.Logger) CredentialRequirementRepo {
	return &credentialRequirementRepo{db: db, log: baseLog.With("repo", "CredentialRequirementRepo")}
}

func (r *credentialRequirementRepo) UpsertMany(ctx context.Context, tx *gorm.DB, rows []*types.CredentialRequirement) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		row.CredentialCode = strings.ToUpper(strings.TrimSpace(row.CredentialCode))
		row.ProgramTitle = strings.TrimSpace(row.ProgramTitle)
	}
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "program_title"}, {Name: "credential_code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"credential_name",
				"required_credits",
				"typical_duration_months",
				"is_undergraduate_level",
				"updated_at",
			}),
		}).
		Create(&rows).Error
}

func (r *credentialRequirementRepo) Get(ctx context.Context, tx *gorm.DB, programTitle, credentialCode string) (*types.CredentialRequirement, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	programTitle = strings.TrimSpace(programTitle)
	credentialCode = strings.ToUpper(strings.TrimSpace(credentialCode))
	if programTitle == "" || credentialCode == "" {
		return nil, nil
	}
	var out []*types.CredentialRequirement
	if err := t.WithContext(ctx).
		Where("LOWER(program_title) = LOWER(?) AND credential_code = ?", programTitle, credentialCode).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}
