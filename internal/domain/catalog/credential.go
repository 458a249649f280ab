package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CredentialRequirement holds the credit and duration norms for one program
// and credential pairing.
type CredentialRequirement struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProgramTitle          string    `gorm:"column:program_title;not null;uniqueIndex:idx_credential_program,priority:1" json:"program_title"`
	CredentialCode        string    `gorm:"column:credential_code;not null;uniqueIndex:idx_credential_program,priority:2" json:"credential_code"`
	CredentialName        string    `gorm:"column:credential_name" json:"credential_name"`
	RequiredCredits       int       `gorm:"column:required_credits;not null" json:"required_credits"`
	TypicalDurationMonths int       `gorm:"column:typical_duration_months;not null" json:"typical_duration_months"`
	IsUndergraduateLevel  bool      `gorm:"column:is_undergraduate_level;not null;default:false" json:"is_undergraduate_level"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CredentialRequirement) TableName() string { return "catalog_credential_requirement" }

func (c *CredentialRequirement) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// DurationYears rounds the typical duration up to whole years, minimum one.
func (c CredentialRequirement) DurationYears() int {
	if c.TypicalDurationMonths <= 0 {
		return 1
	}
	years := (c.TypicalDurationMonths + 11) / 12
	if years < 1 {
		return 1
	}
	return years
}
