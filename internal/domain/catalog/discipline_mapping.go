package catalog

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DisciplineMapping maps one discipline (snake_case, e.g. "computer_science")
// to the course prefixes that serve it at an institution.
type DisciplineMapping struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	InstitutionID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_discipline_inst,priority:1" json:"institution_id"`
	Discipline    string         `gorm:"column:discipline;not null;uniqueIndex:idx_discipline_inst,priority:2" json:"discipline"`
	Prefixes      datatypes.JSON `gorm:"column:prefixes" json:"prefixes"`
	// Position keeps table order stable across reads.
	Position  int       `gorm:"column:position;not null;default:0" json:"position"`
	Version   string    `gorm:"column:version" json:"version,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DisciplineMapping) TableName() string { return "catalog_discipline_mapping" }

func (d *DisciplineMapping) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (d DisciplineMapping) PrefixList() []string {
	if len(d.Prefixes) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(d.Prefixes, &out); err != nil {
		return nil
	}
	return out
}

func (d *DisciplineMapping) SetPrefixes(prefixes []string) {
	if prefixes == nil {
		prefixes = []string{}
	}
	raw, _ := json.Marshal(prefixes)
	d.Prefixes = datatypes.JSON(raw)
}
