package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InstitutionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_course_inst_code,priority:1" json:"institution_id"`
	Prefix        string    `gorm:"column:prefix;not null;index;uniqueIndex:idx_course_inst_code,priority:2" json:"prefix"`
	Number        string    `gorm:"column:number;not null;uniqueIndex:idx_course_inst_code,priority:3" json:"number"`
	Title         string    `gorm:"column:title;not null" json:"title"`
	Credits       float64   `gorm:"column:credits;not null;default:0" json:"credits"`
	Department    string    `gorm:"column:department" json:"department"`
	// Free text as published by the institution; empty when unknown.
	Prerequisites string    `gorm:"column:prerequisites;type:text" json:"prerequisites,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CourseRecord) TableName() string { return "catalog_course" }

func (c *CourseRecord) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Code is the canonical "PREFIX NUMBER" form the planner uses as vocabulary.
func (c CourseRecord) Code() string {
	return strings.TrimSpace(c.Prefix) + " " + strings.TrimSpace(c.Number)
}

// NumericNumber returns the leading integer of the course number ("241L" -> 241).
// ok is false when the number does not start with a digit.
func (c CourseRecord) NumericNumber() (n int, ok bool) {
	s := strings.TrimSpace(c.Number)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
