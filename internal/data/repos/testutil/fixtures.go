package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/degreeplan-backend/internal/domain/catalog"
)

func SeedInstitution(tb testing.TB, ctx context.Context, tx *gorm.DB, slug, name string) *types.Institution {
	tb.Helper()
	inst := &types.Institution{Slug: slug, Name: name}
	if err := tx.WithContext(ctx).Create(inst).Error; err != nil {
		tb.Fatalf("seed institution: %v", err)
	}
	return inst
}

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, inst *types.Institution, prefix, number, title string, credits float64) *types.CourseRecord {
	tb.Helper()
	c := &types.CourseRecord{
		InstitutionID: inst.ID,
		Prefix:        prefix,
		Number:        number,
		Title:         title,
		Credits:       credits,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedCredential(tb testing.TB, ctx context.Context, tx *gorm.DB, program, code string, credits, months int, undergrad bool) *types.CredentialRequirement {
	tb.Helper()
	cr := &types.CredentialRequirement{
		ProgramTitle:          program,
		CredentialCode:        code,
		CredentialName:        code + " in " + program,
		RequiredCredits:       credits,
		TypicalDurationMonths: months,
		IsUndergraduateLevel:  undergrad,
	}
	if err := tx.WithContext(ctx).Create(cr).Error; err != nil {
		tb.Fatalf("seed credential: %v", err)
	}
	return cr
}
