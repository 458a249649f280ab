package catalog

import (
	"context"
	"testing"

	"github.com/yungbote/degreeplan-backend/internal/data/repos/testutil"
	types "github.com/yungbote/degreeplan-backend/internal/domain/catalog"
)

func TestInstitutionRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewInstitutionRepo(db, testutil.Logger(t))

	first, err := repo.Upsert(ctx, tx, &types.Institution{Slug: "uh_manoa", Name: "UH Manoa"})
	if err != nil || first == nil {
		t.Fatalf("Upsert: got=%v err=%v", first, err)
	}
	second, err := repo.Upsert(ctx, tx, &types.Institution{Slug: "uh_manoa", Name: "University of Hawaii at Manoa"})
	if err != nil || second == nil {
		t.Fatalf("Upsert again: got=%v err=%v", second, err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected stable id across upserts: %s vs %s", first.ID, second.ID)
	}
	if second.Name != "University of Hawaii at Manoa" {
		t.Fatalf("expected name updated, got %q", second.Name)
	}

	if got, err := repo.Get(ctx, tx, "uh_manoa"); err != nil || got == nil || got.ID != first.ID {
		t.Fatalf("Get by slug: got=%v err=%v", got, err)
	}
	if got, err := repo.Get(ctx, tx, first.ID.String()); err != nil || got == nil || got.Slug != "uh_manoa" {
		t.Fatalf("Get by id: got=%v err=%v", got, err)
	}
	if got, err := repo.Get(ctx, tx, "nowhere"); err != nil || got != nil {
		t.Fatalf("Get missing: got=%v err=%v", got, err)
	}

	testutil.SeedInstitution(t, ctx, tx, "abc_college", "ABC College")
	rows, err := repo.List(ctx, tx)
	if err != nil || len(rows) != 2 || rows[0].Slug != "abc_college" {
		t.Fatalf("List: err=%v rows=%v", err, rows)
	}
}
