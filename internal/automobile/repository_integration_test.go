//go:build integration

package automobile_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ferdiebergado/autokit/internal/automobile"
	"github.com/ferdiebergado/autokit/internal/platform/db"
)

func TestRepository_CreateAndFind(t *testing.T) {
	conn := db.Setup(t)
	ctx := context.Background()
	repo := automobile.NewRepository(conn)

	created, err := repo.Create(ctx, automobile.CreateParams{Name: "Volvo", Color: "Red", OriginalColor: true})
	if err != nil {
		t.Fatalf("repo.Create() error = %v, want nil", err)
	}
	if created.ID == uuid.Nil {
		t.Error("created.ID = uuid.Nil, want a generated id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("created timestamps are zero, want database defaults")
	}

	found, err := repo.Find(ctx, created.ID)
	if err != nil {
		t.Fatalf("repo.Find() error = %v, want nil", err)
	}
	if found.Name != "Volvo" || found.Color != "Red" {
		t.Errorf("repo.Find() = %q/%q, want Volvo/Red", found.Name, found.Color)
	}
	if !found.OriginalColor {
		t.Error("found.OriginalColor = false, want true")
	}
}

func TestRepository_Find_Missing(t *testing.T) {
	conn := db.Setup(t)
	repo := automobile.NewRepository(conn)

	_, err := repo.Find(context.Background(), uuid.New())
	if !errors.Is(err, automobile.ErrNotFound) {
		t.Errorf("repo.Find() error = %v, want ErrNotFound", err)
	}
}

func TestRepository_Create_NameTooLong(t *testing.T) {
	conn := db.Setup(t)
	repo := automobile.NewRepository(conn)

	params := automobile.CreateParams{Name: strings.Repeat("x", 51), Color: "Red", OriginalColor: true}
	_, err := repo.Create(context.Background(), params)
	if !errors.Is(err, automobile.ErrConstraintViolation) {
		t.Errorf("repo.Create() error = %v, want ErrConstraintViolation", err)
	}
}

func TestRepository_ListActive_SkipsSoftDeleted(t *testing.T) {
	conn := db.Setup(t)
	ctx := context.Background()
	repo := automobile.NewRepository(conn)

	kept, err := repo.Create(ctx, automobile.CreateParams{Name: "Ford", Color: "Green", OriginalColor: true})
	if err != nil {
		t.Fatal(err)
	}
	removed, err := repo.Create(ctx, automobile.CreateParams{Name: "Audi", Color: "Black", OriginalColor: true})
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.SoftDelete(ctx, removed.ID); err != nil {
		t.Fatalf("repo.SoftDelete() error = %v, want nil", err)
	}

	active, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("repo.ListActive() error = %v, want nil", err)
	}
	if len(active) != 1 || active[0].ID != kept.ID {
		t.Errorf("repo.ListActive() = %v, want only %s", active, kept.ID)
	}

	// The record stays reachable by id after a soft delete.
	found, err := repo.Find(ctx, removed.ID)
	if err != nil {
		t.Fatalf("repo.Find() error = %v, want nil", err)
	}
	if !found.Deleted {
		t.Error("found.Deleted = false, want true")
	}
}

func TestRepository_FindByNameAndColor(t *testing.T) {
	conn := db.Setup(t)
	ctx := context.Background()
	repo := automobile.NewRepository(conn)

	for _, p := range []automobile.CreateParams{
		{Name: "Volvo", Color: "Red", OriginalColor: true},
		{Name: "Volvo", Color: "Blue", OriginalColor: true},
		{Name: "Ford", Color: "Red", OriginalColor: true},
	} {
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	byName, err := repo.FindByName(ctx, "Volvo")
	if err != nil {
		t.Fatal(err)
	}
	if len(byName) != 2 {
		t.Errorf("len(byName) = %d, want 2", len(byName))
	}

	byColor, err := repo.FindByColor(ctx, "Red")
	if err != nil {
		t.Fatal(err)
	}
	if len(byColor) != 2 {
		t.Errorf("len(byColor) = %d, want 2", len(byColor))
	}

	both, err := repo.FindByNameAndColor(ctx, "Volvo", "Red")
	if err != nil {
		t.Fatal(err)
	}
	if len(both) != 1 {
		t.Errorf("len(both) = %d, want 1", len(both))
	}
}

func TestRepository_FindByColorPrefix_Paging(t *testing.T) {
	conn := db.Setup(t)
	ctx := context.Background()
	repo := automobile.NewRepository(conn)

	for _, color := range []string{"Red", "RedMetallic", "RedMatte", "Blue"} {
		if _, err := repo.Create(ctx, automobile.CreateParams{Name: "Volvo", Color: color, OriginalColor: true}); err != nil {
			t.Fatal(err)
		}
	}

	first, err := repo.FindByColorPrefix(ctx, "Red", 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 2 {
		t.Errorf("len(first page) = %d, want 2", len(first))
	}

	second, err := repo.FindByColorPrefix(ctx, "Red", 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 1 {
		t.Errorf("len(second page) = %d, want 1", len(second))
	}
	if len(first) == 2 && len(second) == 1 && second[0].ID == first[0].ID {
		t.Error("second page repeats records from the first page")
	}
}

func TestRepository_UpdateFields(t *testing.T) {
	conn := db.Setup(t)
	ctx := context.Background()
	repo := automobile.NewRepository(conn)

	created, err := repo.Create(ctx, automobile.CreateParams{Name: "Volvo", Color: "Red", OriginalColor: true})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := repo.UpdateFields(ctx, created.ID, "Volvo", "Blue", false)
	if err != nil {
		t.Fatalf("repo.UpdateFields() error = %v, want nil", err)
	}
	if updated.Color != "Blue" || updated.OriginalColor {
		t.Errorf("repo.UpdateFields() = %q/%v, want Blue/false", updated.Color, updated.OriginalColor)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("updated.UpdatedAt did not advance")
	}

	if _, err := repo.UpdateFields(ctx, uuid.New(), "Volvo", "Blue", false); !errors.Is(err, automobile.ErrNotFound) {
		t.Errorf("repo.UpdateFields() error = %v, want ErrNotFound", err)
	}
}

func TestRepository_DeleteAll(t *testing.T) {
	conn := db.Setup(t)
	ctx := context.Background()
	repo := automobile.NewRepository(conn)

	created, err := repo.Create(ctx, automobile.CreateParams{Name: "Volvo", Color: "Red", OriginalColor: true})
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("repo.DeleteAll() error = %v, want nil", err)
	}

	if _, err := repo.Find(ctx, created.ID); !errors.Is(err, automobile.ErrNotFound) {
		t.Errorf("repo.Find() after DeleteAll error = %v, want ErrNotFound", err)
	}
}
