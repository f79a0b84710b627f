package sqlstore

import (
	"CatalogEngine/internal/core/domain"
	"CatalogEngine/internal/core/ports"
	"CatalogEngine/internal/testutil"
	"context"
	"errors"
	"testing"
)

func TestContinentRepository_Create_GetByID_Roundtrip(t *testing.T) {
	db := openTestCatalog(t, nil)
	repo := db.Continents()
	ctx := context.Background()

	asia := domain.Continent{ID: 7, Code: "AS", Name: "Asia"}
	if err := repo.Create(ctx, asia); err != nil {
		t.Fatalf("Failed to create continent: %v", err)
	}

	found, err := repo.GetByID(ctx, 7)
	if err != nil {
		t.Fatalf("Failed to get continent: %v", err)
	}
	if found == nil {
		t.Fatalf("GetByID: continent not found, but should exist")
	}
	if *found != asia {
		t.Errorf("continent mismatch: got %v, want %v", *found, asia)
	}
}

func TestContinentRepository_GetByID_NotFound(t *testing.T) {
	db := openTestCatalog(t, nil)

	found, err := db.Continents().GetByID(context.Background(), 404)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil, got %v", found)
	}
}

func TestContinentRepository_Create_DuplicateID(t *testing.T) {
	db := openTestCatalog(t, func(path string) {
		testutil.SeedContinent(t, path, 7, "AS", "Asia")
	})

	err := db.Continents().Create(context.Background(), domain.Continent{ID: 7, Code: "EU", Name: "Europe"})
	if err == nil {
		t.Fatalf("expected a primary key violation")
	}
}

func TestContinentRepository_Search(t *testing.T) {
	db := openTestCatalog(t, func(path string) {
		testutil.SeedContinent(t, path, 8, "AS", "Asia Minor")
		testutil.SeedContinent(t, path, 7, "AS", "Asia")
		testutil.SeedContinent(t, path, 3, "EU", "Europe")
	})
	repo := db.Continents()
	ctx := context.Background()

	t.Run("shared code returns every row in id order", func(t *testing.T) {
		got, err := repo.Search(ctx, ports.ContinentSearch{Code: "AS"})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 continents, got %d: %v", len(got), got)
		}
		if got[0].ID != 7 || got[1].ID != 8 {
			t.Errorf("order mismatch: got ids %d, %d", got[0].ID, got[1].ID)
		}
	})

	t.Run("criteria are combined", func(t *testing.T) {
		got, err := repo.Search(ctx, ports.ContinentSearch{Code: "AS", Name: "Asia"})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != 7 {
			t.Errorf("expected only continent 7, got %v", got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		got, err := repo.Search(ctx, ports.ContinentSearch{Name: "Atlantis"})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no continents, got %v", got)
		}
	})

	t.Run("values are bound, not interpolated", func(t *testing.T) {
		got, err := repo.Search(ctx, ports.ContinentSearch{Name: "x' OR '1'='1"})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no continents, got %v", got)
		}
	})
}

func TestContinentRepository_Update(t *testing.T) {
	db := openTestCatalog(t, func(path string) {
		testutil.SeedContinent(t, path, 7, "AS", "Asia")
	})
	repo := db.Continents()
	ctx := context.Background()

	if err := repo.Update(ctx, domain.Continent{ID: 7, Code: "AS", Name: "Asia (mainland)"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	found, err := repo.GetByID(ctx, 7)
	if err != nil || found == nil {
		t.Fatalf("GetByID after update: %v, %v", found, err)
	}
	if found.Name != "Asia (mainland)" {
		t.Errorf("Name mismatch: got %s", found.Name)
	}

	err = repo.Update(ctx, domain.Continent{ID: 42, Code: "EU", Name: "Europe"})
	if !errors.Is(err, ports.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for a missing id, got: %v", err)
	}
}

func TestContinentRepository_Create_CheckConstraint(t *testing.T) {
	db := openTestCatalog(t, nil)

	err := db.Continents().Create(context.Background(), domain.Continent{ID: 1, Code: "ASIA", Name: "Asia"})
	if err == nil {
		t.Fatalf("expected the store to reject a four letter continent code")
	}
}
