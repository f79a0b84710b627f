package sqlstore

import (
	"CatalogEngine/internal/core/domain"
	"CatalogEngine/internal/core/ports"
	"CatalogEngine/internal/testutil"
	"context"
	"errors"
	"testing"
)

func seedJapan(t *testing.T) func(path string) {
	return func(path string) {
		testutil.SeedContinent(t, path, 7, "AS", "Asia")
		testutil.SeedCountry(t, path, 100, "JP", "Japan", 7, "", "")
	}
}

func TestRegionRepository_Create_GetByID_Roundtrip(t *testing.T) {
	db := openTestCatalog(t, seedJapan(t))
	repo := db.Regions()
	ctx := context.Background()

	tokyo := domain.Region{
		ID:          500,
		RegionCode:  "JP-13",
		LocalCode:   "13",
		Name:        "Tokyo",
		ContinentID: 7,
		CountryID:   100,
		Keywords:    strPtr("Edo"),
	}
	if err := repo.Create(ctx, tokyo); err != nil {
		t.Fatalf("Failed to create region: %v", err)
	}

	found, err := repo.GetByID(ctx, 500)
	if err != nil {
		t.Fatalf("Failed to get region: %v", err)
	}
	if found == nil {
		t.Fatalf("GetByID: region not found, but should exist")
	}
	if found.String() != tokyo.String() {
		t.Errorf("region mismatch: got %v, want %v", found, tokyo)
	}
}

func TestRegionRepository_Search(t *testing.T) {
	db := openTestCatalog(t, func(path string) {
		seedJapan(t)(path)
		testutil.SeedRegion(t, path, 500, "JP-13", "13", "Tokyo", 7, 100)
		testutil.SeedRegion(t, path, 501, "JP-27", "27", "Osaka", 7, 100)
		testutil.SeedRegion(t, path, 502, "JP-X", "13", "Elsewhere", 7, 100)
	})
	repo := db.Regions()
	ctx := context.Background()

	got, err := repo.Search(ctx, ports.RegionSearch{LocalCode: "13"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != 500 || got[1].ID != 502 {
		t.Errorf("expected regions 500 and 502, got %v", got)
	}

	got, err = repo.Search(ctx, ports.RegionSearch{RegionCode: "JP-13", LocalCode: "13"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Tokyo" {
		t.Errorf("expected Tokyo only, got %v", got)
	}
}

func TestRegionRepository_Update(t *testing.T) {
	db := openTestCatalog(t, func(path string) {
		seedJapan(t)(path)
		testutil.SeedRegion(t, path, 500, "JP-13", "13", "Tokyo", 7, 100)
	})
	repo := db.Regions()
	ctx := context.Background()

	renamed := domain.Region{ID: 500, RegionCode: "JP-13", LocalCode: "13", Name: "Tokyo-to", ContinentID: 7, CountryID: 100}
	if err := repo.Update(ctx, renamed); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	found, err := repo.GetByID(ctx, 500)
	if err != nil || found == nil {
		t.Fatalf("GetByID: %v, %v", found, err)
	}
	if found.Name != "Tokyo-to" {
		t.Errorf("Name mismatch: got %s", found.Name)
	}

	renamed.ID = 999
	if err := repo.Update(ctx, renamed); !errors.Is(err, ports.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got: %v", err)
	}
}
