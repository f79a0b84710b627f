package ports

import (
	"CatalogEngine/internal/core/domain"
	"context"
	"errors"
)

var (
	// ErrInvalidStore is returned when a path opens but does not hold a catalog.
	ErrInvalidStore = errors.New("not a valid catalog store")

	// ErrRecordNotFound is returned when an update matches no row.
	ErrRecordNotFound = errors.New("record not found")
)

// ContinentSearch holds the criteria for a continent search.
// Blank fields do not constrain the search.
type ContinentSearch struct {
	Code string
	Name string
}

// CountrySearch holds the criteria for a country search.
type CountrySearch struct {
	Code string
	Name string
}

// RegionSearch holds the criteria for a region search.
type RegionSearch struct {
	RegionCode string
	LocalCode  string
	Name       string
}

// ContinentRepository defines the persistence operations for continents.
type ContinentRepository interface {
	// Search returns every continent matching all non-blank criteria, in store order.
	Search(ctx context.Context, criteria ContinentSearch) ([]domain.Continent, error)

	// GetByID returns nil, nil when no continent has that id.
	GetByID(ctx context.Context, id int64) (*domain.Continent, error)

	Create(ctx context.Context, continent domain.Continent) error
	Update(ctx context.Context, continent domain.Continent) error
}

// CountryRepository defines the persistence operations for countries.
type CountryRepository interface {
	Search(ctx context.Context, criteria CountrySearch) ([]domain.Country, error)
	GetByID(ctx context.Context, id int64) (*domain.Country, error)
	Create(ctx context.Context, country domain.Country) error
	Update(ctx context.Context, country domain.Country) error
}

// RegionRepository defines the persistence operations for regions.
type RegionRepository interface {
	Search(ctx context.Context, criteria RegionSearch) ([]domain.Region, error)
	GetByID(ctx context.Context, id int64) (*domain.Region, error)
	Create(ctx context.Context, region domain.Region) error
	Update(ctx context.Context, region domain.Region) error
}

// Catalog is an open connection to one catalog store.
type Catalog interface {
	Continents() ContinentRepository
	Countries() CountryRepository
	Regions() RegionRepository

	// Close releases the connection. Calling it twice is harmless.
	Close() error
}

// CatalogOpener opens the store identified by path and checks that it is a catalog.
// Implementations never return a half-open Catalog together with an error.
type CatalogOpener func(ctx context.Context, path string) (Catalog, error)
