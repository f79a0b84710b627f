package engine

import (
	"CatalogEngine/internal/core/domain"
	"CatalogEngine/internal/core/ports"
	"context"

	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

// MockCatalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Continents() ports.ContinentRepository {
	args := m.Called()
	return args.Get(0).(ports.ContinentRepository)
}
func (m *MockCatalog) Countries() ports.CountryRepository {
	args := m.Called()
	return args.Get(0).(ports.CountryRepository)
}
func (m *MockCatalog) Regions() ports.RegionRepository {
	args := m.Called()
	return args.Get(0).(ports.RegionRepository)
}
func (m *MockCatalog) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockContinentRepository
type MockContinentRepository struct {
	mock.Mock
}

func (m *MockContinentRepository) Search(ctx context.Context, criteria ports.ContinentSearch) ([]domain.Continent, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Continent), args.Error(1)
}
func (m *MockContinentRepository) GetByID(ctx context.Context, id int64) (*domain.Continent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Continent), args.Error(1)
}
func (m *MockContinentRepository) Create(ctx context.Context, c domain.Continent) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContinentRepository) Update(ctx context.Context, c domain.Continent) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// openerFor returns an opener that always hands out catalog.
func openerFor(catalog ports.Catalog) ports.CatalogOpener {
	return func(ctx context.Context, path string) (ports.Catalog, error) {
		return catalog, nil
	}
}
