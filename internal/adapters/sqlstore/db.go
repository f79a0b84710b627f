package sqlstore

import (
	"CatalogEngine/internal/core/ports"
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// catalogTables is how many of continent/country/region must exist.
const catalogTables = 3

// DB holds the connection to one catalog store.
type DB struct {
	sql     *sql.DB
	dialect dialect
	log     zerolog.Logger

	continents *continentRepository
	countries  *countryRepository
	regions    *regionRepository
}

var _ ports.Catalog = (*DB)(nil) // Ensure compliance

// Open connects to the store at path and checks that it is a catalog.
// On any failure the connection is closed before returning.
func Open(ctx context.Context, path string, baseLogger *zerolog.Logger) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required")
	}

	d := dialectFor(path)
	log := baseLogger.With().Str("component", "sqlstore").Str("dialect", d.name).Logger()

	sqlDB, err := sql.Open(d.driver, d.dsn(path))
	if err != nil {
		log.Error().Err(err).Msg("Failed to open catalog store")
		return nil, err
	}

	// One engine, one connection.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to connect to catalog store")
		_ = sqlDB.Close()
		return nil, classifyOpenError(err)
	}

	var tables int
	if err := sqlDB.QueryRowContext(ctx, d.catalogCheck).Scan(&tables); err != nil {
		log.Error().Err(err).Msg("Failed to inspect catalog store")
		_ = sqlDB.Close()
		return nil, classifyOpenError(err)
	}
	if tables < catalogTables {
		log.Warn().Int("tables", tables).Msg("Store is missing catalog tables")
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: found %d of %d catalog tables", ports.ErrInvalidStore, tables, catalogTables)
	}

	db := &DB{sql: sqlDB, dialect: d, log: log}
	db.continents = newContinentRepository(db, &log)
	db.countries = newCountryRepository(db, &log)
	db.regions = newRegionRepository(db, &log)

	log.Info().Msg("Catalog store opened")
	return db, nil
}

// Opener adapts Open to ports.CatalogOpener.
func Opener(baseLogger *zerolog.Logger) ports.CatalogOpener {
	return func(ctx context.Context, path string) (ports.Catalog, error) {
		db, err := Open(ctx, path, baseLogger)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
}

func (db *DB) Continents() ports.ContinentRepository { return db.continents }
func (db *DB) Countries() ports.CountryRepository    { return db.countries }
func (db *DB) Regions() ports.RegionRepository       { return db.regions }

// Close releases the connection. It is safe to call more than once.
func (db *DB) Close() error {
	if db == nil || db.sql == nil {
		return nil
	}
	db.log.Info().Msg("Closing catalog store")
	err := db.sql.Close()
	db.sql = nil
	return err
}

// exec runs a statement and reports how many rows it touched.
func (db *DB) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := db.sql.ExecContext(ctx, db.dialect.rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (db *DB) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.sql.QueryContext(ctx, db.dialect.rebind(query), args...)
}

func (db *DB) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.sql.QueryRowContext(ctx, db.dialect.rebind(query), args...)
}

// nullable maps an absent or empty optional column to NULL.
func nullable(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
