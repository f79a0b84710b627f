package sqlstore

import (
	"CatalogEngine/internal/core/domain"
	"CatalogEngine/internal/core/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

type continentRepository struct {
	db  *DB
	log zerolog.Logger
}

var _ ports.ContinentRepository = (*continentRepository)(nil) // Ensure compliance

func newContinentRepository(db *DB, baseLogger *zerolog.Logger) *continentRepository {
	return &continentRepository{
		db:  db,
		log: baseLogger.With().Str("repo", "continent").Logger(),
	}
}

const continentQueryCols = `continent_id, continent_code, name`

// scanContinent is a helper to scan a row into a Continent.
func scanContinent(row interface{ Scan(dest ...any) error }) (domain.Continent, error) {
	var c domain.Continent
	err := row.Scan(&c.ID, &c.Code, &c.Name)
	return c, err
}

// Search returns the continents matching every non-blank criterion.
func (r *continentRepository) Search(ctx context.Context, criteria ports.ContinentSearch) ([]domain.Continent, error) {
	filter := new(Filter).
		EqualIfSet("continent_code", criteria.Code).
		EqualIfSet("name", criteria.Name)
	where, args := filter.Where()

	rows, err := r.db.query(ctx, `SELECT `+continentQueryCols+` FROM continent`+where+` ORDER BY continent_id`, args...)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to query continents")
		return nil, err
	}
	defer rows.Close()

	var continents []domain.Continent
	for rows.Next() {
		c, err := scanContinent(rows)
		if err != nil {
			r.log.Error().Err(err).Msg("Failed to scan continent row")
			return nil, err
		}
		continents = append(continents, c)
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("Error iterating continent rows")
		return nil, err
	}
	return continents, nil
}

// GetByID finds a continent by id. Returns nil, nil when there is none.
func (r *continentRepository) GetByID(ctx context.Context, id int64) (*domain.Continent, error) {
	row := r.db.queryRow(ctx, `SELECT `+continentQueryCols+` FROM continent WHERE continent_id = ?`, id)
	c, err := scanContinent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Info().Int64("continent_id", id).Msg("Continent not found")
			return nil, nil
		}
		r.log.Error().Err(err).Int64("continent_id", id).Msg("Failed to load continent")
		return nil, err
	}
	return &c, nil
}

// Create inserts a continent with its caller-chosen id.
func (r *continentRepository) Create(ctx context.Context, c domain.Continent) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO continent (continent_id, continent_code, name)
		VALUES (?, ?, ?)
	`, c.ID, c.Code, c.Name)
	if err != nil {
		r.log.Error().Err(err).Int64("continent_id", c.ID).Msg("Failed to insert continent")
	}
	return err
}

// Update overwrites every mutable column of the continent with c.ID.
func (r *continentRepository) Update(ctx context.Context, c domain.Continent) error {
	n, err := r.db.exec(ctx, `
		UPDATE continent
		SET continent_code = ?, name = ?
		WHERE continent_id = ?
	`, c.Code, c.Name, c.ID)
	if err != nil {
		r.log.Error().Err(err).Int64("continent_id", c.ID).Msg("Failed to update continent")
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: no continent with id %d", ports.ErrRecordNotFound, c.ID)
	}
	return nil
}
