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

type countryRepository struct {
	db  *DB
	log zerolog.Logger
}

var _ ports.CountryRepository = (*countryRepository)(nil) // Ensure compliance

func newCountryRepository(db *DB, baseLogger *zerolog.Logger) *countryRepository {
	return &countryRepository{
		db:  db,
		log: baseLogger.With().Str("repo", "country").Logger(),
	}
}

const countryQueryCols = `country_id, country_code, name, continent_id, wikipedia_link, keywords`

func scanCountry(row interface{ Scan(dest ...any) error }) (domain.Country, error) {
	var c domain.Country
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.ContinentID, &c.WikipediaLink, &c.Keywords)
	return c, err
}

func (r *countryRepository) Search(ctx context.Context, criteria ports.CountrySearch) ([]domain.Country, error) {
	filter := new(Filter).
		EqualIfSet("country_code", criteria.Code).
		EqualIfSet("name", criteria.Name)
	where, args := filter.Where()

	rows, err := r.db.query(ctx, `SELECT `+countryQueryCols+` FROM country`+where+` ORDER BY country_id`, args...)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to query countries")
		return nil, err
	}
	defer rows.Close()

	var countries []domain.Country
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			r.log.Error().Err(err).Msg("Failed to scan country row")
			return nil, err
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("Error iterating country rows")
		return nil, err
	}
	return countries, nil
}

func (r *countryRepository) GetByID(ctx context.Context, id int64) (*domain.Country, error) {
	row := r.db.queryRow(ctx, `SELECT `+countryQueryCols+` FROM country WHERE country_id = ?`, id)
	c, err := scanCountry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Info().Int64("country_id", id).Msg("Country not found")
			return nil, nil
		}
		r.log.Error().Err(err).Int64("country_id", id).Msg("Failed to load country")
		return nil, err
	}
	return &c, nil
}

func (r *countryRepository) Create(ctx context.Context, c domain.Country) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO country (country_id, country_code, name, continent_id, wikipedia_link, keywords)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		c.ID,
		c.Code,
		c.Name,
		c.ContinentID,
		nullable(c.WikipediaLink),
		nullable(c.Keywords),
	)
	if err != nil {
		r.log.Error().Err(err).Int64("country_id", c.ID).Msg("Failed to insert country")
	}
	return err
}

func (r *countryRepository) Update(ctx context.Context, c domain.Country) error {
	n, err := r.db.exec(ctx, `
		UPDATE country
		SET country_code = ?, name = ?, continent_id = ?, wikipedia_link = ?, keywords = ?
		WHERE country_id = ?
	`,
		c.Code,
		c.Name,
		c.ContinentID,
		nullable(c.WikipediaLink),
		nullable(c.Keywords),
		c.ID,
	)
	if err != nil {
		r.log.Error().Err(err).Int64("country_id", c.ID).Msg("Failed to update country")
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: no country with id %d", ports.ErrRecordNotFound, c.ID)
	}
	return nil
}
