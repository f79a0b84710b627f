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

type regionRepository struct {
	db  *DB
	log zerolog.Logger
}

var _ ports.RegionRepository = (*regionRepository)(nil) // Ensure compliance

func newRegionRepository(db *DB, baseLogger *zerolog.Logger) *regionRepository {
	return &regionRepository{
		db:  db,
		log: baseLogger.With().Str("repo", "region").Logger(),
	}
}

const regionQueryCols = `
	region_id, region_code, local_code, name,
	continent_id, country_id, wikipedia_link, keywords
`

func scanRegion(row interface{ Scan(dest ...any) error }) (domain.Region, error) {
	var r domain.Region
	err := row.Scan(
		&r.ID,
		&r.RegionCode,
		&r.LocalCode,
		&r.Name,
		&r.ContinentID,
		&r.CountryID,
		&r.WikipediaLink,
		&r.Keywords,
	)
	return r, err
}

func (r *regionRepository) Search(ctx context.Context, criteria ports.RegionSearch) ([]domain.Region, error) {
	filter := new(Filter).
		EqualIfSet("region_code", criteria.RegionCode).
		EqualIfSet("local_code", criteria.LocalCode).
		EqualIfSet("name", criteria.Name)
	where, args := filter.Where()

	rows, err := r.db.query(ctx, `SELECT `+regionQueryCols+` FROM region`+where+` ORDER BY region_id`, args...)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to query regions")
		return nil, err
	}
	defer rows.Close()

	var regions []domain.Region
	for rows.Next() {
		region, err := scanRegion(rows)
		if err != nil {
			r.log.Error().Err(err).Msg("Failed to scan region row")
			return nil, err
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("Error iterating region rows")
		return nil, err
	}
	return regions, nil
}

func (r *regionRepository) GetByID(ctx context.Context, id int64) (*domain.Region, error) {
	row := r.db.queryRow(ctx, `SELECT `+regionQueryCols+` FROM region WHERE region_id = ?`, id)
	region, err := scanRegion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Info().Int64("region_id", id).Msg("Region not found")
			return nil, nil
		}
		r.log.Error().Err(err).Int64("region_id", id).Msg("Failed to load region")
		return nil, err
	}
	return &region, nil
}

func (r *regionRepository) Create(ctx context.Context, region domain.Region) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO region (
			region_id, region_code, local_code, name,
			continent_id, country_id, wikipedia_link, keywords
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		region.ID,
		region.RegionCode,
		region.LocalCode,
		region.Name,
		region.ContinentID,
		region.CountryID,
		nullable(region.WikipediaLink),
		nullable(region.Keywords),
	)
	if err != nil {
		r.log.Error().Err(err).Int64("region_id", region.ID).Msg("Failed to insert region")
	}
	return err
}

func (r *regionRepository) Update(ctx context.Context, region domain.Region) error {
	n, err := r.db.exec(ctx, `
		UPDATE region
		SET region_code = ?, local_code = ?, name = ?, continent_id = ?,
			country_id = ?, wikipedia_link = ?, keywords = ?
		WHERE region_id = ?
	`,
		region.RegionCode,
		region.LocalCode,
		region.Name,
		region.ContinentID,
		region.CountryID,
		nullable(region.WikipediaLink),
		nullable(region.Keywords),
		region.ID,
	)
	if err != nil {
		r.log.Error().Err(err).Int64("region_id", region.ID).Msg("Failed to update region")
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: no region with id %d", ports.ErrRecordNotFound, region.ID)
	}
	return nil
}
