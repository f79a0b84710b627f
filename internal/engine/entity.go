package engine

import (
	"CatalogEngine/internal/core/events"
	"CatalogEngine/internal/core/ports"
	"context"
	"fmt"
)

// repository is the shape shared by the continent, country and region repositories.
type repository[T, Q any] interface {
	Search(ctx context.Context, criteria Q) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, record T) error
	Update(ctx context.Context, record T) error
}

// entity binds a record type to its repository and response events.
type entity[T, Q any] struct {
	singular string
	plural   string
	criteria string // names the search fields in the no-criteria message

	repo func(ports.Catalog) repository[T, Q]

	// normalize, when set, maps a record to the form the store keeps.
	normalize func(T) T

	found  func(T) events.Response
	loaded func(T) events.Response
	saved  func(T) events.Response
	failed func(message string) events.Response
}

// search yields one result per matching row. Without a connection it yields nothing.
func search[T, Q any](ctx context.Context, e *Engine, ent entity[T, Q], criteria Q, blank bool) []events.Response {
	if e.catalog == nil {
		return nil
	}
	if blank {
		return []events.Response{events.Error{Message: fmt.Sprintf("No %s has been provided.", ent.criteria)}}
	}

	records, err := ent.repo(e.catalog).Search(ctx, criteria)
	if err != nil {
		e.log.Error().Err(err).Str("entity", ent.singular).Msg("Search failed")
		return []events.Response{events.Error{
			Message: fmt.Sprintf("Cannot search %s due to an unexpected error: %v", ent.plural, err),
		}}
	}
	if len(records) == 0 {
		return []events.Response{events.Error{Message: fmt.Sprintf("No %s have been found.", ent.plural)}}
	}

	out := make([]events.Response, 0, len(records))
	for _, record := range records {
		out = append(out, ent.found(record))
	}
	return out
}

// load yields the record, or nothing at all when no row has that id.
func load[T, Q any](ctx context.Context, e *Engine, ent entity[T, Q], id int64) []events.Response {
	if e.catalog == nil {
		return []events.Response{events.Error{Message: msgNoDatabase}}
	}

	record, err := ent.repo(e.catalog).GetByID(ctx, id)
	if err != nil {
		e.log.Error().Err(err).Str("entity", ent.singular).Int64("id", id).Msg("Load failed")
		return []events.Response{events.Error{
			Message: fmt.Sprintf("Failed to load %s due to an unexpected error: %v", ent.singular, err),
		}}
	}
	if record == nil {
		return nil
	}
	return []events.Response{ent.loaded(*record)}
}

func saveNew[T, Q any](ctx context.Context, e *Engine, ent entity[T, Q], record T, id int64) []events.Response {
	if e.catalog == nil {
		return []events.Response{ent.failed(msgNoDatabase)}
	}

	record = ent.stored(record)
	if err := ent.repo(e.catalog).Create(ctx, record); err != nil {
		e.log.Warn().Err(err).Str("entity", ent.singular).Int64("id", id).Msg("Insert rejected")
		return []events.Response{ent.failed(fmt.Sprintf("Could not save new %s: %v", ent.singular, err))}
	}
	return []events.Response{ent.saved(record)}
}

func save[T, Q any](ctx context.Context, e *Engine, ent entity[T, Q], record T, id int64) []events.Response {
	if e.catalog == nil {
		return []events.Response{ent.failed(msgNoDatabase)}
	}

	record = ent.stored(record)
	if err := ent.repo(e.catalog).Update(ctx, record); err != nil {
		e.log.Warn().Err(err).Str("entity", ent.singular).Int64("id", id).Msg("Update rejected")
		return []events.Response{ent.failed(fmt.Sprintf("Could not update %s: %v", ent.singular, err))}
	}
	return []events.Response{ent.saved(record)}
}

// stored returns record in the form the store keeps, so confirmations match the row.
func (ent entity[T, Q]) stored(record T) T {
	if ent.normalize == nil {
		return record
	}
	return ent.normalize(record)
}
