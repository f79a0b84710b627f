package engine

import (
	"CatalogEngine/internal/core/events"
	"CatalogEngine/internal/core/ports"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

const (
	msgInvalidStore = "The file is not a valid catalog database."
	msgNoDatabase   = "No database is open."
	msgUnrecognized = "Received an unrecognized event."
)

// Engine processes request events one at a time.
type Engine struct {
	open    ports.CatalogOpener
	catalog ports.Catalog // nil while disconnected
	log     zerolog.Logger
}

var _ ports.Engine = (*Engine)(nil) // Ensure compliance

// New creates a disconnected engine that opens stores with open.
func New(open ports.CatalogOpener, baseLogger *zerolog.Logger) *Engine {
	return &Engine{
		open: open,
		log:  baseLogger.With().Str("component", "engine").Logger(),
	}
}

// Connected reports whether a catalog connection is held.
func (e *Engine) Connected() bool {
	return e.catalog != nil
}

// Close releases the connection without producing any event.
// It is meant for process shutdown, not for the CloseDatabase request.
func (e *Engine) Close() {
	e.release()
}

// Process handles one request and returns the responses it produced.
func (e *Engine) Process(ctx context.Context, request events.Request) []events.Response {
	switch req := request.(type) {
	// Application
	case events.OpenDatabase:
		return e.guard(req, e.openFailed, func() []events.Response { return e.openDatabase(ctx, req) })
	case events.CloseDatabase:
		return e.guard(req, genericError, func() []events.Response { return e.closeDatabase() })
	case events.QuitInitiated:
		return []events.Response{events.EndApplication{}}

	// Continent
	case events.StartContinentSearch:
		criteria := ports.ContinentSearch{Code: trim(req.Code), Name: trim(req.Name)}
		blank := criteria.Code == "" && criteria.Name == ""
		return e.guard(req, genericError, func() []events.Response { return search(ctx, e, continents, criteria, blank) })
	case events.LoadContinent:
		return e.guard(req, genericError, func() []events.Response { return load(ctx, e, continents, req.ID) })
	case events.SaveNewContinent:
		return e.guard(req, continents.failed, func() []events.Response {
			return saveNew(ctx, e, continents, req.Continent, req.Continent.ID)
		})
	case events.SaveContinent:
		return e.guard(req, continents.failed, func() []events.Response {
			return save(ctx, e, continents, req.Continent, req.Continent.ID)
		})

	// Country
	case events.StartCountrySearch:
		criteria := ports.CountrySearch{Code: trim(req.Code), Name: trim(req.Name)}
		blank := criteria.Code == "" && criteria.Name == ""
		return e.guard(req, genericError, func() []events.Response { return search(ctx, e, countries, criteria, blank) })
	case events.LoadCountry:
		return e.guard(req, genericError, func() []events.Response { return load(ctx, e, countries, req.ID) })
	case events.SaveNewCountry:
		return e.guard(req, countries.failed, func() []events.Response {
			return saveNew(ctx, e, countries, req.Country, req.Country.ID)
		})
	case events.SaveCountry:
		return e.guard(req, countries.failed, func() []events.Response {
			return save(ctx, e, countries, req.Country, req.Country.ID)
		})

	// Region
	case events.StartRegionSearch:
		criteria := ports.RegionSearch{
			RegionCode: trim(req.RegionCode),
			LocalCode:  trim(req.LocalCode),
			Name:       trim(req.Name),
		}
		blank := criteria.RegionCode == "" && criteria.LocalCode == "" && criteria.Name == ""
		return e.guard(req, genericError, func() []events.Response { return search(ctx, e, regions, criteria, blank) })
	case events.LoadRegion:
		return e.guard(req, genericError, func() []events.Response { return load(ctx, e, regions, req.ID) })
	case events.SaveNewRegion:
		return e.guard(req, regions.failed, func() []events.Response {
			return saveNew(ctx, e, regions, req.Region, req.Region.ID)
		})
	case events.SaveRegion:
		return e.guard(req, regions.failed, func() []events.Response {
			return save(ctx, e, regions, req.Region, req.Region.ID)
		})

	// UnrecognizedRequest, or nil
	default:
		e.log.Warn().Stringer("request", request).Msg("Received unrecognized request")
		return []events.Response{events.Error{Message: msgUnrecognized}}
	}
}

// guard runs handler and converts a panic into a single fallback event.
func (e *Engine) guard(
	request events.Request,
	fallback func(message string) events.Response,
	handler func() []events.Response,
) (out []events.Response) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Stringer("request", request).Interface("panic", r).Msg("Handler panicked")
			out = []events.Response{fallback(fmt.Sprintf("An unexpected error occurred: %v", r))}
		}
	}()
	return handler()
}

func (e *Engine) openDatabase(ctx context.Context, req events.OpenDatabase) []events.Response {
	e.release()

	shown := redact(req.Path)
	catalog, err := e.open(ctx, req.Path)
	if err != nil {
		e.log.Warn().Err(err).Str("path", shown).Msg("Failed to open database")
		if errors.Is(err, ports.ErrInvalidStore) {
			return []events.Response{events.DatabaseOpenFailed{Message: msgInvalidStore}}
		}
		return []events.Response{events.DatabaseOpenFailed{Message: fmt.Sprintf("An unexpected error occurred: %v", err)}}
	}

	e.catalog = catalog
	e.log.Info().Str("path", shown).Msg("Database opened")
	return []events.Response{events.DatabaseOpened{Path: shown}}
}

// redact masks the password of a URL store identifier. File paths are returned as is.
func redact(path string) string {
	u, err := url.Parse(path)
	if err != nil || u.User == nil {
		return path
	}
	if _, ok := u.User.Password(); !ok {
		return path
	}
	return u.Redacted()
}

// openFailed is the panic fallback for OpenDatabase; it never leaves a connection behind.
func (e *Engine) openFailed(message string) events.Response {
	e.release()
	return events.DatabaseOpenFailed{Message: message}
}

func (e *Engine) closeDatabase() []events.Response {
	e.release()
	return []events.Response{events.DatabaseClosed{}}
}

// release drops the current connection, if any.
// The engine is Disconnected before Close runs, even if Close panics.
func (e *Engine) release() {
	catalog := e.catalog
	if catalog == nil {
		return
	}
	e.catalog = nil
	if err := catalog.Close(); err != nil {
		e.log.Warn().Err(err).Msg("Error while closing database")
	}
	e.log.Info().Msg("Database released")
}

func genericError(message string) events.Response {
	return events.Error{Message: message}
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
