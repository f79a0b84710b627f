package engine

import (
	"CatalogEngine/internal/core/domain"
	"CatalogEngine/internal/core/events"
	"CatalogEngine/internal/core/ports"
)

var continents = entity[domain.Continent, ports.ContinentSearch]{
	singular: "continent",
	plural:   "continents",
	criteria: "continent code or continent name",
	repo: func(c ports.Catalog) repository[domain.Continent, ports.ContinentSearch] {
		return c.Continents()
	},
	found:  func(c domain.Continent) events.Response { return events.ContinentSearchResult{Continent: c} },
	loaded: func(c domain.Continent) events.Response { return events.ContinentLoaded{Continent: c} },
	saved:  func(c domain.Continent) events.Response { return events.ContinentSaved{Continent: c} },
	failed: func(msg string) events.Response { return events.SaveContinentFailed{Message: msg} },
}
