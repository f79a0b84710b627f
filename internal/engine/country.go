package engine

import (
	"CatalogEngine/internal/core/domain"
	"CatalogEngine/internal/core/events"
	"CatalogEngine/internal/core/ports"
)

var countries = entity[domain.Country, ports.CountrySearch]{
	singular: "country",
	plural:   "countries",
	criteria: "country code or country name",
	repo: func(c ports.Catalog) repository[domain.Country, ports.CountrySearch] {
		return c.Countries()
	},
	normalize: domain.Country.Normalized,
	found:     func(c domain.Country) events.Response { return events.CountrySearchResult{Country: c} },
	loaded:    func(c domain.Country) events.Response { return events.CountryLoaded{Country: c} },
	saved:     func(c domain.Country) events.Response { return events.CountrySaved{Country: c} },
	failed:    func(msg string) events.Response { return events.SaveCountryFailed{Message: msg} },
}
