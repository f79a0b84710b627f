package engine

import (
	"CatalogEngine/internal/core/domain"
	"CatalogEngine/internal/core/events"
	"CatalogEngine/internal/core/ports"
)

var regions = entity[domain.Region, ports.RegionSearch]{
	singular: "region",
	plural:   "regions",
	criteria: "region code, local code, or region name",
	repo: func(c ports.Catalog) repository[domain.Region, ports.RegionSearch] {
		return c.Regions()
	},
	normalize: domain.Region.Normalized,
	found:     func(r domain.Region) events.Response { return events.RegionSearchResult{Region: r} },
	loaded:    func(r domain.Region) events.Response { return events.RegionLoaded{Region: r} },
	saved:     func(r domain.Region) events.Response { return events.RegionSaved{Region: r} },
	failed:    func(msg string) events.Response { return events.SaveRegionFailed{Message: msg} },
}
