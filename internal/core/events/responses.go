package events

import (
	"CatalogEngine/internal/core/domain"
	"fmt"
)

// Response describes one unit of outcome produced by the engine.
type Response interface {
	fmt.Stringer
	isResponse()
}

// --- Application responses ---

// DatabaseOpened confirms that the store at Path is open.
type DatabaseOpened struct {
	Path string
}

// DatabaseOpenFailed reports why a store could not be opened.
type DatabaseOpenFailed struct {
	Message string
}

// DatabaseClosed confirms that no store is open anymore.
type DatabaseClosed struct{}

// EndApplication tells the interface layer to shut down.
type EndApplication struct{}

// Error is a generic, user-facing failure notice.
type Error struct {
	Message string
}

// --- Continent responses ---

type ContinentSearchResult struct {
	Continent domain.Continent
}

type ContinentLoaded struct {
	Continent domain.Continent
}

type ContinentSaved struct {
	Continent domain.Continent
}

type SaveContinentFailed struct {
	Message string
}

// --- Country responses ---

type CountrySearchResult struct {
	Country domain.Country
}

type CountryLoaded struct {
	Country domain.Country
}

type CountrySaved struct {
	Country domain.Country
}

type SaveCountryFailed struct {
	Message string
}

// --- Region responses ---

type RegionSearchResult struct {
	Region domain.Region
}

type RegionLoaded struct {
	Region domain.Region
}

type RegionSaved struct {
	Region domain.Region
}

type SaveRegionFailed struct {
	Message string
}

func (DatabaseOpened) isResponse()        {}
func (DatabaseOpenFailed) isResponse()    {}
func (DatabaseClosed) isResponse()        {}
func (EndApplication) isResponse()        {}
func (Error) isResponse()                 {}
func (ContinentSearchResult) isResponse() {}
func (ContinentLoaded) isResponse()       {}
func (ContinentSaved) isResponse()        {}
func (SaveContinentFailed) isResponse()   {}
func (CountrySearchResult) isResponse()   {}
func (CountryLoaded) isResponse()         {}
func (CountrySaved) isResponse()          {}
func (SaveCountryFailed) isResponse()     {}
func (RegionSearchResult) isResponse()    {}
func (RegionLoaded) isResponse()          {}
func (RegionSaved) isResponse()           {}
func (SaveRegionFailed) isResponse()      {}

func (r DatabaseOpened) String() string     { return fmt.Sprintf("DatabaseOpened(path=%q)", r.Path) }
func (r DatabaseOpenFailed) String() string { return fmt.Sprintf("DatabaseOpenFailed(%q)", r.Message) }
func (DatabaseClosed) String() string       { return "DatabaseClosed()" }
func (EndApplication) String() string       { return "EndApplication()" }
func (r Error) String() string              { return fmt.Sprintf("Error(%q)", r.Message) }

func (r ContinentSearchResult) String() string {
	return "ContinentSearchResult(" + r.Continent.String() + ")"
}
func (r ContinentLoaded) String() string { return "ContinentLoaded(" + r.Continent.String() + ")" }
func (r ContinentSaved) String() string  { return "ContinentSaved(" + r.Continent.String() + ")" }
func (r SaveContinentFailed) String() string {
	return fmt.Sprintf("SaveContinentFailed(%q)", r.Message)
}

func (r CountrySearchResult) String() string { return "CountrySearchResult(" + r.Country.String() + ")" }
func (r CountryLoaded) String() string       { return "CountryLoaded(" + r.Country.String() + ")" }
func (r CountrySaved) String() string        { return "CountrySaved(" + r.Country.String() + ")" }
func (r SaveCountryFailed) String() string   { return fmt.Sprintf("SaveCountryFailed(%q)", r.Message) }

func (r RegionSearchResult) String() string { return "RegionSearchResult(" + r.Region.String() + ")" }
func (r RegionLoaded) String() string       { return "RegionLoaded(" + r.Region.String() + ")" }
func (r RegionSaved) String() string        { return "RegionSaved(" + r.Region.String() + ")" }
func (r SaveRegionFailed) String() string   { return fmt.Sprintf("SaveRegionFailed(%q)", r.Message) }
