package events

import (
	"CatalogEngine/internal/core/domain"
	"fmt"
)

// Request is an instruction sent by the interface layer to the engine.
type Request interface {
	fmt.Stringer
	isRequest()
}

// --- Application requests ---

// OpenDatabase asks the engine to open the catalog store at Path.
type OpenDatabase struct {
	Path string
}

// CloseDatabase asks the engine to release its store, if any.
type CloseDatabase struct{}

// QuitInitiated asks the engine to end the application.
type QuitInitiated struct{}

// --- Continent requests ---

// StartContinentSearch searches continents by code and/or name.
// Blank fields are ignored.
type StartContinentSearch struct {
	Code string
	Name string
}

// LoadContinent fetches a single continent by id.
type LoadContinent struct {
	ID int64
}

// SaveNewContinent inserts a continent with a caller-chosen id.
type SaveNewContinent struct {
	Continent domain.Continent
}

// SaveContinent overwrites the continent whose id matches.
type SaveContinent struct {
	Continent domain.Continent
}

// --- Country requests ---

// StartCountrySearch searches countries by code and/or name.
type StartCountrySearch struct {
	Code string
	Name string
}

// LoadCountry fetches a single country by id.
type LoadCountry struct {
	ID int64
}

// SaveNewCountry inserts a country with a caller-chosen id.
type SaveNewCountry struct {
	Country domain.Country
}

// SaveCountry overwrites the country whose id matches.
type SaveCountry struct {
	Country domain.Country
}

// --- Region requests ---

// StartRegionSearch searches regions by region code, local code and/or name.
type StartRegionSearch struct {
	RegionCode string
	LocalCode  string
	Name       string
}

// LoadRegion fetches a single region by id.
type LoadRegion struct {
	ID int64
}

// SaveNewRegion inserts a region with a caller-chosen id.
type SaveNewRegion struct {
	Region domain.Region
}

// SaveRegion overwrites the region whose id matches.
type SaveRegion struct {
	Region domain.Region
}

// UnrecognizedRequest stands in for a request that could not be decoded
// into one of the known kinds, e.g. an unknown kind in a request script.
type UnrecognizedRequest struct {
	Kind string
}

func (OpenDatabase) isRequest()         {}
func (CloseDatabase) isRequest()        {}
func (QuitInitiated) isRequest()        {}
func (StartContinentSearch) isRequest() {}
func (LoadContinent) isRequest()        {}
func (SaveNewContinent) isRequest()     {}
func (SaveContinent) isRequest()        {}
func (StartCountrySearch) isRequest()   {}
func (LoadCountry) isRequest()          {}
func (SaveNewCountry) isRequest()       {}
func (SaveCountry) isRequest()          {}
func (StartRegionSearch) isRequest()    {}
func (LoadRegion) isRequest()           {}
func (SaveNewRegion) isRequest()        {}
func (SaveRegion) isRequest()           {}
func (UnrecognizedRequest) isRequest()  {}

func (r OpenDatabase) String() string  { return fmt.Sprintf("OpenDatabase(path=%q)", r.Path) }
func (CloseDatabase) String() string   { return "CloseDatabase()" }
func (QuitInitiated) String() string   { return "QuitInitiated()" }
func (r LoadContinent) String() string { return fmt.Sprintf("LoadContinent(id=%d)", r.ID) }
func (r LoadCountry) String() string   { return fmt.Sprintf("LoadCountry(id=%d)", r.ID) }
func (r LoadRegion) String() string    { return fmt.Sprintf("LoadRegion(id=%d)", r.ID) }

func (r StartContinentSearch) String() string {
	return fmt.Sprintf("StartContinentSearch(code=%q, name=%q)", r.Code, r.Name)
}

func (r StartCountrySearch) String() string {
	return fmt.Sprintf("StartCountrySearch(code=%q, name=%q)", r.Code, r.Name)
}

func (r StartRegionSearch) String() string {
	return fmt.Sprintf("StartRegionSearch(region_code=%q, local_code=%q, name=%q)", r.RegionCode, r.LocalCode, r.Name)
}

func (r SaveNewContinent) String() string { return "SaveNewContinent(" + r.Continent.String() + ")" }
func (r SaveContinent) String() string    { return "SaveContinent(" + r.Continent.String() + ")" }
func (r SaveNewCountry) String() string   { return "SaveNewCountry(" + r.Country.String() + ")" }
func (r SaveCountry) String() string      { return "SaveCountry(" + r.Country.String() + ")" }
func (r SaveNewRegion) String() string    { return "SaveNewRegion(" + r.Region.String() + ")" }
func (r SaveRegion) String() string       { return "SaveRegion(" + r.Region.String() + ")" }

func (r UnrecognizedRequest) String() string {
	return fmt.Sprintf("UnrecognizedRequest(kind=%q)", r.Kind)
}
