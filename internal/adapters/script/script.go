// Package script decodes YAML request scripts into request events.
//
// A script is a list of steps, each naming a request kind:
//
//	- kind: open_database
//	  path: airport.db
//	- kind: search_continent
//	  code: AS
//	- kind: save_new_country
//	  country: {id: 9, code: JP, name: Japan, continent_id: 7}
//
// Unknown kinds decode to events.UnrecognizedRequest so that the engine
// can report them like any other unrecognized event.
package script

import (
	"CatalogEngine/internal/core/domain"
	"CatalogEngine/internal/core/events"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Request kinds understood by Decode.
const (
	KindOpenDatabase     = "open_database"
	KindCloseDatabase    = "close_database"
	KindQuit             = "quit"
	KindSearchContinent  = "search_continent"
	KindLoadContinent    = "load_continent"
	KindSaveNewContinent = "save_new_continent"
	KindSaveContinent    = "save_continent"
	KindSearchCountry    = "search_country"
	KindLoadCountry      = "load_country"
	KindSaveNewCountry   = "save_new_country"
	KindSaveCountry      = "save_country"
	KindSearchRegion     = "search_region"
	KindLoadRegion       = "load_region"
	KindSaveNewRegion    = "save_new_region"
	KindSaveRegion       = "save_region"
)

// step is one entry of a script. Only the fields relevant to Kind are read.
type step struct {
	Kind       string     `yaml:"kind"`
	Path       string     `yaml:"path,omitempty"`
	ID         int64      `yaml:"id,omitempty"`
	Code       string     `yaml:"code,omitempty"`
	Name       string     `yaml:"name,omitempty"`
	RegionCode string     `yaml:"region_code,omitempty"`
	LocalCode  string     `yaml:"local_code,omitempty"`
	Continent  *continent `yaml:"continent,omitempty"`
	Country    *country   `yaml:"country,omitempty"`
	Region     *region    `yaml:"region,omitempty"`
}

type continent struct {
	ID   int64  `yaml:"id"`
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type country struct {
	ID            int64  `yaml:"id"`
	Code          string `yaml:"code"`
	Name          string `yaml:"name"`
	ContinentID   int64  `yaml:"continent_id"`
	WikipediaLink string `yaml:"wikipedia_link,omitempty"`
	Keywords      string `yaml:"keywords,omitempty"`
}

type region struct {
	ID            int64  `yaml:"id"`
	RegionCode    string `yaml:"region_code"`
	LocalCode     string `yaml:"local_code"`
	Name          string `yaml:"name"`
	ContinentID   int64  `yaml:"continent_id"`
	CountryID     int64  `yaml:"country_id"`
	WikipediaLink string `yaml:"wikipedia_link,omitempty"`
	Keywords      string `yaml:"keywords,omitempty"`
}

// Load reads and decodes the script at path.
func Load(path string) ([]events.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode reads a YAML script from r.
// Steps whose record payload is missing are reported as errors.
func Decode(r io.Reader) ([]events.Request, error) {
	var steps []step
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&steps); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}

	requests := make([]events.Request, 0, len(steps))
	for i, s := range steps {
		req, err := s.request()
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, s.Kind, err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (s step) request() (events.Request, error) {
	switch s.Kind {
	case KindOpenDatabase:
		return events.OpenDatabase{Path: s.Path}, nil
	case KindCloseDatabase:
		return events.CloseDatabase{}, nil
	case KindQuit:
		return events.QuitInitiated{}, nil

	case KindSearchContinent:
		return events.StartContinentSearch{Code: s.Code, Name: s.Name}, nil
	case KindLoadContinent:
		return events.LoadContinent{ID: s.ID}, nil
	case KindSaveNewContinent, KindSaveContinent:
		if s.Continent == nil {
			return nil, errors.New("continent is required")
		}
		c := s.Continent.domain()
		if s.Kind == KindSaveNewContinent {
			return events.SaveNewContinent{Continent: c}, nil
		}
		return events.SaveContinent{Continent: c}, nil

	case KindSearchCountry:
		return events.StartCountrySearch{Code: s.Code, Name: s.Name}, nil
	case KindLoadCountry:
		return events.LoadCountry{ID: s.ID}, nil
	case KindSaveNewCountry, KindSaveCountry:
		if s.Country == nil {
			return nil, errors.New("country is required")
		}
		c := s.Country.domain()
		if s.Kind == KindSaveNewCountry {
			return events.SaveNewCountry{Country: c}, nil
		}
		return events.SaveCountry{Country: c}, nil

	case KindSearchRegion:
		return events.StartRegionSearch{RegionCode: s.RegionCode, LocalCode: s.LocalCode, Name: s.Name}, nil
	case KindLoadRegion:
		return events.LoadRegion{ID: s.ID}, nil
	case KindSaveNewRegion, KindSaveRegion:
		if s.Region == nil {
			return nil, errors.New("region is required")
		}
		r := s.Region.domain()
		if s.Kind == KindSaveNewRegion {
			return events.SaveNewRegion{Region: r}, nil
		}
		return events.SaveRegion{Region: r}, nil
	}
	return events.UnrecognizedRequest{Kind: s.Kind}, nil
}

func (c continent) domain() domain.Continent {
	return domain.Continent{ID: c.ID, Code: c.Code, Name: c.Name}
}

func (c country) domain() domain.Country {
	return domain.Country{
		ID:            c.ID,
		Code:          c.Code,
		Name:          c.Name,
		ContinentID:   c.ContinentID,
		WikipediaLink: domain.Text(c.WikipediaLink),
		Keywords:      domain.Text(c.Keywords),
	}
}

func (r region) domain() domain.Region {
	return domain.Region{
		ID:            r.ID,
		RegionCode:    r.RegionCode,
		LocalCode:     r.LocalCode,
		Name:          r.Name,
		ContinentID:   r.ContinentID,
		CountryID:     r.CountryID,
		WikipediaLink: domain.Text(r.WikipediaLink),
		Keywords:      domain.Text(r.Keywords),
	}
}
