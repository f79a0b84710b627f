package domain

import "fmt"

// Region is one row of the region table.
type Region struct {
	ID            int64
	RegionCode    string
	LocalCode     string
	Name          string
	ContinentID   int64
	CountryID     int64
	WikipediaLink *string // Nullable
	Keywords      *string // Nullable
}

func (r Region) String() string {
	return fmt.Sprintf("Region{id=%d region_code=%q local_code=%q name=%q continent_id=%d country_id=%d wikipedia_link=%s keywords=%s}",
		r.ID, r.RegionCode, r.LocalCode, r.Name, r.ContinentID, r.CountryID, optional(r.WikipediaLink), optional(r.Keywords))
}

// Normalized returns r as it is stored: empty optional columns become nil.
func (r Region) Normalized() Region {
	r.WikipediaLink = orNil(r.WikipediaLink)
	r.Keywords = orNil(r.Keywords)
	return r
}
