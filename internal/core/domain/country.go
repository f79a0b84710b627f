package domain

import "fmt"

// Country is one row of the country table.
type Country struct {
	ID            int64
	Code          string
	Name          string
	ContinentID   int64
	WikipediaLink *string // Nullable
	Keywords      *string // Nullable
}

func (c Country) String() string {
	return fmt.Sprintf("Country{id=%d code=%q name=%q continent_id=%d wikipedia_link=%s keywords=%s}",
		c.ID, c.Code, c.Name, c.ContinentID, optional(c.WikipediaLink), optional(c.Keywords))
}

// Normalized returns c as it is stored: empty optional columns become nil.
func (c Country) Normalized() Country {
	c.WikipediaLink = orNil(c.WikipediaLink)
	c.Keywords = orNil(c.Keywords)
	return c
}
