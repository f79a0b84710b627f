package domain

import "fmt"

// Continent is one row of the continent table.
type Continent struct {
	ID   int64
	Code string
	Name string
}

func (c Continent) String() string {
	return fmt.Sprintf("Continent{id=%d code=%q name=%q}", c.ID, c.Code, c.Name)
}
