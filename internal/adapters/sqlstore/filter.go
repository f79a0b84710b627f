package sqlstore

import "strings"

// Filter is a conjunction of "column = value" predicates.
// Values are always bound as parameters, never interpolated into the SQL text.
type Filter struct {
	columns []string
	values  []any
}

// Equal adds "column = value". The column must come from code, not from input.
func (f *Filter) Equal(column string, value any) *Filter {
	f.columns = append(f.columns, column)
	f.values = append(f.values, value)
	return f
}

// EqualIfSet adds "column = value" only when value is not blank.
// The trimmed value is the one that gets bound.
func (f *Filter) EqualIfSet(column, value string) *Filter {
	value = strings.TrimSpace(value)
	if value == "" {
		return f
	}
	return f.Equal(column, value)
}

// Len returns the number of predicates.
func (f *Filter) Len() int {
	return len(f.columns)
}

// Where renders the filter as a WHERE clause using '?' markers, together
// with the arguments in marker order. An empty filter renders nothing.
func (f *Filter) Where() (string, []any) {
	if f.Len() == 0 {
		return "", nil
	}
	parts := make([]string, len(f.columns))
	for i, column := range f.columns {
		parts[i] = column + " = ?"
	}
	args := make([]any, len(f.values))
	copy(args, f.values)
	return " WHERE " + strings.Join(parts, " AND "), args
}
