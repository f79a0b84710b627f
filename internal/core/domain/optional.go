package domain

import "strconv"

// Text returns a pointer to s, or nil when s is empty.
// Empty optional columns are stored as NULL.
func Text(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optional(s *string) string {
	if s == nil {
		return "null"
	}
	return strconv.Quote(*s)
}

// orNil turns a pointer to an empty string into nil.
func orNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
