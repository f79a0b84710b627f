package sqlstore

import (
	"path/filepath"
	"strconv"
	"strings"
)

// dialect captures what differs between the supported stores.
type dialect struct {
	name   string
	driver string
	dsn    func(path string) string

	// placeholder returns the n-th (1-based) bind marker.
	placeholder func(n int) string

	// catalogCheck counts the catalog tables present in the store. It is the
	// one cheap introspective query used to validate a freshly opened store.
	catalogCheck string
}

// uriPath escapes the characters that would otherwise end or alter the
// path part of a sqlite file: URI.
var uriPath = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

var sqliteDialect = dialect{
	name:   "sqlite",
	driver: "sqlite",
	dsn: func(path string) string {
		// mode=rw refuses to create a missing file.
		return "file:" + uriPath.Replace(filepath.ToSlash(filepath.Clean(path))) + "?mode=rw&_pragma=foreign_keys(1)"
	},
	placeholder: func(int) string { return "?" },
	catalogCheck: `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name IN ('continent', 'country', 'region')
	`,
}

var postgresDialect = dialect{
	name:        "postgres",
	driver:      "pgx",
	dsn:         func(path string) string { return path },
	placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	catalogCheck: `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name IN ('continent', 'country', 'region')
	`,
}

// dialectFor picks the store flavour from the identifier the user supplied.
// Anything that is not a postgres URL is treated as a sqlite file path.
func dialectFor(path string) dialect {
	lower := strings.ToLower(path)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return postgresDialect
	}
	return sqliteDialect
}

// rebind rewrites the '?' markers of query into the dialect's markers.
// Queries in this package never contain '?' inside literals.
func (d dialect) rebind(query string) string {
	if d.name == sqliteDialect.name {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString(d.placeholder(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
