// Package testutil builds on-disk catalog fixtures for tests.
package testutil

import (
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

//go:embed catalog.sql
var catalogSQL string

// NewCatalog creates an empty catalog database in a temp dir and returns its path.
func NewCatalog(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	Exec(t, path, catalogSQL)
	return path
}

// NewPlainDatabase creates a sqlite database that has no catalog tables.
func NewPlainDatabase(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plain.db")
	Exec(t, path, `CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)`)
	return path
}

// NewJunkFile creates a file that is not a sqlite database at all.
func NewJunkFile(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.txt")
	body := []byte("These are just some notes.\nThey are definitely not a database, " +
		"but they are long enough to cover a full sqlite file header and then some more.\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write junk file: %v", err)
	}
	return path
}

// Exec runs query against the sqlite file at path, creating it if needed.
func Exec(t testing.TB, path, query string, args ...any) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer db.Close()
	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("exec on %s: %v", path, err)
	}
}

// SeedContinent inserts a continent row directly.
func SeedContinent(t testing.TB, path string, id int64, code, name string) {
	t.Helper()
	Exec(t, path, `INSERT INTO continent (continent_id, continent_code, name) VALUES (?, ?, ?)`, id, code, name)
}

// SeedCountry inserts a country row directly. Empty optional values are stored as NULL.
func SeedCountry(t testing.TB, path string, id int64, code, name string, continentID int64, wikipediaLink, keywords string) {
	t.Helper()
	Exec(t, path, `
		INSERT INTO country (country_id, country_code, name, continent_id, wikipedia_link, keywords)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, code, name, continentID, nullIfEmpty(wikipediaLink), nullIfEmpty(keywords))
}

// SeedRegion inserts a region row directly.
func SeedRegion(t testing.TB, path string, id int64, regionCode, localCode, name string, continentID, countryID int64) {
	t.Helper()
	Exec(t, path, `
		INSERT INTO region (region_id, region_code, local_code, name, continent_id, country_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, regionCode, localCode, name, continentID, countryID)
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
