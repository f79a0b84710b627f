package sqlstore

import (
	"CatalogEngine/internal/core/ports"
	"CatalogEngine/internal/testutil"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestOpen_Catalog(t *testing.T) {
	nopLogger := zerolog.Nop()
	path := testutil.NewCatalog(t)

	db, err := Open(context.Background(), path, &nopLogger)
	if err != nil {
		t.Fatalf("Open failed on a valid catalog: %v", err)
	}
	if db.dialect.name != "sqlite" {
		t.Errorf("dialect mismatch: got %s, want sqlite", db.dialect.name)
	}

	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got: %v", err)
	}
}

func TestOpen_InvalidStore(t *testing.T) {
	nopLogger := zerolog.Nop()

	cases := map[string]string{
		"sqlite file without catalog tables": testutil.NewPlainDatabase(t),
		"file that is not a database":        testutil.NewJunkFile(t),
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			db, err := Open(context.Background(), path, &nopLogger)
			if err == nil {
				db.Close()
				t.Fatalf("Open should fail for %s", path)
			}
			if !errors.Is(err, ports.ErrInvalidStore) {
				t.Errorf("expected ErrInvalidStore, got: %v", err)
			}
			if db != nil {
				t.Errorf("expected no DB on failure")
			}
		})
	}
}

func TestOpen_MissingFile(t *testing.T) {
	nopLogger := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "missing.db")

	_, err := Open(context.Background(), path, &nopLogger)
	if err == nil {
		t.Fatalf("Open should fail for a missing file")
	}
	if errors.Is(err, ports.ErrInvalidStore) {
		t.Errorf("a missing file is not an invalid store: %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("Open must not create %s", path)
	}
}

func TestOpen_BlankPath(t *testing.T) {
	nopLogger := zerolog.Nop()
	if _, err := Open(context.Background(), "   ", &nopLogger); err == nil {
		t.Fatalf("Open should reject a blank path")
	}
}

func TestOpener_ReturnsNilCatalogOnFailure(t *testing.T) {
	nopLogger := zerolog.Nop()
	open := Opener(&nopLogger)

	catalog, err := open(context.Background(), testutil.NewPlainDatabase(t))
	if err == nil {
		t.Fatalf("expected an error")
	}
	if catalog != nil {
		t.Errorf("expected a nil ports.Catalog, got %#v", catalog)
	}
}

func TestOpen_PathWithURICharacters(t *testing.T) {
	nopLogger := zerolog.Nop()
	catalog, err := os.ReadFile(testutil.NewCatalog(t))
	if err != nil {
		t.Fatalf("Failed to read catalog fixture: %v", err)
	}

	for _, name := range []string{"a#b.db", "a?b.db", "a%20b.db", "50% off.db"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, catalog, 0o600); err != nil {
				t.Fatalf("Failed to copy catalog: %v", err)
			}

			db, err := Open(context.Background(), path, &nopLogger)
			if err != nil {
				t.Fatalf("Open failed for %q: %v", name, err)
			}
			if err := db.Close(); err != nil {
				t.Errorf("Close failed: %v", err)
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatalf("Failed to list %s: %v", dir, err)
			}
			if len(entries) != 1 || entries[0].Name() != name {
				var names []string
				for _, e := range entries {
					names = append(names, e.Name())
				}
				t.Errorf("Open must not create files: dir holds %v", names)
			}
		})
	}
}

func TestSqliteDSN_EscapesPath(t *testing.T) {
	got := sqliteDialect.dsn("/data/a?b#c%d.db")
	want := "file:/data/a%3Fb%23c%25d.db?mode=rw&_pragma=foreign_keys(1)"
	if got != want {
		t.Errorf("dsn mismatch: got %q, want %q", got, want)
	}
}
