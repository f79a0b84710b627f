package sqlstore

import (
	"CatalogEngine/internal/testutil"
	"context"
	"testing"

	"github.com/rs/zerolog"
)

// openTestCatalog opens a fresh catalog. seed runs against the file before it is opened.
func openTestCatalog(t *testing.T, seed func(path string)) *DB {
	t.Helper()
	path := testutil.NewCatalog(t)
	if seed != nil {
		seed(path)
	}

	nopLogger := zerolog.Nop()
	db, err := Open(context.Background(), path, &nopLogger)
	if err != nil {
		t.Fatalf("Failed to open test catalog: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close test catalog: %v", err)
		}
	})
	return db
}

func strPtr(s string) *string { return &s }
