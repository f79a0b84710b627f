package sqlstore

import (
	"CatalogEngine/internal/core/ports"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// SQLSTATE 3D000: the database named in the URL does not exist.
const pgInvalidCatalogName = "3D000"

// classifyOpenError wraps err with ports.ErrInvalidStore when the driver
// says the target is not a database at all. Other errors pass through.
func classifyOpenError(err error) error {
	if err == nil {
		return nil
	}
	if isNotADatabase(err) {
		return fmt.Errorf("%w: %v", ports.ErrInvalidStore, err)
	}
	return err
}

func isNotADatabase(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		// Primary result code lives in the low byte.
		if sqliteErr.Code()&0xff == sqlite3lib.SQLITE_NOTADB {
			return true
		}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidCatalogName {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "file is not a database")
}
