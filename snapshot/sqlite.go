package snapshot

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS symbols (
	loc   INTEGER PRIMARY KEY,
	str   INTEGER NOT NULL,
	text  BLOB NOT NULL,
	ilk   TEXT NOT NULL,
	class TEXT NOT NULL,
	info  INTEGER NOT NULL,
	next  INTEGER NOT NULL
)`

// WriteSQLite stores the slots of s in the symbols table of the database at
// path, replacing rows with the same slot number.
func WriteSQLite(path string, s *Snapshot) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO symbols
		(loc, str, text, ilk, class, info, next) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, sl := range s.Slots {
		text := sl.Text
		if text == nil {
			text = []byte{}
		}
		if _, err := stmt.Exec(sl.Loc, sl.Str, text, sl.IlkOf().String(), sl.ClassOf().String(), sl.Info, sl.Next); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert slot %d: %w", sl.Loc, err)
		}
	}
	return tx.Commit()
}
