// Package schema creates the ledger tables. A ledger lives for one session,
// so the schema is applied once to an empty database and never upgraded.
package schema

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed sql/*.sql
var files embed.FS

// ErrNotEmpty is returned by Apply when the database already holds tables.
var ErrNotEmpty = errors.New("schema: database is not empty")

// Script is one embedded sql/NN_name.sql file.
type Script struct {
	Name string
	SQL  string
}

// Scripts returns the embedded scripts sorted by file name, so the NN prefix
// decides the order.
func Scripts() ([]Script, error) {
	return readScripts(files)
}

func readScripts(fsys fs.FS) ([]Script, error) {
	names, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list schema scripts: %w", err)
	}
	slices.Sort(names)

	scripts := make([]Script, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		scripts = append(scripts, Script{
			Name: strings.TrimSuffix(strings.TrimPrefix(name, "sql/"), ".sql"),
			SQL:  string(content),
		})
	}
	return scripts, nil
}

// Apply creates every ledger table in a single transaction.
// Either all scripts run or the database is left untouched.
func Apply(db *sql.DB) error {
	scripts, err := Scripts()
	if err != nil {
		return err
	}
	return apply(db, scripts)
}

func apply(db *sql.DB, scripts []Script) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var tables int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'`).Scan(&tables); err != nil {
		return fmt.Errorf("inspect database: %w", err)
	}
	if tables > 0 {
		return ErrNotEmpty
	}

	for _, s := range scripts {
		if _, err := tx.Exec(s.SQL); err != nil {
			return fmt.Errorf("schema %s: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}
