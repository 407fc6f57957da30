package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schemaFile = "contacts.sql"

// NewTestDB creates a new in-memory SQLite database with the contacts schema applied.
// The pool is pinned to one connection because every :memory: connection is its own database.
func NewTestDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := ApplySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot apply schema: %w", err)
	}

	return db, nil
}

// ApplySchema executes the SQLite contacts schema against db.
func ApplySchema(db *sql.DB) error {
	dir := findSchemaDir()
	if dir == "" {
		return fmt.Errorf("schema directory not found")
	}

	content, err := os.ReadFile(filepath.Join(dir, schemaFile))
	if err != nil {
		return fmt.Errorf("cannot read schema %s: %w", schemaFile, err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("cannot execute schema %s: %w", schemaFile, err)
	}
	return nil
}

func findSchemaDir() string {
	paths := []string{
		"assets/schema/sqlite",
		"../assets/schema/sqlite",
		"../../assets/schema/sqlite",
		"../../../assets/schema/sqlite",
		"../../../../assets/schema/sqlite",
	}

	for _, p := range paths {
		if _, err := os.Stat(filepath.Join(p, schemaFile)); err == nil {
			return p
		}
	}
	return ""
}

// TestDBProvider implements DBProvider for testing.
type TestDBProvider struct {
	DB *sql.DB
}

func (p *TestDBProvider) GetDB() *sql.DB {
	return p.DB
}
