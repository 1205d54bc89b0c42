package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS roster_name (
	owner TEXT NOT NULL,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	UNIQUE(owner, position)
);
CREATE INDEX IF NOT EXISTS idx_roster_name_owner ON roster_name(owner);
`

type rosterRow struct {
	Position int    `db:"position"`
	Name     string `db:"name"`
}

// SQLRosterStore keeps rosters in a sqlite database
type SQLRosterStore struct {
	db *sqlx.DB
}

// OpenSQLRosterStore connects to the database at dsn and creates the schema
func OpenSQLRosterStore(dsn string) (*SQLRosterStore, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect roster database: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init roster schema: %w", err)
	}

	return &SQLRosterStore{db: db}, nil
}

// Load returns the saved names of owner in order
func (s *SQLRosterStore) Load(ctx context.Context, owner string) ([]string, error) {
	var rows []rosterRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT position, name FROM roster_name WHERE owner = ? ORDER BY position`, owner)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}
	return names, nil
}

// Save replaces the saved names of owner
func (s *SQLRosterStore) Save(ctx context.Context, owner string, names []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM roster_name WHERE owner = ?`, owner); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	for i, name := range names {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO roster_name (owner, position, name) VALUES (?, ?, ?)`, owner, i, name); err != nil {
			return fmt.Errorf("save roster: %w", err)
		}
	}

	return tx.Commit()
}

// Close closes the database
func (s *SQLRosterStore) Close() error {
	return s.db.Close()
}
