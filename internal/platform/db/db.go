package db

import (
	"database/sql"
	"fmt"
	"time"
)

// OpenPostgres opens the shared archive database via the pgx stdlib driver.
func OpenPostgres(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("verify postgres connection: %w", err)
	}

	return db, nil
}

// OpenSQLite opens the local message/route database.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
