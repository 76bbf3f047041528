package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect opens the quiz history database. When DATABASE_URL is set a
// PostgreSQL connection is used, otherwise a local SQLite file at path.
func Connect(path string) error {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		db, err := sqlx.Connect("postgres", url)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
		DB = db
		return initializeSchema()
	}

	// Create data directory if it doesn't exist
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite doesn't support multiple writers
	db.SetMaxIdleConns(1)

	DB = db

	// Initialize schema
	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	var query string

	if DB.DriverName() == "postgres" {
		query = `
			CREATE TABLE IF NOT EXISTS quiz_results (
				id SERIAL PRIMARY KEY,
				topic TEXT NOT NULL,
				total_words INTEGER NOT NULL,
				correct_words INTEGER NOT NULL,
				duration INTEGER DEFAULT 0,
				test_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`
	} else {
		query = `
			CREATE TABLE IF NOT EXISTS quiz_results (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				topic TEXT NOT NULL,
				total_words INTEGER NOT NULL,
				correct_words INTEGER NOT NULL,
				duration INTEGER DEFAULT 0,
				test_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`
	}

	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create quiz_results table: %v", err)
	}

	return nil
}
