package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS videos (
	id              TEXT PRIMARY KEY,
	course_id       TEXT NOT NULL,
	title           TEXT NOT NULL DEFAULT '',
	source_location TEXT NOT NULL,
	position        INTEGER NOT NULL DEFAULT 0,
	transcript      TEXT,
	created_at      TIMESTAMP NOT NULL,
	updated_at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_videos_course ON videos(course_id, position);
`

// Open opens (and if needed creates) the sqlite video store at dbFilePath.
func Open(dbFilePath string) (*VideoStore, error) {
	if dir := filepath.Dir(dbFilePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &VideoStore{db: db}, nil
}
