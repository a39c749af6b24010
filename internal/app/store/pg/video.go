package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"lecturescribe/internal/app/model"
	"lecturescribe/internal/app/store"
)

// VideoStore is the postgres-backed video catalog, selected by DB_DRIVER=postgres.
type VideoStore struct {
	db *sql.DB
}

// Open connects to postgres with the given DSN and ensures the videos table.
func Open(dsn string) (*VideoStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	createSQL := `
	CREATE TABLE IF NOT EXISTS videos (
		id              TEXT PRIMARY KEY,
		course_id       TEXT NOT NULL,
		title           TEXT NOT NULL DEFAULT '',
		source_location TEXT NOT NULL,
		position        INTEGER NOT NULL DEFAULT 0,
		transcript      TEXT,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_videos_course ON videos(course_id, position);`
	if _, err := db.Exec(createSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &VideoStore{db: db}, nil
}

// NewWithDB wraps an existing connection. Used by tests.
func NewWithDB(db *sql.DB) *VideoStore {
	return &VideoStore{db: db}
}

func (s *VideoStore) Close() error {
	return s.db.Close()
}

func (s *VideoStore) CreateVideo(ctx context.Context, v *model.Video) error {
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	insertSQL := `INSERT INTO videos (id, course_id, title, source_location, position, transcript, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.db.ExecContext(ctx, insertSQL,
		v.ID, v.CourseID, v.Title, v.SourceLocation, v.Position, v.Transcript, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert video failed: %w", err)
	}
	return nil
}

func (s *VideoStore) GetVideo(ctx context.Context, id string) (*model.Video, error) {
	query := `SELECT id, course_id, title, source_location, position, transcript, created_at, updated_at
		FROM videos WHERE id = $1`
	row := s.db.QueryRowContext(ctx, query, id)

	var v model.Video
	err := row.Scan(&v.ID, &v.CourseID, &v.Title, &v.SourceLocation, &v.Position, &v.Transcript, &v.CreatedAt, &v.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, store.ErrVideoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db scan failed: %w", err)
	}
	return &v, nil
}

func (s *VideoStore) ListByCourse(ctx context.Context, courseID string) ([]model.Video, error) {
	query := `SELECT id, course_id, title, source_location, position, transcript, created_at, updated_at
		FROM videos WHERE course_id = $1 ORDER BY position, created_at`
	rows, err := s.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	videos := make([]model.Video, 0)
	for rows.Next() {
		var v model.Video
		err = rows.Scan(&v.ID, &v.CourseID, &v.Title, &v.SourceLocation, &v.Position, &v.Transcript, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (s *VideoStore) UpdatePosition(ctx context.Context, id string, position int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE videos SET position = $1, updated_at = $2 WHERE id = $3`, position, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update position failed: %w", err)
	}
	return requireOneRow(res)
}

func (s *VideoStore) SetTranscript(ctx context.Context, id string, text string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE videos SET transcript = $1, updated_at = $2 WHERE id = $3`, text, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update transcript failed: %w", err)
	}
	return requireOneRow(res)
}

func (s *VideoStore) SearchTranscripts(ctx context.Context, query string, limit int) ([]model.TranscriptSearchHit, error) {
	if limit <= 0 {
		limit = 20
	}
	sqlStr := `SELECT id, course_id, title, substring(transcript from 1 for 200)
		FROM videos
		WHERE transcript IS NOT NULL AND transcript ILIKE $1
		ORDER BY updated_at DESC
		LIMIT $2`
	rows, err := s.db.QueryContext(ctx, sqlStr, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	defer rows.Close()

	hits := make([]model.TranscriptSearchHit, 0)
	for rows.Next() {
		var h model.TranscriptSearchHit
		if err := rows.Scan(&h.VideoID, &h.CourseID, &h.Title, &h.Snippet); err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if n == 0 {
		return store.ErrVideoNotFound
	}
	return nil
}
