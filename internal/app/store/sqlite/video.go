package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"lecturescribe/internal/app/model"
	"lecturescribe/internal/app/store"
)

// VideoStore is the sqlite-backed video catalog.
type VideoStore struct {
	db *sql.DB
}

func (s *VideoStore) Close() error {
	return s.db.Close()
}

func (s *VideoStore) CreateVideo(ctx context.Context, v *model.Video) error {
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	insertSQL := `INSERT INTO videos (id, course_id, title, source_location, position, transcript, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := s.db.ExecContext(ctx, insertSQL,
		v.ID, v.CourseID, v.Title, v.SourceLocation, v.Position, v.Transcript, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert video failed: %w", err)
	}
	return nil
}

func (s *VideoStore) GetVideo(ctx context.Context, id string) (*model.Video, error) {
	query := `SELECT id, course_id, title, source_location, position, transcript, created_at, updated_at
		FROM videos WHERE id = ?`
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
		FROM videos WHERE course_id = ? ORDER BY position, created_at;`
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
		`UPDATE videos SET position = ?, updated_at = ? WHERE id = ?`, position, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update position failed: %w", err)
	}
	return requireOneRow(res)
}

func (s *VideoStore) SetTranscript(ctx context.Context, id string, text string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE videos SET transcript = ?, updated_at = ? WHERE id = ?`, text, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update transcript failed: %w", err)
	}
	return requireOneRow(res)
}

func (s *VideoStore) SearchTranscripts(ctx context.Context, query string, limit int) ([]model.TranscriptSearchHit, error) {
	if limit <= 0 {
		limit = 20
	}
	sqlStr := `SELECT id, course_id, title, substr(transcript, 1, 200)
		FROM videos
		WHERE transcript IS NOT NULL AND transcript LIKE ?
		ORDER BY updated_at DESC
		LIMIT ?;`
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
