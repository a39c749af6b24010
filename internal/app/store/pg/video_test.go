package pg

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lecturescribe/internal/app/store"
)

func TestGetVideo_ScansRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "course_id", "title", "source_location", "position", "transcript", "created_at", "updated_at",
	}).AddRow("v1", "c1", "Lecture 1", "https://host/a.mp4", 1, nil, time.Now(), time.Now())

	mock.ExpectQuery("SELECT id, course_id, title, source_location").
		WithArgs("v1").
		WillReturnRows(rows)

	s := NewWithDB(db)
	v, err := s.GetVideo(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, "c1", v.CourseID)
	assert.Nil(t, v.Transcript)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVideo_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, course_id, title, source_location").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	s := NewWithDB(db)
	_, err = s.GetVideo(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, store.IsNotFound(err))
}

func TestSetTranscript_UpdatesOneRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE videos SET transcript").
		WithArgs("hello world", sqlmock.AnyArg(), "v1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := NewWithDB(db)
	require.NoError(t, s.SetTranscript(context.Background(), "v1", "hello world"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetTranscript_MissingVideo(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE videos SET transcript").
		WithArgs("text", sqlmock.AnyArg(), "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	s := NewWithDB(db)
	err = s.SetTranscript(context.Background(), "ghost", "text")
	require.Error(t, err)
	assert.True(t, store.IsNotFound(err))
}

func TestUpdatePosition(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE videos SET position").
		WithArgs(4, sqlmock.AnyArg(), "v1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := NewWithDB(db)
	require.NoError(t, s.UpdatePosition(context.Background(), "v1", 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}
