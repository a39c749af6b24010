package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"lecturescribe/internal/app/model"
)

func TestToExcel(t *testing.T) {
	transcript := "hello world"
	videos := []model.Video{
		{
			ID:             "vid-1",
			CourseID:       "course-1",
			Title:          "Intro lecture",
			SourceLocation: "https://media.example.com/intro.mp4",
			Position:       1,
			Transcript:     &transcript,
			UpdatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:       "vid-2",
			CourseID: "course-1",
			Title:    "Untranscribed lecture",
			Position: 2,
		},
	}

	outputPath := filepath.Join(t.TempDir(), "course.xlsx")
	require.NoError(t, ToExcel(videos, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "Transcript", sheet.Rows[0].Cells[6].Value)
	assert.Equal(t, "vid-1", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "hello world", sheet.Rows[1].Cells[6].Value)
	assert.Equal(t, "", sheet.Rows[2].Cells[6].Value)
}
