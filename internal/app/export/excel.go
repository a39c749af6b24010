// Package export writes course transcripts to spreadsheet files.
package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"lecturescribe/internal/app/model"
)

// ToExcel writes one row per video, in playback order, to outputFilePath.
func ToExcel(videos []model.Video, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcripts")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Course"
	headerRow.AddCell().Value = "Position"
	headerRow.AddCell().Value = "Title"
	headerRow.AddCell().Value = "Source"
	headerRow.AddCell().Value = "Updated"
	headerRow.AddCell().Value = "Transcript"

	for _, v := range videos {
		row := sheet.AddRow()
		row.AddCell().Value = v.ID
		row.AddCell().Value = v.CourseID
		row.AddCell().Value = fmt.Sprint(v.Position)
		row.AddCell().Value = v.Title
		row.AddCell().Value = v.SourceLocation
		row.AddCell().Value = v.UpdatedAt.Format(time.RFC3339)
		if v.Transcript != nil {
			row.AddCell().Value = *v.Transcript
		} else {
			row.AddCell().Value = ""
		}
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("save %s: %w", outputFilePath, err)
	}
	return nil
}
