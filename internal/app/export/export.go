// Package export writes stored reports to spreadsheet files.
package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/model"
)

// ToExcel writes the report records to an xlsx workbook at outputFilePath.
func ToExcel(records []model.ReportRecord, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Reports")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Timestamp"
	headerRow.AddCell().Value = "Final Report"
	headerRow.AddCell().Value = "Transcription"
	headerRow.AddCell().Value = "Image Description"
	headerRow.AddCell().Value = "Report Key"
	headerRow.AddCell().Value = "Transcription Key"
	headerRow.AddCell().Value = "Image Description Key"

	for _, r := range records {
		row := sheet.AddRow()
		row.AddCell().Value = r.ID
		row.AddCell().Value = r.Timestamp.Format(time.RFC3339)
		row.AddCell().Value = r.FinalReport
		row.AddCell().Value = r.Transcription
		row.AddCell().Value = r.ImageDescription
		row.AddCell().Value = r.ReportKey
		row.AddCell().Value = r.TranscriptionKey
		row.AddCell().Value = r.ImageDescKey
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
