package services

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx/v3"
)

var scheduleExportHeader = []string{"Slot", "Time", "Class", "Trainer", "Duration", "Level"}

// ExportWorkbook writes the weekly grid as an xlsx workbook with one sheet per
// day.
func (s *ScheduleService) ExportWorkbook(w io.Writer) error {
	file := xlsx.NewFile()

	for _, day := range s.Week() {
		sheet, err := file.AddSheet(day.Day)
		if err != nil {
			return fmt.Errorf("add sheet %s: %w", day.Day, err)
		}

		writeRow(sheet, scheduleExportHeader...)
		for _, slot := range day.Slots {
			for _, class := range slot.Classes {
				writeRow(sheet, slot.Slot, class.Time, class.Name, class.Trainer, class.Duration, class.Level)
			}
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, value := range values {
		row.AddCell().SetString(value)
	}
}
