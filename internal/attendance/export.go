package attendance

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance"

// ExportXLSX writes attendance records for the date range as a
// spreadsheet. A zero `from` or `to` leaves that side of the range open.
func (s *Service) ExportXLSX(from, to time.Time, w io.Writer) error {
	records, err := s.repo.GetRange(from, to)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), exportSheet)

	headers := []string{"ID", "Employee ID", "Date", "Check In", "Check Out", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return err
		}
	}

	for row, rec := range records {
		checkIn := ""
		if rec.CheckInTime != nil {
			checkIn = rec.CheckInTime.Format("15:04:05")
		}
		checkOut := ""
		if rec.CheckOutTime != nil {
			checkOut = rec.CheckOutTime.Format("15:04:05")
		}
		values := []interface{}{
			rec.ID,
			rec.EmployeeID,
			rec.WorkDate.Format("2006-01-02"),
			checkIn,
			checkOut,
			rec.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write attendance export: %w", err)
	}
	return nil
}
