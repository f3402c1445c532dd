package pii

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "PII"

// exportHeaders is the fixed column order of exported workbooks.
var exportHeaders = []string{
	"File Name", "User Name", "Page", "Occurrences",
	"Phone", "Email", "Aadhaar", "PAN", "Address", "DL", "Voter ID", "DOB",
}

// ExportXLSX writes rows to a single-sheet XLSX workbook and returns its
// bytes.
func ExportXLSX(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, row := range rows {
		values := []any{
			row.FileName, row.UserName, row.PageNumber, row.OccurrenceCount,
			row.Phone, row.Email, row.Aadhaar, row.PAN,
			row.Address, row.DL, row.VoterID, row.DOB,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", rowIdx+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
