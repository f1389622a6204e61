// Package xlsxexport renders tabular report data as an Excel workbook.
package xlsxexport

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet holds one worksheet's name, header row, and data rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// Write builds a single-sheet workbook and returns the serialized file.
func Write(sheet Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return nil, fmt.Errorf("xlsxexport: rename sheet: %w", err)
	}

	if len(sheet.Header) > 0 {
		header := make([]interface{}, len(sheet.Header))
		for i, h := range sheet.Header {
			header[i] = h
		}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return nil, fmt.Errorf("xlsxexport: write header: %w", err)
		}
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsxexport: row %d: %w", i, err)
		}
		r := row
		if err := f.SetSheetRow(name, cell, &r); err != nil {
			return nil, fmt.Errorf("xlsxexport: write row %d: %w", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsxexport: serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
