// Package spreadsheet encodes tabular report rows into .xlsx workbooks. It
// only writes cells; building the rows is the report service's job.
package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	minColWidth = 10
	maxColWidth = 50
)

// WriteRows writes rows into a single-sheet workbook at path. Column widths
// track the longest cell per column, padded slightly, clamped to
// [minColWidth, maxColWidth].
func WriteRows(path, sheet string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	columns := 0
	for r, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to map cell (%d,%d): %w", r, c, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	for c := 1; c <= columns; c++ {
		width := float64(minColWidth)
		for _, row := range rows {
			if c > len(row) {
				continue
			}
			if l := float64(len(fmt.Sprint(row[c-1])) + 2); l > width {
				width = l
			}
		}
		if width > maxColWidth {
			width = maxColWidth
		}

		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			return fmt.Errorf("failed to name column %d: %w", c, err)
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return fmt.Errorf("failed to size column %s: %w", name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
