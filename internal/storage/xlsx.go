package storage

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/grnwood/csvkit/internal/table"
	"github.com/grnwood/csvkit/internal/types"
)

// xlsxCellValue converts a typed value to what gets written into a cell.
// Temporal kinds and floats are written as their canonical strings so they
// survive the spreadsheet's own formatting on re-read (a native float cell
// renders 2.0 as "2", which would re-import as an integer); nulls return
// nil and leave the cell empty.
func xlsxCellValue(v types.Value) interface{} {
	if v.IsNull() {
		return nil
	}
	switch v.Type() {
	case types.BoolType:
		b, _ := v.Bool()
		return b
	case types.IntType:
		n, _ := v.Int()
		return n
	default:
		return v.String()
	}
}

func writeXLSX(t *table.Table, filePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return fmt.Errorf("workbook has no sheets")
	}

	for i, c := range t.Columns() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, c.Name()); err != nil {
			return err
		}
	}

	for row := 0; row < t.NumRows(); row++ {
		for i, c := range t.Columns() {
			v := xlsxCellValue(c.Value(row))
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(filePath)
}

// readXLSX imports the first sheet through the same transposition and
// inference path as CSV import; cell values come back as raw strings.
func readXLSX(filePath string, opts *table.Options) (*table.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row: sheet %q is empty", sheet)
	}

	return table.FromRows(rows[0], rows[1:], opts)
}
