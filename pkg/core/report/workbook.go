package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook serializes the report as an xlsx workbook, one sheet per
// table in workbook order, and stamps the report ID into the document
// properties.
func WriteWorkbook(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	tables := r.Tables()

	// excelize always starts with "Sheet1"; rename it for the first table
	// and create the rest.
	if err := f.SetSheetName("Sheet1", tables[0].Name); err != nil {
		return fmt.Errorf("rename first sheet: %w", err)
	}
	for _, t := range tables[1:] {
		if _, err := f.NewSheet(t.Name); err != nil {
			return fmt.Errorf("create sheet %s: %w", t.Name, err)
		}
	}

	for _, t := range tables {
		if err := writeSheet(f, t); err != nil {
			return err
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       "Feasibility What-If Report",
		Identifier:  r.ID.String(),
		Description: "IRR / NPV / ROIC feasibility simulation output",
	}); err != nil {
		return fmt.Errorf("set workbook properties: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, t Table) error {
	write := func(rowIdx int, cells []string) error {
		for colIdx, cell := range cells {
			ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(t.Name, ref, cell); err != nil {
				return fmt.Errorf("sheet %s cell %s: %w", t.Name, ref, err)
			}
		}
		return nil
	}

	if err := write(1, t.Header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := write(i+2, row); err != nil {
			return err
		}
	}
	return nil
}
