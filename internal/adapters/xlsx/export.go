// Package xlsx renders the run list as an Excel workbook for the shop floor.
package xlsx

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/bindery/internal/models"
)

// SheetName is the worksheet the run list is written to.
const SheetName = "Run List"

var headers = []string{
	"Category", "Job #", "Status", "Customer", "Title", "Quantity",
	"Customer PO", "Customer Job #", "Due In", "Due Out", "Operations", "Description",
}

var colWidths = []float64{14, 12, 12, 24, 30, 10, 14, 16, 12, 12, 24, 40}

// ExportRunList writes items, in the order given, to a new workbook and
// returns it with a suggested file name. The caller owns (and must Close)
// the returned file.
func ExportRunList(items []models.RunListItem, now time.Time) (*excelize.File, string, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SheetName, cell, h)
		f.SetCellStyle(SheetName, cell, cell, headerStyle)
	}

	for i, item := range items {
		row := i + 2
		values := []any{
			item.Category,
			item.JobNumber,
			string(item.Status),
			item.CustomerName,
			item.JobTitle,
			item.Quantity,
			item.CustomerPO,
			item.CustomerJobNumber,
			item.DueIn,
			item.DueOut,
			strings.Join(item.Operations, ", "),
			item.Description,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(SheetName, cell, v)
		}
	}

	summaryStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	summaryRow := len(items) + 2
	f.SetCellValue(SheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(SheetName, fmt.Sprintf("B%d", summaryRow), fmt.Sprintf("%d jobs", len(items)))
	f.SetCellStyle(SheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("L%d", summaryRow), summaryStyle)

	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(SheetName, col, col, w)
	}

	filename := fmt.Sprintf("run-list_%s.xlsx", now.Format("2006-01-02"))
	return f, filename, nil
}
