package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"fnolrouter/internal/domain"
)

const (
	claimsSheet  = "Claims"
	summarySheet = "Summary"
)

// WriteXLSX writes a workbook with a Claims sheet (one row per report) and a
// Summary sheet counting reports per route.
func WriteXLSX(out io.Writer, reports []*domain.ClaimReport) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), claimsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	header := Columns()
	if err := writeRow(f, claimsSheet, 1, header); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(claimsSheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	for i, r := range reports {
		if err := writeRow(f, claimsSheet, i+2, reportToRow(r)); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	counts := make(map[domain.Route]int, len(domain.Routes))
	for _, r := range reports {
		counts[r.Result.RecommendedRoute]++
	}
	if err := f.SetSheetRow(summarySheet, "A1", &[]interface{}{"Route", "Claims"}); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	if err := f.SetCellStyle(summarySheet, "A1", "B1", bold); err != nil {
		return fmt.Errorf("style summary header: %w", err)
	}
	for i, route := range domain.Routes {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(summarySheet, cell, &[]interface{}{string(route), counts[route]}); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}
