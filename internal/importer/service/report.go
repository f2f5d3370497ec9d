package service

import (
	"fmt"
	"io"
	"sort"

	excelize "github.com/xuri/excelize/v2"

	"caseimport-service/internal/importer/model"
)

const (
	StatusImported       = "imported"
	StatusClientNotFound = "client_not_found"
	StatusFailed         = "failed"
)

// ReportRow is one line of the downloadable run report.
type ReportRow struct {
	RowNumber  int    `json:"rowNumber"`
	Status     string `json:"status"`
	Title      string `json:"title,omitempty"`
	Identifier string `json:"identifier,omitempty"`
	Client     string `json:"client,omitempty"`
	Error      string `json:"error,omitempty"`
}

// BuildReport flattens a completed result into one row per outcome, in
// spreadsheet order. Pure transformation, no I/O.
func BuildReport(res model.Result) []ReportRow {
	rows := make([]ReportRow, 0, len(res.SuccessfulImports)+len(res.ClientsNotFound)+len(res.Errors))
	for _, s := range res.SuccessfulImports {
		rows = append(rows, ReportRow{
			RowNumber:  s.RowNumber,
			Status:     StatusImported,
			Title:      s.Title,
			Identifier: s.Identifier,
			Client:     s.ClientName,
		})
	}
	for _, c := range res.ClientsNotFound {
		rows = append(rows, ReportRow{
			RowNumber: c.RowNumber,
			Status:    StatusClientNotFound,
			Client:    c.ClientName,
		})
	}
	for _, e := range res.Errors {
		rows = append(rows, ReportRow{
			RowNumber: e.RowNumber,
			Status:    StatusFailed,
			Error:     e.Error,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].RowNumber < rows[j].RowNumber })
	return rows
}

// WriteReportXLSX renders report rows as a single-sheet workbook.
func WriteReportXLSX(w io.Writer, rows []ReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Row", "Status", "Title", "Identifier", "Client", "Error"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for i, r := range rows {
		vals := []any{r.RowNumber, r.Status, r.Title, r.Identifier, r.Client, r.Error}
		for j, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", r.RowNumber, err)
			}
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
