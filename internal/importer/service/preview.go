package service

import (
	"context"
	"fmt"
	"io"

	"caseimport-service/internal/fileio"
	"caseimport-service/internal/importer/model"
)

// PreviewFile parses the upload and validates its first few rows so the
// user can sanity-check the column mapping before committing. Purely
// informational; nothing is written.
func (imp *Importer) PreviewFile(ctx context.Context, userID string, r io.Reader, filename string) (model.Preview, error) {
	rows, err := fileio.ReadAnyMaps(r, filename, imp.opts.HeaderRow)
	if err != nil {
		return model.Preview{}, fmt.Errorf("read %s: %w", filename, err)
	}
	return imp.Preview(ctx, userID, rows)
}

// Preview runs the Row Validator over at most the first PreviewRows rows.
func (imp *Importer) Preview(ctx context.Context, userID string, rows []map[string]string) (model.Preview, error) {
	firmID, err := imp.store.FirmForUser(ctx, userID)
	if err != nil {
		return model.Preview{}, fmt.Errorf("resolve firm: %w", err)
	}
	if len(rows) == 0 {
		return model.Preview{}, fmt.Errorf("spreadsheet has no data rows")
	}
	clients, err := imp.store.ClientsByFirm(ctx, firmID)
	if err != nil {
		return model.Preview{}, fmt.Errorf("load firm clients: %w", err)
	}
	validator := NewValidator(imp.aliases, BuildClientLookup(clients))

	n := imp.opts.PreviewRows
	if n > len(rows) {
		n = len(rows)
	}
	preview := model.Preview{
		Rows:    rows[:n],
		Results: make([]model.RowValidation, 0, n),
	}
	for i := 0; i < n; i++ {
		rowNumber := imp.opts.HeaderRow + i + 1
		preview.Results = append(preview.Results, validator.Validate(rowNumber, rows[i]))
	}
	return preview, nil
}
