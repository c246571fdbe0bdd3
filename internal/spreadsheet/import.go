package spreadsheet

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"hotelcore/pkg/domain"
)

// Inserter is the subset of the store the importer needs.
type Inserter interface {
	Insert(ctx context.Context, collection domain.Collection, data domain.Record) (domain.Record, error)
}

// Report summarizes a bulk import. Errors are ordered by spreadsheet row;
// each message names the 1-based row number it refers to (the header is
// row 1, so the first data row is row 2).
type Report struct {
	SuccessCount int      `json:"success_count"`
	Errors       []string `json:"errors,omitempty"`
}

// Import parses an xlsx workbook and inserts its data rows into the named
// collection. Every row is validated (required fields, enum allow-lists,
// numeric parsing) before its insert; a bad row is reported and skipped
// without aborting the batch. A failed insert (persistence) is likewise
// recorded as that row's error and the batch continues.
func Import(ctx context.Context, dst Inserter, collection domain.Collection, data []byte, logger *zap.Logger) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	schema, err := schemaFor(collection)
	if err != nil {
		return Report{}, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Report{}, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := schema.Sheet
	rows, err := f.GetRows(sheet)
	if err != nil {
		// Accept workbooks whose single sheet was renamed.
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Report{}, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
		rows, err = f.GetRows(sheet)
		if err != nil {
			return Report{}, fmt.Errorf("read sheet %s: %w", sheet, err)
		}
	}
	if len(rows) == 0 {
		return Report{}, fmt.Errorf("sheet %s has no header row", sheet)
	}

	batch := uuid.NewString()
	log := logger.With(
		zap.String("batch_id", batch),
		zap.String("collection", collection))

	var report Report
	for i, row := range rows[1:] {
		rowNum := i + 2
		if emptyRow(row) {
			continue
		}
		rec, rowErr := parseRow(schema, row, rowNum)
		if rowErr != nil {
			report.Errors = append(report.Errors, rowErr.Error())
			continue
		}
		if _, err := dst.Insert(ctx, collection, rec); err != nil {
			log.Warn("row insert failed", zap.Int("row", rowNum), zap.Error(err))
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		report.SuccessCount++
	}
	log.Info("bulk import finished",
		zap.Int("success_count", report.SuccessCount),
		zap.Int("error_count", len(report.Errors)))
	return report, nil
}

// parseRow validates one data row against the schema and builds the record
// to insert. The first violation wins; the row is then skipped entirely.
func parseRow(schema sheetSchema, row []string, rowNum int) (domain.Record, *domain.RowError) {
	rec := domain.Record{}
	for j, c := range schema.Columns {
		var cell string
		if j < len(row) {
			cell = strings.TrimSpace(row[j])
		}
		if cell == "" {
			if c.Required {
				return nil, &domain.RowError{Row: rowNum, Field: c.Header, Msg: "required value is missing"}
			}
			continue
		}
		if len(c.Allowed) > 0 && !allowed(c.Allowed, cell) {
			return nil, &domain.RowError{
				Row:   rowNum,
				Field: c.Header,
				Msg:   fmt.Sprintf("invalid value %q (allowed: %s)", cell, strings.Join(c.Allowed, ", ")),
			}
		}
		switch c.Kind {
		case kindNumber:
			n, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, &domain.RowError{Row: rowNum, Field: c.Header, Msg: fmt.Sprintf("%q is not a number", cell)}
			}
			rec[c.Field] = n
		case kindInteger:
			n, err := strconv.Atoi(cell)
			if err != nil {
				return nil, &domain.RowError{Row: rowNum, Field: c.Header, Msg: fmt.Sprintf("%q is not a whole number", cell)}
			}
			rec[c.Field] = n
		case kindBool:
			b, err := parseBool(cell)
			if err != nil {
				return nil, &domain.RowError{Row: rowNum, Field: c.Header, Msg: fmt.Sprintf("%q is not yes/no", cell)}
			}
			rec[c.Field] = b
		default:
			value := cell
			if len(c.Allowed) > 0 {
				value = strings.ToLower(cell)
			}
			rec[c.Field] = value
		}
	}
	return rec, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func allowed(values []string, cell string) bool {
	for _, v := range values {
		if strings.EqualFold(v, cell) {
			return true
		}
	}
	return false
}

func parseBool(cell string) (bool, error) {
	switch strings.ToLower(cell) {
	case "yes", "true", "1", "y":
		return true, nil
	case "no", "false", "0", "n":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", cell)
	}
}
