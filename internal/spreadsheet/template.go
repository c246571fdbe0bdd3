package spreadsheet

import (
	"context"
	"fmt"

	"hotelcore/internal/store"
	"hotelcore/pkg/domain"
)

// Template generates the import template workbook for a collection: the
// styled header row plus a single example row showing the expected values.
func Template(collection domain.Collection) ([]byte, error) {
	schema, err := schemaFor(collection)
	if err != nil {
		return nil, err
	}
	example := make([]any, len(schema.Columns))
	for i, c := range schema.Columns {
		example[i] = c.Example
	}
	return buildWorkbook(schema, [][]any{example})
}

// Reader is the subset of the store the exporter needs.
type Reader interface {
	Select(ctx context.Context, collection domain.Collection, filter store.Filter) ([]domain.Record, error)
}

// Export renders the current records of a collection as a workbook, one row
// per record in store order, columns per the collection's schema.
func Export(ctx context.Context, src Reader, collection domain.Collection) ([]byte, error) {
	schema, err := schemaFor(collection)
	if err != nil {
		return nil, err
	}
	records, err := src.Select(ctx, collection, nil)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", collection, err)
	}
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		row := make([]any, len(schema.Columns))
		for i, c := range schema.Columns {
			row[i] = cellValue(rec[c.Field], c.Kind)
		}
		rows = append(rows, row)
	}
	return buildWorkbook(schema, rows)
}

func cellValue(v any, k kind) any {
	if v == nil {
		return nil
	}
	if k == kindBool {
		if b, ok := v.(bool); ok {
			if b {
				return "yes"
			}
			return "no"
		}
	}
	return v
}
