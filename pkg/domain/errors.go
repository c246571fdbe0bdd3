package domain

import "fmt"

// PersistenceError reports a failed read or write of the persisted slot.
// After a mutating call fails with it, the in-memory state has already
// advanced past the durable state, so callers must not assume durability.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ParseError reports a malformed document on restore. The restore aborts
// before any in-memory or persisted state changes.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RowError reports a single invalid spreadsheet row during bulk import.
// Row is the 1-based spreadsheet row number including the header row, so
// the first data row is row 2. One bad row never aborts the batch.
type RowError struct {
	Row   int
	Field string
	Msg   string
}

func (e *RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Msg)
	}
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Msg)
}
