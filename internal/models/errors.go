package models

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed percent, currency, number or date string.
// Row and Column are set when the value came from a table (Row is the 1-based
// line number in the file, the header being row 1).
type ParseError struct {
	Kind   string
	Input  string
	Row    int
	Column string
	Reason string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Row > 0 {
		fmt.Fprintf(&b, "row %d: ", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, "column %q: ", e.Column)
	}
	fmt.Fprintf(&b, "invalid %s %q", e.Kind, e.Input)
	if e.Reason != "" {
		b.WriteString(": " + e.Reason)
	}
	return b.String()
}

// AtCell returns a copy of the error located at a row/column of a table.
func (e *ParseError) AtCell(row int, column string) *ParseError {
	c := *e
	c.Row = row
	c.Column = column
	return &c
}

// MissingKeyError reports a join key present on only one side of a merge.
type MissingKeyError struct {
	Key  string
	Side string // table that holds the key
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("symbol %q only present in %s", e.Key, e.Side)
}

// InvalidFieldError reports an aggregation or ranking on an unknown or
// non-numeric field.
type InvalidFieldError struct {
	Field   string
	Allowed []string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q (allowed: %s)", e.Field, strings.Join(e.Allowed, ", "))
}

// FileFormatError reports a header or column mismatch in a source file.
type FileFormatError struct {
	Source string
	Row    int
	Reason string
}

func (e *FileFormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: row %d: %s", e.Source, e.Row, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Reason)
}
