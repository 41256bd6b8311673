package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/grnwood/csvkit/internal/infer"
)

// ShortRowPolicy selects how FromCSV treats a data row with fewer fields
// than the header.
type ShortRowPolicy int

const (
	// PadShortRows fills the missing trailing fields with null tokens.
	PadShortRows ShortRowPolicy = iota
	// RejectShortRows fails the import with a ShortRowError.
	RejectShortRows
)

// Options configures CSV import and export. The zero value means comma
// delimiter, "\n" line terminator, pad-short-rows policy and default
// inference options.
type Options struct {
	// Comma is the field delimiter. 0 means ','.
	Comma rune
	// UseCRLF switches the export line terminator from "\n" to "\r\n".
	UseCRLF bool
	// ShortRows selects the policy for rows shorter than the header.
	ShortRows ShortRowPolicy
	// Infer is passed through to the type inference engine.
	Infer *infer.Options
}

func (o *Options) comma() rune {
	if o == nil || o.Comma == 0 {
		return ','
	}
	return o.Comma
}

// FromCSV reads a header row and all data rows from r, transposes the rows
// into per-column raw value lists and runs type inference on each to build
// a table. Extra trailing fields on a row are silently discarded; short
// rows follow Options.ShortRows.
func FromCSV(r io.Reader, opts *Options) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.comma()
	reader.FieldsPerRecord = -1 // ragged rows are handled here, not by the reader

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row: input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read data rows: %w", err)
	}

	return FromRows(header, rows, opts)
}

// FromRows builds a table from an already-tokenized header and data rows,
// applying the same transposition, ragged-row policy and type inference as
// FromCSV. Cell tokens are whitespace-trimmed before inference.
func FromRows(header []string, rows [][]string, opts *Options) (*Table, error) {
	var shortRows ShortRowPolicy
	var inferOpts *infer.Options
	if opts != nil {
		shortRows = opts.ShortRows
		inferOpts = opts.Infer
	}

	names := make([]string, len(header))
	for i, name := range header {
		names[i] = strings.TrimSpace(name)
	}

	buffers := make([][]string, len(names))
	for i := range buffers {
		buffers[i] = make([]string, 0, len(rows))
	}

	// Padding must be null under the configured token set, not just the
	// default one.
	padToken := inferOpts.NullToken()

	for rowNum, row := range rows {
		if len(row) < len(names) && shortRows == RejectShortRows {
			return nil, &ShortRowError{Row: rowNum + 1, Expected: len(names), Got: len(row)}
		}
		for i := range names {
			if i < len(row) {
				buffers[i] = append(buffers[i], strings.TrimSpace(row[i]))
			} else {
				buffers[i] = append(buffers[i], padToken)
			}
		}
		// Fields beyond the header width are dropped.
	}

	columns := make([]*Column, len(names))
	for i, name := range names {
		columns[i] = NewColumn(i, name, buffers[i], inferOpts)
	}
	return New(columns...), nil
}

// WriteCSV serializes the table to w: one header row of column names
// followed by the transposed data rows. Temporal values are rendered in
// their ISO-8601 form and nulls as empty fields.
func (t *Table) WriteCSV(w io.Writer, opts *Options) error {
	writer := csv.NewWriter(w)
	writer.Comma = opts.comma()
	if opts != nil {
		writer.UseCRLF = opts.UseCRLF
	}

	header := make([]string, len(t.columns))
	for i, c := range t.columns {
		header[i] = c.Name()
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	record := make([]string, len(t.columns))
	for row := 0; row < t.NumRows(); row++ {
		for i, c := range t.columns {
			record[i] = c.Value(row).String()
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
