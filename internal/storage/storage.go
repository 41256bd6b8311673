// Package storage persists typed tables in on-disk formats: CSV, JSON,
// Parquet and XLSX. CSV re-infers column types on load; the typed formats
// carry the schema and restore columns without re-inference.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grnwood/csvkit/internal/table"
	"github.com/grnwood/csvkit/internal/types"
)

// Format identifies an on-disk table format.
type Format string

const (
	CSVFormat     Format = "csv"
	JSONFormat    Format = "json"
	ParquetFormat Format = "parquet"
	XLSXFormat    Format = "xlsx"
)

// Config selects the format and location for reading or writing a table.
type Config struct {
	Format   Format
	FilePath string
	// Table carries CSV and inference options for the formats that need
	// them (CSV delimiter and terminator, XLSX inference). Nil means
	// defaults.
	Table *table.Options
}

// FormatForPath guesses the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSVFormat, nil
	case ".json":
		return JSONFormat, nil
	case ".parquet":
		return ParquetFormat, nil
	case ".xlsx":
		return XLSXFormat, nil
	default:
		return "", fmt.Errorf("cannot determine table format from path %q", path)
	}
}

// WriteTable writes a table to the configured file.
func WriteTable(t *table.Table, config Config) error {
	types.GlobalLogger.Debug("writing %d columns x %d rows as %s to %s",
		t.NumColumns(), t.NumRows(), config.Format, config.FilePath)

	switch config.Format {
	case CSVFormat:
		f, err := os.Create(config.FilePath)
		if err != nil {
			return err
		}
		defer f.Close()
		return t.WriteCSV(f, config.Table)
	case JSONFormat:
		return writeJSON(t, config.FilePath)
	case ParquetFormat:
		return writeParquet(t, config.FilePath)
	case XLSXFormat:
		return writeXLSX(t, config.FilePath)
	default:
		return fmt.Errorf("unsupported table format: %s", config.Format)
	}
}

// ReadTable reads a table from the configured file.
func ReadTable(config Config) (*table.Table, error) {
	switch config.Format {
	case CSVFormat:
		f, err := os.Open(config.FilePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return table.FromCSV(f, config.Table)
	case JSONFormat:
		return readJSON(config.FilePath)
	case ParquetFormat:
		return readParquet(config.FilePath)
	case XLSXFormat:
		return readXLSX(config.FilePath, config.Table)
	default:
		return nil, fmt.Errorf("unsupported table format: %s", config.Format)
	}
}
