package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grnwood/csvkit/internal/infer"
	"github.com/grnwood/csvkit/internal/storage"
	"github.com/grnwood/csvkit/internal/table"
	"github.com/grnwood/csvkit/internal/types"
)

func main() {
	inPath := flag.String("in", "", "input file (.csv, .json, .parquet, .xlsx); empty reads CSV from stdin")
	outPath := flag.String("out", "", "optional output file; format is taken from the extension")
	delimiter := flag.String("delimiter", ",", "CSV field delimiter")
	crlf := flag.Bool("crlf", false, "use \\r\\n line terminators when writing CSV")
	strict := flag.Bool("strict", false, "reject rows shorter than the header instead of padding with nulls")
	nullTokens := flag.String("null-tokens", "", "comma-separated tokens treated as null (overrides the defaults)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		types.GlobalLogger.SetLevel(types.LogLevelDebug)
	}

	comma, err := parseDelimiter(*delimiter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := &table.Options{
		Comma:   comma,
		UseCRLF: *crlf,
	}
	if *strict {
		opts.ShortRows = table.RejectShortRows
	}
	if *nullTokens != "" {
		opts.Infer = &infer.Options{NullTokens: splitTokens(*nullTokens)}
	}

	t, err := readInput(*inPath, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(t)
	fmt.Printf("%d columns, %d rows\n", t.NumColumns(), t.NumRows())

	if *outPath != "" {
		format, err := storage.FormatForPath(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config := storage.Config{Format: format, FilePath: *outPath, Table: opts}
		if err := storage.WriteTable(t, config); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *outPath, err)
			os.Exit(1)
		}
		types.GlobalLogger.Info("wrote %s", *outPath)
	}
}

func readInput(path string, opts *table.Options) (*table.Table, error) {
	if path == "" {
		return table.FromCSV(os.Stdin, opts)
	}
	format, err := storage.FormatForPath(path)
	if err != nil {
		return nil, err
	}
	return storage.ReadTable(storage.Config{Format: format, FilePath: path, Table: opts})
}

// parseDelimiter validates a delimiter flag value, counting runes rather
// than bytes so multi-byte characters work.
func parseDelimiter(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return runes[0], nil
}

func splitTokens(s string) []string {
	// The empty string is always a null token.
	return append(strings.Split(s, ","), "")
}
