package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/grnwood/csvkit/internal/table"
	"github.com/grnwood/csvkit/internal/types"
)

// parquetColumn is one Parquet record per table column. Values are carried
// as a JSON array so a single static schema covers every column type.
type parquetColumn struct {
	Index      int32  `parquet:"name=index, type=INT32"`
	Name       string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Type       string `parquet:"name=type, type=BYTE_ARRAY, convertedtype=UTF8"`
	ValuesJSON string `parquet:"name=values_json, type=BYTE_ARRAY, convertedtype=UTF8"`
}

func writeParquet(t *table.Table, filePath string) error {
	fw, err := local.NewLocalFileWriter(filePath)
	if err != nil {
		return err
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(parquetColumn), 4)
	if err != nil {
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, c := range t.Columns() {
		values := make([]interface{}, c.Len())
		for i := 0; i < c.Len(); i++ {
			values[i] = valueToJSON(c.Value(i))
		}
		data, err := json.Marshal(values)
		if err != nil {
			return err
		}

		record := &parquetColumn{
			Index:      int32(c.Index()),
			Name:       c.Name(),
			Type:       c.Type().String(),
			ValuesJSON: string(data),
		}
		if err := pw.Write(record); err != nil {
			return err
		}
	}

	return pw.WriteStop()
}

func readParquet(filePath string) (*table.Table, error) {
	fr, err := local.NewLocalFileReader(filePath)
	if err != nil {
		return nil, err
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(parquetColumn), 4)
	if err != nil {
		return nil, err
	}
	defer pr.ReadStop()

	numColumns := int(pr.GetNumRows())
	records := make([]parquetColumn, numColumns)
	if err := pr.Read(&records); err != nil {
		return nil, err
	}

	// Column order is the stored index, not record order.
	sort.Slice(records, func(i, j int) bool { return records[i].Index < records[j].Index })

	columns := make([]*table.Column, len(records))
	for i, record := range records {
		typ, err := types.ParseValueType(record.Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", record.Name, err)
		}

		var raw []interface{}
		decoder := json.NewDecoder(strings.NewReader(record.ValuesJSON))
		decoder.UseNumber()
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("column %q: failed to decode values: %w", record.Name, err)
		}

		values := make([]types.Value, len(raw))
		for j, r := range raw {
			v, err := valueFromJSON(typ, r)
			if err != nil {
				return nil, fmt.Errorf("column %q, row %d: %w", record.Name, j+1, err)
			}
			values[j] = v
		}
		columns[i] = table.NewTypedColumn(i, record.Name, values, typ)
	}
	return table.New(columns...), nil
}
