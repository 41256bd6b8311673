package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/grnwood/csvkit/internal/table"
	"github.com/grnwood/csvkit/internal/types"
)

// jsonColumn is the serialized form of a single column: its declared type
// plus values in order, with JSON null for the null sentinel.
type jsonColumn struct {
	Name   string        `json:"name"`
	Type   string        `json:"type"`
	Values []interface{} `json:"values"`
}

type jsonTable struct {
	Columns []jsonColumn `json:"columns"`
}

// valueToJSON converts a typed value to its JSON-friendly form. Temporal
// kinds become their ISO-8601 strings so the declared column type is enough
// to restore them.
func valueToJSON(v types.Value) interface{} {
	if v.IsNull() {
		return nil
	}
	switch v.Type() {
	case types.BoolType:
		b, _ := v.Bool()
		return b
	case types.IntType:
		n, _ := v.Int()
		return n
	case types.FloatType:
		f, _ := v.Float()
		return f
	default:
		return v.String()
	}
}

// valueFromJSON restores a typed value from its JSON form under the
// column's declared type. Numbers arrive as json.Number (decoding uses
// UseNumber so integers survive).
func valueFromJSON(typ types.ValueType, raw interface{}) (types.Value, error) {
	if raw == nil {
		return types.Null, nil
	}
	switch typ {
	case types.BoolType:
		b, ok := raw.(bool)
		if !ok {
			return types.Null, fmt.Errorf("expected bool, got %T", raw)
		}
		return types.NewBool(b), nil
	case types.IntType:
		num, ok := raw.(json.Number)
		if !ok {
			return types.Null, fmt.Errorf("expected number, got %T", raw)
		}
		n, err := num.Int64()
		if err != nil {
			return types.Null, err
		}
		return types.NewInt(n), nil
	case types.FloatType:
		num, ok := raw.(json.Number)
		if !ok {
			return types.Null, fmt.Errorf("expected number, got %T", raw)
		}
		f, err := num.Float64()
		if err != nil {
			return types.Null, err
		}
		return types.NewFloat(f), nil
	case types.DateType:
		s, ok := raw.(string)
		if !ok {
			return types.Null, fmt.Errorf("expected string, got %T", raw)
		}
		t, err := time.Parse(types.DateLayout, s)
		if err != nil {
			return types.Null, err
		}
		return types.NewDate(t), nil
	case types.DateTimeType:
		s, ok := raw.(string)
		if !ok {
			return types.Null, fmt.Errorf("expected string, got %T", raw)
		}
		t, err := time.Parse(types.DateTimeLayout, s)
		if err != nil {
			return types.Null, err
		}
		return types.NewDateTime(t), nil
	case types.TimeType:
		s, ok := raw.(string)
		if !ok {
			return types.Null, fmt.Errorf("expected string, got %T", raw)
		}
		t, err := time.Parse(types.TimeLayout, s)
		if err != nil {
			return types.Null, err
		}
		return types.NewTime(t), nil
	case types.TextType:
		s, ok := raw.(string)
		if !ok {
			return types.Null, fmt.Errorf("expected string, got %T", raw)
		}
		return types.NewText(s), nil
	default:
		return types.Null, fmt.Errorf("column type %s cannot hold value %v", typ, raw)
	}
}

func columnToJSON(c *table.Column) jsonColumn {
	values := make([]interface{}, c.Len())
	for i := 0; i < c.Len(); i++ {
		values[i] = valueToJSON(c.Value(i))
	}
	return jsonColumn{
		Name:   c.Name(),
		Type:   c.Type().String(),
		Values: values,
	}
}

func columnFromJSON(index int, jc jsonColumn) (*table.Column, error) {
	typ, err := types.ParseValueType(jc.Type)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", jc.Name, err)
	}
	values := make([]types.Value, len(jc.Values))
	for i, raw := range jc.Values {
		v, err := valueFromJSON(typ, raw)
		if err != nil {
			return nil, fmt.Errorf("column %q, row %d: %w", jc.Name, i+1, err)
		}
		values[i] = v
	}
	return table.NewTypedColumn(index, jc.Name, values, typ), nil
}

func writeJSON(t *table.Table, filePath string) error {
	doc := jsonTable{Columns: make([]jsonColumn, t.NumColumns())}
	for i, c := range t.Columns() {
		doc.Columns[i] = columnToJSON(c)
	}

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

func readJSON(filePath string) (*table.Table, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var doc jsonTable
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode table from %s: %w", filePath, err)
	}

	columns := make([]*table.Column, len(doc.Columns))
	for i, jc := range doc.Columns {
		c, err := columnFromJSON(i, jc)
		if err != nil {
			return nil, err
		}
		columns[i] = c
	}
	return table.New(columns...), nil
}
