package infer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grnwood/csvkit/internal/infer"
	"github.com/grnwood/csvkit/internal/types"
)

func TestNormalizeCascade(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		typ  types.ValueType
	}{
		{"integers", []string{"1", "42", "-7"}, types.IntType},
		{"integers with group separators", []string{"1,000", "2,500,000"}, types.IntType},
		{"integers with nulls", []string{"1", "", "3", "n/a"}, types.IntType},
		{"floats", []string{"1.5", "2.25"}, types.FloatType},
		{"scientific notation", []string{"1e3", "2.5e-2"}, types.FloatType},
		{"mixed int and float", []string{"1", "2.5"}, types.FloatType},
		{"booleans", []string{"true", "False", "YES", "n"}, types.BoolType},
		{"dates", []string{"2024-01-15", "2024-12-31"}, types.DateType},
		{"regional dates", []string{"01/15/2024", "12/31/2024"}, types.DateType},
		{"datetimes", []string{"2024-01-15T10:30:00", "2024-12-31T23:59:59"}, types.DateTimeType},
		{"space-separated datetimes", []string{"2024-01-15 10:30:00"}, types.DateTimeType},
		{"times", []string{"10:30:00", "23:59:59"}, types.TimeType},
		{"mixed int and text", []string{"42", "abc"}, types.TextType},
		{"mixed date formats", []string{"2024-01-15", "01/15/2024"}, types.TextType},
		{"all nulls", []string{"", "n/a", "NULL", "."}, types.NullType},
		{"empty sequence", []string{}, types.NullType},
		{"text", []string{"alpha", "beta"}, types.TextType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, values := infer.Normalize(tt.raw, nil)
			assert.Equal(t, tt.typ, typ)
			assert.Len(t, values, len(tt.raw))
		})
	}
}

func TestNormalizeIntegerValues(t *testing.T) {
	typ, values := infer.Normalize([]string{"1", "", "1,000"}, nil)
	require.Equal(t, types.IntType, typ)

	n, ok := values[0].Int()
	assert.True(t, ok)
	assert.Equal(t, int64(1), n)

	assert.True(t, values[1].IsNull())

	n, ok = values[2].Int()
	assert.True(t, ok)
	assert.Equal(t, int64(1000), n)
}

func TestNormalizeBooleanValues(t *testing.T) {
	typ, values := infer.Normalize([]string{"yes", "NO", "t", "f"}, nil)
	require.Equal(t, types.BoolType, typ)

	want := []bool{true, false, true, false}
	for i, w := range want {
		b, ok := values[i].Bool()
		assert.True(t, ok)
		assert.Equal(t, w, b)
	}
}

func TestNormalizeDateValues(t *testing.T) {
	typ, values := infer.Normalize([]string{"2024-01-15", ""}, nil)
	require.Equal(t, types.DateType, typ)

	d, ok := values[0].Time()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), d)
	assert.True(t, values[1].IsNull())
}

func TestNormalizeOneLayoutPerColumn(t *testing.T) {
	// Both tokens parse under "01/02/2006", so day-first "02/01/2006" is
	// never reached even though the second token looks day-first.
	typ, values := infer.Normalize([]string{"01/15/2024", "03/04/2024"}, nil)
	require.Equal(t, types.DateType, typ)

	d, ok := values[1].Time()
	assert.True(t, ok)
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 4, d.Day())
}

func TestNormalizeExactIntegersStayIntegers(t *testing.T) {
	typ, _ := infer.Normalize([]string{"1", "2", "3"}, nil)
	assert.Equal(t, types.IntType, typ)

	// A decimal point pushes the whole column to float.
	typ, _ = infer.Normalize([]string{"1", "2.0", "3"}, nil)
	assert.Equal(t, types.FloatType, typ)
}

func TestNormalizeTextPreservesTokens(t *testing.T) {
	typ, values := infer.Normalize([]string{"42", "abc", ""}, nil)
	require.Equal(t, types.TextType, typ)

	s, ok := values[0].Text()
	assert.True(t, ok)
	assert.Equal(t, "42", s)

	s, ok = values[1].Text()
	assert.True(t, ok)
	assert.Equal(t, "abc", s)

	assert.True(t, values[2].IsNull())
}

func TestNormalizeCustomNullTokens(t *testing.T) {
	opts := &infer.Options{NullTokens: []string{"", "-", "missing"}}

	typ, values := infer.Normalize([]string{"1", "-", "MISSING"}, opts)
	require.Equal(t, types.IntType, typ)
	assert.True(t, values[1].IsNull())
	assert.True(t, values[2].IsNull())

	// The default tokens are replaced, so "n/a" is plain text now.
	typ, _ = infer.Normalize([]string{"1", "n/a"}, opts)
	assert.Equal(t, types.TextType, typ)
}

func TestNormalizeCustomBooleanTokens(t *testing.T) {
	opts := &infer.Options{
		TrueTokens:  []string{"1", "on"},
		FalseTokens: []string{"0", "off"},
	}

	typ, values := infer.Normalize([]string{"1", "0", "on", "OFF"}, opts)
	require.Equal(t, types.BoolType, typ)

	b, ok := values[0].Bool()
	assert.True(t, ok)
	assert.True(t, b)
}

func TestNormalizeDefaultBooleansExcludeDigits(t *testing.T) {
	// "1" and "0" are not boolean tokens by default, so a 0/1 column is
	// an integer column.
	typ, _ := infer.Normalize([]string{"1", "0", "1"}, nil)
	assert.Equal(t, types.IntType, typ)
}

func TestNormalizeZonedDatetimesStayText(t *testing.T) {
	// The canonical datetime form carries no zone offset, so
	// offset-bearing tokens are kept as text rather than parsed into an
	// instant that would shift on round trip.
	typ, values := infer.Normalize([]string{"2024-01-15T10:30:00+02:00"}, nil)
	require.Equal(t, types.TextType, typ)

	s, ok := values[0].Text()
	assert.True(t, ok)
	assert.Equal(t, "2024-01-15T10:30:00+02:00", s)

	// Zoned parsing stays available through configuration.
	opts := &infer.Options{DateTimeLayouts: []string{time.RFC3339}}
	typ, _ = infer.Normalize([]string{"2024-01-15T10:30:00+02:00"}, opts)
	assert.Equal(t, types.DateTimeType, typ)
}

func TestNormalizeCustomLayouts(t *testing.T) {
	opts := &infer.Options{DateLayouts: []string{"02.01.2006"}}

	typ, values := infer.Normalize([]string{"15.01.2024"}, opts)
	require.Equal(t, types.DateType, typ)

	d, ok := values[0].Time()
	assert.True(t, ok)
	assert.Equal(t, 15, d.Day())
}
