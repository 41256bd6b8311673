package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ValueType identifies the scalar kind of a Value and of a whole column.
type ValueType int

const (
	// NullType is the type of a column whose values are all null.
	NullType ValueType = iota
	// BoolType represents boolean values.
	BoolType
	// IntType represents 64-bit integer values.
	IntType
	// FloatType represents 64-bit floating point values.
	FloatType
	// DateType represents calendar dates without a time of day.
	DateType
	// DateTimeType represents combined date and time values.
	DateTimeType
	// TimeType represents times of day without a date.
	TimeType
	// TextType represents free-form text values.
	TextType
)

// Canonical layouts used when rendering temporal values as text.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
	TimeLayout     = "15:04:05"
)

// String returns the lowercase name of the type, also used in serialized
// table schemas.
func (t ValueType) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case DateType:
		return "date"
	case DateTimeType:
		return "datetime"
	case TimeType:
		return "time"
	case TextType:
		return "text"
	default:
		return fmt.Sprintf("valuetype(%d)", int(t))
	}
}

// ParseValueType converts a type name produced by ValueType.String back to
// the ValueType it names.
func ParseValueType(s string) (ValueType, error) {
	switch s {
	case "null":
		return NullType, nil
	case "bool":
		return BoolType, nil
	case "int":
		return IntType, nil
	case "float":
		return FloatType, nil
	case "date":
		return DateType, nil
	case "datetime":
		return DateTimeType, nil
	case "time":
		return TimeType, nil
	case "text":
		return TextType, nil
	default:
		return NullType, fmt.Errorf("unknown value type %q", s)
	}
}

// Temporal reports whether the type is one of the date/time kinds.
func (t ValueType) Temporal() bool {
	return t == DateType || t == DateTimeType || t == TimeType
}

// Value is a single typed cell. It is a closed tagged union over the
// ValueType kinds; the zero Value is the null sentinel.
type Value struct {
	kind ValueType
	b    bool
	i    int64
	f    float64
	t    time.Time
	s    string
}

// Null is the sentinel for a missing value, distinct from any typed zero.
var Null = Value{kind: NullType}

// NewBool wraps a boolean.
func NewBool(v bool) Value { return Value{kind: BoolType, b: v} }

// NewInt wraps a 64-bit integer.
func NewInt(v int64) Value { return Value{kind: IntType, i: v} }

// NewFloat wraps a 64-bit float.
func NewFloat(v float64) Value { return Value{kind: FloatType, f: v} }

// NewDate wraps a calendar date. Only the date part of v is meaningful.
func NewDate(v time.Time) Value { return Value{kind: DateType, t: v} }

// NewDateTime wraps a combined date and time.
func NewDateTime(v time.Time) Value { return Value{kind: DateTimeType, t: v} }

// NewTime wraps a time of day. Only the clock part of v is meaningful.
func NewTime(v time.Time) Value { return Value{kind: TimeType, t: v} }

// NewText wraps a text value.
func NewText(v string) Value { return Value{kind: TextType, s: v} }

// Type returns the kind of the value. Null values report NullType
// regardless of the type of the column that holds them.
func (v Value) Type() ValueType { return v.kind }

// IsNull reports whether the value is the null sentinel.
func (v Value) IsNull() bool { return v.kind == NullType }

// Bool returns the boolean payload. The second return is false when the
// value is not a boolean.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == BoolType }

// Int returns the integer payload.
func (v Value) Int() (int64, bool) { return v.i, v.kind == IntType }

// Float returns the float payload.
func (v Value) Float() (float64, bool) { return v.f, v.kind == FloatType }

// Time returns the temporal payload of a date, datetime or time value.
func (v Value) Time() (time.Time, bool) { return v.t, v.kind.Temporal() }

// Text returns the text payload.
func (v Value) Text() (string, bool) { return v.s, v.kind == TextType }

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case NullType:
		return true
	case BoolType:
		return v.b == o.b
	case IntType:
		return v.i == o.i
	case FloatType:
		return v.f == o.f
	case DateType, DateTimeType, TimeType:
		return v.t.Equal(o.t)
	default:
		return v.s == o.s
	}
}

// String renders the canonical textual form of the value: ISO-8601 for the
// temporal kinds, strconv forms for numerics and booleans, the raw text for
// text values and the empty string for null.
func (v Value) String() string {
	switch v.kind {
	case NullType:
		return ""
	case BoolType:
		return strconv.FormatBool(v.b)
	case IntType:
		return strconv.FormatInt(v.i, 10)
	case FloatType:
		s := strconv.FormatFloat(v.f, 'g', -1, 64)
		// Integral floats keep a decimal point so a float column does
		// not re-import as integers.
		if !strings.ContainsAny(s, ".eE") && !math.IsInf(v.f, 0) && !math.IsNaN(v.f) {
			s += ".0"
		}
		return s
	case DateType:
		return v.t.Format(DateLayout)
	case DateTimeType:
		return v.t.Format(DateTimeLayout)
	case TimeType:
		return v.t.Format(TimeLayout)
	default:
		return v.s
	}
}
