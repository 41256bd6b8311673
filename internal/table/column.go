package table

import (
	"fmt"

	"github.com/grnwood/csvkit/internal/infer"
	"github.com/grnwood/csvkit/internal/types"
)

// Column is a named, homogeneously-typed ordered sequence of values. Its
// type and values are fixed at construction; only its index moves, and only
// through structural mutation of the owning Table.
type Column struct {
	index  int
	name   string
	typ    types.ValueType
	values []types.Value
}

// NewColumn builds a column from raw string tokens by running the type
// inference cascade over them.
func NewColumn(index int, name string, raw []string, opts *infer.Options) *Column {
	typ, values := infer.Normalize(raw, opts)
	return &Column{
		index:  index,
		name:   name,
		typ:    typ,
		values: values,
	}
}

// NewTypedColumn builds a column from values that are already normalized to
// typ, skipping inference. Used when re-materializing a column whose type is
// known, such as loading a serialized table.
func NewTypedColumn(index int, name string, values []types.Value, typ types.ValueType) *Column {
	owned := make([]types.Value, len(values))
	copy(owned, values)
	return &Column{
		index:  index,
		name:   name,
		typ:    typ,
		values: owned,
	}
}

// Index returns the column's zero-based position within its table.
func (c *Column) Index() int { return c.index }

// Name returns the column's header label.
func (c *Column) Name() string { return c.name }

// Type returns the inferred (or asserted) type of the column.
func (c *Column) Type() types.ValueType { return c.typ }

// Len returns the number of values in the column.
func (c *Column) Len() int { return len(c.values) }

// Value returns the value at position i.
func (c *Column) Value(i int) types.Value { return c.values[i] }

// Values returns a copy of the column's values in order.
func (c *Column) Values() []types.Value {
	out := make([]types.Value, len(c.values))
	copy(out, c.values)
	return out
}

// String renders a human-readable description of the column. It is meant
// for diagnostics and is not parsed by anything.
func (c *Column) String() string {
	return fmt.Sprintf("%3d: %s (%s)", c.index, c.name, c.typ)
}
