package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grnwood/csvkit/internal/table"
	"github.com/grnwood/csvkit/internal/types"
)

func intColumn(name string, values ...int64) *table.Column {
	typed := make([]types.Value, len(values))
	for i, v := range values {
		typed[i] = types.NewInt(v)
	}
	return table.NewTypedColumn(0, name, typed, types.IntType)
}

func TestNewColumnInfersType(t *testing.T) {
	c := table.NewColumn(2, "count", []string{"1", "2", ""}, nil)

	assert.Equal(t, 2, c.Index())
	assert.Equal(t, "count", c.Name())
	assert.Equal(t, types.IntType, c.Type())
	assert.Equal(t, 3, c.Len())
	assert.True(t, c.Value(2).IsNull())
}

func TestNewTypedColumnSkipsInference(t *testing.T) {
	// "yes"/"no" would infer as booleans; the typed constructor trusts
	// the caller's type instead.
	values := []types.Value{types.NewText("yes"), types.NewText("no")}
	c := table.NewTypedColumn(0, "answers", values, types.TextType)

	assert.Equal(t, types.TextType, c.Type())
	s, ok := c.Value(0).Text()
	assert.True(t, ok)
	assert.Equal(t, "yes", s)
}

func TestColumnString(t *testing.T) {
	c := table.NewColumn(3, "price", []string{"1.5"}, nil)
	assert.Equal(t, "  3: price (float)", c.String())
}

func TestTableAppend(t *testing.T) {
	tbl := table.New()
	tbl.Append(intColumn("a", 1))
	tbl.Append(intColumn("b", 2))

	assert.Equal(t, 2, tbl.NumColumns())
	assert.Equal(t, 0, tbl.Column(0).Index())
	assert.Equal(t, 1, tbl.Column(1).Index())
}

func TestTableInsertReindexesAll(t *testing.T) {
	tbl := table.New(intColumn("a", 1), intColumn("b", 2), intColumn("c", 3))

	err := tbl.Insert(0, intColumn("z", 0))
	require.NoError(t, err)

	require.Equal(t, 4, tbl.NumColumns())
	wantNames := []string{"z", "a", "b", "c"}
	for i, name := range wantNames {
		assert.Equal(t, i, tbl.Column(i).Index())
		assert.Equal(t, name, tbl.Column(i).Name())
	}
}

func TestTableInsertOutOfRange(t *testing.T) {
	tbl := table.New(intColumn("a", 1))
	assert.Error(t, tbl.Insert(5, intColumn("b", 2)))
	assert.Error(t, tbl.Insert(-1, intColumn("b", 2)))
}

func TestTableExtend(t *testing.T) {
	tbl := table.New(intColumn("a", 1))
	tbl.Extend(intColumn("b", 2), intColumn("c", 3))

	assert.Equal(t, 3, tbl.NumColumns())
	for i := 0; i < 3; i++ {
		assert.Equal(t, i, tbl.Column(i).Index())
	}
}

func TestTableRemove(t *testing.T) {
	a := intColumn("a", 1)
	b := intColumn("b", 2)
	c := intColumn("c", 3)
	tbl := table.New(a, b, c)

	require.NoError(t, tbl.Remove(b))
	assert.Equal(t, 2, tbl.NumColumns())
	assert.Equal(t, "a", tbl.Column(0).Name())
	assert.Equal(t, "c", tbl.Column(1).Name())
	assert.Equal(t, 1, tbl.Column(1).Index())

	// Removing a column that is not there fails.
	assert.Error(t, tbl.Remove(b))
}

func TestTableSortAndReverseUnsupported(t *testing.T) {
	tbl := table.New(intColumn("a", 1))

	assert.ErrorIs(t, tbl.Sort(), table.ErrUnsupportedOperation)
	assert.ErrorIs(t, tbl.Reverse(), table.ErrUnsupportedOperation)
}

func TestTableNumRows(t *testing.T) {
	assert.Equal(t, 0, table.New().NumRows())
	assert.Equal(t, 3, table.New(intColumn("a", 1, 2, 3)).NumRows())
}

func TestTableString(t *testing.T) {
	tbl := table.New(intColumn("a", 1), intColumn("b", 2))
	assert.Equal(t, "  0: a (int)\n  1: b (int)", tbl.String())
}
