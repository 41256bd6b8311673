package table

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperation is returned by operations that have no meaningful
// row-level semantics on a column-major table, such as Sort and Reverse.
var ErrUnsupportedOperation = errors.New("operation not supported on a column-major table")

// ShortRowError reports a data row with fewer fields than the header. Row is
// the 1-based data row number (the header is not counted).
type ShortRowError struct {
	Row      int
	Expected int
	Got      int
}

func (e *ShortRowError) Error() string {
	return fmt.Sprintf("row %d has %d fields, expected %d", e.Row, e.Got, e.Expected)
}
