// SPDX-License-Identifier: MIT

package lazy

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvmat/scalar"
	"github.com/katalvlaran/lvmat/shape"
)

// Formatting literals.
const (
	_fmtSep     = " "
	_fmtRowEnd  = "\n"
	_fmtElement = "%v"
)

// Fprint writes e as rows of space-separated values, one row per line, each
// line terminated by "\n". Elements are evaluated on demand, so printing a
// Product node costs O(r*k*c). A 0×N or N×0 expression prints nothing.
//
// Errors:
//   - shape.ErrNilMatrix; any error returned by w.
func Fprint[T scalar.Number](w io.Writer, e Expr[T]) error {
	if err := shape.ValidateNotNil(e); err != nil {
		return opErrorf(opFprint, err)
	}
	bw := bufio.NewWriter(w)
	r, c := e.Rows(), e.Cols()
	if c == 0 {
		return nil
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				_, _ = bw.WriteString(_fmtSep)
			}
			_, _ = fmt.Fprintf(bw, _fmtElement, e.At(i, j))
		}
		_, _ = bw.WriteString(_fmtRowEnd)
	}
	if err := bw.Flush(); err != nil { // bufio keeps the first write error
		return opErrorf(opFprint, err)
	}

	return nil
}

// Print writes m to w in the Fprint format.
func (m *Matrix[T]) Print(w io.Writer) error { return Fprint[T](w, m) }
