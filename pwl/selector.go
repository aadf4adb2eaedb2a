package pwl

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SelectIterations keeps the columns of iteration blocks 0..k of X, where
// columns is the ColumnsPerIteration slice returned with X.
func SelectIterations(X *mat.Dense, columns []int, k int) (*mat.Dense, error) {
	if k < 0 || k >= len(columns) {
		return nil, fmt.Errorf("k=%d with %d blocks: %w", k, len(columns), ErrOutOfRange)
	}
	rows, cols := X.Dims()
	total, keep := 0, 0
	for i, w := range columns {
		total += w
		if i <= k {
			keep += w
		}
	}
	if total != cols {
		return nil, fmt.Errorf("blocks sum to %d, matrix has %d columns: %w", total, cols, ErrColumnMismatch)
	}

	return mat.DenseCopyOf(X.Slice(0, rows, 0, keep)), nil
}
