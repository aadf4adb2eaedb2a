package pwl_test

import (
	"testing"

	"github.com/katalvlaran/pwl/core"
	"github.com/katalvlaran/pwl/pwl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestSelectIterations keeps block prefixes.
func TestSelectIterations(t *testing.T) {
	tr, err := pwl.New(pwl.WithOriginalFeatures(true))
	require.NoError(t, err)
	X, cols, err := tr.Transform([]*core.Graph{path(3), ring(4)}, 2)
	require.NoError(t, err)

	for k := range cols {
		sel, err := pwl.SelectIterations(X, cols, k)
		require.NoError(t, err)

		want := 0
		for _, w := range cols[:k+1] {
			want += w
		}
		r, c := sel.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, want, c)
		assert.Equal(t, X.At(1, c-1), sel.At(1, c-1))
	}

	_, err = pwl.SelectIterations(X, cols, len(cols))
	assert.ErrorIs(t, err, pwl.ErrOutOfRange)
	_, err = pwl.SelectIterations(X, cols, -1)
	assert.ErrorIs(t, err, pwl.ErrOutOfRange)
	_, err = pwl.SelectIterations(mat.NewDense(1, 1, nil), cols, 0)
	assert.ErrorIs(t, err, pwl.ErrColumnMismatch)
}
