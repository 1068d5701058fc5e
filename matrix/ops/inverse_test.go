package ops_test

import (
	"testing"

	"github.com/geostoch/fieldsim/matrix"
	"github.com/geostoch/fieldsim/matrix/ops"
	"github.com/stretchr/testify/require"
)

func TestInverse_RoundTrip(t *testing.T) {
	A := buildDense(t, [][]float64{
		{4, 7},
		{2, 6},
	})
	inv, err := ops.Inverse(A)
	require.NoError(t, err)

	n := A.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				av, _ := A.At(i, k)
				iv, _ := inv.At(k, j)
				sum += av * iv
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, sum, 1e-9)
		}
	}
}

func TestInverse_NonSquareRejected(t *testing.T) {
	A, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = ops.Inverse(A)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverse_SingularRejected(t *testing.T) {
	A := buildDense(t, [][]float64{
		{1, 2},
		{2, 4},
	})
	_, err := ops.Inverse(A)
	require.ErrorIs(t, err, ops.ErrSingular)
}
