package lu_test

import (
	"math/rand/v2"
	"testing"

	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/covfunc"
	"github.com/geostoch/fieldsim/engine/lu"
	"github.com/geostoch/fieldsim/process"
	"github.com/geostoch/fieldsim/spatial"
	"github.com/stretchr/testify/require"
)

func TestPreprocess_RejectsNonApplicableFunction(t *testing.T) {
	fn, err := covfunc.NewSpherical(5, 1, covfunc.WithForm(covfunc.VariogramForm))
	require.NoError(t, err)
	gp, err := process.NewGaussianProcess(fn, []float64{0})
	require.NoError(t, err)

	grid, err := spatial.NewGrid([]int{4}, []float64{0}, []float64{1})
	require.NoError(t, err)

	_, err = lu.Preprocess(gp, grid, []string{"Z"}, nil)
	require.ErrorIs(t, err, lu.ErrNotApplicable)
}

func TestSingle_UnconditionalRealizationWritesEveryCell(t *testing.T) {
	fn, err := covfunc.NewSpherical(5, 2)
	require.NoError(t, err)
	gp, err := process.NewGaussianProcess(fn, []float64{10})
	require.NoError(t, err)

	grid, err := spatial.NewGrid([]int{6}, []float64{0}, []float64{1})
	require.NoError(t, err)

	art, err := lu.Preprocess(gp, grid, []string{"Z"}, nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(1, 2))
	out, err := lu.Single(rng, art)
	require.NoError(t, err)
	require.NoError(t, out.AllWritten())
}

func TestSingle_ConditionalRealizationReproducesData(t *testing.T) {
	fn, err := covfunc.NewSpherical(5, 2)
	require.NoError(t, err)
	gp, err := process.NewGaussianProcess(fn, []float64{0})
	require.NoError(t, err)

	grid, err := spatial.NewGrid([]int{6}, []float64{0}, []float64{1})
	require.NoError(t, err)

	data, err := attr.NewTable(6, []string{"Z"})
	require.NoError(t, err)
	require.NoError(t, data.Set("Z", 2, 3.5))

	art, err := lu.Preprocess(gp, grid, []string{"Z"}, data)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(7, 8))
	out, err := lu.Single(rng, art)
	require.NoError(t, err)
	require.NoError(t, out.AllWritten())

	col, err := out.Column("Z")
	require.NoError(t, err)
	require.Equal(t, 3.5, col.Values[2])
}

func TestSingle_IsDeterministicForFixedSeed(t *testing.T) {
	fn, err := covfunc.NewSpherical(5, 2)
	require.NoError(t, err)
	gp, err := process.NewGaussianProcess(fn, []float64{0})
	require.NoError(t, err)

	grid, err := spatial.NewGrid([]int{6}, []float64{0}, []float64{1})
	require.NoError(t, err)

	art, err := lu.Preprocess(gp, grid, []string{"Z"}, nil)
	require.NoError(t, err)

	out1, err := lu.Single(rand.New(rand.NewPCG(42, 0)), art)
	require.NoError(t, err)
	out2, err := lu.Single(rand.New(rand.NewPCG(42, 0)), art)
	require.NoError(t, err)

	col1, _ := out1.Column("Z")
	col2, _ := out2.Column("Z")
	require.Equal(t, col1.Values, col2.Values)
}

func TestPreprocess_RejectsShapeMismatch(t *testing.T) {
	fn, err := covfunc.NewSpherical(5, 2)
	require.NoError(t, err)
	gp, err := process.NewGaussianProcess(fn, []float64{0})
	require.NoError(t, err)

	grid, err := spatial.NewGrid([]int{4}, []float64{0}, []float64{1})
	require.NoError(t, err)

	_, err = lu.Preprocess(gp, grid, []string{"Z1", "Z2"}, nil)
	require.ErrorIs(t, err, lu.ErrShapeMismatch)
}
