package spatial_test

import (
	"math/rand/v2"
	"testing"

	"github.com/geostoch/fieldsim/spatial"
	"github.com/stretchr/testify/require"
)

func TestNewPointSet_RejectsEmpty(t *testing.T) {
	_, err := spatial.NewPointSet(nil)
	require.ErrorIs(t, err, spatial.ErrEmptyDomain)
}

func TestNewPointSet_RejectsDimMismatch(t *testing.T) {
	_, err := spatial.NewPointSet([]spatial.Point{
		{Coords: []float64{0, 0}},
		{Coords: []float64{0, 0, 0}},
	})
	require.ErrorIs(t, err, spatial.ErrDimMismatch)
}

func TestNewRandomPointSet_Deterministic(t *testing.T) {
	a, err := spatial.NewRandomPointSet(10, 2, spatial.WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)
	b, err := spatial.NewRandomPointSet(10, 2, spatial.WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)

	require.Equal(t, a.ElementCount(), b.ElementCount())
	for i := 0; i < a.ElementCount(); i++ {
		require.Equal(t, a.Centroid(i).Coords, b.Centroid(i).Coords)
	}
}

func TestNewRandomPointSet_RespectsBounds(t *testing.T) {
	ps, err := spatial.NewRandomPointSet(50, 2,
		spatial.WithRand(rand.New(rand.NewPCG(7, 7))),
		spatial.WithBounds([]float64{10, 10}, []float64{20, 20}))
	require.NoError(t, err)

	for i := 0; i < ps.ElementCount(); i++ {
		c := ps.Centroid(i)
		require.GreaterOrEqual(t, c.Coords[0], 10.0)
		require.LessOrEqual(t, c.Coords[0], 20.0)
		require.GreaterOrEqual(t, c.Coords[1], 10.0)
		require.LessOrEqual(t, c.Coords[1], 20.0)
	}
}

func TestNewRandomPointSet_RejectsTooFew(t *testing.T) {
	_, err := spatial.NewRandomPointSet(0, 2)
	require.ErrorIs(t, err, spatial.ErrTooFewPoints)
}
