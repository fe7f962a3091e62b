package classifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeanStdDev_Population(t *testing.T) {
	mean, sd := meanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.InDelta(t, 5, mean, 1e-12)
	require.InDelta(t, 2, sd, 1e-12)
}

func TestMeanStdDev_DividesByCount(t *testing.T) {
	_, sd := meanStdDev([]float64{30, 40, 30, 40, 35})
	require.InDelta(t, math.Sqrt(20), sd, 1e-12)
}

func TestMeanStdDev_Empty(t *testing.T) {
	mean, sd := meanStdDev(nil)
	require.Zero(t, mean)
	require.Zero(t, sd)
}
