package classifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shape-detector/internal/domain/entity"
)

func TestTurnAngles_Square(t *testing.T) {
	square := []entity.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	for _, a := range turnAngles(square) {
		require.True(t, a >= 0 && a < 360)
		require.InDelta(t, 90, min(a, 360-a), 1e-9)
	}
}

func TestTurnAngles_RegularStarSplits(t *testing.T) {
	inner, outer := 0, 0
	for _, a := range turnAngles(star(0, 0, 100, 40)) {
		require.True(t, a >= 0 && a < 360)
		if a < 120 {
			inner++
		} else if a > 120 {
			outer++
		}
	}
	require.Equal(t, 5, inner)
	require.Equal(t, 5, outer)
}

func TestStarConfidence(t *testing.T) {
	tests := []struct {
		name   string
		angles []float64
		want   float64
		ok     bool
	}{
		{
			name:   "uniform buckets",
			angles: []float64{36, 144, 36, 144, 36, 144, 36, 144, 36, 144},
			want:   1,
			ok:     true,
		},
		{
			name:   "spread buckets",
			angles: []float64{30, 140, 40, 150, 30, 140, 40, 150, 35, 145},
			want:   1 - (4.47213595499958+4.47213595499958)/60,
			ok:     true,
		},
		{
			name:   "boundary angle fills neither bucket",
			angles: []float64{36, 144, 36, 144, 36, 144, 36, 144, 36, 120},
		},
		{
			name:   "six inner",
			angles: []float64{36, 36, 36, 36, 36, 36, 144, 144, 144, 144},
		},
		{
			name:   "outer too spread",
			angles: []float64{36, 130, 36, 350, 36, 130, 36, 350, 36, 240},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := starConfidence(tt.angles)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
