package gen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, 2, Max(1, 2))
	require.Equal(t, 0, Clamp(-4, 0, 9))
	require.Equal(t, 9, Clamp(12, 0, 9))
	require.Equal(t, 5, Clamp(5, 0, 9))

	lo, hi := MinMax([]float64{3, -1, 7, 2})
	require.Equal(t, -1.0, lo)
	require.Equal(t, 7.0, hi)

	lo, hi = MinMax([]float64{4})
	require.Equal(t, 4.0, lo)
	require.Equal(t, 4.0, hi)
}

func TestCopySlice(t *testing.T) {
	a := []int{1, 2, 3}
	b := CopySlice(a)
	require.Equal(t, a, b)
	b[0] = 9
	require.Equal(t, 1, a[0])
}
