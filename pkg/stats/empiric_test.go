package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmpiricTwoValues(t *testing.T) {
	ef := mustDataset(t, []float64{2, 1}).CDF()
	require.Equal(t, []Segment{
		{Start: math.Inf(-1), End: 1, F: 0},
		{Start: 1, End: 2, F: 0.5},
		{Start: 2, End: math.Inf(1), F: 1},
	}, ef.Segments())

	require.Equal(t, "-∞\t<\tx\t<\t1\t:\t0\n"+
		"1\t<=\tx\t<\t2\t:\t0.5\n"+
		"2\t<=\tx\t<\t∞\t:\t1\n", ef.String())
}

func TestEmpiricLagsOneItem(t *testing.T) {
	// The segment ending at s[i] carries the mass of s[0..i-1]
	ef := mustDataset(t, []float64{1, 2, 2, 3, 3, 3}).CDF()
	segs := ef.Segments()
	require.Len(t, segs, 4)
	require.Equal(t, 0.0, segs[0].F)
	require.InDelta(t, 1.0/6, segs[1].F, 1e-12)
	require.InDelta(t, 3.0/6, segs[2].F, 1e-12)
	require.Equal(t, 1.0, segs[3].F)
	require.Equal(t, 2.0, segs[2].Start)
	require.Equal(t, 3.0, segs[2].End)

	require.Equal(t, 0.0, ef.At(0.5))
	require.InDelta(t, 1.0/6, ef.At(1), 1e-12)
	require.InDelta(t, 1.0/6, ef.At(1.99), 1e-12)
	require.InDelta(t, 0.5, ef.At(2), 1e-12)
	require.Equal(t, 1.0, ef.At(3))
	require.Equal(t, 1.0, ef.At(math.Inf(1)))
	require.Equal(t, 0.0, ef.At(math.Inf(-1)))
}

func TestEmpiricSingleValue(t *testing.T) {
	ef := mustDataset(t, []float64{4, 4, 4}).CDF()
	require.Equal(t, []Segment{
		{Start: math.Inf(-1), End: 4, F: 0},
		{Start: 4, End: math.Inf(1), F: 1},
	}, ef.Segments())
}

func TestEmpiricInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 100; iter++ {
		ds := mustDataset(t, randomSample(rng, 1+rng.Intn(300)))
		series := ds.StatSeries()
		segs := ds.CDF().Segments()
		require.Len(t, segs, len(series)+1)
		require.Equal(t, 0.0, segs[0].F)
		require.True(t, math.IsInf(segs[0].Start, -1))
		require.Equal(t, 1.0, segs[len(segs)-1].F)
		require.True(t, math.IsInf(segs[len(segs)-1].End, 1))
		for i := 1; i < len(segs); i++ {
			require.GreaterOrEqual(t, segs[i].F, segs[i-1].F)
			require.Equal(t, segs[i-1].End, segs[i].Start)
		}
		// Interior breakpoints are the distinct values
		for i, s := range series {
			require.Equal(t, s.Value, segs[i].End)
		}
	}
}

func TestNewEmpiricFunction(t *testing.T) {
	_, err := NewEmpiricFunction(nil)
	require.ErrorIs(t, err, ErrEmptySample)

	_, err = NewEmpiricFunction([]StatItem{{Value: 2, Count: 1, P: 0.5}, {Value: 1, Count: 1, P: 0.5}})
	require.Error(t, err)

	ef, err := NewEmpiricFunction([]StatItem{{Value: 1, Count: 1, P: 0.25}, {Value: 2, Count: 3, P: 0.75}})
	require.NoError(t, err)
	require.Equal(t, 0.25, ef.Segments()[1].F)
}
