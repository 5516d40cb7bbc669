package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cyclopcam/samplestat/pkg/stats"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	ds, err := stats.NewDataset([]float64{3, 1, 2, 3, 2, 3})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	require.NoError(t, Write(out, ds))
	text := out.String()

	require.Contains(t, text, "1. Variation series: [1 2 2 3 3 3]\n")
	require.Contains(t, text, "1.1 First order statistic: 1\n")
	require.Contains(t, text, "1.1 n-th order statistic: 3\n")
	require.Contains(t, text, "1.2 Width: 2\n")
	require.Contains(t, text, "1.3 Mode: 3\n")
	require.Contains(t, text, "1.4 Median: 3\n")
	require.Contains(t, text, "2.1.1 Corrected variance: ")
	require.Contains(t, text, "3. Interval series (h = ")
	require.Contains(t, text, "4. Empirical distribution function:\n-∞\t<\tx\t<\t1\t:\t0\n")

	// Table rows are aligned into columns
	lines := strings.Split(text, "\n")
	header := -1
	for i, l := range lines {
		if strings.HasPrefix(l, "Value") {
			header = i
		}
	}
	require.NotEqual(t, -1, header)
	col := strings.Index(lines[header], "Count")
	require.Greater(t, col, 0)
	for _, row := range lines[header+1 : header+4] {
		require.NotEqual(t, ' ', rune(row[col]), "row %q", row)
		require.Equal(t, byte(' '), row[col-1], "row %q", row)
	}
	require.True(t, strings.HasPrefix(lines[header+3], "3 "))

	// Sections come out in order
	require.Less(t, strings.Index(text, "1. "), strings.Index(text, "2. "))
	require.Less(t, strings.Index(text, "2. "), strings.Index(text, "3. "))
	require.Less(t, strings.Index(text, "3. "), strings.Index(text, "4. "))
}

func TestReportAbortsWithoutPartialOutput(t *testing.T) {
	out := &bytes.Buffer{}

	ds, err := stats.NewDataset([]float64{4})
	require.NoError(t, err)
	require.ErrorIs(t, Write(out, ds), stats.ErrSampleTooSmall)
	require.Equal(t, 0, out.Len())

	ds, err = stats.NewDataset([]float64{4, 4, 4})
	require.NoError(t, err)
	require.ErrorIs(t, Write(out, ds), stats.ErrDegenerateGrouping)
	require.Equal(t, 0, out.Len())
}
