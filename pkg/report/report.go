// Package report renders the textual analysis of a sample
package report

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cyclopcam/samplestat/pkg/stats"
)

// Build computes every statistic of the report, and renders it.
// If any statistic fails, no text is produced.
func Build(ds *stats.Dataset) ([]byte, error) {
	correctedVariance, err := ds.CorrectedVariance()
	if err != nil {
		return nil, err
	}
	correctedStd, err := ds.CorrectedStd()
	if err != nil {
		return nil, err
	}
	intervals, err := ds.Group()
	if err != nil {
		return nil, err
	}

	vs := ds.VariationSeries()
	b := &bytes.Buffer{}

	fmt.Fprintf(b, "1. Variation series: %v\n", vs)
	fmt.Fprintf(b, "1.1 First order statistic: %v\n", vs[0])
	fmt.Fprintf(b, "1.1 n-th order statistic: %v\n", vs[len(vs)-1])
	fmt.Fprintf(b, "1.2 Width: %v\n", ds.Width())
	fmt.Fprintf(b, "1.3 Mode: %v\n", ds.Mode())
	fmt.Fprintf(b, "1.4 Median: %v\n", ds.Median())

	fmt.Fprintf(b, "2. Statistical series:\n")
	writeStatSeries(b, ds.StatSeries())
	fmt.Fprintf(b, "2.1 Mean: %v\n", ds.Mean())
	fmt.Fprintf(b, "2.1 Variance: %v\n", ds.Variance())
	fmt.Fprintf(b, "2.1.1 Corrected variance: %v\n", correctedVariance)
	fmt.Fprintf(b, "2.2 Standard deviation: %v\n", ds.Std())
	fmt.Fprintf(b, "2.2.1 Corrected standard deviation: %v\n", correctedStd)

	fmt.Fprintf(b, "3. Interval series (h = %v, m = %v):\n", ds.BinWidth(), ds.BinCount())
	for i := range intervals {
		fmt.Fprintf(b, "%v\n", intervals[i].String())
	}

	fmt.Fprintf(b, "4. Empirical distribution function:\n")
	b.WriteString(ds.CDF().String())

	return b.Bytes(), nil
}

// Write builds the report and writes it to w
func Write(w io.Writer, ds *stats.Dataset) error {
	text, err := Build(ds)
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}

func writeStatSeries(w io.Writer, series []stats.StatItem) {
	tw := tabwriter.NewWriter(w, 12, 1, 3, ' ', 0)
	fmt.Fprintf(tw, "Value\tCount\tRelative frequency\n")
	for _, s := range series {
		fmt.Fprintf(tw, "%v\t%v\t%v\n", s.Value, s.Count, s.P)
	}
	tw.Flush()
}
