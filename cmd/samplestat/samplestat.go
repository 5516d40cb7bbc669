package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/logs"
	"github.com/cyclopcam/samplestat/pkg/chart"
	"github.com/cyclopcam/samplestat/pkg/cjpeg"
	"github.com/cyclopcam/samplestat/pkg/iox"
	"github.com/cyclopcam/samplestat/pkg/log"
	"github.com/cyclopcam/samplestat/pkg/report"
	"github.com/cyclopcam/samplestat/pkg/stats"
)

func main() {
	defaults := chart.DefaultOptions()

	parser := argparse.NewParser("samplestat", "Descriptive statistics and diagnostic plots of a univariate sample")
	input := parser.String("i", "input", &argparse.Options{Help: "Sample file, one number per line", Required: true})
	imagesDir := parser.String("o", "images", &argparse.Options{Help: "Directory that charts are written to", Default: defaults.Dir})
	format := parser.Selector("", "format", []string{"png", "jpg"}, &argparse.Options{Help: "Chart image format", Default: "png"})
	width := parser.Int("", "width", &argparse.Options{Help: "Chart width in pixels", Default: defaults.Width})
	height := parser.Int("", "height", &argparse.Options{Help: "Chart height in pixels", Default: defaults.Height})
	logLevel := parser.String("l", "loglevel", &argparse.Options{Help: "Minimum log level (" + strings.Join(log.LevelNames(), ", ") + ")", Default: "info"})
	noPlots := parser.Flag("", "noplots", &argparse.Options{Help: "Don't render charts", Default: false})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	minLevel, err := log.ParseLevel(*logLevel)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
	baseLog, err := logs.NewLog()
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.NewLevelLogger(baseLog, minLevel)

	options := chart.Options{
		Dir:    *imagesDir,
		Width:  *width,
		Height: *height,
	}
	if *format == "jpg" {
		options.Encoder = cjpeg.NewEncoder(90)
	}

	if err := run(logger, *input, options, !*noPlots); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(logger logs.Log, input string, chartOptions chart.Options, plots bool) error {
	logger.Debugf("input = %v", input)

	sample, err := iox.LoadSample(input)
	if err != nil {
		return err
	}
	ds, err := stats.NewDataset(sample)
	if err != nil {
		return fmt.Errorf("Invalid sample '%v': %w", input, err)
	}
	logger.Debugf("sample = %v", sample)
	logger.Infof("Loaded %v values from %v", ds.Size(), input)

	if err := report.Write(os.Stdout, ds); err != nil {
		return err
	}

	if !plots {
		return nil
	}

	ch, err := chart.New(log.NewPrefixLogger(logger, "chart:"), chartOptions)
	if err != nil {
		return err
	}
	written := []string{}
	path, err := ch.CDF(ds.CDF(), "empiric_function")
	if err != nil {
		return err
	}
	fmt.Printf("5.1 Empirical distribution function saved to %v\n", path)
	written = append(written, path)

	if path, err = ch.Histogram(ds, "histogram"); err != nil {
		return err
	}
	fmt.Printf("5.2 Histogram saved to %v\n", path)
	written = append(written, path)

	if path, err = ch.CountPolygon(ds, "count_polygon"); err != nil {
		return err
	}
	fmt.Printf("5.3 Frequency polygon saved to %v\n", path)
	written = append(written, path)

	logger.Infof("Wrote %v charts: %v", len(written), strings.Join(written, ", "))
	return nil
}
