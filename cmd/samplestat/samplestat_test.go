package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cyclopcam/logs"
	"github.com/cyclopcam/samplestat/pkg/chart"
	"github.com/cyclopcam/samplestat/pkg/iox"
	"github.com/cyclopcam/samplestat/pkg/log"
	"github.com/cyclopcam/samplestat/pkg/stats"
	"github.com/stretchr/testify/require"
)

func writeSample(t *testing.T, dir, text string) string {
	fn := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(fn, []byte(text), 0644))
	return fn
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := writeSample(t, dir, "2.1\n3.5\n2.1\n4\n5.25\n3.5\n2.1\n6\n")
	opt := chart.DefaultOptions()
	opt.Dir = filepath.Join(dir, "images")
	logger := log.NewLevelLogger(logs.NewTestingLog(t), log.LevelDebug)

	require.NoError(t, run(logger, input, opt, true))
	for _, name := range []string{"empiric_function.png", "histogram.png", "count_polygon.png"} {
		_, err := os.Stat(filepath.Join(opt.Dir, name))
		require.NoError(t, err, name)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	opt := chart.DefaultOptions()
	opt.Dir = filepath.Join(dir, "images")
	logger := logs.NewTestingLog(t)

	err := run(logger, writeSample(t, dir, "1\ntwo\n3\n"), opt, false)
	var pe *iox.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 2, pe.Line)

	err = run(logger, writeSample(t, dir, "\n"), opt, false)
	require.ErrorIs(t, err, stats.ErrEmptySample)

	err = run(logger, writeSample(t, dir, "7\n7\n7\n"), opt, true)
	require.ErrorIs(t, err, stats.ErrDegenerateGrouping)
	// The run aborted before any chart was drawn
	_, err = os.Stat(opt.Dir)
	require.ErrorIs(t, err, os.ErrNotExist)
}
