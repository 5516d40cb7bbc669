package iox

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError reports a line of a sample file that is not a number
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Line %v: '%v' is not a number: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadSample reads one real number per line.
// Newlines at the start and end of the stream are ignored, but an empty line
// between two values is an error, as is any line that doesn't parse as a float.
func ReadSample(r io.Reader) ([]float64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.Trim(string(raw), "\r\n")
	if text == "" {
		return []float64{}, nil
	}
	lines := strings.Split(text, "\n")
	sample := make([]float64, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Err: err}
		}
		sample = append(sample, v)
	}
	return sample, nil
}

// LoadSample reads a sample file. See ReadSample for the format.
func LoadSample(filename string) ([]float64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sample, err := ReadSample(f)
	if err != nil {
		return nil, fmt.Errorf("Failed to read sample '%v': %w", filename, err)
	}
	return sample, nil
}
