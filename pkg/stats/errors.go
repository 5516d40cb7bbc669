package stats

import "errors"

var ErrEmptySample = errors.New("Sample is empty")
var ErrNonFiniteValue = errors.New("Sample contains a non-finite value")
var ErrSampleTooSmall = errors.New("Sample is too small")
var ErrDegenerateGrouping = errors.New("Cannot group sample: all values are identical, so the bin width is zero")
var ErrOverflow = errors.New("Sample values are too far apart: statistics overflow float64")
