package stats

// Returns the mean of a statistical series, weighting each value by its count.
func weightedMean(series []StatItem, n int) float64 {
	sum := 0.0
	for _, s := range series {
		sum += s.Value * float64(s.Count)
	}
	return sum / float64(n)
}

// Returns the population variance of a statistical series around 'mean'.
func weightedVariance(series []StatItem, mean float64, n int) float64 {
	sum := 0.0
	for _, s := range series {
		diff := s.Value - mean
		sum += diff * diff * float64(s.Count)
	}
	return sum / float64(n)
}

// Returns the most frequent item of the series.
// When several items share the highest count, the first one wins, so for an
// ascending series that is the smallest value.
func modeItem(series []StatItem) StatItem {
	best := series[0]
	for _, s := range series[1:] {
		if s.Count > best.Count {
			best = s
		}
	}
	return best
}
