package stats

// StatItem is one distinct value of a sample, and how often it occurs
type StatItem struct {
	Value float64
	Count int
	P     float64 // Relative frequency (Count / sample size)
}

func newStatItem(value float64, count, size int) StatItem {
	return StatItem{
		Value: value,
		Count: count,
		P:     float64(count) / float64(size),
	}
}

// Expand turns a statistical series back into an ascending list of observations
func Expand(series []StatItem) []float64 {
	total := 0
	for _, s := range series {
		total += s.Count
	}
	out := make([]float64, 0, total)
	for _, s := range series {
		for i := 0; i < s.Count; i++ {
			out = append(out, s.Value)
		}
	}
	return out
}
