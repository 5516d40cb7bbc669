package gen

func CopySlice[T any](src []T) []T {
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

// MinMax returns the smallest and largest element of a non-empty slice
func MinMax[T Ordered](src []T) (lo, hi T) {
	lo, hi = src[0], src[0]
	for _, v := range src[1:] {
		lo = Min(lo, v)
		hi = Max(hi, v)
	}
	return
}
