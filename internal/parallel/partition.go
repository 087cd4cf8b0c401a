package parallel

// Range is a half-open index range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int { return r.End - r.Start }

// Partition splits [0, n) into at most parts contiguous ranges.
//
// The chunk size is floor(n/parts) and the last range absorbs the remainder,
// so every index is covered exactly once whether or not n is divisible by
// parts. When n < parts each range holds a single index and n ranges are
// returned. n <= 0 or parts <= 0 yields no ranges.
func Partition(n, parts int) []Range {
	if n <= 0 || parts <= 0 {
		return nil
	}
	size := n / parts
	if size == 0 {
		size, parts = 1, n
	}

	ranges := make([]Range, parts)
	for i := range ranges {
		start := i * size
		end := start + size
		if i == parts-1 {
			end = n
		}
		ranges[i] = Range{Start: start, End: end}
	}
	return ranges
}
