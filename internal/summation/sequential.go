package summation

// Sequential sums on the calling goroutine, visiting every element once in
// index order.
type Sequential struct{}

func (Sequential) Name() string { return "Simple" }

func (Sequential) Sum(values []int32) int64 {
	return sumSlice(values)
}

// sumSlice is the sequential fold shared by the strategies that sum a whole
// slice or chunk on one goroutine.
func sumSlice(values []int32) int64 {
	var total int64
	for _, v := range values {
		total += int64(v)
	}
	return total
}
