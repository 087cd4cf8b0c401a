package summation

// SingleOffload runs the sequential sum on one spawned goroutine and blocks
// until that goroutine signals completion. It measures the fixed cost of a
// goroutine start plus a synchronisation handoff.
//
// There is no timeout: if the worker never signals, Sum never returns.
type SingleOffload struct{}

func (SingleOffload) Name() string { return "Separated Thread" }

func (SingleOffload) Sum(values []int32) int64 {
	var sum int64
	done := make(chan struct{})
	go func() {
		sum = sumSlice(values)
		close(done)
	}()
	// close(done) happens before this receive returns, so reading sum is race-free.
	<-done
	return sum
}
