package parallel

import (
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"
)

// slot holds one slice's partial result on its own cache line so that
// neighbouring tasks writing their results do not contend.
type slot[A any] struct {
	value A
	_     cpu.CacheLinePad
}

// MapReduce maps every element of values with mapFn and reduces the mapped
// values with reduceFn, starting from zero.
//
// values is split into Workers() contiguous slices; one task per slice folds
// its elements into a local accumulator seeded with zero. After all tasks have
// joined, the partial results are combined sequentially in slice order.
// reduceFn must be associative and zero must be its identity.
func MapReduce[T, A any](values []T, zero A, mapFn func(T) A, reduceFn func(A, A) A) A {
	ranges := Partition(len(values), Workers())
	if len(ranges) == 0 {
		return zero
	}

	partials := make([]slot[A], len(ranges))
	var g errgroup.Group
	for i, r := range ranges {
		g.Go(func() error {
			acc := zero
			for _, v := range values[r.Start:r.End] {
				acc = reduceFn(acc, mapFn(v))
			}
			partials[i].value = acc
			return nil
		})
	}
	_ = g.Wait()

	result := zero
	for i := range partials {
		result = reduceFn(result, partials[i].value)
	}
	return result
}
