//go:generate mockgen -source=strategy.go -destination=mocks/mock_strategy.go -package=mocks

package summation

import (
	"fmt"
	"sort"
	"sync"
)

// Strategy computes the int64 sum of a sequence of int32 values.
// Implementations must not modify values.
type Strategy interface {
	// Name returns the display name used as the report column header.
	Name() string
	// Sum returns the sum of values. It blocks until the result is ready.
	Sum(values []int32) int64
}

// funcStrategy adapts a plain function to the Strategy interface.
type funcStrategy struct {
	name string
	fn   func([]int32) int64
}

// NewFunc returns a Strategy with the given name that delegates to fn.
func NewFunc(name string, fn func([]int32) int64) Strategy {
	return funcStrategy{name: name, fn: fn}
}

func (f funcStrategy) Name() string             { return f.name }
func (f funcStrategy) Sum(values []int32) int64 { return f.fn(values) }

// Registry keys of the built-in strategies.
const (
	KeySimple   = "simple"
	KeyThread   = "thread"
	KeyParallel = "parallel"
	KeyFor      = "for"
	KeyChunked  = "chunked"
)

// Registry holds strategies by key and remembers registration order, which is
// the column order of the report.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
	order      []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// NewDefaultRegistry returns a registry with the built-in strategies in
// report order: Simple, Separated Thread, Data-Parallel, Fork-Join-For,
// Chunked Threads.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.mustRegister(KeySimple, Sequential{})
	r.mustRegister(KeyThread, SingleOffload{})
	r.mustRegister(KeyParallel, DataParallel{})
	r.mustRegister(KeyFor, ForkJoinFor{})
	r.mustRegister(KeyChunked, NewChunkedThreads())
	return r
}

// Register adds s under key. Registering the same key twice is an error.
func (r *Registry) Register(key string, s Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.strategies[key]; exists {
		return fmt.Errorf("strategy %q already registered", key)
	}
	r.strategies[key] = s
	r.order = append(r.order, key)
	return nil
}

func (r *Registry) mustRegister(key string, s Strategy) {
	if err := r.Register(key, s); err != nil {
		panic(err)
	}
}

// Get returns the strategy registered under key.
func (r *Registry) Get(key string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.strategies[key]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", key)
	}
	return s, nil
}

// List returns the registered keys in alphabetical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.strategies))
	for k := range r.strategies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lineup returns all strategies in registration order.
func (r *Registry) Lineup() []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lineup := make([]Strategy, len(r.order))
	for i, k := range r.order {
		lineup[i] = r.strategies[k]
	}
	return lineup
}

// Select resolves keys to strategies, keeping registration order. The key
// "all" (or an empty list) selects the whole lineup.
func (r *Registry) Select(keys []string) ([]Strategy, error) {
	if len(keys) == 0 || (len(keys) == 1 && keys[0] == "all") {
		return r.Lineup(), nil
	}
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		if _, err := r.Get(k); err != nil {
			return nil, err
		}
		wanted[k] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	selected := make([]Strategy, 0, len(wanted))
	for _, k := range r.order {
		if wanted[k] {
			selected = append(selected, r.strategies[k])
		}
	}
	return selected, nil
}
