package radial

import "sync"

// fakePointer is a scriptable PointerSource.
type fakePointer struct {
	p Point
}

func (f *fakePointer) Position() Point { return f.p }

func (f *fakePointer) moveTo(p Point) { f.p = p }

// fakeCoordinate is a scriptable 1D pointer, safe to read from the slider
// goroutine.
type fakeCoordinate struct {
	mu sync.Mutex
	c  float64
}

func (f *fakeCoordinate) Coordinate() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.c
}

func (f *fakeCoordinate) moveTo(c float64) {
	f.mu.Lock()
	f.c = c
	f.mu.Unlock()
}

// fakeController records every SetValue call. Safe across goroutines
// because the slider loop writes from its own goroutine.
type fakeController[T comparable] struct {
	mu        sync.Mutex
	value     T
	sets      []T
	refreshes int
	// nilFor lists values reported as undisplayable.
	nilFor map[T]bool
}

func (c *fakeController[T]) GetValue() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *fakeController[T]) SetValue(v T) {
	c.mu.Lock()
	c.value = v
	c.sets = append(c.sets, v)
	c.mu.Unlock()
}

func (c *fakeController[T]) Refresh() {
	c.mu.Lock()
	c.refreshes++
	c.mu.Unlock()
}

func (c *fakeController[T]) Label(v T) DisplayToken {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.nilFor[v] {
		return nil
	}
	return v
}

func (c *fakeController[T]) PrettyName(v T) string { return "" }

func (c *fakeController[T]) setCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sets)
}

func (c *fakeController[T]) lastSet() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if len(c.sets) == 0 {
		return zero, false
	}
	return c.sets[len(c.sets)-1], true
}
