package radial

import (
	"math"
	"sync/atomic"
	"time"
)

// SliderValues is the cycle of values a slider moves through, addressed by
// integer index between Min and Max.
type SliderValues[T comparable] interface {
	Min() int
	Max() int
	// At returns the value at index i. i must be within [Min, Max].
	At(i int) T
	// IndexOf returns the index of v, or the default index when v is not
	// part of the cycle.
	IndexOf(v T) int
}

// ListValues adapts an ordered value list to SliderValues. The default
// index is used when the current application value is not in the list.
type ListValues[T comparable] struct {
	values     []T
	defaultIdx int
}

// NewListValues creates slider values over list. def is the value whose
// index becomes the fallback; when def is not in the list the fallback is 0.
func NewListValues[T comparable](list []T, def T) *ListValues[T] {
	v := &ListValues[T]{values: list}
	for i, item := range list {
		if item == def {
			v.defaultIdx = i
			break
		}
	}
	return v
}

func (v *ListValues[T]) Min() int { return 0 }

func (v *ListValues[T]) Max() int { return len(v.values) - 1 }

func (v *ListValues[T]) At(i int) T { return v.values[i] }

func (v *ListValues[T]) IndexOf(value T) int {
	for i, item := range v.values {
		if item == value {
			return i
		}
	}
	return v.defaultIdx
}

// RangeValues adapts a contiguous int range to SliderValues: the index is
// the value itself.
type RangeValues struct {
	MinValue, MaxValue int
	Default            int
}

func (v RangeValues) Min() int { return v.MinValue }

func (v RangeValues) Max() int { return v.MaxValue }

func (v RangeValues) At(i int) int { return i }

func (v RangeValues) IndexOf(value int) int {
	if value < v.MinValue || value > v.MaxValue {
		return v.Default
	}
	return value
}

// MouseInterpreter maps 1D pointer displacement to a clipped value index.
// Sensitivity is the pixel distance that moves the index by one step; larger
// means less sensitive.
type MouseInterpreter struct {
	Min, Max    int
	Origin      float64
	StartValue  int
	Sensitivity float64
}

// ValueAt returns the index for the given pointer coordinate, clamped to
// [Min, Max].
func (m MouseInterpreter) ValueAt(coordinate float64) int {
	steps := int(math.Round((coordinate - m.Origin) / m.Sensitivity))
	value := m.StartValue + steps
	if value < m.Min {
		return m.Min
	}
	if value > m.Max {
		return m.Max
	}
	return value
}

// Slider maps pointer displacement along one axis to a value in a cycle and
// pushes it through the controller on a fixed polling cadence for as long as
// the session lasts.
//
// Start launches the polling loop on its own goroutine; Stop is cooperative
// and may be called from the event loop. After a Stop request at most one
// more tick can fire.
type Slider[T comparable] struct {
	controller  Controller[T]
	values      SliderValues[T]
	sensitivity float64

	working atomic.Bool
}

// NewSlider creates a slider over the given value cycle. sensitivity <= 0
// falls back to the default of 50 pixels per step.
func NewSlider[T comparable](controller Controller[T], values SliderValues[T], sensitivity float64) *Slider[T] {
	if sensitivity <= 0 {
		sensitivity = 50
	}
	return &Slider[T]{
		controller:  controller,
		values:      values,
		sensitivity: sensitivity,
	}
}

// Start begins polling the pointer and setting values. It returns
// immediately; the loop runs until Stop. Starting an already running slider
// is a no-op.
func (s *Slider[T]) Start(pointer PointerCoordinateSource) {
	if !s.working.CompareAndSwap(false, true) {
		return
	}
	interpreter := MouseInterpreter{
		Min:         s.values.Min(),
		Max:         s.values.Max(),
		Origin:      pointer.Coordinate(),
		StartValue:  s.values.IndexOf(s.controller.GetValue()),
		Sensitivity: s.sensitivity,
	}
	go s.poll(pointer, interpreter)
}

func (s *Slider[T]) poll(pointer PointerCoordinateSource, interpreter MouseInterpreter) {
	ticker := time.NewTicker(TickMillis * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		if !s.working.Load() {
			return
		}
		index := interpreter.ValueAt(pointer.Coordinate())
		// Set on every tick, not only on change. The controller is
		// assumed idempotent.
		s.controller.SetValue(s.values.At(index))
	}
}

// Stop requests the polling loop to exit. Safe to call from another
// goroutine and idempotent.
func (s *Slider[T]) Stop() {
	s.working.Store(false)
}
