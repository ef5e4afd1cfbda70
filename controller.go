package radial

import "strconv"

// Controller is the capability through which the core reads and writes the
// actual application value being controlled. The selectors depend only on
// this interface, never on a concrete value domain.
//
// SetValue must be idempotent: selectors push the resolved value on every
// polling tick, not only on change.
type Controller[T comparable] interface {
	GetValue() T
	SetValue(T)
	// Refresh re-reads external state before a session starts.
	Refresh()
	// Label returns the render token for v, or nil when v cannot be
	// displayed. Values without a token are excluded from selection.
	Label(v T) DisplayToken
	// PrettyName returns the user-facing name of v.
	PrettyName(v T) string
}

// FuncController adapts plain closures to the Controller interface. Nil
// optional fields fall back to sensible defaults (no-op Refresh, non-nil
// token, empty name).
type FuncController[T comparable] struct {
	Get      func() T
	Set      func(T)
	Reload   func()
	LabelFn  func(T) DisplayToken
	PrettyFn func(T) string
}

func (c *FuncController[T]) GetValue() T { return c.Get() }

func (c *FuncController[T]) SetValue(v T) { c.Set(v) }

func (c *FuncController[T]) Refresh() {
	if c.Reload != nil {
		c.Reload()
	}
}

func (c *FuncController[T]) Label(v T) DisplayToken {
	if c.LabelFn != nil {
		return c.LabelFn(v)
	}
	return v
}

func (c *FuncController[T]) PrettyName(v T) string {
	if c.PrettyFn != nil {
		return c.PrettyFn(v)
	}
	return ""
}

// NumericController controls an integer application property (opacity,
// rotation, brush size). Suffix is appended to pretty names, e.g. "%".
type NumericController struct {
	Get    func() int
	Set    func(int)
	Suffix string
}

func (c *NumericController) GetValue() int { return c.Get() }

func (c *NumericController) SetValue(v int) { c.Set(v) }

func (c *NumericController) Refresh() {}

func (c *NumericController) Label(v int) DisplayToken {
	return strconv.Itoa(v) + c.Suffix
}

func (c *NumericController) PrettyName(v int) string {
	return strconv.Itoa(v) + c.Suffix
}
