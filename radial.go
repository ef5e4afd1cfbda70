package radial

// Point is a 2D position in widget coordinates. The coordinate system has its
// origin at the top-left, with Y increasing downward (screen convention).
type Point struct {
	X, Y float64
}

// DisplayToken is an opaque render token owned by the presentation layer.
// The core only checks it for nil (a value with no token cannot be displayed
// and is excluded from the selectable set).
type DisplayToken any

// DeadzoneStrategy selects what value the rotation selector applies while the
// pointer stays inside the deadzone.
type DeadzoneStrategy uint8

const (
	// KeepChange keeps the last value computed this session. Moving back
	// into the deadzone stops updates rather than reverting.
	KeepChange DeadzoneStrategy = iota
	// DiscardChange reverts to the value held at session start.
	DiscardChange
	// SetToZero applies the zero value of the scale.
	SetToZero
)

// deadzoneResolvers maps each strategy to a pure function of the last value
// computed this session and the value held at session start. Strategies are
// a function table so new ones can be registered without touching the
// selector.
var deadzoneResolvers = map[DeadzoneStrategy]func(last, start int) int{
	KeepChange:    func(last, start int) int { return last },
	DiscardChange: func(last, start int) int { return start },
	SetToZero:     func(last, start int) int { return 0 },
}

// RegisterDeadzoneStrategy installs a custom resolver for the given strategy
// id. Intended for hosts that need behavior beyond the built-in three.
func RegisterDeadzoneStrategy(s DeadzoneStrategy, fn func(last, start int) int) {
	deadzoneResolvers[s] = fn
}

// PointerSource provides the live 2D pointer position, sampled on demand.
type PointerSource interface {
	Position() Point
}

// PointerCoordinateSource provides a live 1D pointer coordinate for the
// slider. Typically one axis of a 2D pointer.
type PointerCoordinateSource interface {
	Coordinate() float64
}

// Handler receives session lifecycle events from a key binding driver.
// The host decides short vs long based on its press-time threshold; the core
// only reacts.
type Handler interface {
	OnKeyPress()
	OnShortKeyRelease()
	OnLongKeyRelease()
	OnEveryKeyRelease()
}
