package radial

import "github.com/hajimehoshi/ebiten/v2"

// Axis selects which cursor axis a 1D slider reads.
type Axis uint8

const (
	AxisX Axis = iota // horizontal cursor movement
	AxisY             // vertical cursor movement
)

// CursorPointer reads the live mouse cursor position from ebiten. It is the
// default PointerSource for pie and rotation widgets.
type CursorPointer struct{}

// Position returns the current cursor position in screen coordinates.
func (CursorPointer) Position() Point {
	x, y := ebiten.CursorPosition()
	return Point{X: float64(x), Y: float64(y)}
}

// CursorAxis reads one axis of the mouse cursor as a 1D coordinate for the
// slider. It is safe to sample from the slider's polling goroutine: ebiten
// cursor reads are not tied to the update thread.
type CursorAxis struct {
	Axis Axis
}

// Coordinate returns the cursor coordinate along the configured axis.
func (c CursorAxis) Coordinate() float64 {
	x, y := ebiten.CursorPosition()
	if c.Axis == AxisY {
		return float64(y)
	}
	return float64(x)
}
