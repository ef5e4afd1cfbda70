package radial

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// defaultShortVsLong is the press duration in seconds separating a short
// key release from a long one.
const defaultShortVsLong = 0.3

// Binding drives a Handler from an ebiten key. It watches the key's state
// once per frame, measures press duration, and invokes the session hooks:
// OnKeyPress on the press edge, then on the release edge OnEveryKeyRelease
// followed by OnShortKeyRelease or OnLongKeyRelease depending on the
// threshold.
//
// The Handler itself never reads the clock; the Binding is the only place
// press time is measured.
type Binding struct {
	Key     ebiten.Key
	Handler Handler
	// ShortVsLongSeconds separates short from long presses. Zero means
	// the default of 0.3 s.
	ShortVsLongSeconds float64
	// IsPressedFn overrides the key state source. Nil reads the ebiten
	// keyboard; tests inject simulated state here.
	IsPressedFn func() bool

	pressed    bool
	pressStart time.Time
}

// Update advances the binding by one frame. Call from the host's update
// loop.
func (b *Binding) Update() {
	var down bool
	if b.IsPressedFn != nil {
		down = b.IsPressedFn()
	} else {
		down = ebiten.IsKeyPressed(b.Key)
	}
	switch {
	case down && !b.pressed:
		b.pressed = true
		b.pressStart = time.Now()
		b.Handler.OnKeyPress()
	case !down && b.pressed:
		b.pressed = false
		held := time.Since(b.pressStart).Seconds()
		b.Handler.OnEveryKeyRelease()
		threshold := b.ShortVsLongSeconds
		if threshold <= 0 {
			threshold = defaultShortVsLong
		}
		if held < threshold {
			b.Handler.OnShortKeyRelease()
		} else {
			b.Handler.OnLongKeyRelease()
		}
	}
}
