package radial

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TickMillis is the polling cadence shared by every selector loop: pointer
// sampling, activation animation, and the slider goroutine all advance once
// per tick.
const TickMillis = 50

// AnimationProgress tracks two-way steep animation state in [0, 1], used to
// animate selection emphasis on a label. The change is fastest when the
// animation starts and slows down near the bound, controlled by steep.
//
// It is advanced once per polling tick with Up or Down; it is not a
// fixed-duration tween.
type AnimationProgress struct {
	value float64
	speed float64
	steep float64
}

// NewAnimationProgress creates progress state at 0. speedScale scales how
// fast the value approaches its bound; steep shapes the easing.
func NewAnimationProgress(speedScale, steep float64) *AnimationProgress {
	return &AnimationProgress{
		speed: 0.004 * TickMillis * speedScale,
		steep: steep,
	}
}

// Up advances the value toward 1.
func (p *AnimationProgress) Up() {
	p.value += (1 + p.steep - p.value) * p.speed
	if p.value > 1 {
		p.value = 1
	}
}

// Down advances the value toward 0.
func (p *AnimationProgress) Down() {
	p.value -= (p.value + p.steep) * p.speed
	if p.value < 0 {
		p.value = 0
	}
}

// Value returns the current animation state in [0, 1].
func (p *AnimationProgress) Value() float64 {
	return p.value
}

// Reset sets the value to 0 immediately, with no easing.
func (p *AnimationProgress) Reset() {
	p.value = 0
}

// OpenAnimation animates the widget opening (and closing) as an openness
// value in [0, 1]. Render layers scale the ring radius by Value so the
// widget grows out from under the cursor. Unlike AnimationProgress this is a
// fixed-duration tween driven by frame delta time.
type OpenAnimation struct {
	tween *gween.Tween
	value float64
}

// NewOpenAnimation creates an animation from 0 to 1 over duration seconds.
func NewOpenAnimation(duration float32) *OpenAnimation {
	return &OpenAnimation{tween: gween.New(0, 1, duration, ease.OutCubic)}
}

// Update advances the animation by dt seconds.
func (a *OpenAnimation) Update(dt float32) {
	v, _ := a.tween.Update(dt)
	a.value = float64(v)
}

// Value returns the current openness in [0, 1].
func (a *OpenAnimation) Value() float64 {
	return a.value
}

// Reset restarts the animation from 0.
func (a *OpenAnimation) Reset() {
	a.tween.Reset()
	a.value = 0
}
