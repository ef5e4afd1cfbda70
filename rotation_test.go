package radial

import "testing"

// rotationFixture builds a selector with radius 100: deadzone up to 20,
// discrete band up to 60, continuous beyond.
func rotationFixture(mutate func(*RotationConfig)) *RotationSelector {
	config := RotationConfig{
		DeadzoneScale:  0.2,
		InnerZoneScale: 0.6,
		Divisions:      24,
		Strategy:       KeepChange,
	}
	if mutate != nil {
		mutate(&config)
	}
	circle := CirclePoints{Center: Point{X: 500, Y: 500}, Radius: 100}
	return NewRotationSelector(circle, config)
}

// pointAt places the pointer at the given angle and distance from center.
func pointAt(s *RotationSelector, angle, distance float64) Point {
	c := CirclePoints{Center: s.Circle.Center, Radius: distance}
	return c.PointFromAngle(angle)
}

func TestRotationDiscreteZoneQuantizes(t *testing.T) {
	s := rotationFixture(nil)

	// 24 divisions -> 15° per step. Rounding is half away from zero, so
	// exactly 7.5° lands on division 1.
	tests := []struct {
		name  string
		angle float64
		want  int
	}{
		{"zero", 0, 0},
		{"just below half step", 7.4, 0},
		{"exact half step rounds up", 7.5, 15},
		{"snaps down", 14.9, 15},
		{"snaps to 90", 93, 90},
		{"wraps at top", 359, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Resolve(pointAt(s, tt.angle, 40), 0, 0)
			if got != tt.want {
				t.Errorf("Resolve at %v° = %d, want %d", tt.angle, got, tt.want)
			}
		})
	}
}

func TestRotationContinuousZoneFullResolution(t *testing.T) {
	s := rotationFixture(nil)

	if got := s.Resolve(pointAt(s, 123, 80), 0, 0); got != 123 {
		t.Errorf("Resolve at 123° continuous = %d, want 123", got)
	}
	if got := s.Resolve(pointAt(s, 7.4, 80), 0, 0); got != 7 {
		t.Errorf("Resolve at 7.4° continuous = %d, want 7", got)
	}
}

func TestRotationInverseZonesSwapsBands(t *testing.T) {
	s := rotationFixture(func(c *RotationConfig) { c.InverseZones = true })

	// Inner band is now continuous, outer band discrete.
	if got := s.Resolve(pointAt(s, 123, 40), 0, 0); got != 123 {
		t.Errorf("inner band = %d, want continuous 123", got)
	}
	if got := s.Resolve(pointAt(s, 123, 80), 0, 0); got != 120 {
		t.Errorf("outer band = %d, want discrete 120", got)
	}
}

func TestRotationCounterclockwiseAndOffset(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RotationConfig)
		angle  float64
		want   int
	}{
		{
			"counterclockwise mirrors",
			func(c *RotationConfig) { c.IsCounterclockwise = true },
			90, 270,
		},
		{
			"offset shifts zero",
			func(c *RotationConfig) { c.OffsetDegrees = 90 },
			90, 180,
		},
		{
			"offset wraps",
			func(c *RotationConfig) { c.OffsetDegrees = 90 },
			300, 30,
		},
		{
			"negative offset wraps",
			func(c *RotationConfig) { c.OffsetDegrees = -90 },
			30, 300,
		},
		{
			"both applied",
			func(c *RotationConfig) {
				c.IsCounterclockwise = true
				c.OffsetDegrees = 45
			},
			90, 315,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := rotationFixture(tt.mutate)
			got := s.Resolve(pointAt(s, tt.angle, 80), 0, 0)
			if got != tt.want {
				t.Errorf("Resolve at %v° = %d, want %d", tt.angle, got, tt.want)
			}
		})
	}
}

func TestRotationDeadzoneStrategies(t *testing.T) {
	tests := []struct {
		name     string
		strategy DeadzoneStrategy
		want     int
	}{
		{"keep change", KeepChange, 135},
		{"discard change", DiscardChange, 30},
		{"set to zero", SetToZero, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := rotationFixture(func(c *RotationConfig) { c.Strategy = tt.strategy })
			center := s.Circle.Center
			got := s.Resolve(center, 135, 30)
			if got != tt.want {
				t.Errorf("deadzone resolve = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRotationKeepChangeSurvivesDeadzoneReentry(t *testing.T) {
	s := rotationFixture(nil)
	controller := &fakeController[int]{value: 30}
	pointer := &fakePointer{p: s.Circle.Center}
	actuator := NewRotationActuator(controller, s, pointer)

	actuator.Start()

	// Leave the deadzone: value tracks the pointer.
	pointer.moveTo(pointAt(s, 135, 80))
	actuator.Update()
	if got, _ := controller.lastSet(); got != 135 {
		t.Fatalf("value = %d after leaving deadzone, want 135", got)
	}

	// Back into the deadzone: the last computed value is kept, not the
	// session start value.
	pointer.moveTo(s.Circle.Center)
	actuator.Update()
	actuator.Update()
	if got, _ := controller.lastSet(); got != 135 {
		t.Errorf("value = %d inside deadzone, want kept 135", got)
	}

	actuator.Stop()
}

func TestRotationActuatorPushesEveryTick(t *testing.T) {
	s := rotationFixture(nil)
	controller := &fakeController[int]{value: 0}
	pointer := &fakePointer{p: pointAt(s, 90, 80)}
	actuator := NewRotationActuator(controller, s, pointer)

	actuator.Start()
	for i := 0; i < 5; i++ {
		actuator.Update()
	}
	if n := controller.setCount(); n != 5 {
		t.Errorf("setCount = %d after 5 ticks, want 5", n)
	}

	actuator.Stop()
	actuator.Stop() // idempotent
	actuator.Update()
	if n := controller.setCount(); n != 5 {
		t.Errorf("setCount = %d after Stop, want unchanged 5", n)
	}
}

func TestRegisterDeadzoneStrategy(t *testing.T) {
	const midpoint = DeadzoneStrategy(200)
	RegisterDeadzoneStrategy(midpoint, func(last, start int) int {
		return (last + start) / 2
	})
	s := rotationFixture(func(c *RotationConfig) { c.Strategy = midpoint })

	if got := s.Resolve(s.Circle.Center, 100, 50); got != 75 {
		t.Errorf("custom strategy resolve = %d, want 75", got)
	}
}
