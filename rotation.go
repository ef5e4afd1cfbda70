package radial

import "math"

// rotationZone identifies which radial band the pointer is in.
type rotationZone uint8

const (
	zoneDeadzone rotationZone = iota
	zoneDiscrete
	zoneContinuous
)

// RotationSelector maps pointer position to a value on a circular scale.
//
// The circle is split into radial bands, from the center outward: deadzone,
// then a discrete band where the angle is quantized into config.Divisions
// equal steps, then a continuous band with full angular resolution.
// InverseZones swaps the discrete and continuous bands.
//
// Inside the deadzone the configured strategy decides which value applies,
// as a pure function of the last value computed this session and the value
// held at session start.
type RotationSelector struct {
	Circle CirclePoints
	Config RotationConfig

	deadzoneRadius  float64
	innerZoneRadius float64
}

// NewRotationSelector creates a selector over the given circle. Zone radii
// are derived from the circle radius and the config scales.
func NewRotationSelector(circle CirclePoints, config RotationConfig) *RotationSelector {
	return &RotationSelector{
		Circle:          circle,
		Config:          config,
		deadzoneRadius:  circle.Radius * config.DeadzoneScale,
		innerZoneRadius: circle.Radius * config.InnerZoneScale,
	}
}

// DeadzoneRadius returns the radius of the central deadzone in pixels.
func (s *RotationSelector) DeadzoneRadius() float64 {
	return s.deadzoneRadius
}

func (s *RotationSelector) zoneAt(distance float64) rotationZone {
	switch {
	case distance < s.deadzoneRadius:
		return zoneDeadzone
	case distance < s.innerZoneRadius:
		if s.Config.InverseZones {
			return zoneContinuous
		}
		return zoneDiscrete
	default:
		if s.Config.InverseZones {
			return zoneDiscrete
		}
		return zoneContinuous
	}
}

// Resolve computes the value for the current pointer position. last is the
// value computed on the previous tick this session; start is the value held
// at session start. Both are only consulted while the pointer is inside the
// deadzone.
func (s *RotationSelector) Resolve(pointer Point, last, start int) int {
	distance := s.Circle.Distance(pointer)
	zone := s.zoneAt(distance)
	if zone == zoneDeadzone {
		resolve, ok := deadzoneResolvers[s.Config.Strategy]
		if !ok {
			resolve = deadzoneResolvers[KeepChange]
		}
		return resolve(last, start)
	}

	angle := s.Circle.AngleFromPoint(pointer)
	var value int
	if zone == zoneDiscrete {
		// Round half away from zero, so a pointer exactly between two
		// divisions snaps to the higher one (7.5° with 15° steps -> 1).
		step := 360.0 / float64(s.Config.Divisions)
		index := int(math.Round(angle/step)) % s.Config.Divisions
		value = int(math.Round(float64(index) * step))
	} else {
		value = int(math.Round(angle)) % 360
	}
	return s.transform(value)
}

// transform applies the configured direction flip and zero offset.
func (s *RotationSelector) transform(value int) int {
	if s.Config.IsCounterclockwise {
		value = (360 - value) % 360
	}
	return ((value+s.Config.OffsetDegrees)%360 + 360) % 360
}

// RotationActuator pushes the resolved rotation value through the
// controller on every tick of a session. Rotation is live-previewed, unlike
// the pie's release-only commit.
type RotationActuator struct {
	controller Controller[int]
	selector   *RotationSelector
	pointer    PointerSource

	working bool
	start   int
	last    int
}

// NewRotationActuator creates an actuator over selector writing through
// controller.
func NewRotationActuator(controller Controller[int], selector *RotationSelector, pointer PointerSource) *RotationActuator {
	return &RotationActuator{
		controller: controller,
		selector:   selector,
		pointer:    pointer,
	}
}

// Start begins a session: re-reads external state and records the session
// start value for the deadzone strategies.
func (a *RotationActuator) Start() {
	a.controller.Refresh()
	a.start = a.controller.GetValue()
	a.last = a.start
	a.working = true
	debugLogf("rotation: session start at %d", a.start)
}

// Update resolves and applies the value for this tick. Call once per frame
// between Start and Stop; the controller set is idempotent.
func (a *RotationActuator) Update() {
	if !a.working {
		return
	}
	value := a.selector.Resolve(a.pointer.Position(), a.last, a.start)
	a.controller.SetValue(value)
	a.last = value
}

// Stop ends the session. Idempotent.
func (a *RotationActuator) Stop() {
	a.working = false
}
