package radial

// Label is a single selectable value in a pie, together with its spatial
// placement on the ring and its activation animation state.
//
// Angle is in degrees, counted clockwise with 0 at the top of the widget.
// Two labels are considered the same placement when value and center match;
// identity over time is the value alone, which never changes.
type Label[T comparable] struct {
	Value      T
	Center     Point
	Angle      float64
	Display    DisplayToken
	PrettyName string
	Activation *AnimationProgress
}

// LabelFromValue uses the controller to create a label holding value.
// Returns nil when the controller has no display token for it.
func LabelFromValue[T comparable](value T, controller Controller[T]) *Label[T] {
	token := controller.Label(value)
	if token == nil {
		return nil
	}
	return &Label[T]{
		Value:      value,
		Display:    token,
		PrettyName: controller.PrettyName(value),
		Activation: NewAnimationProgress(1, 1),
	}
}

// SwapPlacement exchanges the spatial data of two labels. Values, display
// tokens, and animation state stay put; only angle and center move.
func (l *Label[T]) SwapPlacement(other *Label[T]) {
	l.Angle, other.Angle = other.Angle, l.Angle
	l.Center, other.Center = other.Center, l.Center
}

// LabelSet is an ordered sequence of labels. Order is significant: it
// determines angular placement and is what gets written back to persisted
// configuration. No two labels share the same value.
type LabelSet[T comparable] struct {
	labels []*Label[T]
}

// NewLabelSet creates a set from labels, which must have unique values.
func NewLabelSet[T comparable](labels ...*Label[T]) *LabelSet[T] {
	return &LabelSet[T]{labels: labels}
}

// Len returns the number of labels.
func (s *LabelSet[T]) Len() int {
	return len(s.labels)
}

// At returns the label at index i.
func (s *LabelSet[T]) At(i int) *Label[T] {
	return s.labels[i]
}

// Labels returns the backing slice. The returned slice MUST NOT be mutated.
func (s *LabelSet[T]) Labels() []*Label[T] {
	return s.labels
}

// Values returns the label values in set order.
func (s *LabelSet[T]) Values() []T {
	values := make([]T, len(s.labels))
	for i, l := range s.labels {
		values[i] = l.Value
	}
	return values
}

// IndexOf returns the index of the label holding value, or -1.
func (s *LabelSet[T]) IndexOf(value T) int {
	for i, l := range s.labels {
		if l.Value == value {
			return i
		}
	}
	return -1
}

// Contains reports whether a label holding value is in the set.
func (s *LabelSet[T]) Contains(value T) bool {
	return s.IndexOf(value) >= 0
}

// Append adds a label at the end. Labels with a value already present are
// ignored, preserving the unique-value invariant.
func (s *LabelSet[T]) Append(label *Label[T]) {
	if s.Contains(label.Value) {
		return
	}
	s.labels = append(s.labels, label)
}

// Remove deletes the label holding value, keeping order. Removing a value
// not in the set is a no-op.
func (s *LabelSet[T]) Remove(value T) {
	i := s.IndexOf(value)
	if i < 0 {
		return
	}
	s.labels = append(s.labels[:i], s.labels[i+1:]...)
}

// ByAngle returns the label whose angle is closest to the given angle by
// circular arc distance. Ties break to the lowest index. Returns nil for an
// empty set.
func (s *LabelSet[T]) ByAngle(angle float64) *Label[T] {
	var closest *Label[T]
	best := 361.0
	for _, l := range s.labels {
		if d := arcDistance(l.Angle, angle); d < best {
			best = d
			closest = l
		}
	}
	return closest
}

// ResetPlacement distributes the labels evenly around the circle in set
// order, assigning each its angle and center.
func (s *LabelSet[T]) ResetPlacement(circle CirclePoints) {
	angles, points := circle.AnglesAndPoints(len(s.labels))
	for i, l := range s.labels {
		l.Angle = angles[i]
		l.Center = points[i]
	}
}
