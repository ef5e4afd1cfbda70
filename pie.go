package radial

import "math"

// defaultPieRadius is the unscaled ring radius in pixels.
const defaultPieRadius = 165.0

// defaultDeadzoneRadius is the unscaled radius around the center within
// which no label is considered active.
const defaultDeadzoneRadius = 40.0

// PieStyle is the derived pixel geometry of a pie widget.
type PieStyle struct {
	PieRadius      float64
	IconRadius     float64
	DeadzoneRadius float64
}

// NewPieStyle computes pie geometry for the given label count and config
// scales. With no labels the deadzone is infinite, so nothing can ever
// activate.
func NewPieStyle(labelCount int, pieScale, iconScale float64) PieStyle {
	pieRadius := defaultPieRadius * pieScale
	iconRadius := pieRadius * 0.35
	if labelCount > 0 {
		// Shrink icons when the ring gets crowded.
		if crowded := pieRadius * math.Pi / float64(labelCount) * 0.9; crowded < iconRadius {
			iconRadius = crowded
		}
	}
	iconRadius *= iconScale

	deadzone := defaultDeadzoneRadius * pieScale
	if labelCount == 0 {
		deadzone = math.Inf(1)
	}
	return PieStyle{
		PieRadius:      pieRadius,
		IconRadius:     iconRadius,
		DeadzoneRadius: deadzone,
	}
}

// PieSelector maps the current pointer position to the nearest label by
// angle, with a deadzone around the center below which no label is active.
type PieSelector[T comparable] struct {
	Labels         *LabelSet[T]
	Circle         CirclePoints
	DeadzoneRadius float64
}

// ActiveLabel returns the label the pointer currently selects, or nil when
// the pointer is inside the deadzone or the set is empty. Selection is
// deterministic: the same pointer position always yields the same label.
func (s *PieSelector[T]) ActiveLabel(pointer Point) *Label[T] {
	if s.Labels.Len() == 0 {
		return nil
	}
	if s.Circle.Distance(pointer) < s.DeadzoneRadius {
		return nil
	}
	return s.Labels.ByAngle(s.Circle.AngleFromPoint(pointer))
}

// UpdateTick computes the active label for this tick and advances every
// label's activation animation: Up on the active one, Down on all others.
// Runs the animation even while the same label stays active, so emphasis
// saturates at 1 and decays smoothly on deselection.
func (s *PieSelector[T]) UpdateTick(pointer Point) *Label[T] {
	active := s.ActiveLabel(pointer)
	for _, l := range s.Labels.Labels() {
		if l == active {
			l.Activation.Up()
		} else {
			l.Activation.Down()
		}
	}
	return active
}

// invalidValues remembers configured values that had no display token, so
// they are filtered out of future label recomputation without re-querying
// the controller. Process-wide: initialized empty, grows monotonically,
// never persisted. Mutation happens only on the GUI thread.
var invalidValues = make(map[any]struct{})

// PieMenu picks a value by hovering over a ring of labels.
//
// The widget is active between key press and release. Moving the pointer in
// the direction of a label activates it on release; when the pointer never
// left the deadzone the value is unchanged. Dragging a label enters edit
// mode, in which releases are ignored and drags reorder the ring instead;
// hiding the widget then commits the new order to configuration.
type PieMenu[T comparable] struct {
	controller Controller[T]
	config     *PieConfig[T]
	pointer    PointerSource
	labels     *LabelSet[T]
	style      PieStyle
	selector   PieSelector[T]
	drag       *DragReorderEngine[T]
	open       *OpenAnimation
	active     *Label[T]
	lastValues []T
	visible    bool
}

// NewPieMenu creates a pie menu reading values from config and committing
// the selection through controller. pointer provides live cursor positions.
func NewPieMenu[T comparable](controller Controller[T], config *PieConfig[T], pointer PointerSource) *PieMenu[T] {
	m := &PieMenu[T]{
		controller: controller,
		config:     config,
		pointer:    pointer,
		labels:     NewLabelSet[T](),
		open:       NewOpenAnimation(0.2),
	}
	// Out-of-band order edits (settings window, another session) rebuild
	// the label set the next time they are observed.
	config.Order.RegisterCallback(func() {
		m.resetLabels(m.config.Values())
	})
	return m
}

// OnKeyPress starts a session: reloads labels from configuration and places
// the ring under the cursor. Pressing while already visible is a no-op.
func (m *PieMenu[T]) OnKeyPress() {
	if m.visible {
		return
	}
	m.controller.Refresh()

	values := m.config.Values()
	if !equalValues(m.lastValues, values) {
		m.resetLabels(values)
		m.lastValues = values
	}

	m.style = NewPieStyle(
		m.labels.Len(),
		m.config.PieRadiusScale.Read(),
		m.config.IconRadiusScale.Read())
	circle := CirclePoints{Center: m.pointer.Position(), Radius: m.style.PieRadius}
	m.labels.ResetPlacement(circle)

	m.selector = PieSelector[T]{
		Labels:         m.labels,
		Circle:         circle,
		DeadzoneRadius: m.style.DeadzoneRadius,
	}
	m.drag = NewDragReorderEngine(m.labels, circle, m.style.DeadzoneRadius, m.config)
	m.active = nil
	m.open.Reset()
	m.visible = true
	debugLogf("pie: session start, %d labels", m.labels.Len())
}

// Update advances the widget by one tick: the opening animation and, when
// not in edit mode, the selection state. Call once per frame while the menu
// is visible.
func (m *PieMenu[T]) Update(dt float32) {
	if !m.visible {
		return
	}
	m.open.Update(dt)
	if m.drag.EditMode() {
		return
	}
	m.active = m.selector.UpdateTick(m.pointer.Position())
}

// OnShortKeyRelease implements Handler; the pie does not distinguish press
// lengths.
func (m *PieMenu[T]) OnShortKeyRelease() {}

// OnLongKeyRelease implements Handler.
func (m *PieMenu[T]) OnLongKeyRelease() {}

// OnEveryKeyRelease ends the session. In edit mode the widget stays up and
// the release is ignored. Otherwise the active label's value is committed
// through the controller; no label active means no write.
func (m *PieMenu[T]) OnEveryKeyRelease() {
	if !m.visible || m.drag.EditMode() {
		return
	}
	m.visible = false
	if m.active != nil {
		m.controller.SetValue(m.active.Value)
		debugLogf("pie: committed %v", m.active.Value)
	}
	m.active = nil
}

// Hide dismisses the widget. Leaving edit mode this way commits the edited
// label order to configuration exactly once.
func (m *PieMenu[T]) Hide() {
	m.visible = false
	m.active = nil
	if m.drag != nil {
		m.drag.Commit()
	}
}

// Visible reports whether a session is in progress.
func (m *PieMenu[T]) Visible() bool { return m.visible }

// Active returns the label the pointer currently selects, or nil.
func (m *PieMenu[T]) Active() *Label[T] { return m.active }

// Labels returns the label set for render layers. MUST NOT be mutated.
func (m *PieMenu[T]) Labels() *LabelSet[T] { return m.labels }

// Style returns the pixel geometry of the current session.
func (m *PieMenu[T]) Style() PieStyle { return m.style }

// Openness returns the opening animation state in [0, 1].
func (m *PieMenu[T]) Openness() float64 { return m.open.Value() }

// Drag returns the reorder engine of the current session, or nil before the
// first session. Render layers forward drag gestures to it.
func (m *PieMenu[T]) Drag() *DragReorderEngine[T] { return m.drag }

// resetLabels replaces the label set with labels for values. Values the
// controller cannot display are excluded and remembered so future
// recomputation skips them without another query.
func (m *PieMenu[T]) resetLabels(values []T) {
	filtered := values[:0:0]
	for _, v := range values {
		if _, bad := invalidValues[v]; !bad {
			filtered = append(filtered, v)
		}
	}
	if equalValues(filtered, m.labels.Values()) {
		return
	}

	labels := make([]*Label[T], 0, len(filtered))
	for _, v := range filtered {
		label := LabelFromValue(v, m.controller)
		if label == nil {
			invalidValues[v] = struct{}{}
			continue
		}
		labels = append(labels, label)
	}
	m.labels.labels = labels
}

func equalValues[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
