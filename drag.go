package radial

import "sort"

// DragReorderEngine lets a user physically relocate, insert, or remove a
// label from the ring by dragging it. The first drag enters edit mode,
// which persists across multiple drags until the widget is dismissed;
// leaving edit mode commits the final order to configuration exactly once.
//
// The engine maintains the invariant that label order on screen matches
// label order in the backing configuration: mid-drag mutation is a pairwise
// placement swap, never a relayout of all angles.
type DragReorderEngine[T comparable] struct {
	labels   *LabelSet[T]
	circle   CirclePoints
	deadzone float64
	config   *PieConfig[T]

	editMode bool
	dragged  *Label[T]
}

// NewDragReorderEngine creates an engine editing labels laid out on circle.
// Committed orders are written to config.Order.
func NewDragReorderEngine[T comparable](labels *LabelSet[T], circle CirclePoints, deadzone float64, config *PieConfig[T]) *DragReorderEngine[T] {
	return &DragReorderEngine[T]{
		labels:   labels,
		circle:   circle,
		deadzone: deadzone,
		config:   config,
	}
}

// EditMode reports whether the engine has entered edit mode.
func (e *DragReorderEngine[T]) EditMode() bool {
	return e.editMode
}

// Dragging returns the label currently being dragged, or nil.
func (e *DragReorderEngine[T]) Dragging() *Label[T] {
	return e.dragged
}

// DragStart begins dragging label, entering edit mode if not already in it.
// The label may come from outside the active set (the unused values pool);
// it is inserted once the pointer moves inside the ring.
func (e *DragReorderEngine[T]) DragStart(label *Label[T]) {
	if !e.editMode {
		e.editMode = true
		debugLogf("drag: edit mode on")
	}
	e.dragged = label
}

// DragMove reacts to the dragged label's pointer position:
//
//   - inside the deadzone: positional no-op
//   - outside the outer radius: the label leaves the active set (it stays
//     draggable, so dragging back inside reinserts it)
//   - inside the ring but not in the set: insert
//   - otherwise: swap placement with the label occupying that angular slot
func (e *DragReorderEngine[T]) DragMove(pointer Point) {
	if e.dragged == nil {
		return
	}
	distance := e.circle.Distance(pointer)
	if distance < e.deadzone {
		return
	}

	if distance > e.circle.Radius {
		if e.labels.Contains(e.dragged.Value) {
			e.labels.Remove(e.dragged.Value)
			e.labels.ResetPlacement(e.circle)
			debugLogf("drag: removed %v", e.dragged.Value)
		}
		return
	}

	if !e.labels.Contains(e.dragged.Value) {
		e.labels.Append(e.dragged)
		e.labels.ResetPlacement(e.circle)
		debugLogf("drag: inserted %v", e.dragged.Value)
	}

	angle := e.circle.AngleFromPoint(pointer)
	occupant := e.labels.ByAngle(angle)
	if occupant == nil || occupant == e.dragged {
		return
	}
	e.dragged.SwapPlacement(occupant)
}

// DragEnd finishes the current drag. The engine stays in edit mode, so more
// drags may follow before the commit.
func (e *DragReorderEngine[T]) DragEnd() {
	e.dragged = nil
}

// Commit leaves edit mode and writes the final label order back to
// configuration. Order follows angular placement clockwise from the top, so
// what the user sees is what gets persisted. Calling Commit outside edit
// mode is a no-op.
func (e *DragReorderEngine[T]) Commit() {
	if !e.editMode {
		return
	}
	e.dragged = nil
	e.editMode = false

	labels := e.labels.labels
	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].Angle < labels[j].Angle
	})
	e.config.Order.Write(e.labels.Values())
	debugLogf("drag: committed order of %d labels", len(labels))
}
