package radial

// Store is the persisted key/value state behind configuration fields. The
// core treats stored values as opaque; serialization to disk belongs to the
// host. The default MemoryStore keeps everything in memory.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	values map[string]any
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]any)}
}

// Get returns the stored value for key.
func (s *MemoryStore) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key.
func (s *MemoryStore) Set(key string, value any) {
	s.values[key] = value
}

// FieldGroup namespaces related fields under a common prefix, e.g.
// "Radial: layer opacity".
type FieldGroup struct {
	Name  string
	Store Store
}

// Field is a typed configuration value with change callbacks. Callbacks fire
// on every Write, which is how out-of-band edits (e.g. a settings window)
// trigger label recomputation in an open session.
type Field[T any] struct {
	group     *FieldGroup
	name      string
	def       T
	callbacks []func()
}

// NewField registers a field in the group with the given default.
func NewField[T any](group *FieldGroup, name string, def T) *Field[T] {
	return &Field[T]{group: group, name: name, def: def}
}

func (f *Field[T]) key() string {
	return f.group.Name + "." + f.name
}

// Read returns the stored value, or the default when absent or of the wrong
// type.
func (f *Field[T]) Read() T {
	raw, ok := f.group.Store.Get(f.key())
	if !ok {
		return f.def
	}
	v, ok := raw.(T)
	if !ok {
		return f.def
	}
	return v
}

// Write stores the value and fires registered callbacks.
func (f *Field[T]) Write(value T) {
	f.group.Store.Set(f.key(), value)
	for _, fn := range f.callbacks {
		fn()
	}
}

// RegisterCallback adds fn to be invoked after every Write.
func (f *Field[T]) RegisterCallback(fn func()) {
	f.callbacks = append(f.callbacks, fn)
}

// PieConfig is the persisted configuration of one pie menu: the ordered
// value list plus sizing. Order is the single source of truth for label
// placement; committing an edit-mode layout writes it back exactly once.
type PieConfig[T comparable] struct {
	Order           *Field[[]T]
	PieRadiusScale  *Field[float64]
	IconRadiusScale *Field[float64]

	// Source lists the values currently available from the host (e.g.
	// presets under a tag). Nil means the stored order is used as-is.
	Source func() []T
}

// NewPieConfig creates a pie configuration in the group with the given
// default value order.
func NewPieConfig[T comparable](group *FieldGroup, values []T) *PieConfig[T] {
	return &PieConfig[T]{
		Order:           NewField(group, "Values", values),
		PieRadiusScale:  NewField(group, "Pie scale", 1.0),
		IconRadiusScale: NewField(group, "Icon scale", 1.0),
	}
}

// Values returns the effective value list. With a Source, the stored order
// is filtered down to available values and values missing from the stored
// order are appended at the end, so out-of-band additions show up without
// losing the user's ordering.
func (c *PieConfig[T]) Values() []T {
	order := c.Order.Read()
	if c.Source == nil {
		return order
	}
	available := c.Source()
	present := make(map[T]bool, len(available))
	for _, v := range available {
		present[v] = true
	}
	var values []T
	for _, v := range order {
		if present[v] {
			values = append(values, v)
		}
	}
	ordered := make(map[T]bool, len(order))
	for _, v := range order {
		ordered[v] = true
	}
	for _, v := range available {
		if !ordered[v] {
			values = append(values, v)
		}
	}
	return values
}

// RotationConfig is a snapshot of rotation selector settings, immutable for
// the duration of a session.
type RotationConfig struct {
	DeadzoneScale      float64
	InnerZoneScale     float64
	Divisions          int
	IsCounterclockwise bool
	OffsetDegrees      int
	InverseZones       bool
	Strategy           DeadzoneStrategy
}

// RotationFields is the persisted form of RotationConfig, editable between
// sessions through a settings collaborator.
type RotationFields struct {
	DeadzoneScale      *Field[float64]
	InnerZoneScale     *Field[float64]
	Divisions          *Field[int]
	IsCounterclockwise *Field[bool]
	OffsetDegrees      *Field[int]
	InverseZones       *Field[bool]
	Strategy           *Field[DeadzoneStrategy]
}

// NewRotationFields creates rotation fields in the group with the default
// settings (24 divisions, clockwise, KeepChange).
func NewRotationFields(group *FieldGroup) *RotationFields {
	return &RotationFields{
		DeadzoneScale:      NewField(group, "Deadzone scale", 1.0),
		InnerZoneScale:     NewField(group, "Inner zone scale", 1.0),
		Divisions:          NewField(group, "Divisions", 24),
		IsCounterclockwise: NewField(group, "Is counterclockwise", false),
		OffsetDegrees:      NewField(group, "Offset", 0),
		InverseZones:       NewField(group, "Inverse zones", false),
		Strategy:           NewField(group, "Deadzone strategy", KeepChange),
	}
}

// Snapshot reads all fields into an immutable per-session config.
func (f *RotationFields) Snapshot() RotationConfig {
	return RotationConfig{
		DeadzoneScale:      f.DeadzoneScale.Read(),
		InnerZoneScale:     f.InnerZoneScale.Read(),
		Divisions:          f.Divisions.Read(),
		IsCounterclockwise: f.IsCounterclockwise.Read(),
		OffsetDegrees:      f.OffsetDegrees.Read(),
		InverseZones:       f.InverseZones.Read(),
		Strategy:           f.Strategy.Read(),
	}
}
