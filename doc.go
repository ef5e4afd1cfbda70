// Package radial provides pointer-driven controls for picking a value while
// a key is held: a circular pie menu, a rotation selector, and a 1D cyclic
// slider.
//
// A session lasts from key press to key release. While it is active, the
// pointer position is sampled on a fixed cadence and turned into a stable
// selection: small accidental motion inside the deadzone never changes the
// value, the mapping from position to value is geometrically exact, and the
// ring layout can be edited live by dragging labels around.
//
// The package never draws anything and never touches application state
// directly. Rendering belongs to the host; values are read and written only
// through the [Controller] interface, and layout is persisted through the
// [Field] configuration layer.
//
// # Quick start
//
// Hold a key to show a pie of layer opacities, release to apply:
//
//	controller := &radial.NumericController{
//		Get: layer.Opacity, Set: layer.SetOpacity, Suffix: "%",
//	}
//	group := &radial.FieldGroup{Name: "Radial: opacity", Store: store}
//	config := radial.NewPieConfig(group, []int{100, 90, 75, 50, 25, 10})
//	menu := radial.NewPieMenu(controller, config, radial.CursorPointer{})
//
//	binding := &radial.Binding{Key: ebiten.KeyZ, Handler: menu}
//
// Then call binding.Update() and menu.Update(dt) once per frame, and draw
// the ring from menu.Labels() however the host likes. See examples/ for
// complete programs.
package radial
