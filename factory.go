package ecsforge

import "reflect"

// SetComponent writes a T value for entity directly against a World,
// registering T as a component on first use. Equivalent to
// Set(w.Entity(entity), value) but avoids constructing an Entity handle
// when the caller only has a raw id, such as inside a SystemHandler.
func SetComponent[T any](w *World, entity EntityID, value T) {
	id := RegisterComponent[T]()
	w.setRV(entity, id, reflect.ValueOf(value))
}

// GetComponent returns a pointer to entity's T value, or (nil, false) if
// entity does not carry that component.
func GetComponent[T any](w *World, entity EntityID) (*T, bool) {
	id := RegisterComponent[T]()
	v, ok := w.Get(entity, id)
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// RemoveComponent strips T from entity, moving it to the archetype
// without that component.
func RemoveComponent[T any](w *World, entity EntityID) {
	id := RegisterComponent[T]()
	w.Remove(entity, id)
}
