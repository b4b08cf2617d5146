package ecsforge

import "reflect"

// Entity is a thin, copyable handle pairing a World with one EntityID. It
// exists so callers that already hold a World reference can chain
// mutations without repeating it. The free functions Set, Get, and Remove
// below are standalone rather than generic methods because Go does not
// allow a method to introduce its own type parameter.
type Entity struct {
	world *World
	id    EntityID
}

// Entity wraps id as a handle bound to w. It does not check that id is
// still alive; that check happens on first use, same as passing the raw
// id to World.Get/Set/Remove/Delete directly.
func (w *World) Entity(id EntityID) Entity {
	return Entity{world: w, id: id}
}

// ID returns the wrapped identifier.
func (e Entity) ID() EntityID {
	return e.id
}

// World returns the World this handle is bound to.
func (e Entity) World() *World {
	return e.world
}

// Delete removes the entity from its World.
func (e Entity) Delete() {
	e.world.Delete(e.id)
}

// Set writes a T value onto e, registering T as a component on first use,
// and returns e for chaining.
func Set[T any](e Entity, value T) Entity {
	id := RegisterComponent[T]()
	e.world.setRV(e.id, id, reflect.ValueOf(value))
	return e
}

// Get returns a pointer to e's T value, or (nil, false) if e does not
// carry that component.
func Get[T any](e Entity) (*T, bool) {
	id := RegisterComponent[T]()
	v, ok := e.world.Get(e.id, id)
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// Remove strips T from e, moving it to the archetype without that
// component, and returns e for chaining.
func Remove[T any](e Entity) Entity {
	id := RegisterComponent[T]()
	e.world.Remove(e.id, id)
	return e
}
