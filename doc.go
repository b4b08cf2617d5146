/*
Package ecsforge is the storage and dispatch core of an archetype-based
Entity-Component-System runtime.

Entities are grouped by their exact component signature into archetypes;
each archetype owns one contiguous column per component plus an entity-id
column, so walking a system's matched archetypes touches only the data
that system actually needs. Set, Remove and Delete requested from inside a
running system are deferred into per-component queues and a single delete
graveyard, drained in a fixed set, remove, delete order once the system
finishes its pass. Two cases apply at once instead: NewEntity, which
places the new entity in the always-present empty archetype, and a
handler deleting the entity it is currently visiting.

Core Concepts:

  - Entity: an identity with no intrinsic data.
  - Component: a plain data type, registered once to obtain a dense id.
  - Archetype: the set of entities sharing one exact component signature,
    and the columns storing those components.
  - System: a required signature plus a handler, matched against every
    archetype whose signature is a superset of the requirement.

Basic Usage:

	w := ecsforge.NewWorld()

	type Position struct{ X, Y float64 }
	type Velocity struct{ X, Y float64 }

	e := w.NewEntity()
	ecsforge.SetComponent(w, e, Position{X: 5.5, Y: 10})
	ecsforge.SetComponent(w, e, Velocity{X: 1, Y: 0.1})

	required := ecsforge.MakeSignature(
		ecsforge.RegisterComponent[Position](),
		ecsforge.RegisterComponent[Velocity](),
	)
	w.AddSystem(required, func(w *ecsforge.World, e ecsforge.EntityID) {
		pos, _ := ecsforge.GetComponent[Position](w, e)
		vel, _ := ecsforge.GetComponent[Velocity](w, e)
		pos.X += vel.X
		pos.Y += vel.Y
	})

	w.Tick()

ecsforge is a standalone storage core; a host renders, schedules ticks on
a wall clock, and wires up real systems. See the movesys subpackage for a
worked demonstration system.
*/
package ecsforge
