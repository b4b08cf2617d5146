package ecsforge

import (
	"reflect"

	"github.com/TheBitDrifter/mask"
)

// tickLockBit is the lock bit World holds for the duration of each
// system's iteration pass. It is one bit of a mask.Mask256 rather than a
// bare boolean so a future reader lock (explicitly out of scope, see
// spec's Non-goals) has a bit to claim without changing World's shape.
const tickLockBit uint32 = 0

// World is the entrypoint: it owns every archetype, the entity index, the
// registered systems, and the deferred-mutation queues.
type World struct {
	nextEntityID EntityID
	locked       mask.Mask256

	archetypes  []*archetype
	bySignature map[Signature]*archetype
	entityIndex map[EntityID]*archetype

	systems []*system

	setQueues    map[ComponentID]*setQueueEntry
	removeQueues map[ComponentID]*typedColumn[EntityID]
	graveyard    *typedColumn[EntityID]

	// iterating tracks the archetype and entity a system handler is
	// currently visiting, so Delete can apply Rule D: a handler may
	// delete the entity it is currently processing immediately, without
	// entering the graveyard, because reverse iteration with swap-remove
	// guarantees that row is safe to remove mid-walk.
	iteratingActive   bool
	iteratingArchetype *archetype
	iteratingEntity    EntityID
}

// NewWorld creates an empty World with one pre-existing archetype: the
// empty signature, which is where every new entity starts.
func NewWorld() *World {
	w := &World{
		bySignature:  make(map[Signature]*archetype),
		entityIndex:  make(map[EntityID]*archetype),
		setQueues:    make(map[ComponentID]*setQueueEntry),
		removeQueues: make(map[ComponentID]*typedColumn[EntityID]),
		graveyard:    newTypedColumn[EntityID](),
		nextEntityID: 1,
	}
	empty := newArchetype(0, emptySignature)
	w.archetypes = append(w.archetypes, empty)
	w.bySignature[emptySignature] = empty
	return w
}

// Locked reports whether the world is mid-tick.
func (w *World) Locked() bool {
	return !w.locked.IsEmpty()
}

// Archetypes returns every archetype created so far, in creation order.
// Archetypes are never reclaimed once created, even if later emptied.
func (w *World) Archetypes() []*archetype {
	return w.archetypes
}

// findOrCreate returns the archetype for sig, creating and registering it
// with every system (so each may extend its match cache) if it does not
// yet exist. Creating a new archetype while locked is a programming error:
// every legitimate caller routes structural mutations through the
// deferred queues while the world is locked, so this path should be
// unreachable in that state.
func (w *World) findOrCreate(sig Signature) *archetype {
	if a, ok := w.bySignature[sig]; ok {
		return a
	}
	if w.Locked() {
		fatal(LockedMutationError{})
	}
	a := newArchetype(archetypeID(len(w.archetypes)), sig)
	w.archetypes = append(w.archetypes, a)
	w.bySignature[sig] = a
	for _, sys := range w.systems {
		sys.tryAddMatch(a)
	}
	return a
}

// changeType moves entity to the archetype for its current signature plus
// (hasValue) or minus (!hasValue) component, copying every shared
// component across and writing the new one.
func (w *World) changeType(entity EntityID, component ComponentID, hasValue bool, value reflect.Value) {
	current, ok := w.entityIndex[entity]
	if !ok {
		fatal(UnknownEntityError{Entity: entity})
	}

	newSig := current.signature
	if hasValue {
		newSig.Mark(uint32(component))
	} else {
		newSig.Unmark(uint32(component))
	}
	if newSig == current.signature {
		return
	}

	dest := w.findOrCreate(newSig)
	dest.addFrom(entity, current, component, hasValue, value)
	current.swapDelete(entity)
	w.entityIndex[entity] = dest
}

// NewEntity allocates the next id and places it in the empty-signature
// archetype, which is guaranteed to already exist. Unlike every other
// structural mutation, this never checks the lock: the reference
// implementation's NewEntity never routes through the archetype-creation
// guard (it only ever touches the archetype created in the constructor),
// so it is reachable, and always succeeds, from inside a running system.
func (w *World) NewEntity() EntityID {
	id := w.nextEntityID
	w.nextEntityID++
	empty := w.bySignature[emptySignature]
	empty.addFrom(id, nil, 0, false, reflect.Value{})
	w.entityIndex[id] = empty
	return id
}

// Set writes a component value for entity, moving it to a new archetype
// if it does not already carry that component. If the world is locked,
// the write is queued and applied after the current system finishes.
func (w *World) Set(entity EntityID, component ComponentID, value any) {
	w.setRV(entity, component, reflect.ValueOf(value))
}

func (w *World) setRV(entity EntityID, component ComponentID, value reflect.Value) {
	if w.Locked() {
		w.enqueueSet(entity, component, value)
		return
	}
	current, ok := w.entityIndex[entity]
	if !ok {
		fatal(UnknownEntityError{Entity: entity})
	}
	if current.contains(component) {
		current.set(entity, component, value)
		return
	}
	w.changeType(entity, component, true, value)
}

// Get returns a pointer to entity's value for component, or (nil, false)
// if entity lacks it. The pointer is valid only until the next structural
// mutation of the owning archetype (a move, a swap-delete, or growth of
// this column).
func (w *World) Get(entity EntityID, component ComponentID) (any, bool) {
	current, ok := w.entityIndex[entity]
	if !ok {
		return nil, false
	}
	val, ok := current.get(entity, component)
	if !ok {
		return nil, false
	}
	return val.Addr().Interface(), true
}

// Remove strips component from entity, moving it to a new archetype. If
// the world is locked, the removal is queued. Removing a component an
// entity does not have resolves to the same signature and is a no-op.
func (w *World) Remove(entity EntityID, component ComponentID) {
	if w.Locked() {
		w.enqueueRemove(entity, component)
		return
	}
	w.changeType(entity, component, false, reflect.Value{})
}

// Delete removes entity entirely. If the world is locked and entity is
// the one the caller's own system handler is currently visiting (Rule D),
// the delete is applied immediately instead of entering the graveyard;
// every other locked delete is deferred.
func (w *World) Delete(entity EntityID) {
	if w.Locked() {
		if w.iteratingActive && entity == w.iteratingEntity {
			if current, ok := w.entityIndex[entity]; ok && current == w.iteratingArchetype {
				w.hardDelete(entity)
				return
			}
		}
		w.enqueueDelete(entity)
		return
	}
	w.hardDelete(entity)
}

func (w *World) hardDelete(entity EntityID) {
	current, ok := w.entityIndex[entity]
	if !ok {
		fatal(UnknownEntityError{Entity: entity})
	}
	current.swapDelete(entity)
	delete(w.entityIndex, entity)
}

// AddSystem registers a system that will run once per Tick, firing once
// per entity in every archetype whose signature is a superset of
// required. Existing archetypes are matched immediately.
func (w *World) AddSystem(required Signature, handler SystemHandler) SystemID {
	s := &system{id: SystemID(len(w.systems)), required: required, handler: handler}
	for _, a := range w.archetypes {
		s.tryAddMatch(a)
	}
	w.systems = append(w.systems, s)
	return s.id
}

// Tick advances one logical step: every registered system runs in
// registration order, each followed by a drain of the set, remove, and
// delete queues it may have filled.
func (w *World) Tick() {
	for _, sys := range w.systems {
		w.locked.Mark(tickLockBit)
		for _, arch := range sys.matches {
			w.iteratingArchetype = arch
			w.iteratingActive = true
			// The bound is fixed once, not recomputed per row: reverse
			// iteration plus Rule D's immediate self-delete keeps the
			// live count exactly in step with the remaining original
			// rows, so re-reading it here would be redundant, not safer.
			for i := arch.Len() - 1; i >= 0; i-- {
				id := arch.entityIDs.get(i).Interface().(EntityID)
				w.iteratingEntity = id
				sys.handler(w, id)
			}
		}
		w.iteratingActive = false
		w.iteratingArchetype = nil
		w.locked.Unmark(tickLockBit)

		w.drainSetQueue()
		w.drainRemoveQueue()
		w.drainGraveyard()
	}
}
