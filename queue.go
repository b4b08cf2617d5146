package ecsforge

import "reflect"

// setQueueEntry is one component's sub-queue: parallel entity-id and
// payload columns. Enqueue appends an (entity, value) pair; later writes
// to the same (entity, component) within one queue win, since the queue
// drains in insertion order and each replay simply overwrites the
// previous value.
type setQueueEntry struct {
	entities *typedColumn[EntityID]
	values   column
}

func (w *World) enqueueSet(entity EntityID, component ComponentID, value reflect.Value) {
	q, ok := w.setQueues[component]
	if !ok {
		q = &setQueueEntry{entities: newTypedColumn[EntityID](), values: newColumnFor(component)}
		w.setQueues[component] = q
	}
	q.entities.appendZero()
	q.entities.set(q.entities.len()-1, reflect.ValueOf(entity))
	q.values.appendZero()
	q.values.set(q.values.len()-1, value)
}

func (w *World) enqueueRemove(entity EntityID, component ComponentID) {
	q, ok := w.removeQueues[component]
	if !ok {
		q = newTypedColumn[EntityID]()
		w.removeQueues[component] = q
	}
	q.appendZero()
	q.set(q.len()-1, reflect.ValueOf(entity))
}

func (w *World) enqueueDelete(entity EntityID) {
	w.graveyard.appendZero()
	w.graveyard.set(w.graveyard.len()-1, reflect.ValueOf(entity))
}

// drainSetQueue replays every queued (entity, component, value) write, then
// empties the queues. Writes are replayed in insertion order within each
// component's sub-queue; the order in which components are visited is not
// defined. Must run unlocked: a replayed
// write may itself move an entity to a new archetype.
func (w *World) drainSetQueue() {
	for id, q := range w.setQueues {
		n := q.entities.len()
		for i := 0; i < n; i++ {
			entity := q.entities.get(i).Interface().(EntityID)
			value := q.values.get(i)
			w.Set(entity, id, value.Interface())
		}
		q.entities.clear()
		q.values.clear()
	}
}

// drainRemoveQueue replays every queued removal, then empties the queues.
func (w *World) drainRemoveQueue() {
	for id, q := range w.removeQueues {
		n := q.len()
		for i := 0; i < n; i++ {
			entity := q.get(i).Interface().(EntityID)
			w.Remove(entity, id)
		}
		q.clear()
	}
}

// drainGraveyard replays every queued deletion, then empties it. Deletes
// always supersede prior mutations on the same entity because they drain
// last (set, then remove, then delete).
func (w *World) drainGraveyard() {
	n := w.graveyard.len()
	for i := 0; i < n; i++ {
		entity := w.graveyard.get(i).Interface().(EntityID)
		w.Delete(entity)
	}
	w.graveyard.clear()
}
