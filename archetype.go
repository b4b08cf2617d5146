package ecsforge

import "reflect"

// archetype holds every entity sharing exactly one component signature: one
// column per signature member, an entity-id column, and the row index for
// each entity it holds. Created lazily when a signature is first needed;
// lives for the remainder of the world's lifetime.
type archetype struct {
	id        archetypeID
	signature Signature
	entityIDs *typedColumn[EntityID]
	columns   map[ComponentID]column
	rowOf     map[EntityID]int
}

type archetypeID uint32

func newArchetype(id archetypeID, sig Signature) *archetype {
	a := &archetype{
		id:        id,
		signature: sig,
		entityIDs: newTypedColumn[EntityID](),
		columns:   make(map[ComponentID]column),
		rowOf:     make(map[EntityID]int),
	}
	for _, cid := range signatureComponents(sig) {
		a.columns[cid] = newColumnFor(cid)
	}
	return a
}

// Signature returns this archetype's component set.
func (a *archetype) Signature() Signature {
	return a.signature
}

// Len returns the number of entities currently held.
func (a *archetype) Len() int {
	return a.entityIDs.len()
}

// EntityIDs returns a snapshot of the entity ids held, in row order.
func (a *archetype) EntityIDs() []EntityID {
	ids := make([]EntityID, a.entityIDs.len())
	for i := range ids {
		ids[i] = a.entityIDs.get(i).Interface().(EntityID)
	}
	return ids
}

func (a *archetype) contains(id ComponentID) bool {
	_, ok := a.columns[id]
	return ok
}

// addFrom appends entity as a new row. For each component in this
// archetype's signature: if it is newComponent, payload is written; else
// the value is copied from source's row for entity. The reserved form
// (source == nil, hasNewComponent == false) appends a blank row for a
// brand-new entity into a signature with no members to copy.
//
// Fails if entity is already present in this archetype, or if a component
// other than newComponent is required but absent from source.
func (a *archetype) addFrom(entity EntityID, source *archetype, newComponent ComponentID, hasNewComponent bool, payload reflect.Value) {
	if _, exists := a.rowOf[entity]; exists {
		fatal(DuplicateEntityError{Entity: entity})
	}

	row := a.entityIDs.len()
	a.entityIDs.appendZero()
	a.entityIDs.set(row, reflect.ValueOf(entity))
	a.rowOf[entity] = row

	for cid, col := range a.columns {
		col.appendZero()
		if hasNewComponent && cid == newComponent {
			col.set(row, payload)
			continue
		}
		if source == nil {
			continue
		}
		srcRow, ok := source.rowOf[entity]
		if !ok {
			fatal(UnknownEntityError{Entity: entity})
		}
		srcCol, ok := source.columns[cid]
		if !ok {
			fatal(ComponentNotInArchetypeError{Component: cid})
		}
		col.set(row, srcCol.get(srcRow))
	}
}

// swapDelete removes entity's row by swapping the last row into its place
// and shrinking every column by one, then fixes up the row index for
// whichever entity was moved.
func (a *archetype) swapDelete(entity EntityID) {
	row, ok := a.rowOf[entity]
	if !ok {
		fatal(UnknownEntityError{Entity: entity})
	}

	a.entityIDs.swapRemove(row)
	for _, col := range a.columns {
		col.swapRemove(row)
	}
	delete(a.rowOf, entity)

	if newCount := a.entityIDs.len(); row != newCount {
		moved := a.entityIDs.get(row).Interface().(EntityID)
		a.rowOf[moved] = row
	}
}

// set writes into the column for component at entity's row.
func (a *archetype) set(entity EntityID, id ComponentID, value reflect.Value) {
	row, ok := a.rowOf[entity]
	if !ok {
		fatal(UnknownEntityError{Entity: entity})
	}
	col, ok := a.columns[id]
	if !ok {
		fatal(ComponentNotInArchetypeError{Component: id})
	}
	col.set(row, value)
}

// get returns the component value at entity's row, or ok=false if entity
// or component is absent from this archetype.
func (a *archetype) get(entity EntityID, id ComponentID) (reflect.Value, bool) {
	row, ok := a.rowOf[entity]
	if !ok {
		return reflect.Value{}, false
	}
	col, ok := a.columns[id]
	if !ok {
		return reflect.Value{}, false
	}
	return col.get(row), true
}
