package ecsforge

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// fatal wraps err with a stack trace and panics. Every kind below is
// unrecoverable within a running tick: this core is single-threaded and
// carries no state across ticks worth preserving, so bailing is
// acceptable, matching the teacher's own panic(bark.AddTrace(err)) sites.
func fatal(err error) {
	panic(bark.AddTrace(err))
}

// UnknownComponentError — component id was never registered.
type UnknownComponentError struct {
	ID ComponentID
}

func (e UnknownComponentError) Error() string {
	return fmt.Sprintf("component id %d was never registered", e.ID)
}

// UnknownEntityError — entity absent from the addressed archetype's index.
type UnknownEntityError struct {
	Entity EntityID
}

func (e UnknownEntityError) Error() string {
	return fmt.Sprintf("entity %d is not present in its archetype's index", e.Entity)
}

// DuplicateEntityError — adding an entity id that already exists in an archetype.
type DuplicateEntityError struct {
	Entity EntityID
}

func (e DuplicateEntityError) Error() string {
	return fmt.Sprintf("entity %d already present in archetype", e.Entity)
}

// LockedMutationError — a structural operation that cannot be deferred
// was attempted while the world is locked.
type LockedMutationError struct{}

func (e LockedMutationError) Error() string {
	return "cannot create a new archetype while the world is locked"
}

// OutOfBoundsError — column index outside [0, count).
type OutOfBoundsError struct {
	Index, Count int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds for column of length %d", e.Index, e.Count)
}

// GrowthOverflowError — a column growth step would overflow its counter.
type GrowthOverflowError struct {
	OldCap, Growth int
}

func (e GrowthOverflowError) Error() string {
	return fmt.Sprintf("growth step would overflow column capacity (%d+%d)", e.OldCap, e.Growth)
}

// ComponentNotInArchetypeError — component is not part of an archetype's signature.
type ComponentNotInArchetypeError struct {
	Component ComponentID
}

func (e ComponentNotInArchetypeError) Error() string {
	return fmt.Sprintf("component id %d is not part of this archetype's signature", e.Component)
}
