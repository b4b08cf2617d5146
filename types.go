package ecsforge

// EntityID uniquely identifies an entity for the life of a World. Ids are
// monotonically increasing and never reused within a run. Zero is
// reserved to mean "no entity."
type EntityID uint64
