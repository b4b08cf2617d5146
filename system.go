package ecsforge

// SystemHandler is invoked once per matching entity, per tick.
type SystemHandler func(w *World, entity EntityID)

// SystemID identifies a registered system within a World.
type SystemID uint32

// system holds a required signature, a handler, and a cache of archetypes
// whose signature is a superset of the requirement — appended to whenever
// a new archetype is created (see World.findOrCreate).
type system struct {
	id       SystemID
	required Signature
	handler  SystemHandler
	matches  []*archetype
}

// tryAddMatch appends a to this system's match list if a's signature is a
// superset of what this system requires. Component order never matters;
// extra components on the archetype never disqualify it.
func (s *system) tryAddMatch(a *archetype) {
	if a.signature.ContainsAll(s.required) {
		s.matches = append(s.matches, a)
	}
}
