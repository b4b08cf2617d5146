package ecsforge

import "github.com/TheBitDrifter/mask"

// Signature is an unordered set of component ids identifying one
// archetype within a world. Equality and hashing are order-independent,
// since mask.Mask is a fixed-size bitset used directly as a map key —
// exactly how the teacher's storage layer keys its archetype lookup.
type Signature = mask.Mask

// emptySignature is the initial archetype of every new entity.
var emptySignature Signature

// MakeSignature builds a Signature from a list of component ids;
// duplicates in the input collapse.
func MakeSignature(ids ...ComponentID) Signature {
	var s Signature
	for _, id := range ids {
		s.Mark(uint32(id))
	}
	return s
}

// signatureComponents expands a Signature back into its member component
// ids. Components are dense and assigned from zero, so membership is a
// single-bit containment test against every id registered so far.
func signatureComponents(sig Signature) []ComponentID {
	n := registeredComponentCount()
	ids := make([]ComponentID, 0, n)
	for i := 0; i < n; i++ {
		if sig.ContainsAll(MakeSignature(ComponentID(i))) {
			ids = append(ids, ComponentID(i))
		}
	}
	return ids
}
