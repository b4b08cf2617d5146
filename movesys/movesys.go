// Package movesys is a small demonstration collaborator, not part of the
// ecsforge core: two components and three systems lifted from the
// reference implementation's own movement example, translated to the
// ecsforge API.
package movesys

import (
	"log"

	"github.com/TheBitDrifter/ecsforge"
)

// Position is a 2D location.
type Position struct {
	X, Y float64
}

// Velocity is a 2D per-tick displacement.
type Velocity struct {
	X, Y float64
}

// Bound is the respawn threshold on either axis, in either direction.
const Bound = 10

// RequiredIntegrate is the signature Integrate matches against.
func RequiredIntegrate() ecsforge.Signature {
	return ecsforge.MakeSignature(
		ecsforge.RegisterComponent[Position](),
		ecsforge.RegisterComponent[Velocity](),
	)
}

// RequiredPosition is the signature PrintPositions and Respawn match
// against.
func RequiredPosition() ecsforge.Signature {
	return ecsforge.MakeSignature(ecsforge.RegisterComponent[Position]())
}

// Integrate adds each entity's Velocity into its Position.
func Integrate(w *ecsforge.World, entity ecsforge.EntityID) {
	pos, _ := ecsforge.GetComponent[Position](w, entity)
	vel, _ := ecsforge.GetComponent[Velocity](w, entity)
	pos.X += vel.X
	pos.Y += vel.Y
}

// PrintPositions logs every entity's current Position.
func PrintPositions(w *ecsforge.World, entity ecsforge.EntityID) {
	pos, _ := ecsforge.GetComponent[Position](w, entity)
	log.Printf("entity %d: %.2f, %.2f", entity, pos.X, pos.Y)
}

// Respawn deletes any entity whose Position has drifted past Bound on
// either axis, replacing it with a fresh entity at (0, 1). The
// replacement is a brand-new entity, not a reset of the deleted one: a
// deleted entity's id is never reused.
func Respawn(w *ecsforge.World, entity ecsforge.EntityID) {
	pos, _ := ecsforge.GetComponent[Position](w, entity)
	if pos.X > Bound || pos.X < -Bound || pos.Y > Bound || pos.Y < -Bound {
		log.Printf("despawning %d", entity)
		replacement := w.Entity(w.NewEntity())
		ecsforge.Set(replacement, Position{X: 0, Y: 1})
		ecsforge.Set(replacement, Velocity{X: 1, Y: -0.5})
		w.Delete(entity)
	}
}
