package ecsforge

// Shared component types for the internal (package ecsforge) test files.

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}
