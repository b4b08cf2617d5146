package ecsforge

// Config holds global tunables for the ECS core.
var Config config = config{
	growthCap: 1000,
}

type config struct {
	growthCap int
}

// SetGrowthCap overrides the maximum additive growth step a column takes
// when it fills up (min(cap/2, growthCap)). The default, 1000, matches
// the reference implementation.
func (c *config) SetGrowthCap(n int) {
	c.growthCap = n
}
