package mc

// Model interface to be satisfied by asset price processes used for simulation.
type Model interface {
	// Simulate a price path from s0 over the given timesteps (in years) using one
	// standard normal variate per step. The returned path has len(dt)+1 points.
	Path(s0 float64, dt, z []float64) []float64
	// Terminal price after time T driven by a single standard normal variate.
	Terminal(s0, T, z float64) float64
}
