package rng

// Generator provides random numbers for shuffling
type Generator interface {
	// Intn will return a random number in [0, n)
	Intn(n int) int
}
