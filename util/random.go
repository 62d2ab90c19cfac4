package util

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NewSource returns a PCG source seeded with seed. Each caller owns its source;
// nothing in this module touches the package-level generator.
func NewSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}

// StdNormal returns a standard normal distribution drawing from its own source.
func StdNormal(seed uint64) distuv.Normal {
	return distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: NewSource(seed)}
}

// DeriveSeed maps (seed, stream) to a well mixed seed for an independent stream.
// Stream 0 returns seed unchanged so that a single-stream run uses the caller's seed.
func DeriveSeed(seed uint64, stream int) uint64 {
	if stream == 0 {
		return seed
	}
	// splitmix64 finaliser
	z := seed + uint64(stream)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
