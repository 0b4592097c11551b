package policies

import (
	"time"

	"github.com/zeu5/rmdp/simulate"
	"golang.org/x/exp/rand"
)

// UniformRandom returns a simulate.Policy that picks uniformly among the
// actions legal() reports for the current decision state. Ports
// types.RandomPolicy from the teacher project; generalized from raft
// states/actions to any D, A pair.
func UniformRandom[D any, A any](legal func(D) []A) simulate.Policy[D, A] {
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	return func(d D) A {
		actions := legal(d)
		return actions[rng.Intn(len(actions))]
	}
}

// UniformRandomSeeded is the deterministic variant of UniformRandom for
// tests and reproducible runs, taking an injected source instead of
// seeding from the clock.
func UniformRandomSeeded[D any, A any](legal func(D) []A, src rand.Source) simulate.Policy[D, A] {
	rng := rand.New(src)
	return func(d D) A {
		actions := legal(d)
		return actions[rng.Intn(len(actions))]
	}
}
