package policies

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestUniformRandomSeededIsDeterministic(t *testing.T) {
	actions := []string{"north", "south", "east", "west"}
	legal := func(d int) []string { return actions }

	p1 := UniformRandomSeeded[int, string](legal, rand.NewSource(123))
	p2 := UniformRandomSeeded[int, string](legal, rand.NewSource(123))

	for i := 0; i < 10; i++ {
		a1 := p1(0)
		a2 := p2(0)
		if a1 != a2 {
			t.Fatalf("step %d: %q != %q with identical seed", i, a1, a2)
		}
	}
}

func TestUniformRandomStaysWithinLegalActions(t *testing.T) {
	actions := []int{10, 20, 30}
	legal := func(d int) []int { return actions }
	p := UniformRandomSeeded[int, int](legal, rand.NewSource(5))

	for i := 0; i < 50; i++ {
		a := p(0)
		found := false
		for _, want := range actions {
			if a == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("policy returned %d, not among legal actions %v", a, actions)
		}
	}
}
