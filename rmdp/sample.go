package rmdp

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Sample draws one outcome for action (stateid, actionid) -- from its
// nominal distribution if set, uniformly over outcomes otherwise -- and
// then one branch of that outcome's Transition from its probabilities,
// following the same weighted-sampling idiom the policies package's
// Softmax uses (gonum.org/v1/gonum/stat/sampleuv.NewWeighted). It is a convenience for
// driving ad-hoc rollouts over a built RMDP; it samples the nominal
// mixing distribution, never the adversarial ball the threshold bounds --
// solving the robust inner problem stays out of scope for this package.
func (m *RMDP) Sample(stateid, actionid int, rng rand.Source) (outcomeid, toID int, reward float64, err error) {
	a, err := m.action(stateid, actionid)
	if err != nil {
		return 0, 0, 0, err
	}
	if a.OutcomeCount() == 0 {
		return 0, 0, 0, fmt.Errorf("%w: action (%d, %d) has no outcomes", ErrInvalidIndex, stateid, actionid)
	}

	weights := a.distribution
	if len(weights) == 0 {
		weights = make([]float64, a.OutcomeCount())
		p := 1.0 / float64(len(weights))
		for i := range weights {
			weights[i] = p
		}
	}

	oi, ok := sampleuv.NewWeighted(weights, rng).Take()
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: failed to sample outcome for action (%d, %d)", ErrEmptyDistribution, stateid, actionid)
	}

	t := &a.outcomes[oi]
	if t.Count() == 0 {
		return 0, 0, 0, fmt.Errorf("%w: outcome (%d, %d, %d) has no branches", ErrInvalidIndex, stateid, actionid, oi)
	}
	bi, ok := sampleuv.NewWeighted(t.probabilities, rng).Take()
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: failed to sample branch for outcome (%d, %d, %d)", ErrEmptyDistribution, stateid, actionid, oi)
	}

	return oi, t.indices[bi], t.rewards[bi], nil
}
