// Package rmdp implements the data model for Robust Markov Decision
// Processes: sparse, incrementally built transition tensors with
// per-(state, action) outcome uncertainty sets, built with a grow-on-write
// policy so callers can stream edges without pre-declaring the state
// space.
package rmdp

import (
	"fmt"
	"strings"
)

// RMDP is the top-level container: an ordered collection of States,
// indexed by non-negative integer. Ownership is strict containment --
// RMDP owns States, which own Actions, which own Outcomes (Transitions);
// there are no cross-references.
type RMDP struct {
	states []State
}

// New returns an empty RMDP.
func New() *RMDP {
	return &RMDP{}
}

// StateCount returns the number of states.
func (m *RMDP) StateCount() int {
	return len(m.states)
}

// state grows the state vector to accommodate stateid, creating empty
// States for any gap, and returns a pointer to it.
func (m *RMDP) state(stateid int) *State {
	if stateid >= len(m.states) {
		grown := make([]State, stateid+1)
		copy(grown, m.states)
		m.states = grown
	}
	return &m.states[stateid]
}

func (m *RMDP) byID(stateid int) (*State, error) {
	if stateid < 0 || stateid >= len(m.states) {
		return nil, fmt.Errorf("%w: state %d", ErrInvalidIndex, stateid)
	}
	return &m.states[stateid], nil
}

func (m *RMDP) action(stateid, actionid int) (*Action, error) {
	s, err := m.byID(stateid)
	if err != nil {
		return nil, err
	}
	return s.byID(actionid)
}

func (m *RMDP) transition(stateid, actionid, outcomeid int) (*Transition, error) {
	a, err := m.action(stateid, actionid)
	if err != nil {
		return nil, err
	}
	return a.transition(outcomeid)
}

// ActionCount returns the number of actions at stateid.
func (m *RMDP) ActionCount(stateid int) (int, error) {
	s, err := m.byID(stateid)
	if err != nil {
		return 0, err
	}
	return s.ActionCount(), nil
}

// OutcomeCount returns the number of outcomes for (stateid, actionid).
func (m *RMDP) OutcomeCount(stateid, actionid int) (int, error) {
	a, err := m.action(stateid, actionid)
	if err != nil {
		return 0, err
	}
	return a.OutcomeCount(), nil
}

// TransitionCount returns the number of branches in the Transition at
// (stateid, actionid, outcomeid). Identical to SampleCount.
func (m *RMDP) TransitionCount(stateid, actionid, outcomeid int) (int, error) {
	t, err := m.transition(stateid, actionid, outcomeid)
	if err != nil {
		return 0, err
	}
	return t.Count(), nil
}

// SampleCount is an alias of TransitionCount, matching the two names the
// source uses for the same quantity.
func (m *RMDP) SampleCount(stateid, actionid, outcomeid int) (int, error) {
	return m.TransitionCount(stateid, actionid, outcomeid)
}

// GetReward reads one branch's reward.
func (m *RMDP) GetReward(stateid, actionid, outcomeid, sampleid int) (float64, error) {
	t, err := m.transition(stateid, actionid, outcomeid)
	if err != nil {
		return 0, err
	}
	return t.Reward(sampleid)
}

// GetProbability reads one branch's probability.
func (m *RMDP) GetProbability(stateid, actionid, outcomeid, sampleid int) (float64, error) {
	t, err := m.transition(stateid, actionid, outcomeid)
	if err != nil {
		return 0, err
	}
	return t.Probability(sampleid)
}

// GetToID reads one branch's successor state id.
func (m *RMDP) GetToID(stateid, actionid, outcomeid, sampleid int) (int, error) {
	t, err := m.transition(stateid, actionid, outcomeid)
	if err != nil {
		return 0, err
	}
	return t.ToID(sampleid)
}

// SetReward mutates one branch's reward.
func (m *RMDP) SetReward(stateid, actionid, outcomeid, sampleid int, reward float64) error {
	t, err := m.transition(stateid, actionid, outcomeid)
	if err != nil {
		return err
	}
	return t.SetReward(sampleid, reward)
}

// AddTransition grows the state/action/outcome containers as needed
// (grow-on-write) and appends one branch. max(stateid, tostateid)+1
// becomes the new state count when larger than the current one.
func (m *RMDP) AddTransition(stateid, actionid, outcomeid, tostateid int, probability, reward float64) error {
	if stateid < 0 {
		return fmt.Errorf("%w: state id %d is negative", ErrInvalidIndex, stateid)
	}
	if tostateid < 0 {
		return fmt.Errorf("%w: successor state id %d is negative", ErrInvalidIndex, tostateid)
	}
	if actionid < 0 {
		return fmt.Errorf("%w: action id %d is negative", ErrInvalidIndex, actionid)
	}
	if outcomeid < 0 {
		return fmt.Errorf("%w: outcome id %d is negative", ErrInvalidIndex, outcomeid)
	}

	newid := stateid
	if tostateid > newid {
		newid = tostateid
	}
	if newid >= len(m.states) {
		m.state(newid)
	}

	return m.states[stateid].AddAction(actionid, outcomeid, tostateid, probability, reward)
}

// AddTransitionD is shorthand for AddTransition(s, a, 0, s', p, r), the
// non-robust single-outcome case.
func (m *RMDP) AddTransitionD(stateid, actionid, tostateid int, probability, reward float64) error {
	return m.AddTransition(stateid, actionid, 0, tostateid, probability, reward)
}

// AddTransitions is the bulk version of AddTransition: all parallel
// slices must have equal length. The source iterates with an inclusive
// upper bound, which reads one element past the end of every input
// slice; this implementation uses the exclusive bound instead (see
// spec.md §9 / DESIGN.md).
func (m *RMDP) AddTransitions(fromids, actionids, outcomeids, toids []int, probs, rews []float64) error {
	n := len(fromids)
	if len(actionids) != n || len(outcomeids) != n || len(toids) != n || len(probs) != n || len(rews) != n {
		return fmt.Errorf("%w: parallel slices have lengths %d, %d, %d, %d, %d, %d",
			ErrShapeMismatch, n, len(actionids), len(outcomeids), len(toids), len(probs), len(rews))
	}
	for i := 0; i < n; i++ {
		if err := m.AddTransition(fromids[i], actionids[i], outcomeids[i], toids[i], probs[i], rews[i]); err != nil {
			return err
		}
	}
	return nil
}

// SetDistribution delegates to the Action at (stateid, actionid).
func (m *RMDP) SetDistribution(stateid, actionid int, dist []float64, threshold float64) error {
	a, err := m.action(stateid, actionid)
	if err != nil {
		return err
	}
	return a.SetDistribution(dist, threshold)
}

// SetThreshold sets a single action's threshold.
func (m *RMDP) SetThreshold(stateid, actionid int, threshold float64) error {
	a, err := m.action(stateid, actionid)
	if err != nil {
		return err
	}
	return a.SetThreshold(threshold)
}

// SetUniformThresholds broadcasts threshold to every action in the RMDP.
func (m *RMDP) SetUniformThresholds(threshold float64) error {
	for i := range m.states {
		if err := m.states[i].SetThresholds(threshold); err != nil {
			return err
		}
	}
	return nil
}

// SetUniformDistribution sets, for every action, the distribution to
// uniform over its current outcomes and the threshold to t.
func (m *RMDP) SetUniformDistribution(t float64) error {
	if t < 0 || t > MaxThreshold {
		return fmt.Errorf("%w: threshold %v not in [0, %v]", ErrOutOfRange, t, MaxThreshold)
	}
	for i := range m.states {
		for j := range m.states[i].actions {
			if err := m.states[i].actions[j].setUniformDistribution(t); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsNormalized reports whether all leaf Transitions are normalized.
func (m *RMDP) IsNormalized() bool {
	for i := range m.states {
		for j := range m.states[i].actions {
			for k := range m.states[i].actions[j].outcomes {
				if !m.states[i].actions[j].outcomes[k].IsNormalized() {
					return false
				}
			}
		}
	}
	return true
}

// Normalize normalizes every leaf Transition. Empty Transitions (no
// branches at all) are skipped rather than treated as an error; a
// Transition whose branches sum to zero probability still fails with
// ErrEmptyDistribution.
func (m *RMDP) Normalize() error {
	for i := range m.states {
		for j := range m.states[i].actions {
			for k := range m.states[i].actions[j].outcomes {
				t := &m.states[i].actions[j].outcomes[k]
				if t.Count() == 0 {
					continue
				}
				if err := t.Normalize(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Copy returns a deep, independent duplicate of the RMDP.
func (m *RMDP) Copy() *RMDP {
	out := &RMDP{states: make([]State, len(m.states))}
	for i := range m.states {
		out.states[i] = m.states[i].copy()
	}
	return out
}

// String returns a human-readable summary: one line per state giving
// its action count, one indented line per action giving
// outcome_count / distribution_size.
func (m *RMDP) String() string {
	var b strings.Builder
	for i := range m.states {
		actions := m.states[i].actions
		fmt.Fprintf(&b, "%d : %d\n", i, len(actions))
		for j := range actions {
			fmt.Fprintf(&b, "    %d : %d / %d\n", j, actions[j].OutcomeCount(), actions[j].DistributionSize())
		}
	}
	return b.String()
}
