package policies

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// EpsilonGreedy is a tabular Q-learning policy generalized from the
// teacher project's policies.BonusPolicyGreedy / types.SoftMaxNegPolicy:
// with probability Epsilon it picks a uniformly random legal action,
// otherwise it picks the highest-valued action in its QTable for the
// current state (ties go to the action listed first among the legal
// actions). Update applies a standard one-step Q-learning backup.
type EpsilonGreedy[D any, A any] struct {
	qTable  *QTable
	alpha   float64
	gamma   float64
	epsilon float64
	rand    *rand.Rand

	hashState  func(D) string
	hashAction func(A) string
}

// NewEpsilonGreedy builds an EpsilonGreedy policy. hashState/hashAction
// must render a decision state / action to a stable string key -- the
// same role types.State.Hash()/types.Action.Hash() play in the teacher.
func NewEpsilonGreedy[D any, A any](alpha, gamma, epsilon float64, hashState func(D) string, hashAction func(A) string) *EpsilonGreedy[D, A] {
	return &EpsilonGreedy[D, A]{
		qTable:     NewQTable(),
		alpha:      alpha,
		gamma:      gamma,
		epsilon:    epsilon,
		rand:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		hashState:  hashState,
		hashAction: hashAction,
	}
}

// WithSource replaces the policy's RNG, making action selection
// reproducible given a seeded source (spec.md §9's injectable-seed note).
func (p *EpsilonGreedy[D, A]) WithSource(src rand.Source) *EpsilonGreedy[D, A] {
	p.rand = rand.New(src)
	return p
}

// NextAction implements simulate.Policy's shape when partially applied:
// given the legal actions at d, picks one.
func (p *EpsilonGreedy[D, A]) NextAction(d D, actions []A) A {
	if p.rand.Float64() < p.epsilon {
		return actions[p.rand.Intn(len(actions))]
	}

	stateHash := p.hashState(d)
	actionsByHash := make(map[string]A, len(actions))
	hashes := make([]string, len(actions))
	for i, a := range actions {
		h := p.hashAction(a)
		hashes[i] = h
		actionsByHash[h] = a
	}
	best, _ := p.qTable.MaxAmong(stateHash, hashes, 0)
	if best == "" {
		return actions[p.rand.Intn(len(actions))]
	}
	return actionsByHash[best]
}

// Update applies a one-step Q-learning backup for the observed
// transition (d, a, reward, next), with legalNext the actions available
// at next (used to bound the bootstrap).
func (p *EpsilonGreedy[D, A]) Update(d D, a A, reward float64, next D, legalNext []A) {
	stateHash := p.hashState(d)
	actionHash := p.hashAction(a)

	nextBest := 0.0
	if len(legalNext) > 0 {
		nextHashes := make([]string, len(legalNext))
		for i, na := range legalNext {
			nextHashes[i] = p.hashAction(na)
		}
		_, nextBest = p.qTable.MaxAmong(p.hashState(next), nextHashes, 0)
	}

	cur := p.qTable.Get(stateHash, actionHash, 0)
	updated := (1-p.alpha)*cur + p.alpha*(reward+p.gamma*nextBest)
	p.qTable.Set(stateHash, actionHash, updated)
}

// Softmax is the Boltzmann-exploration counterpart of EpsilonGreedy,
// ported from the teacher's policies.BonusPolicySoftMax /
// types.SoftMaxNegPolicy: action probabilities are proportional to
// exp(Q(s,a)/temperature), sampled with
// gonum.org/v1/gonum/stat/sampleuv.NewWeighted.
type Softmax[D any, A any] struct {
	qTable      *QTable
	temperature float64
	rand        rand.Source

	hashState  func(D) string
	hashAction func(A) string
}

// NewSoftmax builds a Softmax policy sharing the same hashing contract
// as EpsilonGreedy.
func NewSoftmax[D any, A any](temperature float64, hashState func(D) string, hashAction func(A) string) *Softmax[D, A] {
	return &Softmax[D, A]{
		qTable:      NewQTable(),
		temperature: temperature,
		rand:        rand.NewSource(uint64(time.Now().UnixNano())),
		hashState:   hashState,
		hashAction:  hashAction,
	}
}

// WithSource replaces the policy's RNG source.
func (p *Softmax[D, A]) WithSource(src rand.Source) *Softmax[D, A] {
	p.rand = src
	return p
}

// NextAction samples an action with probability proportional to
// exp(Q(s,a)/temperature). Returns false if weights degenerate (e.g. no
// actions).
func (p *Softmax[D, A]) NextAction(d D, actions []A) (A, bool) {
	var zero A
	if len(actions) == 0 {
		return zero, false
	}
	stateHash := p.hashState(d)

	weights := make([]float64, len(actions))
	sum := 0.0
	for i, a := range actions {
		val := p.qTable.Get(stateHash, p.hashAction(a), 1) / p.temperature
		weights[i] = math.Exp(val)
		sum += weights[i]
	}
	for i := range weights {
		weights[i] /= sum
	}

	i, ok := sampleuv.NewWeighted(weights, p.rand).Take()
	if !ok {
		return zero, false
	}
	return actions[i], true
}

// QTable exposes the backing table so callers can share it across
// EpsilonGreedy and Softmax instances, or persist/inspect it directly.
func (p *EpsilonGreedy[D, A]) QTable() *QTable { return p.qTable }
func (p *Softmax[D, A]) QTable() *QTable       { return p.qTable }
