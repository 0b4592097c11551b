// Package simulate implements the generic decision/expectation
// simulation protocol: a sample-based trajectory generator parametric in
// a user-supplied model that factors the usual one-step MDP transition
// into two halves (decision -> expectation, expectation -> decision) so
// that uncertainty over outcomes is observable in the collected samples.
//
// The protocol is independent of the rmdp package: any model satisfying
// Model[D, A, E] can be driven, whether or not its states/actions come
// from an *rmdp.RMDP.
package simulate

// Pair is the default expectation-state shape when a model has no
// richer notion of "after the action was chosen, before it resolved".
// The original C++ template defaults ExpState to pair<DecState,Action>;
// Go generics have no default type parameter, so callers wanting that
// default pass Pair[D, A] explicitly as E.
type Pair[D any, A any] struct {
	DecState D
	Action   A
}

// Model is the capability set a simulator needs from its environment,
// expressed as a value-typed interface rather than a vtable of function
// values: Go's generics monomorphize the instantiation, which is
// preferable when the inner loop is hot (spec.md §9).
type Model[D any, A any, E any] interface {
	// InitState draws an initial decision state.
	InitState() D
	// TransitionDec performs the deterministic decision -> expectation
	// transition given a chosen action.
	TransitionDec(d D, a A) E
	// TransitionExp performs the stochastic expectation -> decision
	// transition, producing a reward and the next decision state.
	TransitionExp(e E) (reward float64, next D)
	// EndCondition is the terminal test.
	EndCondition(d D) bool
	// Actions lists the legal actions at d, needed by random/value-based
	// external policies.
	Actions(d D) []A
}

// Policy chooses an action given the current decision state.
type Policy[D any, A any] func(d D) A
