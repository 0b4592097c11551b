package main

import (
	"golang.org/x/exp/rand"

	"github.com/zeu5/rmdp/rmdp"
	"github.com/zeu5/rmdp/simulate"
)

// rmdpModel adapts a built *rmdp.RMDP to simulate.Model[int, int,
// simulate.Pair[int,int]]: decision states and actions are their
// integer ids, and the expectation state is the (state, action) pair
// awaiting resolution, the Go stand-in for the original's default
// pair<DecState,Action> expectation state (see simulate.Pair).
type rmdpModel struct {
	m       *rmdp.RMDP
	rng     rand.Source
	initial int
}

func (r *rmdpModel) InitState() int {
	return r.initial
}

func (r *rmdpModel) TransitionDec(d int, a int) simulate.Pair[int, int] {
	return simulate.Pair[int, int]{DecState: d, Action: a}
}

func (r *rmdpModel) TransitionExp(e simulate.Pair[int, int]) (float64, int) {
	_, to, reward, err := r.m.Sample(e.DecState, e.Action, r.rng)
	if err != nil {
		return 0, e.DecState
	}
	return reward, to
}

func (r *rmdpModel) EndCondition(d int) bool {
	n, err := r.m.ActionCount(d)
	return err != nil || n == 0
}

func (r *rmdpModel) Actions(d int) []int {
	n, err := r.m.ActionCount(d)
	if err != nil {
		return nil
	}
	actions := make([]int, n)
	for i := range actions {
		actions[i] = i
	}
	return actions
}
