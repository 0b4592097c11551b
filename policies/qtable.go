// Package policies provides simulate.Policy implementations that plug
// into simulate.Simulate, generalized from the teacher project's
// raft-state-hash Q-learning policies to arbitrary hashable decision
// states and actions.
package policies

import "math"

// QTable is a string-keyed, two-level value table: state hash -> action
// hash -> running estimate. It has no notion of rmdp or simulate types
// itself, so it can back a policy over any domain whose states/actions
// can be rendered to a stable string key.
type QTable struct {
	table map[string]map[string]float64
}

// NewQTable returns an empty QTable.
func NewQTable() *QTable {
	return &QTable{table: make(map[string]map[string]float64)}
}

// Get returns the stored value for (state, action), seeding it with def
// on first access.
func (q *QTable) Get(state, action string, def float64) float64 {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	if _, ok := q.table[state][action]; !ok {
		q.table[state][action] = def
	}
	return q.table[state][action]
}

// Set overwrites the stored value for (state, action).
func (q *QTable) Set(state, action string, val float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	q.table[state][action] = val
}

// HasState reports whether state has ever been seen.
func (q *QTable) HasState(state string) bool {
	_, ok := q.table[state]
	return ok
}

// Max returns the highest-valued action seen for state, or ("", def) if
// state has no entries.
func (q *QTable) Max(state string, def float64) (string, float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
		return "", def
	}
	maxAction := ""
	maxVal := math.Inf(-1)
	for a, val := range q.table[state] {
		if val > maxVal {
			maxAction = a
			maxVal = val
		}
	}
	if maxAction == "" {
		return "", def
	}
	return maxAction, maxVal
}

// MaxAmong returns the highest-valued action among actions for state,
// seeding any unseen (state, action) pair with def first.
func (q *QTable) MaxAmong(state string, actions []string, def float64) (string, float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	maxAction := ""
	maxVal := math.Inf(-1)
	for _, a := range actions {
		if _, ok := q.table[state][a]; !ok {
			q.table[state][a] = def
		}
		val := q.table[state][a]
		if val > maxVal {
			maxAction = a
			maxVal = val
		}
	}
	return maxAction, maxVal
}
