package simulate

import (
	"testing"

	"golang.org/x/exp/rand"
)

// incrementModel implements Model[int, int, int] the way S6 describes:
// init_state = 0, transition_dec(d, a) = d (folded into a single int
// expstate so Pair isn't needed for this scenario), transition_exp(e) =
// (1.0, e+1), end_condition(d) = d >= 3, actions(d) = {0}.
type incrementModel struct{}

func (incrementModel) InitState() int { return 0 }

func (incrementModel) TransitionDec(d, a int) int { return d }

func (incrementModel) TransitionExp(e int) (float64, int) { return 1.0, e + 1 }

func (incrementModel) EndCondition(d int) bool { return d >= 3 }

func (incrementModel) Actions(d int) []int { return []int{0} }

func constantPolicy(d int) int { return 0 }

// S6.
func TestScenarioS6(t *testing.T) {
	samples := Simulate[int, int, int](incrementModel{}, constantPolicy, Options{
		Horizon:  10,
		Runs:     2,
		ProbTerm: 0,
	})

	if len(samples.Initial) != 2 {
		t.Fatalf("len(Initial) = %d, want 2", len(samples.Initial))
	}
	for _, d := range samples.Initial {
		if d != 0 {
			t.Fatalf("initial state = %d, want 0", d)
		}
	}

	for run := 0; run < 2; run++ {
		decCount, expCount := 0, 0
		lastDecstateTo := -1
		for _, s := range samples.DecSamples {
			if s.Run == run {
				decCount++
			}
		}
		for _, s := range samples.ExpSamples {
			if s.Run == run {
				expCount++
				if s.Reward != 1.0 {
					t.Fatalf("run %d: reward = %v, want 1.0", run, s.Reward)
				}
				lastDecstateTo = s.DecStateTo
			}
		}
		if decCount != 3 {
			t.Fatalf("run %d: %d DecSamples, want 3", run, decCount)
		}
		if expCount != 3 {
			t.Fatalf("run %d: %d ExpSamples, want 3", run, expCount)
		}
		if lastDecstateTo != 3 {
			t.Fatalf("run %d: final decstate = %d, want 3", run, lastDecstateTo)
		}
	}
}

// Property 8: |decsamples| == |expsamples| per run, one Initial entry
// per run, contiguous steps from 0.
func TestDecExpParityAndStepContiguity(t *testing.T) {
	samples := Simulate[int, int, int](incrementModel{}, constantPolicy, Options{
		Horizon: 10,
		Runs:    3,
	})
	if len(samples.Initial) != 3 {
		t.Fatalf("len(Initial) = %d, want 3", len(samples.Initial))
	}
	for run := 0; run < 3; run++ {
		var decSteps, expSteps []int
		for _, s := range samples.DecSamples {
			if s.Run == run {
				decSteps = append(decSteps, s.Step)
			}
		}
		for _, s := range samples.ExpSamples {
			if s.Run == run {
				expSteps = append(expSteps, s.Step)
			}
		}
		if len(decSteps) != len(expSteps) {
			t.Fatalf("run %d: %d dec samples != %d exp samples", run, len(decSteps), len(expSteps))
		}
		for i, step := range decSteps {
			if step != i {
				t.Fatalf("run %d: step %d at position %d, want contiguous from 0", run, step, i)
			}
		}
	}
}

// Property 9: transitions per run <= horizon.
func TestHorizonBound(t *testing.T) {
	const horizon = 2
	samples := Simulate[int, int, int](incrementModel{}, constantPolicy, Options{
		Horizon: horizon,
		Runs:    5,
	})
	for run := 0; run < 5; run++ {
		if n := samples.RunLength(run); n > horizon {
			t.Fatalf("run %d has %d transitions, want <= %d", run, n, horizon)
		}
	}
}

// unboundedModel never ends, to exercise TranLimit and the termination coin.
type unboundedModel struct{}

func (unboundedModel) InitState() int                     { return 0 }
func (unboundedModel) TransitionDec(d, a int) int          { return d }
func (unboundedModel) TransitionExp(e int) (float64, int)  { return 0, e + 1 }
func (unboundedModel) EndCondition(d int) bool             { return false }
func (unboundedModel) Actions(d int) []int                 { return []int{0} }

func TestTranLimitBoundsGlobalTransitions(t *testing.T) {
	samples := Simulate[int, int, int](unboundedModel{}, constantPolicy, Options{
		Horizon:   1000,
		Runs:      1000,
		TranLimit: 50,
	})
	total := len(samples.DecSamples)
	if total > 51 {
		// one run may finish its in-flight step after the cap is crossed
		// (the check is "> tran_limit", not ">="), but it must not run away.
		t.Fatalf("total transitions = %d, want roughly bounded by TranLimit=50", total)
	}
}

func TestProbTermStopsAfterFirstTransition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	samples := Simulate[int, int, int](unboundedModel{}, constantPolicy, Options{
		Horizon:  1000,
		Runs:     20,
		ProbTerm: 1.0, // always stop after the first transition
		Rand:     rng,
	})
	for run := 0; run < 20; run++ {
		if n := samples.RunLength(run); n != 1 {
			t.Fatalf("run %d has %d transitions, want exactly 1 with ProbTerm=1", run, n)
		}
	}
}
