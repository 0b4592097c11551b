package simulate

import "golang.org/x/exp/rand"

// Options configures a Simulate run. A zero value disables the
// termination coin (ProbTerm 0) and the global transition cap
// (TranLimit 0 is treated as "no cap", matching TranLimit < 0 in the
// source -- spec.md leaves 0 itself unconstrained so either spelling
// works; callers wanting no cap should use a negative value or leave it
// unset, both behave identically here).
type Options struct {
	// Horizon bounds the number of steps per run.
	Horizon int
	// Runs is the number of independent trajectories to draw.
	Runs int
	// ProbTerm is the per-step survival-test probability: after at least
	// one transition has been recorded in a run, a uniform draw <=
	// ProbTerm stops that run early. 0 disables the test.
	ProbTerm float64
	// TranLimit caps the total number of transitions recorded across all
	// runs; <= 0 disables the cap.
	TranLimit int
	// Rand is the RNG used for the termination coin. Injectable so
	// callers can make a run reproducible (spec.md §9); a nil Rand
	// sources its own default.
	Rand *rand.Rand
}

// Simulate runs model for opts.Runs independent trajectories of up to
// opts.Horizon steps each, choosing actions with policy, and returns the
// collected samples. It implements the simulate_stateless algorithm of
// spec.md §4.5 exactly, including the order in which the termination
// coin is tested: only after at least one transition has been recorded
// in the current run, and after the transition counter that feeds
// TranLimit, not before (spec.md §9 -- preserve this ordering exactly,
// it affects the distribution of sampled trajectory lengths).
//
// Simulate never fails on its own account: any panic originates in the
// caller-supplied model or policy and propagates unchanged.
func Simulate[D any, A any, E any](model Model[D, A, E], policy Policy[D, A], opts Options) *Samples[D, A, E] {
	samples := NewSamples[D, A, E]()

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}

	transitions := 0

runs:
	for run := 0; run < opts.Runs; run++ {
		d := model.InitState()
		samples.addInitial(d)

		for step := 0; step < opts.Horizon; step++ {
			if model.EndCondition(d) {
				continue runs
			}
			if opts.TranLimit > 0 && transitions > opts.TranLimit {
				break runs
			}

			a := policy(d)
			e := model.TransitionDec(d, a)
			samples.addDec(DecSample[D, A, E]{
				DecStateFrom: d,
				Action:       a,
				ExpStateTo:   e,
				Step:         step,
				Run:          run,
			})

			reward, next := model.TransitionExp(e)
			samples.addExp(ExpSample[D, E]{
				ExpStateFrom: e,
				DecStateTo:   next,
				Reward:       reward,
				Weight:       1.0,
				Step:         step,
				Run:          run,
			})
			d = next
			transitions++

			// The termination coin is tested only after at least one
			// transition has been recorded this run and counted, and
			// before the step counter advances -- this ordering is load
			// bearing, it shapes the distribution of trajectory
			// lengths (spec.md §9).
			if opts.ProbTerm > 0 {
				if rng.Float64() <= opts.ProbTerm {
					continue runs
				}
			}
		}

		if opts.TranLimit > 0 && transitions > opts.TranLimit {
			break runs
		}
	}

	return samples
}
