package simulate

// DecSample witnesses the transition from a decision state to an
// expectation state: a choice made under the policy.
type DecSample[D any, A any, E any] struct {
	DecStateFrom D
	Action       A
	ExpStateTo   E
	Step         int
	Run          int
}

// ExpSample witnesses the stochastic resolution of an expectation state
// into a reward and next decision state.
type ExpSample[D any, E any] struct {
	ExpStateFrom E
	DecStateTo   D
	Reward       float64
	Weight       float64
	Step         int
	Run          int
}

// Samples holds three ordered, append-only containers: the initial
// decision state of each run, every decision-sample, and every
// expectation-sample.
type Samples[D any, A any, E any] struct {
	Initial    []D
	DecSamples []DecSample[D, A, E]
	ExpSamples []ExpSample[D, E]
}

// NewSamples returns an empty Samples value.
func NewSamples[D any, A any, E any]() *Samples[D, A, E] {
	return &Samples[D, A, E]{}
}

func (s *Samples[D, A, E]) addInitial(d D) {
	s.Initial = append(s.Initial, d)
}

func (s *Samples[D, A, E]) addDec(sample DecSample[D, A, E]) {
	s.DecSamples = append(s.DecSamples, sample)
}

func (s *Samples[D, A, E]) addExp(sample ExpSample[D, E]) {
	s.ExpSamples = append(s.ExpSamples, sample)
}

// RunLength returns the number of decision-samples recorded for run.
// Used by tests to check step contiguity and dec/exp sample parity.
func (s *Samples[D, A, E]) RunLength(run int) int {
	n := 0
	for _, d := range s.DecSamples {
		if d.Run == run {
			n++
		}
	}
	return n
}
