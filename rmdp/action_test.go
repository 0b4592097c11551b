package rmdp

import (
	"errors"
	"testing"
)

func TestActionAddOutcomeGrows(t *testing.T) {
	var a Action
	if err := a.AddOutcome(2, 5, 1.0, 0.0); err != nil {
		t.Fatalf("AddOutcome returned error: %v", err)
	}
	if a.OutcomeCount() != 3 {
		t.Fatalf("OutcomeCount = %d, want 3 (outcomes 0,1 created empty)", a.OutcomeCount())
	}
	tr, err := a.transition(0)
	if err != nil {
		t.Fatalf("transition(0) error: %v", err)
	}
	if tr.Count() != 0 {
		t.Fatalf("gap outcome 0 should be empty, has %d branches", tr.Count())
	}
}

func TestActionSetDistributionValidates(t *testing.T) {
	var a Action
	a.AddOutcome(0, 0, 0.5, 0)
	a.AddOutcome(1, 1, 0.5, 0)

	if err := a.SetDistribution([]float64{1.0}, 0.1); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("SetDistribution with wrong length error = %v, want ErrShapeMismatch", err)
	}
	if err := a.SetDistribution([]float64{0.6, 0.6}, 0.1); !errors.Is(err, ErrNotNormalized) {
		t.Fatalf("SetDistribution with bad sum error = %v, want ErrNotNormalized", err)
	}
	if err := a.SetDistribution([]float64{0.5, 0.5}, 2.5); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetDistribution with threshold 2.5 error = %v, want ErrOutOfRange", err)
	}
	if err := a.SetDistribution([]float64{-0.5, 1.5}, 0.1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetDistribution with negative entry error = %v, want ErrOutOfRange", err)
	}
	if err := a.SetDistribution([]float64{0.5, 0.5}, 0.1); err != nil {
		t.Fatalf("valid SetDistribution returned error: %v", err)
	}
	if a.DistributionSize() != 2 {
		t.Fatalf("DistributionSize = %d, want 2", a.DistributionSize())
	}
}

func TestActionSetThresholdRange(t *testing.T) {
	var a Action
	if err := a.SetThreshold(-0.1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetThreshold(-0.1) error = %v, want ErrOutOfRange", err)
	}
	if err := a.SetThreshold(2.5); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetThreshold(2.5) error = %v, want ErrOutOfRange", err)
	}
	if err := a.SetThreshold(0); err != nil {
		t.Fatalf("SetThreshold(0) error: %v", err)
	}
	if err := a.SetThreshold(MaxThreshold); err != nil {
		t.Fatalf("SetThreshold(MaxThreshold) error: %v", err)
	}
}

func TestActionSetUniformDistribution(t *testing.T) {
	var a Action
	a.AddOutcome(0, 0, 1.0, 0)
	a.AddOutcome(1, 1, 1.0, 0)
	a.AddOutcome(2, 2, 1.0, 0)

	if err := a.setUniformDistribution(0.5); err != nil {
		t.Fatalf("setUniformDistribution returned error: %v", err)
	}
	dist := a.Distribution()
	if len(dist) != 3 {
		t.Fatalf("Distribution length = %d, want 3", len(dist))
	}
	for _, p := range dist {
		if diffAbs(p, 1.0/3.0) > 1e-9 {
			t.Fatalf("entry %v, want 1/3", p)
		}
	}
	if a.Threshold() != 0.5 {
		t.Fatalf("Threshold = %v, want 0.5", a.Threshold())
	}
}

func TestActionCopyIndependence(t *testing.T) {
	var a Action
	a.AddOutcome(0, 0, 1.0, 2.0)
	a.SetDistribution([]float64{1.0}, 0.5)

	b := a.copy()
	b.AddOutcome(0, 1, 1.0, 3.0)
	b.SetThreshold(1.0)

	if a.OutcomeCount() != 1 {
		t.Fatalf("original action mutated after copy: OutcomeCount = %d", a.OutcomeCount())
	}
	if a.Threshold() != 0.5 {
		t.Fatalf("original action threshold mutated after copy: %v", a.Threshold())
	}
}
