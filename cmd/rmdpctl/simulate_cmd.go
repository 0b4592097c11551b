package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/zeu5/rmdp/plot"
	"github.com/zeu5/rmdp/policies"
	"github.com/zeu5/rmdp/simulate"
	"github.com/zeu5/rmdp/store"
)

var (
	simHorizon   int
	simRuns      int
	simProbTerm  float64
	simTranLimit int
	simInitial   int
	simSeed      int64
	simPlotPath  string
	simRedisAddr string
	simRedisRun  string
)

func simulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Draw sample trajectories from a robust MDP under a uniform-random policy",
		Run:   runSimulate,
	}
	cmd.Flags().IntVar(&simHorizon, "horizon", 100, "maximum steps per run")
	cmd.Flags().IntVar(&simRuns, "runs", 10, "number of independent trajectories")
	cmd.Flags().Float64Var(&simProbTerm, "prob-term", 0, "per-step early-termination probability")
	cmd.Flags().IntVar(&simTranLimit, "tran-limit", 0, "cap on total transitions across all runs (0 disables)")
	cmd.Flags().IntVar(&simInitial, "initial", 0, "initial decision state id")
	cmd.Flags().Int64Var(&simSeed, "seed", 0, "RNG seed")
	cmd.Flags().StringVar(&simPlotPath, "plot", "", "write a cumulative-reward PNG to this path")
	cmd.Flags().StringVar(&simRedisAddr, "redis-addr", "", "persist samples to this Redis address instead of printing them")
	cmd.Flags().StringVar(&simRedisRun, "redis-prefix", "rmdpctl", "Redis key prefix used when --redis-addr is set")
	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) {
	m, err := loadModel()
	if err != nil {
		fatalf("load model: %v", err)
	}

	model := &rmdpModel{m: m, rng: rand.NewSource(uint64(simSeed)), initial: simInitial}
	policy := policies.UniformRandomSeeded[int, int](model.Actions, rand.NewSource(uint64(simSeed)))

	opts := simulate.Options{
		Horizon:   simHorizon,
		Runs:      simRuns,
		ProbTerm:  simProbTerm,
		TranLimit: simTranLimit,
		Rand:      rand.New(rand.NewSource(uint64(simSeed))),
	}
	samples := simulate.Simulate[int, int, simulate.Pair[int, int]](model, policy, opts)

	if simRedisAddr != "" {
		persistToRedis(samples)
	} else {
		printSamples(samples)
	}

	if simPlotPath != "" {
		if err := plot.RewardCurve(samples, simPlotPath); err != nil {
			fatalf("plot: %v", err)
		}
	}
}

func printSamples(samples *simulate.Samples[int, int, simulate.Pair[int, int]]) {
	for _, e := range samples.ExpSamples {
		fmt.Printf("run=%d step=%d state=%d action=%d reward=%g next=%d\n",
			e.Run, e.Step, e.ExpStateFrom.DecState, e.ExpStateFrom.Action, e.Reward, e.DecStateTo)
	}
}

func persistToRedis(samples *simulate.Samples[int, int, simulate.Pair[int, int]]) {
	w := store.NewWriter(simRedisAddr, simRedisRun)
	defer w.Close()

	ctx := context.Background()
	for _, d := range samples.DecSamples {
		if err := w.WriteDec(ctx, d.DecStateFrom, d.Action, d.ExpStateTo, d.Step, d.Run); err != nil {
			fatalf("write dec sample: %v", err)
		}
	}
	for _, e := range samples.ExpSamples {
		if err := w.WriteExp(ctx, e.ExpStateFrom, e.DecStateTo, e.Reward, e.Weight, e.Step, e.Run); err != nil {
			fatalf("write exp sample: %v", err)
		}
	}
}
