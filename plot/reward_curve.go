// Package plot renders collected simulation samples to PNG figures,
// following the plotting idiom of the teacher's raft/rl_util.go
// RaftPlotComparator: build a *plot.Plot, add one plotter.Line per
// series colored via plotutil.Color, then Save to disk.
package plot

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/zeu5/rmdp/simulate"
)

// RewardCurve plots cumulative reward over step index, one line per
// run, to path. It is the analog of RaftPlotComparator's per-experiment
// coverage line, with "states covered" replaced by "cumulative reward"
// and "experiment" replaced by "run".
func RewardCurve[D any, A any, E any](samples *simulate.Samples[D, A, E], path string) error {
	byRun := make(map[int][]simulate.ExpSample[D, E])
	for _, s := range samples.ExpSamples {
		byRun[s.Run] = append(byRun[s.Run], s)
	}
	if len(byRun) == 0 {
		return fmt.Errorf("plot: no expectation samples to plot")
	}

	runs := make([]int, 0, len(byRun))
	for run := range byRun {
		runs = append(runs, run)
	}
	sort.Ints(runs)

	p := plot.New()
	p.Title.Text = "Cumulative reward"
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Cumulative reward"

	for i, run := range runs {
		exps := byRun[run]
		sort.Slice(exps, func(a, b int) bool { return exps[a].Step < exps[b].Step })

		points := make(plotter.XYs, len(exps))
		cum := 0.0
		for j, e := range exps {
			cum += e.Reward
			points[j] = plotter.XY{X: float64(e.Step), Y: cum}
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			continue
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("run %d", run), line)
	}

	return p.Save(8*vg.Inch, 8*vg.Inch, path)
}
