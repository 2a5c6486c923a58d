package main

import (
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/daisyworld/config"
	"github.com/pthm-cable/daisyworld/game"
	"github.com/pthm-cable/daisyworld/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int
	seeds       []int64
	baseConfig  *config.Config
	statsWindow int

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: baseCfg.Telemetry.StatsWindow,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the results from a single simulation run.
type runResult struct {
	survivalTicks int                     // ticks before extinction (or maxTicks if survived)
	windowStats   []telemetry.WindowStats // collected via StatsCallback each window
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	quality float64
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	// Seeds are independent worlds
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			result, err := fe.runSimulation(cfg.Clone(), s)
			if err != nil {
				slog.Warn("evaluation failed", "seed", s, "error", err)
				results[idx] = seedResult{fitness: 0}
				return
			}
			quality := fe.computeQuality(result.windowStats, cfg)
			results[idx] = seedResult{
				fitness: computeFitness(result.survivalTicks, quality),
				quality: quality,
			}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
	}

	n := float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation executes a single headless run until extinction or maxTicks.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) (*runResult, error) {
	result := &runResult{}

	r, err := game.NewRunner(game.Options{
		Seed:        seed,
		Config:      cfg,
		StatsWindow: fe.statsWindow,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for r.Tick() < fe.maxTicks {
		if err := r.Update(); err != nil {
			return nil, err
		}
		if r.Population() == 0 {
			result.survivalTicks = r.Tick()
			return result, nil
		}
	}

	result.survivalTicks = fe.maxTicks
	return result, nil
}

// computeFitness calculates the scalar fitness (lower = better).
// Formula: -(survivalTicks × (1.0 + quality))
// Survival dominates; quality can at most double a run's score.
func computeFitness(survivalTicks int, quality float64) float64 {
	return -(float64(survivalTicks) * (1.0 + quality))
}

// Quality component weights.
const (
	qualityWeightComfort   = 0.50
	qualityWeightCoverage  = 0.25
	qualityWeightStability = 0.25

	qualityWarmupWindows = 2 // skip first N windows (warmup)
)

// computeQuality scores how well the daisies regulate their planet, in
// [0, 1]. Windows with no daisies contribute nothing.
func (fe *FitnessEvaluator) computeQuality(windows []telemetry.WindowStats, cfg *config.Config) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}
	valid := windows[qualityWarmupWindows:]

	// Comfort band the founders were configured with
	mid := (cfg.Daisy.TMin + cfg.Daisy.TMax) / 2
	halfBand := math.Max((cfg.Daisy.TMax-cfg.Daisy.TMin)/2, 1e-3)
	cells := float64(cfg.World.Width * cfg.World.Height)

	var comfortSum, coverageSum float64
	pops := make([]float64, 0, len(valid))

	for _, w := range valid {
		if w.Population == 0 {
			continue
		}
		dev := (w.MeanTemperature - mid) / halfBand
		comfortSum += math.Exp(-dev * dev)
		coverageSum += float64(w.Population) / cells
		pops = append(pops, float64(w.Population))
	}

	if len(pops) == 0 {
		return 0
	}
	n := float64(len(valid))

	stabilityScore := 0.0
	if len(pops) >= 2 {
		mean, std := stat.MeanStdDev(pops, nil)
		if mean > 0 {
			cv := std / mean
			stabilityScore = math.Exp(-cv * cv)
		}
	}

	quality := qualityWeightComfort*comfortSum/n +
		qualityWeightCoverage*coverageSum/n +
		qualityWeightStability*stabilityScore

	return clamp01(quality)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
