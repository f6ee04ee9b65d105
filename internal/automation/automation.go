package automation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/optim"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/storage"
	"gopkg.in/yaml.v3"
)

var ErrEmptyStep = errors.New("automation: step names neither a preset nor a config file")

// Plan is a scripted sequence of runs.
type Plan struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`

	dir string
}

// Step is one run in a plan. Config paths are relative to the plan file.
type Step struct {
	Preset      string             `yaml:"preset"`
	Config      string             `yaml:"config"`
	Ticks       int                `yaml:"ticks"`
	RecordEvery int                `yaml:"record_every"`
	Validate    bool               `yaml:"validate"`
	Params      map[string]float64 `yaml:"params"`
	SaveAs      string             `yaml:"save_as"`
}

// LoadPlan loads a plan from a YAML file
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	plan.dir = filepath.Dir(path)

	return &plan, nil
}

// Scenario resolves the step into a validated scenario.
func (p *Plan) Scenario(step Step) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case step.Config != "":
		path := step.Config
		if !filepath.IsAbs(path) && p.dir != "" {
			path = filepath.Join(p.dir, path)
		}
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case step.Preset != "":
		cfg = config.GetPreset(step.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: %s", config.ErrUnknownPreset, step.Preset)
		}
	default:
		return nil, ErrEmptyStep
	}

	if err := optim.Apply(cfg, step.Params); err != nil {
		return nil, err
	}
	if step.Ticks > 0 {
		cfg.Ticks = step.Ticks
	}
	if step.RecordEvery > 0 {
		cfg.RecordEvery = step.RecordEvery
	}
	if step.Validate {
		cfg.ValidateState = true
	}
	if step.SaveAs != "" {
		cfg.Name = step.SaveAs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StepResult pairs a finished step with the run it was stored under.
type StepResult struct {
	Step   int
	RunID  string
	Result *sim.Result
}

// RunPlan executes all steps in order, storing each run in st. It stops at the
// first failing step and returns the steps completed so far.
func RunPlan(ctx context.Context, plan *Plan, st *storage.Store, progress func(step, total int, name string)) ([]StepResult, error) {
	results := make([]StepResult, 0, len(plan.Steps))

	for i, step := range plan.Steps {
		cfg, err := plan.Scenario(step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		if progress != nil {
			progress(i+1, len(plan.Steps), cfg.Name)
		}

		s := sim.New(cfg.Universe())
		for _, m := range metrics.Default() {
			s.AddMetric(m)
		}

		result, err := s.Run(ctx, cfg.SimConfig())
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		runID, err := st.Save(cfg, result)
		if err != nil {
			return results, fmt.Errorf("step %d save: %w", i+1, err)
		}

		results = append(results, StepResult{Step: i + 1, RunID: runID, Result: result})
	}

	return results, nil
}

// MonteCarloConfig defines Monte Carlo simulation parameters
type MonteCarloConfig struct {
	Base *config.Config
	// Jitter is the half-width of the uniform offset added to each body's
	// starting X and Y.
	Jitter    float64
	NumTrials int
	Seed      int64
	// Radius bounds how far a body may wander from its start and still
	// count as stable.
	Radius   float64
	Progress func(done, total int)
}

// MonteCarloResult holds the outcome of one jittered trial
type MonteCarloResult struct {
	TrialID   int
	Offsets   []physics.Vec2
	Final     []physics.Body
	Stability float64
	Stable    bool
}

// RunMonteCarlo runs the base scenario NumTrials times with random offsets on
// every starting position.
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig) ([]MonteCarloResult, error) {
	results := make([]MonteCarloResult, 0, cfg.NumTrials)

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for trial := 0; trial < cfg.NumTrials; trial++ {
		offsets := make([]physics.Vec2, len(cfg.Base.Bodies))
		u := physics.New()
		for i, b := range cfg.Base.Bodies {
			offsets[i] = physics.Vec2{
				X: (rng.Float64() - 0.5) * 2 * cfg.Jitter,
				Y: (rng.Float64() - 0.5) * 2 * cfg.Jitter,
			}
			body := b.Body()
			body.Pos = body.Pos.Add(offsets[i])
			u.AddBody(body)
		}

		stability := metrics.NewStability(cfg.Radius)
		invalid := metrics.NewInvalidBodies()
		s := sim.New(u)
		s.AddMetric(stability)
		s.AddMetric(invalid)

		result, err := s.Run(ctx, sim.Config{Ticks: cfg.Base.Ticks, RecordEvery: cfg.Base.Ticks})
		if err != nil {
			return results, fmt.Errorf("trial %d: %w", trial, err)
		}

		stab := result.Metrics[stability.Name()]
		results = append(results, MonteCarloResult{
			TrialID:   trial,
			Offsets:   offsets,
			Final:     result.Final().Bodies,
			Stability: stab,
			Stable:    stab == 1 && result.Metrics[invalid.Name()] == 0,
		})

		if cfg.Progress != nil {
			cfg.Progress(trial+1, cfg.NumTrials)
		}
	}

	return results, nil
}

// MonteCarloStats computes summary statistics from Monte Carlo results
func MonteCarloStats(results []MonteCarloResult) (stableCount int, unstableCount int) {
	for _, r := range results {
		if r.Stable {
			stableCount++
		} else {
			unstableCount++
		}
	}
	return
}
