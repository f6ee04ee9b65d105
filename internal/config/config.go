package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTicks       = 2000
	DefaultRecordEvery = 10
)

var (
	ErrNoBodies      = errors.New("config: scenario has no bodies")
	ErrCoincident    = errors.New("config: two bodies share a position")
	ErrNegativeMass  = errors.New("config: negative mass")
	ErrUnknownPreset = errors.New("config: unknown preset")
)

type Config struct {
	Name          string       `yaml:"name"`
	Ticks         int          `yaml:"ticks"`
	RecordEvery   int          `yaml:"record_every"`
	ValidateState bool         `yaml:"validate_state"`
	Seed          int64        `yaml:"seed"`
	Bodies        []BodyConfig `yaml:"bodies"`
}

// BodyConfig describes one body. Charge is a count of elementary charges.
type BodyConfig struct {
	X         float64   `yaml:"x"`
	Y         float64   `yaml:"y"`
	Mass      float64   `yaml:"mass"`
	Charge    float64   `yaml:"charge"`
	SeedForce VecConfig `yaml:"seed_force,omitempty"`
}

type VecConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (b BodyConfig) Body() physics.Body {
	return physics.NewBody(b.X, b.Y, b.Mass, b.Charge).WithSeed(physics.Vec2{X: b.SeedForce.X, Y: b.SeedForce.Y})
}

func DefaultConfig() *Config {
	return &Config{
		Name:        "custom",
		Ticks:       DefaultTicks,
		RecordEvery: DefaultRecordEvery,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects layouts the force laws cannot evaluate. The physics core
// itself never checks; this only guards scenario files.
func (c *Config) Validate() error {
	if len(c.Bodies) == 0 {
		return ErrNoBodies
	}
	if c.Ticks <= 0 {
		return fmt.Errorf("%w, got %d", sim.ErrNoTicks, c.Ticks)
	}
	seen := make(map[VecConfig]int, len(c.Bodies))
	for i, b := range c.Bodies {
		if b.Mass < 0 {
			return fmt.Errorf("%w: body %d has mass %g", ErrNegativeMass, i, b.Mass)
		}
		p := VecConfig{b.X, b.Y}
		if j, ok := seen[p]; ok {
			return fmt.Errorf("%w: bodies %d and %d at (%g, %g)", ErrCoincident, j, i, b.X, b.Y)
		}
		seen[p] = i
	}
	return nil
}

// Universe builds a fresh universe holding the configured bodies in order.
func (c *Config) Universe() *physics.Universe {
	u := physics.New()
	for _, b := range c.Bodies {
		u.AddBody(b.Body())
	}
	return u
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Ticks:         c.Ticks,
		RecordEvery:   c.RecordEvery,
		Seed:          c.Seed,
		ValidateState: c.ValidateState,
	}
}
