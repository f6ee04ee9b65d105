package config

import (
	"math"
	"math/rand"
	"sort"
)

// Presets are the built-in scenarios. GetPreset hands out deep copies.
var Presets = map[string]*Config{
	// one heavy positive nucleus with two light negative bodies either side,
	// seeded in opposite directions
	"atom": {
		Name: "atom", Ticks: 20000, RecordEvery: 50,
		Bodies: []BodyConfig{
			{X: 500, Y: 500, Mass: 20000, Charge: 2e12},
			{X: 540, Y: 500, Mass: 8000, Charge: -2e12, SeedForce: VecConfig{Y: 0.05}},
			{X: 460, Y: 500, Mass: 8000, Charge: -2e12, SeedForce: VecConfig{Y: -0.05}},
		},
	},
	"double_atom": {
		Name: "double_atom", Ticks: 20000, RecordEvery: 50,
		Bodies: []BodyConfig{
			{X: 500, Y: 500, Mass: 20000, Charge: 2e12},
			{X: 540, Y: 500, Mass: 8000, Charge: -2e12, SeedForce: VecConfig{Y: 0.05}},
			{X: 460, Y: 500, Mass: 8000, Charge: -2e12, SeedForce: VecConfig{Y: -0.05}},
			{X: 1600, Y: 500, Mass: 20000, Charge: 2e12},
			{X: 1640, Y: 500, Mass: 8000, Charge: -2e12, SeedForce: VecConfig{Y: 0.05}},
			{X: 1560, Y: 500, Mass: 8000, Charge: -2e12, SeedForce: VecConfig{Y: -0.05}},
		},
	},
	"neutral_atom": {
		Name: "neutral_atom", Ticks: 5000, RecordEvery: 10,
		Bodies: []BodyConfig{
			{X: 500, Y: 500, Mass: 20000},
			{X: 540, Y: 500, Mass: 8000, Charge: -2e12, SeedForce: VecConfig{Y: 0.05}},
			{X: 460, Y: 500, Mass: 8000, Charge: -2e12, SeedForce: VecConfig{Y: -0.05}},
		},
	},
	"pair": {
		Name: "pair", Ticks: 5000, RecordEvery: 10,
		Bodies: []BodyConfig{
			{X: 480, Y: 500, Mass: 8000, Charge: 2e12},
			{X: 520, Y: 500, Mass: 8000, Charge: -2e12},
		},
	},
	"neutral_binary": {
		Name: "neutral_binary", Ticks: 5000, RecordEvery: 10,
		Bodies: []BodyConfig{
			{X: 400, Y: 500, Mass: 1e9, SeedForce: VecConfig{Y: 0.02}},
			{X: 600, Y: 500, Mass: 1e9, SeedForce: VecConfig{Y: -0.02}},
		},
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	c.Bodies = append([]BodyConfig(nil), p.Bodies...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scatter places n bodies on a jittered ring around (500, 500). Every third
// body is a heavy nucleus; the rest alternate charge sign. The same seed
// always yields the same layout.
func Scatter(n int, seed int64) *Config {
	rng := rand.New(rand.NewSource(seed))
	cfg := DefaultConfig()
	cfg.Name = "scatter"
	cfg.Seed = seed
	cfg.Bodies = make([]BodyConfig, 0, n)

	for i := 0; i < n; i++ {
		angle := float64(i)*2*math.Pi/float64(n) + rng.Float64()*0.2
		radius := 60 + rng.Float64()*120

		b := BodyConfig{
			X:    500 + radius*math.Cos(angle),
			Y:    500 + radius*math.Sin(angle),
			Mass: 8000,
			SeedForce: VecConfig{
				X: -math.Sin(angle) * 0.05,
				Y: math.Cos(angle) * 0.05,
			},
		}
		switch {
		case i%3 == 0:
			b.Mass, b.Charge = 20000, 2e12
		case i%2 == 0:
			b.Charge = -2e12
		default:
			b.Charge = 2e12
		}
		cfg.Bodies = append(cfg.Bodies, b)
	}
	return cfg
}
