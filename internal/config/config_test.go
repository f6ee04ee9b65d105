package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Ticks <= 0 {
		t.Error("ticks should be positive")
	}
	if cfg.RecordEvery <= 0 {
		t.Error("record_every should be positive")
	}
	if len(cfg.Bodies) != 0 {
		t.Error("default config should have no bodies")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("atom")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Bodies) != 3 {
		t.Fatalf("expected 3 bodies, got %d", len(cfg.Bodies))
	}
	if cfg.Bodies[1].SeedForce.Y != 0.05 {
		t.Errorf("expected seed 0.05, got %f", cfg.Bodies[1].SeedForce.Y)
	}
}

func TestGetPreset_Copy(t *testing.T) {
	cfg := GetPreset("atom")
	cfg.Bodies[0].Mass = 1
	cfg.Ticks = 1

	again := GetPreset("atom")
	if again.Bodies[0].Mass != 20000 || again.Ticks == 1 {
		t.Error("GetPreset returned shared storage")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	g := NewWithT(t)
	names := ListPresets()
	g.Expect(names).To(ContainElements("atom", "double_atom", "pair"))
	g.Expect(names).To(HaveLen(len(Presets)))
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
		want error
	}{
		{"no bodies", func(c *Config) { c.Bodies = nil }, ErrNoBodies},
		{"zero ticks", func(c *Config) { c.Ticks = 0 }, sim.ErrNoTicks},
		{"negative mass", func(c *Config) { c.Bodies[2].Mass = -1 }, ErrNegativeMass},
		{"coincident", func(c *Config) { c.Bodies[2].X, c.Bodies[2].Y = 500, 500 }, ErrCoincident},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetPreset("atom")
			tt.edit(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUniverse(t *testing.T) {
	g := NewWithT(t)
	u := GetPreset("atom").Universe()

	g.Expect(u.Len()).To(Equal(3))
	g.Expect(u.Ticks()).To(BeZero())

	b := u.Body(2)
	g.Expect(b.Pos).To(Equal(physics.Vec2{X: 460, Y: 500}))
	g.Expect(b.Force).To(Equal(physics.Vec2{Y: -0.05}))
	g.Expect(b.Charge).To(BeNumerically("~", -2e12*physics.ElementaryCharge, 1e-20))
}

func TestSaveLoad(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "atom.yaml")

	orig := GetPreset("atom")
	orig.ValidateState = true
	g.Expect(Save(path, orig)).To(Succeed())

	loaded, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(loaded).To(Equal(orig))
}

func TestLoad_Partial(t *testing.T) {
	g := NewWithT(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Expect(err).To(HaveOccurred())

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	g.Expect(os.WriteFile(bad, []byte("bodies: [\n"), 0644)).To(Succeed())
	_, err = Load(bad)
	g.Expect(err).To(MatchError(ContainSubstring("bad.yaml")))

	partial := filepath.Join(dir, "partial.yaml")
	g.Expect(os.WriteFile(partial, []byte("name: partial\nbodies:\n  - {x: 1, y: 2, mass: 3}\n"), 0644)).To(Succeed())
	cfg, err := Load(partial)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Name).To(Equal("partial"))
	g.Expect(cfg.Ticks).To(Equal(DefaultTicks))
	g.Expect(cfg.Bodies).To(Equal([]BodyConfig{{X: 1, Y: 2, Mass: 3}}))
}

func TestScatter(t *testing.T) {
	g := NewWithT(t)

	a := Scatter(9, 42)
	b := Scatter(9, 42)
	c := Scatter(9, 43)

	g.Expect(a.Bodies).To(HaveLen(9))
	g.Expect(a).To(Equal(b))
	g.Expect(a.Bodies).NotTo(Equal(c.Bodies))
	g.Expect(a.Validate()).To(Succeed())
	g.Expect(a.Bodies[0].Mass).To(Equal(20000.0))
	g.Expect(a.Bodies[0].Charge).To(Equal(2e12))
	g.Expect(a.Bodies[1].Mass).To(Equal(8000.0))
	g.Expect(a.Bodies[3].Mass).To(Equal(20000.0))
}
