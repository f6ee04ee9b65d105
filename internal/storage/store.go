package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	scenarioFile = "scenario.yaml"
	framesFile   = "frames.csv"
)

var ErrMalformed = errors.New("storage: malformed frames file")

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Scenario    string             `json:"scenario"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Ticks       int                `json:"ticks"`
	RecordEvery int                `json:"record_every"`
	TicksTaken  int                `json:"ticks_taken"`
	NumBodies   int                `json:"num_bodies"`
	Metrics     map[string]float64 `json:"metrics"`
	Errors      []string           `json:"errors,omitempty"`
}

// Save writes a run directory holding metadata.json, the scenario that
// produced the run, and one CSV row per recorded frame. A run that fails
// part way leaves no directory behind.
func (s *Store) Save(cfg *config.Config, result *sim.Result) (string, error) {
	now := s.now()
	runID, runDir, err := s.makeRunDir(cfg.Name, now)
	if err != nil {
		return "", err
	}
	if err := writeRun(runDir, runID, now, cfg, result); err != nil {
		os.RemoveAll(runDir)
		return "", fmt.Errorf("save run %s: %w", runID, err)
	}
	return runID, nil
}

func writeRun(runDir, runID string, now time.Time, cfg *config.Config, result *sim.Result) error {
	meta := RunMetadata{
		ID:          runID,
		Scenario:    cfg.Name,
		Timestamp:   now,
		Seed:        cfg.Seed,
		Ticks:       cfg.Ticks,
		RecordEvery: cfg.RecordEvery,
		TicksTaken:  result.TicksTaken,
		NumBodies:   len(cfg.Bodies),
		Metrics:     jsonSafe(result.Metrics),
	}
	for _, e := range result.Errors {
		meta.Errors = append(meta.Errors, e.Error())
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return err
	}
	if err := config.Save(filepath.Join(runDir, scenarioFile), cfg); err != nil {
		return err
	}
	return writeFrames(filepath.Join(runDir, framesFile), result.Frames)
}

func (s *Store) makeRunDir(name string, now time.Time) (string, string, error) {
	if err := s.Init(); err != nil {
		return "", "", err
	}
	base := fmt.Sprintf("%s_%d", name, now.Unix())
	runID := base
	for i := 1; ; i++ {
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
		runID = fmt.Sprintf("%s-%d", base, i)
	}
}

// jsonSafe replaces values encoding/json cannot represent. MinSeparation is
// +Inf for single-body runs and NaN reaches metrics when bodies coincide.
func jsonSafe(metrics map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(metrics))
	for k, v := range metrics {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[k] = v
	}
	return out
}

// closeFile reports the Close error unless an earlier one is already set.
func closeFile(f *os.File, err *error) {
	if cerr := f.Close(); *err == nil {
		*err = cerr
	}
}

func writeJSON(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFrames(path string, frames []sim.Frame) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	w := csv.NewWriter(f)

	if len(frames) == 0 {
		w.Flush()
		return w.Error()
	}

	header := []string{"tick"}
	for i := range frames[0].Bodies {
		header = append(header,
			fmt.Sprintf("b%d_x", i), fmt.Sprintf("b%d_y", i),
			fmt.Sprintf("b%d_fx", i), fmt.Sprintf("b%d_fy", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, fr := range frames {
		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatUint(fr.Tick, 10))
		for _, b := range fr.Bodies {
			row = append(row,
				formatFloat(b.Pos.X), formatFloat(b.Pos.Y),
				formatFloat(b.Force.X), formatFloat(b.Force.Y))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// formatFloat keeps full precision; forces are often many orders of magnitude
// smaller than positions.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

// LoadScenario returns the scenario a run was started from.
func (s *Store) LoadScenario(runID string) (*config.Config, error) {
	return config.Load(filepath.Join(s.baseDir, runID, scenarioFile))
}

// LoadFrames reads the recorded trajectory back. Mass and charge are taken
// from the stored scenario since they never change during a run.
func (s *Store) LoadFrames(runID string) ([]sim.Frame, error) {
	cfg, err := s.LoadScenario(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	if len(records) < 2 {
		return []sim.Frame{}, nil
	}

	n := (len(records[0]) - 1) / 4
	if n != len(cfg.Bodies) {
		return nil, fmt.Errorf("%w: %d bodies in frames, %d in scenario", ErrMalformed, n, len(cfg.Bodies))
	}

	frames := make([]sim.Frame, 0, len(records)-1)
	for line, record := range records[1:] {
		tick, err := strconv.ParseUint(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line+2, err)
		}

		vals := make([]float64, len(record)-1)
		for j := range vals {
			vals[j], err = strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line+2, err)
			}
		}

		bodies := make([]physics.Body, n)
		for i := range bodies {
			bodies[i] = cfg.Bodies[i].Body()
			bodies[i].Pos = physics.Vec2{X: vals[i*4], Y: vals[i*4+1]}
			bodies[i].Force = physics.Vec2{X: vals[i*4+2], Y: vals[i*4+3]}
		}
		frames = append(frames, sim.Frame{Tick: tick, Bodies: bodies})
	}

	return frames, nil
}
