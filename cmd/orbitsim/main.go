package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitsim/internal/analysis"
	"github.com/san-kum/orbitsim/internal/automation"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/export"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/optim"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/storage"
	"github.com/san-kum/orbitsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir     string
	ticks       int
	recordEvery int
	seed        int64
	validate    bool
	configFile  string
	scatter     int
	// Live view
	ticksPerFrame int
	frameRate     int
	theme         string
	// Exports
	outFile  string
	svgSize  int
	snapshot bool
	// Bench and sweep
	benchN    int
	runs      int
	firstSeed int64
	// Analysis and tuning
	perturb   float64
	tuneParam string
	tuneLo    float64
	tuneHi    float64
	tuneSteps int
	metric    string
	trials    int
	jitter    float64
	radius    float64
)

// main registers the orbitsim commands and runs the live view of the atom
// preset when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitsim",
		Short: "charged particle orbit simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, []string{"atom"})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a scenario and store the trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().IntVar(&recordEvery, "record-every", config.DefaultRecordEvery, "record one frame every n ticks")
	runCmd.Flags().BoolVar(&validate, "validate", false, "stop at the first NaN/Inf body")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run a scenario in the terminal viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().IntVar(&ticksPerFrame, "tpf", 64, "ticks per frame")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().StringVar(&theme, "theme", "classic", fmt.Sprintf("color theme %v", viz.ThemeNames()))

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot body coordinates and closest approach",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render run trajectories to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 800, "image size in pixels")
	exportSVGCmd.Flags().BoolVar(&snapshot, "snapshot", false, "draw only the last recorded frame as the terminal view shows it")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [preset] [path]",
		Short: "write a preset to a yaml scenario file",
		Args:  cobra.ExactArgs(2),
		RunE:  initScenario,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure tick throughput for growing body counts",
		RunE:  benchTicks,
	}
	benchCmd.Flags().IntVar(&benchN, "ticks", 2000, "ticks per measurement")

	sweepCmd := &cobra.Command{
		Use:   "sweep [bodies]",
		Short: "run scattered layouts over a range of seeds in parallel",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepSeeds,
	}
	sweepCmd.Flags().IntVar(&benchN, "ticks", config.DefaultTicks, "ticks per run")
	sweepCmd.Flags().IntVar(&runs, "runs", 8, "number of seeds")
	sweepCmd.Flags().Int64Var(&firstSeed, "seed", 1, "first seed")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "report orbit periods and sensitivity of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().Float64Var(&perturb, "perturb", 1e-6, "initial displacement for the divergence test")

	tuneCmd := &cobra.Command{
		Use:   "tune [preset]",
		Short: "grid search a scaling parameter to minimize a metric",
		Args:  cobra.MaximumNArgs(1),
		RunE:  tuneScenario,
	}
	addScenarioFlags(tuneCmd)
	tuneCmd.Flags().StringVar(&tuneParam, "param", optim.SeedScale, fmt.Sprintf("parameter to scale %v", optim.Params()))
	tuneCmd.Flags().Float64Var(&tuneLo, "min", 0.5, "lowest scale")
	tuneCmd.Flags().Float64Var(&tuneHi, "max", 1.5, "highest scale")
	tuneCmd.Flags().IntVar(&tuneSteps, "steps", 11, "grid points")
	tuneCmd.Flags().StringVar(&metric, "metric", "centroid_drift", "metric to minimize")

	batchCmd := &cobra.Command{
		Use:   "batch [plan.yaml]",
		Short: "run every step of a plan file and store the runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	mcCmd := &cobra.Command{
		Use:   "montecarlo [preset]",
		Short: "jitter starting positions and count how many runs stay bounded",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMonteCarlo,
	}
	addScenarioFlags(mcCmd)
	mcCmd.Flags().IntVar(&trials, "trials", 50, "number of trials")
	mcCmd.Flags().Float64Var(&jitter, "jitter", 1, "max offset per coordinate")
	mcCmd.Flags().Float64Var(&radius, "radius", 100, "max wander from start")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportJSONCmd, exportSVGCmd, presetsCmd, initCmd, benchCmd, sweepCmd, analyzeCmd, tuneCmd, batchCmd, mcCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed (scatter)")
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	cmd.Flags().IntVar(&scatter, "scatter", 0, "place n bodies at random instead of a preset")
}

// loadScenario resolves the scenario from, in order of precedence, a config
// file, a scatter layout, or a preset name. Explicit flags override it.
func loadScenario(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	case scatter > 0:
		cfg = config.Scatter(scatter, seed)
	default:
		name := "atom"
		if len(args) > 0 {
			name = args[0]
		}
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownPreset, name, config.ListPresets())
		}
	}

	flags := cmd.Flags()
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Lookup("record-every") != nil && flags.Changed("record-every") {
		cfg.RecordEvery = recordEvery
	}
	if flags.Lookup("validate") != nil && flags.Changed("validate") {
		cfg.ValidateState = validate
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	s := sim.New(cfg.Universe())
	for _, m := range metrics.Default() {
		s.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %s simulation (%d bodies, %d ticks)...\n", cfg.Name, len(cfg.Bodies), cfg.Ticks)
	start := time.Now()

	result, err := s.Run(ctx, cfg.SimConfig())
	if err != nil && result == nil {
		return err
	}
	if err != nil {
		fmt.Printf("interrupted: %v\n", err)
	}

	elapsed := time.Since(start)

	runID, saveErr := st.Save(cfg, result)
	if saveErr != nil {
		return saveErr
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", result.TicksTaken)
	fmt.Printf("frames: %d\n", len(result.Frames))
	for _, e := range result.Errors {
		fmt.Printf("error: %v\n", e)
	}
	fmt.Println("\nmetrics:")
	for _, m := range metrics.Default() {
		if val, ok := result.Metrics[m.Name()]; ok {
			fmt.Printf("  %s: %.6g\n", m.Name(), val)
		}
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	tpf, fps, th := ticksPerFrame, frameRate, theme
	if cmd.Flags().Lookup("tpf") == nil {
		tpf, fps, th = 64, 30, "classic"
	}

	return viz.Run(cfg.Universe(), viz.Options{
		Name:          cfg.Name,
		TicksPerFrame: tpf,
		FPS:           fps,
		Theme:         th,
		Snapshot: func(c *viz.Canvas, tick uint64) (string, error) {
			path := fmt.Sprintf("%s_%d.svg", cfg.Name, tick)
			if err := os.WriteFile(path, []byte(export.CanvasToSVG(c, 4)), 0644); err != nil {
				return "", err
			}
			return path, nil
		},
	})
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tBODIES\tTICKS\tERRORS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d/%d\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.NumBodies,
			run.TicksTaken,
			run.Ticks,
			len(run.Errors),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("frames: %d (ticks %d-%d)\n\n", len(frames), frames[0].Tick, frames[len(frames)-1].Tick)

	numBodies := len(frames[0].Bodies)
	maxPlots := 4
	if numBodies > maxPlots {
		numBodies = maxPlots
	}

	for i := 0; i < numBodies; i++ {
		xs := make([]float64, 0, len(frames))
		ys := make([]float64, 0, len(frames))
		for _, f := range frames {
			p := f.Bodies[i].Pos
			if !p.IsFinite() {
				break
			}
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
		if len(xs) < 2 {
			fmt.Printf("body %d: no finite data\n\n", i)
			continue
		}

		cat := viz.Classify(frames[0].Bodies[i])
		graph := asciigraph.PlotMany([][]float64{xs, ys},
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
			asciigraph.Caption(fmt.Sprintf("body %d (%s): x blue, y red", i, cat)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	closest := make([]float64, 0, len(frames))
	for _, f := range frames {
		d := minSeparation(f.Bodies)
		if math.IsInf(d, 0) || math.IsNaN(d) {
			break
		}
		closest = append(closest, d)
	}
	if len(closest) > 1 {
		fmt.Println(asciigraph.Plot(closest,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("closest pair separation"),
		))
	}

	return nil
}

func minSeparation(bodies []physics.Body) float64 {
	m := metrics.NewMinSeparation()
	m.Observe(sim.Frame{Bodies: bodies})
	return m.Value()
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if outFile == "" {
		return storage.WriteJSON(os.Stdout, *meta, frames)
	}

	if err := storage.ExportJSON(outFile, *meta, frames); err != nil {
		return err
	}
	fmt.Printf("exported %d frames to %s\n", len(frames), outFile)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to draw")
	}

	var svg string
	if snapshot {
		svg = snapshotSVG(frames[len(frames)-1].Bodies, svgSize)
	} else {
		svg = export.TrajectoriesToSVG(frames, svgSize, svgSize)
	}
	if svg == "" {
		return fmt.Errorf("no finite positions to draw")
	}

	path := outFile
	if path == "" {
		path = runID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

// snapshotSVG frames bodies on a braille canvas the way the live view does
// and converts the lit dots to SVG at roughly size pixels wide.
func snapshotSVG(bodies []physics.Body, size int) string {
	canvas := viz.NewCanvas(80, 40)
	cam := viz.NewCamera()
	cam.Fit(bodies, canvas.SubWidth(), canvas.SubHeight())
	viz.DrawBodies(canvas, cam, bodies)
	return export.CanvasToSVG(canvas, float64(size)/float64(canvas.SubWidth()))
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBODIES\tTICKS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\n", name, len(p.Bodies), p.Ticks)
	}
	return w.Flush()
}

func initScenario(cmd *cobra.Command, args []string) error {
	cfg := config.GetPreset(args[0])
	if cfg == nil {
		return fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownPreset, args[0], config.ListPresets())
	}
	if err := config.Save(args[1], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s scenario to %s\n", cfg.Name, args[1])
	return nil
}

func benchTicks(cmd *cobra.Command, args []string) error {
	counts := []int{3, 10, 30, 100}

	fmt.Printf("benchmarking %d ticks\n\n", benchN)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tPAIRS/TICK\tTIME\tTICKS/SEC\tNOTE")

	for _, n := range counts {
		s := sim.New(config.Scatter(n, 42).Universe())

		invalid := 0
		start := time.Now()
		err := s.RunWithCallback(cmd.Context(), sim.Config{Ticks: benchN}, func(f sim.Frame) bool {
			if invalid == 0 && !f.IsValid() {
				invalid = int(f.Tick)
			}
			return true
		})
		elapsed := time.Since(start)
		if err != nil {
			return err
		}

		note := ""
		if invalid > 0 {
			note = fmt.Sprintf("NaN/Inf from tick %d", invalid)
		}
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\t%s\n", n, n*(n-1), elapsed, float64(benchN)/elapsed.Seconds(), note)
	}

	return w.Flush()
}

func sweepSeeds(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return fmt.Errorf("bodies must be a positive integer, got %q", args[0])
	}

	build := func(s int64) (*physics.Universe, error) {
		return config.Scatter(n, s).Universe(), nil
	}
	ens := sim.NewEnsemble(build, metrics.Default, runs, firstSeed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("sweeping %d seeds of %d bodies...\n\n", runs, n)
	results, err := ens.Run(ctx, sim.Config{Ticks: benchN, RecordEvery: benchN})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tMIN_SEP\tMAX_SPEED\tCENTROID_DRIFT\tSTABILITY\tINVALID")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%.4g\t%.4g\t%.4g\t%.2f\t%.0f\n",
			firstSeed+int64(i),
			r.Metrics["min_separation"],
			r.Metrics["max_speed"],
			r.Metrics["centroid_drift"],
			r.Metrics["stability"],
			r.Metrics["invalid_bodies"],
		)
	}
	return w.Flush()
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	cfg, err := st.LoadScenario(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to analyze")
	}

	fmt.Printf("run: %s (%s, %d bodies)\n\n", meta.ID, meta.Scenario, meta.NumBodies)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tKIND\tSAMPLES\tX_PERIOD\tY_PERIOD")
	for i := 0; i < meta.NumBodies; i++ {
		xs, ys := analysis.Track(frames, i)
		kind := viz.Classify(frames[0].Bodies[i])
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", i, kind, len(xs),
			formatPeriod(analysis.DominantPeriod(xs), meta.RecordEvery),
			formatPeriod(analysis.DominantPeriod(ys), meta.RecordEvery),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ndivergence (perturbation %g):\n", perturb)
	u := cfg.Universe()
	for i := 0; i < u.Len(); i++ {
		d, err := analysis.Diverge(u, i, perturb, meta.Ticks)
		if err != nil {
			return err
		}
		final := math.NaN()
		if n := len(d.Separation); n > 0 {
			final = d.Separation[n-1]
		}
		fmt.Printf("  body %d: rate %.4g, final separation %.4g over %d ticks\n", i, d.Rate, final, len(d.Separation))
	}
	return nil
}

func formatPeriod(samples float64, recordEvery int) string {
	if samples == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f ticks", samples*float64(recordEvery))
}

func tuneScenario(cmd *cobra.Command, args []string) error {
	base, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	if err := optim.Apply(&config.Config{}, map[string]float64{tuneParam: 1}); err != nil {
		return fmt.Errorf("%w (available: %v)", err, optim.Params())
	}

	build := func(params map[string]float64) (*config.Config, error) {
		cfg := *base
		cfg.Bodies = append([]config.BodyConfig(nil), base.Bodies...)
		return &cfg, optim.Apply(&cfg, params)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	values := optim.Linspace(tuneLo, tuneHi, tuneSteps)
	fmt.Printf("tuning %s over %d values of %s to minimize %s...\n", base.Name, len(values), tuneParam, metric)

	gs := optim.NewGridSearch([]string{tuneParam}, [][]float64{values})
	params, best, err := gs.Search(ctx, build, metric)
	if err != nil {
		return err
	}

	fmt.Printf("best %s: %g\n", tuneParam, params[tuneParam])
	fmt.Printf("%s: %.6g\n", metric, best)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	plan, err := automation.LoadPlan(args[0])
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running plan %s (%d steps)\n", plan.Name, len(plan.Steps))
	results, err := automation.RunPlan(ctx, plan, st, func(step, total int, name string) {
		fmt.Printf("running step %d/%d: %s\n", step, total, name)
	})
	for _, r := range results {
		fmt.Printf("  step %d -> %s (%d ticks)\n", r.Step, r.RunID, r.Result.TicksTaken)
	}
	return err
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := seed
	if !cmd.Flags().Changed("seed") {
		s = 0
	}

	fmt.Printf("monte carlo: %s, %d trials, jitter %g\n", cfg.Name, trials, jitter)
	results, err := automation.RunMonteCarlo(ctx, &automation.MonteCarloConfig{
		Base:      cfg,
		Jitter:    jitter,
		NumTrials: trials,
		Seed:      s,
		Radius:    radius,
		Progress: func(done, total int) {
			if done%10 == 0 {
				fmt.Printf("monte carlo: %d/%d trials complete\n", done, total)
			}
		},
	})
	if err != nil {
		return err
	}

	stable, unstable := automation.MonteCarloStats(results)
	fmt.Printf("stable: %d\nunstable: %d\n", stable, unstable)
	return nil
}
