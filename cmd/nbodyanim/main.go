package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/nbodyanim/internal/anim"
	"github.com/san-kum/nbodyanim/internal/config"
	"github.com/san-kum/nbodyanim/internal/metrics"
	"github.com/san-kum/nbodyanim/internal/physics"
	"github.com/san-kum/nbodyanim/internal/store"
	"github.com/san-kum/nbodyanim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	// Model parameters
	bodies    int
	gridSize  int
	threeD    bool
	dt        float64
	gconst    float64
	softening float64
	seed      int64
	initName  string
	// Animation parameters
	frames     int
	steps      int
	intervalMs int
	styleName  string
	markerName string
	cmapName   string
	normName   string
	title      string
	savePath   string
	logPath    string
	noShow     bool
	repeat     bool
	record     bool
	figWidth   int
	figHeight  int
	// Config file
	configFile string
	preset     string
	// Bench
	benchSteps int
)

// main is the entry point for the nbodyanim CLI; it registers commands
// and flags and executes the root command. It exits the process with
// status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "nbodyanim",
		Short: "gravitational N-body animation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".nbodyanim", "data directory")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "run an N-body simulation and animate it",
		RunE:  runAnimate,
	}
	animateCmd.Flags().IntVar(&bodies, "bodies", config.DefaultBodies, "number of bodies")
	animateCmd.Flags().IntVar(&gridSize, "grid", config.DefaultGrid, "density grid cells per side")
	animateCmd.Flags().BoolVar(&threeD, "3d", false, "simulate in three dimensions")
	animateCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	animateCmd.Flags().Float64Var(&gconst, "g", config.DefaultG, "gravitational constant")
	animateCmd.Flags().Float64Var(&softening, "softening", config.DefaultSoftening, "force softening length")
	animateCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	animateCmd.Flags().StringVar(&initName, "init", "uniform", "initial condition (uniform|ring|collapse)")
	animateCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of animation frames")
	animateCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "model timesteps per frame")
	animateCmd.Flags().IntVar(&intervalMs, "interval", config.DefaultInterval, "frame interval in milliseconds")
	animateCmd.Flags().StringVar(&styleName, "style", "grid", "animation style (grid|points)")
	animateCmd.Flags().StringVar(&markerName, "marker", "o", "point marker (.|o|+|x)")
	animateCmd.Flags().StringVar(&cmapName, "cmap", "viridis", "colormap for grid style")
	animateCmd.Flags().StringVar(&normName, "norm", "linear", "color normalization (linear|log)")
	animateCmd.Flags().StringVar(&title, "title", "", "figure title")
	animateCmd.Flags().StringVar(&savePath, "save", "", "save animation to file (gif only)")
	animateCmd.Flags().StringVar(&logPath, "log", "", "energy log file path")
	animateCmd.Flags().BoolVar(&noShow, "no-show", false, "skip the interactive display")
	animateCmd.Flags().BoolVar(&repeat, "repeat", false, "loop the animation")
	animateCmd.Flags().BoolVar(&record, "record", false, "record run metadata and energies")
	animateCmd.Flags().IntVar(&figWidth, "width", config.DefaultFigSize, "figure width in pixels")
	animateCmd.Flags().IntVar(&figHeight, "height", config.DefaultFigSize, "figure height in pixels")
	animateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	animateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded energy series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the simulation step",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchSteps, "steps", 200, "timesteps per measurement")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Printf("%-12s %d bodies, %dd, init=%s, style=%s\n",
					name, cfg.Model.Bodies, cfg.Model.Dims, cfg.Model.Init, cfg.Anim.Style)
			}
			return nil
		},
	}

	rootCmd.AddCommand(animateCmd, listCmd, plotCmd, exportCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// animateConfig resolves the effective configuration: preset or config
// file first, then any explicitly set CLI flag on top.
func animateConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("bodies") {
		cfg.Model.Bodies = bodies
	}
	if cmd.Flags().Changed("grid") {
		cfg.Model.Grid = gridSize
	}
	if cmd.Flags().Changed("3d") && threeD {
		cfg.Model.Dims = 3
	}
	if cmd.Flags().Changed("dt") {
		cfg.Model.Dt = dt
	}
	if cmd.Flags().Changed("g") {
		cfg.Model.G = gconst
	}
	if cmd.Flags().Changed("softening") {
		cfg.Model.Softening = softening
	}
	if cmd.Flags().Changed("seed") {
		cfg.Model.Seed = seed
	}
	if cmd.Flags().Changed("init") {
		cfg.Model.Init = initName
	}
	if cmd.Flags().Changed("frames") {
		cfg.Anim.Frames = frames
	}
	if cmd.Flags().Changed("steps") {
		cfg.Anim.Steps = steps
	}
	if cmd.Flags().Changed("interval") {
		cfg.Anim.IntervalMs = intervalMs
	}
	if cmd.Flags().Changed("style") {
		cfg.Anim.Style = styleName
	}
	if cmd.Flags().Changed("marker") {
		cfg.Anim.Marker = markerName
	}
	if cmd.Flags().Changed("cmap") {
		cfg.Anim.Colormap = cmapName
	}
	if cmd.Flags().Changed("norm") {
		cfg.Anim.Norm = normName
	}
	if cmd.Flags().Changed("title") {
		cfg.Anim.Title = title
	}
	if cmd.Flags().Changed("save") {
		cfg.Anim.Save = savePath
	}
	if cmd.Flags().Changed("log") {
		cfg.Anim.Log = logPath
	}
	if cmd.Flags().Changed("no-show") {
		cfg.Anim.Show = !noShow
	}
	if cmd.Flags().Changed("repeat") {
		cfg.Anim.Repeat = repeat
	}
	if cmd.Flags().Changed("width") {
		cfg.Anim.FigWidth = figWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Anim.FigHeight = figHeight
	}

	return cfg, nil
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, err := animateConfig(cmd)
	if err != nil {
		return err
	}

	nb, err := physics.NewNBody(physics.Params{
		Bodies:    cfg.Model.Bodies,
		Grid:      cfg.Model.Grid,
		Dims:      cfg.Model.Dims,
		Dt:        cfg.Model.Dt,
		G:         cfg.Model.G,
		Softening: cfg.Model.Softening,
		Seed:      cfg.Model.Seed,
		Init:      cfg.Model.Init,
	})
	if err != nil {
		return err
	}

	style, err := anim.ParseStyle(cfg.Anim.Style)
	if err != nil {
		return err
	}
	marker, err := viz.ParseMarker(cfg.Anim.Marker)
	if err != nil {
		return err
	}

	var proj anim.Projector
	if style == anim.StyleGrid {
		if cfg.Model.Dims == 3 {
			proj = anim.DepthSum{}
		} else {
			proj = anim.Planar{}
		}
	}

	drift := metrics.NewEnergyDrift()
	opts := anim.Options{
		Frames:    cfg.Anim.Frames,
		Steps:     cfg.Anim.Steps,
		Style:     style,
		Marker:    marker,
		Show:      cfg.Anim.Show,
		SavePath:  cfg.Anim.Save,
		LogPath:   cfg.Anim.Log,
		Title:     cfg.Anim.Title,
		FigWidth:  cfg.Anim.FigWidth,
		FigHeight: cfg.Anim.FigHeight,
		Interval:  time.Duration(cfg.Anim.IntervalMs) * time.Millisecond,
		Repeat:    cfg.Anim.Repeat,
		Colormap:  viz.ColormapByName(cfg.Anim.Colormap),
		Norm:      viz.NormByName(cfg.Anim.Norm),
		Observers: []anim.Observer{drift},
	}

	session, err := anim.NewSession(nb, proj, opts)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := session.Run(context.Background()); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("frames: %d\n", len(session.Energies()))
	fmt.Printf("energy drift: %.3e\n", drift.Value())

	if record {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(store.RunMetadata{
			Bodies:      cfg.Model.Bodies,
			Grid:        cfg.Model.Grid,
			Dims:        cfg.Model.Dims,
			Frames:      cfg.Anim.Frames,
			Steps:       cfg.Anim.Steps,
			Dt:          cfg.Model.Dt,
			Seed:        cfg.Model.Seed,
			Style:       cfg.Anim.Style,
			Init:        cfg.Model.Init,
			EnergyDrift: drift.Value(),
		}, session.Energies())
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tBODIES\tDIMS\tFRAMES\tSTYLE\tINIT\tDRIFT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\t%.2e\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Bodies,
			run.Dims,
			run.Frames,
			run.Style,
			run.Init,
			run.EnergyDrift,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	energies, err := st.LoadEnergies(runID)
	if err != nil {
		return err
	}
	if len(energies) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("frames: %d\n\n", len(energies))

	graph := asciigraph.Plot(energies,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("total energy vs frame"),
	)
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	for _, run := range runs {
		if run.ID == runID {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(run)
		}
	}
	return fmt.Errorf("run not found: %s", runID)
}

func runBench(cmd *cobra.Command, args []string) error {
	bodyCounts := []int{100, 300, 1000}
	dims := []int{2, 3}

	fmt.Println("benchmarking N-body step")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tDIMS\tSTEPS\tTIME\tSTEPS/SEC")

	for _, n := range bodyCounts {
		for _, d := range dims {
			p := physics.DefaultParams()
			p.Bodies = n
			p.Dims = d
			p.Seed = 42

			nb, err := physics.NewNBody(p)
			if err != nil {
				return err
			}

			start := time.Now()
			if _, err := nb.Evolve(benchSteps); err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(benchSteps) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\n", n, d, benchSteps, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}
