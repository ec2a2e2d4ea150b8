package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vvvvv1v/carla/internal/agent"
	"github.com/vvvvv1v/carla/internal/config"
	"github.com/vvvvv1v/carla/internal/export"
	"github.com/vvvvv1v/carla/internal/metrics"
	"github.com/vvvvv1v/carla/internal/sim"
	"github.com/vvvvv1v/carla/internal/storage"
	"github.com/vvvvv1v/carla/internal/tui"
)

var (
	dataDir         string
	configFile      string
	dt              float64
	duration        float64
	targetSpeed     float64
	baseMinDistance float64
	distanceRatio   float64
	useActuator     bool
	frameRate       int
	svgScale        float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "walkersim",
		Short: "pedestrian trajectory-following lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".walkersim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a scenario and save the trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run a scenario with a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	watchCmd := &cobra.Command{
		Use:   "watch [preset]",
		Short: "interactive run view (pause, speed control)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(cmd, args)
			if err != nil {
				return err
			}
			return tui.RunWatch(scenario)
		},
	}
	addScenarioFlags(watchCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a saved run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().Float64Var(&svgScale, "scale", 10, "pixels per meter")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %2d waypoints, %.1f m/s\n", name, len(p.Route), p.TargetSpeed)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, watchCmd, listCmd, plotCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "tick length")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "max duration")
	cmd.Flags().Float64Var(&targetSpeed, "speed", config.DefaultTargetSpeed, "cruise speed")
	cmd.Flags().Float64Var(&baseMinDistance, "base-min-distance", 1.0, "base pruning radius")
	cmd.Flags().Float64Var(&distanceRatio, "distance-ratio", 0.5, "speed-scaled pruning growth")
	cmd.Flags().BoolVar(&useActuator, "actuator", false, "model actuator lag with the longitudinal PID")
}

// loadScenario resolves preset, then config file, then explicit flags,
// later sources winning.
func loadScenario(cmd *cobra.Command, args []string) (*config.Scenario, error) {
	scenario := config.DefaultScenario()

	if len(args) > 0 {
		scenario = config.GetPreset(args[0])
		if scenario == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario: %w", err)
		}
		scenario = loaded
	}

	if cmd.Flags().Changed("dt") {
		scenario.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		scenario.Duration = duration
	}
	if cmd.Flags().Changed("speed") {
		scenario.TargetSpeed = targetSpeed
	}
	if cmd.Flags().Changed("base-min-distance") {
		scenario.BaseMinDistance = baseMinDistance
	}
	if cmd.Flags().Changed("distance-ratio") {
		scenario.DistanceRatio = distanceRatio
	}
	if cmd.Flags().Changed("actuator") {
		scenario.UseActuator = useActuator
	}

	if len(scenario.Route) == 0 {
		return nil, fmt.Errorf("scenario has no route; pick a preset or provide --config")
	}
	return scenario, nil
}

func buildRun(scenario *config.Scenario) (*sim.Runner, *agent.WalkerAgent, *sim.Kinematic) {
	opts := scenario.PlannerOpts()

	var body *sim.Kinematic
	if scenario.UseActuator {
		body = sim.NewKinematicWithActuator(scenario.Start.Vector(), opts.Longitudinal)
	} else {
		body = sim.NewKinematic(scenario.Start.Vector())
	}

	a := agent.New(body, scenario.TargetSpeed, opts)
	a.SetPlan(scenario.RouteVectors(), true)

	runner := sim.New(a, body)
	runner.AddMetric(metrics.NewPathLength())
	runner.AddMetric(metrics.NewAverageSpeed())
	runner.AddMetric(metrics.NewWaypointsReached(a.Planner()))
	return runner, a, body
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner, _, _ := buildRun(scenario)

	fmt.Printf("running %s...\n", scenario.Name)
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{
		Dt:       scenario.Dt,
		Duration: scenario.Duration,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(scenario.Name, scenario.Dt, scenario.Duration,
		scenario.TargetSpeed, scenario.RouteVectors(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d (%.1fs simulated)\n", result.Steps, result.Times[len(result.Times)-1])
	if result.Completed {
		fmt.Println("plan: exhausted")
	} else {
		fmt.Println("plan: duration elapsed with waypoints remaining")
	}

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.4f\n", name, val)
	}

	if len(result.Locations) > 1 {
		goal := scenario.Route[len(scenario.Route)-1].Vector()
		series := make([]float64, len(result.Locations))
		for i, loc := range result.Locations {
			series[i] = loc.Distance(goal)
		}
		fmt.Println("\ndistance to destination:")
		fmt.Println(asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(60)))
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	scenario, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	runner, a, _ := buildRun(scenario)

	renderer := tui.NewLiveRenderer(a.Planner(), scenario.Start.Vector(),
		scenario.RouteVectors(), frameRate)
	runner.AddObserver(renderer)

	renderer.Start()
	defer renderer.Stop()

	// real-time pacing is intentionally skipped; the live view is
	// frame-throttled instead
	_, err = runner.Run(context.Background(), sim.Config{
		Dt:       scenario.Dt,
		Duration: scenario.Duration,
	})
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs yet")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTICKS\tDONE\tPATH (m)")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%.1f\n",
			run.ID, run.Scenario, run.Steps, run.Completed, run.Metrics["path_length"])
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(tr.Locations) < 2 {
		return fmt.Errorf("run %s has no trajectory to plot", args[0])
	}

	displacement := make([]float64, len(tr.Locations))
	for i, loc := range tr.Locations {
		displacement[i] = loc.Distance(tr.Locations[0])
	}

	fmt.Println("displacement from start:")
	fmt.Println(asciigraph.Plot(displacement, asciigraph.Height(10), asciigraph.Width(60)))

	fmt.Println("\ncommanded speed:")
	fmt.Println(asciigraph.Plot(tr.Speeds, asciigraph.Height(8), asciigraph.Width(60)))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	svg := export.TrajectorySVG(tr.Locations, meta.Route, svgScale)

	outPath := filepath.Join(st.Dir(args[0]), "trajectory.svg")
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", outPath)
	return nil
}
