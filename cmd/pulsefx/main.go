package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/pulsefx/pulsefx/internal/audio"
	"github.com/pulsefx/pulsefx/internal/config"
	"github.com/pulsefx/pulsefx/internal/particle"
	"github.com/pulsefx/pulsefx/internal/reactive"
	"github.com/pulsefx/pulsefx/internal/stats"
	"github.com/pulsefx/pulsefx/internal/storage"
	"github.com/pulsefx/pulsefx/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	ticks      int
	save       bool
	beatEvery  int
	frameRate  int
	useMic     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pulsefx",
		Short: "audio-reactive particle visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pulsefx", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless with a synthetic audio source",
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&preset, "preset", "cosmic", "preset theme")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-seeded)")
	runCmd.Flags().IntVar(&ticks, "ticks", 600, "number of ticks")
	runCmd.Flags().IntVar(&beatEvery, "beat-every", 30, "synthetic beat period in ticks")
	runCmd.Flags().BoolVar(&save, "save", false, "save run data")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "live terminal visualizer",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&preset, "preset", "cosmic", "preset theme")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-seeded)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")
	liveCmd.Flags().IntVar(&beatEvery, "beat-every", 30, "synthetic beat period in ticks")
	liveCmd.Flags().BoolVar(&useMic, "mic", false, "capture from the default input device")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

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

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark engine throughput",
		RunE:  benchEngine,
	}
	benchCmd.Flags().StringVar(&preset, "preset", "cosmic", "preset theme")

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd, listCmd, plotCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file, and the seed flag in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	if preset == "" {
		preset = "cosmic"
	}
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	engine := particle.New(cfg.Particle())
	bindings, burst := cfg.Reactive()
	mapper := reactive.NewMapper(bindings, burst)
	source := audio.NewSynth(beatEvery)
	collector := stats.NewCollector(ticks)
	engine.AddObserver(collector)

	bounds := particle.Bounds{Width: config.DefaultWidth, Height: config.DefaultHeight}
	series := make([]storage.Sample, 0, ticks)

	fmt.Printf("running %s for %d ticks...\n", cfg.Theme, ticks)
	start := time.Now()

	for i := 0; i < ticks; i++ {
		frame, _ := source.Next()
		mapper.Apply(engine, &frame)
		prevEmitted := collector.TotalEmitted
		prevEvicted := collector.TotalEvicted
		engine.Update(1, bounds)
		series = append(series, storage.Sample{
			Tick:    uint64(i + 1),
			Live:    engine.Live(),
			Emitted: collector.TotalEmitted - prevEmitted,
			Evicted: collector.TotalEvicted - prevEvicted,
			Bass:    frame.Bass,
			Mid:     frame.Mid,
			High:    frame.High,
			Beat:    frame.Beat,
		})
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n\n", elapsed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TICKS\tPEAK\tEMITTED\tEVICTED\tRETIRED\tRATE")
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%.2f/tick\n",
		collector.Ticks,
		collector.PeakLive(),
		collector.TotalEmitted,
		collector.TotalEvicted,
		collector.TotalRetired,
		collector.EmissionRate(),
	)
	if err := w.Flush(); err != nil {
		return err
	}

	if hist := collector.LiveHistory(); len(hist) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(hist,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("live particles"),
		))
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(storage.RunMetadata{
			Theme:        cfg.Theme,
			Seed:         cfg.Seed,
			Ticks:        int(collector.Ticks),
			MaxParticles: cfg.MaxParticles,
			PeakLive:     collector.PeakLive(),
			Emitted:      collector.TotalEmitted,
			Evicted:      collector.TotalEvicted,
			Retired:      collector.TotalRetired,
		}, series)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	engine := particle.New(cfg.Particle())
	bindings, burst := cfg.Reactive()
	mapper := reactive.NewMapper(bindings, burst)

	var source audio.Source
	if useMic {
		capture := audio.NewCapture(audio.DefaultSampleRate, audio.DefaultWindow)
		if err := capture.Start(); err != nil {
			return fmt.Errorf("failed to open audio input: %w", err)
		}
		defer capture.Stop()
		source = capture
	} else {
		if beatEvery <= 0 {
			beatEvery = 30
		}
		source = audio.NewSynth(beatEvery)
	}

	return tui.Run(tui.Options{
		Engine: engine,
		Source: source,
		Mapper: mapper,
		Theme:  cfg.Theme,
		FPS:    frameRate,
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
	fmt.Fprintln(w, "ID\tTHEME\tTIME\tTICKS\tPEAK\tEMITTED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Theme,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.PeakLive,
			run.Emitted,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("theme: %s\n", meta.Theme)
	fmt.Printf("samples: %d\n\n", len(series))

	live := make([]float64, len(series))
	bass := make([]float64, len(series))
	for i, s := range series {
		live[i] = float64(s.Live)
		bass[i] = s.Bass
	}

	fmt.Println(asciigraph.Plot(live,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("live particles"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(bass,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("bass energy"),
	))
	return nil
}

func benchEngine(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	pools := []int{100, 500, 2000}
	rates := []float64{1, 5, 20}
	bounds := particle.Bounds{Width: config.DefaultWidth, Height: config.DefaultHeight}
	const benchTicks = 2000

	fmt.Printf("benchmarking %s\n\n", cfg.Theme)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POOL\tRATE\tTICKS\tTIME\tTICKS/SEC")

	for _, pool := range pools {
		for _, rate := range rates {
			pc := cfg.Particle()
			pc.MaxParticles = pool
			pc.EmissionRate = rate
			pc.Seed = 42
			engine := particle.New(pc)

			start := time.Now()
			for i := 0; i < benchTicks; i++ {
				engine.Update(1, bounds)
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%d\t%.0f\t%d\t%v\t%.0f\n",
				pool, rate, benchTicks, elapsed,
				float64(benchTicks)/elapsed.Seconds())
		}
	}
	return w.Flush()
}
