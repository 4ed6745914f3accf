package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/nkoval/orbitview/internal/config"
	"github.com/nkoval/orbitview/internal/feed"
	"github.com/nkoval/orbitview/internal/logging"
	"github.com/nkoval/orbitview/internal/metrics"
	"github.com/nkoval/orbitview/internal/scene"
	"github.com/nkoval/orbitview/internal/tui"
)

var (
	configFile string
	feedFile   string
	preset     string
	fps        int
	duration   float64
	dt         float64
	timeScale  float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitview",
		Short: "interactive orbit viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.NewFromEnv()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, err := buildScene(cfg, log)
			if err != nil {
				return err
			}
			return tui.Run(s, cfg.FPS)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&feedFile, "feed", "", "JSON body feed (default: builtin dataset)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset (see presets command)")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", 0, "render tick rate, overrides config")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "advance the scene headless and print a summary",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", 365.0, "simulated time units to advance")
	runCmd.Flags().Float64Var(&dt, "dt", 1.0, "simulated time units per tick")
	runCmd.Flags().Float64Var(&timeScale, "scale", 1.0, "time-scale multiplier")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the loaded bodies",
		RunE:  listBodies,
	}

	infoCmd := &cobra.Command{
		Use:   "info [name]",
		Short: "print the display snapshot for one body",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, bodiesCmd, infoCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p.Apply(cfg)
	}
	if feedFile != "" {
		cfg.Feed = feedFile
	}
	if fps > 0 {
		cfg.FPS = fps
	}
	return cfg, cfg.Validate()
}

func loadRecords(cfg *config.Config, log *slog.Logger) ([]feed.Record, error) {
	records := feed.Builtin()
	if cfg.Feed != "" {
		loaded, err := feed.LoadFile(cfg.Feed, log)
		if err != nil {
			return nil, err
		}
		records = loaded
	}
	if preset != "" {
		if p := config.GetPreset(preset); p != nil && p.Bodies != nil {
			kept := records[:0]
			for _, rec := range records {
				if slices.Contains(p.Bodies, rec.Name) {
					kept = append(kept, rec)
				}
			}
			records = kept
		}
	}
	return records, nil
}

func buildScene(cfg *config.Config, log *slog.Logger) (*scene.Scene, error) {
	records, err := loadRecords(cfg, log)
	if err != nil {
		return nil, err
	}
	reg := feed.BuildRegistry(records, cfg.DefaultPeriod, log)
	if reg.Len() == 0 {
		return nil, fmt.Errorf("no usable bodies in feed")
	}
	return scene.New(reg, scene.Options{
		FrameClose:   cfg.Camera.FrameClose,
		InterpSteps:  cfg.Camera.InterpSteps,
		TrailLength:  cfg.TrailLength,
		CameraHeight: cfg.Camera.Height,
		TimeScale:    cfg.TimeScale,
		Logger:       log,
	}), nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	log := logging.NewFromEnv()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if timeScale < scene.MinTimeScale || timeScale > scene.MaxTimeScale {
		return fmt.Errorf("scale must be within [%g, %g]", scene.MinTimeScale, scene.MaxTimeScale)
	}
	cfg.TimeScale = timeScale
	s, err := buildScene(cfg, log)
	if err != nil {
		return err
	}
	if dt <= 0 || duration <= 0 {
		return fmt.Errorf("time and dt must be positive")
	}

	drift := metrics.NewRadialDrift()
	timing := metrics.NewTickTiming()
	steps := int(duration / dt)
	history := make([]float64, 0, steps)

	for i := 0; i < steps; i++ {
		start := time.Now()
		s.Tick(dt / timeScale) // integrator re-applies the scale
		timing.Add(time.Since(start))

		vs := s.View()
		drift.Observe(vs.Bodies)
		if len(vs.Bodies) > 0 {
			history = append(history, vs.Bodies[0].Position.X)
		}
	}

	vs := s.View()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCLASS\tDISTANCE\tX\tY")
	for _, b := range vs.Bodies {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.1f\n",
			b.Name, b.Class, b.Position.Length(), b.Position.X, b.Position.Y)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nticks: %d\n", steps)
	fmt.Printf("%s: %.3e\n", drift.Name(), drift.Value())
	fmt.Printf("%s: %.3f (max %v)\n", timing.Name(), timing.Value(), timing.Max())

	if len(history) > 2 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(vs.Bodies[0].Name+" x position"),
		))
	}
	return nil
}

func listBodies(cmd *cobra.Command, args []string) error {
	log := logging.NewFromEnv()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	records, err := loadRecords(cfg, log)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tDISTANCE\tPERIOD")
	for _, rec := range records {
		period := "default"
		if rec.Period > 0 {
			period = fmt.Sprintf("%.2f", rec.Period)
		}
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%s\n", rec.Name, rec.Size, rec.Distance, period)
	}
	return w.Flush()
}

func showInfo(cmd *cobra.Command, args []string) error {
	log := logging.NewFromEnv()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := buildScene(cfg, log)
	if err != nil {
		return err
	}
	info, err := s.Info(args[0])
	if err != nil {
		return err
	}
	fmt.Println(info.Text())
	return nil
}
