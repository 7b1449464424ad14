package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/san-kum/donut/internal/bench"
	"github.com/san-kum/donut/internal/config"
	"github.com/san-kum/donut/internal/term"
	"github.com/san-kum/donut/internal/torus"
	"github.com/san-kum/donut/internal/viz"
)

var (
	// flagCfg receives flag values; only flags the user set are applied
	// over the preset and config file.
	flagCfg    = config.DefaultConfig()
	configFile string
	preset     string
	plot       bool
	exportPath string
	chartPath  string
	verbose    bool
)

// main registers commands and flags and exits 1 when the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "donut",
		Short: "rotating ASCII torus renderer and benchmark",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr())
		},
		RunE: runRoot,
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagCfg.Width, "width", config.DefaultWidth, "screen width")
	pf.IntVar(&flagCfg.Height, "height", config.DefaultHeight, "screen height")
	pf.Float64Var(&flagCfg.R1, "r1", config.DefaultR1, "tube radius")
	pf.Float64Var(&flagCfg.R2, "r2", config.DefaultR2, "center radius")
	pf.Float64Var(&flagCfg.K1, "k1", config.DefaultK1, "projection scaling constant")
	pf.Float64Var(&flagCfg.K2, "k2", config.DefaultK2, "camera distance constant")
	pf.Float64Var(&flagCfg.AStep, "a-step", config.DefaultAStep, "rotation speed for angle A")
	pf.Float64Var(&flagCfg.BStep, "b-step", config.DefaultBStep, "rotation speed for angle B")
	pf.Float64Var(&flagCfg.ThetaStep, "theta-step", config.DefaultThetaStep, "theta angular step")
	pf.Float64Var(&flagCfg.PhiStep, "phi-step", config.DefaultPhiStep, "phi angular step")
	pf.StringVar(&flagCfg.Shading, "shading", config.DefaultShading, "ASCII shading characters dark to bright")
	pf.StringVar(&flagCfg.Mode, "mode", config.DefaultMode, "rendering mode (baseline|optimized)")
	pf.IntVar(&flagCfg.FPS, "fps", 0, "frame rate cap (0 = uncapped)")
	pf.IntVar(&flagCfg.Frames, "frames", config.DefaultFrames, "number of frames for benchmark")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&exportPath, "export", "", "write benchmark results as json to this path")
	pf.StringVar(&chartPath, "chart", "", "save a frame time chart to this path (png, svg, pdf)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	rootCmd.Flags().BoolVar(&flagCfg.Benchmark, "benchmark", false, "run benchmark mode (no terminal output)")
	rootCmd.Flags().BoolVar(&plot, "plot", false, "plot frame times after a benchmark")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "benchmark baseline against optimized mode",
		Args:  cobra.NoArgs,
		RunE:  runCompare,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, name := range config.ListPresets() {
				fmt.Fprintf(out, "  %s\n", name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	rootCmd.AddCommand(tuiCmd, compareCmd, presetsCmd, configCmd)
	return rootCmd
}

func setupLogging(w io.Writer) {
	if !verbose {
		return
	}
	torus.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order, and validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.LookupPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	// file keys land on top of the preset, not on fresh defaults
	if configFile != "" {
		if err := config.LoadInto(cfg, configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	cmd.Flags().Visit(func(f *pflag.Flag) {
		applyFlag(cfg, f.Name)
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlag(cfg *config.Config, name string) {
	switch name {
	case "width":
		cfg.Width = flagCfg.Width
	case "height":
		cfg.Height = flagCfg.Height
	case "r1":
		cfg.R1 = flagCfg.R1
	case "r2":
		cfg.R2 = flagCfg.R2
	case "k1":
		cfg.K1 = flagCfg.K1
	case "k2":
		cfg.K2 = flagCfg.K2
	case "a-step":
		cfg.AStep = flagCfg.AStep
	case "b-step":
		cfg.BStep = flagCfg.BStep
	case "theta-step":
		cfg.ThetaStep = flagCfg.ThetaStep
	case "phi-step":
		cfg.PhiStep = flagCfg.PhiStep
	case "shading":
		cfg.Shading = flagCfg.Shading
	case "mode":
		cfg.Mode = flagCfg.Mode
	case "fps":
		cfg.FPS = flagCfg.FPS
	case "frames":
		cfg.Frames = flagCfg.Frames
	case "benchmark":
		cfg.Benchmark = flagCfg.Benchmark
	}
}

func newRenderer(cmd *cobra.Command) (*config.Config, *torus.Renderer, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	r, err := torus.NewRenderer(cfg.Torus())
	if err != nil {
		return nil, nil, err
	}
	return cfg, r, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	if !cfg.Benchmark {
		return term.NewAnimator(out, r, term.WithFrameRate(cfg.FPS)).Run(ctx)
	}

	res, err := bench.Run(ctx, r, cfg.Frames)
	if err != nil {
		return err
	}
	if err := bench.WriteReport(out, res); err != nil {
		return err
	}
	if err := saveResults(res); err != nil {
		return err
	}
	if !plot || res.Frames == 0 {
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, bench.Plot(res, 70, 10))
	fmt.Fprintln(out)
	return bench.WriteStats(out, res)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, r, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return viz.Run(r, cfg.FPS)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "comparing modes (%dx%d, %d frames)\n\n", cfg.Width, cfg.Height, cfg.Frames)
	results, err := bench.Compare(ctx, cfg.Torus(), cfg.Frames)
	if err != nil {
		return err
	}
	if err := bench.WriteComparison(out, results); err != nil {
		return err
	}
	return saveResults(results...)
}

func saveResults(results ...*bench.Result) error {
	if exportPath != "" {
		if err := bench.ExportJSON(exportPath, results...); err != nil {
			return fmt.Errorf("failed to export results: %w", err)
		}
	}
	if chartPath != "" {
		if err := bench.SaveChart(chartPath, results...); err != nil {
			return fmt.Errorf("failed to save chart: %w", err)
		}
	}
	return nil
}
