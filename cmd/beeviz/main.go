package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/config"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/export"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
)

var (
	dataDir    string
	configFile string
	preset     string
	theme      string
	// export
	outPath string
	format  string
	fps     int
	dpi     float64
	// display
	display  string
	watchLog bool
	// stats
	pngPath string
	csvPath string
	height  int
)

// main registers the beeviz commands and runs the one named on the command
// line. Errors are printed to stderr and exit with status 1.
func main() {
	rootCmd := &cobra.Command{
		Use:           "beeviz [log]",
		Short:         "animate bee foraging logs",
		Args:          cobra.MaximumNArgs(1),
		RunE:          runReference,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", style.ThemeLight.Name, "color theme")

	exportFlags(rootCmd)
	rootCmd.Flags().StringVar(&display, "display", config.DisplayWindow, "display after export: window, tui or none")

	renderCmd := &cobra.Command{
		Use:   "render [log]",
		Short: "export the animation without displaying it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	exportFlags(renderCmd)

	playCmd := &cobra.Command{
		Use:   "play [log]",
		Short: "play the animation in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().BoolVar(&watchLog, "watch", false, "reload when the log file changes")
	playCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")

	windowCmd := &cobra.Command{
		Use:   "window [log]",
		Short: "play the animation in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWindow,
	}
	windowCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	windowCmd.Flags().Float64Var(&dpi, "dpi", 0, "window resolution in dots per inch")

	timestepsCmd := &cobra.Command{
		Use:   "timesteps [log]",
		Short: "list the timesteps of a log",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listTimesteps,
	}

	frameCmd := &cobra.Command{
		Use:   "frame [log] [timestep]",
		Short: "print one frame as JSON",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  dumpFrame,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [log]",
		Short: "plot bee counts per state over time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotStats,
	}
	statsCmd.Flags().StringVar(&pngPath, "png", "", "also write a PNG chart to this path")
	statsCmd.Flags().StringVar(&csvPath, "csv", "", "also write the counts as CSV to this path")
	statsCmd.Flags().IntVar(&height, "height", 10, "graph height in rows")

	importCmd := &cobra.Command{
		Use:   "import [csv]",
		Short: "store a log as a run",
		Args:  cobra.ExactArgs(1),
		RunE:  importLog,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(renderCmd, playCmd, windowCmd, timestepsCmd, frameCmd, statsCmd, importCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "beeviz: %v\n", err)
		os.Exit(1)
	}
}

func exportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outPath, "out", "o", config.DefaultOutput, "output path")
	cmd.Flags().StringVar(&format, "format", "", fmt.Sprintf("output format: %s (default from --out)", strings.Join(export.Formats(), ", ")))
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	cmd.Flags().Float64Var(&dpi, "dpi", 0, "output resolution in dots per inch")
}

// settings resolves the configuration of cmd: defaults, then the preset,
// then the config file, then explicitly set flags.
func settings(cmd *cobra.Command) (*config.Config, error) {
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

	flags := cmd.Flags()
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("out") {
		cfg.Output = outPath
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("dpi") {
		cfg.Figure.DPI = dpi
	}
	if flags.Changed("display") {
		cfg.Display = display
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
