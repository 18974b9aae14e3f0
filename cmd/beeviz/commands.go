package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/anim"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/config"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/export"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/frame"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/gui"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/player"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/stats"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/storage"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/trace"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/watch"
)

// logSource names where a table came from: a CSV file or a stored run.
type logSource struct {
	Name  string
	Path  string
	RunID string
}

// resolveLog maps the [log] argument to a file or a stored run. Files win
// over run ids of the same name.
func resolveLog(cfg *config.Config, args []string) logSource {
	name := cfg.Log
	if len(args) > 0 {
		name = args[0]
	}
	if _, err := os.Stat(name); err == nil {
		return logSource{Name: name, Path: name}
	}
	if storage.New(cfg.DataDir).Exists(name) {
		return logSource{Name: name, RunID: name}
	}
	return logSource{Name: name, Path: name}
}

func (src logSource) load(cfg *config.Config) (trace.Table, error) {
	if src.RunID != "" {
		return storage.New(cfg.DataDir).LoadTable(src.RunID)
	}
	return trace.Load(src.Path)
}

func loadDriver(cmd *cobra.Command, args []string) (*anim.Driver, *config.Config, logSource, error) {
	cfg, err := settings(cmd)
	if err != nil {
		return nil, nil, logSource{}, err
	}
	src := resolveLog(cfg, args)
	t, err := src.load(cfg)
	if err != nil {
		return nil, nil, src, err
	}
	return anim.FromTable(t, cfg.World, cfg.Renderer()), cfg, src, nil
}

// runReference loads a log, exports it and then displays it. A failed export
// is reported and does not stop the display.
func runReference(cmd *cobra.Command, args []string) error {
	fmt.Println("loading data...")
	d, cfg, src, err := loadDriver(cmd, args)
	if err != nil {
		return err
	}
	fmt.Printf("found %d timesteps\n", d.Len())

	fmt.Println("creating animation...")
	if err := exportAnimation(d, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "beeviz: warning: could not save %s: %v\n", cfg.Output, err)
	}

	switch cfg.Display {
	case config.DisplayWindow:
		fmt.Println("displaying animation...")
		gui.Run(d, gui.Options{Title: src.Name, FPS: cfg.FPS, Figure: cfg.Figure})
	case config.DisplayTUI:
		return play(d, cfg, src, false)
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	d, cfg, _, err := loadDriver(cmd, args)
	if err != nil {
		return err
	}
	fmt.Printf("found %d timesteps\n", d.Len())
	return exportAnimation(d, cfg)
}

func openSink(cfg *config.Config) (export.Sink, error) {
	format := cfg.Format
	if format == "" {
		format = export.FormatOf(cfg.Output)
	}
	if format != export.FormatGIF {
		return export.Open(format, cfg.Output, cfg.FPS, cfg.Figure)
	}
	g, err := export.NewGIF(cfg.Output, cfg.FPS)
	if err != nil {
		return nil, err
	}
	g.Loop = cfg.Loop
	g.Dither = cfg.Dither
	return export.NewRasterSink(g, cfg.Figure), nil
}

func exportAnimation(d *anim.Driver, cfg *config.Config) error {
	if d.Len() == 0 {
		return errors.New("no timesteps to export")
	}
	sink, err := openSink(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("saving animation as %s...\n", cfg.Output)
	d.Progress = func(done, total int) {
		fmt.Printf("\r  frame %d/%d", done, total)
		if done == total {
			fmt.Println()
		}
	}
	defer func() { d.Progress = nil }()

	if err := d.Run(ctx, sink); err != nil {
		sink.Close()
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}
	fmt.Printf("saved as %s\n", cfg.Output)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	d, cfg, src, err := loadDriver(cmd, args)
	if err != nil {
		return err
	}
	return play(d, cfg, src, watchLog)
}

func play(d *anim.Driver, cfg *config.Config, src logSource, follow bool) error {
	opts := player.Options{
		Name: src.Name,
		FPS:  cfg.FPS,
		Reload: func() (*anim.Driver, error) {
			t, err := src.load(cfg)
			if err != nil {
				return nil, err
			}
			return anim.FromTable(t, cfg.World, cfg.Renderer()), nil
		},
	}

	var w *watch.Watcher
	if follow {
		if src.Path == "" {
			return fmt.Errorf("--watch needs a log file, %s is a stored run", src.Name)
		}
		var err error
		if w, err = watch.New(src.Path); err != nil {
			return err
		}
		defer w.Close()
	}
	return player.Run(player.New(d, opts), w)
}

func runWindow(cmd *cobra.Command, args []string) error {
	d, cfg, src, err := loadDriver(cmd, args)
	if err != nil {
		return err
	}
	gui.Run(d, gui.Options{Title: src.Name, FPS: cfg.FPS, Figure: cfg.Figure})
	return nil
}

// listTimesteps prints the distinct timesteps of a log. Stored runs are
// answered from the record index without loading the table.
func listTimesteps(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}
	src := resolveLog(cfg, args)

	var steps []int
	records := 0
	if src.RunID != "" {
		db, err := storage.New(cfg.DataDir).Open(src.RunID)
		if err != nil {
			return err
		}
		defer db.Close()
		if steps, err = db.Timesteps(); err != nil {
			return err
		}
		if records, err = db.Count(); err != nil {
			return err
		}
	} else {
		t, err := trace.Load(src.Path)
		if err != nil {
			return err
		}
		steps, records = trace.Timesteps(t), len(t)
	}

	fmt.Printf("log: %s\n", src.Name)
	fmt.Printf("records: %s\n", humanize.Comma(int64(records)))
	fmt.Printf("timesteps: %d\n", len(steps))
	for _, ts := range steps {
		fmt.Println(ts)
	}
	return nil
}

// dumpFrame prints the frame of one timestep. Stored runs query only the
// records of that timestep.
func dumpFrame(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	ts, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return fmt.Errorf("invalid timestep %q: %w", args[len(args)-1], err)
	}
	src := resolveLog(cfg, args[:len(args)-1])

	var records trace.Table
	if src.RunID != "" {
		db, err := storage.New(cfg.DataDir).Open(src.RunID)
		if err != nil {
			return err
		}
		defer db.Close()
		if records, err = db.RecordsAt(ts); err != nil {
			return err
		}
	} else if records, err = trace.Load(src.Path); err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(frame.Build(records, ts, cfg.World))
}

func plotStats(cmd *cobra.Command, args []string) error {
	d, _, src, err := loadDriver(cmd, args)
	if err != nil {
		return err
	}

	series := stats.Collect(d)
	if series.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	bees, at := series.Peak()
	fmt.Printf("log: %s\n", src.Name)
	fmt.Printf("timesteps: %d\n", series.Len())
	fmt.Printf("peak bees: %s at timestep %d\n\n", humanize.Comma(int64(bees)), at)

	var data [][]float64
	var colors []asciigraph.AnsiColor
	var names []string
	for _, st := range style.States() {
		data = append(data, series.State(st))
		colors = append(colors, stateColors[st])
		names = append(names, style.LabelOf(st))
	}
	graph := asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(80),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(names...),
		asciigraph.Caption("bees per state"),
	)
	fmt.Println(graph)
	fmt.Println()

	graph = asciigraph.Plot(series.Nectar(),
		asciigraph.Height(height),
		asciigraph.Width(80),
		asciigraph.Caption("nectar on flowers"),
	)
	fmt.Println(graph)

	if csvPath != "" {
		if err := writeFile(csvPath, series.WriteCSV); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", csvPath)
	}
	if pngPath != "" {
		err := writeFile(pngPath, func(w io.Writer) error {
			return stats.RenderChart(w, series, 1024, 512)
		})
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
	}
	return nil
}

var stateColors = map[trace.BeeState]asciigraph.AnsiColor{
	trace.Idle:      asciigraph.Gray,
	trace.Scout:     asciigraph.Blue,
	trace.Returning: asciigraph.Green,
	trace.Dancing:   asciigraph.Red,
	trace.Follower:  asciigraph.Cyan,
	trace.Foraging:  asciigraph.Orange,
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func importLog(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	t, err := trace.Load(args[0])
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	meta, err := st.Import(args[0], t)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", meta.ID)
	fmt.Printf("records: %s\n", humanize.Comma(int64(meta.Records)))
	fmt.Printf("timesteps: %d (%d..%d)\n", meta.Timesteps, meta.FirstTimestep, meta.LastTimestep)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	runs, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tIMPORTED\tRECORDS\tTIMESTEPS\tBEES\tFLOWERS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			run.ID,
			run.Source,
			humanize.Time(run.Timestamp),
			humanize.Comma(int64(run.Records)),
			run.Timesteps,
			humanize.Comma(int64(run.Bees)),
			humanize.Comma(int64(run.Flowers)),
		)
	}

	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMAT\tFPS\tFIGURE\tDISPLAY\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		pw, ph := p.Figure.Pixels()
		format := p.Format
		if format == "" {
			format = export.FormatOf(p.Output)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%dx%d\t%s\t%s\n", name, format, p.FPS, pw, ph, p.Display, p.Theme)
	}
	return w.Flush()
}
