// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axisplot plots dataset files.
//
// axisplot reads one or more dataset files (standard input if none are
// given) and renders every series on a shared pair of axes. Each series
// is drawn as a line, bars or markers depending on the "style"
// configuration in effect where it first appears. Axis configuration
// comes from the configuration file, AXISPLOT_* environment variables
// and axis keys in the dataset header, in increasing priority. For
// example,
//
//	x-scale: ordinal
//	x-distinct: true
//	y-min-mode: fixed
//	y-min: 0
//	y-max-mode: push-tick
//	style: bars
//	Latency get 12
//	Latency put 30
//
// draws one bar per request kind with a y axis starting at zero.
package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aclements/go-plotaxis/chart"
	"github.com/aclements/go-plotaxis/dataset"
	"github.com/aclements/go-plotaxis/internal/config"
	"github.com/aclements/go-plotaxis/internal/observability"
	"github.com/aclements/go-plotaxis/plotter"
	"github.com/aclements/go-plotaxis/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		observability.GetLogger().Error("axisplot failed", zap.Error(err))
		observability.Sync()
		fmt.Fprintln(os.Stderr, "axisplot:", err)
		os.Exit(1)
	}
}

type options struct {
	configFile string
	out        string
	table      bool
	pointer    string
}

func newRootCmd() *cobra.Command {
	var opts options
	v := config.NewViper()
	cmd := &cobra.Command{
		Use:           "axisplot [flags] [inputs...]",
		Short:         "Plot dataset files on shared axes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadFile(v, opts.configFile); err != nil {
				return err
			}
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}
			observability.InitializeLogger(cfg.Logger)
			defer observability.Sync()

			w := cmd.OutOrStdout()
			if opts.out != "" {
				f, err := os.Create(opts.out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return run(cfg, args, opts, w, observability.GetLogger())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "read configuration from `file`")
	flags.StringVarP(&opts.out, "output", "o", "", "write output to `file` (default: stdout)")
	flags.BoolVar(&opts.table, "table", false, "output a table of plot geometry instead of a plot")
	flags.StringVar(&opts.pointer, "pointer", "", "show the values under the pointer at plot-area position `x,y`")
	flags.String("format", "svg", "output `format`: svg or png")
	flags.Int("width", 640, "image width in pixels")
	flags.Int("height", 400, "image height in pixels")
	flags.String("title", "", "plot `title` (default: the input file names)")
	flags.String("log-level", "info", "log `level`")
	for key, flag := range map[string]string{
		"output.format": "format",
		"output.width":  "width",
		"output.height": "height",
		"output.title":  "title",
		"logger.level":  "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
	return cmd
}

// run reads the datasets at paths, plots them according to cfg, and
// writes the result to w.
func run(cfg *config.Config, paths []string, opts options, w io.Writer, log *zap.Logger) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	ds, err := readDatasets(paths)
	if err != nil {
		return err
	}
	log.Debug("read datasets", zap.Strings("paths", paths), zap.Int("series", len(ds.Series)))

	c, err := chart.New(chart.WithLogger(log.Named("chart")))
	if err != nil {
		return err
	}
	if err := configureAxes(c, cfg, ds); err != nil {
		return err
	}
	elems, err := mount(c, ds)
	if err != nil {
		return err
	}

	l := render.DefaultLayout(cfg.Output.Width, cfg.Output.Height)
	l.Title = title(cfg, ds, paths)
	l.Apply(c)
	if opts.pointer != "" {
		var x, y float64
		if _, err := fmt.Sscanf(opts.pointer, "%g,%g", &x, &y); err != nil {
			return fmt.Errorf("bad --pointer %q: %w", opts.pointer, err)
		}
		c.SetPointer(chart.At(x, y))
		hx, okx := c.HoverX()
		hy, oky := c.HoverY()
		log.Info("pointer", zap.Float64("x", hx), zap.Bool("x_ok", okx), zap.Float64("y", hy), zap.Bool("y_ok", oky))
	}

	if opts.table {
		tab, err := geometryTable(elems)
		if err != nil {
			return err
		}
		return printTable(w, tab)
	}

	switch cfg.Output.Format {
	case "png":
		return render.PNG(w, c, l, elems)
	default:
		return render.SVG(w, c, l, elems)
	}
}

func readDatasets(paths []string) (*dataset.Dataset, error) {
	all := &dataset.Dataset{Config: make(map[string]string)}
	for _, path := range paths {
		ds, err := readDataset(path)
		if err != nil {
			return nil, err
		}
		for k, v := range ds.Config {
			all.Config[k] = v
		}
		all.Series = append(all.Series, ds.Series...)
	}
	return all, nil
}

func readDataset(path string) (*dataset.Dataset, error) {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}
	ds, err := dataset.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// configureAxes applies cfg and then the dataset's axis keys to c.
func configureAxes(c *chart.Chart, cfg *config.Config, ds *dataset.Dataset) error {
	for _, axis := range []struct {
		name string
		cfg  config.AxisConfig
		ax   *chart.Axis
	}{{"x", cfg.X, c.X}, {"y", cfg.Y, c.Y}} {
		a, err := axis.cfg.Merge(ds.AxisConfig(axis.name))
		if err != nil {
			return fmt.Errorf("%s axis: %w", axis.name, err)
		}
		if err := a.Apply(axis.ax); err != nil {
			return fmt.Errorf("%s axis: %w", axis.name, err)
		}
	}
	return nil
}

// mount creates and mounts an element for every series in ds. Marker
// series share one group.
func mount(c *chart.Chart, ds *dataset.Dataset) ([]plotter.Element, error) {
	var elems []plotter.Element
	var colored []interface{ SetColor(color.Color) }
	group := plotter.NewGroup(c)
	for _, s := range ds.Series {
		switch s.Style {
		case dataset.StyleBars:
			b := plotter.NewBars(c, s.Name, s.X, s.Y)
			if err := b.Mount(); err != nil {
				return nil, err
			}
			elems, colored = append(elems, b), append(colored, b)
		case dataset.StyleMarkers:
			m := plotter.NewMarkers(c, s.Name, s.X, s.Y)
			if err := group.Add(m); err != nil {
				return nil, err
			}
			elems, colored = append(elems, m), append(colored, m)
		default:
			l := plotter.NewLine(c, s.Name, s.X, s.Y)
			if err := l.Mount(); err != nil {
				return nil, err
			}
			elems, colored = append(elems, l), append(colored, l)
		}
	}
	if err := group.Mount(); err != nil {
		return nil, err
	}
	plotter.Colorize(colored...)
	return elems, nil
}

func title(cfg *config.Config, ds *dataset.Dataset, paths []string) string {
	if cfg.Output.Title != "" {
		return cfg.Output.Title
	}
	if t := ds.Config["title"]; t != "" {
		return t
	}
	if len(paths) == 1 && paths[0] == "-" {
		return ""
	}
	return strings.Join(paths, " ")
}
