package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/df07/go-fixed-landscape/pkg/core"
	"github.com/df07/go-fixed-landscape/pkg/export"
	"github.com/df07/go-fixed-landscape/pkg/renderer"
	"github.com/df07/go-fixed-landscape/pkg/scene"
)

// Exit codes
const (
	exitOK          = 0
	exitError       = 1
	exitUsage       = 2
	exitInterrupted = 130
)

// Config holds the command-line options
type Config struct {
	Output   string
	Format   string
	Scale    int
	Workers  int
	Caption  string
	Scene    string
	RoadGrid bool
	Stats    bool
}

// NewConfig returns a Config populated with defaults
func NewConfig() *Config {
	return &Config{Output: "-", Format: "ppm", Scale: 1}
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Output, "o", c.Output, "output file, - for stdout")
	fs.StringVar(&c.Format, "format", c.Format, "output format: ppm, png or bmp")
	fs.IntVar(&c.Scale, "scale", c.Scale, "integer upscale factor (png and bmp only)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel workers: 0 renders in one pass, -1 uses every CPU")
	fs.StringVar(&c.Caption, "caption", c.Caption, "caption text drawn on png and bmp output")
	fs.StringVar(&c.Scene, "scene", c.Scene, "built-in scene to render instead of positional arguments")
	fs.BoolVar(&c.RoadGrid, "road-grid", c.RoadGrid, "draw roads as a grid of strips instead of single tiles")
	fs.BoolVar(&c.Stats, "stats", c.Stats, "log surface statistics")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "landscape: ", 0)

	cfg := NewConfig()
	fs := flag.NewFlagSet("landscape", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		logger.Printf("%v", err)
		return exitUsage
	}

	s, err := selectScene(cfg, fs.Args())
	if err != nil {
		logger.Printf("%v", err)
		printUsage(fs, stderr)
		return exitError
	}

	fb, stats, err := renderScene(ctx, s, cfg, logger)
	if err != nil {
		logger.Printf("render failed: %v", err)
		if errors.Is(err, context.Canceled) {
			return exitInterrupted
		}
		return exitError
	}
	if cfg.Stats {
		logger.Printf("%v", stats)
	}

	opts := export.Options{Format: format, Scale: cfg.Scale, Caption: cfg.Caption}
	if err := writeOutput(cfg.Output, stdout, fb, opts); err != nil {
		logger.Printf("%v", err)
		return exitError
	}
	return exitOK
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: landscape [options] %s\n", scene.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-13s %s\n", info.ID, info.Description)
	}
}

// selectScene picks a built-in scene or parses the positional arguments
func selectScene(cfg *Config, args []string) (scene.Scene, error) {
	if cfg.Scene == "" {
		return scene.Parse(args)
	}
	if len(args) > 0 {
		return scene.Scene{}, fmt.Errorf("-scene cannot be combined with positional arguments")
	}
	return scene.Lookup(cfg.Scene)
}

func renderScene(ctx context.Context, s scene.Scene, cfg *Config, logger core.Logger) (*renderer.FrameBuffer, renderer.RenderStats, error) {
	config := renderer.DefaultConfig()
	if cfg.RoadGrid {
		config.RoadRule = renderer.RoadGrid
	}

	r, err := s.NewRenderer(config, logger)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	if cfg.Workers == 0 {
		fb, stats := r.Render()
		return fb, stats, nil
	}
	return r.RenderParallel(ctx, max(cfg.Workers, 0))
}

func writeOutput(path string, stdout io.Writer, fb *renderer.FrameBuffer, opts export.Options) error {
	var out io.Writer = stdout
	if path != "-" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error creating file: %w", err)
		}
		defer file.Close()
		out = file
	}

	w := bufio.NewWriter(out)
	if err := export.Write(w, fb, opts); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
