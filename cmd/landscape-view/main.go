//go:build ebiten

package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/df07/go-fixed-landscape/pkg/export"
	"github.com/df07/go-fixed-landscape/pkg/renderer"
	"github.com/df07/go-fixed-landscape/pkg/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

// Config holds the viewer options
type Config struct {
	Scene    string
	Image    string
	Scale    int
	RoadGrid bool
}

// NewConfig returns a Config populated with defaults
func NewConfig() *Config {
	return &Config{Scene: "default", Scale: 2}
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "built-in scene to start from")
	fs.StringVar(&c.Image, "image", c.Image, "show a PPM, PNG or BMP file instead of rendering")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale factor")
	fs.BoolVar(&c.RoadGrid, "road-grid", c.RoadGrid, "start with grid roads")
}

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}

	var view *View
	var img *image.RGBA
	title := "landscape"
	if cfg.Image != "" {
		loaded, err := export.LoadImage(cfg.Image)
		if err != nil {
			log.Fatal(err)
		}
		img = loaded
		title += " - " + cfg.Image
	} else {
		s, err := scene.Lookup(cfg.Scene)
		if err != nil {
			log.Fatal(err)
		}
		rule := renderer.RoadTiles
		if cfg.RoadGrid {
			rule = renderer.RoadGrid
		}
		view = NewView(s, rule)
		if img, err = view.Render(); err != nil {
			log.Fatal(err)
		}
		title += " - " + cfg.Scene
	}
	game := NewGame(img, view, cfg.Scale)

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(game.size.X*cfg.Scale, game.size.Y*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
