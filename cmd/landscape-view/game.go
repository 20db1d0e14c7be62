//go:build ebiten

package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a still frame to the ebiten.Game interface.
type Game struct {
	view  *View // nil when showing a loaded image
	frame *ebiten.Image
	size  image.Point
	scale int
}

// NewGame creates a game showing img; snapshots come from view when set
func NewGame(img *image.RGBA, view *View, scale int) *Game {
	size := img.Bounds().Size()
	frame := ebiten.NewImage(size.X, size.Y)
	frame.WritePixels(img.Pix)
	return &Game{view: view, frame: frame, size: size, scale: scale}
}

// Update quits on Q or Escape and saves a snapshot on P.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.view != nil && inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.saveSnapshot()
	}
	return nil
}

func (g *Game) saveSnapshot() {
	name := fmt.Sprintf("landscape-%d.ppm", time.Now().Unix())
	file, err := os.Create(name)
	if err != nil {
		log.Printf("snapshot failed: %v", err)
		return
	}
	defer file.Close()
	if err := g.view.Snapshot(file); err != nil {
		log.Printf("snapshot failed: %v", err)
		return
	}
	log.Printf("saved %s (%s)", name, g.view.Scene)
}

// Draw blits the frame scaled up to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.frame, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.X * g.scale, g.size.Y * g.scale
}
