package main

import (
	"fmt"
	"image"
	"io"

	"github.com/df07/go-fixed-landscape/pkg/export"
	"github.com/df07/go-fixed-landscape/pkg/overlay"
	"github.com/df07/go-fixed-landscape/pkg/renderer"
	"github.com/df07/go-fixed-landscape/pkg/scene"
)

// View is one rendered scene shown by the viewer
type View struct {
	Scene    scene.Scene
	RoadRule renderer.RoadRule

	frame *renderer.FrameBuffer
	stats renderer.RenderStats
}

// NewView creates a view of s
func NewView(s scene.Scene, rule renderer.RoadRule) *View {
	return &View{Scene: s, RoadRule: rule}
}

// Render draws the scene with its caption and keeps the frame for snapshots
func (v *View) Render() (*image.RGBA, error) {
	config := renderer.DefaultConfig()
	config.RoadRule = v.RoadRule
	r, err := v.Scene.NewRenderer(config, nil)
	if err != nil {
		return nil, err
	}
	v.frame, v.stats = r.Render()

	img := export.ToImage(v.frame)
	overlay.DrawCaption(img, v.Caption())
	return img, nil
}

// Caption describes the scene for the on-screen overlay
func (v *View) Caption() string {
	roads := "tiles"
	if v.RoadRule == renderer.RoadGrid {
		roads = "grid"
	}
	return fmt.Sprintf("cam %v heading %d\nroads %s, %d sky %d ground",
		v.Scene.Camera, v.Scene.Heading, roads, v.stats.SkyPixels(), v.stats.GroundPixels())
}

// Snapshot writes the last rendered frame as PPM, without the caption
func (v *View) Snapshot(w io.Writer) error {
	if v.frame == nil {
		return fmt.Errorf("nothing rendered yet")
	}
	return export.WritePPM(w, v.frame)
}
