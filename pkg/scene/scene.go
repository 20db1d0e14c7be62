// Package scene holds the inputs of a landscape render: where the camera
// stands, which way it faces and where the light comes from.
package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/df07/go-fixed-landscape/pkg/core"
	"github.com/df07/go-fixed-landscape/pkg/fixed"
	"github.com/df07/go-fixed-landscape/pkg/renderer"
)

// ArgCount is the number of positional integers describing a scene
const ArgCount = 7

var (
	// ErrArgCount is returned when the wrong number of values is given
	ErrArgCount = errors.New("expected 7 integers: cam_x cam_y cam_z heading light_x light_y light_z")
	// ErrZeroLight is returned for a light direction of (0, 0, 0)
	ErrZeroLight = errors.New("light direction must not be zero")
)

// Usage is the positional argument synopsis
const Usage = "cam_x cam_y cam_z heading light_x light_y light_z"

// Scene contains the camera and raw (unnormalized) light direction
type Scene struct {
	Camera  fixed.Vec3 `json:"camera"`
	Heading int32      `json:"heading"`
	Light   fixed.Vec3 `json:"light"`
}

// New creates a scene from already-parsed values
func New(camera fixed.Vec3, heading int32, light fixed.Vec3) Scene {
	return Scene{Camera: camera, Heading: heading, Light: light}
}

// Parse reads the seven positional integers in the order
// cam_x cam_y cam_z heading light_x light_y light_z.
func Parse(args []string) (Scene, error) {
	if len(args) != ArgCount {
		return Scene{}, fmt.Errorf("got %d arguments: %w", len(args), ErrArgCount)
	}

	var v [ArgCount]int32
	for i, arg := range args {
		n, err := parseInt(arg)
		if err != nil {
			return Scene{}, fmt.Errorf("argument %d: %w", i+1, err)
		}
		v[i] = n
	}

	s := New(fixed.NewVec3(v[0], v[1], v[2]), v[3], fixed.NewVec3(v[4], v[5], v[6]))
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// ParseVec3 reads a comma separated triple such as "0,50,0"
func ParseVec3(s string) (fixed.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fixed.Vec3{}, fmt.Errorf("invalid vector %q: expected x,y,z", s)
	}
	var v [3]int32
	for i, p := range parts {
		n, err := parseInt(p)
		if err != nil {
			return fixed.Vec3{}, err
		}
		v[i] = n
	}
	return fixed.NewVec3(v[0], v[1], v[2]), nil
}

// ParseHeading reads a heading in angle units
func ParseHeading(s string) (int32, error) {
	return parseInt(s)
}

func parseInt(s string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return int32(n), nil
}

// Validate checks the preconditions the renderer relies on
func (s Scene) Validate() error {
	if s.Light.IsZero() {
		return ErrZeroLight
	}
	return nil
}

// Args returns the scene as the seven positional arguments
func (s Scene) Args() []string {
	v := []int32{s.Camera.X, s.Camera.Y, s.Camera.Z, s.Heading, s.Light.X, s.Light.Y, s.Light.Z}
	args := make([]string, len(v))
	for i, n := range v {
		args[i] = strconv.Itoa(int(n))
	}
	return args
}

func (s Scene) String() string {
	return strings.Join(s.Args(), " ")
}

// NewRenderer validates the scene and builds a renderer for it
func (s Scene) NewRenderer(config renderer.Config, logger core.Logger) (*renderer.Renderer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return renderer.NewRenderer(
		renderer.NewCamera(s.Camera, s.Heading),
		renderer.NewLight(s.Light),
		config,
		logger,
	), nil
}
