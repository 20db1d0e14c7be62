package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-fixed-landscape/pkg/fixed"
	"github.com/df07/go-fixed-landscape/pkg/renderer"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	X          int                    `json:"x"`
	Y          int                    `json:"y"`
	Surface    string                 `json:"surface"`
	Direction  [3]int32               `json:"direction"` // Normalized Q8.8 view ray
	Distance   int32                  `json:"distance"`  // Ray scale to the ground plane, 0 on the horizon
	Point      [3]int32               `json:"point"`
	RGB        [3]uint8               `json:"rgb"`
	Color      string                 `json:"color"`
	Properties map[string]interface{} `json:"properties"`
}

// InspectResult contains everything computed for one inspected pixel
type InspectResult struct {
	Surface   renderer.Surface
	Direction fixed.Vec3
	Point     fixed.Vec3
	RGB       [3]uint8
}

// inspectPixel traces and shades a single pixel of rend's frame
func inspectPixel(rend *renderer.Renderer, pixelX, pixelY int) InspectResult {
	dir, hit := rend.Trace(pixelX, pixelY)

	// Shade into a scratch frame so the stored-byte rules apply exactly
	fb := rend.NewFrameBuffer()
	pixel := fb.Index(pixelX, pixelY)
	surface := rend.ShadePixel(fb, pixel)
	r, g, b := fb.RGB(pixel)

	return InspectResult{
		Surface:   surface,
		Direction: dir,
		Point:     hit,
		RGB:       [3]uint8{r, g, b},
	}
}

// extractSurfaceInfo returns the values that decided the pixel's branch
func (s *Server) extractSurfaceInfo(rend *renderer.Renderer, result InspectResult) map[string]interface{} {
	properties := make(map[string]interface{})

	switch {
	case result.Surface.IsSky():
		properties["brightness"] = rend.Shader().SkyBrightness(result.Point)
		properties["sunDot"] = fixed.Dot(result.Direction, rend.Light().Direction())

	case result.Surface.IsGround():
		tx, tz := renderer.TileIndex(result.Point)
		properties["tileX"] = tx
		properties["tileZ"] = tz
		properties["road"] = result.Surface == renderer.SurfaceRoad
	}
	return properties
}

// handleInspect handles pixel inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	inspectReq := &RenderRequest{}
	if err := s.parseSceneParams(r, inspectReq); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}
	if pixelX < 0 || pixelX >= renderer.Width || pixelY < 0 || pixelY >= renderer.Height {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	rend, err := inspectReq.Scene.NewRenderer(inspectReq.Config, nil)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result := inspectPixel(rend, pixelX, pixelY)
	writeJSON(w, http.StatusOK, InspectResponse{
		X:          pixelX,
		Y:          pixelY,
		Surface:    result.Surface.String(),
		Direction:  vecArray(result.Direction),
		Distance:   renderer.ProjectionDistance(result.Direction),
		Point:      vecArray(result.Point),
		RGB:        result.RGB,
		Color:      fmt.Sprintf("#%02x%02x%02x", result.RGB[0], result.RGB[1], result.RGB[2]),
		Properties: s.extractSurfaceInfo(rend, result),
	})
}

func vecArray(v fixed.Vec3) [3]int32 {
	return [3]int32{v.X, v.Y, v.Z}
}
