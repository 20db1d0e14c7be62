package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-fixed-landscape/pkg/export"
	"github.com/df07/go-fixed-landscape/pkg/renderer"
	"github.com/df07/go-fixed-landscape/pkg/scene"
)

// DefaultScene is rendered when a request names no scene
const DefaultScene = "default"

// Server handles web requests for the landscape renderer
type Server struct {
	port       int
	numWorkers int // 0 uses every CPU
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a parsed render request
type RenderRequest struct {
	Scene   scene.Scene     // Camera, heading and raw light
	Config  renderer.Config // Rendering options
	Format  export.Format   // Output container for /api/render
	Scale   int             // Integer upscale factor
	Caption string          // Optional caption drawn on png and bmp output
}

// Stats represents render statistics
type Stats struct {
	TotalPixels int            `json:"totalPixels"`
	ElapsedMs   int64          `json:"elapsedMs"`
	Surfaces    map[string]int `json:"surfaces"`
}

func newStats(rs renderer.RenderStats) Stats {
	surfaces := make(map[string]int, len(rs.Surfaces))
	for i, n := range rs.Surfaces {
		surfaces[renderer.Surface(i).String()] = n
	}
	return Stats{
		TotalPixels: rs.TotalPixels,
		ElapsedMs:   rs.Elapsed.Milliseconds(),
		Surfaces:    surfaces,
	}
}

// Handler returns the HTTP routes served by s
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/stream", s.handleStream)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeJSON(w, http.StatusOK, scene.ScenesResponse{Scenes: scene.ListScenes()})
}

// handleRender renders one frame and returns it as an image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request: " + err.Error()})
		return
	}

	rend, err := req.Scene.NewRenderer(req.Config, nil)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	startTime := time.Now()
	fb, stats, err := rend.RenderParallel(r.Context(), s.numWorkers)
	if err != nil {
		// Client went away
		log.Printf("Render of %v aborted: %v", req.Scene, err)
		return
	}

	var buf bytes.Buffer
	opts := export.Options{Format: req.Format, Scale: req.Scale, Caption: req.Caption}
	if err := export.Write(&buf, fb, opts); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	log.Printf("Rendered %v as %s in %v (%d sky, %d ground pixels)",
		req.Scene, req.Format, time.Since(startTime), stats.SkyPixels(), stats.GroundPixels())

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses the scene and output parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}
	if err := s.parseSceneParams(r, req); err != nil {
		return nil, err
	}

	query := r.URL.Query()

	req.Format = export.FormatPNG
	if value := query.Get("format"); value != "" {
		format, err := export.ParseFormat(value)
		if err != nil {
			return nil, err
		}
		req.Format = format
	}

	var err error
	if req.Scale, err = parseIntParam(query, "scale", 1, 1, 8); err != nil {
		return nil, err
	}
	req.Caption = query.Get("caption")
	return req, nil
}

// parseSceneParams starts from a built-in scene and applies any cam,
// heading, light and roadGrid overrides
func (s *Server) parseSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	id := query.Get("scene")
	if id == "" {
		id = DefaultScene
	}
	base, err := scene.Lookup(id)
	if err != nil {
		return err
	}
	req.Scene = base

	if value := query.Get("cam"); value != "" {
		if req.Scene.Camera, err = scene.ParseVec3(value); err != nil {
			return fmt.Errorf("invalid cam: %w", err)
		}
	}
	if value := query.Get("heading"); value != "" {
		if req.Scene.Heading, err = scene.ParseHeading(value); err != nil {
			return fmt.Errorf("invalid heading: %w", err)
		}
	}
	if value := query.Get("light"); value != "" {
		if req.Scene.Light, err = scene.ParseVec3(value); err != nil {
			return fmt.Errorf("invalid light: %w", err)
		}
	}

	req.Config = renderer.DefaultConfig()
	if value := query.Get("roadGrid"); value != "" {
		grid, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid roadGrid: %s", value)
		}
		if grid {
			req.Config.RoadRule = renderer.RoadGrid
		}
	}

	return req.Scene.Validate()
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// handleIndex serves a minimal page that streams the default scene
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Fixed-point Landscape</title></head>
<body style="background:#111;color:#ddd;font-family:monospace">
<canvas id="frame" width="320" height="200" style="width:640px;height:400px;image-rendering:pixelated"></canvas>
<pre id="console"></pre>
<script>
const ctx = document.getElementById("frame").getContext("2d");
const out = document.getElementById("console");
const source = new EventSource("/api/stream" + location.search);
source.addEventListener("band", e => {
  const band = JSON.parse(e.data);
  const img = new Image();
  img.onload = () => ctx.drawImage(img, 0, band.y0);
  img.src = "data:image/png;base64," + band.imageData;
});
source.addEventListener("console", e => { out.textContent += JSON.parse(e.data).message; });
source.addEventListener("complete", e => { out.textContent += e.data + "\n"; source.close(); });
source.addEventListener("error", e => { if (e.data) out.textContent += "error: " + e.data + "\n"; source.close(); });
</script>
</body>
</html>
`
