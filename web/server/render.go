package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-fixed-landscape/pkg/core"
	"github.com/df07/go-fixed-landscape/pkg/export"
	"github.com/df07/go-fixed-landscape/pkg/renderer"
)

// BandUpdate represents a single band update sent via SSE
type BandUpdate struct {
	Y0         int    `json:"y0"`
	Y1         int    `json:"y1"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this band
	BandNumber int    `json:"bandNumber"` // Completion order, 1-based
	TotalBands int    `json:"totalBands"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "band", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleStream renders a frame and streams every band to the client via
// SSE as soon as it is shaded
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Single writer goroutine; the handler waits for it before returning
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(w, ctx, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	rend, err := req.Scene.NewRenderer(req.Config, webLogger)
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	startTime := time.Now()
	bandChan, frameChan, errChan := rend.RenderProgressive(ctx, s.numWorkers)

	for bandChan != nil {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(ctx, sseEventChan, msg)
		case update, ok := <-bandChan:
			if !ok {
				bandChan = nil // All bands sent
				continue
			}
			s.handleBandUpdate(ctx, sseEventChan, update)
		case <-ctx.Done():
			// Client disconnected
			return
		}
	}

	result, ok := <-frameChan
	if !ok {
		err := <-errChan
		s.drainConsole(ctx, consoleChan, sseEventChan)
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}
	s.drainConsole(ctx, consoleChan, sseEventChan)
	s.handleComplete(ctx, sseEventChan, result, time.Since(startTime))
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, NewWebLogger(renderID, consoleChan)
}

// writeSSEEvents writes every event in a single goroutine until the channel
// is closed or the client disconnects
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan <-chan SSEEvent) {
	flusher, _ := w.(http.Flusher)
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		case <-ctx.Done():
			return
		}
	}
}

// sendEvent queues an event unless the client has gone away
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, event SSEEvent) {
	select {
	case sseEventChan <- event:
	case <-ctx.Done():
	}
}

func (s *Server) sendConsoleMessage(ctx context.Context, sseEventChan chan<- SSEEvent, msg ConsoleMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling console message: %v", err)
		return
	}
	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "console", Data: string(data)})
}

// drainConsole forwards console messages already queued by the logger
func (s *Server) drainConsole(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(ctx, sseEventChan, msg)
		default:
			return
		}
	}
}

// handleBandUpdate encodes one band as PNG and sends it
func (s *Server) handleBandUpdate(ctx context.Context, sseEventChan chan<- SSEEvent, update renderer.BandUpdate) {
	img := export.FromRGB(update.Pixels, renderer.Width, update.Band.Y1-update.Band.Y0)
	imageData, err := s.imageToBase64PNG(img)
	if err != nil {
		log.Printf("Error encoding band %d: %v", update.Band.TaskID, err)
		return
	}

	data, err := json.Marshal(BandUpdate{
		Y0:         update.Band.Y0,
		Y1:         update.Band.Y1,
		ImageData:  imageData,
		BandNumber: update.BandNumber,
		TotalBands: update.TotalBands,
	})
	if err != nil {
		log.Printf("Error marshaling band update: %v", err)
		return
	}
	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "band", Data: string(data)})
}

// handleComplete sends the final frame statistics
func (s *Server) handleComplete(ctx context.Context, sseEventChan chan<- SSEEvent, result renderer.FrameResult, elapsed time.Duration) {
	stats := newStats(result.Stats)
	stats.ElapsedMs = elapsed.Milliseconds()

	data, err := json.Marshal(stats)
	if err != nil {
		log.Printf("Error marshaling stats: %v", err)
		return
	}
	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "complete", Data: string(data)})
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan<- SSEEvent, message string) {
	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: message})
}
