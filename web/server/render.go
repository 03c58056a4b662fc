package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// progressEvents is roughly how many progress events one render sends
const progressEvents = 50

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "progress", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// ProgressUpdate reports finished rows
type ProgressUpdate struct {
	Row       int     `json:"row"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
	ElapsedMs int64   `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels     int     `json:"totalPixels"`
	LitPixels       int     `json:"litPixels"`
	RaysCast        int     `json:"raysCast"`
	RowsRendered    int     `json:"rowsRendered"`
	Objects         int     `json:"objects"`
	Workers         int     `json:"workers"`
	Coverage        float64 `json:"coverage"`
	PixelsPerSecond float64 `json:"pixelsPerSecond"`
}

// CompleteUpdate carries the finished image
type CompleteUpdate struct {
	Scene     string `json:"scene"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

func statsFrom(s renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:     s.TotalPixels(),
		LitPixels:       s.LitPixels,
		RaysCast:        s.RaysCast,
		RowsRendered:    s.RowsRendered,
		Objects:         s.Objects,
		Workers:         s.Workers,
		Coverage:        s.Coverage(),
		PixelsPerSecond: s.PixelsPerSecond(),
	}
}

// handleRender renders a scene and streams progress, console output and the
// final image via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Every write to w goes through this channel; the handler waits for the
	// writer to drain it before returning
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, w, sseEventChan)
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
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()
	defer func() {
		close(consoleChan)
		<-consoleDone
	}()

	sceneObj, err := s.createScene(req)
	if err != nil {
		webLogger.Printf("Error loading scene %s: %v\n", req.Scene, err)
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Scene error: %v", err))
		return
	}
	webLogger.Printf("Loaded scene %s with %d objects\n", sceneObj.Name, sceneObj.GetObjectCount())

	raytracer := renderer.NewRaytracer(sceneObj, renderer.RenderConfig{NumWorkers: req.Workers}, webLogger)

	startTime := time.Now()
	step := max(1, sceneObj.Camera.VSize()/progressEvents)
	raytracer.SetRowCallback(func(row, completed, total int) {
		if completed%step != 0 && completed != total {
			return
		}
		s.sendProgress(ctx, sseEventChan, ProgressUpdate{
			Row:       row,
			Completed: completed,
			Total:     total,
			Percent:   100 * float64(completed) / float64(total),
			ElapsedMs: time.Since(startTime).Milliseconds(),
		})
	})

	canvas, stats, err := raytracer.Render(ctx)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	imageData, err := s.imageToBase64PNG(canvas.ToRGBA())
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	data, err := json.Marshal(CompleteUpdate{
		Scene:     req.Scene,
		Width:     canvas.Width,
		Height:    canvas.Height,
		ImageData: imageData,
		Stats:     statsFrom(stats),
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Failed to encode result: %v", err))
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: string(data)}:
	case <-ctx.Done():
	}
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
	webLogger := NewWebLogger(newRenderID(), consoleChan)
	return consoleChan, webLogger
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan <-chan SSEEvent) {
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
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// streamConsoleMessages forwards console messages until consoleChan is closed
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}

		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		}
	}
}

// sendProgress sends a progress event unless the client is gone
func (s *Server) sendProgress(ctx context.Context, sseEventChan chan<- SSEEvent, update ProgressUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Error marshaling progress update: %v", err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "progress", Data: string(data)}:
	case <-ctx.Done():
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan<- SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}

// handleImage renders a scene and returns the image directly as PNG or PPM
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "png"
	}
	if format != "png" && format != "ppm" {
		http.Error(w, fmt.Sprintf("unsupported format: %s", format), http.StatusBadRequest)
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		http.Error(w, err.Error(), sceneErrorStatus(err))
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, renderer.RenderConfig{NumWorkers: req.Workers}, renderer.NewDefaultLogger())
	canvas, _, err := raytracer.Render(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("rendering failed: %v", err), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	contentType := "image/png"
	if format == "ppm" {
		contentType = "image/x-portable-pixmap"
		err = canvas.WritePPM(&buf)
	} else {
		err = png.Encode(&buf, canvas.ToRGBA())
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to encode image: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing image: %v", err)
	}
}
