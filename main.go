package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene ID (see -help), yaml:<name>, or a path to a .yaml scene file")
	scenesDir := flag.String("scenes", "scenes", "Directory containing .yaml scene files")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	output := flag.String("output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	sequential := flag.Bool("sequential", false, "Render on a single goroutine")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		printHelp(*scenesDir)
		return
	}

	if *format != "png" && *format != "ppm" {
		fmt.Printf("Unknown format: %s. Use 'png' or 'ppm'.\n", *format)
		os.Exit(2)
	}

	fmt.Println("Starting Phong Raytracer...")

	override := scene.CameraConfig{Width: *width, Height: *height}
	selectedScene, err := createScene(*sceneType, *scenesDir, override)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultRenderConfig()
	config.NumWorkers = *workers
	config.Sequential = *sequential

	raytracer := renderer.NewRaytracer(selectedScene, config, renderer.NewDefaultLogger())
	canvas, stats, err := raytracer.Render(context.Background())
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %v\n", stats.Elapsed)

	filename := *output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", selectedScene.Name, fmt.Sprintf("render_%s.%s", timestamp, *format))
	}

	if err := saveCanvas(canvas, *format, filename); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func printHelp(scenesDir string) {
	fmt.Println("Phong Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	if files, err := scene.ListSceneFiles(scenesDir); err == nil {
		for _, info := range files {
			fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
		}
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

// createScene resolves a built-in scene, a scene file ID or a direct .yaml path
func createScene(sceneType, scenesDir string, override scene.CameraConfig) (*scene.Scene, error) {
	if strings.HasSuffix(sceneType, ".yaml") {
		if _, err := os.Stat(sceneType); err != nil {
			return nil, fmt.Errorf("%w: %s", scene.ErrUnknownScene, sceneType)
		}
		return scene.NewFileScene(sceneType, override)
	}
	return scene.LoadScene(sceneType, scenesDir, override)
}

// saveCanvas writes the canvas as PNG or plain PPM, creating parent directories
func saveCanvas(canvas *core.Canvas, format, filename string) (err error) {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	switch format {
	case "ppm":
		return canvas.WritePPM(file)
	case "png":
		return png.Encode(file, canvas.ToRGBA())
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
