package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dfalck/go-path-tracer/pkg/core"
	"github.com/dfalck/go-path-tracer/pkg/renderer"
	"github.com/dfalck/go-path-tracer/pkg/scene"
)

// stderrLogger keeps progress output off stdout so a piped PPM stays clean
type stderrLogger struct{}

func (l *stderrLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func main() {
	sceneType := flag.String("scene", "default", "Scene: 'default', 'cover' or 'sky'")
	width := flag.Int("width", 400, "Image width in pixels; height follows the aspect ratio")
	aspect := flag.Float64("aspect", 0, "Aspect ratio override (default: scene camera aspect)")
	samples := flag.Int("samples", 0, "Samples per pixel (default: scene recommendation)")
	depth := flag.Int("depth", 0, "Maximum bounce depth (default: scene recommendation)")
	vfov := flag.Float64("vfov", 0, "Vertical field of view in degrees (default: scene camera)")
	aperture := flag.Float64("aperture", 0, "Lens diameter; 0 disables defocus blur (default: scene camera)")
	focusDist := flag.Float64("focus-dist", 0, "Distance to the plane of perfect focus (default: scene camera)")
	lookFrom := flag.String("lookfrom", "", "Camera position as 'x,y,z' (default: scene camera)")
	lookAt := flag.String("lookat", "", "Camera target as 'x,y,z' (default: scene camera)")
	vup := flag.String("vup", "", "Camera up vector as 'x,y,z' (default: scene camera)")
	seed := flag.Int64("seed", 42, "Base RNG seed")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	output := flag.String("o", "", "Output file for the PPM image (default: stdout)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: go-path-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - diffuse, hollow glass and metal spheres on a ground sphere")
		fmt.Println("  cover   - randomized field of small spheres around three large ones")
		fmt.Println("  sky     - empty world, background gradient only")
		return
	}

	if err := run(*sceneType, *width, *aspect, *samples, *depth, *vfov, *aperture,
		*focusDist, *lookFrom, *lookAt, *vup, *seed, *workers, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType string, width int, aspect float64, samples, depth int,
	vfov, aperture, focusDist float64, lookFrom, lookAt, vup string,
	seed int64, workers int, output string) error {

	selectedScene, err := createScene(sceneType, seed)
	if err != nil {
		return err
	}

	if err := applyCameraOverrides(selectedScene, aspect, vfov, aperture,
		focusDist, lookFrom, lookAt, vup); err != nil {
		return err
	}

	config := renderer.Config{
		Width:           width,
		Height:          int(math.Round(float64(width) / selectedScene.CameraConfig.AspectRatio)),
		SamplesPerPixel: selectedScene.SamplingConfig.SamplesPerPixel,
		MaxDepth:        selectedScene.SamplingConfig.MaxDepth,
		Seed:            seed,
		NumWorkers:      workers,
	}
	if samples > 0 {
		config.SamplesPerPixel = samples
	}
	if depth > 0 {
		config.MaxDepth = depth
	}

	r, err := renderer.NewRenderer(selectedScene, config)
	if err != nil {
		return err
	}
	r.SetLogger(&stderrLogger{})

	sink := os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()
		sink = file
	}

	startTime := time.Now()
	if err := r.Render(sink); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Render completed in %v (%dx%d, %d samples, depth %d)\n",
		time.Since(startTime), config.Width, config.Height,
		config.SamplesPerPixel, config.MaxDepth)

	return nil
}

// createScene builds one of the built-in scenes
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene()
	case "cover":
		return scene.NewCoverScene(seed)
	case "sky":
		return scene.NewSkyScene()
	default:
		return nil, fmt.Errorf("unknown scene type: %q", sceneType)
	}
}

// applyCameraOverrides merges explicitly set camera flags over the
// scene's camera defaults. Flags left at their zero value keep the
// scene configuration, except flags the user set explicitly.
func applyCameraOverrides(s *scene.Scene, aspect, vfov, aperture, focusDist float64,
	lookFrom, lookAt, vup string) error {

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["aspect"] {
		s.CameraConfig.AspectRatio = aspect
	}
	if set["vfov"] {
		s.CameraConfig.VFov = vfov
	}
	if set["aperture"] {
		s.CameraConfig.Aperture = aperture
	}
	if set["focus-dist"] {
		s.CameraConfig.FocusDist = focusDist
	}

	var err error
	if set["lookfrom"] {
		if s.CameraConfig.LookFrom, err = parseVec3(lookFrom); err != nil {
			return fmt.Errorf("invalid -lookfrom: %w", err)
		}
	}
	if set["lookat"] {
		if s.CameraConfig.LookAt, err = parseVec3(lookAt); err != nil {
			return fmt.Errorf("invalid -lookat: %w", err)
		}
	}
	if set["vup"] {
		if s.CameraConfig.VUp, err = parseVec3(vup); err != nil {
			return fmt.Errorf("invalid -vup: %w", err)
		}
	}

	return nil
}

// parseVec3 parses a comma-separated triple like "1,2.5,-3"
func parseVec3(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("want 3 comma-separated values, got %q", s)
	}

	var components [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		components[i] = v
	}

	return core.NewVec3(components[0], components[1], components[2]), nil
}
