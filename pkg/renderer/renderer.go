package renderer

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dfalck/go-path-tracer/pkg/core"
	"github.com/dfalck/go-path-tracer/pkg/geometry"
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed for the per-scanline RNG schedule
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
		NumWorkers:      0,
	}
}

// Scene provides the renderer with a world and a camera configuration.
// Defined here to avoid a dependency on the scene package.
type Scene interface {
	GetWorld() geometry.Hittable
	GetCameraConfig() CameraConfig
}

// Renderer drives the per-pixel sampling loop and owns the pixel buffer.
// The scene and camera are immutable during rendering and shared by all
// workers without synchronization.
type Renderer struct {
	world  geometry.Hittable
	camera *Camera
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene. Construction
// rejects degenerate sampling parameters and camera configurations.
func NewRenderer(scene Scene, config Config) (*Renderer, error) {
	if config.Width < 2 || config.Height < 2 {
		return nil, fmt.Errorf("image dimensions must be at least 2x2, got %dx%d", config.Width, config.Height)
	}
	if config.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("samples per pixel must be positive, got %d", config.SamplesPerPixel)
	}
	if config.MaxDepth <= 0 {
		return nil, fmt.Errorf("max depth must be positive, got %d", config.MaxDepth)
	}

	camera, err := NewCamera(scene.GetCameraConfig())
	if err != nil {
		return nil, err
	}

	return &Renderer{
		world:  scene.GetWorld(),
		camera: camera,
		config: config,
	}, nil
}

// SetLogger installs a progress logger. A nil logger disables progress output.
func (r *Renderer) SetLogger(logger core.Logger) {
	r.logger = logger
}

// Render renders the scene and writes the plain PPM image to w.
// This is the single core-to-host entry point: pixels are emitted
// top-to-bottom, left-to-right regardless of worker scheduling.
func (r *Renderer) Render(w io.Writer) error {
	pixels := r.RenderPixels()
	return WritePPM(w, pixels, r.config.Width, r.config.Height)
}

// RenderPixels renders every pixel and returns the averaged linear
// radiance buffer in emission order: row H-1 first, columns left to right.
func (r *Renderer) RenderPixels() []core.Vec3 {
	width, height := r.config.Width, r.config.Height
	pixels := make([]core.Vec3, width*height)

	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := make(chan int, height)
	for j := height - 1; j >= 0; j-- {
		rows <- j
	}
	close(rows)

	var remaining atomic.Int64
	remaining.Store(int64(height))

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				// One RNG stream per scanline keeps the image
				// byte-identical for any worker count
				sampler := core.NewSeededSampler(r.config.Seed + int64(j))
				r.renderRow(j, pixels, sampler)
				if r.logger != nil {
					r.logger.Printf("Scanlines remaining: %d\n", remaining.Add(-1))
				}
			}
		}()
	}
	wg.Wait()

	return pixels
}

// renderRow renders scanline j into the shared pixel buffer. Rows are
// disjoint, so no locking is needed.
func (r *Renderer) renderRow(j int, pixels []core.Vec3, sampler core.Sampler) {
	width, height := r.config.Width, r.config.Height

	for i := 0; i < width; i++ {
		colorAccum := core.Vec3{}

		for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
			jitter := sampler.Get2D()
			s := (float64(i) + jitter.X) / float64(width-1)
			t := (float64(j) + jitter.Y) / float64(height-1)

			ray := r.camera.GetRay(s, t, sampler)
			colorAccum = colorAccum.Add(RayColor(ray, r.world, r.config.MaxDepth, sampler))
		}

		avg := colorAccum.Multiply(1.0 / float64(r.config.SamplesPerPixel))

		// Buffer is laid out in emission order: row H-1 lands first
		pixels[(height-1-j)*width+i] = avg
	}
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
