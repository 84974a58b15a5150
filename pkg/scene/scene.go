package scene

import (
	"github.com/dfalck/go-path-tracer/pkg/geometry"
	"github.com/dfalck/go-path-tracer/pkg/renderer"
)

// SamplingConfig carries the per-scene sampling recommendations
type SamplingConfig struct {
	SamplesPerPixel int
	MaxDepth        int
}

// Scene bundles a world with camera and sampling configuration.
// Built before rendering, read-only during, discarded after.
type Scene struct {
	World          *geometry.HittableList
	CameraConfig   renderer.CameraConfig
	SamplingConfig SamplingConfig
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() geometry.Hittable {
	return s.World
}

// GetCameraConfig implements renderer.Scene
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.CameraConfig
}
