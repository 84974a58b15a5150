package scene

import (
	"github.com/dfalck/go-path-tracer/pkg/core"
	"github.com/dfalck/go-path-tracer/pkg/geometry"
	"github.com/dfalck/go-path-tracer/pkg/material"
	"github.com/dfalck/go-path-tracer/pkg/renderer"
)

// NewDefaultScene creates the feature scene: a diffuse sphere flanked by
// hollow glass and polished metal on a diffuse ground, viewed through a
// thin lens with mild defocus blur.
func NewDefaultScene() (*Scene, error) {
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	lambertianCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))

	materialGlass, err := material.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}
	metalRight, err := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)
	if err != nil {
		return nil, err
	}

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianCenter),
		// Hollow glass: positive outer shell plus negative inner sphere
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialGlass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, materialGlass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalRight),
	)

	lookFrom := core.NewVec3(3, 3, 2)
	lookAt := core.NewVec3(0, 0, -1)

	return &Scene{
		World: world,
		CameraConfig: renderer.CameraConfig{
			LookFrom:    lookFrom,
			LookAt:      lookAt,
			VUp:         core.NewVec3(0, 1, 0),
			VFov:        20.0,
			AspectRatio: 16.0 / 9.0,
			Aperture:    0.3,
			FocusDist:   lookFrom.Subtract(lookAt).Length(),
		},
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}, nil
}

// NewSkyScene creates an empty world that renders only the background
// gradient. Useful as a smoke test for the sampling and output pipeline.
func NewSkyScene() (*Scene, error) {
	return &Scene{
		World: geometry.NewHittableList(),
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(0, 0, 0),
			LookAt:      core.NewVec3(0, 0, -1),
			VUp:         core.NewVec3(0, 1, 0),
			VFov:        90.0,
			AspectRatio: 16.0 / 9.0,
			Aperture:    0.0,
			FocusDist:   1.0,
		},
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 10,
			MaxDepth:        5,
		},
	}, nil
}
