package scene

import (
	"github.com/dfalck/go-path-tracer/pkg/core"
	"github.com/dfalck/go-path-tracer/pkg/geometry"
	"github.com/dfalck/go-path-tracer/pkg/material"
	"github.com/dfalck/go-path-tracer/pkg/renderer"
)

// NewCoverScene creates the randomized field of small spheres around
// three large feature spheres. The layout is deterministic for a given
// seed.
func NewCoverScene(seed int64) (*Scene, error) {
	sampler := core.NewSeededSampler(seed)
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	glass, err := material.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				half := sampler.Get3D().Multiply(0.5)
				albedo := core.NewVec3(0.5+half.X, 0.5+half.Y, 0.5+half.Z)
				fuzz := 0.5 * sampler.Get1D()
				metal, err := material.NewMetal(albedo, fuzz)
				if err != nil {
					return nil, err
				}
				mat = metal
			default:
				mat = glass
			}

			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0,
		material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))

	bigMetal, err := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)
	if err != nil {
		return nil, err
	}
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, bigMetal))

	return &Scene{
		World: world,
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(13, 2, 3),
			LookAt:      core.NewVec3(0, 0, 0),
			VUp:         core.NewVec3(0, 1, 0),
			VFov:        20.0,
			AspectRatio: 3.0 / 2.0,
			Aperture:    0.1,
			FocusDist:   10.0,
		},
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 500,
			MaxDepth:        50,
		},
	}, nil
}
