package material

import (
	"fmt"

	"github.com/dfalck/go-path-tracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material. Fuzz above 1.0 is clamped to
// 1.0; negative fuzz is rejected.
func NewMetal(albedo core.Vec3, fuzz float64) (*Metal, error) {
	if fuzz < 0 {
		return nil, fmt.Errorf("metal fuzz must be non-negative, got %g", fuzz)
	}
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}, nil
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Fuzziness perturbs the reflection direction
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzz))
	}

	scattered := core.NewRay(hit.Point, reflected)

	// Absorb rays that the perturbation pushed below the surface
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}
