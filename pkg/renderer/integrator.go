package renderer

import (
	"math"

	"github.com/dfalck/go-path-tracer/pkg/core"
	"github.com/dfalck/go-path-tracer/pkg/geometry"
)

// Shadow-acne epsilon: scattered rays start at a surface point, so the
// intersection interval must exclude t near zero or surfaces re-hit
// themselves.
const hitEpsilon = 0.001

var (
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
)

// RayColor returns the radiance carried back along the ray. Paths
// terminate at a fixed depth; there is no Russian roulette.
func RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// Past the bounce limit no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, hitEpsilon, math.Inf(1))
	if !isHit {
		return backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(
		RayColor(scatter.Scattered, world, depth-1, sampler))
}

// backgroundGradient returns the white-to-sky-blue vertical gradient
func backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return skyBottom.Lerp(skyTop, t)
}
