package renderer

import (
	"math"
	"testing"

	"github.com/dfalck/go-path-tracer/pkg/core"
	"github.com/dfalck/go-path-tracer/pkg/geometry"
	"github.com/dfalck/go-path-tracer/pkg/material"
)

// absorber swallows every ray
type absorber struct{}

func (a *absorber) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

// upScatter deflects every ray straight up with a fixed attenuation
type upScatter struct {
	attenuation core.Vec3
}

func (u *upScatter) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{
		Scattered:   core.NewRay(hit.Point, core.NewVec3(0, 1, 0)),
		Attenuation: u.attenuation,
	}, true
}

func TestRayColor_DepthZeroIsBlack(t *testing.T) {
	world := geometry.NewHittableList()
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	color := RayColor(ray, world, 0, core.NewSeededSampler(42))
	if color != (core.Vec3{}) {
		t.Errorf("Expected black at depth 0, got %v", color)
	}
}

func TestRayColor_MissReturnsGradient(t *testing.T) {
	world := geometry.NewHittableList()
	sampler := core.NewSeededSampler(42)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.Vec3{}, tt.direction)
			color := RayColor(ray, world, 5, sampler)

			if math.Abs(color.X-tt.expected.X) > 1e-9 ||
				math.Abs(color.Y-tt.expected.Y) > 1e-9 ||
				math.Abs(color.Z-tt.expected.Z) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestRayColor_GradientIgnoresDirectionScale(t *testing.T) {
	world := geometry.NewHittableList()
	sampler := core.NewSeededSampler(42)

	a := RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), world, 5, sampler)
	b := RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 7, 0)), world, 5, sampler)

	if a != b {
		t.Errorf("Background must normalize the direction: %v vs %v", a, b)
	}
}

func TestRayColor_AbsorptionIsBlack(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, &absorber{}),
	)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	color := RayColor(ray, world, 5, core.NewSeededSampler(42))
	if color != (core.Vec3{}) {
		t.Errorf("Expected black for absorbed ray, got %v", color)
	}
}

func TestRayColor_AttenuationMultipliesAlongPath(t *testing.T) {
	// One bounce off a gray deflector, then the sky straight overhead:
	// 0.5 * (0.5, 0.7, 1.0)
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, &upScatter{attenuation: core.NewVec3(0.5, 0.5, 0.5)}),
	)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	color := RayColor(ray, world, 5, core.NewSeededSampler(42))
	expected := core.NewVec3(0.25, 0.35, 0.5)

	if math.Abs(color.X-expected.X) > 1e-9 ||
		math.Abs(color.Y-expected.Y) > 1e-9 ||
		math.Abs(color.Z-expected.Z) > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

// inwardScatter always bounces back through the sphere center, trapping
// the path inside forever
type inwardScatter struct {
	center core.Vec3
}

func (s *inwardScatter) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{
		Scattered:   core.NewRay(hit.Point, s.center.Subtract(hit.Point)),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

func TestRayColor_DepthLimitTerminatesTrappedPaths(t *testing.T) {
	// A path that never escapes must end in black at the depth bound
	// rather than recurse forever
	center := core.NewVec3(0, 0, -2)
	world := geometry.NewHittableList(
		geometry.NewSphere(center, 0.5, &inwardScatter{center: center}),
	)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	color := RayColor(ray, world, 8, core.NewSeededSampler(42))
	if color != (core.Vec3{}) {
		t.Errorf("Expected black for a trapped path, got %v", color)
	}
}

func TestRayColor_ScatteredRaysDoNotSelfIntersect(t *testing.T) {
	// Shadow acne check: scattered rays start on the surface; the 0.001
	// epsilon must keep them from re-hitting their own origin point
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	world := geometry.NewHittableList(sphere)

	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))
	hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	sampler := core.NewSeededSampler(42)
	lambertian := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	for i := 0; i < 200; i++ {
		scatter, didScatter := lambertian.Scatter(ray, *hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian must always scatter")
		}

		// A convex surface cannot be re-hit by an outward ray
		if reHit, isReHit := world.Hit(scatter.Scattered, 0.001, math.Inf(1)); isReHit {
			t.Fatalf("Scattered ray re-hit the surface at t=%g", reHit.T)
		}
	}
}
