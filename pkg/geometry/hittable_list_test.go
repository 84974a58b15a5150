package geometry

import (
	"math"
	"testing"

	"github.com/dfalck/go-path-tracer/pkg/core"
)

func TestHittableList_Empty(t *testing.T) {
	world := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := world.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Empty world must not report hits")
	}
}

func TestHittableList_ReturnsClosestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial())
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Both insertion orders must find the near sphere at t=1.5
	for name, world := range map[string]*HittableList{
		"near first": NewHittableList(near, far),
		"far first":  NewHittableList(far, near),
	} {
		t.Run(name, func(t *testing.T) {
			hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected closest hit at t=1.5, got t=%f", hit.T)
			}
		})
	}
}

func TestHittableList_OrderIndependence(t *testing.T) {
	a := NewSphere(core.NewVec3(-0.6, 0, -2), 0.5, testMaterial())
	b := NewSphere(core.NewVec3(0, 0, -3), 0.7, testMaterial())
	c := NewSphere(core.NewVec3(0.4, 0, -1.5), 0.3, testMaterial())

	orders := []*HittableList{
		NewHittableList(a, b, c),
		NewHittableList(c, b, a),
		NewHittableList(b, a, c),
	}

	// Probe a fan of rays; every ordering must agree exactly
	for dx := -0.8; dx <= 0.8; dx += 0.1 {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(dx, 0, -1))

		hit0, isHit0 := orders[0].Hit(ray, 0.001, math.Inf(1))
		for i := 1; i < len(orders); i++ {
			hit, isHit := orders[i].Hit(ray, 0.001, math.Inf(1))
			if isHit != isHit0 {
				t.Fatalf("Order %d disagrees on hit/miss for dx=%f", i, dx)
			}
			if isHit && (hit.T != hit0.T || hit.Point != hit0.Point || hit.Normal != hit0.Normal) {
				t.Fatalf("Order %d returned a different record for dx=%f", i, dx)
			}
		}
	}
}

func TestHittableList_ShrinksInterval(t *testing.T) {
	// The far sphere would hit at t=4.5 but the near sphere shrinks tMax first
	world := NewHittableList(
		NewSphere(core.NewVec3(0, 0, -5), 0.5, testMaterial()),
		NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial()),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expectedPoint := core.NewVec3(0, 0, -1.5)
	if math.Abs(hit.Point.Z-expectedPoint.Z) > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}
