package geometry

import (
	"github.com/dfalck/go-path-tracer/pkg/core"
	"github.com/dfalck/go-path-tracer/pkg/material"
)

// Hittable is the intersection query contract for anything a ray can hit
type Hittable interface {
	// Hit tests the ray against the shape over the open interval
	// (tMin, tMax) and returns the closest hit record, if any
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
