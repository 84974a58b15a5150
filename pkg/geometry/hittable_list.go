package geometry

import (
	"github.com/dfalck/go-path-tracer/pkg/core"
	"github.com/dfalck/go-path-tracer/pkg/material"
)

// HittableList aggregates shapes and answers the closest-hit query.
// Insertion order never affects the result.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list from the given shapes
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends a shape to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit returns the closest hit in (tMin, tMax) across all shapes
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
