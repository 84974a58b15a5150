package renderer

import (
	"fmt"
	"math"

	"github.com/dfalck/go-path-tracer/pkg/core"
)

// CameraConfig holds the parameters for constructing a thin-lens camera
type CameraConfig struct {
	LookFrom    core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera looks at
	VUp         core.Vec3 // View-up vector
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Viewport width / height
	Aperture    float64   // Lens diameter; 0 disables defocus blur
	FocusDist   float64   // Distance to the plane of perfect focus
}

// Camera generates primary rays from normalized screen coordinates,
// including defocus blur. Immutable after construction.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration. Degenerate
// inputs are construction errors, never mid-render conditions.
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.VFov <= 0 {
		return nil, fmt.Errorf("camera vfov must be positive, got %g", config.VFov)
	}
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera aspect ratio must be positive, got %g", config.AspectRatio)
	}
	if config.Aperture < 0 {
		return nil, fmt.Errorf("camera aperture must be non-negative, got %g", config.Aperture)
	}
	if config.FocusDist <= 0 {
		return nil, fmt.Errorf("camera focus distance must be positive, got %g", config.FocusDist)
	}

	view := config.LookFrom.Subtract(config.LookAt)
	if view.NearZero() {
		return nil, fmt.Errorf("camera lookfrom and lookat must differ")
	}

	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := view.Normalize()
	uCross := config.VUp.Cross(w)
	if uCross.NearZero() {
		return nil, fmt.Errorf("camera up vector must not be zero or collinear with the view direction")
	}
	u := uCross.Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(config.FocusDist * viewportWidth)
	vertical := v.Multiply(config.FocusDist * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1,
// with (0,0) at the lower left. With a positive aperture the ray origin is
// jittered on the lens disk toward the focus plane.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}

// GetCameraForward returns the unit view direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Multiply(-1)
}
