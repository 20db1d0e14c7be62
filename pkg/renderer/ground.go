package renderer

import "github.com/df07/go-fixed-landscape/pkg/fixed"

// GroundPlane is the projection constant used to place hit points
const GroundPlane int32 = 150

// ProjectionDistance returns the fixed-point distance along dir to the
// projected ground point. Exactly horizontal rays get a distance of 0.
func ProjectionDistance(dir fixed.Vec3) int32 {
	if dir.Y == 0 {
		return 0
	}
	return fixed.Div(GroundPlane, dir.Y)
}

// Intersect returns the hit point origin + distance*dir.
// The scale is a plain integer product, not a fixed-point one, so hit points
// live in a space 256 times larger than the camera's units.
func Intersect(origin, dir fixed.Vec3) fixed.Vec3 {
	return origin.Add(dir.Scale(ProjectionDistance(dir)))
}
