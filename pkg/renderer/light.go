package renderer

import "github.com/df07/go-fixed-landscape/pkg/fixed"

// Light is a normalized light direction. It is never modified after
// NewLight returns.
type Light struct {
	direction fixed.Vec3
}

// NewLight normalizes a raw light direction.
// A zero direction is a caller error and panics; validate input upstream.
func NewLight(raw fixed.Vec3) Light {
	return Light{direction: fixed.Normalize(raw)}
}

// Direction returns the normalized Q8.8 direction
func (l Light) Direction() fixed.Vec3 {
	return l.direction
}
