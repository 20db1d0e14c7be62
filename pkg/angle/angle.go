// Package angle provides sine and cosine lookup tables over a circle of 256
// angle units.
package angle

// Size is the number of angle units in a full turn
const Size = 256

// Mask reduces any angle, negative ones included, into [0, Size)
const Mask = Size - 1

// QuarterTurn is the phase shift between the sine and cosine tables
const QuarterTurn = 65

// sine approximates 127 * sin(2*pi*i/256) for every angle unit
var sine = [Size]int8{
	0, 3, 6, 9, 12, 16, 19, 22, 25, 28, 31, 34, 37, 40, 43, 46,
	49, 51, 54, 57, 60, 63, 65, 68, 71, 73, 76, 78, 81, 83, 85, 88,
	90, 92, 94, 96, 98, 100, 102, 104, 106, 107, 109, 111, 112, 113, 115, 116,
	117, 118, 120, 121, 122, 122, 123, 124, 125, 125, 126, 126, 126, 127, 127, 127,
	127, 127, 127, 127, 126, 126, 126, 125, 125, 124, 123, 122, 122, 121, 120, 118,
	117, 116, 115, 113, 112, 111, 109, 107, 106, 104, 102, 100, 98, 96, 94, 92,
	90, 88, 85, 83, 81, 78, 76, 73, 71, 68, 65, 63, 60, 57, 54, 51,
	49, 46, 43, 40, 37, 34, 31, 28, 25, 22, 19, 16, 12, 9, 6, 3,
	0, -3, -6, -9, -12, -16, -19, -22, -25, -28, -31, -34, -37, -40, -43, -46,
	-49, -51, -54, -57, -60, -63, -65, -68, -71, -73, -76, -78, -81, -83, -85, -88,
	-90, -92, -94, -96, -98, -100, -102, -104, -106, -107, -109, -111, -112, -113, -115, -116,
	-117, -118, -120, -121, -122, -122, -123, -124, -125, -125, -126, -126, -126, -127, -127, -127,
	-127, -127, -127, -127, -126, -126, -126, -125, -125, -124, -123, -122, -122, -121, -120, -118,
	-117, -116, -115, -113, -112, -111, -109, -107, -106, -104, -102, -100, -98, -96, -94, -92,
	-90, -88, -85, -83, -81, -78, -76, -73, -71, -68, -65, -63, -60, -57, -54, -51,
	-49, -46, -43, -40, -37, -34, -31, -28, -25, -22, -19, -16, -12, -9, -6, -3,
}

// Tables holds the sine and cosine lookup tables.
// A Tables value is immutable once built and safe to share between goroutines.
type Tables struct {
	sin [Size]int8
	cos [Size]int8
}

// NewTables builds the lookup tables
func NewTables() *Tables {
	t := &Tables{sin: sine}
	for i := 0; i < Size; i++ {
		t.cos[i] = t.sin[(i+QuarterTurn)&Mask]
	}
	return t
}

// Sin returns the table sine of angle a, wrapping a modulo 256
func (t *Tables) Sin(a int32) int32 {
	return int32(t.sin[a&Mask])
}

// Cos returns the table cosine of angle a, wrapping a modulo 256
func (t *Tables) Cos(a int32) int32 {
	return int32(t.cos[a&Mask])
}
