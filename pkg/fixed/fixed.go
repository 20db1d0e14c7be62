// Package fixed implements the integer math kernel used by the renderer.
//
// Values are Q8.8 fixed point: an int32 scaled by 256, so One (256)
// represents 1.0. All arithmetic wraps the way two's-complement int32
// arithmetic does.
package fixed

// Shift is the number of fractional bits in a fixed-point value
const Shift = 8

// One is 1.0 in fixed point
const One int32 = 1 << Shift

// Isqrt returns the largest r such that r*r <= n.
// It uses the binary digit-by-digit method, examining one bit pair per step
// (at most 16 steps for a 32-bit input).
func Isqrt(n uint32) int32 {
	var f uint32
	p := uint32(1) << 30
	r := n

	for p > r {
		p >>= 2
	}

	for p != 0 {
		if r >= f+p {
			r -= f + p
			f += p << 1
		}
		f >>= 1
		p >>= 2
	}

	return int32(f)
}

// Mul returns the fixed-point product (a*b)>>8.
// The shift is arithmetic, so negative products round toward negative infinity.
func Mul(a, b int32) int32 {
	return (a * b) >> Shift
}

// Div returns the fixed-point quotient (a<<8)/b.
// Dividing by zero panics; callers must guard b.
func Div(a, b int32) int32 {
	return (a << Shift) / b
}
