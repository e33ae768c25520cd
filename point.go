package linkage

import "errors"

// ErrMalformedPoint is returned by ParsePoints for a line that is not an
// "x,y,z" integer triple.
var ErrMalformedPoint = errors.New("linkage: malformed point")

// Point is an integer coordinate in 3-D space. A []Point is a point set:
// the index of a point is its node id in every downstream structure.
type Point struct {
	X, Y, Z int64
}

// absDiff returns |a-b| as an unsigned value. The subtraction is done in
// uint64 so that the full int64 range is handled without overflow.
func absDiff(a, b int64) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}
