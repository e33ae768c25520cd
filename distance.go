package linkage

import "math/bits"

// SquaredDistance returns the exact squared Euclidean distance between p and
// q. The second result is false when the value does not fit in a uint64;
// overflow is detected from the high word of each square and the carry of
// each addition, so a wrapped value is never returned as valid.
func SquaredDistance(p, q Point) (uint64, bool) {
	var sum uint64
	for _, d := range [3]uint64{
		absDiff(p.X, q.X),
		absDiff(p.Y, q.Y),
		absDiff(p.Z, q.Z),
	} {
		hi, lo := bits.Mul64(d, d)
		if hi != 0 {
			return 0, false
		}
		var carry uint64
		sum, carry = bits.Add64(sum, lo, 0)
		if carry != 0 {
			return 0, false
		}
	}
	return sum, true
}
