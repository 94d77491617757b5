package fraction

// gcd is Euclid's algorithm. gcd(a, 0) == a.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcmParts returns the cofactors that bring denominators a and b to their
// least common multiple, b/g and a/g, along with g = gcd(a, b).
// The lcm itself is a*(b/g), which is never formed here.
func lcmParts(a, b uint64) (uint64, uint64, uint64) {
	g := gcd(a, b)
	return b / g, a / g, g
}

func absInt64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
